// file: internals/features/tryouts/dto/question_dto.go
package dto

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "tryoutku_backend/internals/features/tryouts/model"
)

/* ==============================
   CREATE (POST /questions)
============================== */

type CreateQuestionRequest struct {
	QuestionTryoutID string          `json:"question_tryout_id" validate:"required,max=64"`
	QuestionNumber   int             `json:"question_number" validate:"required,gte=1"`
	QuestionType     string          `json:"question_type" validate:"required"`
	QuestionData     json.RawMessage `json:"question_data" validate:"required"`
	QuestionScore    *int            `json:"question_score" validate:"omitempty,gte=1"`
}

func (r *CreateQuestionRequest) ToModel() *model.QuestionModel {
	score := model.DefaultQuestionScore
	if r.QuestionScore != nil {
		score = *r.QuestionScore
	}
	return &model.QuestionModel{
		QuestionTryoutID: strings.TrimSpace(r.QuestionTryoutID),
		QuestionNumber:   r.QuestionNumber,
		QuestionType:     model.QuestionType(strings.TrimSpace(r.QuestionType)),
		QuestionData:     datatypes.JSON(r.QuestionData),
		QuestionScore:    score,
	}
}

/* ==============================
   PATCH (PATCH /questions/:id)
============================== */

type PatchQuestionRequest struct {
	QuestionNumber UpdateField[int]             `json:"question_number"`
	QuestionType   UpdateField[string]          `json:"question_type"`
	QuestionData   UpdateField[json.RawMessage] `json:"question_data"`
	QuestionScore  UpdateField[int]             `json:"question_score"`
}

// ToUpdates: hanya field yang dikirim yang ditulis. Validasi kombinasi
// type+data dilakukan di service (butuh row existing).
func (p *PatchQuestionRequest) ToUpdates() map[string]any {
	u := make(map[string]any, 4)
	if p.QuestionNumber.ShouldUpdate() && !p.QuestionNumber.IsNull() {
		u["question_number"] = p.QuestionNumber.Val()
	}
	if p.QuestionType.ShouldUpdate() && !p.QuestionType.IsNull() {
		u["question_type"] = strings.TrimSpace(p.QuestionType.Val())
	}
	if p.QuestionData.ShouldUpdate() && !p.QuestionData.IsNull() {
		u["question_data"] = datatypes.JSON(p.QuestionData.Val())
	}
	if p.QuestionScore.ShouldUpdate() && !p.QuestionScore.IsNull() {
		u["question_score"] = p.QuestionScore.Val()
	}
	return u
}

/* ==============================
   REORDER (PUT /tryouts/:id/questions/reorder)
============================== */

type QuestionOrder struct {
	QuestionID     uuid.UUID `json:"question_id" validate:"required"`
	QuestionNumber int       `json:"question_number" validate:"required,gte=1"`
}

type ReorderQuestionsRequest struct {
	Orders []QuestionOrder `json:"orders" validate:"required,min=1,dive"`
}
