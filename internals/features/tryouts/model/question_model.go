// file: internals/features/tryouts/model/question_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionModel struct {
	QuestionID       uuid.UUID      `gorm:"column:question_id;type:uuid;primaryKey" json:"question_id"`
	QuestionTryoutID string         `gorm:"column:question_tryout_id;type:varchar(64);not null;index" json:"question_tryout_id"`
	QuestionNumber   int            `gorm:"column:question_number;not null" json:"question_number"`
	QuestionType     QuestionType   `gorm:"column:question_type;type:varchar(24);not null" json:"question_type"`
	QuestionData     datatypes.JSON `gorm:"column:question_data;type:jsonb;not null" json:"question_data"`
	QuestionScore    int            `gorm:"column:question_score;not null;default:10" json:"question_score"`

	QuestionCreatedAt time.Time `gorm:"column:question_created_at;not null;autoCreateTime" json:"question_created_at"`
}

func (QuestionModel) TableName() string { return "questions" }

func (m *QuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuestionID == uuid.Nil {
		m.QuestionID = uuid.New()
	}
	return nil
}

// ValidateShape memeriksa question_data terhadap question_type.
func (m *QuestionModel) ValidateShape() error {
	return ValidateQuestionData(m.QuestionType, m.QuestionData)
}
