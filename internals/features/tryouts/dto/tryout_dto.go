// file: internals/features/tryouts/dto/tryout_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "tryoutku_backend/internals/features/tryouts/model"
	umodel "tryoutku_backend/internals/features/users/model"
)

/* ==============================
   CREATE (POST /tryouts)
============================== */

type CreateTryoutRequest struct {
	TryoutTitle       string     `json:"tryout_title" validate:"required,max=180"`
	TryoutDescription *string    `json:"tryout_description" validate:"omitempty"`
	TryoutSchoolID    *uuid.UUID `json:"tryout_school_id" validate:"omitempty,uuid4"`
	TryoutIsGlobal    bool       `json:"tryout_is_global"`

	TryoutPricingModel     string `json:"tryout_pricing_model" validate:"required,oneof=free freemium premium"`
	TryoutPrice            int    `json:"tryout_price" validate:"gte=0"`
	TryoutExplanationPrice int    `json:"tryout_explanation_price" validate:"gte=0"`
	TryoutHasExplanation   bool   `json:"tryout_has_explanation"`

	TryoutDurationMinutes *int       `json:"tryout_duration_minutes" validate:"omitempty,gte=1"`
	TryoutStartTime       *time.Time `json:"tryout_start_time"`
	TryoutEndTime         *time.Time `json:"tryout_end_time"`
}

func (r *CreateTryoutRequest) ToModel() *model.TryoutModel {
	return &model.TryoutModel{
		TryoutID:          model.NewTryoutID(),
		TryoutTitle:       strings.TrimSpace(r.TryoutTitle),
		TryoutDescription: trimPtr(r.TryoutDescription),
		TryoutSchoolID:    r.TryoutSchoolID,
		TryoutIsGlobal:    r.TryoutIsGlobal,

		TryoutPricingModel:     model.PricingModel(r.TryoutPricingModel),
		TryoutPrice:            r.TryoutPrice,
		TryoutExplanationPrice: r.TryoutExplanationPrice,
		TryoutHasExplanation:   r.TryoutHasExplanation,

		TryoutDurationMinutes: r.TryoutDurationMinutes,
		TryoutStartTime:       r.TryoutStartTime,
		TryoutEndTime:         r.TryoutEndTime,
	}
}

/* ==============================
   PATCH (PATCH /tryouts/:id)
   - gunakan UpdateField agar bisa null/skip/value
============================== */

type PatchTryoutRequest struct {
	TryoutTitle       UpdateField[string]    `json:"tryout_title"`       // NOT NULL (abaikan jika null/empty)
	TryoutDescription UpdateField[string]    `json:"tryout_description"` // nullable
	TryoutSchoolID    UpdateField[uuid.UUID] `json:"tryout_school_id"`   // nullable
	TryoutIsGlobal    UpdateField[bool]      `json:"tryout_is_global"`

	TryoutPricingModel     UpdateField[string] `json:"tryout_pricing_model"`
	TryoutPrice            UpdateField[int]    `json:"tryout_price"`
	TryoutExplanationPrice UpdateField[int]    `json:"tryout_explanation_price"`
	TryoutHasExplanation   UpdateField[bool]   `json:"tryout_has_explanation"`

	TryoutDurationMinutes UpdateField[int]       `json:"tryout_duration_minutes"` // nullable
	TryoutStartTime       UpdateField[time.Time] `json:"tryout_start_time"`       // nullable
	TryoutEndTime         UpdateField[time.Time] `json:"tryout_end_time"`         // nullable
}

// ToUpdates: map untuk gorm.Model(&m).Updates(...)
func (p *PatchTryoutRequest) ToUpdates() map[string]any {
	u := make(map[string]any, 11)

	if p.TryoutTitle.ShouldUpdate() && !p.TryoutTitle.IsNull() {
		if title := strings.TrimSpace(p.TryoutTitle.Val()); title != "" {
			u["tryout_title"] = title
		}
	}

	if p.TryoutDescription.ShouldUpdate() {
		if p.TryoutDescription.IsNull() {
			u["tryout_description"] = gorm.Expr("NULL")
		} else if desc := strings.TrimSpace(p.TryoutDescription.Val()); desc == "" {
			u["tryout_description"] = gorm.Expr("NULL")
		} else {
			u["tryout_description"] = desc
		}
	}

	if p.TryoutSchoolID.ShouldUpdate() {
		if p.TryoutSchoolID.IsNull() {
			u["tryout_school_id"] = gorm.Expr("NULL")
		} else {
			u["tryout_school_id"] = p.TryoutSchoolID.Val()
		}
	}

	if p.TryoutIsGlobal.ShouldUpdate() && !p.TryoutIsGlobal.IsNull() {
		u["tryout_is_global"] = p.TryoutIsGlobal.Val()
	}

	if p.TryoutPricingModel.ShouldUpdate() && !p.TryoutPricingModel.IsNull() {
		if pm := model.PricingModel(strings.TrimSpace(p.TryoutPricingModel.Val())); pm.Valid() {
			u["tryout_pricing_model"] = pm
		}
	}

	if p.TryoutPrice.ShouldUpdate() && !p.TryoutPrice.IsNull() {
		u["tryout_price"] = p.TryoutPrice.Val()
	}

	if p.TryoutExplanationPrice.ShouldUpdate() && !p.TryoutExplanationPrice.IsNull() {
		u["tryout_explanation_price"] = p.TryoutExplanationPrice.Val()
	}

	if p.TryoutHasExplanation.ShouldUpdate() && !p.TryoutHasExplanation.IsNull() {
		u["tryout_has_explanation"] = p.TryoutHasExplanation.Val()
	}

	if p.TryoutDurationMinutes.ShouldUpdate() {
		if p.TryoutDurationMinutes.IsNull() {
			u["tryout_duration_minutes"] = gorm.Expr("NULL")
		} else {
			u["tryout_duration_minutes"] = p.TryoutDurationMinutes.Val()
		}
	}

	if p.TryoutStartTime.ShouldUpdate() {
		if p.TryoutStartTime.IsNull() {
			u["tryout_start_time"] = gorm.Expr("NULL")
		} else {
			u["tryout_start_time"] = p.TryoutStartTime.Val()
		}
	}

	if p.TryoutEndTime.ShouldUpdate() {
		if p.TryoutEndTime.IsNull() {
			u["tryout_end_time"] = gorm.Expr("NULL")
		} else {
			u["tryout_end_time"] = p.TryoutEndTime.Val()
		}
	}

	return u
}

/* ==============================
   LIST (GET /tryouts)
============================== */

type ListTryoutsQuery struct {
	Search       string     `query:"search"`
	PricingModel string     `query:"pricing_model"`
	IsGlobal     *bool      `query:"is_global"`
	SchoolID     *uuid.UUID `query:"school_id"`  // admin only
	CreatorID    *uuid.UUID `query:"creator_id"` // admin only
	DateFrom     *time.Time `query:"date_from"`
	DateTo       *time.Time `query:"date_to"`
	SortBy       string     `query:"sort_by"`  // created_at | title | start_time
	SortDir      string     `query:"sort_dir"` // asc | desc
}

/* ==============================
   RESPONSES
============================== */

type CreatorInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func creatorFrom(u *umodel.UserModel) *CreatorInfo {
	if u == nil {
		return nil
	}
	return &CreatorInfo{
		ID:    u.UserID,
		Name:  u.DisplayName(),
		Email: u.UserEmail,
		Role:  u.UserRole,
	}
}

type TryoutResponse struct {
	model.TryoutModel
	Creator        *CreatorInfo `json:"creator,omitempty"`
	TotalQuestions *int64       `json:"total_questions,omitempty"`
}

func FromTryoutModel(m *model.TryoutModel, creator *umodel.UserModel) *TryoutResponse {
	if m == nil {
		return nil
	}
	return &TryoutResponse{
		TryoutModel: *m,
		Creator:     creatorFrom(creator),
	}
}
