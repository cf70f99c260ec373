// file: internals/features/tryouts/model/tryout_model.go
package model

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	umodel "tryoutku_backend/internals/features/users/model"
)

type PricingModel string

const (
	PricingFree     PricingModel = "free"
	PricingFreemium PricingModel = "freemium"
	PricingPremium  PricingModel = "premium"
)

func (p PricingModel) Valid() bool {
	switch p {
	case PricingFree, PricingFreemium, PricingPremium:
		return true
	}
	return false
}

type TryoutModel struct {
	TryoutID          string       `gorm:"column:tryout_id;type:varchar(64);primaryKey" json:"tryout_id"`
	TryoutTitle       string       `gorm:"column:tryout_title;type:varchar(180);not null" json:"tryout_title"`
	TryoutDescription *string      `gorm:"column:tryout_description;type:text" json:"tryout_description,omitempty"`
	TryoutCreatorID   uuid.UUID    `gorm:"column:tryout_creator_id;type:uuid;not null;index" json:"tryout_creator_id"`
	TryoutSchoolID    *uuid.UUID   `gorm:"column:tryout_school_id;type:uuid;index" json:"tryout_school_id,omitempty"`
	TryoutIsGlobal    bool         `gorm:"column:tryout_is_global;not null;default:false" json:"tryout_is_global"`
	TryoutPricingModel PricingModel `gorm:"column:tryout_pricing_model;type:varchar(10);not null;default:'free'" json:"tryout_pricing_model"`

	// tryout_price hanya bermakna untuk premium, explanation_price untuk freemium
	TryoutPrice            int  `gorm:"column:tryout_price;not null;default:0" json:"tryout_price"`
	TryoutExplanationPrice int  `gorm:"column:tryout_explanation_price;not null;default:0" json:"tryout_explanation_price"`
	TryoutHasExplanation   bool `gorm:"column:tryout_has_explanation;not null;default:false" json:"tryout_has_explanation"`

	TryoutDurationMinutes *int       `gorm:"column:tryout_duration_minutes" json:"tryout_duration_minutes,omitempty"`
	TryoutStartTime       *time.Time `gorm:"column:tryout_start_time" json:"tryout_start_time,omitempty"`
	TryoutEndTime         *time.Time `gorm:"column:tryout_end_time" json:"tryout_end_time,omitempty"`

	TryoutCreatedAt time.Time `gorm:"column:tryout_created_at;not null;autoCreateTime" json:"tryout_created_at"`

	// constraint:OnDelete:CASCADE — hapus tryout ikut menghapus soalnya
	Questions []QuestionModel `gorm:"foreignKey:QuestionTryoutID;references:TryoutID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`

	Creator *umodel.UserModel `gorm:"foreignKey:TryoutCreatorID;references:UserID" json:"-"`
}

func (TryoutModel) TableName() string { return "tryouts" }

const tryoutIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewTryoutID: id unik gaya `tryout-<unix-ms>-<suffix acak>`.
// Peluang tabrakan dianggap bisa diabaikan, tidak dipertahankan lebih jauh.
func NewTryoutID() string {
	suffix := make([]byte, 7)
	for i := range suffix {
		suffix[i] = tryoutIDAlphabet[rand.Intn(len(tryoutIDAlphabet))]
	}
	return fmt.Sprintf("tryout-%d-%s", time.Now().UnixMilli(), suffix)
}
