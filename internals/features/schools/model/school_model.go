// file: internals/features/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolModel struct {
	SchoolID      uuid.UUID `json:"school_id" gorm:"column:school_id;type:uuid;primaryKey"`
	SchoolName    string    `json:"school_name" gorm:"column:school_name;type:varchar(150);not null"`
	SchoolCity    *string   `json:"school_city,omitempty" gorm:"column:school_city;type:varchar(100)"`
	SchoolAddress *string   `json:"school_address,omitempty" gorm:"column:school_address;type:text"`
	SchoolIsActive bool     `json:"school_is_active" gorm:"column:school_is_active;not null;default:true"`

	SchoolCreatedAt time.Time `json:"school_created_at" gorm:"column:school_created_at;autoCreateTime"`
	SchoolUpdatedAt time.Time `json:"school_updated_at" gorm:"column:school_updated_at;autoUpdateTime"`
}

func (SchoolModel) TableName() string { return "schools" }

func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolID == uuid.Nil {
		m.SchoolID = uuid.New()
	}
	return nil
}
