// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;type:varchar(100);not null" json:"-"`
	UserName     string    `gorm:"column:user_name;type:varchar(120);not null" json:"user_name"`

	// role: admin | guru | siswa
	UserRole     string     `gorm:"column:user_role;type:varchar(10);not null;default:'siswa'" json:"user_role"`
	UserSchoolID *uuid.UUID `gorm:"column:user_school_id;type:uuid;index" json:"user_school_id,omitempty"`

	UserPhone         *string `gorm:"column:user_phone;type:varchar(20)" json:"user_phone,omitempty"`
	UserStudentNumber *string `gorm:"column:user_student_number;type:varchar(30)" json:"user_student_number,omitempty"`
	UserAvatarURL     *string `gorm:"column:user_avatar_url;type:text" json:"user_avatar_url,omitempty"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}

// UserName getter untuk kebutuhan display singkat
func (m *UserModel) DisplayName() string {
	if m.UserName != "" {
		return m.UserName
	}
	return m.UserEmail
}
