// file: internals/features/users/dto/user_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "tryoutku_backend/internals/features/users/model"
)

/* ==============================
   REGISTER (POST /auth/register)
============================== */

type RegisterRequest struct {
	UserEmail    string     `json:"user_email" validate:"required,email,max=120"`
	UserPassword string     `json:"user_password" validate:"required,min=8,max=72"`
	UserName     string     `json:"user_name" validate:"required,max=120"`
	UserRole     string     `json:"user_role" validate:"required,oneof=admin guru siswa"`
	UserSchoolID *uuid.UUID `json:"user_school_id" validate:"omitempty,uuid4"`

	UserPhone         *string `json:"user_phone" validate:"omitempty,max=20"`
	UserStudentNumber *string `json:"user_student_number" validate:"omitempty,max=30"`
}

func (r *RegisterRequest) ToModel() *model.UserModel {
	return &model.UserModel{
		UserEmail:         strings.ToLower(strings.TrimSpace(r.UserEmail)),
		UserName:          strings.TrimSpace(r.UserName),
		UserRole:          strings.ToLower(strings.TrimSpace(r.UserRole)),
		UserSchoolID:      r.UserSchoolID,
		UserPhone:         r.UserPhone,
		UserStudentNumber: r.UserStudentNumber,
	}
}

/* ==============================
   LOGIN (POST /auth/login)
============================== */

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

/* ==============================
   RESPONSES
============================== */

type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserEmail    string     `json:"user_email"`
	UserName     string     `json:"user_name"`
	UserRole     string     `json:"user_role"`
	UserSchoolID *uuid.UUID `json:"user_school_id,omitempty"`
}

func FromUserModel(m *model.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		UserID:       m.UserID,
		UserEmail:    m.UserEmail,
		UserName:     m.UserName,
		UserRole:     m.UserRole,
		UserSchoolID: m.UserSchoolID,
	}
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}
