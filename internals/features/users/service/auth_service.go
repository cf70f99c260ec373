// file: internals/features/users/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tryoutku_backend/internals/configs"
	dto "tryoutku_backend/internals/features/users/dto"
	model "tryoutku_backend/internals/features/users/model"
)

const accessTTLDefault = 24 * time.Hour

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

/* ==========================
   REGISTER
========================== */

func (s *AuthService) Register(ctx context.Context, in *dto.RegisterRequest) (*model.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(in.UserEmail))

	var existing model.UserModel
	err := s.DB.WithContext(ctx).First(&existing, "user_email = ?", email).Error
	if err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}

	m := in.ToModel()
	m.UserPassword = string(hashed)

	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

/* ==========================
   LOGIN
========================== */

func (s *AuthService) Login(ctx context.Context, in *dto.LoginRequest) (string, *model.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(in.UserEmail))

	var user model.UserModel
	if err := s.DB.WithContext(ctx).First(&user, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(in.UserPassword)); err != nil {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := s.issueAccessToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// issueAccessToken menerbitkan JWT HS256 dengan klaim id/role/school_id —
// klaim yang dihydrate middleware AuthJWT ke Locals.
func (s *AuthService) issueAccessToken(user *model.UserModel) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":   user.UserID.String(),
		"sub":  user.UserID.String(),
		"role": user.UserRole,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTTLDefault).Unix(),
	}
	if user.UserSchoolID != nil {
		claims["school_id"] = user.UserSchoolID.String()
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menandatangani token")
	}
	return signed, nil
}

/* ==========================
   PROFILE LOOKUP
========================== */

func (s *AuthService) GetByID(ctx context.Context, id string) (*model.UserModel, error) {
	var user model.UserModel
	if err := s.DB.WithContext(ctx).First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Profile not found")
		}
		return nil, err
	}
	return &user, nil
}
