// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "tryoutku_backend/internals/features/users/dto"
	service "tryoutku_backend/internals/features/users/service"
	helper "tryoutku_backend/internals/helpers"
	helperAuth "tryoutku_backend/internals/helpers/auth"
)

type AuthController struct {
	Service   *service.AuthService
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		Service:   service.NewAuthService(db),
		Validator: validator.New(),
	}
}

// POST /auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	user, err := ctl.Service.Register(c.Context(), &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Registrasi berhasil", dto.FromUserModel(user))
}

// POST /auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	token, user, err := ctl.Service.Login(c.Context(), &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        dto.FromUserModel(user),
	})
}

// GET /api/u/users/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActingIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	user, err := ctl.Service.GetByID(c.Context(), actor.ID.String())
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "OK", dto.FromUserModel(user))
}
