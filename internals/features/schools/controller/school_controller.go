// file: internals/features/schools/controller/school_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "tryoutku_backend/internals/features/schools/dto"
	service "tryoutku_backend/internals/features/schools/service"
	helper "tryoutku_backend/internals/helpers"
	helperAuth "tryoutku_backend/internals/helpers/auth"
)

type SchoolController struct {
	Service   *service.SchoolService
	Validator *validator.Validate
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{
		Service:   service.NewSchoolService(db),
		Validator: validator.New(),
	}
}

// POST /schools
func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActingIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	school, err := ctl.Service.Create(c.Context(), actor, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Sekolah berhasil dibuat", school)
}

// GET /schools
func (ctl *SchoolController) List(c *fiber.Ctx) error {
	rows, err := ctl.Service.List(c.Context(), c.Query("search"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /schools/:id
func (ctl *SchoolController) GetByID(c *fiber.Ctx) error {
	school, err := ctl.Service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", school)
}

// PATCH /schools/:id
func (ctl *SchoolController) Update(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActingIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.PatchSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	school, err := ctl.Service.Update(c.Context(), actor, c.Params("id"), &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Sekolah berhasil diperbarui", school)
}

// DELETE /schools/:id
func (ctl *SchoolController) Delete(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActingIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.Service.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Sekolah berhasil dinonaktifkan", fiber.Map{"school_id": c.Params("id")})
}
