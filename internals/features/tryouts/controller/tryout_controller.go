// file: internals/features/tryouts/controller/tryout_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "tryoutku_backend/internals/features/tryouts/dto"
	service "tryoutku_backend/internals/features/tryouts/service"
	helper "tryoutku_backend/internals/helpers"
	helperAuth "tryoutku_backend/internals/helpers/auth"
)

type TryoutController struct {
	Service   *service.TryoutService
	Validator *validator.Validate
}

func NewTryoutController(db *gorm.DB) *TryoutController {
	return &TryoutController{
		Service:   service.NewTryoutService(db),
		Validator: validator.New(),
	}
}

/* =======================
   Handlers
======================= */

// POST /tryouts (admin/guru)
func (ctrl *TryoutController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActingIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateTryoutRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	m, err := ctrl.Service.Create(c.UserContext(), &body, actor)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Tryout berhasil dibuat", m)
}

// GET /tryouts
func (ctrl *TryoutController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActingIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q dto.ListTryoutsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctrl.Service.List(c.UserContext(), &q, p.Offset, p.Limit, actor)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	out := make([]*dto.TryoutResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromTryoutModel(&rows[i], rows[i].Creator))
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pg.Count = len(out)
	return helper.JsonList(c, "ok", out, &pg)
}

// GET /tryouts/:id (detail + soal + creator)
func (ctrl *TryoutController) GetByID(c *fiber.Ctx) error {
	if _, err := helperAuth.GetActingIdentity(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	m, err := ctrl.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromTryoutModel(m, m.Creator))
}

// PATCH /tryouts/:id
func (ctrl *TryoutController) Patch(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActingIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.PatchTryoutRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	m, err := ctrl.Service.Update(c.UserContext(), id, &body, actor)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Tryout diperbarui", m)
}

// DELETE /tryouts/:id
func (ctrl *TryoutController) Delete(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActingIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctrl.Service.Delete(c.UserContext(), id, actor); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Tryout dihapus", fiber.Map{"tryout_id": id})
}

// POST /tryouts/:id/duplicate
func (ctrl *TryoutController) Duplicate(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActingIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	m, err := ctrl.Service.Duplicate(c.UserContext(), id, actor)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Tryout diduplikasi", m)
}
