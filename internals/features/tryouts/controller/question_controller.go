// file: internals/features/tryouts/controller/question_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "tryoutku_backend/internals/features/tryouts/dto"
	model "tryoutku_backend/internals/features/tryouts/model"
	service "tryoutku_backend/internals/features/tryouts/service"
	helper "tryoutku_backend/internals/helpers"
	helperAuth "tryoutku_backend/internals/helpers/auth"
)

type QuestionController struct {
	Service   *service.QuestionService
	Validator *validator.Validate
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{
		Service:   service.NewQuestionService(db),
		Validator: validator.New(),
	}
}

func parseQuestionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	return id, nil
}

/* =======================
   Handlers
======================= */

// POST /questions
func (ctrl *QuestionController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActingIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateQuestionRequest
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
	return helper.JsonCreated(c, "Soal berhasil dibuat", m)
}

// GET /questions/types — katalog tipe soal untuk form builder FE
func (ctrl *QuestionController) ListTypes(c *fiber.Ctx) error {
	out := make([]fiber.Map, 0, len(model.QuestionTypes))
	for _, qt := range model.QuestionTypes {
		out = append(out, fiber.Map{
			"value": qt,
			"label": model.QuestionTypeLabels[qt],
		})
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /tryouts/:id/questions
func (ctrl *QuestionController) ListByTryout(c *fiber.Ctx) error {
	tryoutID := strings.TrimSpace(c.Params("id"))
	if tryoutID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	rows, err := ctrl.Service.ListByTryout(c.UserContext(), tryoutID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /questions/:id
func (ctrl *QuestionController) GetByID(c *fiber.Ctx) error {
	id, err := parseQuestionID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := ctrl.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", m)
}

// PATCH /questions/:id
func (ctrl *QuestionController) Patch(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActingIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseQuestionID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.PatchQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	m, err := ctrl.Service.Update(c.UserContext(), id, &body, actor)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Soal diperbarui", m)
}

// DELETE /questions/:id
func (ctrl *QuestionController) Delete(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActingIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseQuestionID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.Service.Delete(c.UserContext(), id, actor); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Soal dihapus", fiber.Map{"question_id": id})
}

// POST /questions/:id/duplicate
func (ctrl *QuestionController) Duplicate(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActingIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseQuestionID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := ctrl.Service.Duplicate(c.UserContext(), id, actor)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Soal diduplikasi", m)
}

// PUT /tryouts/:id/questions/reorder
func (ctrl *QuestionController) Reorder(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActingIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tryoutID := strings.TrimSpace(c.Params("id"))
	if tryoutID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.ReorderQuestionsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	if err := ctrl.Service.Reorder(c.UserContext(), tryoutID, body.Orders, actor); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Urutan soal diperbarui", fiber.Map{"tryout_id": tryoutID})
}
