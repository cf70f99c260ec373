// file: internals/features/tryouts/service/question_service.go
package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dto "tryoutku_backend/internals/features/tryouts/dto"
	model "tryoutku_backend/internals/features/tryouts/model"
	helperAuth "tryoutku_backend/internals/helpers/auth"
)

type QuestionService struct {
	DB *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{DB: db}
}

// loadTryoutOwner mengambil creator id tryout untuk cek izin.
func (s *QuestionService) loadTryoutOwner(ctx context.Context, tryoutID string) (uuid.UUID, error) {
	var t model.TryoutModel
	if err := s.DB.WithContext(ctx).
		Select("tryout_id", "tryout_creator_id").
		First(&t, "tryout_id = ?", tryoutID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Tryout not found")
		}
		return uuid.Nil, err
	}
	return t.TryoutCreatorID, nil
}

/* =========================================================
   CREATE
========================================================= */

// Create menambah soal ke tryout. Nomor soal dipasok caller;
// payload divalidasi terhadap question_type sebelum insert.
func (s *QuestionService) Create(ctx context.Context, in *dto.CreateQuestionRequest, actor helperAuth.ActingIdentity) (*model.QuestionModel, error) {
	ownerID, err := s.loadTryoutOwner(ctx, in.QuestionTryoutID)
	if err != nil {
		return nil, err
	}
	if !CanMutate(actor, ownerID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "No permission to add questions to this tryout")
	}

	m := in.ToModel()
	if err := m.ValidateShape(); err != nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

/* =========================================================
   READ
========================================================= */

// ListByTryout: semua soal satu tryout urut nomor. Read terbuka —
// halaman pemanggil yang menjaga akses ke tryout induknya.
func (s *QuestionService) ListByTryout(ctx context.Context, tryoutID string) ([]model.QuestionModel, error) {
	var rows []model.QuestionModel
	if err := s.DB.WithContext(ctx).
		Where("question_tryout_id = ?", tryoutID).
		Order("question_number ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *QuestionService) GetByID(ctx context.Context, id uuid.UUID) (*model.QuestionModel, error) {
	var m model.QuestionModel
	if err := s.DB.WithContext(ctx).First(&m, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return nil, err
	}
	return &m, nil
}

/* =========================================================
   UPDATE
========================================================= */

func (s *QuestionService) Update(ctx context.Context, id uuid.UUID, patch *dto.PatchQuestionRequest, actor helperAuth.ActingIdentity) (*model.QuestionModel, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ownerID, err := s.loadTryoutOwner(ctx, m.QuestionTryoutID)
	if err != nil {
		return nil, err
	}
	if !CanMutate(actor, ownerID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "No permission to update this question")
	}

	updates := patch.ToUpdates()
	if len(updates) == 0 {
		return m, nil
	}

	// Jika type atau data berubah, validasi pasangan efektifnya.
	effType := m.QuestionType
	if v, ok := updates["question_type"].(string); ok {
		effType = model.QuestionType(v)
	}
	effData := m.QuestionData
	if v, ok := updates["question_data"].(datatypes.JSON); ok {
		effData = v
	}
	if _, typeChanged := updates["question_type"]; typeChanged {
		if err := model.ValidateQuestionData(effType, effData); err != nil {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	} else if _, dataChanged := updates["question_data"]; dataChanged {
		if err := model.ValidateQuestionData(effType, effData); err != nil {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	}

	if err := s.DB.WithContext(ctx).
		Model(&model.QuestionModel{}).
		Where("question_id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

/* =========================================================
   DELETE (+ renumber)
========================================================= */

// Delete menghapus soal lalu merapatkan nomor soal sesudahnya
// (question_number - 1) sehingga urutan tetap 1..N tanpa celah.
// Keduanya berjalan dalam satu transaksi; renumber dilakukan lewat
// satu UPDATE ber-ekspresi, bukan loop per baris.
func (s *QuestionService) Delete(ctx context.Context, id uuid.UUID, actor helperAuth.ActingIdentity) error {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	ownerID, err := s.loadTryoutOwner(ctx, m.QuestionTryoutID)
	if err != nil {
		return err
	}
	if !CanMutate(actor, ownerID) {
		return fiber.NewError(fiber.StatusForbidden, "No permission to delete this question")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.QuestionModel{}, "question_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&model.QuestionModel{}).
			Where("question_tryout_id = ? AND question_number > ?", m.QuestionTryoutID, m.QuestionNumber).
			UpdateColumn("question_number", gorm.Expr("question_number - 1")).Error
	})
}

/* =========================================================
   DUPLICATE
========================================================= */

// Duplicate menyalin type/data/score soal ke nomor baru di akhir
// tryout yang sama (max(question_number)+1).
func (s *QuestionService) Duplicate(ctx context.Context, id uuid.UUID, actor helperAuth.ActingIdentity) (*model.QuestionModel, error) {
	original, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ownerID, err := s.loadTryoutOwner(ctx, original.QuestionTryoutID)
	if err != nil {
		return nil, err
	}
	if !CanMutate(actor, ownerID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "No permission to duplicate this question")
	}

	var maxNumber int
	if err := s.DB.WithContext(ctx).
		Model(&model.QuestionModel{}).
		Where("question_tryout_id = ?", original.QuestionTryoutID).
		Select("COALESCE(MAX(question_number), 0)").
		Scan(&maxNumber).Error; err != nil {
		return nil, err
	}

	copyModel := &model.QuestionModel{
		QuestionTryoutID: original.QuestionTryoutID,
		QuestionNumber:   maxNumber + 1,
		QuestionType:     original.QuestionType,
		QuestionData:     original.QuestionData,
		QuestionScore:    original.QuestionScore,
	}
	if err := s.DB.WithContext(ctx).Create(copyModel).Error; err != nil {
		return nil, err
	}
	return copyModel, nil
}

/* =========================================================
   REORDER
========================================================= */

// Reorder menerapkan pasangan {question_id, question_number} dari caller.
// Penomoran tidak divalidasi kontigu/unik — caller dipercaya mengirim
// permutasi yang sah. Seluruh update berjalan dalam satu transaksi.
func (s *QuestionService) Reorder(ctx context.Context, tryoutID string, orders []dto.QuestionOrder, actor helperAuth.ActingIdentity) error {
	ownerID, err := s.loadTryoutOwner(ctx, tryoutID)
	if err != nil {
		return err
	}
	if !CanMutate(actor, ownerID) {
		return fiber.NewError(fiber.StatusForbidden, "No permission to reorder questions")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			if err := tx.Model(&model.QuestionModel{}).
				Where("question_id = ? AND question_tryout_id = ?", o.QuestionID, tryoutID).
				UpdateColumn("question_number", o.QuestionNumber).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
