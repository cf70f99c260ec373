// file: internals/features/tryouts/service/tryout_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "tryoutku_backend/internals/features/tryouts/dto"
	model "tryoutku_backend/internals/features/tryouts/model"
	helperAuth "tryoutku_backend/internals/helpers/auth"
)

type TryoutService struct {
	DB *gorm.DB
}

func NewTryoutService(db *gorm.DB) *TryoutService {
	return &TryoutService{DB: db}
}

/* =========================================================
   CREATE
========================================================= */

// Create membuat tryout baru atas nama actor.
// - siswa ditolak.
// - guru dipaksa non-global & school mengikuti sekolahnya sendiri,
//   apapun yang dikirim caller (cegah eskalasi visibilitas).
func (s *TryoutService) Create(ctx context.Context, in *dto.CreateTryoutRequest, actor helperAuth.ActingIdentity) (*model.TryoutModel, error) {
	if actor.IsSiswa() {
		return nil, fiber.NewError(fiber.StatusForbidden, "Students cannot create tryouts")
	}

	m := in.ToModel()
	m.TryoutCreatorID = actor.ID

	if actor.IsGuru() {
		m.TryoutIsGlobal = false
		m.TryoutSchoolID = actor.SchoolID
	}

	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

/* =========================================================
   LIST
========================================================= */

func applyTryoutSort(db *gorm.DB, sortBy, sortDir string) *gorm.DB {
	col := "tryout_created_at"
	switch strings.TrimSpace(strings.ToLower(sortBy)) {
	case "title":
		col = "tryout_title"
	case "start_time":
		col = "tryout_start_time"
	case "created_at", "":
		col = "tryout_created_at"
	}
	dir := "DESC"
	if strings.EqualFold(strings.TrimSpace(sortDir), "asc") {
		dir = "ASC"
	}
	return db.Order(col + " " + dir)
}

func applyTryoutFilters(db *gorm.DB, q *dto.ListTryoutsQuery, actor helperAuth.ActingIdentity) *gorm.DB {
	if q == nil {
		return db
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		db = db.Where("LOWER(tryout_title) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if pm := model.PricingModel(strings.TrimSpace(q.PricingModel)); pm != "" && pm != "all" && pm.Valid() {
		db = db.Where("tryout_pricing_model = ?", pm)
	}
	if q.IsGlobal != nil {
		db = db.Where("tryout_is_global = ?", *q.IsGlobal)
	}
	// filter school/creator eksplisit hanya untuk admin
	if actor.IsAdmin() {
		if q.SchoolID != nil {
			db = db.Where("tryout_school_id = ?", *q.SchoolID)
		}
		if q.CreatorID != nil {
			db = db.Where("tryout_creator_id = ?", *q.CreatorID)
		}
	}
	if q.DateFrom != nil {
		db = db.Where("tryout_created_at >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		db = db.Where("tryout_created_at <= ?", *q.DateTo)
	}
	return db
}

// List mengembalikan tryout sesuai visibilitas role + filter tambahan.
func (s *TryoutService) List(ctx context.Context, q *dto.ListTryoutsQuery, offset, limit int, actor helperAuth.ActingIdentity) ([]model.TryoutModel, int64, error) {
	base := s.DB.WithContext(ctx).
		Model(&model.TryoutModel{}).
		Scopes(VisibilityScope(actor))
	base = applyTryoutFilters(base, q, actor)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.TryoutModel
	tx := applyTryoutSort(base, sortByOf(q), sortDirOf(q)).
		Preload("Creator")
	if limit > 0 {
		tx = tx.Offset(offset).Limit(limit)
	}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func sortByOf(q *dto.ListTryoutsQuery) string {
	if q == nil {
		return ""
	}
	return q.SortBy
}

func sortDirOf(q *dto.ListTryoutsQuery) string {
	if q == nil {
		return ""
	}
	return q.SortDir
}

/* =========================================================
   GET BY ID
========================================================= */

// GetByID memuat satu tryout + soal (urut nomor) + creator.
// Tidak ada filter kepemilikan di read — id diperlakukan sebagai
// capability; akses halaman yang membatasi siapa melihat id mana.
func (s *TryoutService) GetByID(ctx context.Context, id string) (*model.TryoutModel, error) {
	var m model.TryoutModel
	err := s.DB.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_number ASC")
		}).
		Preload("Creator").
		First(&m, "tryout_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tryout not found")
		}
		return nil, err
	}
	return &m, nil
}

/* =========================================================
   UPDATE
========================================================= */

func (s *TryoutService) Update(ctx context.Context, id string, patch *dto.PatchTryoutRequest, actor helperAuth.ActingIdentity) (*model.TryoutModel, error) {
	var m model.TryoutModel
	if err := s.DB.WithContext(ctx).First(&m, "tryout_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tryout not found")
		}
		return nil, err
	}

	if !CanMutate(actor, m.TryoutCreatorID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "You can only edit your own tryouts")
	}

	updates := patch.ToUpdates()
	if len(updates) == 0 {
		return &m, nil
	}

	if err := s.DB.WithContext(ctx).
		Model(&model.TryoutModel{}).
		Where("tryout_id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	// reload
	if err := s.DB.WithContext(ctx).First(&m, "tryout_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

/* =========================================================
   DELETE
========================================================= */

// Delete menghapus tryout; soal ikut terhapus lewat cascade FK
// (jaminan storage, bukan diimplement ulang di service).
func (s *TryoutService) Delete(ctx context.Context, id string, actor helperAuth.ActingIdentity) error {
	var m model.TryoutModel
	if err := s.DB.WithContext(ctx).
		Select("tryout_id", "tryout_creator_id").
		First(&m, "tryout_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tryout not found")
		}
		return err
	}

	if !CanMutate(actor, m.TryoutCreatorID) {
		return fiber.NewError(fiber.StatusForbidden, "You can only delete your own tryouts")
	}

	return s.DB.WithContext(ctx).Delete(&m).Error
}

/* =========================================================
   DUPLICATE
========================================================= */

// Duplicate menyalin tryout + seluruh soalnya menjadi tryout baru
// milik actor (bukan creator asli): judul diberi sufiks " (Copy)",
// jadwal start/end di-reset.
//
// Kegagalan menyalin soal sengaja tidak menggagalkan operasi —
// induk sudah dibuat, error anak hanya dicatat.
func (s *TryoutService) Duplicate(ctx context.Context, id string, actor helperAuth.ActingIdentity) (*model.TryoutModel, error) {
	original, err := s.GetByID(ctx, id)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok && fe.Code == fiber.StatusNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tryout not found")
		}
		return nil, err
	}

	copyModel := &model.TryoutModel{
		TryoutID:          model.NewTryoutID(),
		TryoutTitle:       original.TryoutTitle + " (Copy)",
		TryoutDescription: original.TryoutDescription,
		TryoutCreatorID:   actor.ID,
		TryoutSchoolID:    original.TryoutSchoolID,
		TryoutIsGlobal:    original.TryoutIsGlobal,

		TryoutPricingModel:     original.TryoutPricingModel,
		TryoutPrice:            original.TryoutPrice,
		TryoutExplanationPrice: original.TryoutExplanationPrice,
		TryoutHasExplanation:   original.TryoutHasExplanation,

		TryoutDurationMinutes: original.TryoutDurationMinutes,
		TryoutStartTime:       nil, // reset jadwal
		TryoutEndTime:         nil,
	}

	if err := s.DB.WithContext(ctx).Create(copyModel).Error; err != nil {
		return nil, err
	}

	if len(original.Questions) > 0 {
		copies := make([]model.QuestionModel, 0, len(original.Questions))
		for _, q := range original.Questions {
			copies = append(copies, model.QuestionModel{
				QuestionTryoutID: copyModel.TryoutID,
				QuestionNumber:   q.QuestionNumber,
				QuestionType:     q.QuestionType,
				QuestionData:     q.QuestionData,
				QuestionScore:    q.QuestionScore,
			})
		}
		if err := s.DB.WithContext(ctx).Create(&copies).Error; err != nil {
			log.Printf("[TryoutService] duplicate: gagal salin %d soal untuk %s: %v",
				len(copies), copyModel.TryoutID, err)
		}
	}

	return copyModel, nil
}
