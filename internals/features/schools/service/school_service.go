// file: internals/features/schools/service/school_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "tryoutku_backend/internals/features/schools/dto"
	model "tryoutku_backend/internals/features/schools/model"
	helperAuth "tryoutku_backend/internals/helpers/auth"
)

type SchoolService struct {
	DB *gorm.DB
}

func NewSchoolService(db *gorm.DB) *SchoolService {
	return &SchoolService{DB: db}
}

// Mutasi sekolah hanya untuk admin; pembacaan terbuka untuk semua user login.

func (s *SchoolService) Create(ctx context.Context, actor helperAuth.ActingIdentity, in *dto.CreateSchoolRequest) (*model.SchoolModel, error) {
	if !actor.IsAdmin() {
		return nil, fiber.NewError(fiber.StatusForbidden, "Hanya admin yang boleh mengelola sekolah")
	}

	m := in.ToModel()
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (s *SchoolService) List(ctx context.Context, search string) ([]model.SchoolModel, error) {
	q := s.DB.WithContext(ctx).Model(&model.SchoolModel{}).
		Where("school_is_active = ?", true).
		Order("school_name ASC")

	if v := strings.TrimSpace(search); v != "" {
		q = q.Where("LOWER(school_name) LIKE ?", "%"+strings.ToLower(v)+"%")
	}

	var rows []model.SchoolModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *SchoolService) GetByID(ctx context.Context, id string) (*model.SchoolModel, error) {
	var m model.SchoolModel
	if err := s.DB.WithContext(ctx).First(&m, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return nil, err
	}
	return &m, nil
}

func (s *SchoolService) Update(ctx context.Context, actor helperAuth.ActingIdentity, id string, in *dto.PatchSchoolRequest) (*model.SchoolModel, error) {
	if !actor.IsAdmin() {
		return nil, fiber.NewError(fiber.StatusForbidden, "Hanya admin yang boleh mengelola sekolah")
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := in.ToUpdates()
	if len(updates) == 0 {
		return existing, nil
	}

	if err := s.DB.WithContext(ctx).Model(&model.SchoolModel{}).
		Where("school_id = ?", existing.SchoolID).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *SchoolService) Delete(ctx context.Context, actor helperAuth.ActingIdentity, id string) error {
	if !actor.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Hanya admin yang boleh mengelola sekolah")
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Soft-deactivate; relasi user/tryout tetap valid.
	return s.DB.WithContext(ctx).Model(&model.SchoolModel{}).
		Where("school_id = ?", existing.SchoolID).
		Update("school_is_active", false).Error
}
