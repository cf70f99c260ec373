// file: internals/features/tryouts/service/tryout_service_test.go
package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "tryoutku_backend/internals/features/tryouts/dto"
	model "tryoutku_backend/internals/features/tryouts/model"
)

func newCreateReq(mut func(*dto.CreateTryoutRequest)) *dto.CreateTryoutRequest {
	r := &dto.CreateTryoutRequest{
		TryoutTitle:        "Tryout SNBT Matematika",
		TryoutPricingModel: "free",
	}
	if mut != nil {
		mut(r)
	}
	return r
}

func TestTryoutCreate_SiswaDitolak(t *testing.T) {
	db := newTestDB(t)
	svc := NewTryoutService(db)
	siswa := seedSiswa(t, db, nil)

	_, err := svc.Create(context.Background(), newCreateReq(nil), actorOf(siswa))
	require.Error(t, err)

	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.Equal(t, "Students cannot create tryouts", fe.Message)
}

func TestTryoutCreate_GuruDipaksaScopeSekolah(t *testing.T) {
	db := newTestDB(t)
	svc := NewTryoutService(db)

	schoolID := uuid.New()
	guru := seedGuru(t, db, uuidPtr(schoolID))

	// guru mencoba mengklaim global + sekolah lain
	req := newCreateReq(func(r *dto.CreateTryoutRequest) {
		r.TryoutIsGlobal = true
		r.TryoutSchoolID = uuidPtr(uuid.New())
	})

	got, err := svc.Create(context.Background(), req, actorOf(guru))
	require.NoError(t, err)
	assert.False(t, got.TryoutIsGlobal)
	require.NotNil(t, got.TryoutSchoolID)
	assert.Equal(t, schoolID, *got.TryoutSchoolID)
	assert.Equal(t, guru.UserID, got.TryoutCreatorID)
}

func TestTryoutCreate_AdminBebasGlobal(t *testing.T) {
	db := newTestDB(t)
	svc := NewTryoutService(db)
	admin := seedAdmin(t, db)

	got, err := svc.Create(context.Background(), newCreateReq(func(r *dto.CreateTryoutRequest) {
		r.TryoutIsGlobal = true
	}), actorOf(admin))
	require.NoError(t, err)
	assert.True(t, got.TryoutIsGlobal)
	assert.Contains(t, got.TryoutID, "tryout-")
}

func TestTryoutList_VisibilitasPerRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewTryoutService(db)

	schoolA := uuid.New()
	schoolB := uuid.New()

	admin := seedAdmin(t, db)
	guruA := seedGuru(t, db, uuidPtr(schoolA))
	guruB := seedGuru(t, db, uuidPtr(schoolB))
	siswaA := seedSiswa(t, db, uuidPtr(schoolA))
	siswaTanpaSekolah := seedSiswa(t, db, nil)

	// global milik admin
	seedTryout(t, db, admin.UserID, nil)
	// milik guruA, scope sekolah A
	seedTryout(t, db, guruA.UserID, func(m *model.TryoutModel) {
		m.TryoutIsGlobal = false
		m.TryoutSchoolID = uuidPtr(schoolA)
	})
	// milik guruB, scope sekolah B
	seedTryout(t, db, guruB.UserID, func(m *model.TryoutModel) {
		m.TryoutIsGlobal = false
		m.TryoutSchoolID = uuidPtr(schoolB)
	})

	// admin melihat semuanya
	_, total, err := svc.List(context.Background(), nil, 0, 0, actorOf(admin))
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	// guru hanya miliknya sendiri
	rows, total, err := svc.List(context.Background(), nil, 0, 0, actorOf(guruA))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, guruA.UserID, rows[0].TryoutCreatorID)

	// siswa sekolah A: global + sekolah A
	_, total, err = svc.List(context.Background(), nil, 0, 0, actorOf(siswaA))
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	// siswa tanpa sekolah: global saja
	_, total, err = svc.List(context.Background(), nil, 0, 0, actorOf(siswaTanpaSekolah))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestTryoutList_SearchDanFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewTryoutService(db)
	admin := seedAdmin(t, db)

	seedTryout(t, db, admin.UserID, func(m *model.TryoutModel) {
		m.TryoutTitle = "Tryout UTBK Saintek"
	})
	seedTryout(t, db, admin.UserID, func(m *model.TryoutModel) {
		m.TryoutTitle = "Latihan CPNS"
		m.TryoutPricingModel = model.PricingPremium
		m.TryoutPrice = 50000
	})

	// search case-insensitive
	rows, total, err := svc.List(context.Background(), &dto.ListTryoutsQuery{Search: "utbk"}, 0, 0, actorOf(admin))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Tryout UTBK Saintek", rows[0].TryoutTitle)

	// filter pricing
	_, total, err = svc.List(context.Background(), &dto.ListTryoutsQuery{PricingModel: "premium"}, 0, 0, actorOf(admin))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestTryoutGetByID_TidakDitemukan(t *testing.T) {
	db := newTestDB(t)
	svc := NewTryoutService(db)

	_, err := svc.GetByID(context.Background(), "tryout-000-zzzzzzz")
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.Equal(t, "Tryout not found", fe.Message)
}

func TestTryoutGetByID_MemuatSoalUrut(t *testing.T) {
	db := newTestDB(t)
	svc := NewTryoutService(db)
	admin := seedAdmin(t, db)
	to := seedTryout(t, db, admin.UserID, nil)

	seedQuestion(t, db, to.TryoutID, 2)
	seedQuestion(t, db, to.TryoutID, 1)
	seedQuestion(t, db, to.TryoutID, 3)

	got, err := svc.GetByID(context.Background(), to.TryoutID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 3)
	for i, q := range got.Questions {
		assert.Equal(t, i+1, q.QuestionNumber)
	}
}

func TestTryoutUpdate_HanyaPemilikAtauAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewTryoutService(db)

	owner := seedGuru(t, db, nil)
	other := seedGuru(t, db, nil)
	admin := seedAdmin(t, db)
	to := seedTryout(t, db, owner.UserID, nil)

	patch := &dto.PatchTryoutRequest{}
	require.NoError(t, patchJSON(patch, `{"tryout_title":"Judul Baru"}`))

	// guru lain ditolak
	_, err := svc.Update(context.Background(), to.TryoutID, patch, actorOf(other))
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.Equal(t, "You can only edit your own tryouts", fe.Message)

	// pemilik boleh
	got, err := svc.Update(context.Background(), to.TryoutID, patch, actorOf(owner))
	require.NoError(t, err)
	assert.Equal(t, "Judul Baru", got.TryoutTitle)

	// admin boleh menyunting milik siapa pun
	require.NoError(t, patchJSON(patch, `{"tryout_title":"Judul Admin"}`))
	got, err = svc.Update(context.Background(), to.TryoutID, patch, actorOf(admin))
	require.NoError(t, err)
	assert.Equal(t, "Judul Admin", got.TryoutTitle)
}

func TestTryoutUpdate_PatchNullMenghapusKolom(t *testing.T) {
	db := newTestDB(t)
	svc := NewTryoutService(db)
	owner := seedGuru(t, db, nil)

	desc := "deskripsi awal"
	to := seedTryout(t, db, owner.UserID, func(m *model.TryoutModel) {
		m.TryoutDescription = &desc
	})

	patch := &dto.PatchTryoutRequest{}
	require.NoError(t, patchJSON(patch, `{"tryout_description":null}`))

	got, err := svc.Update(context.Background(), to.TryoutID, patch, actorOf(owner))
	require.NoError(t, err)
	assert.Nil(t, got.TryoutDescription)
}

func TestTryoutDelete_CascadeDanIzin(t *testing.T) {
	db := newTestDB(t)
	svc := NewTryoutService(db)

	owner := seedGuru(t, db, nil)
	other := seedGuru(t, db, nil)
	to := seedTryout(t, db, owner.UserID, nil)
	seedQuestion(t, db, to.TryoutID, 1)
	seedQuestion(t, db, to.TryoutID, 2)

	// guru lain ditolak
	err := svc.Delete(context.Background(), to.TryoutID, actorOf(other))
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, "You can only delete your own tryouts", fe.Message)

	// pemilik menghapus; soal ikut hilang via FK cascade
	require.NoError(t, svc.Delete(context.Background(), to.TryoutID, actorOf(owner)))

	var remaining int64
	require.NoError(t, db.Model(&model.QuestionModel{}).
		Where("question_tryout_id = ?", to.TryoutID).
		Count(&remaining).Error)
	assert.EqualValues(t, 0, remaining)

	// idempoten: hapus lagi → 404
	err = svc.Delete(context.Background(), to.TryoutID, actorOf(owner))
	require.Error(t, err)
	fe, ok = err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestTryoutDuplicate_SemantikSalinan(t *testing.T) {
	db := newTestDB(t)
	svc := NewTryoutService(db)

	owner := seedGuru(t, db, nil)
	duplicator := seedAdmin(t, db)

	start := timeNowPtr()
	to := seedTryout(t, db, owner.UserID, func(m *model.TryoutModel) {
		m.TryoutTitle = "Paket Intensif"
		m.TryoutStartTime = start
		m.TryoutEndTime = start
	})
	seedQuestion(t, db, to.TryoutID, 1)
	seedQuestion(t, db, to.TryoutID, 2)

	copied, err := svc.Duplicate(context.Background(), to.TryoutID, actorOf(duplicator))
	require.NoError(t, err)

	assert.Equal(t, "Paket Intensif (Copy)", copied.TryoutTitle)
	assert.NotEqual(t, to.TryoutID, copied.TryoutID)
	// pemilik salinan = yang menduplikasi, bukan creator asli
	assert.Equal(t, duplicator.UserID, copied.TryoutCreatorID)
	// jadwal di-reset
	assert.Nil(t, copied.TryoutStartTime)
	assert.Nil(t, copied.TryoutEndTime)

	var copiedQuestions int64
	require.NoError(t, db.Model(&model.QuestionModel{}).
		Where("question_tryout_id = ?", copied.TryoutID).
		Count(&copiedQuestions).Error)
	assert.EqualValues(t, 2, copiedQuestions)
}

// Gagal menyalin soal tidak menggagalkan duplikasi: induk tetap dibuat,
// error anak hanya dicatat.
func TestTryoutDuplicate_GagalSalinSoalTetapSukses(t *testing.T) {
	db := newTestDB(t)
	svc := NewTryoutService(db)

	owner := seedGuru(t, db, nil)
	to := seedTryout(t, db, owner.UserID, nil)
	seedQuestion(t, db, to.TryoutID, 1)
	seedQuestion(t, db, to.TryoutID, 2)

	// paksa insert soal ke tryout lain gagal — hanya salinan yang kena
	ddl := fmt.Sprintf(`CREATE TRIGGER tolak_salinan_soal
		BEFORE INSERT ON questions
		WHEN NEW.question_tryout_id <> '%s'
		BEGIN SELECT RAISE(ABORT, 'insert soal ditolak'); END`, to.TryoutID)
	require.NoError(t, db.Exec(ddl).Error)

	copied, err := svc.Duplicate(context.Background(), to.TryoutID, actorOf(owner))
	require.NoError(t, err)
	require.NotNil(t, copied)
	assert.Equal(t, to.TryoutTitle+" (Copy)", copied.TryoutTitle)

	// induk ter-commit
	var parents int64
	require.NoError(t, db.Model(&model.TryoutModel{}).
		Where("tryout_id = ?", copied.TryoutID).
		Count(&parents).Error)
	assert.EqualValues(t, 1, parents)

	// salinan soal tidak ada
	var copiedQuestions int64
	require.NoError(t, db.Model(&model.QuestionModel{}).
		Where("question_tryout_id = ?", copied.TryoutID).
		Count(&copiedQuestions).Error)
	assert.EqualValues(t, 0, copiedQuestions)

	// sumber tidak tersentuh
	var sourceQuestions int64
	require.NoError(t, db.Model(&model.QuestionModel{}).
		Where("question_tryout_id = ?", to.TryoutID).
		Count(&sourceQuestions).Error)
	assert.EqualValues(t, 2, sourceQuestions)
}

func TestTryoutDuplicate_SumberTidakAda(t *testing.T) {
	db := newTestDB(t)
	svc := NewTryoutService(db)
	admin := seedAdmin(t, db)

	_, err := svc.Duplicate(context.Background(), "tryout-000-hilang1", actorOf(admin))
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.Equal(t, "Tryout not found", fe.Message)
}
