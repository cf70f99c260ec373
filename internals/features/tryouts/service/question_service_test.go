// file: internals/features/tryouts/service/question_service_test.go
package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "tryoutku_backend/internals/features/tryouts/dto"
	model "tryoutku_backend/internals/features/tryouts/model"
)

func TestQuestionCreate_DefaultSkorDanValidasi(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	owner := seedGuru(t, db, nil)
	to := seedTryout(t, db, owner.UserID, nil)

	got, err := svc.Create(context.Background(), createQuestionReq(to.TryoutID, 1), actorOf(owner))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultQuestionScore, got.QuestionScore)
	assert.NotEqual(t, uuid.Nil, got.QuestionID)
}

func TestQuestionCreate_IzinDitolakUntukBukanPemilik(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	owner := seedGuru(t, db, nil)
	other := seedGuru(t, db, nil)
	to := seedTryout(t, db, owner.UserID, nil)

	_, err := svc.Create(context.Background(), createQuestionReq(to.TryoutID, 1), actorOf(other))
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.Equal(t, "No permission to add questions to this tryout", fe.Message)
}

func TestQuestionCreate_PayloadTidakCocokDenganTipe(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	owner := seedGuru(t, db, nil)
	to := seedTryout(t, db, owner.UserID, nil)

	req := createQuestionReq(to.TryoutID, 1)
	req.QuestionType = string(model.QuestionTypeMultipleChoice) // payload true_false

	_, err := svc.Create(context.Background(), req, actorOf(owner))
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
}

func TestQuestionCreate_TryoutTidakAda(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	admin := seedAdmin(t, db)

	_, err := svc.Create(context.Background(), createQuestionReq("tryout-000-hilang1", 1), actorOf(admin))
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.Equal(t, "Tryout not found", fe.Message)
}

func TestQuestionGetByID_TidakDitemukan(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)

	_, err := svc.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.Equal(t, "Question not found", fe.Message)
}

func TestQuestionUpdate_ValidasiPasanganTipeData(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	owner := seedGuru(t, db, nil)
	to := seedTryout(t, db, owner.UserID, nil)
	q := seedQuestion(t, db, to.TryoutID, 1)

	// ganti tipe tanpa mengganti data → data lama tidak cocok → 422
	patch := &dto.PatchQuestionRequest{}
	require.NoError(t, patchJSON(patch, `{"question_type":"multiple_choice"}`))
	_, err := svc.Update(context.Background(), q.QuestionID, patch, actorOf(owner))
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)

	// ganti tipe + data sekaligus → valid
	patch = &dto.PatchQuestionRequest{}
	body := map[string]any{
		"question_type": "short_answer",
		"question_data": json.RawMessage(`{
			"question": [{"type":"text","content":"Rumus kimia garam dapur?"}],
			"correct_answers": ["NaCl"]
		}`),
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	require.NoError(t, patchJSON(patch, string(raw)))

	got, err := svc.Update(context.Background(), q.QuestionID, patch, actorOf(owner))
	require.NoError(t, err)
	assert.Equal(t, model.QuestionTypeShortAnswer, got.QuestionType)
}

func TestQuestionUpdate_IzinDitolak(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	owner := seedGuru(t, db, nil)
	other := seedGuru(t, db, nil)
	to := seedTryout(t, db, owner.UserID, nil)
	q := seedQuestion(t, db, to.TryoutID, 1)

	patch := &dto.PatchQuestionRequest{}
	require.NoError(t, patchJSON(patch, `{"question_score":25}`))

	_, err := svc.Update(context.Background(), q.QuestionID, patch, actorOf(other))
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, "No permission to update this question", fe.Message)
}

// Hapus soal nomor 2 dari {1,2,3}: sisa harus rapat kembali jadi {1,2}.
func TestQuestionDelete_MerapatkanNomor(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	owner := seedGuru(t, db, nil)
	to := seedTryout(t, db, owner.UserID, nil)

	q1 := seedQuestion(t, db, to.TryoutID, 1)
	q2 := seedQuestion(t, db, to.TryoutID, 2)
	q3 := seedQuestion(t, db, to.TryoutID, 3)

	require.NoError(t, svc.Delete(context.Background(), q2.QuestionID, actorOf(owner)))

	rows, err := svc.ListByTryout(context.Background(), to.TryoutID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, q1.QuestionID, rows[0].QuestionID)
	assert.Equal(t, 1, rows[0].QuestionNumber)
	assert.Equal(t, q3.QuestionID, rows[1].QuestionID)
	assert.Equal(t, 2, rows[1].QuestionNumber)
}

func TestQuestionDelete_IzinDitolak(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	owner := seedGuru(t, db, nil)
	other := seedGuru(t, db, nil)
	to := seedTryout(t, db, owner.UserID, nil)
	q := seedQuestion(t, db, to.TryoutID, 1)

	err := svc.Delete(context.Background(), q.QuestionID, actorOf(other))
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, "No permission to delete this question", fe.Message)
}

func TestQuestionDuplicate_NomorBaruDiAkhir(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	owner := seedGuru(t, db, nil)
	to := seedTryout(t, db, owner.UserID, nil)

	q1 := seedQuestion(t, db, to.TryoutID, 1)
	seedQuestion(t, db, to.TryoutID, 2)

	copied, err := svc.Duplicate(context.Background(), q1.QuestionID, actorOf(owner))
	require.NoError(t, err)

	assert.Equal(t, 3, copied.QuestionNumber)
	assert.Equal(t, q1.QuestionType, copied.QuestionType)
	assert.Equal(t, q1.QuestionScore, copied.QuestionScore)
	assert.NotEqual(t, q1.QuestionID, copied.QuestionID)
	assert.JSONEq(t, string(q1.QuestionData), string(copied.QuestionData))
}

func TestQuestionDuplicate_IzinDitolak(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	owner := seedGuru(t, db, nil)
	siswa := seedSiswa(t, db, nil)
	to := seedTryout(t, db, owner.UserID, nil)
	q := seedQuestion(t, db, to.TryoutID, 1)

	_, err := svc.Duplicate(context.Background(), q.QuestionID, actorOf(siswa))
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, "No permission to duplicate this question", fe.Message)
}

func TestQuestionReorder_TukarNomor(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	owner := seedGuru(t, db, nil)
	to := seedTryout(t, db, owner.UserID, nil)

	q1 := seedQuestion(t, db, to.TryoutID, 1)
	q2 := seedQuestion(t, db, to.TryoutID, 2)

	orders := []dto.QuestionOrder{
		{QuestionID: q1.QuestionID, QuestionNumber: 2},
		{QuestionID: q2.QuestionID, QuestionNumber: 1},
	}
	require.NoError(t, svc.Reorder(context.Background(), to.TryoutID, orders, actorOf(owner)))

	rows, err := svc.ListByTryout(context.Background(), to.TryoutID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, q2.QuestionID, rows[0].QuestionID)
	assert.Equal(t, q1.QuestionID, rows[1].QuestionID)
}

func TestQuestionReorder_IzinDitolak(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	owner := seedGuru(t, db, nil)
	other := seedGuru(t, db, nil)
	to := seedTryout(t, db, owner.UserID, nil)
	q := seedQuestion(t, db, to.TryoutID, 1)

	err := svc.Reorder(context.Background(), to.TryoutID,
		[]dto.QuestionOrder{{QuestionID: q.QuestionID, QuestionNumber: 1}},
		actorOf(other))
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, "No permission to reorder questions", fe.Message)
}

// Soal milik tryout lain tidak boleh tersentuh reorder.
func TestQuestionReorder_TerbatasPadaTryout(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	owner := seedGuru(t, db, nil)

	toA := seedTryout(t, db, owner.UserID, nil)
	toB := seedTryout(t, db, owner.UserID, nil)
	qa := seedQuestion(t, db, toA.TryoutID, 1)
	qb := seedQuestion(t, db, toB.TryoutID, 1)

	// coba ubah nomor soal B lewat reorder tryout A
	require.NoError(t, svc.Reorder(context.Background(), toA.TryoutID,
		[]dto.QuestionOrder{{QuestionID: qb.QuestionID, QuestionNumber: 9}},
		actorOf(owner)))

	got, err := svc.GetByID(context.Background(), qb.QuestionID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.QuestionNumber)

	got, err = svc.GetByID(context.Background(), qa.QuestionID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.QuestionNumber)
}
