// file: internals/features/tryouts/service/testenv_test.go
package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tryoutku_backend/internals/constants"
	dto "tryoutku_backend/internals/features/tryouts/dto"
	model "tryoutku_backend/internals/features/tryouts/model"
	umodel "tryoutku_backend/internals/features/users/model"
	helperAuth "tryoutku_backend/internals/helpers/auth"
)

// newTestDB membuka sqlite in-memory dengan FK aktif (cascade delete
// soal bergantung padanya) dan skema lengkap.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&umodel.UserModel{},
		&model.TryoutModel{},
		&model.QuestionModel{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role string, schoolID *uuid.UUID) *umodel.UserModel {
	t.Helper()
	u := &umodel.UserModel{
		UserEmail:    uuid.NewString() + "@test.local",
		UserPassword: "x",
		UserName:     "User " + role,
		UserRole:     role,
		UserSchoolID: schoolID,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func actorOf(u *umodel.UserModel) helperAuth.ActingIdentity {
	return helperAuth.ActingIdentity{
		ID:       u.UserID,
		Role:     u.UserRole,
		SchoolID: u.UserSchoolID,
	}
}

func seedTryout(t *testing.T, db *gorm.DB, creatorID uuid.UUID, mut func(*model.TryoutModel)) *model.TryoutModel {
	t.Helper()
	m := &model.TryoutModel{
		TryoutID:           model.NewTryoutID(),
		TryoutTitle:        "Tryout UTBK",
		TryoutCreatorID:    creatorID,
		TryoutIsGlobal:     true,
		TryoutPricingModel: model.PricingFree,
	}
	if mut != nil {
		mut(m)
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func trueFalsePayload() datatypes.JSON {
	return datatypes.JSON(`{
		"question": [{"type":"text","content":"Bumi mengelilingi matahari"}],
		"correct_answer": true
	}`)
}

func seedQuestion(t *testing.T, db *gorm.DB, tryoutID string, number int) *model.QuestionModel {
	t.Helper()
	q := &model.QuestionModel{
		QuestionTryoutID: tryoutID,
		QuestionNumber:   number,
		QuestionType:     model.QuestionTypeTrueFalse,
		QuestionData:     trueFalsePayload(),
		QuestionScore:    model.DefaultQuestionScore,
	}
	require.NoError(t, db.Create(q).Error)
	return q
}

func createQuestionReq(tryoutID string, number int) *dto.CreateQuestionRequest {
	return &dto.CreateQuestionRequest{
		QuestionTryoutID: tryoutID,
		QuestionNumber:   number,
		QuestionType:     string(model.QuestionTypeTrueFalse),
		QuestionData:     json.RawMessage(trueFalsePayload()),
	}
}

func seedAdmin(t *testing.T, db *gorm.DB) *umodel.UserModel {
	return seedUser(t, db, constants.RoleAdmin, nil)
}

func seedGuru(t *testing.T, db *gorm.DB, schoolID *uuid.UUID) *umodel.UserModel {
	return seedUser(t, db, constants.RoleGuru, schoolID)
}

func seedSiswa(t *testing.T, db *gorm.DB, schoolID *uuid.UUID) *umodel.UserModel {
	return seedUser(t, db, constants.RoleSiswa, schoolID)
}

func uuidPtr(v uuid.UUID) *uuid.UUID { return &v }

// patchJSON mengisi struct patch lewat JSON supaya semantik tri-state
// UpdateField (absent/null/value) ikut teruji.
func patchJSON(dst any, raw string) error {
	return json.Unmarshal([]byte(raw), dst)
}

func timeNowPtr() *time.Time {
	v := time.Now().UTC().Truncate(time.Second)
	return &v
}
