// file: internals/features/tryouts/service/policy.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	helperAuth "tryoutku_backend/internals/helpers/auth"
)

/* =========================================================
   ACCESS CONTROL POLICY
   Dua predikat ini satu-satunya logika otorisasi di core.
========================================================= */

// CanMutate: admin, atau aktor adalah pemilik resource.
func CanMutate(actor helperAuth.ActingIdentity, resourceOwnerID uuid.UUID) bool {
	return actor.IsAdmin() || actor.ID == resourceOwnerID
}

// VisibilityScope: filter dasar listing tryout per role.
// - admin : semua baris
// - guru  : hanya buatan sendiri
// - siswa : global ATAU satu sekolah
func VisibilityScope(actor helperAuth.ActingIdentity) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case actor.IsAdmin():
			return db
		case actor.IsGuru():
			return db.Where("tryout_creator_id = ?", actor.ID)
		default:
			if actor.SchoolID != nil {
				return db.Where("tryout_is_global = ? OR tryout_school_id = ?", true, *actor.SchoolID)
			}
			return db.Where("tryout_is_global = ?", true)
		}
	}
}
