// file: internals/helpers/auth/acting_identity.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tryoutku_backend/internals/constants"
)

// Locals keys yang dihydrate oleh middleware auth
const (
	LocUserID   = "user_id"
	LocUserRole = "user_role"
	LocSchoolID = "school_id"
)

// ActingIdentity adalah identitas ter-autentikasi yang dioper eksplisit
// ke setiap operasi service — tidak ada lookup sesi tersembunyi di service.
type ActingIdentity struct {
	ID       uuid.UUID
	Role     string
	SchoolID *uuid.UUID
}

func (a ActingIdentity) IsAdmin() bool { return a.Role == constants.RoleAdmin }
func (a ActingIdentity) IsGuru() bool  { return a.Role == constants.RoleGuru }
func (a ActingIdentity) IsSiswa() bool { return a.Role == constants.RoleSiswa }

// GetActingIdentity membaca identitas dari Locals (diisi middleware AuthJWT).
// 401 jika tidak ada token/user valid di context.
func GetActingIdentity(c *fiber.Ctx) (ActingIdentity, error) {
	raw, _ := c.Locals(LocUserID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ActingIdentity{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return ActingIdentity{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	role, _ := c.Locals(LocUserRole).(string)
	role = strings.ToLower(strings.TrimSpace(role))
	if !constants.IsValidRole(role) {
		return ActingIdentity{}, fiber.NewError(fiber.StatusUnauthorized, "Profile not found")
	}

	actor := ActingIdentity{ID: id, Role: role}
	if s, _ := c.Locals(LocSchoolID).(string); strings.TrimSpace(s) != "" {
		if sid, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
			actor.SchoolID = &sid
		}
	}
	return actor, nil
}
