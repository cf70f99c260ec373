// file: internals/features/schools/route/school_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tryoutku_backend/internals/constants"
	controller "tryoutku_backend/internals/features/schools/controller"
	authMw "tryoutku_backend/internals/middlewares/auth"
)

func SchoolRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSchoolController(db)

	// mutasi sekolah khusus admin; baca terbuka untuk user login
	adminOnly := authMw.RequireRoles(constants.AdminOnly...)

	schools := r.Group("/schools")
	schools.Post("/", adminOnly, ctl.Create)
	schools.Get("/", ctl.List)
	schools.Get("/:id", ctl.GetByID)
	schools.Patch("/:id", adminOnly, ctl.Update)
	schools.Delete("/:id", adminOnly, ctl.Delete)
}
