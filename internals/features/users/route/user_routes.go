// file: internals/features/users/route/user_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "tryoutku_backend/internals/features/users/controller"
	"tryoutku_backend/internals/middlewares"
)

// AuthRoutes mendaftarkan endpoint publik (register/login) lengkap dengan
// rate limiter masing-masing.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// UserRoutes mendaftarkan endpoint user yang butuh autentikasi.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	users := r.Group("/users")
	users.Get("/me", ctl.Me)
}
