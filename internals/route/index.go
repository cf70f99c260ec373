// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tryoutku_backend/internals/configs"
	schoolRoute "tryoutku_backend/internals/features/schools/route"
	tryoutRoute "tryoutku_backend/internals/features/tryouts/route"
	userRoute "tryoutku_backend/internals/features/users/route"
	authMw "tryoutku_backend/internals/middlewares/auth"
)

// SetupRoutes merangkai seluruh endpoint aplikasi:
//   - /api/a : publik (auth)
//   - /api/u : butuh JWT (tryout, question, school, user)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// 🌐 Publik
	public := api.Group("/a")
	userRoute.AuthRoutes(public, db)

	// 🔒 Wajib login
	private := api.Group("/u", authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))
	userRoute.UserRoutes(private, db)
	schoolRoute.SchoolRoutes(private, db)
	tryoutRoute.TryoutRoutes(private, db)
}
