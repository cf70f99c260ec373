package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tryoutcontroller "tryoutku_backend/internals/features/tryouts/controller"
)

/*
Catatan:
- Pasang middleware AuthJWT di parent router `r` (prefix: /api/u).
- Path hasil:
  - /api/u/tryouts/...
  - /api/u/questions/...
*/

func TryoutRoutes(r fiber.Router, db *gorm.DB) {
	// ============================
	// TRYOUTS -> /api/u/tryouts
	// ============================
	tryoutCtrl := tryoutcontroller.NewTryoutController(db)
	tryouts := r.Group("/tryouts")

	tryouts.Get("/", tryoutCtrl.List)               // GET    /api/u/tryouts?search=&pricing_model=&sort_by=&page=
	tryouts.Post("/", tryoutCtrl.Create)            // POST   /api/u/tryouts
	tryouts.Get("/:id", tryoutCtrl.GetByID)         // GET    /api/u/tryouts/:id
	tryouts.Patch("/:id", tryoutCtrl.Patch)         // PATCH  /api/u/tryouts/:id
	tryouts.Delete("/:id", tryoutCtrl.Delete)       // DELETE /api/u/tryouts/:id
	tryouts.Post("/:id/duplicate", tryoutCtrl.Duplicate) // POST /api/u/tryouts/:id/duplicate

	// ============================
	// QUESTIONS (soal JSONB) -> /api/u/questions
	// ============================
	qCtrl := tryoutcontroller.NewQuestionController(db)

	tryouts.Get("/:id/questions", qCtrl.ListByTryout)      // GET /api/u/tryouts/:id/questions
	tryouts.Put("/:id/questions/reorder", qCtrl.Reorder)   // PUT /api/u/tryouts/:id/questions/reorder

	questions := r.Group("/questions")
	questions.Post("/", qCtrl.Create)                  // POST   /api/u/questions
	questions.Get("/types", qCtrl.ListTypes)           // GET    /api/u/questions/types (daftar sebelum :id)
	questions.Get("/:id", qCtrl.GetByID)               // GET    /api/u/questions/:id
	questions.Patch("/:id", qCtrl.Patch)               // PATCH  /api/u/questions/:id
	questions.Delete("/:id", qCtrl.Delete)             // DELETE /api/u/questions/:id
	questions.Post("/:id/duplicate", qCtrl.Duplicate)  // POST   /api/u/questions/:id/duplicate
}
