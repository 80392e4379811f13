package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "schoolku_backend/internals/features/school/sessions/controller"
)

// SessionRoutes mounts the session command surface.
//
// TODO: add unique indexes on (session_teacher_id, session_teacher_schedule_slot)
// and (session_group_id, session_group_schedule_slot) once slot ownership is
// confirmed to live here; today two concurrent creates can book the same slot.
func SessionRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewSessionController(db)

	r := app.Group("/sessions")
	r.Post("/", ctrl.CreateSession)
	r.Get("/", ctrl.ListSessions)
	r.Get("/:id", ctrl.GetSession)
	r.Put("/:id", ctrl.UpdateSession)
	r.Delete("/:id", ctrl.DeleteSession)
}
