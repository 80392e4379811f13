package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignController "schoolku_backend/internals/features/school/assignments/controller"
)

func AssignmentRoutes(app fiber.Router, db *gorm.DB) {
	gc := assignController.NewGroupCoordinatorController(db)
	r := app.Group("/group-coordinators")
	r.Post("/", gc.Create)
	r.Get("/", gc.List)
	r.Get("/:id", gc.Get)
	r.Delete("/:id", gc.Delete)

	tc := assignController.NewTeacherCoordinatorController(db)
	r = app.Group("/teacher-coordinators")
	r.Post("/", tc.Create)
	r.Get("/", tc.List)
	r.Get("/:id", tc.Get)
	r.Delete("/:id", tc.Delete)

	tf := assignController.NewTeacherFieldController(db)
	r = app.Group("/teacher-fields")
	r.Post("/", tf.Create)
	r.Get("/", tf.List)
	r.Get("/:id", tf.Get)
	r.Delete("/:id", tf.Delete)
}
