package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "schoolku_backend/internals/features/school/subjects/controller"
)

func SubjectRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)

	r := app.Group("/subjects")
	r.Post("/", ctrl.CreateSubject)
	r.Get("/", ctrl.ListSubjects)
	r.Get("/:id", ctrl.GetSubject)
	r.Put("/:id", ctrl.UpdateSubject)
	r.Delete("/:id", ctrl.DeleteSubject)
}
