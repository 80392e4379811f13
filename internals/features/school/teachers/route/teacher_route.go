package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "schoolku_backend/internals/features/school/teachers/controller"
)

func TeacherRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewTeacherController(db)

	r := app.Group("/teachers")
	r.Post("/", ctrl.CreateTeacher)
	r.Get("/", ctrl.ListTeachers)
	r.Get("/:id", ctrl.GetTeacher)
	r.Put("/:id", ctrl.UpdateTeacher)
	r.Delete("/:id", ctrl.DeleteTeacher)
}
