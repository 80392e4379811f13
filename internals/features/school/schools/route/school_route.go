package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "schoolku_backend/internals/features/school/schools/controller"
)

func SchoolRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := schoolController.NewSchoolController(db)

	r := app.Group("/schools")
	r.Post("/", ctrl.CreateSchool)
	r.Get("/", ctrl.ListSchools)
	r.Get("/:id", ctrl.GetSchool)
	r.Put("/:id", ctrl.UpdateSchool)
	r.Delete("/:id", ctrl.DeleteSchool)
}
