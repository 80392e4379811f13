package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fieldController "schoolku_backend/internals/features/school/fields/controller"
)

func FieldRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := fieldController.NewFieldController(db)

	r := app.Group("/fields")
	r.Post("/", ctrl.CreateField)
	r.Get("/", ctrl.ListFields)
	r.Get("/:id", ctrl.GetField)
	r.Put("/:id", ctrl.UpdateField)
	r.Delete("/:id", ctrl.DeleteField)
}
