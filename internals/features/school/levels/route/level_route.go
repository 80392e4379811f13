package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	levelController "schoolku_backend/internals/features/school/levels/controller"
)

func LevelRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := levelController.NewLevelController(db)

	r := app.Group("/levels")
	r.Post("/", ctrl.CreateLevel)
	r.Get("/", ctrl.ListLevels)
	r.Get("/:id", ctrl.GetLevel)
	r.Put("/:id", ctrl.UpdateLevel)
	r.Delete("/:id", ctrl.DeleteLevel)
}
