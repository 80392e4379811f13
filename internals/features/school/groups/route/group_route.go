package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupController "schoolku_backend/internals/features/school/groups/controller"
)

func GroupRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := groupController.NewGroupController(db)

	r := app.Group("/groups")
	r.Post("/", ctrl.CreateGroup)
	r.Get("/", ctrl.ListGroups)
	r.Get("/:id", ctrl.GetGroup)
	r.Put("/:id", ctrl.UpdateGroup)
	r.Delete("/:id", ctrl.DeleteGroup)
}
