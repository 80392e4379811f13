package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "schoolku_backend/internals/features/school/users/controller"
)

func UserRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	r := app.Group("/users")
	r.Post("/", ctrl.CreateUser)
	r.Get("/", ctrl.ListUsers)
	r.Get("/:id", ctrl.GetUser)
	r.Put("/:id", ctrl.UpdateUser)
	r.Delete("/:id", ctrl.DeleteUser)
}
