package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "schoolku_backend/internals/features/school/auth/controller"
	middlewares "schoolku_backend/internals/middlewares"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	r := app.Group("/auth")
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
