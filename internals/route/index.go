package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	configs "schoolku_backend/internals/configs"
	assignmentRoute "schoolku_backend/internals/features/school/assignments/route"
	authRoute "schoolku_backend/internals/features/school/auth/route"
	fieldRoute "schoolku_backend/internals/features/school/fields/route"
	groupRoute "schoolku_backend/internals/features/school/groups/route"
	levelRoute "schoolku_backend/internals/features/school/levels/route"
	schoolRoute "schoolku_backend/internals/features/school/schools/route"
	sessionRoute "schoolku_backend/internals/features/school/sessions/route"
	subjectRoute "schoolku_backend/internals/features/school/subjects/route"
	teacherRoute "schoolku_backend/internals/features/school/teachers/route"
	userRoute "schoolku_backend/internals/features/school/users/route"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== BACK-OFFICE RESOURCES =====================
	schoolRoute.SchoolRoutes(app, db)
	levelRoute.LevelRoutes(app, db)
	groupRoute.GroupRoutes(app, db)
	fieldRoute.FieldRoutes(app, db)
	subjectRoute.SubjectRoutes(app, db)
	teacherRoute.TeacherRoutes(app, db)
	userRoute.UserRoutes(app, db)
	assignmentRoute.AssignmentRoutes(app, db)
	sessionRoute.SessionRoutes(app, db)

	// ===================== ADMIN (token-guarded) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRole("admin"),
	)
	userRoute.UserRoutes(admin, db)
}
