// file: internals/route/index.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	academicsRoute "schoolku_backend/internals/features/school/academics/route"
	schoolctl "schoolku_backend/internals/features/school/schools/controller"
	timetableRoute "schoolku_backend/internals/features/school/timetable/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	authmw "schoolku_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature group onto the app.
//
//	/api/auth  public login + me
//	/api/u     any authenticated user (teacher day/week views)
//	/api/a     admins only (master data + timetable management)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	authRoute.AuthRoutes(app, db, v)

	user := app.Group("/api/u", authmw.AuthMiddleware(db))
	timetableRoute.TimetableUserRoutes(user, db)

	admin := app.Group("/api/a",
		authmw.AuthMiddleware(db),
		authmw.OnlyRoles("", constants.RoleAdmin),
	)

	schools := schoolctl.New(db, v)
	grpSchools := admin.Group("/schools")
	grpSchools.Get("/", schools.List)
	grpSchools.Post("/", schools.Create)
	grpSchools.Get("/:id", schools.GetByID)
	grpSchools.Patch("/:id", schools.Patch)
	grpSchools.Delete("/:id", schools.Delete)

	academicsRoute.AcademicsAdminRoutes(admin, db, v)
	timetableRoute.TimetableAdminRoutes(admin, db, v)
}
