// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authctl "schoolku_backend/internals/features/users/auth/controller"
	"schoolku_backend/internals/middlewares"
	authmw "schoolku_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth: public login plus the authenticated logout/me.
func AuthRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	ctl := authctl.New(db, v)

	grp := app.Group("/api/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/logout", authmw.AuthMiddleware(db), ctl.Logout)
	grp.Get("/me", authmw.AuthMiddleware(db), ctl.Me)
}
