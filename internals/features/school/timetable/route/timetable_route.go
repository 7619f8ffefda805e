// file: internals/features/school/timetable/route/timetable_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentctl "schoolku_backend/internals/features/school/timetable/assignments/controller"
	schedulectl "schoolku_backend/internals/features/school/timetable/schedules/controller"
	timingctl "schoolku_backend/internals/features/school/timetable/timings/controller"
)

// TimetableAdminRoutes registers the admin-side timetable surface: timing
// documents, assignments, schedule copies and schedule rows.
func TimetableAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	timings := timingctl.New(db, v)
	admin.Get("/schools/:school_id/schedule-timings", timings.Get)
	admin.Put("/schools/:school_id/schedule-timings", timings.Upsert)

	assignments := assignmentctl.New(db, v)
	grpAssignments := admin.Group("/assignments")
	grpAssignments.Post("/", assignments.Create)
	grpAssignments.Post("/bulk", assignments.BulkCreate)
	grpAssignments.Patch("/:id", assignments.Patch)
	grpAssignments.Delete("/:id", assignments.Delete)
	admin.Get("/schools/:school_id/assignments", assignments.List)

	copies := schedulectl.NewScheduleCopyController(db, v)
	grpCopies := admin.Group("/schedule-copies")
	grpCopies.Post("/", copies.Create)
	grpCopies.Post("/:id/activate", copies.Activate)
	grpCopies.Delete("/:id", copies.Delete)
	admin.Get("/schools/:school_id/schedule-copies", copies.ListBySchool)

	schedules := schedulectl.NewScheduleController(db, v)
	grpCopies.Get("/:copy_id/schedules", schedules.ListByCopy)
	grpSchedules := admin.Group("/schedules")
	grpSchedules.Post("/", schedules.Create)
	grpSchedules.Patch("/:id", schedules.Patch)
	grpSchedules.Delete("/:id", schedules.Delete)
}

// TimetableUserRoutes registers the teacher-facing read side.
func TimetableUserRoutes(user fiber.Router, db *gorm.DB) {
	timetable := schedulectl.NewTimetableController(db)
	user.Get("/schools/:school_id/timetable", timetable.MyDay)
	user.Get("/schools/:school_id/timetable/week", timetable.MyWeek)
}
