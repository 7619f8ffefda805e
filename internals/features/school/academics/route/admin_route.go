// file: internals/features/school/academics/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomctl "schoolku_backend/internals/features/school/academics/classrooms/controller"
	subjectctl "schoolku_backend/internals/features/school/academics/subjects/controller"
	teacherctl "schoolku_backend/internals/features/school/academics/teachers/controller"
)

// AcademicsAdminRoutes registers classroom/subject/teacher CRUD for admins.
func AcademicsAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	classrooms := classroomctl.New(db, v)
	grpRooms := admin.Group("/classrooms")
	grpRooms.Post("/", classrooms.Create)
	grpRooms.Patch("/:id", classrooms.Patch)
	grpRooms.Delete("/:id", classrooms.Delete)
	admin.Get("/schools/:school_id/classrooms", classrooms.List)

	subjects := subjectctl.New(db, v)
	grpSubjects := admin.Group("/subjects")
	grpSubjects.Post("/", subjects.Create)
	grpSubjects.Patch("/:id", subjects.Patch)
	grpSubjects.Delete("/:id", subjects.Delete)
	admin.Get("/schools/:school_id/subjects", subjects.List)

	teachers := teacherctl.New(db, v)
	grpTeachers := admin.Group("/teachers")
	grpTeachers.Post("/", teachers.Create)
	grpTeachers.Patch("/:id", teachers.Patch)
	grpTeachers.Delete("/:id", teachers.Delete)
	admin.Get("/schools/:school_id/teachers", teachers.List)
}
