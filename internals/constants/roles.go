package constants

// Role values carried in the JWT "role" claim.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
)
