// file: internals/features/users/auth/seed/seed.go
package seed

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	m "schoolku_backend/internals/features/users/auth/model"
)

// EnsureBootstrapAdmin creates the first admin account from
// BOOTSTRAP_ADMIN_EMAIL / BOOTSTRAP_ADMIN_PASSWORD. Unset env or an
// existing account with that email makes this a no-op.
func EnsureBootstrapAdmin(db *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(configs.GetEnv("BOOTSTRAP_ADMIN_EMAIL")))
	password := configs.GetEnv("BOOTSTRAP_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var existing m.UserModel
	err := db.Where("user_email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user := m.UserModel{
		UserEmail:    email,
		UserFullName: configs.GetEnv("BOOTSTRAP_ADMIN_NAME", "Administrator"),
		UserRole:     constants.RoleAdmin,
		UserIsActive: true,
	}
	if err := user.SetPassword(password); err != nil {
		return err
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	log.Printf("[SEED] bootstrap admin %s created", email)
	return nil
}
