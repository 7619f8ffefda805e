// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id"`

	UserEmail        string `json:"user_email" gorm:"type:text;not null;uniqueIndex;column:user_email"`
	UserPasswordHash string `json:"-" gorm:"type:text;not null;column:user_password_hash"`
	UserFullName     string `json:"user_full_name" gorm:"type:text;not null;column:user_full_name"`

	// Role within the active school scope: admin | teacher
	UserRole     string     `json:"user_role" gorm:"type:text;not null;column:user_role"`
	UserSchoolID *uuid.UUID `json:"user_school_id,omitempty" gorm:"type:uuid;column:user_school_id"`

	UserIsActive bool `json:"user_is_active" gorm:"not null;default:true;column:user_is_active"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.UserPasswordHash = string(hash)
	return nil
}

func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.UserPasswordHash), []byte(plain)) == nil
}
