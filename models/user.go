package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username     string `gorm:"size:100" json:"username"`
	Email        string `gorm:"size:150;uniqueIndex" json:"email"`
	Phone        string `gorm:"size:20" json:"phone"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Role         string `gorm:"size:20;default:user" json:"role"`
	IsVerified   bool   `gorm:"default:false" json:"isVerified"`

	Bookings []Booking `gorm:"foreignKey:UserID" json:"bookings,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
