package models

import (
	"time"

	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleAdmin         Role = "admin"
	RolePresident     Role = "president"
	RoleVicePresident Role = "vice_president"
	RoleSecretary     Role = "secretary"
	RoleHoldingsWrite Role = "holdings_write"
	RoleHoldingsRead  Role = "holdings_read"
	RoleUser          Role = "user"
)

// User represents a club member account. Exactly one of Password or
// GoogleID is expected to be set, depending on how the account was created.
type User struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name           string         `json:"name" gorm:"not null"`
	Email          string         `json:"email" gorm:"uniqueIndex;not null"`
	Password       string         `json:"-" gorm:"default:null"` // bcrypt hash, never exposed in JSON
	GoogleID       *string        `json:"-" gorm:"default:null;uniqueIndex"`
	Role           Role           `json:"role" gorm:"type:varchar(20);default:'user'"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`
	ProfilePicture *string        `json:"profile_picture" gorm:"default:null"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	_, ok := roleRanks[Role(s)]
	return ok
}
