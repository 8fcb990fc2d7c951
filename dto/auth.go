package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/augie-sif/sif-backend/models"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents password-based registration data
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// GoogleAuthRequest represents registration/login through the club's
// Google sign-in gateway
type GoogleAuthRequest struct {
	GoogleID       string  `json:"google_id" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Name           string  `json:"name" binding:"required"`
	ProfilePicture *string `json:"profile_picture"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}
