package repositories

import (
	"github.com/augie-sif/sif-backend/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindAll retrieves all users, newest first
func (r *UserRepository) FindAll() ([]models.User, error) {
	return FindAll[models.User]("created_at", false)
}

// FindByID retrieves a user by ID; absent users return (nil, nil)
func (r *UserRepository) FindByID(id string) (*models.User, error) {
	return FindByID[models.User](id)
}

// FindByEmail retrieves a user by email; absent users return (nil, nil)
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	return FindByField[models.User]("email", email)
}

// FindByGoogleID retrieves a user by external identity id
func (r *UserRepository) FindByGoogleID(googleID string) (*models.User, error) {
	return FindByField[models.User]("google_id", googleID)
}

// Create inserts a new user
func (r *UserRepository) Create(user *models.User) (*models.User, error) {
	return Create(user)
}

// UpdateFields applies a partial update to a user
func (r *UserRepository) UpdateFields(id string, fields map[string]any) (bool, error) {
	return UpdateFields[models.User](id, fields)
}

// Delete removes a user
func (r *UserRepository) Delete(id string) (bool, error) {
	return Delete[models.User](id)
}
