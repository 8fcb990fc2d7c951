package services

import (
	"context"
	"fmt"

	"github.com/augie-sif/sif-backend/lib/storage"
	"github.com/augie-sif/sif-backend/models"
	"github.com/augie-sif/sif-backend/repositories"
	"github.com/augie-sif/sif-backend/utils"
)

type userStore interface {
	FindAll() ([]models.User, error)
	FindByID(id string) (*models.User, error)
	UpdateFields(id string, fields map[string]any) (bool, error)
	Delete(id string) (bool, error)
}

// UserService handles business logic for user management
type UserService struct {
	users   userStore
	objects storage.ObjectStorage
}

// NewUserService creates a new user service instance
func NewUserService() *UserService {
	return &UserService{
		users:   repositories.NewUserRepository(),
		objects: storage.Shared(),
	}
}

// List retrieves all users, newest first
func (s *UserService) List() ([]models.User, error) {
	return s.users.FindAll()
}

// Get retrieves a single user
func (s *UserService) Get(id string) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// resolvePair loads actor and target; the target missing is a NotFound,
// the actor missing means a stale token and reads as Forbidden.
func (s *UserService) resolvePair(actorID, targetID string) (*models.User, *models.User, error) {
	actor, err := s.users.FindByID(actorID)
	if err != nil {
		return nil, nil, err
	}
	if actor == nil {
		return nil, nil, ErrForbidden
	}

	target, err := s.users.FindByID(targetID)
	if err != nil {
		return nil, nil, err
	}
	if target == nil {
		return nil, nil, ErrNotFound
	}

	return actor, target, nil
}

// UpdateRole changes a user's role. The actor must outrank the target and
// may never change their own role.
func (s *UserService) UpdateRole(actorID, targetID, role string) error {
	if !models.ValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	actor, target, err := s.resolvePair(actorID, targetID)
	if err != nil {
		return err
	}

	if !models.CanEditUserRole(actor, target) {
		return ErrForbidden
	}

	ok, err := s.users.UpdateFields(targetID, map[string]any{"role": role})
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus flips a user's active flag under the same rank rule as
// role changes
func (s *UserService) UpdateStatus(actorID, targetID string, isActive bool) error {
	actor, target, err := s.resolvePair(actorID, targetID)
	if err != nil {
		return err
	}

	if !models.CanEditUserRole(actor, target) {
		return ErrForbidden
	}

	ok, err := s.users.UpdateFields(targetID, map[string]any{"is_active": isActive})
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// ResetPassword replaces a user's password with a fresh random one, subject
// to the same rank rule as other user mutations. The plaintext is returned
// exactly once so the actor can hand it over; only the hash is stored.
func (s *UserService) ResetPassword(actorID, targetID string) (string, error) {
	actor, target, err := s.resolvePair(actorID, targetID)
	if err != nil {
		return "", err
	}

	if !models.CanEditUserRole(actor, target) {
		return "", ErrForbidden
	}

	password := utils.GenerateSecurePassword(12)
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return "", err
	}

	ok, err := s.users.UpdateFields(targetID, map[string]any{"password": hashed})
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotFound
	}

	return password, nil
}

// Delete removes a user and best-effort deletes their profile picture asset
func (s *UserService) Delete(ctx context.Context, actorID, targetID string) error {
	actor, target, err := s.resolvePair(actorID, targetID)
	if err != nil {
		return err
	}

	if !models.CanDeleteUser(actor, target) {
		return ErrForbidden
	}

	ok, err := s.users.Delete(targetID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	if target.ProfilePicture != nil {
		reapAsset(ctx, s.objects, *target.ProfilePicture)
	}
	return nil
}

// SetProfilePicture points a user at a freshly uploaded asset and reaps the
// previous one. The diff runs against the stored record, never against
// anything client-supplied, and only after the update has been persisted.
func (s *UserService) SetProfilePicture(ctx context.Context, userID, url string) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	ok, err := s.users.UpdateFields(userID, map[string]any{"profile_picture": url})
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	if user.ProfilePicture != nil && *user.ProfilePicture != url {
		reapAsset(ctx, s.objects, *user.ProfilePicture)
	}
	return nil
}
