package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augie-sif/sif-backend/models"
	"github.com/augie-sif/sif-backend/utils"
)

func strPtr(s string) *string { return &s }

func clubUsers() []models.User {
	return []models.User{
		{ID: "u-admin", Name: "Ada", Role: models.RoleAdmin},
		{ID: "u-sec", Name: "Sam", Role: models.RoleSecretary},
		{ID: "u-sec2", Name: "Sue", Role: models.RoleSecretary},
		{ID: "u-hw", Name: "Hank", Role: models.RoleHoldingsWrite},
		{ID: "u-member", Name: "Mia", Role: models.RoleUser},
	}
}

func TestUpdateRoleRankRules(t *testing.T) {
	tests := []struct {
		name    string
		actor   string
		target  string
		wantErr error
	}{
		{"admin changes secretary", "u-admin", "u-sec", nil},
		{"secretary changes admin", "u-sec", "u-admin", ErrForbidden},
		{"secretary changes secretary", "u-sec", "u-sec2", ErrForbidden},
		{"secretary changes holdings_write", "u-sec", "u-hw", ErrForbidden},
		{"holdings_write changes secretary", "u-hw", "u-sec", ErrForbidden},
		{"secretary changes member", "u-sec", "u-member", nil},
		{"admin changes self", "u-admin", "u-admin", ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &UserService{users: newFakeUserStore(clubUsers()...), objects: newFakeStorage()}

			err := svc.UpdateRole(tt.actor, tt.target, "user")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	svc := &UserService{users: newFakeUserStore(clubUsers()...), objects: newFakeStorage()}

	err := svc.UpdateRole("u-admin", "u-member", "superuser")
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateRoleTargetNotFound(t *testing.T) {
	svc := &UserService{users: newFakeUserStore(clubUsers()...), objects: newFakeStorage()}

	err := svc.UpdateRole("u-admin", "nobody", "user")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusRankRules(t *testing.T) {
	store := newFakeUserStore(clubUsers()...)
	svc := &UserService{users: store, objects: newFakeStorage()}

	require.NoError(t, svc.UpdateStatus("u-admin", "u-member", false))
	updated, _ := store.FindByID("u-member")
	assert.False(t, updated.IsActive)

	require.ErrorIs(t, svc.UpdateStatus("u-member", "u-admin", false), ErrForbidden)
}

func TestResetPasswordStoresUsableHash(t *testing.T) {
	store := newFakeUserStore(clubUsers()...)
	svc := &UserService{users: store, objects: newFakeStorage()}

	password, err := svc.ResetPassword("u-admin", "u-member")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(password), 8)

	// The stored value is a hash of the returned plaintext, not the plaintext
	updated, _ := store.FindByID("u-member")
	assert.NotEqual(t, password, updated.Password)
	assert.True(t, utils.VerifyPassword(password, updated.Password))
}

func TestResetPasswordRankRules(t *testing.T) {
	svc := &UserService{users: newFakeUserStore(clubUsers()...), objects: newFakeStorage()}

	_, err := svc.ResetPassword("u-sec", "u-sec2")
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ResetPassword("u-member", "u-member")
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ResetPassword("u-admin", "nobody")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUserReapsProfilePicture(t *testing.T) {
	objects := newFakeStorage()
	users := clubUsers()
	users[4].ProfilePicture = strPtr("https://cdn.test/sif-assets/profile_pictures/u-member/pic.png")
	store := newFakeUserStore(users...)
	svc := &UserService{users: store, objects: objects}

	require.NoError(t, svc.Delete(context.Background(), "u-admin", "u-member"))
	require.Len(t, objects.deletes, 1)
	assert.Equal(t, "sif-assets/profile_pictures/u-member/pic.png", objects.deletes[0])

	gone, _ := store.FindByID("u-member")
	assert.Nil(t, gone)
}

func TestDeleteUserSucceedsWhenAssetDeleteFails(t *testing.T) {
	objects := newFakeStorage()
	objects.deleteErr = assert.AnError
	users := clubUsers()
	users[4].ProfilePicture = strPtr("https://cdn.test/sif-assets/profile_pictures/u-member/pic.png")
	store := newFakeUserStore(users...)
	svc := &UserService{users: store, objects: objects}

	require.NoError(t, svc.Delete(context.Background(), "u-admin", "u-member"))
	gone, _ := store.FindByID("u-member")
	assert.Nil(t, gone)
}

func TestDeleteUserForbiddenForEqualRank(t *testing.T) {
	svc := &UserService{users: newFakeUserStore(clubUsers()...), objects: newFakeStorage()}

	require.ErrorIs(t, svc.Delete(context.Background(), "u-sec", "u-sec2"), ErrForbidden)
	require.ErrorIs(t, svc.Delete(context.Background(), "u-sec2", "u-sec"), ErrForbidden)
}

func TestSetProfilePictureReapsOldAsset(t *testing.T) {
	objects := newFakeStorage()
	users := clubUsers()
	users[4].ProfilePicture = strPtr("https://cdn.test/sif-assets/profile_pictures/u-member/old.png")
	store := newFakeUserStore(users...)
	svc := &UserService{users: store, objects: objects}

	err := svc.SetProfilePicture(context.Background(), "u-member", "https://cdn.test/sif-assets/profile_pictures/u-member/new.png")
	require.NoError(t, err)

	require.Len(t, objects.deletes, 1)
	assert.Equal(t, "sif-assets/profile_pictures/u-member/old.png", objects.deletes[0])

	updated, _ := store.FindByID("u-member")
	require.NotNil(t, updated.ProfilePicture)
	assert.Equal(t, "https://cdn.test/sif-assets/profile_pictures/u-member/new.png", *updated.ProfilePicture)
}

func TestSetProfilePictureFirstUpload(t *testing.T) {
	objects := newFakeStorage()
	store := newFakeUserStore(clubUsers()...)
	svc := &UserService{users: store, objects: objects}

	err := svc.SetProfilePicture(context.Background(), "u-member", "https://cdn.test/sif-assets/profile_pictures/u-member/first.png")
	require.NoError(t, err)
	assert.Empty(t, objects.deletes)
}
