package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "correct horse battery staple", hashed)

	assert.True(t, VerifyPassword("correct horse battery staple", hashed))
	assert.False(t, VerifyPassword("wrong password", hashed))
	assert.False(t, VerifyPassword("", hashed))
}

func TestVerifyPasswordAgainstGarbageHash(t *testing.T) {
	assert.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, VerifyPassword("anything", ""))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret")
	require.NoError(t, err)
	second, err := HashPassword("secret")
	require.NoError(t, err)

	// bcrypt salts, so two hashes of the same input differ
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("secret", first))
	assert.True(t, VerifyPassword("secret", second))
}

func TestGenerateSecurePassword(t *testing.T) {
	password := GenerateSecurePassword(16)
	assert.Len(t, password, 16)

	// Below-minimum lengths are raised to 8
	short := GenerateSecurePassword(3)
	assert.GreaterOrEqual(t, len(short), 8)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.png", "photo.png"},
		{"club photo.png", "club_photo.png"},
		{"  spaced   name .gif", "spaced_name_.gif"},
		{"../../etc/passwd", "passwd"},
		{"/tmp/evil.png", "evil.png"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), "input %q", tt.in)
	}
}
