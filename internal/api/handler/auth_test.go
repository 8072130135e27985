package handler

import (
	"testing"
	"time"

	"nagarseva/backend/internal/config"
	"nagarseva/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPhoneValidation pins the registration rule: exactly 10 digits.
func TestPhoneValidation(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"9876543210", true},
		{"987654321", false},   // 9 digits
		{"98765432101", false}, // 11 digits
		{"98765abc10", false},
		{"", false},
		{"+919876543210", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, phoneRe.MatchString(tt.phone), "phone %q", tt.phone)
	}
}

// TestAadhaarValidation pins the registration rule: exactly 12 digits.
func TestAadhaarValidation(t *testing.T) {
	tests := []struct {
		aadhaar string
		valid   bool
	}{
		{"123456789012", true},
		{"12345678901", false},   // 11 digits
		{"1234567890123", false}, // 13 digits
		{"12345678901a", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, aadhaarRe.MatchString(tt.aadhaar), "aadhaar %q", tt.aadhaar)
	}
}

// TestTokenRoundTrip verifies that a generated token parses back to the same
// identity, carries a jti for revocation and expires in the future.
func TestTokenRoundTrip(t *testing.T) {
	// Arrange
	user := &models.User{
		ID:    "user-abc",
		Email: "a@x.com",
		Role:  models.RoleOfficer,
	}

	// Act
	token, err := generateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := parseToken(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "user-abc", claims.UserID)
	assert.Equal(t, models.RoleOfficer, claims.Role)
	assert.NotEmpty(t, claims.JTI)
	assert.WithinDuration(t, time.Now().Add(config.TokenTTL), claims.Expiry, time.Minute)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	_, err := parseToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenJTIsAreUnique(t *testing.T) {
	user := &models.User{ID: "user-abc", Role: models.RoleCitizen}

	first, err := generateToken(user)
	require.NoError(t, err)
	second, err := generateToken(user)
	require.NoError(t, err)

	claimsFirst, err := parseToken(first)
	require.NoError(t, err)
	claimsSecond, err := parseToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, claimsFirst.JTI, claimsSecond.JTI, "each login must get its own jti")
}
