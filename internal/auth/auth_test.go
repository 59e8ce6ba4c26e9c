package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-testing"

func TestGenerateToken_Success(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-123", RoleUser)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3, len(strings.Split(token, ".")), "JWT should have 3 parts")
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	_, err := GenerateToken("", "user-123", RoleUser)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "secret not configured")
}

func TestGenerateToken_InvalidRole(t *testing.T) {
	_, err := GenerateToken(testSecret, "user-123", Role("superuser"))

	assert.Error(t, err, "unknown roles must never be signed into a token")
}

func TestValidateToken_ValidToken(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-123", RoleUser)
	require.NoError(t, err)

	claims, err := ValidateToken(testSecret, token)

	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, RoleUser, claims.Role)
}

func TestValidateToken_AdminRole(t *testing.T) {
	token, err := GenerateToken(testSecret, "admin-1", RoleAdmin)
	require.NoError(t, err)

	claims, err := ValidateToken(testSecret, token)

	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	claims := Claims{
		UserID: "user-123",
		Role:   RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ValidateToken(testSecret, tokenString)

	assert.Error(t, err, "expired token should be rejected")
}

func TestValidateToken_TamperedToken(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-123", RoleUser)
	require.NoError(t, err)

	tamperedToken := token[:len(token)-5] + "XXXXX"

	_, err = ValidateToken(testSecret, tamperedToken)
	assert.Error(t, err, "tampered token should be rejected")
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-123", RoleUser)
	require.NoError(t, err)

	_, err = ValidateToken("different-secret-key", token)

	assert.Error(t, err, "token signed with different secret should be rejected")
}

func TestValidateToken_AlgorithmConfusionAttack(t *testing.T) {
	claims := Claims{
		UserID: "attacker",
		Role:   RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	// attempt to use different signing method
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType) //nolint:errcheck // test code

	_, err := ValidateToken(testSecret, tokenString)
	assert.Error(t, err, "token with 'none' algorithm should be rejected")
}

func TestValidateToken_ForgedRoleClaim(t *testing.T) {
	// a correctly signed token carrying a role outside the closed set
	claims := Claims{
		UserID: "user-123",
		Role:   Role("root"),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ValidateToken(testSecret, tokenString)
	assert.Error(t, err, "token with unknown role should be rejected")
}

func TestValidateToken_MalformedToken(t *testing.T) {
	malformedTokens := []string{
		"",
		"not.a.jwt",
		"only.two",
		"too.many.parts.in.this.token",
		"<script>alert('xss')</script>",
	}

	for _, token := range malformedTokens {
		_, err := ValidateToken(testSecret, token)
		assert.Error(t, err, "malformed token '%s' should be rejected", token)
	}
}

func TestToken_Expiration(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-123", RoleUser)
	require.NoError(t, err)

	claims, err := ValidateToken(testSecret, token)
	require.NoError(t, err)

	// verify expiration is set to 7 days
	expectedExpiry := time.Now().Add(7 * 24 * time.Hour)
	actualExpiry := claims.ExpiresAt.Time
	timeDiff := actualExpiry.Sub(expectedExpiry).Abs()

	assert.Less(t, timeDiff, 5*time.Second, "expiration should be approximately 7 days from now")
}

func TestPasswordHashing_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestRole_Valid(t *testing.T) {
	testCases := []struct {
		role  Role
		valid bool
	}{
		{RoleUser, true},
		{RoleAdmin, true},
		{Role(""), false},
		{Role("superuser"), false},
		{Role("Admin"), false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.valid, tc.role.Valid(), "role %q", tc.role)
	}
}
