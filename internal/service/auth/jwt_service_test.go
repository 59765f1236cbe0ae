package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/9novikoff/TaskManagementSystem/internal/config"
	"github.com/9novikoff/TaskManagementSystem/internal/domain"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
		Issuer:               "task-management-system",
		Audience:             "task-management-system",
	}
}

func testUser() *domain.User {
	return &domain.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
	}
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	user := testUser()

	svc := NewTestJWTService(testAuthConfig(), func() time.Time {
		return fixedTime
	})

	t.Run("generates valid token", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(context.Background(), user)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)

		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, user.Username, claims.Username)
		// Compare Unix timestamps to avoid timezone issues
		assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
		assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("token ids are unique per issuance", func(t *testing.T) {
		t.Parallel()
		first, err := svc.GenerateToken(context.Background(), user)
		require.NoError(t, err)
		second, err := svc.GenerateToken(context.Background(), user)
		require.NoError(t, err)

		firstClaims, err := svc.ValidateToken(context.Background(), first)
		require.NoError(t, err)
		secondClaims, err := svc.ValidateToken(context.Background(), second)
		require.NoError(t, err)

		assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
	})
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	user := testUser()

	tests := []struct {
		name      string
		setupFunc func() (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func() (JWTService, string) {
				svc := NewTestJWTService(testAuthConfig(), func() time.Time { return fixedTime })
				token, _ := svc.GenerateToken(context.Background(), user)
				return svc, token
			},
			wantErr: nil,
		},
		{
			name: "expired token",
			setupFunc: func() (JWTService, string) {
				genSvc := NewTestJWTService(testAuthConfig(), func() time.Time { return fixedTime })
				token, _ := genSvc.GenerateToken(context.Background(), user)
				// Validate two hours later, past the 1h lifetime.
				valSvc := NewTestJWTService(testAuthConfig(), func() time.Time {
					return fixedTime.Add(2 * time.Hour)
				})
				return valSvc, token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "wrong signing key",
			setupFunc: func() (JWTService, string) {
				wrongCfg := testAuthConfig()
				wrongCfg.JWTSecret = "wrong-secret-that-is-long-enough-for-testing"
				genSvc := NewTestJWTService(wrongCfg, func() time.Time { return fixedTime })
				token, _ := genSvc.GenerateToken(context.Background(), user)
				valSvc := NewTestJWTService(testAuthConfig(), func() time.Time { return fixedTime })
				return valSvc, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			setupFunc: func() (JWTService, string) {
				otherCfg := testAuthConfig()
				otherCfg.Issuer = "someone-else"
				genSvc := NewTestJWTService(otherCfg, func() time.Time { return fixedTime })
				token, _ := genSvc.GenerateToken(context.Background(), user)
				valSvc := NewTestJWTService(testAuthConfig(), func() time.Time { return fixedTime })
				return valSvc, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong audience",
			setupFunc: func() (JWTService, string) {
				otherCfg := testAuthConfig()
				otherCfg.Audience = "someone-else"
				genSvc := NewTestJWTService(otherCfg, func() time.Time { return fixedTime })
				token, _ := genSvc.GenerateToken(context.Background(), user)
				valSvc := NewTestJWTService(testAuthConfig(), func() time.Time { return fixedTime })
				return valSvc, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func() (JWTService, string) {
				svc := NewTestJWTService(testAuthConfig(), func() time.Time { return fixedTime })
				return svc, "not.a.token"
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tc.setupFunc()
			claims, err := svc.ValidateToken(context.Background(), token)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, claims)
			assert.Equal(t, user.ID, claims.UserID)
		})
	}
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.JWTSecret = "short"

	_, err := NewJWTService(cfg)
	require.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	t.Run("same password hashes differently but verifies either way", func(t *testing.T) {
		t.Parallel()
		first, err := hasher.Hash("Str0ng!pass")
		require.NoError(t, err)
		second, err := hasher.Hash("Str0ng!pass")
		require.NoError(t, err)

		// Salted: two hashes of the same password differ.
		assert.NotEqual(t, first, second)

		assert.NoError(t, hasher.Compare(first, "Str0ng!pass"))
		assert.NoError(t, hasher.Compare(second, "Str0ng!pass"))
	})

	t.Run("wrong password fails verification", func(t *testing.T) {
		t.Parallel()
		hashed, err := hasher.Hash("Str0ng!pass")
		require.NoError(t, err)
		assert.Error(t, hasher.Compare(hashed, "Wr0ng!pass"))
	})
}
