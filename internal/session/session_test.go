package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/pkg/errors"
)

func signedToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func testUser() model.User {
	return model.User{
		Base:     model.Base{ID: uuid.New()},
		Email:    "admin@example.com",
		Password: "should-not-persist",
		Role:     model.UserRoleAdmin,
	}
}

func TestLoginAndToken(t *testing.T) {
	store := NewStore("")
	token := signedToken(t, time.Hour)

	require.NoError(t, store.Login(token, testUser()))

	got, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, token, got)
	assert.True(t, store.Valid())
}

func TestProfileStripsPassword(t *testing.T) {
	store := NewStore("")
	require.NoError(t, store.Login(signedToken(t, time.Hour), testUser()))

	profile, err := store.Profile()
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", profile.Email)
	assert.Empty(t, profile.Password)
}

func TestEmptyStoreIsUnauthorized(t *testing.T) {
	store := NewStore("")

	_, err := store.Token()
	require.Error(t, err)
	assert.Equal(t, errors.ErrUnauthorized, errors.CodeOf(err))
	assert.False(t, store.Valid())
}

func TestExpiredTokenIsRejected(t *testing.T) {
	store := NewStore("")
	require.NoError(t, store.Login(signedToken(t, 2*time.Second), testUser()))

	// Write the expired token directly past Login's TTL handling.
	store.cache.Set(tokenKey, signedToken(t, -time.Minute), time.Minute)

	_, err := store.Token()
	require.Error(t, err)
	assert.False(t, store.Valid())
}

func TestRefreshHookFiresNearExpiry(t *testing.T) {
	store := NewStore("")
	require.NoError(t, store.Login(signedToken(t, time.Minute), testUser()))

	fresh := signedToken(t, time.Hour)
	store.OnRefresh(func(current string) (string, error) {
		return fresh, nil
	})

	got, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestRefreshHookNotCalledFarFromExpiry(t *testing.T) {
	store := NewStore("")
	require.NoError(t, store.Login(signedToken(t, time.Hour), testUser()))

	called := false
	store.OnRefresh(func(current string) (string, error) {
		called = true
		return "", nil
	})

	_, err := store.Token()
	require.NoError(t, err)
	assert.False(t, called)
}

func TestLogoutClearsSession(t *testing.T) {
	store := NewStore("")
	require.NoError(t, store.Login(signedToken(t, time.Hour), testUser()))

	store.Logout()
	assert.False(t, store.Valid())
	_, err := store.Profile()
	assert.Error(t, err)
}

func TestSessionSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	token := signedToken(t, time.Hour)

	first := NewStore(path)
	require.NoError(t, first.Login(token, testUser()))

	second := NewStore(path)
	got, err := second.Token()
	require.NoError(t, err)
	assert.Equal(t, token, got)

	profile, err := second.Profile()
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", profile.Email)
}

func TestLogoutRemovesPersistedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	store := NewStore(path)
	require.NoError(t, store.Login(signedToken(t, time.Hour), testUser()))
	store.Logout()

	again := NewStore(path)
	assert.False(t, again.Valid())
}
