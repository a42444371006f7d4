// Package session holds the console's authenticated session: the bearer
// token and the signed-in user's profile. The store is an explicit object
// injected into services, persisted to disk between runs, and checked for
// expiry before every use instead of being trusted until a request fails.
package session

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gocache "github.com/patrickmn/go-cache"

	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/pkg/errors"
)

const (
	tokenKey   = "auth_token"
	profileKey = "auth_profile"

	// defaultTTL applies when the token carries no exp claim.
	defaultTTL = 24 * time.Hour

	// refreshWindow is how close to expiry a token may get before the
	// refresh hook fires.
	refreshWindow = 5 * time.Minute
)

// RefreshHook is invoked when a valid token is close to expiry. It returns a
// replacement token, or an error to keep the current one.
type RefreshHook func(current string) (string, error)

// Store keeps the session in a TTL cache persisted to a file.
type Store struct {
	mu      sync.Mutex
	cache   *gocache.Cache
	path    string
	refresh RefreshHook
}

// NewStore creates a session store backed by the given file. A missing or
// unreadable file simply starts an empty session.
func NewStore(path string) *Store {
	c := gocache.New(defaultTTL, 10*time.Minute)
	if path != "" {
		// Load ignores errors: a corrupt session file means logging in again.
		_ = c.LoadFile(path)
	}
	return &Store{cache: c, path: path}
}

// OnRefresh registers the refresh hook.
func (s *Store) OnRefresh(hook RefreshHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh = hook
}

// Login stores the token and profile. The entry TTL comes from the token's
// exp claim so the cache forgets the session the moment the token dies.
func (s *Store) Login(token string, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ttl := ttlFromToken(token)
	s.cache.Set(tokenKey, token, ttl)

	user.Password = ""
	raw, err := json.Marshal(user)
	if err != nil {
		return errors.NewInternal(err)
	}
	s.cache.Set(profileKey, string(raw), ttl)

	return s.persist()
}

// Token returns the current bearer token. A token inside the refresh window
// is refreshed through the hook first; an expired or absent token returns
// an unauthorized error.
func (s *Store) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, found := s.cache.Get(tokenKey)
	if !found {
		return "", errors.NewUnauthorized(nil)
	}
	token := raw.(string)

	exp, ok := expiryOf(token)
	if ok && time.Until(exp) <= 0 {
		s.cache.Delete(tokenKey)
		s.cache.Delete(profileKey)
		return "", errors.NewUnauthorized(nil)
	}

	if ok && time.Until(exp) <= refreshWindow && s.refresh != nil {
		if fresh, err := s.refresh(token); err == nil && fresh != "" {
			token = fresh
			s.cache.Set(tokenKey, token, ttlFromToken(token))
			_ = s.persist()
		}
	}

	return token, nil
}

// Valid reports whether a usable session exists.
func (s *Store) Valid() bool {
	_, err := s.Token()
	return err == nil
}

// Profile returns the signed-in user stored at login time.
func (s *Store) Profile() (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, found := s.cache.Get(profileKey)
	if !found {
		return nil, errors.NewUnauthorized(nil)
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw.(string)), &user); err != nil {
		return nil, errors.NewInternal(err)
	}
	return &user, nil
}

// Logout clears the session and removes the persisted file.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Flush()
	if s.path != "" {
		_ = os.Remove(s.path)
	}
}

func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}
	if err := s.cache.SaveFile(s.path); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// ttlFromToken derives a cache TTL from the token's exp claim.
func ttlFromToken(token string) time.Duration {
	if exp, ok := expiryOf(token); ok {
		if ttl := time.Until(exp); ttl > 0 {
			return ttl
		}
		return time.Nanosecond
	}
	return defaultTTL
}

// expiryOf inspects the exp claim without verifying the signature. The
// client cannot verify (it has no secret); it only needs to know when the
// server will stop accepting the token.
func expiryOf(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
