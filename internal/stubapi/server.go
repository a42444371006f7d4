// Package stubapi is an in-memory implementation of the backend surface the
// console consumes. It exists so the console can be developed and its
// integration paths tested without the real platform; only the documented
// request and response shapes are honored, none of the product's business
// rules beyond what a screen can observe.
package stubapi

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartlinkhq/admin-console/internal/config"
	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/pkg/logger"
)

// Server holds the stub's state: one store per resource plus the auth
// material.
type Server struct {
	cfg *config.StubConfig
	log *logger.Logger

	users         *Store[model.User]
	goals         *Store[model.Goal]
	interests     *Store[model.Interest]
	matches       *Store[model.Match]
	messages      *Store[model.Message]
	reports       *Store[model.Report]
	settings      *Store[model.Setting]
	subscriptions *Store[model.Subscription]
	swipes        *Store[model.Swipe]
	consumables   *Store[model.Consumable]
	notifications *Store[model.Notification]
	photos        *Store[model.Photo]

	mu        sync.RWMutex
	passwords map[uuid.UUID]string // user id -> bcrypt hash
}

// NewServer creates an empty stub and seeds the admin account (plus demo
// data when enabled).
func NewServer(cfg *config.StubConfig, log *logger.Logger) (*Server, error) {
	if log == nil {
		log = logger.NewLogger(nil)
	}
	s := &Server{
		cfg:           cfg,
		log:           log.WithComponent("stubapi"),
		users:         NewStore[model.User](),
		goals:         NewStore[model.Goal](),
		interests:     NewStore[model.Interest](),
		matches:       NewStore[model.Match](),
		messages:      NewStore[model.Message](),
		reports:       NewStore[model.Report](),
		settings:      NewStore[model.Setting](),
		subscriptions: NewStore[model.Subscription](),
		swipes:        NewStore[model.Swipe](),
		consumables:   NewStore[model.Consumable](),
		notifications: NewStore[model.Notification](),
		photos:        NewStore[model.Photo](),
		passwords:     make(map[uuid.UUID]string),
	}

	if err := s.seedAdmin(); err != nil {
		return nil, err
	}
	if cfg.Seed.Demo {
		s.seedDemo()
	}
	return s, nil
}

// addUser stores a user plus credentials and the dependent records every
// account gets (settings, consumable balances).
func (s *Server) addUser(user model.User, password string) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}

	now := time.Now()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	user.Password = ""
	s.users.Put(user)

	s.mu.Lock()
	s.passwords[user.ID] = string(hash)
	s.mu.Unlock()

	s.settings.Put(model.Setting{
		Base:               model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:             user.ID,
		DiscoveryEnabled:   true,
		MaxDistanceKm:      50,
		AgeMin:             18,
		AgeMax:             55,
		ShowOnlineStatus:   true,
		PushNotifications:  true,
		EmailNotifications: true,
	})
	for _, kind := range []string{model.ConsumableSuperlikes, model.ConsumableBoosts, model.ConsumableRewinds} {
		s.consumables.Put(model.Consumable{
			Base:   model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			UserID: user.ID,
			Kind:   kind,
		})
	}
	return user, nil
}

func (s *Server) passwordHash(userID uuid.UUID) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hash, ok := s.passwords[userID]
	return hash, ok
}

func (s *Server) userByEmail(email string) (model.User, bool) {
	for _, u := range s.users.List() {
		if u.Email == email {
			return u, true
		}
	}
	return model.User{}, false
}
