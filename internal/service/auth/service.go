package auth

import (
	"context"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/internal/session"
)

// Service handles login and logout against /auth, keeping the session store
// in step with the server.
type Service struct {
	client *apiclient.Client
	sess   *session.Store
}

func NewService(client *apiclient.Client, sess *session.Store) *Service {
	return &Service{client: client, sess: sess}
}

// Login authenticates and stores the returned token and profile.
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, error) {
	var resp model.LoginResponse
	req := model.LoginRequest{Email: email, Password: password}
	if err := s.client.Post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if err := s.sess.Login(resp.Token, resp.User); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout tells the server, then clears the local session regardless of the
// server's answer.
func (s *Service) Logout(ctx context.Context) {
	_ = s.client.Post(ctx, "/auth/logout", nil, nil)
	s.sess.Logout()
}

// Me fetches the signed-in user from the server.
func (s *Service) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := s.client.Get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
