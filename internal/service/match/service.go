package match

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/model"
)

// Service reads matches and recommendation candidates through /match.
// Matches are created server-side by mutual swipes; the console can only
// list them and unmatch.
type Service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List fetches matches, optionally narrowed to one user.
func (s *Service) List(ctx context.Context, params apiclient.Params) ([]model.Match, error) {
	var matches []model.Match
	if err := s.client.Get(ctx, "/match", params, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// PotentialMatches fetches scored candidates for a user.
func (s *Service) PotentialMatches(ctx context.Context, userID uuid.UUID) ([]model.PotentialMatch, error) {
	var candidates []model.PotentialMatch
	path := fmt.Sprintf("/match/potential/%s", userID)
	if err := s.client.Get(ctx, path, nil, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// Unmatch ends a match.
func (s *Service) Unmatch(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, fmt.Sprintf("/match/%s", id))
}

func SearchText(m model.Match) []string {
	return []string{m.UserAID.String(), m.UserBID.String(), m.Status}
}
