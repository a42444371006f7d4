package consumable

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/form"
	"github.com/heartlinkhq/admin-console/internal/model"
)

// Service manages consumable balances through /consumable. Balances can be
// granted and adjusted; there is no delete.
type Service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List fetches balances, optionally narrowed to one user.
func (s *Service) List(ctx context.Context, params apiclient.Params) ([]model.Consumable, error) {
	var balances []model.Consumable
	if err := s.client.Get(ctx, "/consumable", params, &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// Grant credits a user's balance for one kind.
func (s *Service) Grant(ctx context.Context, req model.GrantConsumableRequest) (*model.Consumable, error) {
	var balance model.Consumable
	if err := s.client.Post(ctx, "/consumable", req, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// Update sets an absolute balance.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req model.UpdateConsumableRequest) (*model.Consumable, error) {
	var balance model.Consumable
	if err := s.client.Put(ctx, fmt.Sprintf("/consumable/%s", id), req, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func SearchText(c model.Consumable) []string {
	return []string{c.UserID.String(), c.Kind}
}

func ValidateGrantData(req model.GrantConsumableRequest) []string {
	return form.Errors(req)
}
