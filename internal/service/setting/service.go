package setting

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/form"
	"github.com/heartlinkhq/admin-console/internal/model"
)

// Service manages per-user preference records through /settings. Settings
// are created server-side with the account, so there is no create here.
type Service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List fetches all settings records.
func (s *Service) List(ctx context.Context, params apiclient.Params) ([]model.Setting, error) {
	var settings []model.Setting
	if err := s.client.Get(ctx, "/settings", params, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// ForUser fetches one user's settings.
func (s *Service) ForUser(ctx context.Context, userID uuid.UUID) (*model.Setting, error) {
	var setting model.Setting
	path := fmt.Sprintf("/settings/user/%s", userID)
	if err := s.client.Get(ctx, path, nil, &setting); err != nil {
		return nil, err
	}
	return &setting, nil
}

// Update applies a partial preferences change.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req model.UpdateSettingRequest) (*model.Setting, error) {
	var updated model.Setting
	if err := s.client.Put(ctx, fmt.Sprintf("/settings/%s", id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func SearchText(s model.Setting) []string {
	return []string{s.UserID.String(), strconv.Itoa(s.MaxDistanceKm)}
}

// ValidateSettingData enforces the one cross-field rule tags cannot express
// on pointer pairs: the age window must be ordered when both ends change.
func ValidateSettingData(req model.UpdateSettingRequest) []string {
	errs := form.Errors(req)
	if req.AgeMin != nil && req.AgeMax != nil && *req.AgeMin > *req.AgeMax {
		errs = append(errs, "age min must not exceed age max")
	}
	return errs
}
