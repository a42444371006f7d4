package photo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/form"
	"github.com/heartlinkhq/admin-console/internal/model"
)

// Service manages profile photos through /photo. Stored paths are relative;
// DisplayURL resolves them against the configured media base.
type Service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List fetches photos, optionally narrowed to one user.
func (s *Service) List(ctx context.Context, params apiclient.Params) ([]model.Photo, error) {
	var photos []model.Photo
	if err := s.client.Get(ctx, "/photo", params, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// ForUser fetches one user's photos.
func (s *Service) ForUser(ctx context.Context, userID uuid.UUID) ([]model.Photo, error) {
	return s.List(ctx, apiclient.Params{"user_id": userID.String()})
}

// Create registers an uploaded photo.
func (s *Service) Create(ctx context.Context, req model.CreatePhotoRequest) (*model.Photo, error) {
	var photo model.Photo
	if err := s.client.Post(ctx, "/photo", req, &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

// SetPrimary promotes a photo to the profile's primary slot.
func (s *Service) SetPrimary(ctx context.Context, id uuid.UUID) (*model.Photo, error) {
	var photo model.Photo
	if err := s.client.Put(ctx, fmt.Sprintf("/photo/%s/primary", id), nil, &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

// Delete removes a photo.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, fmt.Sprintf("/photo/%s", id))
}

// DisplayURL resolves the photo's stored path to an absolute URL.
func (s *Service) DisplayURL(p model.Photo) string {
	return s.client.MediaURL(p.Path)
}

func SearchText(p model.Photo) []string {
	return []string{p.UserID.String(), p.Path}
}

func ValidatePhotoData(req model.CreatePhotoRequest) []string {
	return form.Errors(req)
}
