package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/form"
	"github.com/heartlinkhq/admin-console/internal/model"
)

// Service manages in-app notifications through /notifications, including the
// bulk mark-read operation.
type Service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List fetches notifications, optionally narrowed to one user.
func (s *Service) List(ctx context.Context, params apiclient.Params) ([]model.Notification, error) {
	var items []model.Notification
	if err := s.client.Get(ctx, "/notifications", params, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ForUser fetches one user's notifications.
func (s *Service) ForUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	return s.List(ctx, apiclient.Params{"user_id": userID.String()})
}

// Create sends a notification (admin broadcast or test delivery).
func (s *Service) Create(ctx context.Context, req model.CreateNotificationRequest) (*model.Notification, error) {
	var item model.Notification
	if err := s.client.Post(ctx, "/notifications", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// MarkRead marks a batch of notifications as read and returns the updated
// records so the caller can patch its collection by id.
func (s *Service) MarkRead(ctx context.Context, ids []uuid.UUID) ([]model.Notification, error) {
	req := model.MarkReadRequest{IDs: make([]string, 0, len(ids))}
	for _, id := range ids {
		req.IDs = append(req.IDs, id.String())
	}

	var updated []model.Notification
	if err := s.client.Put(ctx, "/notifications/read", req, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a notification.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, fmt.Sprintf("/notifications/%s", id))
}

func SearchText(n model.Notification) []string {
	return []string{n.Title, n.Body, n.Kind}
}

func ValidateNotificationData(req model.CreateNotificationRequest) []string {
	return form.Errors(req)
}
