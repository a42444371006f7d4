package message

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/form"
	"github.com/heartlinkhq/admin-console/internal/model"
)

// Service manages chat messages through /messages. Messages are created and
// removed but never edited.
type Service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List fetches messages, typically narrowed to one match via params.
func (s *Service) List(ctx context.Context, params apiclient.Params) ([]model.Message, error) {
	var messages []model.Message
	if err := s.client.Get(ctx, "/messages", params, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// ByMatch fetches the conversation for one match.
func (s *Service) ByMatch(ctx context.Context, matchID uuid.UUID) ([]model.Message, error) {
	return s.List(ctx, apiclient.Params{"match_id": matchID.String()})
}

// Create sends a message.
func (s *Service) Create(ctx context.Context, req model.CreateMessageRequest) (*model.Message, error) {
	var msg model.Message
	if err := s.client.Post(ctx, "/messages", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Delete removes a message (moderation action).
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, fmt.Sprintf("/messages/%s", id))
}

func SearchText(m model.Message) []string {
	return []string{m.Body, m.SenderID.String()}
}

func ValidateMessageData(req model.CreateMessageRequest) []string {
	return form.Errors(req)
}
