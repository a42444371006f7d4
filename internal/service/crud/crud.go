// Package crud generalizes the request plumbing every resource service
// repeats: list, get by id, create, update, delete against one base path.
// Resource packages embed Service and add their domain helpers on top.
package crud

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
)

// Service implements the standard operations for one resource rooted at a
// fixed base path. T is the entity, C the create request, U the update
// request.
type Service[T any, C any, U any] struct {
	client *apiclient.Client
	base   string
}

// New creates a CRUD service for the given base path, e.g. "/users".
func New[T any, C any, U any](client *apiclient.Client, base string) Service[T, C, U] {
	return Service[T, C, U]{client: client, base: base}
}

// Client exposes the underlying API client for resource-specific endpoints.
func (s *Service[T, C, U]) Client() *apiclient.Client {
	return s.client
}

// Base returns the resource's base path.
func (s *Service[T, C, U]) Base() string {
	return s.base
}

// Fetcher returns a closure loading the full collection, in the shape list
// controllers consume.
func (s *Service[T, C, U]) Fetcher() func(context.Context) ([]T, error) {
	return func(ctx context.Context) ([]T, error) {
		return s.List(ctx, nil)
	}
}

// List fetches the full collection, optionally narrowed by params.
func (s *Service[T, C, U]) List(ctx context.Context, params apiclient.Params) ([]T, error) {
	var items []T
	if err := s.client.Get(ctx, s.base, params, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single entity by id.
func (s *Service[T, C, U]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var item T
	if err := s.client.Get(ctx, fmt.Sprintf("%s/%s", s.base, id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create posts a new entity and returns the server's authoritative copy.
func (s *Service[T, C, U]) Create(ctx context.Context, req C) (*T, error) {
	var item T
	if err := s.client.Post(ctx, s.base, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update puts a partial payload and returns the server's post-update entity.
func (s *Service[T, C, U]) Update(ctx context.Context, id uuid.UUID, req U) (*T, error) {
	var item T
	if err := s.client.Put(ctx, fmt.Sprintf("%s/%s", s.base, id), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an entity by id.
func (s *Service[T, C, U]) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s/%s", s.base, id))
}
