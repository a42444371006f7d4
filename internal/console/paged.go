package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/listview"
	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/internal/render"
	"github.com/heartlinkhq/admin-console/pkg/errors"
	"github.com/heartlinkhq/admin-console/pkg/httputil"
)

// pagedFetcher loads one server-side page.
type pagedFetcher[T model.Identifier] func(ctx context.Context, page, limit int) ([]T, httputil.Pagination, error)

// pagedCreateFunc collects and submits a draft for a server-paginated
// resource; the screen re-fetches its page afterwards.
type pagedCreateFunc func(ctx context.Context, p *prompter) ([]string, error)

// pagedEditFunc does the same for one entity by id.
type pagedEditFunc func(ctx context.Context, id uuid.UUID, p *prompter) ([]string, error)

// pagedScreen covers the resources whose list endpoint paginates server-side
// (reports, swipes): the console asks for one page at a time and the search
// filter applies only within the fetched page.
type pagedScreen[T model.Identifier] struct {
	mu sync.Mutex

	name   string
	fetch  pagedFetcher[T]
	fields listview.SearchFields[T]
	table  *render.Table[T]
	limit  int
	create pagedCreateFunc
	edit   pagedEditFunc

	page  int
	items []T
	meta  httputil.Pagination
	term  string
	err   string
}

func newPagedScreen[T model.Identifier](name string, fetch pagedFetcher[T], fields listview.SearchFields[T], table *render.Table[T], limit int, create pagedCreateFunc, edit pagedEditFunc) *pagedScreen[T] {
	if limit < 1 {
		limit = 10
	}
	return &pagedScreen[T]{name: name, fetch: fetch, fields: fields, table: table, limit: limit, create: create, edit: edit, page: 1}
}

func (s *pagedScreen[T]) Name() string { return s.name }

func (s *pagedScreen[T]) Refresh(ctx context.Context) error {
	s.mu.Lock()
	page, limit := s.page, s.limit
	s.mu.Unlock()

	items, meta, err := s.fetch(ctx, page, limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = errors.MessageOf(err)
		return err
	}
	s.items = items
	s.meta = meta
	s.err = ""
	return nil
}

func (s *pagedScreen[T]) Search(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	trimmed := strings.TrimSpace(term)
	if trimmed != s.term {
		s.term = trimmed
		s.page = 1
	}
}

func (s *pagedScreen[T]) Page(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 {
		n = 1
	}
	if s.meta.TotalPages > 0 && n > s.meta.TotalPages {
		n = s.meta.TotalPages
	}
	s.page = n
}

func (s *pagedScreen[T]) Render(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != "" {
		fmt.Fprintf(w, "error: %s\n", s.err)
	}

	visible := listview.Filter(s.items, s.term, s.fields)
	if len(visible) == 0 {
		fmt.Fprintln(w, "no data")
		return nil
	}
	if err := s.table.Write(w, visible); err != nil {
		return err
	}
	fmt.Fprintf(w, "page %d of %d (%d total)", s.meta.Page, s.meta.TotalPages, s.meta.Total)
	if s.term != "" {
		fmt.Fprintf(w, "  (filter within page: %q)", s.term)
	}
	fmt.Fprintln(w)
	return nil
}

func (s *pagedScreen[T]) Create(ctx context.Context, p *prompter) ([]string, error) {
	if s.create == nil {
		return nil, errors.NewValidation(s.name + " does not support create")
	}
	fieldErrs, err := s.create(ctx, p)
	if len(fieldErrs) > 0 || err != nil {
		return fieldErrs, err
	}
	// The server owns pagination, so the page is re-fetched instead of
	// patched locally.
	return nil, s.Refresh(ctx)
}

func (s *pagedScreen[T]) Edit(ctx context.Context, rawID string, p *prompter) ([]string, error) {
	if s.edit == nil {
		return nil, errors.NewValidation(s.name + " does not support edit")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errors.NewValidation("invalid id")
	}
	fieldErrs, err := s.edit(ctx, id, p)
	if len(fieldErrs) > 0 || err != nil {
		return fieldErrs, err
	}
	return nil, s.Refresh(ctx)
}

func (s *pagedScreen[T]) Remove(ctx context.Context, id string, confirm func() bool) error {
	return errors.NewValidation(s.name + " does not support delete")
}
