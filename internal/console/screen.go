package console

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/listview"
	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/internal/render"
	"github.com/heartlinkhq/admin-console/pkg/errors"
)

// screen is one resource's view: a list controller plus its table layout and
// the operations the resource supports.
type screen interface {
	Name() string
	Refresh(ctx context.Context) error
	Render(w io.Writer) error
	Search(term string)
	Page(n int)
	Create(ctx context.Context, p *prompter) ([]string, error)
	Edit(ctx context.Context, id string, p *prompter) ([]string, error)
	Remove(ctx context.Context, id string, confirm func() bool) error
}

// draftFunc collects one resource's dialog draft and returns its validator
// plus the submit call. current is nil in create mode.
type draftFunc[T model.Identifier] func(p *prompter, current *T) (validate func() []string, submit func(context.Context) (*T, error))

// listScreen adapts a typed controller to the screen interface.
type listScreen[T model.Identifier] struct {
	name       string
	controller *listview.Controller[T]
	table      *render.Table[T]
	create     draftFunc[T]
	edit       draftFunc[T]
	remove     func(context.Context, uuid.UUID) error
}

func newListScreen[T model.Identifier](name string, controller *listview.Controller[T], table *render.Table[T], create, edit draftFunc[T], remove func(context.Context, uuid.UUID) error) *listScreen[T] {
	return &listScreen[T]{name: name, controller: controller, table: table, create: create, edit: edit, remove: remove}
}

func (s *listScreen[T]) Name() string { return s.name }

func (s *listScreen[T]) Refresh(ctx context.Context) error {
	return s.controller.Fetch(ctx)
}

func (s *listScreen[T]) Search(term string) {
	s.controller.SetSearch(term)
}

func (s *listScreen[T]) Page(n int) {
	s.controller.SetPage(n)
}

func (s *listScreen[T]) Render(w io.Writer) error {
	if notice := s.controller.Notice(); notice != "" {
		fmt.Fprintf(w, "ok: %s\n", notice)
	}
	if errMsg := s.controller.Err(); errMsg != "" {
		fmt.Fprintf(w, "error: %s\n", errMsg)
	}
	s.controller.DismissFeedback()

	visible, totalPages := s.controller.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(w, "no data")
		return nil
	}
	if err := s.table.Write(w, visible); err != nil {
		return err
	}
	fmt.Fprintf(w, "page %d of %d", s.controller.Page(), totalPages)
	if term := s.controller.SearchTerm(); term != "" {
		fmt.Fprintf(w, "  (filter: %q)", term)
	}
	fmt.Fprintln(w)
	return nil
}

func (s *listScreen[T]) Create(ctx context.Context, p *prompter) ([]string, error) {
	if s.create == nil {
		return nil, errors.NewValidation(s.name + " does not support create")
	}
	s.controller.StartCreate()
	validate, submit := s.create(p, nil)
	return s.finishDraft(s.controller.Save(ctx, validate, submit))
}

func (s *listScreen[T]) Edit(ctx context.Context, rawID string, p *prompter) ([]string, error) {
	if s.edit == nil {
		return nil, errors.NewValidation(s.name + " does not support edit")
	}
	target, err := s.find(rawID)
	if err != nil {
		return nil, err
	}
	s.controller.StartEdit(*target)
	validate, submit := s.edit(p, target)
	return s.finishDraft(s.controller.Save(ctx, validate, submit))
}

// finishDraft discards the controller's dialog state on any failed save. The
// REPL cannot hold a dialog across commands, so the draft is gone once the
// errors are printed.
func (s *listScreen[T]) finishDraft(fieldErrs []string, err error) ([]string, error) {
	if len(fieldErrs) > 0 || err != nil {
		s.controller.CloseDialog()
	}
	return fieldErrs, err
}

func (s *listScreen[T]) Remove(ctx context.Context, rawID string, confirm func() bool) error {
	if s.remove == nil {
		return errors.NewValidation(s.name + " does not support delete")
	}
	target, err := s.find(rawID)
	if err != nil {
		return err
	}

	id := (*target).Identity()
	return s.controller.Delete(ctx, *target, confirm, func(ctx context.Context) error {
		return s.remove(ctx, id)
	})
}

// find resolves a typed id against the fetched collection.
func (s *listScreen[T]) find(rawID string) (*T, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errors.NewValidation("invalid id")
	}
	for _, item := range s.controller.Items() {
		if item.Identity() == id {
			found := item
			return &found, nil
		}
	}
	return nil, errors.NewValidation("no such id on this screen")
}
