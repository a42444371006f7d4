// Package listview implements the screen-level state machine every resource
// screen repeats: fetch into a collection, derive a filtered and paginated
// view, edit through a draft, patch the collection from the server's answer,
// and surface transient feedback. The controller owns one resource's
// collection; nothing is shared across controllers.
package listview

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/pkg/errors"
	"github.com/heartlinkhq/admin-console/pkg/logger"
	"github.com/heartlinkhq/admin-console/pkg/metrics"
)

// Phase is the fetch lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

// Fetcher loads the full collection for the controller.
type Fetcher[T model.Identifier] func(ctx context.Context) ([]T, error)

// SearchFields returns the stringified fields search matches against.
type SearchFields[T model.Identifier] func(T) []string

// Controller holds one screen's state. All methods are safe for concurrent
// use; the zero phase is idle until the first Fetch.
type Controller[T model.Identifier] struct {
	mu sync.Mutex

	name     string
	fetcher  Fetcher[T]
	fields   SearchFields[T]
	pageSize int

	phase      Phase
	items      []T
	searchTerm string
	page       int

	selected   *T
	dialogOpen bool

	errMsg string
	notice string

	fetchSeq uint64
	busy     map[string]bool

	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewController creates a controller for one resource.
func NewController[T model.Identifier](name string, fetcher Fetcher[T], fields SearchFields[T], pageSize int, m *metrics.Metrics, log *logger.Logger) *Controller[T] {
	if pageSize < 1 {
		pageSize = 10
	}
	if log == nil {
		log = logger.NewLogger(nil)
	}
	return &Controller[T]{
		name:     name,
		fetcher:  fetcher,
		fields:   fields,
		pageSize: pageSize,
		page:     1,
		busy:     make(map[string]bool),
		metrics:  m,
		log:      log.WithComponent("listview." + name),
	}
}

// Fetch replaces the collection from the fetcher. Each call gets a monotonic
// sequence number; a response is applied only if no newer fetch was issued
// while it was in flight, so the screen always reflects the latest request.
func (c *Controller[T]) Fetch(ctx context.Context) error {
	c.mu.Lock()
	c.fetchSeq++
	seq := c.fetchSeq
	c.phase = PhaseLoading
	c.errMsg = ""
	c.mu.Unlock()

	items, err := c.fetcher(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.fetchSeq {
		// A newer fetch owns the state now; its completion will settle
		// the loading flag.
		if c.metrics != nil {
			c.metrics.StaleResponses.Inc()
		}
		c.log.Debug("dropping stale fetch response", "seq", seq)
		return nil
	}

	if err != nil {
		c.phase = PhaseFailed
		c.errMsg = errors.MessageOf(err)
		c.log.Error(err, "fetch failed")
		return err
	}

	c.items = items
	c.phase = PhaseReady
	return nil
}

// SetSearch stores the trimmed term and resets to the first page whenever
// the term actually changes.
func (c *Controller[T]) SetSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	trimmed := strings.TrimSpace(term)
	if trimmed == c.searchTerm {
		return
	}
	c.searchTerm = trimmed
	c.page = 1
}

// SetPage clamps the requested page into the filtered collection's range.
func (c *Controller[T]) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	max := TotalPages(len(Filter(c.items, c.searchTerm, c.fields)), c.pageSize)
	if max < 1 {
		max = 1
	}
	if page < 1 {
		page = 1
	}
	if page > max {
		page = max
	}
	c.page = page
}

// Visible returns the current page of the filtered collection plus the total
// page count.
func (c *Controller[T]) Visible() ([]T, int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := Filter(c.items, c.searchTerm, c.fields)
	return Paginate(filtered, c.page, c.pageSize), TotalPages(len(filtered), c.pageSize)
}

// StartCreate opens the dialog in create mode.
func (c *Controller[T]) StartCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
	c.dialogOpen = true
}

// StartEdit opens the dialog in edit mode with the given entity selected.
func (c *Controller[T]) StartEdit(entity T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = &entity
	c.dialogOpen = true
}

// CloseDialog discards the draft state.
func (c *Controller[T]) CloseDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
	c.dialogOpen = false
}

// Selected returns the entity being edited, or nil in create mode.
func (c *Controller[T]) Selected() *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Save submits the dialog draft. Validation runs first: with a non-empty
// error list no network call happens and the dialog stays open. A save
// already in flight rejects re-entry instead of issuing a duplicate request.
// On success the server's entity is applied to the collection by id and the
// dialog closes; on failure the dialog stays open with an error banner.
func (c *Controller[T]) Save(ctx context.Context, validate func() []string, submit func(context.Context) (*T, error)) ([]string, error) {
	if fieldErrs := validate(); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	if err := c.acquire("save"); err != nil {
		return nil, err
	}
	defer c.release("save")

	// One key per mutation intent, so the backend can collapse retries.
	ctx = apiclient.WithIdempotencyKey(ctx, uuid.NewString())
	entity, err := submit(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.errMsg = errors.MessageOf(err)
		c.log.Error(err, "save failed")
		return nil, err
	}

	c.items = Apply(c.items, *entity)
	c.selected = nil
	c.dialogOpen = false
	c.notice = "saved"
	return nil, nil
}

// ApplyEntity patches the collection with a server-returned entity outside
// the save path (e.g. bulk mark-read results).
func (c *Controller[T]) ApplyEntity(entity T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = Apply(c.items, entity)
}

// Delete removes an entity after confirmation. Deleting an id the collection
// no longer holds is a harmless no-op removal.
func (c *Controller[T]) Delete(ctx context.Context, entity T, confirm func() bool, remove func(context.Context) error) error {
	if confirm != nil && !confirm() {
		return nil
	}

	if err := c.acquire("delete"); err != nil {
		return err
	}
	defer c.release("delete")

	ctx = apiclient.WithIdempotencyKey(ctx, uuid.NewString())
	err := remove(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.errMsg = errors.MessageOf(err)
		c.log.Error(err, "delete failed")
		return err
	}

	c.items = RemoveByID(c.items, entity.Identity())
	c.notice = "deleted"
	return nil
}

// DismissFeedback clears both the success notice and the error banner.
func (c *Controller[T]) DismissFeedback() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errMsg = ""
	c.notice = ""
}

// Items returns a copy of the whole collection.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Controller[T]) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller[T]) SearchTerm() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchTerm
}

func (c *Controller[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

func (c *Controller[T]) Notice() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

func (c *Controller[T]) DialogOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogOpen
}

// acquire claims the busy flag for one logical operation, so a double
// submit during a slow request is rejected instead of duplicated.
func (c *Controller[T]) acquire(op string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy[op] {
		if c.metrics != nil {
			c.metrics.BusyRejections.Inc()
		}
		return errors.NewBusy(op)
	}
	c.busy[op] = true
	return nil
}

func (c *Controller[T]) release(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.busy, op)
}
