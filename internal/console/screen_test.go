package console

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartlinkhq/admin-console/internal/listview"
	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/internal/service/goal"
	"github.com/heartlinkhq/admin-console/pkg/httputil"
)

func goalListScreen(goals []model.Goal, remove func(context.Context, uuid.UUID) error) *listScreen[model.Goal] {
	ctl := listview.NewController("goals",
		func(ctx context.Context) ([]model.Goal, error) { return goals, nil },
		goal.SearchText, 10, nil, nil)
	return newListScreen("goals", ctl, goalTable(), nil, nil, remove)
}

// scriptedPrompter feeds canned answers to a draft.
func scriptedPrompter(answers ...string) *prompter {
	return &prompter{
		in:  bufio.NewReader(strings.NewReader(strings.Join(answers, "\n") + "\n")),
		out: &bytes.Buffer{},
	}
}

func TestListScreenRenderShowsRowsAndFooter(t *testing.T) {
	goals := []model.Goal{
		{Base: model.Base{ID: uuid.New()}, Name: "hiking"},
		{Base: model.Base{ID: uuid.New()}, Name: "jazz"},
	}
	screen := goalListScreen(goals, nil)
	require.NoError(t, screen.Refresh(context.Background()))

	var buf bytes.Buffer
	require.NoError(t, screen.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "hiking")
	assert.Contains(t, out, "jazz")
	assert.Contains(t, out, "page 1 of 1")
}

func TestListScreenRenderEmptyCollection(t *testing.T) {
	screen := goalListScreen(nil, nil)
	require.NoError(t, screen.Refresh(context.Background()))

	var buf bytes.Buffer
	require.NoError(t, screen.Render(&buf))
	assert.Contains(t, buf.String(), "no data")
}

func TestListScreenSearchNarrowsRows(t *testing.T) {
	goals := []model.Goal{
		{Base: model.Base{ID: uuid.New()}, Name: "hiking"},
		{Base: model.Base{ID: uuid.New()}, Name: "jazz"},
	}
	screen := goalListScreen(goals, nil)
	require.NoError(t, screen.Refresh(context.Background()))
	screen.Search("jazz")

	var buf bytes.Buffer
	require.NoError(t, screen.Render(&buf))
	assert.NotContains(t, buf.String(), "hiking")
	assert.Contains(t, buf.String(), "jazz")
}

func TestListScreenRemove(t *testing.T) {
	goals := []model.Goal{{Base: model.Base{ID: uuid.New()}, Name: "hiking"}}

	var removed uuid.UUID
	screen := goalListScreen(goals, func(ctx context.Context, id uuid.UUID) error {
		removed = id
		return nil
	})
	require.NoError(t, screen.Refresh(context.Background()))

	err := screen.Remove(context.Background(), goals[0].ID.String(), func() bool { return true })
	require.NoError(t, err)
	assert.Equal(t, goals[0].ID, removed)
}

func TestListScreenRemoveRejectsBadInput(t *testing.T) {
	screen := goalListScreen(nil, func(ctx context.Context, id uuid.UUID) error { return nil })
	require.NoError(t, screen.Refresh(context.Background()))

	assert.Error(t, screen.Remove(context.Background(), "not-a-uuid", nil))
	assert.Error(t, screen.Remove(context.Background(), uuid.NewString(), nil))
}

func TestListScreenRemoveUnsupported(t *testing.T) {
	screen := goalListScreen(nil, nil)
	err := screen.Remove(context.Background(), uuid.NewString(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support delete")
}

func goalUpsertDraft(submitted *model.UpsertGoalRequest, result *model.Goal) draftFunc[model.Goal] {
	return func(p *prompter, current *model.Goal) (func() []string, func(context.Context) (*model.Goal, error)) {
		var req model.UpsertGoalRequest
		if current != nil {
			req.Name, req.Description = current.Name, current.Description
		}
		req.Name = p.ask("name", req.Name)
		req.Description = p.ask("description", req.Description)
		return func() []string { return goal.ValidateGoalData(req) },
			func(ctx context.Context) (*model.Goal, error) {
				*submitted = req
				return result, nil
			}
	}
}

func TestListScreenCreateAppendsServerEntity(t *testing.T) {
	created := model.Goal{Base: model.Base{ID: uuid.New()}, Name: "hiking"}
	var submitted model.UpsertGoalRequest

	ctl := listview.NewController("goals",
		func(ctx context.Context) ([]model.Goal, error) { return nil, nil },
		goal.SearchText, 10, nil, nil)
	screen := newListScreen("goals", ctl, goalTable(), goalUpsertDraft(&submitted, &created), nil, nil)
	require.NoError(t, screen.Refresh(context.Background()))

	fieldErrs, err := screen.Create(context.Background(), scriptedPrompter("hiking", "weekend trails"))
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, "hiking", submitted.Name)
	assert.Equal(t, "weekend trails", submitted.Description)

	items := ctl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
	assert.False(t, ctl.DialogOpen())
}

func TestListScreenCreateValidationStopsSubmit(t *testing.T) {
	var submitted model.UpsertGoalRequest

	ctl := listview.NewController("goals",
		func(ctx context.Context) ([]model.Goal, error) { return nil, nil },
		goal.SearchText, 10, nil, nil)
	screen := newListScreen("goals", ctl, goalTable(), goalUpsertDraft(&submitted, nil), nil, nil)

	// A blank name answer leaves the required field empty.
	fieldErrs, err := screen.Create(context.Background(), scriptedPrompter("", ""))
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "name is required")
	assert.Empty(t, submitted.Name)
	assert.Empty(t, ctl.Items())
	assert.False(t, ctl.DialogOpen())
}

func TestListScreenEditPatchesById(t *testing.T) {
	existing := model.Goal{Base: model.Base{ID: uuid.New()}, Name: "hiking", Description: "old"}
	renamed := existing
	renamed.Name = "trail running"
	var submitted model.UpsertGoalRequest

	ctl := listview.NewController("goals",
		func(ctx context.Context) ([]model.Goal, error) { return []model.Goal{existing}, nil },
		goal.SearchText, 10, nil, nil)
	screen := newListScreen("goals", ctl, goalTable(), nil, goalUpsertDraft(&submitted, &renamed), nil)
	require.NoError(t, screen.Refresh(context.Background()))

	// Blank description keeps the current value.
	fieldErrs, err := screen.Edit(context.Background(), existing.ID.String(), scriptedPrompter("trail running", ""))
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, "trail running", submitted.Name)
	assert.Equal(t, "old", submitted.Description)

	items := ctl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "trail running", items[0].Name)
}

func TestListScreenEditRejectsUnknownId(t *testing.T) {
	ctl := listview.NewController("goals",
		func(ctx context.Context) ([]model.Goal, error) { return nil, nil },
		goal.SearchText, 10, nil, nil)
	screen := newListScreen("goals", ctl, goalTable(), nil, goalUpsertDraft(new(model.UpsertGoalRequest), nil), nil)
	require.NoError(t, screen.Refresh(context.Background()))

	_, err := screen.Edit(context.Background(), uuid.NewString(), scriptedPrompter())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such id")
}

func TestListScreenCreateUnsupported(t *testing.T) {
	screen := goalListScreen(nil, nil)
	_, err := screen.Create(context.Background(), scriptedPrompter())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support create")

	_, err = screen.Edit(context.Background(), uuid.NewString(), scriptedPrompter())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support edit")
}

func TestPagedScreenRenderShowsServerMetadata(t *testing.T) {
	swipes := []model.Swipe{{
		Base:      model.Base{ID: uuid.New()},
		SwiperID:  uuid.New(),
		TargetID:  uuid.New(),
		Direction: "like",
	}}

	screen := newPagedScreen("swipes",
		func(ctx context.Context, page, limit int) ([]model.Swipe, httputil.Pagination, error) {
			return swipes, httputil.NewPagination(page, limit, 42), nil
		}, func(sw model.Swipe) []string { return []string{sw.Direction} }, swipeTable(), 10, nil, nil)

	require.NoError(t, screen.Refresh(context.Background()))

	var buf bytes.Buffer
	require.NoError(t, screen.Render(&buf))
	assert.Contains(t, buf.String(), "like")
	assert.Contains(t, buf.String(), "(42 total)")
}

func TestPagedScreenDoesNotSupportDelete(t *testing.T) {
	screen := newPagedScreen("swipes",
		func(ctx context.Context, page, limit int) ([]model.Swipe, httputil.Pagination, error) {
			return nil, httputil.Pagination{}, nil
		}, nil, swipeTable(), 10, nil, nil)

	assert.Error(t, screen.Remove(context.Background(), uuid.NewString(), nil))
}

func TestPagedScreenCreateRefetchesPage(t *testing.T) {
	fetches := 0
	var created *model.CreateSwipeRequest

	screen := newPagedScreen("swipes",
		func(ctx context.Context, page, limit int) ([]model.Swipe, httputil.Pagination, error) {
			fetches++
			return nil, httputil.NewPagination(page, limit, fetches), nil
		}, nil, swipeTable(), 10,
		func(ctx context.Context, p *prompter) ([]string, error) {
			req := model.CreateSwipeRequest{
				SwiperID:  p.ask("swiper id", ""),
				TargetID:  p.ask("target id", ""),
				Direction: p.ask("direction", ""),
			}
			created = &req
			return nil, nil
		}, nil)

	swiper, target := uuid.NewString(), uuid.NewString()
	fieldErrs, err := screen.Create(context.Background(), scriptedPrompter(swiper, target, "like"))
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	require.NotNil(t, created)
	assert.Equal(t, swiper, created.SwiperID)
	assert.Equal(t, "like", created.Direction)
	assert.Equal(t, 1, fetches)
}

func TestPagedScreenEditParsesIdAndRefetches(t *testing.T) {
	fetches := 0
	var edited uuid.UUID

	screen := newPagedScreen("reports",
		func(ctx context.Context, page, limit int) ([]model.Report, httputil.Pagination, error) {
			fetches++
			return nil, httputil.Pagination{}, nil
		}, nil, reportTable(), 10, nil,
		func(ctx context.Context, id uuid.UUID, p *prompter) ([]string, error) {
			edited = id
			return nil, nil
		})

	_, err := screen.Edit(context.Background(), "not-a-uuid", scriptedPrompter())
	require.Error(t, err)

	id := uuid.New()
	fieldErrs, err := screen.Edit(context.Background(), id.String(), scriptedPrompter())
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, id, edited)
	assert.Equal(t, 1, fetches)
}
