package crud

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/config"
	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/pkg/httputil"
)

func newClient(baseURL string) *apiclient.Client {
	return apiclient.New(&config.ClientConfig{
		APIURL:         baseURL,
		RequestTimeout: 5 * time.Second,
	}, nil, nil, nil)
}

func respond(t *testing.T, w http.ResponseWriter, data interface{}) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, json.NewEncoder(w).Encode(httputil.Response{Success: true, Data: raw}))
}

func TestServiceCRUDPaths(t *testing.T) {
	goal := model.Goal{Base: model.Base{ID: uuid.New()}, Name: "hiking"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /goals":
			respond(t, w, []model.Goal{goal})
		case "GET /goals/" + goal.ID.String():
			respond(t, w, goal)
		case "POST /goals":
			respond(t, w, goal)
		case "PUT /goals/" + goal.ID.String():
			renamed := goal
			renamed.Name = "renamed"
			respond(t, w, renamed)
		case "DELETE /goals/" + goal.ID.String():
			respond(t, w, nil)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(httputil.Response{Success: false})
		}
	}))
	defer srv.Close()

	svc := New[model.Goal, model.UpsertGoalRequest, model.UpsertGoalRequest](newClient(srv.URL), "/goals")
	ctx := context.Background()

	listed, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "hiking", listed[0].Name)

	fetched, err := svc.Get(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.ID, fetched.ID)

	created, err := svc.Create(ctx, model.UpsertGoalRequest{Name: "hiking"})
	require.NoError(t, err)
	assert.Equal(t, "hiking", created.Name)

	updated, err := svc.Update(ctx, goal.ID, model.UpsertGoalRequest{Name: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)

	require.NoError(t, svc.Delete(ctx, goal.ID))
}

func TestFetcherListsEverything(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, []model.Goal{{Name: "a"}, {Name: "b"}})
	}))
	defer srv.Close()

	svc := New[model.Goal, model.UpsertGoalRequest, model.UpsertGoalRequest](newClient(srv.URL), "/goals")

	items, err := svc.Fetcher()(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

// The pagination body may also arrive at the top level, with no envelope
// around it.
func TestListPagedDecodesBareBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := json.Marshal([]model.Report{{Reason: "spam"}})
		json.NewEncoder(w).Encode(httputil.PagedBody{
			Data:       raw,
			Pagination: httputil.NewPagination(1, 10, 1),
		})
	}))
	defer srv.Close()

	items, meta, err := ListPaged[model.Report](context.Background(), newClient(srv.URL), "/reports",
		apiclient.Params{"page": "1", "limit": "10"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "spam", items[0].Reason)
	assert.Equal(t, 1, meta.Total)
}

func TestListPagedDecodesMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		raw, _ := json.Marshal([]model.Report{{Reason: "spam"}})
		body, _ := json.Marshal(httputil.PagedBody{
			Data:       raw,
			Pagination: httputil.NewPagination(2, 10, 35),
		})
		json.NewEncoder(w).Encode(httputil.Response{Success: true, Data: body})
	}))
	defer srv.Close()

	items, meta, err := ListPaged[model.Report](context.Background(), newClient(srv.URL), "/reports",
		apiclient.Params{"page": "2", "limit": "10"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 35, meta.Total)
	assert.Equal(t, 4, meta.TotalPages)
}
