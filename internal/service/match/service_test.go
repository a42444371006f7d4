package match

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

func TestPotentialMatchesDecodesCandidates(t *testing.T) {
	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/match/potential/"+userID.String(), r.URL.Path)
		respond(t, w, []model.PotentialMatch{{
			User:     model.User{Base: model.Base{ID: uuid.New()}, Email: "cand@test.dev"},
			Score:    0.92,
			Distance: 3.4,
		}})
	}))
	defer srv.Close()

	candidates, err := NewService(newClient(srv.URL)).PotentialMatches(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "cand@test.dev", candidates[0].User.Email)
	assert.InDelta(t, 0.92, candidates[0].Score, 0.001)
}

func TestUnmatchDeletesById(t *testing.T) {
	id := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/match/"+id.String(), r.URL.Path)
		respond(t, w, nil)
	}))
	defer srv.Close()

	require.NoError(t, NewService(newClient(srv.URL)).Unmatch(context.Background(), id))
}
