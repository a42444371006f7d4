package photo

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
		MediaURL:       "https://media.test.dev",
		RequestTimeout: 5 * time.Second,
	}, nil, nil, nil)
}

func respond(t *testing.T, w http.ResponseWriter, data interface{}) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, json.NewEncoder(w).Encode(httputil.Response{Success: true, Data: raw}))
}

func TestSetPrimaryHitsPromotionPath(t *testing.T) {
	id := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/photo/"+id.String()+"/primary", r.URL.Path)
		respond(t, w, model.Photo{Base: model.Base{ID: id}, IsPrimary: true})
	}))
	defer srv.Close()

	promoted, err := NewService(newClient(srv.URL)).SetPrimary(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, promoted.ID)
	assert.True(t, promoted.IsPrimary)
}

func TestDisplayURLResolvesStoredPath(t *testing.T) {
	svc := NewService(newClient("https://api.test.dev"))

	assert.Equal(t, "https://media.test.dev/u/1/face.jpg",
		svc.DisplayURL(model.Photo{Path: "u/1/face.jpg"}))
	assert.Equal(t, "https://elsewhere.test.dev/face.jpg",
		svc.DisplayURL(model.Photo{Path: "https://elsewhere.test.dev/face.jpg"}))
	assert.Empty(t, svc.DisplayURL(model.Photo{}))
}
