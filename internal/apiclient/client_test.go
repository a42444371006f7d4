package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartlinkhq/admin-console/internal/config"
	"github.com/heartlinkhq/admin-console/pkg/errors"
	"github.com/heartlinkhq/admin-console/pkg/httputil"
)

func testClient(baseURL string) *Client {
	return New(&config.ClientConfig{
		APIURL:         baseURL,
		MediaURL:       baseURL + "/media",
		RequestTimeout: 5 * time.Second,
	}, nil, nil, nil)
}

func envelope(t *testing.T, data interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	body, err := json.Marshal(httputil.Response{Success: true, Data: raw})
	require.NoError(t, err)
	return body
}

func TestParamsEncodeOmitsEmptyValues(t *testing.T) {
	params := Params{"status": "active", "search": "", "page": "2", "blank": "   "}
	encoded := params.Encode()

	assert.Contains(t, encoded, "status=active")
	assert.Contains(t, encoded, "page=2")
	assert.NotContains(t, encoded, "search")
	assert.NotContains(t, encoded, "blank")

	assert.Empty(t, Params{}.Encode())
	assert.Empty(t, Params(nil).Encode())
}

func TestGetDecodesEnvelopeData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/goals", r.URL.Path)
		assert.Equal(t, "active", r.URL.Query().Get("status"))
		w.Write(envelope(t, []map[string]string{{"name": "hiking"}}))
	}))
	defer srv.Close()

	var out []map[string]string
	err := testClient(srv.URL).Get(context.Background(), "/goals", Params{"status": "active"}, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "hiking", out[0]["name"])
}

func TestPostSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hiking", body["name"])
		w.Write(envelope(t, body))
	}))
	defer srv.Close()

	var out map[string]string
	err := testClient(srv.URL).Post(context.Background(), "/goals", map[string]string{"name": "hiking"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hiking", out["name"])
}

// Backends that paginate server-side answer with a bare {data, pagination}
// body carrying no success flag at all.
func TestGetDecodesBarePagedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"reason":"spam"}],"pagination":{"total":1,"page":1,"limit":10,"totalPages":1}}`))
	}))
	defer srv.Close()

	var body httputil.PagedBody
	err := testClient(srv.URL).Get(context.Background(), "/reports", nil, &body)
	require.NoError(t, err)
	assert.Equal(t, 1, body.Pagination.Total)

	var items []map[string]string
	require.NoError(t, json.Unmarshal(body.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "spam", items[0]["reason"])
}

func TestMutationsCarryIdempotencyKey(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Idempotency-Key")
		w.Write(envelope(t, nil))
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	ctx := WithIdempotencyKey(context.Background(), "key-123")
	require.NoError(t, client.Post(ctx, "/goals", map[string]string{"name": "hiking"}, nil))
	assert.Equal(t, "key-123", got)

	// GETs never carry one, keyed context or not.
	require.NoError(t, client.Get(ctx, "/goals", nil, nil))
	assert.Empty(t, got)

	// Without a keyed context the header stays absent.
	require.NoError(t, client.Put(context.Background(), "/goals/1", nil, nil))
	assert.Empty(t, got)
}

func TestSuccessFalseIsApplicationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(httputil.Response{Success: false, Message: "name already taken"})
	}))
	defer srv.Close()

	err := testClient(srv.URL).Post(context.Background(), "/goals", map[string]string{}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsApplication(err))
	assert.Equal(t, "name already taken", errors.MessageOf(err))
}

func TestUnauthorizedStatusMapsToUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(httputil.Response{Success: false, Error: "token expired"})
	}))
	defer srv.Close()

	err := testClient(srv.URL).Get(context.Background(), "/users", nil, nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrUnauthorized, errors.CodeOf(err))
}

func TestUnparseableBodyIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	err := testClient(srv.URL).Get(context.Background(), "/users", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsTransport(err))
}

func TestConnectionFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := testClient(srv.URL).Get(context.Background(), "/users", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsTransport(err))
}

func TestMediaURL(t *testing.T) {
	client := testClient("http://api.example.com")

	assert.Equal(t, "http://api.example.com/media/photos/a.jpg", client.MediaURL("photos/a.jpg"))
	assert.Equal(t, "http://api.example.com/media/photos/a.jpg", client.MediaURL("/photos/a.jpg"))
	assert.Equal(t, "https://cdn.example.com/b.jpg", client.MediaURL("https://cdn.example.com/b.jpg"))
	assert.Empty(t, client.MediaURL(""))
}

func TestResourceOf(t *testing.T) {
	assert.Equal(t, "users", resourceOf("/users/123"))
	assert.Equal(t, "users", resourceOf("/users"))
	assert.Equal(t, "root", resourceOf("/"))
}
