package crud

import (
	"context"
	"encoding/json"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/pkg/errors"
	"github.com/heartlinkhq/admin-console/pkg/httputil"
)

// ListPaged fetches one page of a server-paginated resource. The page and
// limit travel as query parameters; the response carries the pagination
// metadata next to the data.
func ListPaged[T any](ctx context.Context, client *apiclient.Client, base string, params apiclient.Params) ([]T, httputil.Pagination, error) {
	var body httputil.PagedBody
	if err := client.Get(ctx, base, params, &body); err != nil {
		return nil, httputil.Pagination{}, err
	}

	var items []T
	if len(body.Data) > 0 {
		if err := json.Unmarshal(body.Data, &items); err != nil {
			return nil, httputil.Pagination{}, errors.NewTransport(err)
		}
	}
	return items, body.Pagination, nil
}
