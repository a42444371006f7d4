package swipe

import (
	"context"
	"strconv"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/form"
	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/internal/service/crud"
	"github.com/heartlinkhq/admin-console/pkg/httputil"
)

// Service reads and records swipes through /swipe. The endpoint is
// server-paginated and append-only: swipes are never edited or deleted.
type Service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// ListPage fetches one page of swipes, optionally narrowed to one swiper.
func (s *Service) ListPage(ctx context.Context, page, limit int, swiperID string) ([]model.Swipe, httputil.Pagination, error) {
	params := apiclient.Params{
		"page":      strconv.Itoa(page),
		"limit":     strconv.Itoa(limit),
		"swiper_id": swiperID,
	}
	return crud.ListPaged[model.Swipe](ctx, s.client, "/swipe", params)
}

// Create records a swipe. The response's IsMatch flag tells the caller
// whether this swipe completed a mutual like.
func (s *Service) Create(ctx context.Context, req model.CreateSwipeRequest) (*model.Swipe, error) {
	var swipe model.Swipe
	if err := s.client.Post(ctx, "/swipe", req, &swipe); err != nil {
		return nil, err
	}
	return &swipe, nil
}

func SearchText(sw model.Swipe) []string {
	return []string{sw.SwiperID.String(), sw.TargetID.String(), sw.Direction}
}

func ValidateSwipeData(req model.CreateSwipeRequest) []string {
	errs := form.Errors(req)
	if req.SwiperID != "" && req.SwiperID == req.TargetID {
		errs = append(errs, "swiper and target must be different users")
	}
	return errs
}
