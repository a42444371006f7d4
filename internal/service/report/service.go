package report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/form"
	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/internal/service/crud"
	"github.com/heartlinkhq/admin-console/pkg/httputil"
)

// Service manages moderation reports through /reports. The endpoint is
// server-paginated: the console asks for one page at a time and filters only
// within it.
type Service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// ListPage fetches one page of reports.
func (s *Service) ListPage(ctx context.Context, page, limit int, status string) ([]model.Report, httputil.Pagination, error) {
	params := apiclient.Params{
		"page":   strconv.Itoa(page),
		"limit":  strconv.Itoa(limit),
		"status": status,
	}
	return crud.ListPaged[model.Report](ctx, s.client, "/reports", params)
}

// UpdateStatus moves a report through the moderation workflow.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req model.UpdateReportRequest) (*model.Report, error) {
	var updated model.Report
	if err := s.client.Put(ctx, fmt.Sprintf("/reports/%s", id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func SearchText(r model.Report) []string {
	return []string{r.Reason, r.Details, r.Status, r.ReporterID.String(), r.ReportedID.String()}
}

func ValidateReportData(req model.UpdateReportRequest) []string {
	return form.Errors(req)
}
