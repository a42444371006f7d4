package stubapi

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/pkg/httputil"
)

func (s *Server) listReports(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := c.Query("status")

	items, total := s.reports.Page(page, limit, func(r model.Report) bool {
		return status == "" || r.Status == status
	})
	httputil.RespondWithPagination(c, items, page, limit, total)
}

func (s *Server) updateReport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	report, found := s.reports.Get(id)
	if !found {
		notFound(c, "report")
		return
	}

	var req model.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	now := time.Now()
	report.Status = req.Status
	if req.ReviewerID != "" {
		reviewerID, err := uuid.Parse(req.ReviewerID)
		if err == nil {
			report.ReviewerID = &reviewerID
		}
	}
	if req.Status == model.ReportStatusResolved || req.Status == model.ReportStatusDismissed {
		report.ResolvedAt = &now
	} else {
		report.ResolvedAt = nil
	}
	report.UpdatedAt = now
	s.reports.Put(report)

	httputil.RespondWithMessage(c, report, "report updated")
}
