package model

import (
	"time"

	"github.com/google/uuid"
)

// Report status constants
const (
	ReportStatusOpen      = "open"
	ReportStatusReviewing = "reviewing"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

// Report reason constants
const (
	ReportReasonFakeProfile   = "fake_profile"
	ReportReasonHarassment    = "harassment"
	ReportReasonInappropriate = "inappropriate_content"
	ReportReasonSpam          = "spam"
	ReportReasonOther         = "other"
)

// Report is a moderation report filed by one user against another. The
// reports endpoint is server-paginated; the console filters only within the
// current page.
type Report struct {
	Base
	ReporterID uuid.UUID  `json:"reporter_id"`
	ReportedID uuid.UUID  `json:"reported_id"`
	Reason     string     `json:"reason"`
	Details    string     `json:"details"`
	Status     string     `json:"status"`
	ReviewerID *uuid.UUID `json:"reviewer_id,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// UpdateReportRequest moves a report through the moderation workflow.
type UpdateReportRequest struct {
	Status     string `json:"status" binding:"required,oneof=open reviewing resolved dismissed"`
	ReviewerID string `json:"reviewer_id,omitempty" binding:"omitempty,uuid"`
	Resolution string `json:"resolution,omitempty" binding:"max=1000"`
}
