// Package dashboard turns already-fetched flat lists into chart-ready
// series. Every transform is a full recompute over the in-memory list; there
// is no incremental state to get out of sync.
package dashboard

import (
	"time"

	"github.com/heartlinkhq/admin-console/internal/model"
)

// DayBucket is one bar of a per-day chart.
type DayBucket struct {
	Day   time.Time `json:"day"`
	Label string    `json:"label"`
	Count int       `json:"count"`
}

// StatusBucket is one slice of a status breakdown.
type StatusBucket struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// MatchesPerDay buckets matches by calendar day over the trailing seven-day
// window ending today. Days without matches appear with a zero count so the
// chart axis stays fixed.
func MatchesPerDay(matches []model.Match, now time.Time) []DayBucket {
	today := truncateToDay(now)
	start := today.AddDate(0, 0, -6)

	buckets := make([]DayBucket, 7)
	index := make(map[time.Time]int, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		buckets[i] = DayBucket{Day: day, Label: day.Format("Mon")}
		index[day] = i
	}

	for _, m := range matches {
		day := truncateToDay(m.MatchedAt.In(now.Location()))
		if i, ok := index[day]; ok {
			buckets[i].Count++
		}
	}
	return buckets
}

// CountByStatus counts entities per status value, in first-seen order.
func CountByStatus[T any](items []T, status func(T) string) []StatusBucket {
	var buckets []StatusBucket
	index := make(map[string]int)
	for _, item := range items {
		key := status(item)
		if i, ok := index[key]; ok {
			buckets[i].Count++
			continue
		}
		index[key] = len(buckets)
		buckets = append(buckets, StatusBucket{Status: key, Count: 1})
	}
	return buckets
}

// SubscriptionsByPlan is the plan breakdown for the revenue card.
func SubscriptionsByPlan(subs []model.Subscription) []StatusBucket {
	return CountByStatus(subs, func(s model.Subscription) string { return s.Plan })
}

// ReportBacklog counts unresolved moderation reports.
func ReportBacklog(reports []model.Report) int {
	open := 0
	for _, r := range reports {
		if r.Status == model.ReportStatusOpen || r.Status == model.ReportStatusReviewing {
			open++
		}
	}
	return open
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
