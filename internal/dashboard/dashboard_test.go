package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartlinkhq/admin-console/internal/model"
)

func matchAt(t time.Time) model.Match {
	return model.Match{MatchedAt: t}
}

func TestMatchesPerDayWindowIsFixed(t *testing.T) {
	now := time.Date(2026, time.March, 10, 16, 0, 0, 0, time.UTC)

	buckets := MatchesPerDay(nil, now)
	require.Len(t, buckets, 7)
	assert.Equal(t, time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC), buckets[0].Day)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), buckets[6].Day)
	for _, b := range buckets {
		assert.Zero(t, b.Count)
		assert.NotEmpty(t, b.Label)
	}
}

func TestMatchesPerDayCountsAndIgnoresOutOfWindow(t *testing.T) {
	now := time.Date(2026, time.March, 10, 16, 0, 0, 0, time.UTC)

	matches := []model.Match{
		matchAt(now),
		matchAt(now.Add(-2 * time.Hour)),
		matchAt(now.AddDate(0, 0, -3)),
		matchAt(now.AddDate(0, 0, -10)), // before the window
		matchAt(now.AddDate(0, 0, 1)),   // after the window
	}

	buckets := MatchesPerDay(matches, now)
	assert.Equal(t, 1, buckets[3].Count)
	assert.Equal(t, 2, buckets[6].Count)

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, 3, total)
}

func TestCountByStatusFirstSeenOrder(t *testing.T) {
	users := []model.User{
		{Status: model.UserStatusActive},
		{Status: model.UserStatusBanned},
		{Status: model.UserStatusActive},
		{Status: model.UserStatusInactive},
	}

	buckets := CountByStatus(users, func(u model.User) string { return u.Status })
	require.Len(t, buckets, 3)
	assert.Equal(t, StatusBucket{Status: "active", Count: 2}, buckets[0])
	assert.Equal(t, StatusBucket{Status: "banned", Count: 1}, buckets[1])
	assert.Equal(t, StatusBucket{Status: "inactive", Count: 1}, buckets[2])
}

func TestSubscriptionsByPlan(t *testing.T) {
	subs := []model.Subscription{
		{Plan: model.PlanPlus},
		{Plan: model.PlanPremium},
		{Plan: model.PlanPlus},
	}

	buckets := SubscriptionsByPlan(subs)
	require.Len(t, buckets, 2)
	assert.Equal(t, 2, buckets[0].Count)
}

func TestReportBacklog(t *testing.T) {
	reports := []model.Report{
		{Status: model.ReportStatusOpen},
		{Status: model.ReportStatusReviewing},
		{Status: model.ReportStatusResolved},
		{Status: model.ReportStatusDismissed},
	}

	assert.Equal(t, 2, ReportBacklog(reports))
}
