package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/heartlinkhq/admin-console/internal/model"
)

func TestValidateSubscriptionDataPeriodOrdering(t *testing.T) {
	now := time.Now()
	req := model.CreateSubscriptionRequest{
		UserID:      "2f0c8f6a-54d4-4f43-9b2e-1f1d9a1a2b3c",
		Plan:        model.PlanPlus,
		PeriodStart: now,
		PeriodEnd:   now.Add(-time.Hour),
	}

	errs := ValidateSubscriptionData(req)
	assert.Contains(t, errs, "period end must not be before period start")

	req.PeriodEnd = now.Add(30 * 24 * time.Hour)
	assert.Empty(t, ValidateSubscriptionData(req))
}

func TestFormatSubscriptionForDisplay(t *testing.T) {
	now := time.Now()

	active := model.Subscription{
		Plan:      model.PlanPremium,
		Status:    model.SubscriptionStatusActive,
		PeriodEnd: now.Add(30 * 24 * time.Hour),
	}
	display := FormatSubscriptionForDisplay(active, now)
	assert.Equal(t, 30, display.DaysLeft)
	assert.False(t, display.Expiring)

	active.PeriodEnd = now.Add(3 * 24 * time.Hour)
	display = FormatSubscriptionForDisplay(active, now)
	assert.Equal(t, 3, display.DaysLeft)
	assert.True(t, display.Expiring)
}

func TestFormatSubscriptionForDisplayInactive(t *testing.T) {
	now := time.Now()

	canceled := model.Subscription{
		Status:    model.SubscriptionStatusCanceled,
		PeriodEnd: now.Add(30 * 24 * time.Hour),
	}
	display := FormatSubscriptionForDisplay(canceled, now)
	assert.Zero(t, display.DaysLeft)
	assert.False(t, display.Expiring)
}
