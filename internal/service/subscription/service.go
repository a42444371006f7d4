package subscription

import (
	"time"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/form"
	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/internal/service/crud"
)

// Service manages paid plans through /subscriptions. Delete is the cancel
// operation; the server flips the status rather than erase history.
type Service struct {
	crud.Service[model.Subscription, model.CreateSubscriptionRequest, model.UpdateSubscriptionRequest]
}

func NewService(client *apiclient.Client) *Service {
	return &Service{Service: crud.New[model.Subscription, model.CreateSubscriptionRequest, model.UpdateSubscriptionRequest](client, "/subscriptions")}
}

func SearchText(s model.Subscription) []string {
	return []string{s.UserID.String(), s.Plan, s.Status}
}

// ValidateSubscriptionData checks a create payload, including the period
// ordering rule the struct tags cannot express.
func ValidateSubscriptionData(req model.CreateSubscriptionRequest) []string {
	errs := form.Errors(req)
	if !req.PeriodStart.IsZero() && !req.PeriodEnd.IsZero() && req.PeriodEnd.Before(req.PeriodStart) {
		errs = append(errs, "period end must not be before period start")
	}
	return errs
}

// DisplaySubscription is a subscription with derived display fields.
type DisplaySubscription struct {
	model.Subscription
	DaysLeft int  `json:"days_left"`
	Expiring bool `json:"expiring"`
}

// FormatSubscriptionForDisplay derives remaining days and an expiring flag
// (under a week left on an active plan).
func FormatSubscriptionForDisplay(s model.Subscription, now time.Time) DisplaySubscription {
	display := DisplaySubscription{Subscription: s}
	if s.Status == model.SubscriptionStatusActive && s.PeriodEnd.After(now) {
		display.DaysLeft = int(s.PeriodEnd.Sub(now).Hours() / 24)
		display.Expiring = display.DaysLeft < 7
	}
	return display
}
