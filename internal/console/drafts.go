package console

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/form"
	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/internal/service/consumable"
	"github.com/heartlinkhq/admin-console/internal/service/goal"
	"github.com/heartlinkhq/admin-console/internal/service/interest"
	"github.com/heartlinkhq/admin-console/internal/service/message"
	"github.com/heartlinkhq/admin-console/internal/service/notification"
	"github.com/heartlinkhq/admin-console/internal/service/photo"
	"github.com/heartlinkhq/admin-console/internal/service/report"
	"github.com/heartlinkhq/admin-console/internal/service/setting"
	"github.com/heartlinkhq/admin-console/internal/service/subscription"
	"github.com/heartlinkhq/admin-console/internal/service/swipe"
	"github.com/heartlinkhq/admin-console/internal/service/user"
)

// Draft builders collect one resource's dialog fields from the prompter and
// pair the resource validator with the create or update call. Blank answers
// keep current values, so editing only sends what changed.

func userCreateDraft(svc *user.Service) draftFunc[model.User] {
	return func(p *prompter, _ *model.User) (func() []string, func(context.Context) (*model.User, error)) {
		req := model.CreateUserRequest{
			Email:    p.ask("email", ""),
			Password: p.ask("password", ""),
			Role:     p.ask("role (admin/moderator/member)", ""),
			Status:   p.ask("status (blank for active)", ""),
		}
		return func() []string { return user.ValidateUserData(req) },
			func(ctx context.Context) (*model.User, error) { return svc.Create(ctx, req) }
	}
}

func userEditDraft(svc *user.Service) draftFunc[model.User] {
	return func(p *prompter, current *model.User) (func() []string, func(context.Context) (*model.User, error)) {
		email := p.ask("email", current.Email)
		role := p.ask("role (admin/moderator/member)", current.Role)
		status := p.ask("status (active/inactive/suspended/banned)", current.Status)
		req := model.UpdateUserRequest{Email: &email, Role: &role, Status: &status}
		id := current.ID
		return func() []string { return form.Errors(req) },
			func(ctx context.Context) (*model.User, error) { return svc.Update(ctx, id, req) }
	}
}

func goalDraft(svc *goal.Service) draftFunc[model.Goal] {
	return func(p *prompter, current *model.Goal) (func() []string, func(context.Context) (*model.Goal, error)) {
		var req model.UpsertGoalRequest
		if current != nil {
			req.Name, req.Description = current.Name, current.Description
		}
		req.Name = p.ask("name", req.Name)
		req.Description = p.ask("description", req.Description)

		validate := func() []string { return goal.ValidateGoalData(req) }
		if current == nil {
			return validate, func(ctx context.Context) (*model.Goal, error) { return svc.Create(ctx, req) }
		}
		id := current.ID
		return validate, func(ctx context.Context) (*model.Goal, error) { return svc.Update(ctx, id, req) }
	}
}

func interestDraft(svc *interest.Service) draftFunc[model.Interest] {
	return func(p *prompter, current *model.Interest) (func() []string, func(context.Context) (*model.Interest, error)) {
		var req model.UpsertInterestRequest
		if current != nil {
			req.Name, req.Category = current.Name, current.Category
		}
		req.Name = p.ask("name", req.Name)
		req.Category = p.ask("category", req.Category)

		validate := func() []string { return interest.ValidateInterestData(req) }
		if current == nil {
			return validate, func(ctx context.Context) (*model.Interest, error) { return svc.Create(ctx, req) }
		}
		id := current.ID
		return validate, func(ctx context.Context) (*model.Interest, error) { return svc.Update(ctx, id, req) }
	}
}

func messageCreateDraft(svc *message.Service) draftFunc[model.Message] {
	return func(p *prompter, _ *model.Message) (func() []string, func(context.Context) (*model.Message, error)) {
		req := model.CreateMessageRequest{
			MatchID:  p.ask("match id", ""),
			SenderID: p.ask("sender id", ""),
			Body:     p.ask("body", ""),
		}
		return func() []string { return message.ValidateMessageData(req) },
			func(ctx context.Context) (*model.Message, error) { return svc.Create(ctx, req) }
	}
}

func settingEditDraft(svc *setting.Service) draftFunc[model.Setting] {
	return func(p *prompter, current *model.Setting) (func() []string, func(context.Context) (*model.Setting, error)) {
		distance := p.askInt("max distance km", current.MaxDistanceKm)
		ageMin := p.askInt("age min", current.AgeMin)
		ageMax := p.askInt("age max", current.AgeMax)
		req := model.UpdateSettingRequest{MaxDistanceKm: &distance, AgeMin: &ageMin, AgeMax: &ageMax}
		id := current.ID
		return func() []string { return setting.ValidateSettingData(req) },
			func(ctx context.Context) (*model.Setting, error) { return svc.Update(ctx, id, req) }
	}
}

func subscriptionCreateDraft(svc *subscription.Service) draftFunc[model.Subscription] {
	return func(p *prompter, _ *model.Subscription) (func() []string, func(context.Context) (*model.Subscription, error)) {
		req := model.CreateSubscriptionRequest{
			UserID:      p.ask("user id", ""),
			Plan:        p.ask("plan (free/plus/premium/platinum)", ""),
			PeriodStart: p.askDate("period start (yyyy-mm-dd)", timeNow()),
			PeriodEnd:   p.askDate("period end (yyyy-mm-dd)", timeNow().AddDate(0, 1, 0)),
		}
		return func() []string { return subscription.ValidateSubscriptionData(req) },
			func(ctx context.Context) (*model.Subscription, error) { return svc.Create(ctx, req) }
	}
}

func subscriptionEditDraft(svc *subscription.Service) draftFunc[model.Subscription] {
	return func(p *prompter, current *model.Subscription) (func() []string, func(context.Context) (*model.Subscription, error)) {
		plan := p.ask("plan (free/plus/premium/platinum)", current.Plan)
		status := p.ask("status (active/expired/canceled)", current.Status)
		periodEnd := p.askDate("period end (yyyy-mm-dd)", current.PeriodEnd)
		req := model.UpdateSubscriptionRequest{Plan: &plan, Status: &status, PeriodEnd: &periodEnd}
		id := current.ID
		return func() []string { return form.Errors(req) },
			func(ctx context.Context) (*model.Subscription, error) { return svc.Update(ctx, id, req) }
	}
}

func consumableGrantDraft(svc *consumable.Service) draftFunc[model.Consumable] {
	return func(p *prompter, _ *model.Consumable) (func() []string, func(context.Context) (*model.Consumable, error)) {
		req := model.GrantConsumableRequest{
			UserID: p.ask("user id", ""),
			Kind:   p.ask("kind (superlikes/boosts/rewinds)", ""),
			Amount: p.askInt("amount", 1),
		}
		return func() []string { return consumable.ValidateGrantData(req) },
			func(ctx context.Context) (*model.Consumable, error) { return svc.Grant(ctx, req) }
	}
}

func consumableEditDraft(svc *consumable.Service) draftFunc[model.Consumable] {
	return func(p *prompter, current *model.Consumable) (func() []string, func(context.Context) (*model.Consumable, error)) {
		req := model.UpdateConsumableRequest{Balance: p.askInt("balance", current.Balance)}
		id := current.ID
		return func() []string { return form.Errors(req) },
			func(ctx context.Context) (*model.Consumable, error) { return svc.Update(ctx, id, req) }
	}
}

func notificationCreateDraft(svc *notification.Service) draftFunc[model.Notification] {
	return func(p *prompter, _ *model.Notification) (func() []string, func(context.Context) (*model.Notification, error)) {
		req := model.CreateNotificationRequest{
			UserID: p.ask("user id", ""),
			Kind:   p.ask("kind (new_match/new_message/system)", ""),
			Title:  p.ask("title", ""),
			Body:   p.ask("body", ""),
		}
		return func() []string { return notification.ValidateNotificationData(req) },
			func(ctx context.Context) (*model.Notification, error) { return svc.Create(ctx, req) }
	}
}

func photoCreateDraft(svc *photo.Service) draftFunc[model.Photo] {
	return func(p *prompter, _ *model.Photo) (func() []string, func(context.Context) (*model.Photo, error)) {
		req := model.CreatePhotoRequest{
			UserID:   p.ask("user id", ""),
			Path:     p.ask("path", ""),
			Position: p.askInt("position", 0),
		}
		return func() []string { return photo.ValidatePhotoData(req) },
			func(ctx context.Context) (*model.Photo, error) { return svc.Create(ctx, req) }
	}
}

func reportEditHook(svc *report.Service) pagedEditFunc {
	return func(ctx context.Context, id uuid.UUID, p *prompter) ([]string, error) {
		req := model.UpdateReportRequest{
			Status:     p.ask("status (open/reviewing/resolved/dismissed)", ""),
			ReviewerID: p.ask("reviewer id (blank to skip)", ""),
			Resolution: p.ask("resolution", ""),
		}
		if errs := report.ValidateReportData(req); len(errs) > 0 {
			return errs, nil
		}
		_, err := svc.UpdateStatus(ctx, id, req)
		return nil, err
	}
}

func swipeCreateHook(svc *swipe.Service) pagedCreateFunc {
	return func(ctx context.Context, p *prompter) ([]string, error) {
		req := model.CreateSwipeRequest{
			SwiperID:  p.ask("swiper id", ""),
			TargetID:  p.ask("target id", ""),
			Direction: p.ask("direction (like/pass/superlike)", ""),
		}
		if errs := swipe.ValidateSwipeData(req); len(errs) > 0 {
			return errs, nil
		}
		_, err := svc.Create(ctx, req)
		return nil, err
	}
}
