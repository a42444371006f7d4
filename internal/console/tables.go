package console

import (
	"strconv"
	"time"

	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/internal/render"
	"github.com/heartlinkhq/admin-console/internal/service/subscription"
	"github.com/heartlinkhq/admin-console/internal/service/user"
)

// timeNow is swapped in tests.
var timeNow = time.Now

func userTable() *render.Table[model.User] {
	return render.NewTable([]render.Column[model.User]{
		{Key: "id", Label: "ID"},
		{Label: "NAME", Render: func(u model.User) string {
			return user.FormatUserForDisplay(u).DisplayName
		}},
		{Key: "email", Label: "EMAIL"},
		{Key: "role", Label: "ROLE"},
		{Key: "status", Label: "STATUS"},
		{Key: "profile.city", Label: "CITY"},
		{Key: "created_at", Label: "JOINED"},
	})
}

func goalTable() *render.Table[model.Goal] {
	return render.NewTable([]render.Column[model.Goal]{
		{Key: "id", Label: "ID"},
		{Key: "name", Label: "NAME"},
		{Key: "description", Label: "DESCRIPTION"},
	})
}

func interestTable() *render.Table[model.Interest] {
	return render.NewTable([]render.Column[model.Interest]{
		{Key: "id", Label: "ID"},
		{Key: "name", Label: "NAME"},
		{Key: "category", Label: "CATEGORY"},
	})
}

func matchTable() *render.Table[model.Match] {
	return render.NewTable([]render.Column[model.Match]{
		{Key: "id", Label: "ID"},
		{Key: "user_a_id", Label: "USER A"},
		{Key: "user_b_id", Label: "USER B"},
		{Key: "status", Label: "STATUS"},
		{Key: "matched_at", Label: "MATCHED"},
	})
}

func messageTable() *render.Table[model.Message] {
	return render.NewTable([]render.Column[model.Message]{
		{Key: "id", Label: "ID"},
		{Key: "match_id", Label: "MATCH"},
		{Key: "sender_id", Label: "SENDER"},
		{Key: "body", Label: "BODY"},
		{Key: "sent_at", Label: "SENT"},
	})
}

func reportTable() *render.Table[model.Report] {
	return render.NewTable([]render.Column[model.Report]{
		{Key: "id", Label: "ID"},
		{Key: "reported_id", Label: "REPORTED"},
		{Key: "reason", Label: "REASON"},
		{Key: "status", Label: "STATUS"},
		{Key: "created_at", Label: "FILED"},
	})
}

func settingTable() *render.Table[model.Setting] {
	return render.NewTable([]render.Column[model.Setting]{
		{Key: "id", Label: "ID"},
		{Key: "user_id", Label: "USER"},
		{Key: "discovery_enabled", Label: "DISCOVERY"},
		{Label: "AGE RANGE", Render: func(s model.Setting) string {
			return strconv.Itoa(s.AgeMin) + "-" + strconv.Itoa(s.AgeMax)
		}},
		{Key: "max_distance_km", Label: "DISTANCE KM"},
	})
}

func subscriptionTable() *render.Table[model.Subscription] {
	return render.NewTable([]render.Column[model.Subscription]{
		{Key: "id", Label: "ID"},
		{Key: "user_id", Label: "USER"},
		{Key: "plan", Label: "PLAN"},
		{Key: "status", Label: "STATUS"},
		{Label: "DAYS LEFT", Render: func(s model.Subscription) string {
			return strconv.Itoa(subscription.FormatSubscriptionForDisplay(s, timeNow()).DaysLeft)
		}},
		{Key: "period_end", Label: "RENEWS"},
	})
}

func consumableTable() *render.Table[model.Consumable] {
	return render.NewTable([]render.Column[model.Consumable]{
		{Key: "id", Label: "ID"},
		{Key: "user_id", Label: "USER"},
		{Key: "kind", Label: "KIND"},
		{Key: "balance", Label: "BALANCE"},
	})
}

func notificationTable() *render.Table[model.Notification] {
	return render.NewTable([]render.Column[model.Notification]{
		{Key: "id", Label: "ID"},
		{Key: "user_id", Label: "USER"},
		{Key: "kind", Label: "KIND"},
		{Key: "title", Label: "TITLE"},
		{Key: "read_at", Label: "READ"},
	})
}

func photoTable() *render.Table[model.Photo] {
	return render.NewTable([]render.Column[model.Photo]{
		{Key: "id", Label: "ID"},
		{Key: "user_id", Label: "USER"},
		{Key: "path", Label: "PATH"},
		{Key: "is_primary", Label: "PRIMARY"},
	})
}

func swipeTable() *render.Table[model.Swipe] {
	return render.NewTable([]render.Column[model.Swipe]{
		{Key: "id", Label: "ID"},
		{Key: "swiper_id", Label: "SWIPER"},
		{Key: "target_id", Label: "TARGET"},
		{Key: "direction", Label: "DIRECTION"},
		{Key: "is_match", Label: "MATCH"},
	})
}
