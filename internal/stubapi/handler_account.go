package stubapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/pkg/httputil"
)

func (s *Server) listSettings(c *gin.Context) {
	httputil.RespondWithSuccess(c, s.settings.List())
}

func (s *Server) settingsForUser(c *gin.Context) {
	userID, ok := pathID(c, "userID")
	if !ok {
		return
	}
	records := s.settings.Find(func(st model.Setting) bool { return st.UserID == userID })
	if len(records) == 0 {
		notFound(c, "settings")
		return
	}
	httputil.RespondWithSuccess(c, records[0])
}

func (s *Server) updateSetting(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	setting, found := s.settings.Get(id)
	if !found {
		notFound(c, "settings")
		return
	}

	var req model.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if req.DiscoveryEnabled != nil {
		setting.DiscoveryEnabled = *req.DiscoveryEnabled
	}
	if req.MaxDistanceKm != nil {
		setting.MaxDistanceKm = *req.MaxDistanceKm
	}
	if req.AgeMin != nil {
		setting.AgeMin = *req.AgeMin
	}
	if req.AgeMax != nil {
		setting.AgeMax = *req.AgeMax
	}
	if setting.AgeMin > setting.AgeMax {
		badRequest(c, "age min must not exceed age max")
		return
	}
	if req.ShowOnlineStatus != nil {
		setting.ShowOnlineStatus = *req.ShowOnlineStatus
	}
	if req.PushNotifications != nil {
		setting.PushNotifications = *req.PushNotifications
	}
	if req.EmailNotifications != nil {
		setting.EmailNotifications = *req.EmailNotifications
	}
	setting.UpdatedAt = time.Now()
	s.settings.Put(setting)

	httputil.RespondWithMessage(c, setting, "settings updated")
}

func (s *Server) listSubscriptions(c *gin.Context) {
	userID := c.Query("user_id")
	subs := s.subscriptions.Find(func(sub model.Subscription) bool {
		return userID == "" || sub.UserID.String() == userID
	})
	if subs == nil {
		subs = []model.Subscription{}
	}
	httputil.RespondWithSuccess(c, subs)
}

func (s *Server) createSubscription(c *gin.Context) {
	var req model.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.PeriodEnd.Before(req.PeriodStart) {
		badRequest(c, "period end must not be before period start")
		return
	}
	userID, _ := uuid.Parse(req.UserID)
	if _, found := s.users.Get(userID); !found {
		notFound(c, "user")
		return
	}

	now := time.Now()
	sub := model.Subscription{
		Base:        model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:      userID,
		Plan:        req.Plan,
		Status:      model.SubscriptionStatusActive,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
	}
	s.subscriptions.Put(sub)
	httputil.RespondWithMessage(c, sub, "subscription created")
}

func (s *Server) updateSubscription(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	sub, found := s.subscriptions.Get(id)
	if !found {
		notFound(c, "subscription")
		return
	}

	var req model.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.Plan != nil {
		sub.Plan = *req.Plan
	}
	if req.Status != nil {
		sub.Status = *req.Status
	}
	if req.PeriodEnd != nil {
		sub.PeriodEnd = *req.PeriodEnd
	}
	sub.UpdatedAt = time.Now()
	s.subscriptions.Put(sub)
	httputil.RespondWithMessage(c, sub, "subscription updated")
}

// cancelSubscription flips the status instead of erasing billing history.
func (s *Server) cancelSubscription(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	sub, found := s.subscriptions.Get(id)
	if !found {
		notFound(c, "subscription")
		return
	}
	now := time.Now()
	sub.Status = model.SubscriptionStatusCanceled
	sub.CanceledAt = &now
	sub.UpdatedAt = now
	s.subscriptions.Put(sub)
	httputil.RespondWithMessage(c, sub, "subscription canceled")
}

func (s *Server) listConsumables(c *gin.Context) {
	userID := c.Query("user_id")
	balances := s.consumables.Find(func(cb model.Consumable) bool {
		return userID == "" || cb.UserID.String() == userID
	})
	if balances == nil {
		balances = []model.Consumable{}
	}
	httputil.RespondWithSuccess(c, balances)
}

func (s *Server) grantConsumable(c *gin.Context) {
	var req model.GrantConsumableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	userID, _ := uuid.Parse(req.UserID)
	if _, found := s.users.Get(userID); !found {
		notFound(c, "user")
		return
	}

	now := time.Now()
	existing := s.consumables.Find(func(cb model.Consumable) bool {
		return cb.UserID == userID && cb.Kind == req.Kind
	})
	var balance model.Consumable
	if len(existing) > 0 {
		balance = existing[0]
		balance.Balance += req.Amount
		balance.UpdatedAt = now
	} else {
		balance = model.Consumable{
			Base:    model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			UserID:  userID,
			Kind:    req.Kind,
			Balance: req.Amount,
		}
	}
	s.consumables.Put(balance)
	httputil.RespondWithMessage(c, balance, "balance granted")
}

func (s *Server) updateConsumable(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	balance, found := s.consumables.Get(id)
	if !found {
		notFound(c, "consumable")
		return
	}

	var req model.UpdateConsumableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	balance.Balance = req.Balance
	balance.UpdatedAt = time.Now()
	s.consumables.Put(balance)
	httputil.RespondWithMessage(c, balance, "balance updated")
}

func (s *Server) listNotifications(c *gin.Context) {
	userID := c.Query("user_id")
	items := s.notifications.Find(func(n model.Notification) bool {
		return userID == "" || n.UserID.String() == userID
	})
	if items == nil {
		items = []model.Notification{}
	}
	httputil.RespondWithSuccess(c, items)
}

func (s *Server) createNotification(c *gin.Context) {
	var req model.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	userID, _ := uuid.Parse(req.UserID)
	if _, found := s.users.Get(userID); !found {
		notFound(c, "user")
		return
	}

	now := time.Now()
	item := model.Notification{
		Base:   model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID: userID,
		Kind:   req.Kind,
		Title:  req.Title,
		Body:   req.Body,
	}
	s.notifications.Put(item)
	httputil.RespondWithMessage(c, item, "notification created")
}

// markNotificationsRead stamps the batch and returns the updated records so
// clients can patch by id. Unknown ids are skipped, not errors.
func (s *Server) markNotificationsRead(c *gin.Context) {
	var req model.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	now := time.Now()
	updated := []model.Notification{}
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		item, found := s.notifications.Get(id)
		if !found {
			continue
		}
		if item.ReadAt == nil {
			item.ReadAt = &now
			item.UpdatedAt = now
			s.notifications.Put(item)
		}
		updated = append(updated, item)
	}
	httputil.RespondWithMessage(c, updated, "notifications marked read")
}

func (s *Server) deleteNotification(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !s.notifications.Delete(id) {
		notFound(c, "notification")
		return
	}
	httputil.RespondWithMessage(c, nil, "notification deleted")
}

func (s *Server) listPhotos(c *gin.Context) {
	userID := c.Query("user_id")
	photos := s.photos.Find(func(p model.Photo) bool {
		return userID == "" || p.UserID.String() == userID
	})
	if photos == nil {
		photos = []model.Photo{}
	}
	httputil.RespondWithSuccess(c, photos)
}

func (s *Server) createPhoto(c *gin.Context) {
	var req model.CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	userID, _ := uuid.Parse(req.UserID)
	if _, found := s.users.Get(userID); !found {
		notFound(c, "user")
		return
	}

	now := time.Now()
	photo := model.Photo{
		Base:     model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:   userID,
		Path:     req.Path,
		Position: req.Position,
	}
	// First photo becomes primary automatically.
	if len(s.photos.Find(func(p model.Photo) bool { return p.UserID == userID })) == 0 {
		photo.IsPrimary = true
	}
	s.photos.Put(photo)
	httputil.RespondWithMessage(c, photo, "photo added")
}

func (s *Server) setPrimaryPhoto(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	photo, found := s.photos.Get(id)
	if !found {
		notFound(c, "photo")
		return
	}

	now := time.Now()
	for _, other := range s.photos.Find(func(p model.Photo) bool {
		return p.UserID == photo.UserID && p.IsPrimary && p.ID != photo.ID
	}) {
		other.IsPrimary = false
		other.UpdatedAt = now
		s.photos.Put(other)
	}
	photo.IsPrimary = true
	photo.UpdatedAt = now
	s.photos.Put(photo)

	httputil.RespondWithMessage(c, photo, "primary photo set")
}

func (s *Server) deletePhoto(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !s.photos.Delete(id) {
		notFound(c, "photo")
		return
	}
	httputil.RespondWithMessage(c, nil, "photo deleted")
}
