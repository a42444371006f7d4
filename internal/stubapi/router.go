package stubapi

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartlinkhq/admin-console/pkg/httputil"
)

// Router assembles the gin engine with the full API surface.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(s.recovery(), requestID(), s.accessLog(), s.rateLimit())

	r.GET("/healthz", func(c *gin.Context) {
		httputil.RespondWithSuccess(c, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/auth/login", s.login)

	api := r.Group("/", s.authenticate(), s.idempotency())
	{
		api.POST("/auth/logout", s.logout)
		api.GET("/auth/me", s.me)

		users := api.Group("/users")
		{
			users.GET("", s.listUsers)
			users.GET("/:id", s.getUser)
			users.POST("", s.createUser)
			users.PUT("/:id", s.updateUser)
			users.DELETE("/:id", s.deleteUser)
		}

		goals := api.Group("/goals")
		{
			goals.GET("", s.listGoals)
			goals.GET("/:id", s.getGoal)
			goals.POST("", s.createGoal)
			goals.PUT("/:id", s.updateGoal)
			goals.DELETE("/:id", s.deleteGoal)
		}

		interests := api.Group("/interests")
		{
			interests.GET("", s.listInterests)
			interests.GET("/:id", s.getInterest)
			interests.POST("", s.createInterest)
			interests.PUT("/:id", s.updateInterest)
			interests.DELETE("/:id", s.deleteInterest)
		}

		match := api.Group("/match")
		{
			match.GET("", s.listMatches)
			match.GET("/potential/:userID", s.potentialMatches)
			match.DELETE("/:id", s.unmatch)
		}

		messages := api.Group("/messages")
		{
			messages.GET("", s.listMessages)
			messages.POST("", s.createMessage)
			messages.DELETE("/:id", s.deleteMessage)
		}

		reports := api.Group("/reports")
		{
			reports.GET("", s.listReports)
			reports.PUT("/:id", s.updateReport)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", s.listSettings)
			settings.GET("/user/:userID", s.settingsForUser)
			settings.PUT("/:id", s.updateSetting)
		}

		subscriptions := api.Group("/subscriptions")
		{
			subscriptions.GET("", s.listSubscriptions)
			subscriptions.POST("", s.createSubscription)
			subscriptions.PUT("/:id", s.updateSubscription)
			subscriptions.DELETE("/:id", s.cancelSubscription)
		}

		swipe := api.Group("/swipe")
		{
			swipe.GET("", s.listSwipes)
			swipe.POST("", s.createSwipe)
		}

		consumable := api.Group("/consumable")
		{
			consumable.GET("", s.listConsumables)
			consumable.POST("", s.grantConsumable)
			consumable.PUT("/:id", s.updateConsumable)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", s.listNotifications)
			notifications.POST("", s.createNotification)
			notifications.PUT("/read", s.markNotificationsRead)
			notifications.DELETE("/:id", s.deleteNotification)
		}

		photo := api.Group("/photo")
		{
			photo.GET("", s.listPhotos)
			photo.POST("", s.createPhoto)
			photo.PUT("/:id/primary", s.setPrimaryPhoto)
			photo.DELETE("/:id", s.deletePhoto)
		}
	}

	return r
}
