package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/brawldash/club-sync/internal/api/middleware"
)

// SetupRoutes registers all REST routes. Read endpoints accept both JWT and
// API key credentials; settings writes and manual sync triggers are API key
// only.
func SetupRoutes(router *gin.Engine, h Handler, authCfg middleware.AuthConfig) {
	router.GET("/health", h.HealthCheck)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(authCfg))
	{
		v1.GET("/members", h.ListMembers)
		v1.GET("/members/:tag", h.GetMember)
		v1.GET("/members/:tag/stats/daily", h.GetMemberDailyStats)

		v1.GET("/battles", h.ListBattles)
		v1.GET("/leaderboard", h.GetLeaderboard)
		v1.GET("/events", h.ListEvents)

		v1.GET("/notifications", h.ListNotifications)
		v1.POST("/notifications/:id/read", h.MarkNotificationRead)
		v1.POST("/notifications/read-all", h.MarkAllNotificationsRead)

		v1.GET("/settings", h.GetSettings)
	}

	admin := router.Group("/api/v1")
	admin.Use(middleware.APIKeyAuth(authCfg))
	{
		admin.PUT("/settings", h.UpdateSettings)
		admin.POST("/sync", h.TriggerSync)
	}
}
