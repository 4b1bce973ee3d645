package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brawldash/club-sync/internal/api/shared/dto"
	"github.com/brawldash/club-sync/internal/api/shared/executor"
)

// Handler defines the REST endpoint surface
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// HealthCheck responds 200 when the process is serving
	HealthCheck(c *gin.Context)

	// ListMembers returns member snapshots; ?active_only=true restricts to
	// current members
	ListMembers(c *gin.Context)
	// GetMember returns one member with history, tracking and last activity
	GetMember(c *gin.Context)
	// GetMemberDailyStats returns a member's per-day rollups; ?days=N windows
	GetMemberDailyStats(c *gin.Context)

	// ListBattles returns battles newest first; ?tag= restricts to one member
	ListBattles(c *gin.Context)
	// GetLeaderboard returns per-member aggregates over ?days=N
	GetLeaderboard(c *gin.Context)

	// ListEvents returns the membership audit trail newest first
	ListEvents(c *gin.Context)

	// ListNotifications returns notifications; ?unread_only=true filters
	ListNotifications(c *gin.Context)
	// MarkNotificationRead flags one notification as read
	MarkNotificationRead(c *gin.Context)
	// MarkAllNotificationsRead flags every unread notification as read
	MarkAllNotificationsRead(c *gin.Context)

	// GetSettings returns the settings view with credentials masked
	GetSettings(c *gin.Context)
	// UpdateSettings applies a partial settings write
	UpdateSettings(c *gin.Context)

	// TriggerSync starts a sync workflow run outside the periodic schedule
	TriggerSync(c *gin.Context)
}

type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST handler instance
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

// parseIntQuery parses an optional integer query parameter. A missing
// parameter returns (nil, true); a malformed one returns (nil, false).
func parseIntQuery(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) ListMembers(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	members, err := h.executor.ListMembers(c.Request.Context(), activeOnly)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": members})
}

func (h *handler) GetMember(c *gin.Context) {
	detail, err := h.executor.GetMember(c.Request.Context(), c.Param("tag"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *handler) GetMemberDailyStats(c *gin.Context) {
	days, ok := parseIntQuery(c, "days")
	if !ok {
		respondBadRequest(c, "invalid days parameter")
		return
	}

	stats, err := h.executor.GetMemberDailyStats(c.Request.Context(), c.Param("tag"), days)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": stats})
}

func (h *handler) ListBattles(c *gin.Context) {
	limit, ok := parseIntQuery(c, "limit")
	if !ok {
		respondBadRequest(c, "invalid limit parameter")
		return
	}
	offset, ok := parseIntQuery(c, "offset")
	if !ok {
		respondBadRequest(c, "invalid offset parameter")
		return
	}

	page, err := h.executor.ListBattles(c.Request.Context(), c.Query("tag"), limit, offset)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *handler) GetLeaderboard(c *gin.Context) {
	days, ok := parseIntQuery(c, "days")
	if !ok {
		respondBadRequest(c, "invalid days parameter")
		return
	}

	entries, err := h.executor.GetLeaderboard(c.Request.Context(), days)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": entries})
}

func (h *handler) ListEvents(c *gin.Context) {
	limit, ok := parseIntQuery(c, "limit")
	if !ok {
		respondBadRequest(c, "invalid limit parameter")
		return
	}
	offset, ok := parseIntQuery(c, "offset")
	if !ok {
		respondBadRequest(c, "invalid offset parameter")
		return
	}

	page, err := h.executor.ListEvents(c.Request.Context(), limit, offset)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *handler) ListNotifications(c *gin.Context) {
	unreadOnly := c.Query("unread_only") == "true"
	limit, ok := parseIntQuery(c, "limit")
	if !ok {
		respondBadRequest(c, "invalid limit parameter")
		return
	}
	offset, ok := parseIntQuery(c, "offset")
	if !ok {
		respondBadRequest(c, "invalid offset parameter")
		return
	}

	page, err := h.executor.ListNotifications(c.Request.Context(), unreadOnly, limit, offset)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *handler) MarkNotificationRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "invalid notification id")
		return
	}

	if err := h.executor.MarkNotificationRead(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) MarkAllNotificationsRead(c *gin.Context) {
	updated, err := h.executor.MarkAllNotificationsRead(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func (h *handler) GetSettings(c *gin.Context) {
	settings, err := h.executor.GetSettings(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *handler) UpdateSettings(c *gin.Context) {
	var update dto.SettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondBadRequest(c, "invalid request body", err.Error())
		return
	}

	settings, err := h.executor.UpdateSettings(c.Request.Context(), update)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *handler) TriggerSync(c *gin.Context) {
	result, err := h.executor.TriggerSync(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, result)
}
