package rest_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brawldash/club-sync/internal/api/middleware"
	"github.com/brawldash/club-sync/internal/api/rest"
	"github.com/brawldash/club-sync/internal/api/shared/dto"
	apierrors "github.com/brawldash/club-sync/internal/api/shared/errors"
	"github.com/brawldash/club-sync/internal/logger"
	"github.com/brawldash/club-sync/internal/mocks"
)

const testAPIKey = "test-api-key"

func setupRouter(t *testing.T) (*gomock.Controller, *mocks.MockAPIExecutor, *gin.Engine) {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	router := gin.New()
	handler := rest.NewHandler(true, exec)
	rest.SetupRoutes(router, handler, middleware.AuthConfig{APIKeys: []string{testAPIKey}})
	return ctrl, exec, router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "ApiKey "+testAPIKey)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck_Unauthenticated(t *testing.T) {
	ctrl, _, router := setupRouter(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestListMembers_RequiresAuth(t *testing.T) {
	ctrl, _, router := setupRouter(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized")
}

func TestListMembers(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().ListMembers(gomock.Any(), true).Return([]dto.Member{
		{Tag: "#AAA", Name: "Alpha", Role: "president"},
	}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/members?active_only=true", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tag":"#AAA"`)
}

func TestGetMember_NotFound(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().GetMember(gomock.Any(), "#GONE").
		Return(nil, apierrors.NewNotFoundError("member #GONE not found"))

	w := doRequest(router, http.MethodGet, "/api/v1/members/%23GONE", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

func TestListBattles_InvalidLimit(t *testing.T) {
	ctrl, _, router := setupRouter(t)
	defer ctrl.Finish()

	w := doRequest(router, http.MethodGet, "/api/v1/battles?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid limit parameter")
}

func TestListBattles_PassesQueryParams(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().ListBattles(gomock.Any(), "#AAA", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, limit, offset *int) (*dto.BattlePage, error) {
			require.NotNil(t, limit)
			require.NotNil(t, offset)
			assert.Equal(t, 5, *limit)
			assert.Equal(t, 10, *offset)
			return &dto.BattlePage{Items: []dto.Battle{}, Limit: 5, Offset: 10}, nil
		})

	w := doRequest(router, http.MethodGet, "/api/v1/battles?tag=%23AAA&limit=5&offset=10", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMarkNotificationRead_InvalidID(t *testing.T) {
	ctrl, _, router := setupRouter(t)
	defer ctrl.Finish()

	w := doRequest(router, http.MethodPost, "/api/v1/notifications/abc/read", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid notification id")
}

func TestMarkNotificationRead(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().MarkNotificationRead(gomock.Any(), uint64(42)).Return(nil)

	w := doRequest(router, http.MethodPost, "/api/v1/notifications/42/read", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateSettings(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, update dto.SettingsUpdate) (*dto.Settings, error) {
			require.NotNil(t, update.ClubTag)
			assert.Equal(t, "#CLUB", *update.ClubTag)
			require.NotNil(t, update.NotificationsEnabled)
			assert.False(t, *update.NotificationsEnabled)
			return &dto.Settings{ClubTag: "#CLUB"}, nil
		})

	w := doRequest(router, http.MethodPut, "/api/v1/settings",
		`{"club_tag": "#CLUB", "notifications_enabled": false}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"club_tag":"#CLUB"`)
}

func TestUpdateSettings_MalformedBody(t *testing.T) {
	ctrl, _, router := setupRouter(t)
	defer ctrl.Finish()

	w := doRequest(router, http.MethodPut, "/api/v1/settings", `{"club_tag": 5`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTriggerSync(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().TriggerSync(gomock.Any()).Return(&dto.SyncTriggerResult{
		WorkflowID: "club-sync-manual-1",
		RunID:      "run-1",
	}, nil)

	w := doRequest(router, http.MethodPost, "/api/v1/sync", "")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "club-sync-manual-1")
}

func TestTriggerSync_ServiceError(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().TriggerSync(gomock.Any()).
		Return(nil, apierrors.NewServiceError("failed to start sync workflow"))

	w := doRequest(router, http.MethodPost, "/api/v1/sync", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "service_error")
}
