package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupNotificationRouter(notificationService *MockNotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/", func(c *gin.Context) {
		c.Set("userID", uint(7))
		c.Next()
	})
	RegisterNotificationRoutes(group, nil, notificationService)
	return router
}

func TestNotifyOverdueRoute_NoOverdueTasks(t *testing.T) {
	router := setupNotificationRouter(&MockNotificationService{OverdueRows: 0})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/tasks/notify-overdue", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No overdue tasks found")
}

func TestNotifyOverdueRoute_AllPairsDedupedStillReportsSend(t *testing.T) {
	// Overdue rows existed but every pair had already been notified, so
	// nothing new went out. That is still a sweep over overdue tasks, not
	// an empty one.
	router := setupNotificationRouter(&MockNotificationService{OverdueRows: 2})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/tasks/notify-overdue", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Overdue task notifications sent")
	assert.Contains(t, w.Body.String(), `"notified":[]`)
}
