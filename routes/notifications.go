package routes

import (
	"net/http"

	"taskforge/taskforge/database"
	"taskforge/taskforge/services"

	"github.com/gin-gonic/gin"
)

func RegisterNotificationRoutes(group *gin.RouterGroup, db *database.Database, notificationService services.NotificationServiceInterface) {
	group.POST("/tasks/notify-overdue", func(c *gin.Context) { NotifyOverdueTasks(c, db, notificationService) })
}

func NotifyOverdueTasks(c *gin.Context, db *database.Database, notificationService services.NotificationServiceInterface) {
	notified, overdueCount, err := notificationService.NotifyOverdueTasks(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	// "No overdue tasks found" means the sweep query itself was empty; a run
	// where every pair was already notified still reports a send.
	if overdueCount == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No overdue tasks found", "notified": notified})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Overdue task notifications sent", "notified": notified})
}
