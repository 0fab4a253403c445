package routes

import (
	"errors"
	"net/http"

	"taskforge/taskforge/database"
	"taskforge/taskforge/services"

	"github.com/gin-gonic/gin"
)

func RegisterStatsRoutes(group *gin.RouterGroup, db *database.Database, statsService services.StatsServiceInterface) {
	group.GET("/tasks/status-count", func(c *gin.Context) { GetTaskStatusCount(c, db, statsService) })
	group.GET("/tasks/by-category", func(c *gin.Context) { GetTasksByCategory(c, db, statsService) })
	group.GET("/user-productivity", func(c *gin.Context) { GetUserProductivity(c, db, statsService) })
	group.GET("/project-progress/:projectId", func(c *gin.Context) { GetProjectProgress(c, db, statsService) })
}

func GetTaskStatusCount(c *gin.Context, db *database.Database, statsService services.StatsServiceInterface) {
	groups, err := statsService.TaskStatusCounts(db)
	if err != nil {
		if errors.Is(err, services.ErrNoTasksFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No tasks found", "data": []interface{}{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task status counts", "data": groups})
}

func GetTasksByCategory(c *gin.Context, db *database.Database, statsService services.StatsServiceInterface) {
	groups, err := statsService.TasksByCategory(db)
	if err != nil {
		if errors.Is(err, services.ErrNoCategoriesFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No categories or tasks found", "data": []interface{}{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tasks grouped by category", "data": groups})
}

func GetUserProductivity(c *gin.Context, db *database.Database, statsService services.StatsServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", "daily")

	report, err := statsService.UserProductivity(db, userID, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	phrase := "today"
	switch report.Period {
	case "weekly":
		phrase = "this week"
	case "monthly":
		phrase = "this month"
	}

	message := "Tasks completed " + phrase
	if report.CompletedTasks == 0 {
		message = "No tasks completed " + phrase
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        message,
		"completedTasks": report.CompletedTasks,
	})
}

func GetProjectProgress(c *gin.Context, db *database.Database, statsService services.StatsServiceInterface) {
	progress, err := statsService.GetProjectProgress(db, c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Project progress",
		"projectProgress": progress,
	})
}
