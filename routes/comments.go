package routes

import (
	"errors"
	"fmt"
	"net/http"

	"taskforge/taskforge/database"
	"taskforge/taskforge/services"

	"github.com/gin-gonic/gin"
)

type addCommentRequest struct {
	TaskID  uint   `json:"task_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func RegisterCommentRoutes(group *gin.RouterGroup, db *database.Database, commentService services.CommentServiceInterface) {
	group.POST("/comment", func(c *gin.Context) { AddComment(c, db, commentService) })
}

func AddComment(c *gin.Context, db *database.Database, commentService services.CommentServiceInterface) {
	var request addCommentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Task ID and content are required"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	comment, err := commentService.AddComment(db, request.TaskID, userID, request.Content)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Task with ID %d does not exist", request.TaskID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment added", "comment": comment})
}
