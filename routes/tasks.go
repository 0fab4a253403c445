package routes

import (
	"errors"
	"io"
	"net/http"

	"taskforge/taskforge/database"
	"taskforge/taskforge/services"

	"github.com/gin-gonic/gin"
)

type taskRequest struct {
	Name          string `form:"name" json:"name" binding:"required"`
	Description   string `form:"description" json:"description"`
	CategoryID    uint   `form:"category_id" json:"category_id"`
	DueDate       string `form:"due_date" json:"due_date"`
	Priority      string `form:"priority" json:"priority"`
	EstimatedTime int    `form:"estimated_time" json:"estimated_time"`
	Status        string `form:"status" json:"status"`
	Attachment    string `form:"attachment" json:"attachment"`
	Recurrence    string `form:"recurrence" json:"recurrence"`
}

type filterTasksRequest struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	Priority   string `json:"priority"`
	DueDate    string `json:"due_date"`
	CategoryID uint   `json:"category_id"`
}

type searchTasksRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

type sortTasksRequest struct {
	SortBy string `json:"sort_by"`
	Order  string `json:"order"`
}

type assignTaskRequest struct {
	TaskID  uint   `json:"task_id" binding:"required"`
	UserIDs []uint `json:"user_ids" binding:"required"`
}

func RegisterTaskRoutes(group *gin.RouterGroup, db *database.Database, taskService services.TaskServiceInterface, notificationService services.NotificationServiceInterface, uploadDir string) {
	group.POST("/create-tasks", func(c *gin.Context) { CreateTask(c, db, taskService, uploadDir) })
	group.GET("/get-task-by-id/:id", func(c *gin.Context) { GetTaskById(c, db, taskService) })
	group.GET("/get-all-tasks", func(c *gin.Context) { GetAllTasks(c, db, taskService) })
	group.DELETE("/delete-task/:id", func(c *gin.Context) { DeleteTask(c, db, taskService) })
	group.POST("/filter-tasks", func(c *gin.Context) { FilterTasks(c, db, taskService) })
	group.POST("/search-tasks", func(c *gin.Context) { SearchTasks(c, db, taskService) })
	group.POST("/sort-tasks", func(c *gin.Context) { SortTasks(c, db, taskService) })
	group.POST("/assign-task", func(c *gin.Context) { AssignTask(c, db, notificationService) })
}

// RegisterPublicTaskRoutes registers the task routes served without a bearer
// token. Of the update/delete pair only delete requires auth.
func RegisterPublicTaskRoutes(router *gin.Engine, db *database.Database, taskService services.TaskServiceInterface) {
	router.POST("/update-task/:id", func(c *gin.Context) { UpdateTask(c, db, taskService) })
}

func CreateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface, uploadDir string) {
	var request taskRequest
	if err := c.ShouldBind(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// An uploaded file takes precedence over an attachment path in the body.
	attachment := request.Attachment
	if uploaded, err := saveUploadedFile(c, "attachment", uploadDir); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	} else if uploaded != "" {
		attachment = uploaded
	}

	input := services.TaskInput{
		Name:          request.Name,
		Description:   request.Description,
		CategoryID:    request.CategoryID,
		DueDate:       request.DueDate,
		Priority:      request.Priority,
		EstimatedTime: request.EstimatedTime,
		Status:        request.Status,
		Attachment:    attachment,
		Recurrence:    request.Recurrence,
	}

	task, err := taskService.CreateTask(db, input, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCategory):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category_id"})
		case errors.Is(err, services.ErrPendingTaskExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "You cannot create a new task until you complete your previous task."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, task)
}

func GetTaskById(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	task, err := taskService.GetTaskById(db, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, task)
}

func GetAllTasks(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	tasks, err := taskService.GetAllTasks(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func UpdateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	var request taskRequest
	if err := c.ShouldBind(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	input := services.TaskInput{
		Name:          request.Name,
		Description:   request.Description,
		CategoryID:    request.CategoryID,
		DueDate:       request.DueDate,
		Priority:      request.Priority,
		EstimatedTime: request.EstimatedTime,
		Status:        request.Status,
		Attachment:    request.Attachment,
		Recurrence:    request.Recurrence,
	}

	task, err := taskService.UpdateTask(db, c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, task)
}

func DeleteTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id := c.Param("id")
	task, err := taskService.DeleteTask(db, id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No task found with ID " + id + "."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully", "task": task})
}

func FilterTasks(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	// An absent body means no conditions, which matches every task.
	var request filterTasksRequest
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	tasks, err := taskService.FilterTasks(db, services.TaskFilter{
		Name:       request.Name,
		Status:     request.Status,
		Priority:   request.Priority,
		DueDate:    request.DueDate,
		CategoryID: request.CategoryID,
	})
	if err != nil {
		if errors.Is(err, services.ErrNoTasksFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No tasks found for the given filters."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": tasks})
}

func SearchTasks(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	// An absent body means no conditions, which matches every task.
	var request searchTasksRequest
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	tasks, err := taskService.SearchTasks(db, services.TaskSearch{
		Name:        request.Name,
		Description: request.Description,
		Status:      request.Status,
		Priority:    request.Priority,
	})
	if err != nil {
		if errors.Is(err, services.ErrNoTasksFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No tasks found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func SortTasks(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	var request sortTasksRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No filter or sorting parameters provided."})
		return
	}

	tasks, err := taskService.SortTasks(db, request.SortBy, request.Order)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSortField):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid sort field"})
		case errors.Is(err, services.ErrInvalidSortOrder):
			c.JSON(http.StatusBadRequest, gin.H{"message": `Invalid order. Use "asc" or "desc".`})
		case errors.Is(err, services.ErrNoTasksFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No tasks found."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": tasks})
}

func AssignTask(c *gin.Context, db *database.Database, notificationService services.NotificationServiceInterface) {
	var request assignTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "task_id and user_ids (as array) are required"})
		return
	}

	notified, skipped, err := notificationService.AssignTask(db, request.TaskID, request.UserIDs)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Task assigned and email notifications sent",
		"users_notified": notified,
		"skipped":        skipped,
	})
}
