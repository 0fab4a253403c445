package routes

import (
	"errors"
	"net/http"

	"taskforge/taskforge/database"
	"taskforge/taskforge/services"

	"github.com/gin-gonic/gin"
)

type createProjectRequest struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Description string `form:"description" json:"description"`
}

type shareProjectRequest struct {
	ProjectID uint   `json:"project_id" binding:"required"`
	UserIDs   []uint `json:"user_ids" binding:"required"`
}

func RegisterProjectRoutes(group *gin.RouterGroup, db *database.Database, projectService services.ProjectServiceInterface) {
	group.POST("/create-project", func(c *gin.Context) { CreateProject(c, db, projectService) })
	group.POST("/share-project", func(c *gin.Context) { ShareProject(c, db, projectService) })
}

func CreateProject(c *gin.Context, db *database.Database, projectService services.ProjectServiceInterface) {
	var request createProjectRequest
	if err := c.ShouldBind(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Project name is required"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	project, err := projectService.CreateProject(db, request.Name, request.Description, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project created successfully",
		"project": project,
	})
}

func ShareProject(c *gin.Context, db *database.Database, projectService services.ProjectServiceInterface) {
	var request shareProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "project_id and user_ids are required"})
		return
	}

	shared, skipped, err := projectService.ShareProject(db, request.ProjectID, request.UserIDs)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Project shared successfully",
		"shared_with": shared,
		"skipped":     skipped,
	})
}
