package routes

import (
	"net/http"

	"taskforge/taskforge/database"
	"taskforge/taskforge/services"

	"github.com/gin-gonic/gin"
)

type createCategoryRequest struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Description string `form:"description" json:"description"`
}

func RegisterCategoryRoutes(group *gin.RouterGroup, db *database.Database, categoryService services.CategoryServiceInterface) {
	group.POST("/create-category", func(c *gin.Context) { CreateCategory(c, db, categoryService) })
	group.GET("/get-categories", func(c *gin.Context) { GetCategories(c, db, categoryService) })
}

func CreateCategory(c *gin.Context, db *database.Database, categoryService services.CategoryServiceInterface) {
	var request createCategoryRequest
	if err := c.ShouldBind(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name is required"})
		return
	}

	category, err := categoryService.CreateCategory(db, request.Name, request.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func GetCategories(c *gin.Context, db *database.Database, categoryService services.CategoryServiceInterface) {
	categories, err := categoryService.GetCategories(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}
