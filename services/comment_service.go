package services

import (
	"errors"

	"taskforge/taskforge/database"
	"taskforge/taskforge/models"

	"gorm.io/gorm"
)

type CommentServiceInterface interface {
	AddComment(db *database.Database, taskID uint, userID uint, content string) (models.Comment, error)
}

type CommentService struct{}

func (s *CommentService) AddComment(db *database.Database, taskID uint, userID uint, content string) (models.Comment, error) {
	var task models.Task
	if err := db.DB.Select("id").First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Comment{}, ErrTaskNotFound
		}
		return models.Comment{}, err
	}

	comment := models.Comment{
		TaskID:  taskID,
		UserID:  userID,
		Content: content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

var CommentServiceInstance CommentServiceInterface = &CommentService{}
