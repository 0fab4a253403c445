package services

import (
	"database/sql"
	"errors"
	"strings"

	"taskforge/taskforge/database"
	"taskforge/taskforge/models"

	"gorm.io/gorm"
)

// TaskInput carries the coerced task payload. Routes parse multipart/JSON
// bodies into it; numeric fields arrive already converted.
type TaskInput struct {
	Name          string
	Description   string
	CategoryID    uint
	DueDate       string
	Priority      string
	EstimatedTime int
	Status        string
	Attachment    string
	Recurrence    string
}

// ApplyDefaults fills the documented defaults for omitted fields.
func (in *TaskInput) ApplyDefaults() {
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	if in.Status == "" {
		in.Status = models.StatusNotStarted
	}
	if in.Recurrence == "" {
		in.Recurrence = models.RecurrenceNone
	}
}

// TaskFilter holds the exact-match and substring predicates for /filter-tasks.
type TaskFilter struct {
	Name       string
	Status     string
	Priority   string
	DueDate    string
	CategoryID uint
}

// TaskSearch holds the predicates for /search-tasks.
type TaskSearch struct {
	Name        string
	Description string
	Status      string
	Priority    string
}

// Columns permitted in ORDER BY. The allow-list is the injection defense for
// the one clause that cannot be bound as a parameter.
var validSortFields = map[string]bool{
	"name":       true,
	"priority":   true,
	"due_date":   true,
	"created_at": true,
}

type TaskServiceInterface interface {
	CreateTask(db *database.Database, input TaskInput, userID uint) (models.Task, error)
	GetTaskById(db *database.Database, id string) (models.Task, error)
	GetAllTasks(db *database.Database) ([]models.Task, error)
	UpdateTask(db *database.Database, id string, input TaskInput) (models.Task, error)
	DeleteTask(db *database.Database, id string) (models.Task, error)
	FilterTasks(db *database.Database, filter TaskFilter) ([]models.Task, error)
	SearchTasks(db *database.Database, search TaskSearch) ([]models.Task, error)
	SortTasks(db *database.Database, sortBy, order string) ([]models.Task, error)
}

type TaskService struct{}

// CreateTask validates the category reference and enforces the
// one-active-task-per-user gate before inserting. Gate check and insert run
// in a single serializable transaction so two concurrent creations cannot
// both observe "no incomplete task"; the partial unique index on tasks
// backstops the same invariant at the store level.
func (s *TaskService) CreateTask(db *database.Database, input TaskInput, userID uint) (models.Task, error) {
	input.ApplyDefaults()

	tx := db.DB.Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	var categoryCount int64
	if err := tx.Model(&models.Category{}).Where("id = ?", input.CategoryID).Count(&categoryCount).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}
	if categoryCount == 0 {
		tx.Rollback()
		return models.Task{}, ErrInvalidCategory
	}

	var pending models.Task
	err := tx.Where("user_id = ? AND status != ?", userID, models.StatusCompleted).
		Order("due_date ASC").
		First(&pending).Error
	if err == nil {
		tx.Rollback()
		return models.Task{}, ErrPendingTaskExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return models.Task{}, err
	}

	task := models.Task{
		Name:          input.Name,
		Description:   input.Description,
		CategoryID:    input.CategoryID,
		DueDate:       input.DueDate,
		Priority:      input.Priority,
		EstimatedTime: input.EstimatedTime,
		Status:        input.Status,
		Attachment:    input.Attachment,
		Recurrence:    input.Recurrence,
		UserID:        userID,
	}
	if err := tx.Create(&task).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	return task, nil
}

func (s *TaskService) GetTaskById(db *database.Database, id string) (models.Task, error) {
	var task models.Task
	if err := db.DB.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	return task, nil
}

func (s *TaskService) GetAllTasks(db *database.Database) ([]models.Task, error) {
	var tasks []models.Task
	result := db.DB.Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// UpdateTask replaces every mutable column of the task, matching the
// whole-row update the endpoint documents.
func (s *TaskService) UpdateTask(db *database.Database, id string, input TaskInput) (models.Task, error) {
	var task models.Task
	if err := db.DB.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	updates := map[string]interface{}{
		"name":           input.Name,
		"description":    input.Description,
		"category_id":    input.CategoryID,
		"due_date":       input.DueDate,
		"priority":       input.Priority,
		"estimated_time": input.EstimatedTime,
		"status":         input.Status,
		"attachment":     input.Attachment,
		"recurrence":     input.Recurrence,
	}
	if err := db.DB.Model(&task).Updates(updates).Error; err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (s *TaskService) DeleteTask(db *database.Database, id string) (models.Task, error) {
	var task models.Task
	if err := db.DB.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	if err := db.DB.Delete(&task).Error; err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// FilterTasks builds one conjunctive predicate per provided field. Values are
// always bound as parameters. An empty result is reported as ErrNoTasksFound
// rather than an empty list.
func (s *TaskService) FilterTasks(db *database.Database, filter TaskFilter) ([]models.Task, error) {
	query := db.DB.Model(&models.Task{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.DueDate != "" {
		query = query.Where("due_date = ?", filter.DueDate)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasksFound
	}
	return tasks, nil
}

// SearchTasks matches name and description as case-insensitive substrings and
// status/priority exactly.
func (s *TaskService) SearchTasks(db *database.Database, search TaskSearch) ([]models.Task, error) {
	query := db.DB.Model(&models.Task{})

	if search.Name != "" {
		query = query.Where("name ILIKE ?", "%"+search.Name+"%")
	}
	if search.Description != "" {
		query = query.Where("description ILIKE ?", "%"+search.Description+"%")
	}
	if search.Status != "" {
		query = query.Where("status = ?", search.Status)
	}
	if search.Priority != "" {
		query = query.Where("priority = ?", search.Priority)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasksFound
	}
	return tasks, nil
}

// SortTasks rejects anything outside the column allow-list before any SQL is
// assembled.
func (s *TaskService) SortTasks(db *database.Database, sortBy, order string) ([]models.Task, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	if order == "" {
		order = "asc"
	}

	if !validSortFields[sortBy] {
		return nil, ErrInvalidSortField
	}
	order = strings.ToLower(order)
	if order != "asc" && order != "desc" {
		return nil, ErrInvalidSortOrder
	}

	var tasks []models.Task
	if err := db.DB.Order(sortBy + " " + strings.ToUpper(order)).Find(&tasks).Error; err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasksFound
	}
	return tasks, nil
}

var TaskServiceInstance TaskServiceInterface = &TaskService{}
