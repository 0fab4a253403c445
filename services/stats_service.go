package services

import (
	"time"

	"taskforge/taskforge/database"
	"taskforge/taskforge/models"
)

// StatusGroup is one row of the status-count report.
type StatusGroup struct {
	Status string               `json:"status"`
	Count  int                  `json:"count"`
	Tasks  []models.TaskSummary `json:"tasks"`
}

// CategoryGroup is one row of the by-category report. Tasks is always a
// non-nil slice so categories without tasks serialize as an empty array.
type CategoryGroup struct {
	CategoryID          uint                 `json:"category_id"`
	Category            string               `json:"category"`
	CategoryDescription string               `json:"category_description"`
	TaskCount           int                  `json:"task_count"`
	Tasks               []models.TaskSummary `json:"tasks"`
}

// ProductivityReport counts the caller's completed tasks inside the
// reporting window.
type ProductivityReport struct {
	Period         string `json:"period"`
	CompletedTasks int64  `json:"completed_tasks"`
}

// ProjectProgress reports completion of a project's tasks. The percentage is
// defined as zero when the project has no tasks.
type ProjectProgress struct {
	TotalTasks         int64   `json:"total_tasks"`
	CompletedTasks     int64   `json:"completed_tasks"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

type StatsServiceInterface interface {
	TaskStatusCounts(db *database.Database) ([]StatusGroup, error)
	TasksByCategory(db *database.Database) ([]CategoryGroup, error)
	UserProductivity(db *database.Database, userID uint, period string) (ProductivityReport, error)
	GetProjectProgress(db *database.Database, projectID string) (ProjectProgress, error)
}

type StatsService struct{}

func (s *StatsService) TaskStatusCounts(db *database.Database) ([]StatusGroup, error) {
	var tasks []models.Task
	if err := db.DB.Find(&tasks).Error; err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasksFound
	}

	byStatus := make(map[string][]models.TaskSummary)
	var order []string
	for _, t := range tasks {
		if _, seen := byStatus[t.Status]; !seen {
			order = append(order, t.Status)
		}
		byStatus[t.Status] = append(byStatus[t.Status], t.Summary())
	}

	groups := make([]StatusGroup, 0, len(order))
	for _, status := range order {
		groups = append(groups, StatusGroup{
			Status: status,
			Count:  len(byStatus[status]),
			Tasks:  byStatus[status],
		})
	}
	return groups, nil
}

func (s *StatsService) TasksByCategory(db *database.Database) ([]CategoryGroup, error) {
	var categories []models.Category
	if err := db.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNoCategoriesFound
	}

	var tasks []models.Task
	if err := db.DB.Find(&tasks).Error; err != nil {
		return nil, err
	}

	byCategory := make(map[uint][]models.TaskSummary)
	for _, t := range tasks {
		byCategory[t.CategoryID] = append(byCategory[t.CategoryID], t.Summary())
	}

	groups := make([]CategoryGroup, 0, len(categories))
	for _, c := range categories {
		summaries := byCategory[c.ID]
		if summaries == nil {
			summaries = []models.TaskSummary{}
		}
		groups = append(groups, CategoryGroup{
			CategoryID:          c.ID,
			Category:            c.Name,
			CategoryDescription: c.Description,
			TaskCount:           len(summaries),
			Tasks:               summaries,
		})
	}
	return groups, nil
}

// UserProductivity counts completed tasks created between the period's window
// start and now. Tasks are additionally filtered on recurrence = period, the
// behavior this API has always had. Unknown periods fall back to the daily
// window.
func (s *StatsService) UserProductivity(db *database.Database, userID uint, period string) (ProductivityReport, error) {
	if period == "" {
		period = "daily"
	}

	now := time.Now()
	var windowStart time.Time
	switch period {
	case "weekly":
		// Calendar week starting Sunday.
		sunday := now.AddDate(0, 0, -int(now.Weekday()))
		windowStart = time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, sunday.Location())
	case "monthly":
		windowStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		windowStart = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	var count int64
	err := db.DB.Model(&models.Task{}).
		Where("user_id = ? AND status = ? AND recurrence = ? AND created_at BETWEEN ? AND ?",
			userID, models.StatusCompleted, period, windowStart, now).
		Count(&count).Error
	if err != nil {
		return ProductivityReport{}, err
	}

	return ProductivityReport{Period: period, CompletedTasks: count}, nil
}

func (s *StatsService) GetProjectProgress(db *database.Database, projectID string) (ProjectProgress, error) {
	var total int64
	if err := db.DB.Model(&models.Task{}).Where("project_id = ?", projectID).Count(&total).Error; err != nil {
		return ProjectProgress{}, err
	}

	var completed int64
	err := db.DB.Model(&models.Task{}).
		Where("project_id = ? AND status = ?", projectID, models.StatusCompleted).
		Count(&completed).Error
	if err != nil {
		return ProjectProgress{}, err
	}

	progress := ProjectProgress{
		TotalTasks:     total,
		CompletedTasks: completed,
	}
	if total > 0 {
		progress.ProgressPercentage = float64(completed) / float64(total) * 100
	}
	return progress, nil
}

var StatsServiceInstance StatsServiceInterface = &StatsService{}
