package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"taskforge/taskforge/database"
	"taskforge/taskforge/models"
	"taskforge/taskforge/utils/mail"

	"gorm.io/gorm"
)

// OverdueNotified is one user/task pair alerted by an overdue sweep run.
type OverdueNotified struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Task   string `json:"task"`
	Status string `json:"status"`
}

type NotificationServiceInterface interface {
	AssignTask(db *database.Database, taskID uint, userIDs []uint) ([]SharedUser, []uint, error)
	NotifyOverdueTasks(db *database.Database) ([]OverdueNotified, int, error)
}

type NotificationService struct {
	mailer mail.Mailer
}

func NewNotificationService(mailer mail.Mailer) *NotificationService {
	return &NotificationService{mailer: mailer}
}

// AssignTask records a notification and emails each valid recipient. Unknown
// user ids are skipped and reported back. Notification insert and email are
// not atomic; a failed email is logged and does not undo the insert.
func (s *NotificationService) AssignTask(db *database.Database, taskID uint, userIDs []uint) ([]SharedUser, []uint, error) {
	var task models.Task
	if err := db.DB.First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTaskNotFound
		}
		return nil, nil, err
	}

	notified := []SharedUser{}
	skipped := []uint{}

	for _, userID := range userIDs {
		var user models.User
		if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				skipped = append(skipped, userID)
				continue
			}
			return nil, nil, err
		}

		notification := models.Notification{
			UserID:  user.ID,
			TaskID:  task.ID,
			Message: fmt.Sprintf("You have been assigned a new task: %s", task.Name),
		}
		if err := db.DB.Create(&notification).Error; err != nil {
			return nil, nil, err
		}

		subject := fmt.Sprintf("New Task Assigned: %s", task.Name)
		body := fmt.Sprintf("Hi %s,\n\nYou have been assigned a new task: %q.\n\nPlease check your dashboard.\n\nThanks,\nTask Manager Team", user.Name, task.Name)
		if err := s.mailer.Send(user.Email, subject, body); err != nil {
			log.Printf("Warning: failed to send assignment email to %s: %v", user.Email, err)
		}

		notified = append(notified, SharedUser{ID: user.ID, Email: user.Email})
	}

	return notified, skipped, nil
}

type overdueRow struct {
	TaskID   uint
	TaskName string
	Status   string
	DueDate  string
	UserID   uint
	UserName string
	Email    string
}

// NotifyOverdueTasks alerts owners of tasks past their due date. A pair that
// already has a notification mentioning "overdue" is skipped, which makes
// consecutive sweeps idempotent per task/user pair. The second return value
// is the number of overdue rows found, dedupe aside, so callers can tell
// "nothing overdue" apart from "everything already notified".
func (s *NotificationService) NotifyOverdueTasks(db *database.Database) ([]OverdueNotified, int, error) {
	today := time.Now().Format("2006-01-02")

	var rows []overdueRow
	err := db.DB.Table("tasks").
		Select("tasks.id AS task_id, tasks.name AS task_name, tasks.status, tasks.due_date, users.id AS user_id, users.name AS user_name, users.email").
		Joins("JOIN users ON tasks.user_id = users.id").
		Where("tasks.due_date < ? AND tasks.status != ?", today, models.StatusCompleted).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	notified := []OverdueNotified{}

	for _, row := range rows {
		var count int64
		err := db.DB.Model(&models.Notification{}).
			Where("task_id = ? AND user_id = ? AND message LIKE ?", row.TaskID, row.UserID, "%overdue%").
			Count(&count).Error
		if err != nil {
			return nil, 0, err
		}
		if count > 0 {
			continue
		}

		message := fmt.Sprintf("Hi %s, your task %q is overdue. Please take action.", row.UserName, row.TaskName)

		notification := models.Notification{
			UserID:  row.UserID,
			TaskID:  row.TaskID,
			Message: message,
		}
		if err := db.DB.Create(&notification).Error; err != nil {
			return nil, 0, err
		}

		subject := fmt.Sprintf("Overdue Task: %s", row.TaskName)
		if err := s.mailer.Send(row.Email, subject, message); err != nil {
			log.Printf("Warning: failed to send overdue email to %s: %v", row.Email, err)
		}

		notified = append(notified, OverdueNotified{
			UserID: row.UserID,
			Email:  row.Email,
			Task:   row.TaskName,
			Status: row.Status,
		})
	}

	return notified, len(rows), nil
}

var NotificationServiceInstance NotificationServiceInterface
