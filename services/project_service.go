package services

import (
	"errors"
	"fmt"
	"log"

	"taskforge/taskforge/database"
	"taskforge/taskforge/models"
	"taskforge/taskforge/utils/mail"

	"gorm.io/gorm"
)

// SharedUser identifies a recipient of a share or assignment notification.
type SharedUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type ProjectServiceInterface interface {
	CreateProject(db *database.Database, name, description string, userID uint) (models.Project, error)
	ShareProject(db *database.Database, projectID uint, userIDs []uint) ([]SharedUser, []uint, error)
}

type ProjectService struct {
	mailer mail.Mailer
}

func NewProjectService(mailer mail.Mailer) *ProjectService {
	return &ProjectService{mailer: mailer}
}

func (s *ProjectService) CreateProject(db *database.Database, name, description string, userID uint) (models.Project, error) {
	project := models.Project{
		Name:        name,
		Description: description,
		CreatedBy:   userID,
	}
	if err := db.DB.Create(&project).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// ShareProject shares a project with each listed user. Unknown user ids are
// skipped and reported back so callers can tell "nothing to share" from "some
// ids were invalid". Sharing is idempotent per user; the notification email
// goes out either way.
func (s *ProjectService) ShareProject(db *database.Database, projectID uint, userIDs []uint) ([]SharedUser, []uint, error) {
	var project models.Project
	if err := db.DB.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, err
	}

	shared := []SharedUser{}
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

		var count int64
		err := db.DB.Model(&models.ProjectShare{}).
			Where("project_id = ? AND user_id = ?", projectID, userID).
			Count(&count).Error
		if err != nil {
			return nil, nil, err
		}
		if count == 0 {
			share := models.ProjectShare{ProjectID: projectID, UserID: userID}
			if err := db.DB.Create(&share).Error; err != nil {
				return nil, nil, err
			}
		}

		subject := fmt.Sprintf("Project Shared: %s", project.Name)
		body := fmt.Sprintf("You have been added to the project %q.", project.Name)
		if err := s.mailer.Send(user.Email, subject, body); err != nil {
			log.Printf("Warning: failed to send share email to %s: %v", user.Email, err)
		}

		shared = append(shared, SharedUser{ID: user.ID, Email: user.Email})
	}

	return shared, skipped, nil
}

var ProjectServiceInstance ProjectServiceInterface
