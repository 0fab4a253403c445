package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"taskforge/taskforge/database"
	"taskforge/taskforge/models"
	"taskforge/taskforge/utils/mail"

	"gorm.io/gorm"
)

const resetTokenTTL = time.Hour

type UserServiceInterface interface {
	GetProfile(db *database.Database, id uint) (models.User, error)
	RequestPasswordReset(db *database.Database, email string) error
	ResetPassword(db *database.Database, resetToken, newPassword string) error
}

type UserService struct {
	authService AuthServiceInterface
	mailer      mail.Mailer
}

func NewUserService(authService AuthServiceInterface, mailer mail.Mailer) *UserService {
	return &UserService{
		authService: authService,
		mailer:      mailer,
	}
}

func (s *UserService) GetProfile(db *database.Database, id uint) (models.User, error) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// RequestPasswordReset stores an opaque reset token with a one hour expiry
// against the user record and mails it to them.
func (s *UserService) RequestPasswordReset(db *database.Database, email string) error {
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	resetToken := hex.EncodeToString(buf)
	expiry := time.Now().Add(resetTokenTTL)

	err := db.DB.Model(&user).Updates(map[string]interface{}{
		"reset_token":        resetToken,
		"reset_token_expiry": expiry,
	}).Error
	if err != nil {
		return err
	}

	body := fmt.Sprintf("Hi %s,\n\nUse the token below to reset your password. It expires in one hour.\n\n%s\n", user.Name, resetToken)
	if err := s.mailer.Send(user.Email, "Password Reset Request", body); err != nil {
		log.Printf("Warning: failed to send reset email to %s: %v", user.Email, err)
	}

	return nil
}

// ResetPassword replaces the password hash when the token is present and
// unexpired. A missing token and an expired token produce the same error so
// the endpoint cannot be used as a token-guessing oracle.
func (s *UserService) ResetPassword(db *database.Database, resetToken, newPassword string) error {
	var user models.User
	err := db.DB.Where("reset_token = ? AND reset_token_expiry > ?", resetToken, time.Now()).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	hashed, err := s.authService.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return db.DB.Model(&user).Updates(map[string]interface{}{
		"password":           hashed,
		"reset_token":        "",
		"reset_token_expiry": nil,
	}).Error
}

var UserServiceInstance UserServiceInterface
