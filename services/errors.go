package services

import "errors"

// Common errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrNoTasksFound       = errors.New("no tasks found")
	ErrNoCategoriesFound  = errors.New("no categories or tasks found")
	ErrEmailExists        = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCategory    = errors.New("invalid category_id")
	ErrPendingTaskExists  = errors.New("you cannot create a new task until you complete your previous task")
	ErrInvalidSortField   = errors.New("invalid sort field")
	ErrInvalidSortOrder   = errors.New(`invalid order, use "asc" or "desc"`)
	ErrInvalidResetToken  = errors.New("invalid or expired token")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternal           = errors.New("internal server error")
)
