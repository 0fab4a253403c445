package routes

import (
	"errors"
	"net/http"

	"taskforge/taskforge/database"
	"taskforge/taskforge/services"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
	Avatar   string `form:"avatar" json:"avatar"`
}

type loginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type requestResetRequest struct {
	Email string `form:"email" json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `form:"token" json:"token" binding:"required"`
	NewPassword string `form:"new_password" json:"new_password" binding:"required"`
}

func RegisterAuthRoutes(router *gin.Engine, db *database.Database, authService services.AuthServiceInterface, userService services.UserServiceInterface, uploadDir string) {
	router.POST("/signup", func(c *gin.Context) { Signup(c, db, authService, uploadDir) })
	router.POST("/login", func(c *gin.Context) { Login(c, db, authService) })
	router.POST("/request-reset-password", func(c *gin.Context) { RequestPasswordReset(c, db, userService) })
	router.POST("/reset-password", func(c *gin.Context) { ResetPassword(c, db, userService) })
}

func Signup(c *gin.Context, db *database.Database, authService services.AuthServiceInterface, uploadDir string) {
	var request signupRequest
	if err := c.ShouldBind(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// An uploaded avatar file overrides a path passed in the payload.
	avatar := request.Avatar
	if uploaded, err := saveUploadedFile(c, "avatar", uploadDir); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	} else if uploaded != "" {
		avatar = uploaded
	}

	user, token, err := authService.Signup(db, request.Name, request.Email, request.Password, avatar)
	if err != nil {
		if errors.Is(err, services.ErrEmailExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email is already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func Login(c *gin.Context, db *database.Database, authService services.AuthServiceInterface) {
	var request loginRequest
	if err := c.ShouldBind(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, token, err := authService.Login(db, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

func RequestPasswordReset(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	var request requestResetRequest
	if err := c.ShouldBind(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := userService.RequestPasswordReset(db, request.Email); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset instructions sent"})
}

func ResetPassword(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	var request resetPasswordRequest
	if err := c.ShouldBind(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := userService.ResetPassword(db, request.Token, request.NewPassword); err != nil {
		if errors.Is(err, services.ErrInvalidResetToken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}
