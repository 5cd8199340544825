package handlers

import (
	"net/http"

	"mediconnect/models"
	userSvc "mediconnect/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterHandler creates a new account.
func RegisterHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.RegistrationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			getLogger(c).Warn("invalid registration request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		u, err := svc.Register(input)
		if err != nil {
			respondError(c, userErrorStatus(err), err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

// LoginHandler verifies credentials and returns a signed token.
func LoginHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			getLogger(c).Warn("invalid login request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.Authenticate(req)
		if err != nil {
			respondError(c, userErrorStatus(err), err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetProfileHandler returns the authenticated user's account.
func GetProfileHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.GetUser(c.GetString("userID"))
		if err != nil {
			respondError(c, userErrorStatus(err), err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// UpdateProfileHandler applies profile changes to the authenticated user.
func UpdateProfileHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var updated models.User
		if err := c.ShouldBindJSON(&updated); err != nil {
			getLogger(c).Warn("invalid profile update request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		u, err := svc.UpdateProfile(c.GetString("userID"), &updated)
		if err != nil {
			respondError(c, userErrorStatus(err), err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
