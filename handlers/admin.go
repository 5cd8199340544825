package handlers

import (
	"net/http"

	"mediconnect/models"
	userSvc "mediconnect/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminListUsersHandler returns every account on the platform.
func AdminListUsersHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.ListUsers()
		if err != nil {
			respondError(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// AdminGetUserHandler returns one account by ID.
func AdminGetUserHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.GetUser(c.Param("id"))
		if err != nil {
			respondError(c, userErrorStatus(err), err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// AdminUpdateUserHandler applies profile changes to any account.
func AdminUpdateUserHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var updated models.User
		if err := c.ShouldBindJSON(&updated); err != nil {
			getLogger(c).Warn("invalid user update request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		u, err := svc.UpdateProfile(c.Param("id"), &updated)
		if err != nil {
			respondError(c, userErrorStatus(err), err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// AdminDeleteUserHandler removes an account.
func AdminDeleteUserHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteUser(c.Param("id")); err != nil {
			respondError(c, userErrorStatus(err), err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
	}
}
