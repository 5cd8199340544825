package handlers

import (
	"net/http"

	assistantSvc "mediconnect/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type assistantRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message" binding:"required"`
}

// AssistantMessageHandler advances a guided booking conversation by one
// message. An empty sessionId starts a new conversation.
func AssistantMessageHandler(svc assistantSvc.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req assistantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			getLogger(c).Warn("invalid assistant request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		reply, err := svc.Converse(c.Request.Context(), req.SessionID, c.GetString("userID"), req.Message)
		if err != nil {
			respondError(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, reply)
	}
}
