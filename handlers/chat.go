package handlers

import (
	"errors"
	"net/http"
	"strings"

	"medibook/models"
	"medibook/services/conversation"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversation workflow over HTTP.
type ChatHandler struct {
	Service conversation.ConversationService
	Logger  *zap.Logger
}

func NewChatHandler(svc conversation.ConversationService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Service: svc, Logger: logger}
}

// CreateSession creates or resumes a session and returns the greeting reply.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req models.SessionRequest
	// The body is optional; a missing or empty body means a brand-new session.
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	reply, err := h.Service.StartSession(c.Request.Context(), sessionID)
	if err != nil {
		h.Logger.Error("failed to start session", zap.String("sessionID", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to start session", "")
		return
	}
	c.JSON(http.StatusOK, reply)
}

// Chat processes one user message through the workflow.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Message cannot be empty", "")
		return
	}
	if req.SessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "session_id is required", "")
		return
	}

	reply, err := h.Service.ProcessMessage(c.Request.Context(), req.SessionID, req.Message, req.SelectedData)
	if err != nil {
		h.Logger.Error("failed to process message", zap.String("sessionID", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error processing message", "")
		return
	}
	c.JSON(http.StatusOK, reply)
}

// GetSession returns the stored session state and history for debugging.
func (h *ChatHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	session, err := h.Service.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, conversation.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Session not found", "")
			return
		}
		h.Logger.Error("failed to fetch session", zap.String("sessionID", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch session", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":             session.SessionID,
		"current_state":          session.CurrentState,
		"messages":               session.Messages,
		"symptoms":               session.Symptoms,
		"recommended_specialist": session.RecommendedSpecialist,
		"confirmed_specialist":   session.ConfirmedSpecialist,
	})
}
