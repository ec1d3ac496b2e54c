package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/examforge/exam-portal/internal/models"
	"github.com/examforge/exam-portal/internal/services"
	"github.com/examforge/exam-portal/internal/utils"
	"github.com/examforge/exam-portal/internal/validator"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.LoggerFromContext(c.Request.Context(), h.logger).Info(msg, args...)
}

// parseIDParam validates a path parameter as an opaque id. Malformed ids
// are rejected before they reach the store.
func (h *BaseHandler) parseIDParam(c *gin.Context, name string) (models.ID, bool) {
	id, err := models.ParseID(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + name,
			Details: err.Error(),
		})
		return "", false
	}
	return id, true
}

// currentUserID returns the authenticated caller set by the auth
// middleware.
func (h *BaseHandler) currentUserID(c *gin.Context) (models.ID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return "", false
	}
	userID, ok := value.(models.ID)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return "", false
	}
	return userID, true
}

// handleServiceError maps service errors onto the HTTP error taxonomy.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case validator.IsValidationError(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})

	case errors.Is(err, services.ErrExamAlreadyCompleted),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrQuestionIndexOutOfRange),
		errors.Is(err, services.ErrAnswerOutOfRange):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: capitalized(err)})

	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: capitalized(err)})

	case services.IsPermissionError(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Message: "Access denied"})

	case errors.Is(err, services.ErrExamNotFound),
		errors.Is(err, services.ErrResultNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrNoQuestionsAvailable):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: capitalized(err)})

	default:
		utils.LoggerFromContext(c.Request.Context(), h.logger).Error("internal error", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}

func capitalized(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	if msg[0] >= 'a' && msg[0] <= 'z' {
		return string(msg[0]-'a'+'A') + msg[1:]
	}
	return msg
}
