package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/examforge/exam-portal/internal/services"
	"github.com/examforge/exam-portal/internal/utils"
)

type ResultHandler struct {
	BaseHandler
	resultService services.ResultService
}

func NewResultHandler(resultService services.ResultService, logger utils.Logger) *ResultHandler {
	return &ResultHandler{
		BaseHandler:   NewBaseHandler(logger),
		resultService: resultService,
	}
}

// GetResult returns one scored result with per-question detail.
// @Summary Get a result
// @Tags results
// @Produce json
// @Param resultId path string true "Result ID"
// @Success 200 {object} models.Result
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/results/{resultId} [get]
func (h *ResultHandler) GetResult(c *gin.Context) {
	resultID, ok := h.parseIDParam(c, "resultId")
	if !ok {
		return
	}
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	result, err := h.resultService.GetByID(c.Request.Context(), userID, resultID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListResults returns all of the caller's results, newest first.
// @Summary List results
// @Tags results
// @Produce json
// @Success 200 {array} models.Result
// @Router /api/results [get]
func (h *ResultHandler) ListResults(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	results, err := h.resultService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
