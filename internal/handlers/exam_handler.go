package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/examforge/exam-portal/internal/services"
	"github.com/examforge/exam-portal/internal/utils"
)

type ExamHandler struct {
	BaseHandler
	examService services.ExamService
}

func NewExamHandler(examService services.ExamService, logger utils.Logger) *ExamHandler {
	return &ExamHandler{
		BaseHandler: NewBaseHandler(logger),
		examService: examService,
	}
}

// StartExam starts a new timed exam with a random question sample.
// @Summary Start an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param exam body services.StartExamRequest true "Exam options"
// @Success 200 {object} services.StartExamResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/exams/start [post]
func (h *ExamHandler) StartExam(c *gin.Context) {
	// An empty body is a valid start request; the default time limit
	// applies.
	var req services.StartExamRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "starting exam", "user_id", userID)

	resp, err := h.examService.Start(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetExam returns the full exam view including current answers.
// @Summary Get an exam
// @Tags exams
// @Produce json
// @Param examId path string true "Exam ID"
// @Success 200 {object} services.ExamView
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/exams/{examId} [get]
func (h *ExamHandler) GetExam(c *gin.Context) {
	examID, ok := h.parseIDParam(c, "examId")
	if !ok {
		return
	}
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	exam, err := h.examService.Get(c.Request.Context(), userID, examID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, exam)
}

// SaveAnswer overwrites one answer slot of an active exam.
// @Summary Save an answer
// @Tags exams
// @Accept json
// @Produce json
// @Param examId path string true "Exam ID"
// @Param answer body services.SaveAnswerRequest true "Answer data"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/exams/{examId}/answer [put]
func (h *ExamHandler) SaveAnswer(c *gin.Context) {
	examID, ok := h.parseIDParam(c, "examId")
	if !ok {
		return
	}
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req services.SaveAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if err := h.examService.SaveAnswer(c.Request.Context(), userID, examID, &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SubmitExam makes the terminal transition and returns the result id.
// @Summary Submit an exam
// @Tags exams
// @Produce json
// @Param examId path string true "Exam ID"
// @Success 200 {object} services.SubmitExamResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/exams/{examId}/submit [post]
func (h *ExamHandler) SubmitExam(c *gin.Context) {
	examID, ok := h.parseIDParam(c, "examId")
	if !ok {
		return
	}
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "submitting exam", "exam_id", examID, "user_id", userID)

	resp, err := h.examService.Submit(c.Request.Context(), userID, examID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
