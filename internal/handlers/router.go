package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/examforge/exam-portal/internal/services"
	"github.com/examforge/exam-portal/internal/utils"
)

type HandlerManager struct {
	authHandler     *AuthHandler
	examHandler     *ExamHandler
	resultHandler   *ResultHandler
	questionHandler *QuestionHandler

	jwtSecret string
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger, jwtSecret string) *HandlerManager {
	return &HandlerManager{
		authHandler:     NewAuthHandler(serviceManager.Auth(), logger),
		examHandler:     NewExamHandler(serviceManager.Exam(), logger),
		resultHandler:   NewResultHandler(serviceManager.Result(), logger),
		questionHandler: NewQuestionHandler(serviceManager.Question(), logger),
		jwtSecret:       jwtSecret,
	}
}

// SetupRoutes sets up all API routes.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	api := router.Group("/api")

	// Public auth routes
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", hm.authHandler.Register)
		authRoutes.POST("/login", hm.authHandler.Login)
		authRoutes.GET("/me", AuthMiddleware(hm.jwtSecret), hm.authHandler.Me)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(AuthMiddleware(hm.jwtSecret))
	{
		exams := protected.Group("/exams")
		{
			exams.POST("/start", hm.examHandler.StartExam)
			exams.GET("/:examId", hm.examHandler.GetExam)
			exams.PUT("/:examId/answer", hm.examHandler.SaveAnswer)
			exams.POST("/:examId/submit", hm.examHandler.SubmitExam)
		}

		results := protected.Group("/results")
		{
			results.GET("", hm.resultHandler.ListResults)
			results.GET("/:resultId", hm.resultHandler.GetResult)
		}

		questions := protected.Group("/questions")
		{
			questions.POST("", hm.questionHandler.CreateQuestion)
			questions.POST("/import", hm.questionHandler.ImportQuestions)
		}
	}
}

// HealthCheck endpoint.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "exam-portal",
	})
}
