package handlers

import (
	"net/http"

	"github.com/braincast/quiz-service/internal/services"
	"github.com/braincast/quiz-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	importHandler *ImportHandler
	quizHandler   *QuizHandler
}

func NewHandlerManager(
	importService services.ImportService,
	quizService services.QuizService,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		importHandler: NewImportHandler(importService, logger),
		quizHandler:   NewQuizHandler(quizService, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		quizzes := v1.Group("/quizzes")
		{
			quizzes.GET("", hm.quizHandler.ListQuizzes)
			quizzes.GET("/:id", hm.quizHandler.GetQuiz)
			quizzes.GET("/:id/questions", hm.quizHandler.GetQuizWithQuestions)
			quizzes.DELETE("/:id", hm.quizHandler.DeleteQuiz)

			quizzes.POST("/import", hm.importHandler.ImportQuizzes)
			quizzes.GET("/import/:job_id", hm.importHandler.GetImportJob)
			quizzes.GET("/template/:type", hm.importHandler.DownloadTemplate)
		}
	}
}

// HealthCheck reports service liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "quiz-service",
	})
}
