package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storyquest-backend/internal/service"
)

// RegisterRoutes registers all route groups and their endpoints.
func RegisterRoutes(r *gin.Engine,
	evaluationService service.EvaluationService,
	voiceService service.VoiceService,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	quizCtrl := NewQuizController(evaluationService)
	quizRoutes := r.Group("/api/quiz")
	{
		quizRoutes.GET("/stories", quizCtrl.GetStories)
		quizRoutes.GET("/questions", quizCtrl.GetQuestions)
		quizRoutes.POST("/questions/:id/check", quizCtrl.CheckAnswer)
	}

	voiceCtrl := NewVoiceController(voiceService)
	r.GET("/api/voice/session", voiceCtrl.Session)
}
