package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storyquest-backend/internal/model"
	"storyquest-backend/internal/quiz"
	"storyquest-backend/internal/service"
)

type QuizController struct {
	EvaluationService service.EvaluationService
}

func NewQuizController(evaluationService service.EvaluationService) *QuizController {
	return &QuizController{EvaluationService: evaluationService}
}

// GetStories lists the stories that have quizzes.
func (qc *QuizController) GetStories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stories": quiz.Stories()})
}

// GetQuestions lists the questions for one story, without grading data.
func (qc *QuizController) GetQuestions(c *gin.Context) {
	story := c.Query("story")
	ids := quiz.IDsForStory(story)
	if len(ids) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}
	questions := make([]gin.H, 0, len(ids))
	for _, id := range ids {
		spec, _ := quiz.Get(id)
		questions = append(questions, gin.H{
			"id":         spec.ID,
			"question":   spec.Question,
			"multi_part": spec.MultiPart,
		})
	}
	c.JSON(http.StatusOK, gin.H{"story": story, "questions": questions})
}

// CheckAnswer grades one submission. The body carries either a single
// answer text or, for multi-part questions, an ordered list of texts.
func (qc *QuizController) CheckAnswer(c *gin.Context) {
	questionID := c.Param("id")
	if _, ok := quiz.Get(questionID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	var req struct {
		Answer  string   `json:"answer"`
		Answers []string `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter an answer."})
		return
	}

	var ans model.Answer
	if len(req.Answers) > 0 {
		ans = model.NewMultiAnswer(req.Answers)
	} else {
		ans = model.NewAnswer(req.Answer)
	}
	if ans.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter an answer."})
		return
	}

	verdict := qc.EvaluationService.Evaluate(c.Request.Context(), questionID, ans)
	c.JSON(http.StatusOK, verdict)
}
