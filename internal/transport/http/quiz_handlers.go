package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"trivia-quiz-service/internal/domain"
)

type answerRequest struct {
	QuestionID     string `json:"questionId" binding:"required"`
	SelectedAnswer *int   `json:"selectedAnswer" binding:"required"`
}

func (a *API) handleGenres(c *gin.Context) {
	genres, err := a.quiz.Genres(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"genres": genres})
}

func (a *API) handleGenreQuestions(c *gin.Context) {
	questions, err := a.quiz.GenreQuestions(c.Request.Context(), c.Param("genre"))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(questions) == 0 {
		respondError(c, domain.ErrGenreNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (a *API) handleStartQuiz(c *gin.Context) {
	user := currentUser(c)
	questions, err := a.quiz.StartQuiz(c.Request.Context(), user.ID, c.Param("genre"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"genre":     c.Param("genre"),
		"questions": questions,
	})
}

func (a *API) handleSelectAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := a.quiz.SelectAnswer(currentUser(c).ID, req.QuestionID, *req.SelectedAnswer); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API) handleNext(c *gin.Context) {
	if err := a.quiz.Next(currentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API) handlePrevious(c *gin.Context) {
	if err := a.quiz.Previous(currentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API) handleQuizState(c *gin.Context) {
	session, ok := a.quiz.Session(currentUser(c).ID)
	if !ok {
		respondError(c, domain.ErrSessionNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"genre":        session.Genre(),
		"questions":    session.Questions(),
		"currentIndex": session.CurrentIndex(),
		"answers":      session.Answers(),
		"started":      session.Started(),
	})
}

func (a *API) handleSubmit(c *gin.Context) {
	user := currentUser(c)
	result, outcome, err := a.quiz.Submit(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":  result,
		"outcome": outcome,
		"message": submitMessage(result, outcome),
	})
}

func (a *API) handleReset(c *gin.Context) {
	a.quiz.ResetQuiz(currentUser(c).ID)
	c.Status(http.StatusNoContent)
}

func submitMessage(result domain.Result, outcome domain.UpsertOutcome) string {
	switch outcome {
	case domain.OutcomeNewBest:
		return fmt.Sprintf("New best score: %d/%d!", result.Score, result.TotalQuestions)
	case domain.OutcomeNoImprovement:
		return fmt.Sprintf("You scored %d/%d. Your best still stands.", result.Score, result.TotalQuestions)
	default:
		return fmt.Sprintf("You scored %d/%d.", result.Score, result.TotalQuestions)
	}
}
