package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trivia-quiz-service/internal/domain"
)

type createQuestionRequest struct {
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required,len=4"`
	CorrectAnswer *int     `json:"correctAnswer" binding:"required"`
	Explanation   string   `json:"explanation"`
	Genre         string   `json:"genre" binding:"required"`
}

type createGenreRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	BgColor     string `json:"bgColor"`
}

func (a *API) handleAddQuestion(c *gin.Context) {
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if *req.CorrectAnswer < 0 || *req.CorrectAnswer >= len(req.Options) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "correctAnswer out of range"})
		return
	}
	question, err := a.admin.AddQuestion(c.Request.Context(), domain.Question{
		Prompt:      req.Question,
		Options:     req.Options,
		Correct:     *req.CorrectAnswer,
		Explanation: req.Explanation,
		Genre:       req.Genre,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"question": question})
}

func (a *API) handleDeleteQuestion(c *gin.Context) {
	if err := a.admin.DeleteQuestion(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API) handleAddGenre(c *gin.Context) {
	var req createGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	genre, err := a.admin.AddGenre(c.Request.Context(), domain.Genre{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		BgColor:     req.BgColor,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"genre": genre})
}

func (a *API) handleDeleteGenre(c *gin.Context) {
	if err := a.admin.DeleteGenre(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API) handleListUsers(c *gin.Context) {
	users, err := a.admin.Users(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (a *API) handleStats(c *gin.Context) {
	stats, err := a.admin.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
