package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) handleLeaderboard(c *gin.Context) {
	lb, err := a.quiz.Leaderboard(c.Request.Context(), c.Query("genre"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lb)
}

func (a *API) handleHistory(c *gin.Context) {
	entries, err := a.quiz.History(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}
