package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
)

// API bundles the handlers over the application services.
type API struct {
	auth  *app.AuthService
	quiz  *app.QuizService
	admin *app.AdminService
	hub   *app.LeaderboardHub
}

func NewAPI(auth *app.AuthService, quiz *app.QuizService, admin *app.AdminService, hub *app.LeaderboardHub) *API {
	return &API{auth: auth, quiz: quiz, admin: admin, hub: hub}
}

// Router builds the gin engine with all routes mounted.
func (a *API) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", a.handleRegister)
		authGroup.POST("/login", a.handleLogin)
		authGroup.POST("/guest", a.handleGuestLogin)
		authGroup.POST("/refresh", a.handleRefresh)
		authGroup.GET("/me", a.RequireAuth(), a.handleMe)
	}

	r.GET("/genres", a.handleGenres)
	r.GET("/genres/:genre/questions", a.RequireAuth(), a.handleGenreQuestions)

	quizGroup := r.Group("/quiz", a.RequireAuth())
	{
		quizGroup.POST("/:genre/start", a.handleStartQuiz)
		quizGroup.POST("/answer", a.handleSelectAnswer)
		quizGroup.POST("/next", a.handleNext)
		quizGroup.POST("/previous", a.handlePrevious)
		quizGroup.POST("/submit", a.handleSubmit)
		quizGroup.POST("/reset", a.handleReset)
		quizGroup.GET("/state", a.handleQuizState)
	}

	r.GET("/leaderboard", a.handleLeaderboard)
	r.GET("/ws/leaderboard", a.handleLeaderboardStream)
	r.GET("/profile/history", a.RequireAuth(), a.handleHistory)

	adminGroup := r.Group("/admin", a.RequireAuth(), a.RequireAdmin())
	{
		adminGroup.POST("/questions", a.handleAddQuestion)
		adminGroup.DELETE("/questions/:id", a.handleDeleteQuestion)
		adminGroup.POST("/genres", a.handleAddGenre)
		adminGroup.DELETE("/genres/:id", a.handleDeleteGenre)
		adminGroup.GET("/users", a.handleListUsers)
		adminGroup.GET("/stats", a.handleStats)
	}

	return r
}

// respondError maps domain errors to HTTP statuses. Infrastructure failures
// are logged server-side and surfaced as a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAdminOnly):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrGenreNotFound),
		errors.Is(err, domain.ErrQuestionNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
