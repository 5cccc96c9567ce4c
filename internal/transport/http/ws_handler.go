package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type outboundMessage struct {
	Type    string             `json:"type"`
	Payload domain.Leaderboard `json:"payload"`
}

// handleLeaderboardStream upgrades the request and pushes leaderboard
// snapshots for one genre as submissions land, so clients track the board
// without polling.
func (a *API) handleLeaderboardStream(c *gin.Context) {
	genre := c.Query("genre")
	if genre == "" {
		genre = app.GenreAll
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel := a.hub.Subscribe(genre)
	defer cancel()

	// Initial snapshot so subscribers don't wait for the next submission.
	if lb, err := a.quiz.Leaderboard(c.Request.Context(), genre); err == nil {
		if err := conn.WriteJSON(outboundMessage{Type: "leaderboard", Payload: lb}); err != nil {
			return
		}
	}

	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for {
			// The stream is one-way; reads only detect the client closing.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case lb, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(outboundMessage{Type: "leaderboard", Payload: lb}); err != nil {
				return
			}
		case <-readerDone:
			return
		}
	}
}
