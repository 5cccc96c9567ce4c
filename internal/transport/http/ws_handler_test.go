package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestLeaderboardStream(t *testing.T) {
	env := newTestEnv(t)
	token := env.guestToken(t)

	u := "ws" + env.server.URL[len("http"):] + "/ws/leaderboard?genre=science"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Initial snapshot arrives before any submission.
	msg := readBoard(t, conn)
	if msg.Payload.Genre != "science" || len(msg.Payload.Entries) != 0 {
		t.Fatalf("unexpected initial snapshot: %+v", msg.Payload)
	}

	// A submission elsewhere pushes a refreshed board.
	resp, _ := env.do(t, "POST", "/quiz/science/start", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("start: status %d", resp.StatusCode)
	}
	resp, _ = env.do(t, "POST", "/quiz/answer", token, map[string]any{"questionId": "q1", "selectedAnswer": 1})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("answer: status %d", resp.StatusCode)
	}
	resp, _ = env.do(t, "POST", "/quiz/submit", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit: status %d", resp.StatusCode)
	}

	msg = readBoard(t, conn)
	if len(msg.Payload.Entries) != 1 || msg.Payload.Entries[0].Score != 1 {
		t.Fatalf("expected updated board with one entry, got %+v", msg.Payload.Entries)
	}
}

func TestLeaderboardStreamDefaultsToMergedBoard(t *testing.T) {
	env := newTestEnv(t)

	u := "ws" + env.server.URL[len("http"):] + "/ws/leaderboard"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	msg := readBoard(t, conn)
	if msg.Payload.Genre != "all" {
		t.Fatalf("expected merged board, got genre %q", msg.Payload.Genre)
	}
}

func readBoard(t *testing.T, conn *websocket.Conn) outboundMessage {
	t.Helper()
	var msg outboundMessage
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if msg.Type != "leaderboard" {
		t.Fatalf("expected leaderboard message, got %q", msg.Type)
	}
	return msg
}
