package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/infra/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	server *httptest.Server
	users  *memory.UserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	bank := map[string][]domain.Question{
		"science": {
			{ID: "q1", Prompt: "Symbol for gold?", Options: []string{"Go", "Au", "Ag", "Gd"}, Correct: 1, Explanation: "Aurum.", Genre: "science"},
			{ID: "q2", Prompt: "Red planet?", Options: []string{"Venus", "Jupiter", "Mars", "Saturn"}, Correct: 2, Genre: "science"},
		},
	}
	static := memory.NewStaticCatalog([]domain.Genre{{ID: "science", Name: "Science"}}, bank)
	catalog := memory.NewCatalogRepository(static, time.Minute)
	users := memory.NewUserRepository()
	board := memory.NewLeaderboardRepository()

	tokens := auth.NewTokenManager("access-secret", "refresh-secret", time.Minute, time.Hour)
	hub := app.NewLeaderboardHub()
	quizService := app.NewQuizService(memory.NewSessionStore(), catalog, board, hub)
	authService := app.NewAuthService(users, tokens)
	adminService := app.NewAdminService(users, static)

	api := NewAPI(authService, quizService, adminService, hub)
	server := httptest.NewServer(api.Router())
	t.Cleanup(server.Close)

	return &testEnv{server: server, users: users}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var payload map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &payload)
	}
	return resp, payload
}

func (e *testEnv) guestToken(t *testing.T) string {
	t.Helper()
	resp, payload := e.do(t, "POST", "/auth/guest", "", map[string]any{"name": "Tester"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("guest login: status %d", resp.StatusCode)
	}
	return payload["tokens"].(map[string]any)["accessToken"].(string)
}

func TestRegisterLoginAndMe(t *testing.T) {
	env := newTestEnv(t)

	resp, payload := env.do(t, "POST", "/auth/register", "", map[string]any{
		"name": "Alice", "email": "alice@example.com", "password": "s3cret",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: status %d, body %v", resp.StatusCode, payload)
	}

	resp, _ = env.do(t, "POST", "/auth/register", "", map[string]any{
		"name": "Other", "email": "alice@example.com", "password": "pw",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", resp.StatusCode)
	}

	resp, _ = env.do(t, "POST", "/auth/login", "", map[string]any{
		"email": "alice@example.com", "password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", resp.StatusCode)
	}

	resp, payload = env.do(t, "POST", "/auth/login", "", map[string]any{
		"email": "alice@example.com", "password": "s3cret",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: status %d", resp.StatusCode)
	}
	accessToken := payload["tokens"].(map[string]any)["accessToken"].(string)

	resp, payload = env.do(t, "GET", "/auth/me", accessToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: status %d", resp.StatusCode)
	}
	if payload["user"].(map[string]any)["name"] != "Alice" {
		t.Fatalf("unexpected identity: %v", payload["user"])
	}

	resp, _ = env.do(t, "GET", "/auth/me", "not-a-token", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", resp.StatusCode)
	}
}

func TestRefreshEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp, payload := env.do(t, "POST", "/auth/guest", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("guest: status %d", resp.StatusCode)
	}
	refresh := payload["tokens"].(map[string]any)["refreshToken"].(string)

	resp, payload = env.do(t, "POST", "/auth/refresh", "", map[string]any{"refreshToken": refresh})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("refresh: status %d", resp.StatusCode)
	}
	if payload["tokens"].(map[string]any)["accessToken"] == "" {
		t.Fatal("expected fresh access token")
	}

	resp, _ = env.do(t, "POST", "/auth/refresh", "", map[string]any{"refreshToken": "junk"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("junk refresh: expected 401, got %d", resp.StatusCode)
	}
}

func TestQuizFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.guestToken(t)

	resp, payload := env.do(t, "GET", "/genres", "", nil)
	if resp.StatusCode != http.StatusOK || len(payload["genres"].([]any)) != 1 {
		t.Fatalf("genres: status %d, body %v", resp.StatusCode, payload)
	}

	resp, payload = env.do(t, "POST", "/quiz/science/start", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("start: status %d, body %v", resp.StatusCode, payload)
	}
	questions := payload["questions"].([]any)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	// Quizzes are gated behind a session.
	resp, _ = env.do(t, "POST", "/quiz/science/start", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated start: expected 401, got %d", resp.StatusCode)
	}

	resp, _ = env.do(t, "POST", "/quiz/answer", token, map[string]any{"questionId": "q1", "selectedAnswer": 1})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("answer: expected 204, got %d", resp.StatusCode)
	}
	// Answer index 0 must bind, not be rejected as missing.
	resp, _ = env.do(t, "POST", "/quiz/answer", token, map[string]any{"questionId": "q2", "selectedAnswer": 0})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("zero answer: expected 204, got %d", resp.StatusCode)
	}

	resp, payload = env.do(t, "GET", "/quiz/state", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("state: status %d", resp.StatusCode)
	}
	if len(payload["answers"].([]any)) != 2 {
		t.Fatalf("expected 2 stored answers, got %v", payload["answers"])
	}

	resp, payload = env.do(t, "POST", "/quiz/submit", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit: status %d", resp.StatusCode)
	}
	if payload["outcome"] != string(domain.OutcomeFirstAttempt) {
		t.Fatalf("expected firstAttempt, got %v", payload["outcome"])
	}
	if payload["result"].(map[string]any)["score"].(float64) != 1 {
		t.Fatalf("expected score 1, got %v", payload["result"])
	}
	if payload["message"] != "You scored 1/2." {
		t.Fatalf("unexpected message: %v", payload["message"])
	}

	resp, payload = env.do(t, "GET", "/leaderboard?genre=science", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("leaderboard: status %d", resp.StatusCode)
	}
	if len(payload["entries"].([]any)) != 1 {
		t.Fatalf("expected 1 entry, got %v", payload["entries"])
	}

	resp, payload = env.do(t, "GET", "/profile/history", token, nil)
	if resp.StatusCode != http.StatusOK || len(payload["history"].([]any)) != 1 {
		t.Fatalf("history: status %d, body %v", resp.StatusCode, payload)
	}

	resp, _ = env.do(t, "POST", "/quiz/reset", token, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("reset: expected 204, got %d", resp.StatusCode)
	}
	resp, _ = env.do(t, "GET", "/quiz/state", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("state after reset: expected 404, got %d", resp.StatusCode)
	}
}

func TestStartUnknownGenre(t *testing.T) {
	env := newTestEnv(t)
	token := env.guestToken(t)

	resp, _ := env.do(t, "POST", "/quiz/philately/start", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestAdminAuthorization(t *testing.T) {
	env := newTestEnv(t)

	// Guests are denied outright.
	guestTok := env.guestToken(t)
	resp, _ := env.do(t, "GET", "/admin/stats", guestTok, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("guest admin: expected 403, got %d", resp.StatusCode)
	}

	resp, payload := env.do(t, "POST", "/auth/register", "", map[string]any{
		"name": "Root", "email": "root@example.com", "password": "pw",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: status %d", resp.StatusCode)
	}
	userID := payload["user"].(map[string]any)["id"].(string)
	token := payload["tokens"].(map[string]any)["accessToken"].(string)

	resp, _ = env.do(t, "GET", "/admin/stats", token, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("non-admin: expected 403, got %d", resp.StatusCode)
	}

	// Promotion takes effect immediately with the same token.
	env.users.SetAdmin(userID, true)
	resp, payload = env.do(t, "GET", "/admin/stats", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin stats: status %d", resp.StatusCode)
	}
	if payload["questions"].(float64) != 2 || payload["users"].(float64) != 1 {
		t.Fatalf("unexpected stats: %v", payload)
	}
}

func TestAdminContentManagement(t *testing.T) {
	env := newTestEnv(t)

	resp, payload := env.do(t, "POST", "/auth/register", "", map[string]any{
		"name": "Root", "email": "root@example.com", "password": "pw",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: status %d", resp.StatusCode)
	}
	env.users.SetAdmin(payload["user"].(map[string]any)["id"].(string), true)
	token := payload["tokens"].(map[string]any)["accessToken"].(string)

	resp, payload = env.do(t, "POST", "/admin/questions", token, map[string]any{
		"question":      "Deepest ocean?",
		"options":       []string{"Atlantic", "Pacific", "Indian", "Arctic"},
		"correctAnswer": 1,
		"genre":         "science",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add question: status %d, body %v", resp.StatusCode, payload)
	}
	questionID := payload["question"].(map[string]any)["id"].(string)

	// Out-of-range answers are rejected at the door.
	resp, _ = env.do(t, "POST", "/admin/questions", token, map[string]any{
		"question":      "Bad one?",
		"options":       []string{"a", "b", "c", "d"},
		"correctAnswer": 4,
		"genre":         "science",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("out-of-range answer: expected 400, got %d", resp.StatusCode)
	}

	resp, _ = env.do(t, "DELETE", "/admin/questions/"+questionID, token, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete question: expected 204, got %d", resp.StatusCode)
	}
	resp, _ = env.do(t, "DELETE", "/admin/questions/"+questionID, token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("delete missing: expected 404, got %d", resp.StatusCode)
	}

	resp, payload = env.do(t, "POST", "/admin/genres", token, map[string]any{
		"name": "History", "description": "The past", "icon": "📜",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add genre: status %d", resp.StatusCode)
	}
	genreID := payload["genre"].(map[string]any)["id"].(string)
	resp, _ = env.do(t, "DELETE", "/admin/genres/"+genreID, token, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete genre: expected 204, got %d", resp.StatusCode)
	}

	resp, payload = env.do(t, "GET", "/admin/users", token, nil)
	if resp.StatusCode != http.StatusOK || len(payload["users"].([]any)) != 1 {
		t.Fatalf("users: status %d, body %v", resp.StatusCode, payload)
	}
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	resp, err := http.Get(env.server.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
