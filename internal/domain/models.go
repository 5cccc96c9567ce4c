package domain

import "time"

// Question models an MCQ question with four options and one correct index.
type Question struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correctAnswer"`
	Explanation string   `json:"explanation,omitempty"`
	Genre       string   `json:"genre,omitempty"`
}

// Genre is immutable reference data describing a quiz topic.
type Genre struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	BgColor     string `json:"bgColor"`
}

// User is the identity attached to a request. Guests are non-durable:
// they exist only for the lifetime of their tokens.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	IsGuest bool   `json:"isGuest"`
}

// UserRecord is the persisted shape of an authenticated user.
// IsAdmin never travels in tokens; it is checked against storage.
type UserRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AnswerSelection is one stored in-session answer. At most one per question.
type AnswerSelection struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer int    `json:"selectedAnswer"`
}

// AnswerRecord is the graded form of a selection.
type AnswerRecord struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer int    `json:"selectedAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

// Result is the finalized outcome of a completed quiz attempt.
// Never mutated after creation.
type Result struct {
	Genre          string         `json:"genre"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"totalQuestions"`
	TimeSpent      int            `json:"timeSpent"` // whole seconds
	Answers        []AnswerRecord `json:"answers"`
}

// LeaderboardEntry is a persisted best-attempt record. Authenticated users
// hold at most one per genre; every guest completion is its own entry.
type LeaderboardEntry struct {
	ID             string         `json:"id"`
	UserID         string         `json:"userId"`
	Name           string         `json:"name"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"totalQuestions"`
	TimeSpent      int            `json:"timeSpent"`
	Genre          string         `json:"genre"`
	IsGuest        bool           `json:"isGuest"`
	Timestamp      time.Time      `json:"timestamp"`
	Answers        []AnswerRecord `json:"answers"`
}

// Leaderboard captures an ordered scoreboard for one genre ("all" merges
// every genre).
type Leaderboard struct {
	Genre     string             `json:"genre"`
	Entries   []LeaderboardEntry `json:"entries"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// UpsertOutcome tells the caller how a submission was persisted.
type UpsertOutcome string

const (
	// OutcomeFirstAttempt means no prior entry existed and one was created.
	OutcomeFirstAttempt UpsertOutcome = "firstAttempt"
	// OutcomeNewBest means an existing entry was replaced by a better run.
	OutcomeNewBest UpsertOutcome = "newBest"
	// OutcomeNoImprovement means the stored entry was left untouched.
	OutcomeNoImprovement UpsertOutcome = "noImprovement"
)

// Improves reports whether a (score, timeSpent) run beats a stored one:
// higher score wins, equal score is broken by lower time. This mirrors the
// leaderboard sort order, so an update happens iff it would move the user up.
func Improves(newScore, newTime, oldScore, oldTime int) bool {
	if newScore != oldScore {
		return newScore > oldScore
	}
	return newTime < oldTime
}
