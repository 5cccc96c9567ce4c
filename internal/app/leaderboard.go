package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"trivia-quiz-service/internal/domain"
)

// publishResult applies the leaderboard upsert policy.
//
// Guests always create a new entry: their identities are not durable, so
// there is nothing meaningful to update. Authenticated users keep at most
// one entry per genre, replaced in place only when the new run would rank
// higher (better score, or equal score in less time).
func (s *QuizService) publishResult(ctx context.Context, user domain.User, result domain.Result) (domain.UpsertOutcome, error) {
	now := s.now()

	if user.IsGuest {
		entry := entryFromResult(user, result)
		entry.ID = fmt.Sprintf("guest_%s_%d", user.ID, now.UnixMilli())
		entry.Timestamp = now
		if err := s.board.Insert(ctx, entry); err != nil {
			return "", err
		}
		return domain.OutcomeFirstAttempt, nil
	}

	existing, err := s.board.FindByUserGenre(ctx, user.ID, result.Genre)
	if err != nil {
		return "", err
	}

	if len(existing) == 0 {
		entry := entryFromResult(user, result)
		entry.ID = uuid.NewString()
		entry.Timestamp = now
		if err := s.board.Insert(ctx, entry); err != nil {
			return "", err
		}
		return domain.OutcomeFirstAttempt, nil
	}

	// One row per user and genre is the invariant; if duplicates slipped in
	// through a race, the last row returned is the comparison target. See
	// DESIGN.md for the open question on merging.
	prev := existing[len(existing)-1]
	if !domain.Improves(result.Score, result.TimeSpent, prev.Score, prev.TimeSpent) {
		return domain.OutcomeNoImprovement, nil
	}

	updated := entryFromResult(user, result)
	updated.ID = prev.ID
	updated.Timestamp = now
	if err := s.board.Update(ctx, updated); err != nil {
		return "", err
	}
	return domain.OutcomeNewBest, nil
}

func entryFromResult(user domain.User, result domain.Result) domain.LeaderboardEntry {
	return domain.LeaderboardEntry{
		UserID:         user.ID,
		Name:           user.Name,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		TimeSpent:      result.TimeSpent,
		Genre:          result.Genre,
		IsGuest:        user.IsGuest,
		Answers:        result.Answers,
	}
}
