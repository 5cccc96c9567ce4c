package app

import (
	"sync"

	"trivia-quiz-service/internal/domain"
)

// LeaderboardHub fans leaderboard snapshots out to websocket subscribers,
// grouped by genre.
type LeaderboardHub struct {
	mu   sync.Mutex
	subs map[string]map[chan domain.Leaderboard]struct{}
}

func NewLeaderboardHub() *LeaderboardHub {
	return &LeaderboardHub{
		subs: make(map[string]map[chan domain.Leaderboard]struct{}),
	}
}

// Subscribe returns a channel receiving snapshots for one genre. The caller
// must invoke the returned cancel function to avoid leaks.
func (h *LeaderboardHub) Subscribe(genre string) (<-chan domain.Leaderboard, func()) {
	ch := make(chan domain.Leaderboard, 8)

	h.mu.Lock()
	if h.subs[genre] == nil {
		h.subs[genre] = make(map[chan domain.Leaderboard]struct{})
	}
	h.subs[genre][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[genre]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(h.subs, genre)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Broadcast delivers a snapshot to every subscriber of its genre. Slow
// consumers have their stale pending update dropped rather than blocking
// the broadcast.
func (h *LeaderboardHub) Broadcast(lb domain.Leaderboard) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[lb.Genre] {
		select {
		case ch <- lb:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- lb
		}
	}
}
