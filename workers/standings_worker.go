package workers

import (
	"context"
	"log"
	"time"

	"findly/services"
)

// StandingsRefresher recomputes the leaderboard standings mirror on a fixed
// interval so leaderboard reads never scan the users table.
type StandingsRefresher struct {
	Leaderboard *services.LeaderboardService
}

func NewStandingsRefresher(svc *services.LeaderboardService) *StandingsRefresher {
	return &StandingsRefresher{Leaderboard: svc}
}

// PollStandings rebuilds the mirror until ctx is cancelled. One rebuild runs
// immediately so a fresh boot serves standings without waiting a full tick.
func PollStandings(ctx context.Context, r *StandingsRefresher, pollInterval time.Duration) {
	log.Println("Starting leaderboard standings polling...")

	refresh := func() {
		if err := r.Leaderboard.Rebuild(); err != nil {
			log.Printf("[Standings] rebuild failed: %v", err)
		}
	}
	refresh()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Stopping leaderboard standings polling")
			return
		case <-ticker.C:
			refresh()
		}
	}
}
