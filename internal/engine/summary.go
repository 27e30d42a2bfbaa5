package engine

import (
	"sort"
	"time"
)

// TeamResult is one team's line in the final standings.
type TeamResult struct {
	TeamID string
	Name   string
	Score  int
	Rank   int
}

// Summary is the persistable end-of-match record. The engine emits it; the
// persistence layer stores it.
type Summary struct {
	FinalScores  []TeamResult
	RoundsPlayed int
	CompletedAt  time.Time
}

// Summary ranks teams by score descending. Competition ranking: tied scores
// share a rank and the next rank is skipped; ties order by original team
// index ascending. Pure; the caller supplies the clock.
func (m *Match) Summary(now time.Time) Summary {
	teams := make([]Team, len(m.Ledger.Teams))
	copy(teams, m.Ledger.Teams)
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].Score != teams[j].Score {
			return teams[i].Score > teams[j].Score
		}
		return teams[i].Index < teams[j].Index
	})

	results := make([]TeamResult, len(teams))
	for i, t := range teams {
		rank := i + 1
		if i > 0 && t.Score == teams[i-1].Score {
			rank = results[i-1].Rank
		}
		results[i] = TeamResult{TeamID: t.ID, Name: t.Name, Score: t.Score, Rank: rank}
	}
	return Summary{
		FinalScores:  results,
		RoundsPlayed: m.RoundsPlayed,
		CompletedAt:  now,
	}
}
