package store

import (
	"sort"

	"github.com/trivio-games/trivio-backend/internal/engine"
	"github.com/trivio-games/trivio-backend/internal/types"
)

// roundCategories returns the set's categories for one 1-based round, in
// board order.
func roundCategories(set *TriviaSet, round int) []Category {
	var cats []Category
	for _, c := range set.Categories {
		if c.Round == round {
			cats = append(cats, c)
		}
	}
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].Position < cats[j].Position })
	return cats
}

func layout(cats []Category) engine.BoardLayout {
	l := engine.BoardLayout{}
	for _, c := range cats {
		l.Categories = append(l.Categories, c.Title)
	}
	if len(cats) > 0 {
		for _, clue := range cats[0].Clues {
			l.PointValues = append(l.PointValues, clue.Value)
		}
	}
	return l
}

// MatchConfig derives the engine's board layouts from a stored set. Daily
// doubles are left nil so the engine places them at random.
func MatchConfig(set *TriviaSet, seed int64) engine.Config {
	cfg := engine.Config{
		RoundOne:     layout(roundCategories(set, 1)),
		HasTwoRounds: set.HasTwoRounds,
		Seed:         seed,
	}
	if set.HasTwoRounds {
		cfg.RoundTwo = layout(roundCategories(set, 2))
	}
	return cfg
}

// Content extracts the clue/response text the engine deliberately does not
// carry, round by round in board order.
func Content(set *TriviaSet) types.SetContent {
	content := types.SetContent{Title: set.Title}
	rounds := 1
	if set.HasTwoRounds {
		rounds = 2
	}
	for r := 1; r <= rounds; r++ {
		rc := types.RoundContent{}
		for _, cat := range roundCategories(set, r) {
			cc := types.CategoryContent{Title: cat.Title}
			for _, clue := range cat.Clues {
				cc.Clues = append(cc.Clues, types.ClueContent{Clue: clue.Clue, Response: clue.Response})
			}
			rc.Categories = append(rc.Categories, cc)
		}
		content.Rounds = append(content.Rounds, rc)
	}
	return content
}
