package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trivio-games/trivio-backend/internal/engine"
)

func sampleSet() *TriviaSet {
	set := &TriviaSet{Title: "Sample", HasTwoRounds: true}
	for round := 1; round <= 2; round++ {
		for col := 0; col < 2; col++ {
			cat := Category{Round: round, Position: col, Title: "Cat"}
			for row := 0; row < 3; row++ {
				cat.Clues = append(cat.Clues, Clue{
					Row:      row,
					Value:    (row + 1) * 200 * round,
					Clue:     "clue text",
					Response: "response text",
				})
			}
			set.Categories = append(set.Categories, cat)
		}
	}
	return set
}

func TestMatchConfig(t *testing.T) {
	cfg := MatchConfig(sampleSet(), 7)

	require.True(t, cfg.HasTwoRounds)
	assert.Equal(t, []string{"Cat", "Cat"}, cfg.RoundOne.Categories)
	assert.Equal(t, []int{200, 400, 600}, cfg.RoundOne.PointValues)
	// round-two values come from the stored clues, already doubled
	assert.Equal(t, []int{400, 800, 1200}, cfg.RoundTwo.PointValues)

	m, err := engine.NewMatch(cfg)
	require.NoError(t, err)
	assert.Equal(t, 6, m.Board.TotalCells())
}

func TestContent(t *testing.T) {
	content := Content(sampleSet())

	require.Len(t, content.Rounds, 2)
	text, ok := content.ClueAt(1, 1, 2)
	require.True(t, ok)
	assert.Equal(t, "clue text", text.Clue)
	assert.Equal(t, "response text", text.Response)

	_, ok = content.ClueAt(2, 0, 0)
	assert.False(t, ok)
}
