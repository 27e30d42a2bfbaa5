package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Seed inserts a small demo set when the sets table is empty, so a fresh
// database has something playable.
func (s *Store) Seed(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&TriviaSet{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting sets: %w", err)
	}
	if count > 0 {
		return nil
	}

	set := demoSet()
	if err := s.CreateSet(ctx, set); err != nil {
		return err
	}
	s.log.Info("seeded demo set", zap.Uint("id", set.ID), zap.String("title", set.Title))
	return nil
}

func demoSet() *TriviaSet {
	set := &TriviaSet{
		Title:        "Starter Pack",
		HasTwoRounds: false,
		FinalClue:    "This language's mascot is a gopher.",
		FinalAnswer:  "What is Go?",
	}

	categories := []struct {
		title string
		clues [5][2]string
	}{
		{
			title: "Computing",
			clues: [5][2]string{
				{"The 'www' in a URL stands for this.", "What is the World Wide Web?"},
				{"This company makes the Windows operating system.", "What is Microsoft?"},
				{"RAM stands for this.", "What is random access memory?"},
				{"This data structure is last in, first out.", "What is a stack?"},
				{"Ken Thompson and Dennis Ritchie built this OS at Bell Labs.", "What is Unix?"},
			},
		},
		{
			title: "Geography",
			clues: [5][2]string{
				{"This is the largest ocean on Earth.", "What is the Pacific?"},
				{"The capital of Japan.", "What is Tokyo?"},
				{"This river runs through Cairo.", "What is the Nile?"},
				{"The smallest country in the world.", "What is Vatican City?"},
				{"This mountain range separates Europe from Asia.", "What are the Urals?"},
			},
		},
		{
			title: "Science",
			clues: [5][2]string{
				{"H2O is the chemical formula for this.", "What is water?"},
				{"This planet is known as the Red Planet.", "What is Mars?"},
				{"The powerhouse of the cell.", "What is the mitochondrion?"},
				{"The speed of this is about 299,792 km per second.", "What is light?"},
				{"This particle carries a negative charge.", "What is an electron?"},
			},
		},
	}

	for pos, c := range categories {
		cat := Category{Round: 1, Position: pos, Title: c.title}
		for row, qa := range c.clues {
			cat.Clues = append(cat.Clues, Clue{
				Row:      row,
				Value:    (row + 1) * 200,
				Clue:     qa[0],
				Response: qa[1],
			})
		}
		set.Categories = append(set.Categories, cat)
	}
	return set
}
