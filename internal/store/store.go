package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trivio-games/trivio-backend/internal/engine"
)

var ErrSetNotFound = errors.New("trivia set not found")

type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

func Open(dsn string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	if err := db.AutoMigrate(&TriviaSet{}, &Category{}, &Clue{}, &MatchSummary{}, &TeamResult{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// GetSet loads one set with its full category/clue graph, ordered the way
// the board expects (categories by position, clues by row).
func (s *Store) GetSet(ctx context.Context, id uint) (*TriviaSet, error) {
	var set TriviaSet
	err := s.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("round, position")
		}).
		Preload("Categories.Clues", func(db *gorm.DB) *gorm.DB {
			return db.Order("row_index")
		}).
		First(&set, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading set %d: %w", id, err)
	}
	return &set, nil
}

// ListSets returns set headers only, newest first.
func (s *Store) ListSets(ctx context.Context) ([]TriviaSet, error) {
	var sets []TriviaSet
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Find(&sets).Error
	if err != nil {
		return nil, fmt.Errorf("listing sets: %w", err)
	}
	return sets, nil
}

func (s *Store) CreateSet(ctx context.Context, set *TriviaSet) error {
	if err := s.db.WithContext(ctx).Create(set).Error; err != nil {
		return fmt.Errorf("creating set: %w", err)
	}
	return nil
}

// SaveSummary implements lobby.SummarySink.
func (s *Store) SaveSummary(ctx context.Context, code string, sum engine.Summary) error {
	rec := MatchSummary{
		LobbyCode:    code,
		RoundsPlayed: sum.RoundsPlayed,
		CompletedAt:  sum.CompletedAt,
	}
	for _, r := range sum.FinalScores {
		rec.Results = append(rec.Results, TeamResult{
			TeamID: r.TeamID,
			Name:   r.Name,
			Score:  r.Score,
			Rank:   r.Rank,
		})
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("saving summary for %s: %w", code, err)
	}
	s.log.Info("match summary saved",
		zap.String("lobby", code),
		zap.Int("teams", len(rec.Results)),
		zap.Int("rounds", rec.RoundsPlayed))
	return nil
}

func (s *Store) RecentSummaries(ctx context.Context, limit int) ([]MatchSummary, error) {
	var sums []MatchSummary
	err := s.db.WithContext(ctx).
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("rank")
		}).
		Order("completed_at desc").
		Limit(limit).
		Find(&sums).Error
	if err != nil {
		return nil, fmt.Errorf("listing summaries: %w", err)
	}
	return sums, nil
}
