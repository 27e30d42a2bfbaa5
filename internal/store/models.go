package store

import "time"

// TriviaSet is one playable set: categories and clues for up to two boards
// plus a final clue. Round on Category is 1-based (1 or 2).
type TriviaSet struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	HasTwoRounds bool       `json:"has_two_rounds"`
	FinalClue    string     `json:"final_clue"`
	FinalAnswer  string     `json:"final_answer"`
	CreatedAt    time.Time  `json:"created_at"`
	Categories   []Category `gorm:"foreignKey:SetID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
}

type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	SetID    uint   `gorm:"not null;index" json:"set_id"`
	Round    int    `gorm:"not null" json:"round"`
	Position int    `gorm:"not null" json:"position"`
	Title    string `gorm:"not null" json:"title"`
	Clues    []Clue `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"clues,omitempty"`
}

type Clue struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CategoryID uint   `gorm:"not null;index" json:"category_id"`
	Row        int    `gorm:"column:row_index;not null" json:"row"`
	Value      int    `gorm:"not null" json:"value"`
	Clue       string `gorm:"not null" json:"clue"`
	Response   string `gorm:"not null" json:"response"`
}

// MatchSummary is the persisted end-of-match record.
type MatchSummary struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	LobbyCode    string       `gorm:"index" json:"lobby_code"`
	RoundsPlayed int          `json:"rounds_played"`
	CompletedAt  time.Time    `gorm:"index" json:"completed_at"`
	Results      []TeamResult `gorm:"foreignKey:SummaryID;constraint:OnDelete:CASCADE" json:"results,omitempty"`
}

type TeamResult struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SummaryID uint   `gorm:"not null;index" json:"summary_id"`
	TeamID    string `gorm:"not null" json:"team_id"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Rank      int    `json:"rank"`
}
