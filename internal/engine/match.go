package engine

import "math/rand"

type Round string

const (
	RoundOne   Round = "round1"
	RoundTwo   Round = "round2"
	FinalRound Round = "final"
)

type FinalStage string

const (
	StageNotBegun     FinalStage = "notBegun"
	StageMakeWager    FinalStage = "makeWager"
	StageSubmitAnswer FinalStage = "submitAnswer"
	StageReveal       FinalStage = "revealResponse"
	StagePodium       FinalStage = "podium"
)

func dailyDoubleCap(r Round) int {
	if r == RoundTwo {
		return 2
	}
	return 1
}

// BoardLayout describes one round's grid. When DailyDoubles is nil the
// engine places them at random; an empty non-nil slice means none.
type BoardLayout struct {
	Categories   []string
	PointValues  []int
	DailyDoubles []CellRef
}

// Config is everything needed to start a match: the board layouts and
// whether the set carries a second round.
type Config struct {
	RoundOne     BoardLayout
	RoundTwo     BoardLayout
	HasTwoRounds bool
	Seed         int64
}

// OpenClue is the clue currently being played, with its grading context.
// DailyDoubleTeam is the team index locked in at open time, -1 for a normal
// clue.
type OpenClue struct {
	Ref             CellRef
	Value           int
	DailyDouble     bool
	DailyDoubleTeam int
	Wager           int
	WagerSet        bool
}

// Match owns all state for one game: roster, board, round progression and
// the final-round sub-stage. Single-writer; callers serialize access.
type Match struct {
	Ledger       *Ledger
	Board        *Board
	Round        Round
	FinalStage   FinalStage
	HasTwoRounds bool
	Current      *OpenClue

	// SolvedCount increments every time a clue is first marked correct.
	// The presentation layer uses it for celebratory effects.
	SolvedCount  int
	RoundsPlayed int

	cfg         Config
	openingTeam int
	rng         *rand.Rand
}

func NewMatch(cfg Config) (*Match, error) {
	m := &Match{
		Ledger:       NewLedger(),
		HasTwoRounds: cfg.HasTwoRounds,
		cfg:          cfg,
		rng:          rand.New(rand.NewSource(cfg.Seed)),
	}
	if err := m.startRoundOne(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Match) startRoundOne() error {
	b, err := m.buildBoard(m.cfg.RoundOne, RoundOne)
	if err != nil {
		return err
	}
	m.Board = b
	m.Round = RoundOne
	m.FinalStage = StageNotBegun
	m.Current = nil
	m.RoundsPlayed = 1
	return nil
}

// roundTwoLayout is the second board. Explicit point values win; without
// them, round one's values double.
func (m *Match) roundTwoLayout() BoardLayout {
	layout := m.cfg.RoundTwo
	if len(layout.PointValues) == 0 {
		layout.PointValues = make([]int, len(m.cfg.RoundOne.PointValues))
		for i, v := range m.cfg.RoundOne.PointValues {
			layout.PointValues[i] = v * 2
		}
	}
	if len(layout.Categories) == 0 {
		layout.Categories = m.cfg.RoundOne.Categories
	}
	return layout
}

func (m *Match) buildBoard(layout BoardLayout, round Round) (*Board, error) {
	doubles := layout.DailyDoubles
	if doubles == nil {
		doubles = pickDailyDoubles(len(layout.Categories), len(layout.PointValues), dailyDoubleCap(round), m.rng)
	}
	return NewBoard(layout.Categories, layout.PointValues, doubles, dailyDoubleCap(round))
}

// OpenClue opens the cell at (col,row) and makes it the current clue.
// Opening a new clue closes out the previous one's grading flags. For a
// daily double the currently selected team is locked in as the sole player.
func (m *Match) OpenClue(col, row int) (CellInfo, error) {
	if m.Round == FinalRound {
		return CellInfo{}, ErrWrongStage
	}
	info, err := m.Board.OpenCell(col, row)
	if err != nil {
		return CellInfo{}, err
	}
	m.Ledger.clearClueFlags()
	oc := &OpenClue{
		Ref:             info.Ref,
		Value:           info.Value,
		DailyDouble:     info.DailyDouble,
		DailyDoubleTeam: -1,
	}
	if info.DailyDouble {
		oc.DailyDoubleTeam = m.Ledger.Selected
	}
	m.Current = oc
	return info, nil
}

// CloseClue resolves the current clue. Grading flags clear; applied score
// deltas stand.
func (m *Match) CloseClue() error {
	if m.Current == nil {
		return ErrNoOpenClue
	}
	m.Current = nil
	m.Ledger.clearClueFlags()
	return nil
}

// ReopenClue is the admin "bring clue back": the cell becomes playable
// again. Scores already applied for it are untouched.
func (m *Match) ReopenClue(col, row int) error {
	if m.Round == FinalRound {
		return ErrWrongStage
	}
	return m.Board.ReopenCell(col, row)
}

func (m *Match) MarkTripleStumper(col, row int, value bool) error {
	if m.Round == FinalRound {
		return ErrWrongStage
	}
	return m.Board.MarkTripleStumper(col, row, value)
}

// AdvanceRound moves to the next round. Without force it requires the
// current board to be complete. Entering the final round opens the wager
// sub-stage; round two (when present) gets a doubled board, fresh daily
// doubles, and rotates the opening selection to the next team.
func (m *Match) AdvanceRound(force bool) error {
	switch m.Round {
	case RoundOne, RoundTwo:
		if !force && !m.Board.IsComplete() {
			return ErrRoundNotComplete
		}
	case FinalRound:
		return ErrMatchCompleted
	}
	m.Current = nil
	m.Ledger.clearClueFlags()

	if m.Round == RoundOne && m.HasTwoRounds {
		b, err := m.buildBoard(m.roundTwoLayout(), RoundTwo)
		if err != nil {
			return err
		}
		m.Board = b
		m.Round = RoundTwo
		m.RoundsPlayed++
		if n := m.Ledger.Len(); n > 0 {
			_ = m.Ledger.SetSelected((m.openingTeam + 1) % n)
		}
		return nil
	}

	m.Round = FinalRound
	m.RoundsPlayed++
	m.FinalStage = StageMakeWager
	m.Ledger.clearFinalSlots()
	return nil
}

// Finished reports whether the match reached the podium.
func (m *Match) Finished() bool {
	return m.Round == FinalRound && m.FinalStage == StagePodium
}

// Reset starts the match over with the same roster: scores zeroed, a fresh
// round-one board, final-round state discarded.
func (m *Match) Reset() error {
	m.Ledger.ResetScores()
	m.Ledger.clearClueFlags()
	m.Ledger.clearFinalSlots()
	m.SolvedCount = 0
	return m.startRoundOne()
}
