package engine

import "strings"

// Final-round flow: MakeWager -> SubmitAnswer -> RevealResponse -> Podium,
// strictly forward. Each gate must hold for every team before the stage may
// advance.

func (m *Match) requireStage(stage FinalStage) error {
	if m.Round != FinalRound {
		return ErrWrongStage
	}
	if m.FinalStage != stage {
		return ErrWrongStage
	}
	return nil
}

// SetFinalWager records a team's final-round wager, bounded by its score at
// wager time. Teams at zero (or below) may only wager zero.
func (m *Match) SetFinalWager(index, wager int) error {
	if err := m.requireStage(StageMakeWager); err != nil {
		return err
	}
	t, err := m.Ledger.Team(index)
	if err != nil {
		return err
	}
	if wager < 0 || wager > max(t.Score, 0) {
		return ErrInvalidWager
	}
	m.Ledger.Teams[index].Final.Wager = wager
	m.Ledger.Teams[index].Final.WagerSet = true
	return nil
}

// SetFinalAnswer records a team's free-text response.
func (m *Match) SetFinalAnswer(index int, answer string) error {
	if err := m.requireStage(StageSubmitAnswer); err != nil {
		return err
	}
	if !m.Ledger.valid(index) {
		return ErrInvalidIndex
	}
	m.Ledger.Teams[index].Final.Answer = answer
	m.Ledger.Teams[index].Final.AnswerSet = true
	return nil
}

func (m *Match) WagersValid() bool {
	for _, t := range m.Ledger.Teams {
		if !t.Final.WagerSet {
			return false
		}
	}
	return len(m.Ledger.Teams) > 0
}

// AnswersValid requires every team to have submitted a non-blank answer
// before reveal. An all-whitespace answer does not count.
func (m *Match) AnswersValid() bool {
	for _, t := range m.Ledger.Teams {
		if !t.Final.AnswerSet || strings.TrimSpace(t.Final.Answer) == "" {
			return false
		}
	}
	return len(m.Ledger.Teams) > 0
}

// RevealFinalTeam exposes one team's answer for grading. Reveal order is the
// caller's choice; grading requires the team to be revealed first.
func (m *Match) RevealFinalTeam(index int) error {
	if err := m.requireStage(StageReveal); err != nil {
		return err
	}
	if !m.Ledger.valid(index) {
		return ErrInvalidIndex
	}
	m.Ledger.Teams[index].Final.Revealed = true
	return nil
}

// GradeFinalTeam applies ±wager for a revealed team. Regrading reverses the
// prior delta first; grading with the same verdict twice toggles the grade
// back off.
func (m *Match) GradeFinalTeam(index int, correct bool) error {
	if err := m.requireStage(StageReveal); err != nil {
		return err
	}
	if !m.Ledger.valid(index) {
		return ErrInvalidIndex
	}
	f := &m.Ledger.Teams[index].Final
	if !f.Revealed {
		return ErrNotOpen
	}
	if f.Graded {
		prior := f.Wager
		if !f.Correct {
			prior = -prior
		}
		if err := m.Ledger.AdjustScore(index, -prior); err != nil {
			return err
		}
		if f.Correct == correct {
			f.Graded = false
			return nil
		}
	}
	delta := f.Wager
	if !correct {
		delta = -delta
	}
	if err := m.Ledger.AdjustScore(index, delta); err != nil {
		return err
	}
	f.Correct = correct
	f.Graded = true
	return nil
}

// AdvanceFinalStage moves the final round forward one sub-stage. Gates:
// leaving MakeWager needs every wager committed, leaving SubmitAnswer needs
// every answer non-blank, leaving RevealResponse needs every team revealed.
func (m *Match) AdvanceFinalStage() error {
	if m.Round != FinalRound {
		return ErrWrongStage
	}
	switch m.FinalStage {
	case StageMakeWager:
		if !m.WagersValid() {
			return ErrStageNotReady
		}
		m.FinalStage = StageSubmitAnswer
	case StageSubmitAnswer:
		if !m.AnswersValid() {
			return ErrStageNotReady
		}
		m.FinalStage = StageReveal
	case StageReveal:
		for _, t := range m.Ledger.Teams {
			if !t.Final.Revealed {
				return ErrStageNotReady
			}
		}
		m.FinalStage = StagePodium
	case StagePodium:
		return ErrMatchCompleted
	default:
		return ErrWrongStage
	}
	return nil
}
