package engine

// clueValue is the delta magnitude for grading the current clue: the cell
// value, or the committed wager on a daily double.
func (m *Match) clueValue() (int, error) {
	if m.Current == nil {
		return 0, ErrNoOpenClue
	}
	if m.Current.DailyDouble {
		if !m.Current.WagerSet {
			return 0, ErrWagerNotSet
		}
		return m.Current.Wager, nil
	}
	return m.Current.Value, nil
}

func (m *Match) gradeable(index int) (int, error) {
	v, err := m.clueValue()
	if err != nil {
		return 0, err
	}
	if !m.Ledger.valid(index) {
		return 0, ErrInvalidIndex
	}
	if m.Current.DailyDouble && index != m.Current.DailyDoubleTeam {
		return 0, ErrWrongTeam
	}
	return v, nil
}

// MarkCorrect credits a team for the current clue. At most one team may be
// correct per clue: crediting a new team first reverses the previous credit.
// Marking an already-correct team toggles the credit back off. A team marked
// wrong has its penalty reversed before the credit applies.
func (m *Match) MarkCorrect(index int) error {
	v, err := m.gradeable(index)
	if err != nil {
		return err
	}
	t := &m.Ledger.Teams[index]
	if t.MarkedCorrect {
		t.MarkedCorrect = false
		return m.Ledger.AdjustScore(index, -v)
	}
	if t.MarkedWrong {
		t.MarkedWrong = false
		if err := m.Ledger.AdjustScore(index, +v); err != nil {
			return err
		}
	}
	for j := range m.Ledger.Teams {
		if m.Ledger.Teams[j].MarkedCorrect {
			m.Ledger.Teams[j].MarkedCorrect = false
			if err := m.Ledger.AdjustScore(j, -v); err != nil {
				return err
			}
		}
	}
	if err := m.Ledger.AdjustScore(index, +v); err != nil {
		return err
	}
	t.MarkedCorrect = true
	m.SolvedCount++
	return m.Ledger.SetSelected(index)
}

// MarkIncorrect toggles a wrong-answer penalty for a team on the current
// clue. Several teams may be wrong on the same clue. Marking a team wrong
// after it was correct reverses the credit first.
func (m *Match) MarkIncorrect(index int) error {
	v, err := m.gradeable(index)
	if err != nil {
		return err
	}
	t := &m.Ledger.Teams[index]
	if t.MarkedWrong {
		t.MarkedWrong = false
		return m.Ledger.AdjustScore(index, +v)
	}
	if t.MarkedCorrect {
		t.MarkedCorrect = false
		if err := m.Ledger.AdjustScore(index, -v); err != nil {
			return err
		}
	}
	if err := m.Ledger.AdjustScore(index, -v); err != nil {
		return err
	}
	t.MarkedWrong = true
	return nil
}

// SetDailyDoubleWager commits the active team's wager for the open daily
// double. The cap is the larger of the team's score and the round's top cell
// value, so a trailing team can still bet up to the board maximum.
func (m *Match) SetDailyDoubleWager(wager int) error {
	if m.Current == nil {
		return ErrNoOpenClue
	}
	if !m.Current.DailyDouble {
		return ErrWrongStage
	}
	idx := m.Current.DailyDoubleTeam
	if !m.Ledger.valid(idx) {
		return ErrWrongTeam
	}
	t := m.Ledger.Teams[idx]
	if t.MarkedCorrect || t.MarkedWrong {
		// A grade has already been applied against the old wager.
		return ErrWrongStage
	}
	ceiling := t.Score
	if floor := m.Board.MaxValue(); floor > ceiling {
		ceiling = floor
	}
	if wager < 0 || wager > ceiling {
		return ErrInvalidWager
	}
	m.Current.Wager = wager
	m.Current.WagerSet = true
	return nil
}
