package engine

// Team is one contestant group. Score is whole in-game dollars and may go
// negative. Index stays contiguous within the roster; RemoveTeam shifts
// later teams down.
type Team struct {
	ID      string
	Index   int
	Name    string
	Members []string
	Color   string
	Score   int

	// Transient grading flags for the clue currently open. Cleared when the
	// clue closes. Explicit fields instead of parallel arrays keyed by index.
	MarkedCorrect bool
	MarkedWrong   bool

	Final FinalSlot
}

// FinalSlot holds one team's final-round bookkeeping.
type FinalSlot struct {
	Wager     int
	WagerSet  bool
	Answer    string
	AnswerSet bool
	Revealed  bool
	Correct   bool
	Graded    bool
}

// Ledger owns the roster and the active-team selection. Selected is -1 when
// no team is active.
type Ledger struct {
	Teams    []Team
	Selected int
}

func NewLedger() *Ledger {
	return &Ledger{Teams: []Team{}, Selected: -1}
}

func (l *Ledger) AddTeam(id, name string, members []string, color string) (int, error) {
	for _, t := range l.Teams {
		if t.ID == id {
			return 0, ErrDuplicateTeam
		}
	}
	idx := len(l.Teams)
	l.Teams = append(l.Teams, Team{
		ID:      id,
		Index:   idx,
		Name:    name,
		Members: members,
		Color:   color,
	})
	return idx, nil
}

func (l *Ledger) RemoveTeam(index int) error {
	if !l.valid(index) {
		return ErrInvalidIndex
	}
	l.Teams = append(l.Teams[:index], l.Teams[index+1:]...)
	for i := range l.Teams {
		l.Teams[i].Index = i
	}
	// Keep the selection pointing at the same team where possible.
	switch {
	case l.Selected == index:
		l.Selected = -1
	case l.Selected > index:
		l.Selected--
	}
	return nil
}

func (l *Ledger) AdjustScore(index, delta int) error {
	if !l.valid(index) {
		return ErrInvalidIndex
	}
	l.Teams[index].Score += delta
	return nil
}

func (l *Ledger) SetSelected(index int) error {
	if !l.valid(index) {
		return ErrInvalidIndex
	}
	l.Selected = index
	return nil
}

func (l *Ledger) ResetScores() {
	for i := range l.Teams {
		l.Teams[i].Score = 0
	}
}

// Team returns a copy; mutation goes through the ledger's operations.
func (l *Ledger) Team(index int) (Team, error) {
	if !l.valid(index) {
		return Team{}, ErrInvalidIndex
	}
	return l.Teams[index], nil
}

func (l *Ledger) Len() int { return len(l.Teams) }

func (l *Ledger) valid(index int) bool {
	return index >= 0 && index < len(l.Teams)
}

func (l *Ledger) clearClueFlags() {
	for i := range l.Teams {
		l.Teams[i].MarkedCorrect = false
		l.Teams[i].MarkedWrong = false
	}
}

func (l *Ledger) clearFinalSlots() {
	for i := range l.Teams {
		l.Teams[i].Final = FinalSlot{}
	}
}
