package types

import "github.com/trivio-games/trivio-backend/internal/engine"

// SetContent is the clue/response text for a trivia set, indexed by round
// then (col,row) — the payload the engine deliberately does not own.
type SetContent struct {
	Title  string         `json:"title"`
	Rounds []RoundContent `json:"rounds"`
}

type RoundContent struct {
	Categories []CategoryContent `json:"categories"`
}

type CategoryContent struct {
	Title string        `json:"title"`
	Clues []ClueContent `json:"clues"`
}

type ClueContent struct {
	Clue     string `json:"clue"`
	Response string `json:"response"`
}

// ClueAt returns the text for one cell of one round (0-based round index).
func (c SetContent) ClueAt(round, col, row int) (ClueContent, bool) {
	if round < 0 || round >= len(c.Rounds) {
		return ClueContent{}, false
	}
	cats := c.Rounds[round].Categories
	if col < 0 || col >= len(cats) || row < 0 || row >= len(cats[col].Clues) {
		return ClueContent{}, false
	}
	return cats[col].Clues[row], true
}

// StateView is the JSON shape of a match snapshot. Built fresh from the
// engine on every broadcast; clients treat it as the whole truth.
type StateView struct {
	Round       string        `json:"round"`
	FinalStage  string        `json:"final_stage"`
	Categories  []string      `json:"categories"`
	Cells       [][]CellView  `json:"cells"`
	Teams       []TeamView    `json:"teams"`
	Selected    int           `json:"selected"`
	Current     *OpenClueView `json:"current,omitempty"`
	SolvedCount int           `json:"solved_count"`
	Finished    bool          `json:"finished"`
	RemainingMS int64         `json:"remaining_ms"`
}

type CellView struct {
	Value         int  `json:"value"`
	DailyDouble   bool `json:"daily_double"`
	TripleStumper bool `json:"triple_stumper"`
	Used          bool `json:"used"`
}

type TeamView struct {
	ID            string   `json:"id"`
	Index         int      `json:"index"`
	Name          string   `json:"name"`
	Members       []string `json:"members,omitempty"`
	Color         string   `json:"color,omitempty"`
	Score         int       `json:"score"`
	MarkedCorrect bool      `json:"marked_correct"`
	MarkedWrong   bool      `json:"marked_wrong"`
	Final         FinalView `json:"final"`
}

type FinalView struct {
	WagerSet  bool   `json:"wager_set"`
	Wager     int    `json:"wager"`
	AnswerSet bool   `json:"answer_set"`
	Answer    string `json:"answer,omitempty"`
	Revealed  bool   `json:"revealed"`
	Correct   bool   `json:"correct"`
	Graded    bool   `json:"graded"`
}

type OpenClueView struct {
	Col         int    `json:"col"`
	Row         int    `json:"row"`
	Value       int    `json:"value"`
	DailyDouble bool   `json:"daily_double"`
	WagerSet    bool   `json:"wager_set"`
	Clue        string `json:"clue,omitempty"`
	Response    string `json:"response,omitempty"`
}

// NewStateView copies the match into its wire shape. content supplies the
// current clue's text; pass the zero value to omit it.
func NewStateView(m *engine.Match, content SetContent, remainingMS int64) StateView {
	v := StateView{
		Round:       string(m.Round),
		FinalStage:  string(m.FinalStage),
		Categories:  append([]string(nil), m.Board.Categories...),
		Selected:    m.Ledger.Selected,
		SolvedCount: m.SolvedCount,
		Finished:    m.Finished(),
		RemainingMS: remainingMS,
	}

	v.Cells = make([][]CellView, len(m.Board.Cells))
	for col, cells := range m.Board.Cells {
		v.Cells[col] = make([]CellView, len(cells))
		for row, c := range cells {
			v.Cells[col][row] = CellView{
				Value:         c.Value,
				DailyDouble:   c.DailyDouble,
				TripleStumper: c.TripleStumper,
				Used:          c.Used,
			}
		}
	}

	v.Teams = make([]TeamView, len(m.Ledger.Teams))
	for i, t := range m.Ledger.Teams {
		v.Teams[i] = TeamView{
			ID:            t.ID,
			Index:         t.Index,
			Name:          t.Name,
			Members:       append([]string(nil), t.Members...),
			Color:         t.Color,
			Score:         t.Score,
			MarkedCorrect: t.MarkedCorrect,
			MarkedWrong:   t.MarkedWrong,
			Final: FinalView{
				WagerSet:  t.Final.WagerSet,
				Wager:     t.Final.Wager,
				AnswerSet: t.Final.AnswerSet,
				Answer:    t.Final.Answer,
				Revealed:  t.Final.Revealed,
				Correct:   t.Final.Correct,
				Graded:    t.Final.Graded,
			},
		}
	}

	if oc := m.Current; oc != nil {
		view := &OpenClueView{
			Col:         oc.Ref.Col,
			Row:         oc.Ref.Row,
			Value:       oc.Value,
			DailyDouble: oc.DailyDouble,
			WagerSet:    oc.WagerSet,
		}
		roundIdx := 0
		if m.Round == engine.RoundTwo {
			roundIdx = 1
		}
		if text, ok := content.ClueAt(roundIdx, oc.Ref.Col, oc.Ref.Row); ok {
			view.Clue = text.Clue
			view.Response = text.Response
		}
		v.Current = view
	}
	return v
}
