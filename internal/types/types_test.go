package types

import (
	"testing"

	"github.com/trivio-games/trivio-backend/internal/engine"
)

func TestToCommand(t *testing.T) {
	cmd, ok := ToCommand(ClientMessage{Type: "OpenClue", Col: 2, Row: 3})
	if !ok || cmd.Type != engine.CmdOpenClue || cmd.Col != 2 || cmd.Row != 3 {
		t.Fatalf("got (%+v, %v)", cmd, ok)
	}

	cmd, ok = ToCommand(ClientMessage{Type: "GradeFinal", Team: 1, Flag: true})
	if !ok || cmd.Type != engine.CmdGradeFinal || !cmd.Flag {
		t.Fatalf("got (%+v, %v)", cmd, ok)
	}

	if _, ok := ToCommand(ClientMessage{Type: "Dance"}); ok {
		t.Fatalf("unknown type should not map")
	}
}

func TestNewStateView(t *testing.T) {
	m, err := engine.NewMatch(engine.Config{
		RoundOne: engine.BoardLayout{
			Categories:   []string{"A", "B"},
			PointValues:  []int{200, 400},
			DailyDoubles: []engine.CellRef{},
		},
	})
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	if _, err := m.Ledger.AddTeam("a", "Alpha", []string{"Ann"}, "blue"); err != nil {
		t.Fatalf("AddTeam: %v", err)
	}

	content := SetContent{
		Title: "Sample",
		Rounds: []RoundContent{{
			Categories: []CategoryContent{
				{Title: "A", Clues: []ClueContent{{Clue: "a0", Response: "r0"}, {Clue: "a1", Response: "r1"}}},
				{Title: "B", Clues: []ClueContent{{Clue: "b0", Response: "r0"}, {Clue: "b1", Response: "r1"}}},
			},
		}},
	}

	if _, err := m.OpenClue(1, 1); err != nil {
		t.Fatalf("OpenClue: %v", err)
	}

	v := NewStateView(m, content, 9000)
	if v.Round != "round1" || v.RemainingMS != 9000 {
		t.Fatalf("view: %+v", v)
	}
	if len(v.Teams) != 1 || v.Teams[0].Name != "Alpha" {
		t.Fatalf("teams: %+v", v.Teams)
	}
	if v.Current == nil {
		t.Fatalf("current clue missing")
	}
	if v.Current.Clue != "b1" || v.Current.Value != 400 {
		t.Fatalf("current: %+v", v.Current)
	}
	if !v.Cells[1][1].Used {
		t.Fatalf("cell view should be used")
	}
}
