package engine

import (
	"errors"
	"testing"
)

func finalMatch(t *testing.T, teams int, scores ...int) *Match {
	t.Helper()
	m := newTestMatch(t, teams, nil, false)
	for i, s := range scores {
		m.Ledger.Teams[i].Score = s
	}
	if err := m.AdvanceRound(true); err != nil {
		t.Fatalf("AdvanceRound: %v", err)
	}
	return m
}

func TestFinalWagerBounds(t *testing.T) {
	cases := []struct {
		name    string
		score   int
		wager   int
		wantErr bool
	}{
		{name: "full score", score: 400, wager: 400},
		{name: "zero", score: 400, wager: 0},
		{name: "over score", score: 400, wager: 401, wantErr: true},
		{name: "negative", score: 400, wager: -5, wantErr: true},
		{name: "negative score wagers zero", score: -300, wager: 0},
		{name: "negative score cannot bet", score: -300, wager: 100, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := finalMatch(t, 1, tc.score)
			err := m.SetFinalWager(0, tc.wager)
			if tc.wantErr && !errors.Is(err, ErrInvalidWager) {
				t.Fatalf("want ErrInvalidWager, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
		})
	}
}

func TestFinalStageGates(t *testing.T) {
	m := finalMatch(t, 2, 400, 200)

	// wager gate
	if err := m.AdvanceFinalStage(); !errors.Is(err, ErrStageNotReady) {
		t.Fatalf("want ErrStageNotReady, got %v", err)
	}
	if err := m.SetFinalWager(0, 100); err != nil {
		t.Fatalf("wager: %v", err)
	}
	if m.WagersValid() {
		t.Fatalf("one wager missing, WagersValid should be false")
	}
	if err := m.SetFinalWager(1, 200); err != nil {
		t.Fatalf("wager: %v", err)
	}
	if err := m.AdvanceFinalStage(); err != nil {
		t.Fatalf("to submitAnswer: %v", err)
	}

	// answering is stage-bound: wagers are frozen now
	if err := m.SetFinalWager(0, 50); !errors.Is(err, ErrWrongStage) {
		t.Fatalf("want ErrWrongStage, got %v", err)
	}

	// answer gate: blank answers do not count
	if err := m.SetFinalAnswer(0, "   "); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := m.SetFinalAnswer(1, "who is ken thompson"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := m.AdvanceFinalStage(); !errors.Is(err, ErrStageNotReady) {
		t.Fatalf("blank answer should block reveal, got %v", err)
	}
	if err := m.SetFinalAnswer(0, "who is rob pike"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := m.AdvanceFinalStage(); err != nil {
		t.Fatalf("to reveal: %v", err)
	}

	// reveal gate: every team must be revealed before the podium
	if err := m.GradeFinalTeam(0, true); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("grading unrevealed team: want ErrNotOpen, got %v", err)
	}
	if err := m.RevealFinalTeam(0); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if err := m.AdvanceFinalStage(); !errors.Is(err, ErrStageNotReady) {
		t.Fatalf("want ErrStageNotReady, got %v", err)
	}
	if err := m.RevealFinalTeam(1); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if err := m.AdvanceFinalStage(); err != nil {
		t.Fatalf("to podium: %v", err)
	}
	if !m.Finished() {
		t.Fatalf("match should be finished")
	}
	if err := m.AdvanceFinalStage(); !errors.Is(err, ErrMatchCompleted) {
		t.Fatalf("want ErrMatchCompleted, got %v", err)
	}
}

func TestFinalGradeReversal(t *testing.T) {
	m := finalMatch(t, 1, 500)
	if err := m.SetFinalWager(0, 300); err != nil {
		t.Fatalf("wager: %v", err)
	}
	if err := m.AdvanceFinalStage(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := m.SetFinalAnswer(0, "what is plan 9"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := m.AdvanceFinalStage(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := m.RevealFinalTeam(0); err != nil {
		t.Fatalf("reveal: %v", err)
	}

	if err := m.GradeFinalTeam(0, false); err != nil {
		t.Fatalf("grade: %v", err)
	}
	if got := m.Ledger.Teams[0].Score; got != 200 {
		t.Fatalf("after incorrect: want 200, got %d", got)
	}

	// regrade flips the delta, not stacks it
	if err := m.GradeFinalTeam(0, true); err != nil {
		t.Fatalf("regrade: %v", err)
	}
	if got := m.Ledger.Teams[0].Score; got != 800 {
		t.Fatalf("after regrade correct: want 800, got %d", got)
	}

	// grading with the same verdict toggles the grade off
	if err := m.GradeFinalTeam(0, true); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if got := m.Ledger.Teams[0].Score; got != 500 {
		t.Fatalf("after toggle off: want 500, got %d", got)
	}
}

func TestFinalOpsOutsideFinalRound(t *testing.T) {
	m := newTestMatch(t, 1, nil, false)
	if err := m.SetFinalWager(0, 10); !errors.Is(err, ErrWrongStage) {
		t.Fatalf("want ErrWrongStage, got %v", err)
	}
	if err := m.RevealFinalTeam(0); !errors.Is(err, ErrWrongStage) {
		t.Fatalf("want ErrWrongStage, got %v", err)
	}
}
