package engine

type CommandType string

const (
	CmdOpenClue       CommandType = "OpenClue"
	CmdCloseClue      CommandType = "CloseClue"
	CmdReopenClue     CommandType = "ReopenClue"
	CmdMarkCorrect    CommandType = "MarkCorrect"
	CmdMarkIncorrect  CommandType = "MarkIncorrect"
	CmdSetWager       CommandType = "SetWager"
	CmdMarkStumper    CommandType = "MarkStumper"
	CmdAdvanceRound   CommandType = "AdvanceRound"
	CmdSetFinalWager  CommandType = "SetFinalWager"
	CmdSetFinalAnswer CommandType = "SetFinalAnswer"
	CmdAdvanceStage   CommandType = "AdvanceStage"
	CmdRevealFinal    CommandType = "RevealFinal"
	CmdGradeFinal     CommandType = "GradeFinal"
	CmdSelectTeam     CommandType = "SelectTeam"
	CmdAddTeam        CommandType = "AddTeam"
	CmdRemoveTeam     CommandType = "RemoveTeam"
	CmdResetScores    CommandType = "ResetScores"
	CmdResetMatch     CommandType = "ResetMatch"
)

// Command is the flat envelope the transport layer hands to Apply. Which
// fields matter depends on Type.
type Command struct {
	Type    CommandType
	Team    int
	Col     int
	Row     int
	Amount  int
	Text    string
	Flag    bool
	Force   bool
	TeamID  string
	Members []string
	Color   string
}

type EventType string

const (
	EvtClueOpened     EventType = "ClueOpened"
	EvtClueClosed     EventType = "ClueClosed"
	EvtClueReopened   EventType = "ClueReopened"
	EvtScoreChanged   EventType = "ScoreChanged"
	EvtWagerCommitted EventType = "WagerCommitted"
	EvtStumperMarked  EventType = "StumperMarked"
	EvtRoundAdvanced  EventType = "RoundAdvanced"
	EvtStageAdvanced  EventType = "StageAdvanced"
	EvtRosterChanged  EventType = "RosterChanged"
	EvtMatchReset     EventType = "MatchReset"
	EvtMatchCompleted EventType = "MatchCompleted"
)

type Event struct {
	Type        EventType
	Team        int
	Col         int
	Row         int
	Amount      int
	DailyDouble bool
	Round       Round
	Stage       FinalStage
}

// Apply dispatches a command against the match and reports what happened as
// events. State mutates in place; on error nothing changed and no events are
// emitted.
func (m *Match) Apply(cmd Command) ([]Event, error) {
	switch cmd.Type {
	case CmdOpenClue:
		info, err := m.OpenClue(cmd.Col, cmd.Row)
		if err != nil {
			return nil, err
		}
		return []Event{{Type: EvtClueOpened, Col: cmd.Col, Row: cmd.Row, Amount: info.Value, DailyDouble: info.DailyDouble}}, nil

	case CmdCloseClue:
		if err := m.CloseClue(); err != nil {
			return nil, err
		}
		return []Event{{Type: EvtClueClosed}}, nil

	case CmdReopenClue:
		if err := m.ReopenClue(cmd.Col, cmd.Row); err != nil {
			return nil, err
		}
		return []Event{{Type: EvtClueReopened, Col: cmd.Col, Row: cmd.Row}}, nil

	case CmdMarkCorrect:
		if err := m.MarkCorrect(cmd.Team); err != nil {
			return nil, err
		}
		return []Event{{Type: EvtScoreChanged, Team: cmd.Team}}, nil

	case CmdMarkIncorrect:
		if err := m.MarkIncorrect(cmd.Team); err != nil {
			return nil, err
		}
		return []Event{{Type: EvtScoreChanged, Team: cmd.Team}}, nil

	case CmdSetWager:
		if err := m.SetDailyDoubleWager(cmd.Amount); err != nil {
			return nil, err
		}
		return []Event{{Type: EvtWagerCommitted, Team: m.Current.DailyDoubleTeam, Amount: cmd.Amount}}, nil

	case CmdMarkStumper:
		if err := m.MarkTripleStumper(cmd.Col, cmd.Row, cmd.Flag); err != nil {
			return nil, err
		}
		return []Event{{Type: EvtStumperMarked, Col: cmd.Col, Row: cmd.Row}}, nil

	case CmdAdvanceRound:
		if err := m.AdvanceRound(cmd.Force); err != nil {
			return nil, err
		}
		evts := []Event{{Type: EvtRoundAdvanced, Round: m.Round}}
		if m.Round == FinalRound {
			evts = append(evts, Event{Type: EvtStageAdvanced, Stage: m.FinalStage})
		}
		return evts, nil

	case CmdSetFinalWager:
		if err := m.SetFinalWager(cmd.Team, cmd.Amount); err != nil {
			return nil, err
		}
		return []Event{{Type: EvtWagerCommitted, Team: cmd.Team, Amount: cmd.Amount}}, nil

	case CmdSetFinalAnswer:
		if err := m.SetFinalAnswer(cmd.Team, cmd.Text); err != nil {
			return nil, err
		}
		return []Event{{Type: EvtStageAdvanced, Stage: m.FinalStage, Team: cmd.Team}}, nil

	case CmdAdvanceStage:
		if err := m.AdvanceFinalStage(); err != nil {
			return nil, err
		}
		evts := []Event{{Type: EvtStageAdvanced, Stage: m.FinalStage}}
		if m.Finished() {
			evts = append(evts, Event{Type: EvtMatchCompleted})
		}
		return evts, nil

	case CmdRevealFinal:
		if err := m.RevealFinalTeam(cmd.Team); err != nil {
			return nil, err
		}
		return []Event{{Type: EvtStageAdvanced, Stage: m.FinalStage, Team: cmd.Team}}, nil

	case CmdGradeFinal:
		if err := m.GradeFinalTeam(cmd.Team, cmd.Flag); err != nil {
			return nil, err
		}
		return []Event{{Type: EvtScoreChanged, Team: cmd.Team}}, nil

	case CmdSelectTeam:
		if err := m.Ledger.SetSelected(cmd.Team); err != nil {
			return nil, err
		}
		return []Event{{Type: EvtRosterChanged}}, nil

	case CmdAddTeam:
		idx, err := m.Ledger.AddTeam(cmd.TeamID, cmd.Text, cmd.Members, cmd.Color)
		if err != nil {
			return nil, err
		}
		return []Event{{Type: EvtRosterChanged, Team: idx}}, nil

	case CmdRemoveTeam:
		if err := m.Ledger.RemoveTeam(cmd.Team); err != nil {
			return nil, err
		}
		return []Event{{Type: EvtRosterChanged}}, nil

	case CmdResetScores:
		m.Ledger.ResetScores()
		return []Event{{Type: EvtRosterChanged}}, nil

	case CmdResetMatch:
		if err := m.Reset(); err != nil {
			return nil, err
		}
		return []Event{{Type: EvtMatchReset, Round: m.Round}}, nil

	default:
		return nil, ErrUnsupportedCommand
	}
}
