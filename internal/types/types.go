package types

import "github.com/trivio-games/trivio-backend/internal/engine"

// ClientMessage is everything a client can send over the socket. Type picks
// the command; the rest of the fields are read as that command needs them.
type ClientMessage struct {
	Type    string   `json:"type"`
	Team    int      `json:"team,omitempty"`
	Col     int      `json:"col,omitempty"`
	Row     int      `json:"row,omitempty"`
	Amount  int      `json:"amount,omitempty"`
	Text    string   `json:"text,omitempty"`
	Flag    bool     `json:"flag,omitempty"`
	Force   bool     `json:"force,omitempty"`
	TeamID  string   `json:"team_id,omitempty"`
	Members []string `json:"members,omitempty"`
	Color   string   `json:"color,omitempty"`
}

// SpeechStarted / SpeechEnded are presentation notices, not engine commands:
// the lobby pauses the clue countdown while speech is active.
const (
	MsgSpeechStarted = "SpeechStarted"
	MsgSpeechEnded   = "SpeechEnded"
)

type ServerMessage struct {
	Type      string     `json:"type"` // "StateSnapshot" | "Error"
	Version   int        `json:"version,omitempty"`
	State     *StateView `json:"state,omitempty"`
	Error     string     `json:"error,omitempty"`
	ErrorKind string     `json:"error_kind,omitempty"`
}

// ToCommand maps a client message onto an engine command. The boolean is
// false for unknown message types.
func ToCommand(m ClientMessage) (engine.Command, bool) {
	t := engine.CommandType(m.Type)
	switch t {
	case engine.CmdOpenClue, engine.CmdCloseClue, engine.CmdReopenClue,
		engine.CmdMarkCorrect, engine.CmdMarkIncorrect, engine.CmdSetWager,
		engine.CmdMarkStumper, engine.CmdAdvanceRound, engine.CmdSetFinalWager,
		engine.CmdSetFinalAnswer, engine.CmdAdvanceStage, engine.CmdRevealFinal,
		engine.CmdGradeFinal, engine.CmdSelectTeam, engine.CmdAddTeam,
		engine.CmdRemoveTeam, engine.CmdResetScores, engine.CmdResetMatch:
		return engine.Command{
			Type:    t,
			Team:    m.Team,
			Col:     m.Col,
			Row:     m.Row,
			Amount:  m.Amount,
			Text:    m.Text,
			Flag:    m.Flag,
			Force:   m.Force,
			TeamID:  m.TeamID,
			Members: m.Members,
			Color:   m.Color,
		}, true
	default:
		return engine.Command{}, false
	}
}
