package lobby

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/trivio-games/trivio-backend/internal/engine"
	"github.com/trivio-games/trivio-backend/internal/types"
)

type Msg interface{ isLobbyMsg() }

type FromClient struct {
	ClientID string
	Cmd      engine.Command
}

func (FromClient) isLobbyMsg() {}

type Join struct {
	ClientID string
	Outbox   chan Outbound // where this client wants to receive snapshots
}

func (Join) isLobbyMsg() {}

type Leave struct{ ClientID string }

func (Leave) isLobbyMsg() {}

// Tick advances the clue countdown. Sent by the lobby's own ticker; elapsed
// time only counts while no speech is in progress.
type Tick struct{ Elapsed time.Duration }

func (Tick) isLobbyMsg() {}

// SpeechActive is the presentation layer reporting that the clue is (or is
// no longer) being read aloud. The countdown freezes while it is.
type SpeechActive struct{ Active bool }

func (SpeechActive) isLobbyMsg() {}

type Shutdown struct{}

func (Shutdown) isLobbyMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isLobbyMsg() {}

// Outbound is what a client connection receives: either a snapshot broadcast
// or an error addressed to that client alone.
type Outbound struct {
	Snapshot *Snapshot
	Error    *CommandError
}

type Snapshot struct {
	Version int
	State   types.StateView
	Events  []engine.Event
}

// CommandError carries the engine's typed rejection back to the client that
// sent the command, so the UI can render a distinct message per kind.
type CommandError struct {
	Kind    string
	Message string
}

type View struct {
	Version    int
	NumClients int
	State      types.StateView
	Finished   bool
}

// SpeechNotifier is told, fire-and-forget, when a clue opens so it can be
// read aloud. The lobby never waits on it.
type SpeechNotifier interface {
	Speak(text string)
}

// SummarySink receives the final record once the match reaches the podium.
// Called on its own goroutine; the lobby loop never blocks on persistence.
type SummarySink interface {
	SaveSummary(ctx context.Context, code string, sum engine.Summary) error
}

// Deps are the lobby's collaborators. Speech and Sink may be nil.
type Deps struct {
	Logger *zap.Logger
	Speech SpeechNotifier
	Sink   SummarySink
}

type Lobby struct {
	code    string
	inbox   chan Msg
	match   *engine.Match
	content types.SetContent
	version int
	clients map[string]chan Outbound
	timer   *engine.ClueTimer
	deps    Deps
	emitted bool
	ctx     context.Context
	cancel  context.CancelFunc
}

const tickInterval = time.Second

func NewLobby(parent context.Context, code string, match *engine.Match, content types.SetContent, clueTime time.Duration, deps Deps) *Lobby {
	ctx, cancel := context.WithCancel(parent)
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	l := &Lobby{
		code:    code,
		inbox:   make(chan Msg, 64), // Small buffer
		match:   match,
		content: content,
		clients: make(map[string]chan Outbound),
		timer:   engine.NewClueTimer(clueTime),
		deps:    deps,
		ctx:     ctx,
		cancel:  cancel,
	}

	go l.loop()
	go l.tickLoop()
	return l
}

func (l *Lobby) tickLoop() {
	t := time.NewTicker(tickInterval)
	defer t.Stop()
	for {
		select {
		case <-l.ctx.Done():
			return
		case <-t.C:
			select {
			case l.inbox <- Tick{Elapsed: tickInterval}:
			default:
				// inbox full, skip the beat rather than block
			}
		}
	}
}

func (l *Lobby) loop() {
	for {
		select {
		case <-l.ctx.Done():
			l.shutdown()
			return

		case m := <-l.inbox:
			switch msg := m.(type) {
			case Join:
				l.clients[msg.ClientID] = msg.Outbox
				snap := l.snapshot(nil)
				msg.Outbox <- Outbound{Snapshot: &snap}

			case Leave:
				delete(l.clients, msg.ClientID)

			case FromClient:
				l.handleCommand(msg)

			case Tick:
				l.handleTick(msg.Elapsed)

			case SpeechActive:
				l.timer.Paused = msg.Active

			case GetState:
				msg.Reply <- View{
					Version:    l.version,
					NumClients: len(l.clients),
					State:      types.NewStateView(l.match, l.content, l.timer.Remaining().Milliseconds()),
					Finished:   l.match.Finished(),
				}

			case Shutdown:
				l.shutdown()
				return
			}
		}
	}
}

func (l *Lobby) handleCommand(msg FromClient) {
	events, err := l.match.Apply(msg.Cmd)
	if err != nil {
		l.deps.Logger.Debug("command rejected",
			zap.String("lobby", l.code),
			zap.String("client", msg.ClientID),
			zap.String("cmd", string(msg.Cmd.Type)),
			zap.Error(err))
		l.replyError(msg.ClientID, err)
		return
	}

	for _, evt := range events {
		switch evt.Type {
		case engine.EvtClueOpened:
			l.timer.Reset()
			l.speakClue(evt)
		case engine.EvtClueClosed, engine.EvtClueReopened, engine.EvtRoundAdvanced, engine.EvtMatchReset:
			l.timer.Reset()
		case engine.EvtMatchCompleted:
			l.emitSummary()
		}
	}

	l.version++
	l.broadcast(l.snapshot(events))
}

func (l *Lobby) handleTick(elapsed time.Duration) {
	if l.match.Current == nil || l.timer.Expired() {
		return
	}
	l.timer.Tick(elapsed)
	// Expiry is advisory: the presentation layer decides what a run-out
	// clock means, engine state does not change.
	l.version++
	l.broadcast(l.snapshot(nil))
}

func (l *Lobby) speakClue(evt engine.Event) {
	if l.deps.Speech == nil {
		return
	}
	roundIdx := 0
	if l.match.Round == engine.RoundTwo {
		roundIdx = 1
	}
	if text, ok := l.content.ClueAt(roundIdx, evt.Col, evt.Row); ok {
		l.deps.Speech.Speak(text.Clue)
	}
}

// emitSummary hands the final record to the sink exactly once, off-loop.
func (l *Lobby) emitSummary() {
	if l.emitted || l.deps.Sink == nil {
		return
	}
	l.emitted = true
	sum := l.match.Summary(time.Now())
	code, sink, log := l.code, l.deps.Sink, l.deps.Logger
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := sink.SaveSummary(ctx, code, sum); err != nil {
			log.Error("persisting match summary", zap.String("lobby", code), zap.Error(err))
		}
	}()
}

func (l *Lobby) replyError(clientID string, err error) {
	ch, ok := l.clients[clientID]
	if !ok {
		return
	}
	out := Outbound{Error: &CommandError{Kind: errorKind(err), Message: err.Error()}}
	select {
	case ch <- out:
	default:
		close(ch)
		delete(l.clients, clientID)
	}
}

func (l *Lobby) snapshot(events []engine.Event) Snapshot {
	return Snapshot{
		Version: l.version,
		State:   types.NewStateView(l.match, l.content, l.timer.Remaining().Milliseconds()),
		Events:  events,
	}
}

func (l *Lobby) shutdown() {
	for id, ch := range l.clients {
		close(ch) // Tell client no more snapshots
		delete(l.clients, id)
	}
	l.cancel()
}

func (l *Lobby) broadcast(snap Snapshot) {
	for id, ch := range l.clients {
		select {
		case ch <- Outbound{Snapshot: &snap}:
			//ok
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(l.clients, id)
		}
	}
}

// Expose the inbox so tests or the WS layer can send messages.
func (l *Lobby) Inbox() chan<- Msg { return l.inbox }

// errorKind names the engine's typed failures for the wire, one string per
// sentinel so the UI can tell cases apart.
func errorKind(err error) string {
	switch {
	case errors.Is(err, engine.ErrInvalidIndex):
		return "invalid_index"
	case errors.Is(err, engine.ErrDuplicateTeam):
		return "duplicate_team"
	case errors.Is(err, engine.ErrAlreadyUsed):
		return "already_used"
	case errors.Is(err, engine.ErrNotUsed):
		return "not_used"
	case errors.Is(err, engine.ErrNotOpen):
		return "not_open"
	case errors.Is(err, engine.ErrInvalidBoard):
		return "invalid_board"
	case errors.Is(err, engine.ErrRoundNotComplete):
		return "round_not_complete"
	case errors.Is(err, engine.ErrInvalidWager):
		return "invalid_wager"
	case errors.Is(err, engine.ErrWagerNotSet):
		return "wager_not_set"
	case errors.Is(err, engine.ErrWrongStage):
		return "wrong_stage"
	case errors.Is(err, engine.ErrStageNotReady):
		return "stage_not_ready"
	case errors.Is(err, engine.ErrNoOpenClue):
		return "no_open_clue"
	case errors.Is(err, engine.ErrWrongTeam):
		return "wrong_team"
	case errors.Is(err, engine.ErrMatchCompleted):
		return "match_completed"
	default:
		return "unsupported"
	}
}
