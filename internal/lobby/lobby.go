// Package lobby runs one game session as an actor: a single goroutine owns
// the roster, the draft, the game clock and both countdown timers, applies
// commands through the engine reducers, and broadcasts versioned snapshots.
package lobby

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/guardsofatlantis/companion-backend/internal/engine"
	"github.com/guardsofatlantis/companion-backend/internal/heroes"
	"github.com/guardsofatlantis/companion-backend/internal/store"
	"github.com/guardsofatlantis/companion-backend/internal/timer"
)

type Stage string

const (
	StageSetup    Stage = "setup"
	StageDrafting Stage = "drafting"
	StagePlaying  Stage = "playing"
)

// Recorder is the match persistence contract; nil means no persistence.
type Recorder interface {
	RecordMatch(ctx context.Context, m *store.Match) error
}

type Options struct {
	Catalog          *heroes.Catalog
	Recorder         Recorder
	StrategyTimerSec int
	MoveTimerSec     int
	TickInterval     time.Duration // defaults to one second
	Rand             *rand.Rand    // defaults to a time-seeded source
	Log              *zap.Logger
}

type Msg interface{ isLobbyMsg() }

type FromClient struct {
	Cmd Command
}

func (FromClient) isLobbyMsg() {}

type Join struct {
	ClientID string
	Outbox   chan Snapshot // where this client wants to receive snapshots
}

func (Join) isLobbyMsg() {}

type Leave struct{ ClientID string }

func (Leave) isLobbyMsg() {}

type Shutdown struct{}

func (Shutdown) isLobbyMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isLobbyMsg() {}

// timerExpired re-enters the actor loop so timer-driven transitions go
// through the same reducer path as user commands.
type timerExpired struct{ phase engine.Phase }

func (timerExpired) isLobbyMsg() {}

type TimerView struct {
	Remaining int  `json:"remaining"`
	Active    bool `json:"active"`
}

// SessionState is the client-facing view of the whole session.
type SessionState struct {
	Stage         Stage              `json:"stage"`
	Length        engine.GameLength  `json:"length"`
	Expansions    []string           `json:"expansions,omitempty"`
	CoinSide      engine.Team        `json:"coinSide"`
	Roster        []engine.Player    `json:"roster"`
	Draft         *engine.DraftState `json:"draft,omitempty"`
	Game          *engine.GameState  `json:"game,omitempty"`
	StrategyTimer TimerView          `json:"strategyTimer"`
	MoveTimer     TimerView          `json:"moveTimer"`
	Sound         string             `json:"sound,omitempty"`
	Problems      []engine.Problem   `json:"problems,omitempty"`
	Recorded      bool               `json:"recorded"`
}

type Snapshot struct {
	Version int
	State   SessionState
}

type View struct {
	Version    int
	NumClients int
	State      SessionState
}

type Lobby struct {
	inbox   chan Msg
	opts    Options
	version int
	clients map[string]chan Snapshot
	ctx     context.Context
	cancel  context.CancelFunc

	stage      Stage
	length     engine.GameLength
	expansions []string
	coin       engine.Team
	roster     []engine.Player
	draft      engine.DraftState
	game       engine.GameState
	recorded   bool

	strategyTimer *timer.Countdown
	moveTimer     *timer.Countdown

	// transient, carried on the next snapshot only
	problems []engine.Problem
	sound    string
}

func NewLobby(parent context.Context, opts Options) *Lobby {
	if opts.Catalog == nil {
		opts.Catalog = heroes.Default()
	}
	if opts.StrategyTimerSec <= 0 {
		opts.StrategyTimerSec = 90
	}
	if opts.MoveTimerSec <= 0 {
		opts.MoveTimerSec = 60
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(parent)
	l := &Lobby{
		inbox:   make(chan Msg, 64),
		opts:    opts,
		clients: make(map[string]chan Snapshot),
		ctx:     ctx,
		cancel:  cancel,
		stage:   StageSetup,
		length:  engine.LengthLong,
		coin:    engine.TeamTitans,
	}
	l.strategyTimer = timer.New(opts.StrategyTimerSec, opts.TickInterval, func() {
		l.postExpiry(engine.PhaseStrategy)
	})
	l.moveTimer = timer.New(opts.MoveTimerSec, opts.TickInterval, func() {
		l.postExpiry(engine.PhaseMove)
	})

	go l.loop()
	return l
}

// Expose the inbox so tests or the WS layer can send messages.
func (l *Lobby) Inbox() chan<- Msg { return l.inbox }

func (l *Lobby) postExpiry(phase engine.Phase) {
	select {
	case l.inbox <- timerExpired{phase: phase}:
	case <-l.ctx.Done():
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
				msg.Outbox <- Snapshot{Version: l.version, State: l.view()}

			case Leave:
				// Closing the outbox here ends the client's writer goroutine.
				// A slow client may already have been dropped by broadcast,
				// so only close channels still in the map.
				if ch, ok := l.clients[msg.ClientID]; ok {
					close(ch)
					delete(l.clients, msg.ClientID)
				}

			case FromClient:
				if l.apply(msg.Cmd) {
					l.version++
					l.broadcast(Snapshot{Version: l.version, State: l.view()})
				}
				l.problems = nil
				l.sound = ""

			case timerExpired:
				if l.expire(msg.phase) {
					l.version++
					l.broadcast(Snapshot{Version: l.version, State: l.view()})
				}
				l.sound = ""

			case GetState:
				msg.Reply <- View{
					Version:    l.version,
					NumClients: len(l.clients),
					State:      l.view(),
				}

			case Shutdown:
				l.shutdown()
				return
			}
		}
	}
}

func (l *Lobby) shutdown() {
	l.strategyTimer.Pause()
	l.moveTimer.Pause()
	for id, ch := range l.clients {
		close(ch) // Tell client no more snapshots
		delete(l.clients, id)
	}
	l.cancel()
}

func (l *Lobby) broadcast(snap Snapshot) {
	for id, ch := range l.clients {
		select {
		case ch <- snap:
			// ok
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(l.clients, id)
		}
	}
}

func (l *Lobby) view() SessionState {
	s := SessionState{
		Stage:      l.stage,
		Length:     l.length,
		Expansions: l.expansions,
		CoinSide:   l.coin,
		Roster:     l.roster,
		StrategyTimer: TimerView{
			Remaining: l.strategyTimer.Remaining(),
			Active:    l.strategyTimer.Active(),
		},
		MoveTimer: TimerView{
			Remaining: l.moveTimer.Remaining(),
			Active:    l.moveTimer.Active(),
		},
		Sound:    l.sound,
		Problems: l.problems,
		Recorded: l.recorded,
	}
	if l.stage != StageSetup {
		d := l.draft
		s.Draft = &d
	}
	if l.stage == StagePlaying {
		g := l.game
		s.Game = &g
	}
	return s
}

// BuildMatchRecord shapes the persistence payload from a session view.
func BuildMatchRecord(state SessionState, winner engine.Team) *store.Match {
	doubleLanes := false
	if state.Game != nil {
		doubleLanes = state.Game.MultiLane
	}
	return store.BuildMatch(state.Roster, winner, state.Length, doubleLanes)
}
