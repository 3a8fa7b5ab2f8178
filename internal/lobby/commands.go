package lobby

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/guardsofatlantis/companion-backend/internal/engine"
)

// Command is the wire-level union of everything a client may ask for. Which
// fields matter depends on Type; the rest are ignored.
type Command struct {
	Type       string
	Name       string
	PlayerID   int
	HeroID     string
	Mode       engine.DraftMode
	Length     engine.GameLength
	Expansions []string
	Team       engine.Team
	Delta      int
	Lane       engine.Lane
	Player     int // roster index, clock commands
	Timer      string
	Winner     engine.Team
}

const (
	CmdAddPlayer          = "AddPlayer"
	CmdRemovePlayer       = "RemovePlayer"
	CmdRenamePlayer       = "RenamePlayer"
	CmdSetLength          = "SetLength"
	CmdSetExpansions      = "SetExpansions"
	CmdFlipCoin           = "FlipCoin"
	CmdStartDraft         = "StartDraft"
	CmdPickHero           = "PickHero"
	CmdBanHero            = "BanHero"
	CmdStartGame          = "StartGame"
	CmdStartStrategy      = "StartStrategy"
	CmdEndStrategy        = "EndStrategy"
	CmdSelectPlayer       = "SelectPlayer"
	CmdMarkPlayerComplete = "MarkPlayerComplete"
	CmdStartNextTurn      = "StartNextTurn"
	CmdAdjustTeamLife     = "AdjustTeamLife"
	CmdIncrementWave      = "IncrementWave"
	CmdPauseTimer         = "PauseTimer"
	CmdResumeTimer        = "ResumeTimer"
	CmdRecordMatch        = "RecordMatch"
)

// apply runs one client command against the session. It reports whether a
// snapshot should go out; rejected commands leave the state untouched and
// present to clients as silent no-ops.
func (l *Lobby) apply(cmd Command) bool {
	switch cmd.Type {
	case CmdAddPlayer:
		if l.stage != StageSetup {
			return false
		}
		roster, err := engine.AddPlayer(l.roster, cmd.Name)
		if err != nil {
			return l.reject(cmd, err)
		}
		l.roster = roster
		l.sound = "buttonClick"
		return true

	case CmdRemovePlayer:
		if l.stage != StageSetup {
			return false
		}
		roster, err := engine.RemovePlayer(l.roster, cmd.PlayerID)
		if err != nil {
			return l.reject(cmd, err)
		}
		l.roster = roster
		return true

	case CmdRenamePlayer:
		if l.stage != StageSetup {
			return false
		}
		roster, err := engine.RenamePlayer(l.roster, cmd.PlayerID, cmd.Name)
		if err != nil {
			return l.reject(cmd, err)
		}
		l.roster = roster
		return true

	case CmdSetLength:
		if l.stage != StageSetup {
			return false
		}
		if cmd.Length != engine.LengthQuick && cmd.Length != engine.LengthLong {
			return false
		}
		l.length = cmd.Length
		return true

	case CmdSetExpansions:
		if l.stage != StageSetup {
			return false
		}
		l.expansions = cmd.Expansions
		return true

	case CmdFlipCoin:
		if l.stage == StagePlaying {
			return l.applyClock(engine.ClockCommand{Type: engine.CmdFlipCoin})
		}
		// Flipping mid-draft would desync the resolved slot order.
		if l.stage != StageSetup {
			return false
		}
		l.coin = l.coin.Other()
		l.sound = "coinFlip"
		return true

	case CmdStartDraft:
		return l.startDraft(cmd.Mode)

	case CmdPickHero:
		if l.stage != StageDrafting {
			return false
		}
		events, ns, err := engine.ApplyDraft(l.draft, engine.DraftCommand{
			Type:     engine.CmdPickHero,
			PlayerID: cmd.PlayerID,
			HeroID:   cmd.HeroID,
		})
		if err != nil {
			return l.reject(cmd, err)
		}
		l.draft = ns
		l.sound = "heroPicked"
		if engine.ContainsEvent(events, engine.EvtDraftCompleted) {
			l.sound = "draftComplete"
		}
		return true

	case CmdBanHero:
		if l.stage != StageDrafting {
			return false
		}
		_, ns, err := engine.ApplyDraft(l.draft, engine.DraftCommand{
			Type:   engine.CmdBanHero,
			HeroID: cmd.HeroID,
		})
		if err != nil {
			return l.reject(cmd, err)
		}
		l.draft = ns
		l.sound = "heroBanned"
		return true

	case CmdStartGame:
		return l.startGame()

	case CmdStartStrategy:
		return l.applyClock(engine.ClockCommand{Type: engine.CmdStartStrategy})

	case CmdEndStrategy:
		return l.applyClock(engine.ClockCommand{Type: engine.CmdEndStrategy})

	case CmdSelectPlayer:
		return l.applyClock(engine.ClockCommand{Type: engine.CmdSelectPlayer, Player: cmd.Player})

	case CmdMarkPlayerComplete:
		return l.applyClock(engine.ClockCommand{Type: engine.CmdMarkPlayerComplete, Player: cmd.Player})

	case CmdStartNextTurn:
		return l.applyClock(engine.ClockCommand{Type: engine.CmdStartNextTurn})

	case CmdAdjustTeamLife:
		return l.applyClock(engine.ClockCommand{Type: engine.CmdAdjustTeamLife, Team: cmd.Team, Delta: cmd.Delta})

	case CmdIncrementWave:
		return l.applyClock(engine.ClockCommand{Type: engine.CmdIncrementWave, Lane: cmd.Lane})

	case CmdPauseTimer, CmdResumeTimer:
		return l.adjustTimer(cmd)

	case CmdRecordMatch:
		return l.recordMatch(cmd.Winner)

	default:
		l.opts.Log.Debug("unknown command", zap.String("type", cmd.Type))
		return false
	}
}

func (l *Lobby) reject(cmd Command, err error) bool {
	l.opts.Log.Debug("command rejected",
		zap.String("type", cmd.Type),
		zap.Error(err))
	return false
}

func (l *Lobby) startDraft(mode engine.DraftMode) bool {
	if l.stage != StageSetup {
		return false
	}
	pool := l.opts.Catalog.FilterByExpansions(l.expansions)

	problems := engine.ValidateRoster(l.roster)
	problems = append(problems, engine.ValidateDraftPool(mode, len(l.roster), len(pool))...)
	if len(problems) > 0 {
		l.problems = problems
		return true
	}

	switch mode {
	case engine.ModeSingle:
		l.draft = engine.NewSingleDraft(l.roster, pool, l.coin, l.opts.Rand)
	case engine.ModeRandom:
		l.draft = engine.NewRandomDraft(l.roster, pool, l.coin, l.opts.Rand)
	case engine.ModePickBan:
		l.draft = engine.NewPickBanDraft(l.roster, pool, l.coin)
	default:
		return false
	}
	l.stage = StageDrafting
	l.sound = "draftStart"
	return true
}

// startGame writes the draft result into the roster, validates hero
// uniqueness, and replaces the clock state with a fresh one.
func (l *Lobby) startGame() bool {
	if l.stage != StageDrafting || !l.draft.Complete {
		return false
	}
	assignments := l.draft.HeroAssignments()
	roster := make([]engine.Player, len(l.roster))
	copy(roster, l.roster)
	for i := range roster {
		if hero, ok := assignments[roster[i].ID]; ok {
			h := hero
			roster[i].Hero = &h
		}
	}
	if problems := engine.ValidateAssignments(roster); len(problems) > 0 {
		l.problems = problems
		return true
	}

	l.roster = roster
	l.game = engine.NewGameState(l.length, len(roster), l.coin)
	l.stage = StagePlaying
	l.recorded = false
	l.strategyTimer.Pause()
	l.strategyTimer.Reset()
	l.moveTimer.Pause()
	l.moveTimer.Reset()
	l.sound = "gameStart"
	return true
}

func (l *Lobby) applyClock(cmd engine.ClockCommand) bool {
	if l.stage != StagePlaying {
		return false
	}
	events, ns, err := engine.ApplyClock(l.game, cmd)
	if err != nil {
		l.opts.Log.Debug("clock command rejected",
			zap.String("type", string(cmd.Type)),
			zap.Error(err))
		return false
	}
	l.game = ns
	l.applyTimerEffects(events)
	if engine.ContainsEvent(events, engine.EvtPhaseChanged) {
		l.sound = "phaseChange"
	}
	// A saturated wave increment returns no events and no error; nothing to
	// show, so skip the broadcast.
	return len(events) > 0
}

// applyTimerEffects arms and parks the countdowns as phases change. The
// timers never mutate game state themselves; they only post expiry messages.
func (l *Lobby) applyTimerEffects(events []engine.Event) {
	for _, ev := range events {
		if ev.Type != engine.EvtPhaseChanged {
			continue
		}
		switch ev.Phase {
		case engine.PhaseStrategy:
			l.moveTimer.Pause()
			l.moveTimer.Reset()
			l.strategyTimer.Reset()
			l.strategyTimer.Start()
		case engine.PhaseMove:
			l.strategyTimer.Pause()
			l.strategyTimer.Reset()
			l.moveTimer.Reset()
			l.moveTimer.Start()
		case engine.PhaseTurnEnd:
			l.strategyTimer.Pause()
			l.moveTimer.Pause()
		}
	}
}

func (l *Lobby) adjustTimer(cmd Command) bool {
	if l.stage != StagePlaying {
		return false
	}
	target := l.strategyTimer
	switch cmd.Timer {
	case "strategy":
		target = l.strategyTimer
	case "move":
		target = l.moveTimer
	default:
		return false
	}
	if cmd.Type == CmdPauseTimer {
		target.Pause()
	} else {
		target.Resume()
	}
	return true
}

// expire handles a countdown reaching zero. The strategy timer ends the
// strategy phase; the move timer auto-completes whoever is active, and is
// dropped when nobody is.
func (l *Lobby) expire(phase engine.Phase) bool {
	if l.stage != StagePlaying {
		return false
	}
	switch phase {
	case engine.PhaseStrategy:
		if l.game.Phase != engine.PhaseStrategy {
			return false
		}
		return l.applyClock(engine.ClockCommand{Type: engine.CmdEndStrategy})
	case engine.PhaseMove:
		if l.game.Phase != engine.PhaseMove || l.game.ActiveHero < 0 {
			return false
		}
		return l.applyClock(engine.ClockCommand{
			Type:   engine.CmdMarkPlayerComplete,
			Player: l.game.ActiveHero,
		})
	}
	return false
}

func (l *Lobby) recordMatch(winner engine.Team) bool {
	if l.stage != StagePlaying || l.recorded {
		return false
	}
	if winner != engine.TeamTitans && winner != engine.TeamAtlanteans {
		return false
	}
	if l.opts.Recorder == nil {
		l.problems = []engine.Problem{{
			Code:    "persistence-unavailable",
			Message: "match history storage is not configured",
		}}
		return true
	}
	record := BuildMatchRecord(l.view(), winner)
	ctx, cancel := context.WithTimeout(l.ctx, 5*time.Second)
	defer cancel()
	if err := l.opts.Recorder.RecordMatch(ctx, record); err != nil {
		l.problems = []engine.Problem{{
			Code:    "record-failed",
			Message: "saving the match failed, try again",
		}}
		return true
	}
	l.recorded = true
	return true
}
