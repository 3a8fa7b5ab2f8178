package engine

type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhaseStrategy Phase = "strategy"
	PhaseMove     Phase = "move"
	PhaseTurnEnd  Phase = "turn-end"
)

const TurnsPerRound = 4

// GameState is the live match position. Turn completion uses the
// completed-set model: players may act in any order, and the turn ends once
// every roster index has been marked complete.
type GameState struct {
	Round      int                `json:"round"`
	Turn       int                `json:"turn"` // 1..TurnsPerRound
	Length     GameLength         `json:"length"`
	Waves      map[Lane]WaveState `json:"waves"`
	Lives      map[Team]int       `json:"lives"`
	Phase      Phase              `json:"phase"`
	ActiveHero int                `json:"activeHero"` // roster index, -1 when nobody acts
	CoinSide   Team               `json:"coinSide"`
	MultiLane  bool               `json:"multiLane"`
	Completed  map[int]bool       `json:"completed"`
	AllMoved   bool               `json:"allMoved"`
	RosterSize int                `json:"rosterSize"`
}

// NewGameState builds the initial position from the computed configuration.
func NewGameState(length GameLength, playerCount int, coinSide Team) GameState {
	layout := ComputeLaneState(length, playerCount)
	lives := ComputeTeamLives(length, playerCount)
	return GameState{
		Round:      1,
		Turn:       1,
		Length:     length,
		Waves:      layout.Lanes,
		Lives:      map[Team]int{TeamTitans: lives, TeamAtlanteans: lives},
		Phase:      PhaseSetup,
		ActiveHero: -1,
		CoinSide:   coinSide,
		MultiLane:  layout.MultiLane,
		Completed:  map[int]bool{},
		RosterSize: playerCount,
	}
}

type ClockCommandType string

const (
	CmdStartStrategy      ClockCommandType = "StartStrategy"
	CmdEndStrategy        ClockCommandType = "EndStrategy"
	CmdSelectPlayer       ClockCommandType = "SelectPlayer"
	CmdMarkPlayerComplete ClockCommandType = "MarkPlayerComplete"
	CmdStartNextTurn      ClockCommandType = "StartNextTurn"
	CmdAdjustTeamLife     ClockCommandType = "AdjustTeamLife"
	CmdIncrementWave      ClockCommandType = "IncrementWave"
	CmdFlipCoin           ClockCommandType = "FlipCoin"
)

type ClockCommand struct {
	Type   ClockCommandType
	Player int // roster index
	Team   Team
	Delta  int
	Lane   Lane
}

// ApplyClock advances the live game clock. Like the draft reducer it returns
// a fresh state; the old value stays usable on error.
func ApplyClock(s GameState, cmd ClockCommand) ([]Event, GameState, error) {
	ns := s

	switch cmd.Type {
	case CmdStartStrategy:
		ns.Phase = PhaseStrategy
		ns.ActiveHero = -1
		return []Event{{Type: EvtPhaseChanged, Phase: PhaseStrategy}}, ns, nil

	case CmdEndStrategy:
		if s.Phase != PhaseStrategy {
			return nil, s, ErrWrongPhase
		}
		ns.Phase = PhaseMove
		ns.ActiveHero = -1
		return []Event{{Type: EvtPhaseChanged, Phase: PhaseMove}}, ns, nil

	case CmdSelectPlayer:
		if s.Phase != PhaseMove {
			return nil, s, ErrWrongPhase
		}
		if cmd.Player < 0 || cmd.Player >= s.RosterSize {
			return nil, s, ErrUnknownPlayer
		}
		if s.ActiveHero != -1 || s.Completed[cmd.Player] {
			return nil, s, ErrWrongTurn
		}
		ns.ActiveHero = cmd.Player
		return []Event{{Type: EvtPlayerSelected, PlayerID: cmd.Player}}, ns, nil

	case CmdMarkPlayerComplete:
		if s.Phase != PhaseMove {
			return nil, s, ErrWrongPhase
		}
		if cmd.Player < 0 || cmd.Player >= s.RosterSize {
			return nil, s, ErrUnknownPlayer
		}
		if s.Completed[cmd.Player] {
			return nil, s, ErrWrongTurn
		}
		ns.Completed = cloneSet(s.Completed)
		ns.Completed[cmd.Player] = true
		if ns.ActiveHero == cmd.Player {
			ns.ActiveHero = -1
		}
		events := []Event{{Type: EvtPlayerCompleted, PlayerID: cmd.Player}}
		if len(ns.Completed) == ns.RosterSize {
			ns.ActiveHero = -1
			ns.Phase = PhaseTurnEnd
			ns.AllMoved = true
			events = append(events,
				Event{Type: EvtAllPlayersMoved},
				Event{Type: EvtPhaseChanged, Phase: PhaseTurnEnd},
			)
		}
		return events, ns, nil

	case CmdStartNextTurn:
		ns.Turn++
		events := []Event{{Type: EvtTurnAdvanced, Value: ns.Turn}}
		if ns.Turn > TurnsPerRound {
			ns.Round++
			ns.Turn = 1
			events = append(events, Event{Type: EvtRoundAdvanced, Value: ns.Round})
		}
		ns.Phase = PhaseStrategy
		ns.ActiveHero = -1
		ns.Completed = map[int]bool{}
		ns.AllMoved = false
		events = append(events, Event{Type: EvtPhaseChanged, Phase: PhaseStrategy})
		return events, ns, nil

	case CmdAdjustTeamLife:
		if cmd.Team != TeamTitans && cmd.Team != TeamAtlanteans {
			return nil, s, ErrUnsupportedCommand
		}
		lives := s.Lives[cmd.Team] + cmd.Delta
		if lives < 0 {
			lives = 0
		}
		ns.Lives = cloneLives(s.Lives)
		ns.Lives[cmd.Team] = lives
		return []Event{{Type: EvtLifeAdjusted, Team: cmd.Team, Value: lives}}, ns, nil

	case CmdIncrementWave:
		wave, ok := s.Waves[cmd.Lane]
		if !ok {
			return nil, s, ErrUnknownLane
		}
		if wave.Current >= wave.Total {
			// Saturated: absorb silently.
			return nil, s, nil
		}
		wave.Current++
		ns.Waves = cloneWaves(s.Waves)
		ns.Waves[cmd.Lane] = wave
		return []Event{{Type: EvtWaveAdvanced, Lane: cmd.Lane, Value: wave.Current}}, ns, nil

	case CmdFlipCoin:
		ns.CoinSide = s.CoinSide.Other()
		return []Event{{Type: EvtCoinFlipped, Team: ns.CoinSide}}, ns, nil

	default:
		return nil, s, ErrUnsupportedCommand
	}
}

func cloneSet(in map[int]bool) map[int]bool {
	out := make(map[int]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneLives(in map[Team]int) map[Team]int {
	out := make(map[Team]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneWaves(in map[Lane]WaveState) map[Lane]WaveState {
	out := make(map[Lane]WaveState, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
