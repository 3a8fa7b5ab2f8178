package engine

import "errors"

var ErrWrongTurn = errors.New("not this team's turn")
var ErrWrongPhase = errors.New("command not legal in current phase")
var ErrIllegalPick = errors.New("illegal hero pick")
var ErrIllegalBan = errors.New("illegal hero ban")
var ErrUnknownPlayer = errors.New("unknown player")
var ErrUnknownLane = errors.New("lane not part of current layout")
var ErrUnsupportedCommand = errors.New("unsupported command")
var ErrDraftCompleted = errors.New("draft already completed")
var ErrRosterFull = errors.New("roster is full")

type Team string

const (
	TeamTitans     Team = "titans"
	TeamAtlanteans Team = "atlanteans"
)

func (t Team) Other() Team {
	if t == TeamTitans {
		return TeamAtlanteans
	}
	return TeamTitans
}

type GameLength string

const (
	LengthQuick GameLength = "quick"
	LengthLong  GameLength = "long"
)

type Lane string

const (
	LaneSingle Lane = "single"
	LaneTop    Lane = "top"
	LaneBottom Lane = "bottom"
)

// Hero is a read-only catalog entry. The engine never mutates heroes; it only
// moves them between pools.
type Hero struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Roles       []string `json:"roles"`
	Complexity  int      `json:"complexity"` // 1..4
	Expansion   string   `json:"expansion"`
	Description string   `json:"description,omitempty"`
	Attack      int      `json:"attack"`
	Defence     int      `json:"defence"`
	Initiative  int      `json:"initiative"`
	Movement    int      `json:"movement"`
}

// Player IDs are 1-based and stable for the session. Lane stays empty until
// the roster grows past six players.
type Player struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Team Team   `json:"team"`
	Hero *Hero  `json:"hero,omitempty"`
	Lane Lane   `json:"lane,omitempty"`
}

type EventType string

const (
	EvtHeroPicked      EventType = "HeroPicked"
	EvtHeroBanned      EventType = "HeroBanned"
	EvtTurnPassed      EventType = "TurnPassed"
	EvtDraftCompleted  EventType = "DraftCompleted"
	EvtPhaseChanged    EventType = "PhaseChanged"
	EvtPlayerSelected  EventType = "PlayerSelected"
	EvtPlayerCompleted EventType = "PlayerCompleted"
	EvtAllPlayersMoved EventType = "AllPlayersMoved"
	EvtTurnAdvanced    EventType = "TurnAdvanced"
	EvtRoundAdvanced   EventType = "RoundAdvanced"
	EvtLifeAdjusted    EventType = "LifeAdjusted"
	EvtWaveAdvanced    EventType = "WaveAdvanced"
	EvtCoinFlipped     EventType = "CoinFlipped"
)

type Event struct {
	Type     EventType
	Team     Team
	PlayerID int
	HeroID   string
	Lane     Lane
	Phase    Phase
	Value    int
}
