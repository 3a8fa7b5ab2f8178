package types

import "github.com/guardsofatlantis/companion-backend/internal/lobby"

type ClientMessage struct {
	Type       string   `json:"type"`
	Name       string   `json:"name,omitempty"`
	PlayerID   int      `json:"player_id,omitempty"`
	HeroID     string   `json:"hero_id,omitempty"`
	Mode       string   `json:"mode,omitempty"`
	Length     string   `json:"length,omitempty"`
	Expansions []string `json:"expansions,omitempty"`
	Team       string   `json:"team,omitempty"`
	Delta      int      `json:"delta,omitempty"`
	Lane       string   `json:"lane,omitempty"`
	Player     int      `json:"player,omitempty"`
	Timer      string   `json:"timer,omitempty"`
	Winner     string   `json:"winner,omitempty"`
}

type ServerMessage struct {
	Type    string              `json:"type"` // "StateSnapshot" | "Error"
	Version int                 `json:"version,omitempty"`
	State   *lobby.SessionState `json:"state,omitempty"`
	Error   string              `json:"error,omitempty"`
}
