package engine

type WaveState struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type LaneLayout struct {
	Lanes     map[Lane]WaveState
	MultiLane bool
}

// ComputeLaneState maps game length and player count to the wave layout.
// Up to six players share one lane; larger games split into top and bottom,
// each with a seven-wave track regardless of length.
func ComputeLaneState(length GameLength, playerCount int) LaneLayout {
	if playerCount > 6 {
		return LaneLayout{
			Lanes: map[Lane]WaveState{
				LaneTop:    {Current: 1, Total: 7},
				LaneBottom: {Current: 1, Total: 7},
			},
			MultiLane: true,
		}
	}
	total := 5
	if length == LengthQuick {
		total = 3
	}
	return LaneLayout{
		Lanes:     map[Lane]WaveState{LaneSingle: {Current: 1, Total: total}},
		MultiLane: false,
	}
}

// ComputeTeamLives returns the starting life total per team. The long-game
// curve dips at eight players; that matches the rulebook tables, so keep it.
func ComputeTeamLives(length GameLength, playerCount int) int {
	if length == LengthQuick {
		if playerCount <= 4 {
			return 4
		}
		return 5
	}
	switch {
	case playerCount <= 4:
		return 6
	case playerCount <= 6:
		return 8
	case playerCount <= 8:
		return 6
	default:
		return 7
	}
}
