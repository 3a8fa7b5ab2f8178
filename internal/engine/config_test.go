package engine

import "testing"

func TestComputeLaneState(t *testing.T) {
	cases := []struct {
		name      string
		length    GameLength
		players   int
		wantLanes map[Lane]WaveState
		wantMulti bool
	}{
		{
			name:      "quick four players",
			length:    LengthQuick,
			players:   4,
			wantLanes: map[Lane]WaveState{LaneSingle: {Current: 1, Total: 3}},
		},
		{
			name:      "long six players",
			length:    LengthLong,
			players:   6,
			wantLanes: map[Lane]WaveState{LaneSingle: {Current: 1, Total: 5}},
		},
		{
			name:    "long eight players",
			length:  LengthLong,
			players: 8,
			wantLanes: map[Lane]WaveState{
				LaneTop:    {Current: 1, Total: 7},
				LaneBottom: {Current: 1, Total: 7},
			},
			wantMulti: true,
		},
		{
			name:    "quick ten players still seven waves",
			length:  LengthQuick,
			players: 10,
			wantLanes: map[Lane]WaveState{
				LaneTop:    {Current: 1, Total: 7},
				LaneBottom: {Current: 1, Total: 7},
			},
			wantMulti: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeLaneState(tc.length, tc.players)
			if got.MultiLane != tc.wantMulti {
				t.Fatalf("MultiLane: got %v, want %v", got.MultiLane, tc.wantMulti)
			}
			if len(got.Lanes) != len(tc.wantLanes) {
				t.Fatalf("lanes: got %v, want %v", got.Lanes, tc.wantLanes)
			}
			for lane, want := range tc.wantLanes {
				if got.Lanes[lane] != want {
					t.Fatalf("lane %s: got %+v, want %+v", lane, got.Lanes[lane], want)
				}
			}
		})
	}
}

func TestComputeTeamLives(t *testing.T) {
	cases := []struct {
		length  GameLength
		players int
		want    int
	}{
		{LengthQuick, 2, 4},
		{LengthQuick, 4, 4},
		{LengthQuick, 6, 5},
		{LengthQuick, 10, 5},
		{LengthLong, 4, 6},
		{LengthLong, 6, 8},
		// The dip at eight players is the rulebook's own table.
		{LengthLong, 8, 6},
		{LengthLong, 10, 7},
	}

	for _, tc := range cases {
		got := ComputeTeamLives(tc.length, tc.players)
		if got != tc.want {
			t.Fatalf("ComputeTeamLives(%s, %d): got %d, want %d", tc.length, tc.players, got, tc.want)
		}
	}
}

func TestConfigIsDeterministic(t *testing.T) {
	for _, length := range []GameLength{LengthQuick, LengthLong} {
		for players := 4; players <= 10; players += 2 {
			a := ComputeLaneState(length, players)
			b := ComputeLaneState(length, players)
			if a.MultiLane != b.MultiLane || len(a.Lanes) != len(b.Lanes) {
				t.Fatalf("ComputeLaneState(%s, %d) not stable", length, players)
			}
			if ComputeTeamLives(length, players) != ComputeTeamLives(length, players) {
				t.Fatalf("ComputeTeamLives(%s, %d) not stable", length, players)
			}
		}
	}
}
