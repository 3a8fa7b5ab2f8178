package engine

import "testing"

func grow(t *testing.T, n int) []Player {
	t.Helper()
	var roster []Player
	names := []string{"ann", "ben", "cam", "dee", "eli", "fay", "gus", "hal", "ivy", "joy"}
	for i := 0; i < n; i++ {
		var err error
		roster, err = AddPlayer(roster, names[i])
		if err != nil {
			t.Fatalf("AddPlayer %d: %v", i+1, err)
		}
	}
	return roster
}

func TestAddPlayerBalancesTeams(t *testing.T) {
	roster := grow(t, 6)
	if teamSize(roster, TeamTitans) != 3 || teamSize(roster, TeamAtlanteans) != 3 {
		t.Fatalf("teams unbalanced: %+v", roster)
	}
	for _, p := range roster {
		if p.Lane != "" {
			t.Fatalf("player %d has lane %q before the seventh addition", p.ID, p.Lane)
		}
	}
}

func TestSeventhPlayerAssignsLanesRetroactively(t *testing.T) {
	roster := grow(t, 7)
	for _, p := range roster {
		if p.Lane != LaneTop && p.Lane != LaneBottom {
			t.Fatalf("player %d has no lane after the seventh addition", p.ID)
		}
	}
	// Both lanes must see both teams.
	for _, team := range []Team{TeamTitans, TeamAtlanteans} {
		lanes := map[Lane]bool{}
		for _, p := range roster {
			if p.Team == team {
				lanes[p.Lane] = true
			}
		}
		if !lanes[LaneTop] {
			t.Fatalf("%s have nobody in the top lane", team)
		}
	}
}

func TestRemovePlayerBackToSingleLaneClearsLanes(t *testing.T) {
	roster := grow(t, 7)
	roster, err := RemovePlayer(roster, roster[0].ID)
	if err != nil {
		t.Fatalf("RemovePlayer: %v", err)
	}
	if len(roster) != 6 {
		t.Fatalf("expected 6 players, got %d", len(roster))
	}
	for _, p := range roster {
		if p.Lane != "" {
			t.Fatalf("player %d kept lane %q after shrinking to six", p.ID, p.Lane)
		}
	}
}

func TestRosterCaps(t *testing.T) {
	roster := grow(t, 10)
	if _, err := AddPlayer(roster, "kim"); err != ErrRosterFull {
		t.Fatalf("want ErrRosterFull, got %v", err)
	}
	if _, err := RemovePlayer(roster, 99); err != ErrUnknownPlayer {
		t.Fatalf("want ErrUnknownPlayer, got %v", err)
	}
}

func TestRenamePlayer(t *testing.T) {
	roster := grow(t, 2)
	roster, err := RenamePlayer(roster, roster[1].ID, "benji")
	if err != nil {
		t.Fatalf("RenamePlayer: %v", err)
	}
	if roster[1].Name != "benji" {
		t.Fatalf("rename not applied: %+v", roster[1])
	}
}
