package engine

const MaxPlayers = 10

// AddPlayer appends a player to the smaller team (Titans on a tie). Once the
// roster passes six players the game switches to the double-lane layout, so
// the seventh addition retroactively assigns lanes to everyone.
func AddPlayer(roster []Player, name string) ([]Player, error) {
	if len(roster) >= MaxPlayers {
		return roster, ErrRosterFull
	}
	next := cloneRoster(roster)

	id := 1
	for _, p := range next {
		if p.ID >= id {
			id = p.ID + 1
		}
	}
	team := TeamTitans
	if teamSize(next, TeamTitans) > teamSize(next, TeamAtlanteans) {
		team = TeamAtlanteans
	}
	next = append(next, Player{ID: id, Name: name, Team: team})

	if len(next) > 6 {
		assignLanes(next)
	}
	return next, nil
}

// RemovePlayer drops the player during setup. Shrinking back to six or fewer
// returns the roster to the single-lane layout, so lanes are cleared.
func RemovePlayer(roster []Player, id int) ([]Player, error) {
	idx := playerIndex(roster, id)
	if idx < 0 {
		return roster, ErrUnknownPlayer
	}
	next := cloneRoster(roster)
	next = append(next[:idx], next[idx+1:]...)
	if len(next) <= 6 {
		for i := range next {
			next[i].Lane = ""
		}
	} else {
		assignLanes(next)
	}
	return next, nil
}

func RenamePlayer(roster []Player, id int, name string) ([]Player, error) {
	idx := playerIndex(roster, id)
	if idx < 0 {
		return roster, ErrUnknownPlayer
	}
	next := cloneRoster(roster)
	next[idx].Name = name
	return next, nil
}

// assignLanes alternates top/bottom within each team in creation order, so
// both lanes end up with players from both teams.
func assignLanes(roster []Player) {
	seen := map[Team]int{}
	for i := range roster {
		if seen[roster[i].Team]%2 == 0 {
			roster[i].Lane = LaneTop
		} else {
			roster[i].Lane = LaneBottom
		}
		seen[roster[i].Team]++
	}
}
