package engine

import "math/rand"

func cloneRoster(roster []Player) []Player {
	out := make([]Player, len(roster))
	copy(out, roster)
	return out
}

func playerIndex(roster []Player, id int) int {
	for i, p := range roster {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func teamSize(roster []Player, team Team) int {
	n := 0
	for _, p := range roster {
		if p.Team == team {
			n++
		}
	}
	return n
}

// shuffleHeroes returns a Fisher-Yates shuffled copy; the input is untouched.
func shuffleHeroes(pool []Hero, rng *rand.Rand) []Hero {
	out := make([]Hero, len(pool))
	copy(out, pool)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func heroByID(pool []Hero, id string) (Hero, bool) {
	for _, h := range pool {
		if h.ID == id {
			return h, true
		}
	}
	return Hero{}, false
}

func removeHero(pool []Hero, id string) []Hero {
	out := make([]Hero, 0, len(pool))
	for _, h := range pool {
		if h.ID != id {
			out = append(out, h)
		}
	}
	return out
}

func ContainsEvent(events []Event, eventType EventType) bool {
	for _, event := range events {
		if event.Type == eventType {
			return true
		}
	}
	return false
}
