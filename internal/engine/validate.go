package engine

import "fmt"

// Problem is a structured validation failure. Messages are written to be
// shown to the user verbatim.
type Problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidateRoster checks the preconditions for starting a draft: equal teams,
// two to five players per team, and distinct non-empty names.
func ValidateRoster(roster []Player) []Problem {
	var problems []Problem

	titans := teamSize(roster, TeamTitans)
	atlanteans := teamSize(roster, TeamAtlanteans)
	if titans != atlanteans {
		problems = append(problems, Problem{
			Code:    "unbalanced-teams",
			Message: fmt.Sprintf("teams must be equal: Titans have %d players, Atlanteans have %d", titans, atlanteans),
		})
	}
	for _, size := range []struct {
		team Team
		n    int
	}{{TeamTitans, titans}, {TeamAtlanteans, atlanteans}} {
		if size.n < 2 || size.n > 5 {
			problems = append(problems, Problem{
				Code:    "team-size",
				Message: fmt.Sprintf("each team needs 2-5 players, %s have %d", size.team, size.n),
			})
		}
	}

	seen := map[string]bool{}
	for _, p := range roster {
		if p.Name == "" {
			problems = append(problems, Problem{
				Code:    "empty-name",
				Message: fmt.Sprintf("player %d has no name", p.ID),
			})
			continue
		}
		if seen[p.Name] {
			problems = append(problems, Problem{
				Code:    "duplicate-name",
				Message: fmt.Sprintf("player name %q is used more than once", p.Name),
			})
		}
		seen[p.Name] = true
	}
	return problems
}

// ValidateDraftPool checks that the filtered hero pool is big enough for the
// chosen mode and player count.
func ValidateDraftPool(mode DraftMode, playerCount, poolSize int) []Problem {
	need := playerCount
	switch mode {
	case ModeSingle:
		need = playerCount * 3
	case ModePickBan:
		for _, step := range GeneratePickBanSequence(playerCount) {
			if step.Action == ActionBan {
				need++
			}
		}
	}
	if poolSize < need {
		return []Problem{{
			Code:    "pool-too-small",
			Message: fmt.Sprintf("%s draft with %d players needs at least %d heroes, only %d selected", mode, playerCount, need, poolSize),
		}}
	}
	return nil
}

// ValidateAssignments checks the post-draft roster before the clock starts:
// everyone holds a hero, and no hero is held twice.
func ValidateAssignments(roster []Player) []Problem {
	var problems []Problem
	held := map[string]string{}
	for _, p := range roster {
		if p.Hero == nil {
			problems = append(problems, Problem{
				Code:    "missing-hero",
				Message: fmt.Sprintf("player %q has no hero assigned", p.Name),
			})
			continue
		}
		if prev, ok := held[p.Hero.ID]; ok {
			problems = append(problems, Problem{
				Code:    "duplicate-hero",
				Message: fmt.Sprintf("hero %q is assigned to both %q and %q", p.Hero.Name, prev, p.Name),
			})
		}
		held[p.Hero.ID] = p.Name
	}
	return problems
}
