package engine

import "math/rand"

type DraftMode string

const (
	ModeNone    DraftMode = "none"
	ModeSingle  DraftMode = "single"
	ModeRandom  DraftMode = "random"
	ModePickBan DraftMode = "pick-and-ban"
)

type Selection struct {
	PlayerID int  `json:"playerId"`
	Hero     Hero `json:"hero"`
}

// DraftState is the full drafting position. The roster is captured at
// construction and threaded through the reducer; the engine never reads it
// from anywhere else.
type DraftState struct {
	Mode        DraftMode      `json:"mode"`
	Roster      []Player       `json:"roster"`
	CoinSide    Team           `json:"coinSide"` // team resolved as SlotA
	CurrentTeam Team           `json:"currentTeam"`
	Available   []Hero         `json:"available"`
	Options     map[int][]Hero `json:"options,omitempty"` // single mode: playerID -> dealt heroes
	Selected    []Selection    `json:"selected"`
	Banned      []Hero         `json:"banned"`
	Step        int            `json:"step"`
	Sequence    []PickBanStep  `json:"sequence,omitempty"`
	Complete    bool           `json:"complete"`
}

type DraftCommandType string

const (
	CmdPickHero DraftCommandType = "PickHero"
	CmdBanHero  DraftCommandType = "BanHero"
)

type DraftCommand struct {
	Type     DraftCommandType
	PlayerID int
	HeroID   string
}

// NewSingleDraft shuffles the pool and deals three options to every player in
// creation order, without replacement. The coin-flip winner acts first.
func NewSingleDraft(roster []Player, pool []Hero, coinSide Team, rng *rand.Rand) DraftState {
	shuffled := shuffleHeroes(pool, rng)
	options := make(map[int][]Hero, len(roster))
	for i, p := range roster {
		options[p.ID] = shuffled[i*3 : (i+1)*3]
	}
	return DraftState{
		Mode:        ModeSingle,
		Roster:      cloneRoster(roster),
		CoinSide:    coinSide,
		CurrentTeam: coinSide,
		Available:   shuffled[len(roster)*3:],
		Options:     options,
	}
}

// NewRandomDraft shuffles the pool and keeps a shared pool of playerCount+2
// heroes (fewer if the pool is smaller) that both teams pick from.
func NewRandomDraft(roster []Player, pool []Hero, coinSide Team, rng *rand.Rand) DraftState {
	shuffled := shuffleHeroes(pool, rng)
	keep := len(roster) + 2
	if keep > len(shuffled) {
		keep = len(shuffled)
	}
	return DraftState{
		Mode:        ModeRandom,
		Roster:      cloneRoster(roster),
		CoinSide:    coinSide,
		CurrentTeam: coinSide,
		Available:   shuffled[:keep],
	}
}

// NewPickBanDraft uses the full filtered pool and the precomputed ban/pick
// sequence for this player count.
func NewPickBanDraft(roster []Player, pool []Hero, coinSide Team) DraftState {
	seq := GeneratePickBanSequence(len(roster))
	available := make([]Hero, len(pool))
	copy(available, pool)
	return DraftState{
		Mode:        ModePickBan,
		Roster:      cloneRoster(roster),
		CoinSide:    coinSide,
		CurrentTeam: ResolveSlot(seq[0].Slot, coinSide),
		Available:   available,
		Sequence:    seq,
	}
}

// ApplyDraft advances the draft by one pick or ban. The previous state is
// never mutated; callers that ignore the error can keep using it unchanged.
func ApplyDraft(s DraftState, cmd DraftCommand) ([]Event, DraftState, error) {
	if s.Complete {
		return nil, s, ErrDraftCompleted
	}
	switch cmd.Type {
	case CmdPickHero:
		return applyPick(s, cmd)
	case CmdBanHero:
		return applyBan(s, cmd)
	default:
		return nil, s, ErrUnsupportedCommand
	}
}

func applyPick(s DraftState, cmd DraftCommand) ([]Event, DraftState, error) {
	idx := playerIndex(s.Roster, cmd.PlayerID)
	if idx < 0 {
		return nil, s, ErrUnknownPlayer
	}
	player := s.Roster[idx]
	if player.Team != s.CurrentTeam {
		return nil, s, ErrWrongTurn
	}
	if hasSelection(s.Selected, cmd.PlayerID) {
		return nil, s, ErrIllegalPick
	}
	if s.Mode == ModePickBan && s.Sequence[s.Step].Action != ActionPick {
		return nil, s, ErrWrongTurn
	}

	var hero Hero
	var ok bool
	if s.Mode == ModeSingle {
		hero, ok = heroByID(s.Options[cmd.PlayerID], cmd.HeroID)
	} else {
		hero, ok = heroByID(s.Available, cmd.HeroID)
	}
	if !ok {
		return nil, s, ErrIllegalPick
	}

	ns := s
	ns.Selected = append(cloneSelections(s.Selected), Selection{PlayerID: cmd.PlayerID, Hero: hero})
	ns.Available = removeHero(s.Available, hero.ID)
	if s.Mode == ModeSingle {
		ns.Options = cloneOptions(s.Options)
		delete(ns.Options, cmd.PlayerID)
	}

	events := []Event{{Type: EvtHeroPicked, Team: player.Team, PlayerID: cmd.PlayerID, HeroID: hero.ID}}

	// Team-switch priority: a full team always hands over; Single alternates
	// strictly; Pick-and-Ban follows the sequence; Random hands over too.
	switch {
	case pickCount(ns.Selected, ns.Roster, s.CurrentTeam) >= teamSize(ns.Roster, s.CurrentTeam):
		ns.CurrentTeam = s.CurrentTeam.Other()
	case s.Mode == ModeSingle:
		ns.CurrentTeam = s.CurrentTeam.Other()
	case s.Mode == ModePickBan:
		ns.Step++
		if ns.Step >= len(ns.Sequence) {
			ns.Complete = true
		} else {
			ns.CurrentTeam = ResolveSlot(ns.Sequence[ns.Step].Slot, ns.CoinSide)
		}
	default:
		ns.CurrentTeam = s.CurrentTeam.Other()
	}

	// Both teams full ends the draft no matter what the switch decided.
	if pickCount(ns.Selected, ns.Roster, TeamTitans) >= teamSize(ns.Roster, TeamTitans) &&
		pickCount(ns.Selected, ns.Roster, TeamAtlanteans) >= teamSize(ns.Roster, TeamAtlanteans) {
		ns.Complete = true
	}

	if ns.Complete {
		events = append(events, Event{Type: EvtDraftCompleted})
	} else if ns.CurrentTeam != s.CurrentTeam {
		events = append(events, Event{Type: EvtTurnPassed, Team: ns.CurrentTeam})
	}
	return events, ns, nil
}

func applyBan(s DraftState, cmd DraftCommand) ([]Event, DraftState, error) {
	if s.Mode != ModePickBan {
		return nil, s, ErrIllegalBan
	}
	step := s.Sequence[s.Step]
	if step.Action != ActionBan {
		return nil, s, ErrWrongTurn
	}
	hero, ok := heroByID(s.Available, cmd.HeroID)
	if !ok {
		return nil, s, ErrIllegalBan
	}

	ns := s
	ns.Available = removeHero(s.Available, hero.ID)
	ns.Banned = append(cloneHeroes(s.Banned), hero)
	ns.Step++

	events := []Event{{Type: EvtHeroBanned, Team: s.CurrentTeam, HeroID: hero.ID}}
	if ns.Step >= len(ns.Sequence) {
		ns.Complete = true
		events = append(events, Event{Type: EvtDraftCompleted})
	} else {
		ns.CurrentTeam = ResolveSlot(ns.Sequence[ns.Step].Slot, ns.CoinSide)
		if ns.CurrentTeam != s.CurrentTeam {
			events = append(events, Event{Type: EvtTurnPassed, Team: ns.CurrentTeam})
		}
	}
	return events, ns, nil
}

// HeroAssignments returns the final playerID -> hero mapping. Only meaningful
// once Complete is true.
func (s DraftState) HeroAssignments() map[int]Hero {
	out := make(map[int]Hero, len(s.Selected))
	for _, sel := range s.Selected {
		out[sel.PlayerID] = sel.Hero
	}
	return out
}

func hasSelection(selected []Selection, playerID int) bool {
	for _, sel := range selected {
		if sel.PlayerID == playerID {
			return true
		}
	}
	return false
}

func pickCount(selected []Selection, roster []Player, team Team) int {
	n := 0
	for _, sel := range selected {
		if idx := playerIndex(roster, sel.PlayerID); idx >= 0 && roster[idx].Team == team {
			n++
		}
	}
	return n
}

func cloneSelections(in []Selection) []Selection {
	out := make([]Selection, len(in))
	copy(out, in)
	return out
}

func cloneHeroes(in []Hero) []Hero {
	out := make([]Hero, len(in))
	copy(out, in)
	return out
}

func cloneOptions(in map[int][]Hero) map[int][]Hero {
	out := make(map[int][]Hero, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
