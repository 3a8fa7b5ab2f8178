package engine

// Slot is a team position relative to the coin flip, not an absolute team.
// SlotA always means "whichever team the coin selected to go first".
type Slot string

const (
	SlotA Slot = "A"
	SlotB Slot = "B"
)

type Action string

const (
	ActionBan  Action = "ban"
	ActionPick Action = "pick"
)

type PickBanStep struct {
	Slot   Slot   `json:"slot"`
	Action Action `json:"action"`
	Round  int    `json:"round"`
}

func round(n int, steps ...PickBanStep) []PickBanStep {
	for i := range steps {
		steps[i].Round = n
	}
	return steps
}

// GeneratePickBanSequence builds the fixed ban/pick order for the given
// player count. Every round contributes two bans and two picks, with who acts
// first alternating round to round; one pick per team per round means the
// pick totals land exactly on each team's roster size.
func GeneratePickBanSequence(playerCount int) []PickBanStep {
	seq := round(1,
		PickBanStep{Slot: SlotA, Action: ActionBan},
		PickBanStep{Slot: SlotB, Action: ActionBan},
		PickBanStep{Slot: SlotA, Action: ActionPick},
		PickBanStep{Slot: SlotB, Action: ActionPick},
	)
	seq = append(seq, round(2,
		PickBanStep{Slot: SlotB, Action: ActionBan},
		PickBanStep{Slot: SlotA, Action: ActionBan},
		PickBanStep{Slot: SlotB, Action: ActionPick},
		PickBanStep{Slot: SlotA, Action: ActionPick},
	)...)
	if playerCount > 4 {
		seq = append(seq, round(3,
			PickBanStep{Slot: SlotA, Action: ActionBan},
			PickBanStep{Slot: SlotB, Action: ActionBan},
			PickBanStep{Slot: SlotB, Action: ActionPick},
			PickBanStep{Slot: SlotA, Action: ActionPick},
		)...)
	}
	if playerCount > 6 {
		seq = append(seq, round(4,
			PickBanStep{Slot: SlotB, Action: ActionBan},
			PickBanStep{Slot: SlotA, Action: ActionBan},
			PickBanStep{Slot: SlotA, Action: ActionPick},
			PickBanStep{Slot: SlotB, Action: ActionPick},
		)...)
	}
	if playerCount > 8 {
		seq = append(seq, round(5,
			PickBanStep{Slot: SlotB, Action: ActionBan},
			PickBanStep{Slot: SlotA, Action: ActionBan},
			PickBanStep{Slot: SlotA, Action: ActionPick},
			PickBanStep{Slot: SlotB, Action: ActionPick},
		)...)
	}
	return seq
}

// ResolveSlot translates a relative slot into an actual team using the
// pre-draft coin flip result.
func ResolveSlot(slot Slot, coinSide Team) Team {
	if slot == SlotA {
		return coinSide
	}
	return coinSide.Other()
}
