// Package heroes holds the hero reference data and the expansion filter the
// drafting pool is built from.
package heroes

import (
	"sort"

	"github.com/guardsofatlantis/companion-backend/internal/engine"
)

type Catalog struct {
	heroes []engine.Hero
}

// Default returns the builtin catalog: base box plus both expansion waves.
func Default() *Catalog {
	return &Catalog{heroes: catalog}
}

// AllExpansions lists the distinct expansion names, sorted, base first.
func (c *Catalog) AllExpansions() []string {
	seen := map[string]bool{}
	var out []string
	for _, h := range c.heroes {
		if !seen[h.Expansion] {
			seen[h.Expansion] = true
			out = append(out, h.Expansion)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i] == ExpansionBase {
			return true
		}
		if out[j] == ExpansionBase {
			return false
		}
		return out[i] < out[j]
	})
	return out
}

// FilterByExpansions returns the heroes belonging to the named expansions.
// An empty filter means the full catalog. The result is a fresh slice; the
// catalog itself is never handed out.
func (c *Catalog) FilterByExpansions(expansions []string) []engine.Hero {
	if len(expansions) == 0 {
		out := make([]engine.Hero, len(c.heroes))
		copy(out, c.heroes)
		return out
	}
	wanted := map[string]bool{}
	for _, e := range expansions {
		wanted[e] = true
	}
	var out []engine.Hero
	for _, h := range c.heroes {
		if wanted[h.Expansion] {
			out = append(out, h)
		}
	}
	return out
}

const (
	ExpansionBase    = "Base"
	ExpansionWaveOne = "Wave One"
	ExpansionWaveTwo = "Wave Two"
)

func hero(id, name string, roles []string, complexity int, expansion, description string, atk, def, ini, mov int) engine.Hero {
	return engine.Hero{
		ID:          id,
		Name:        name,
		Icon:        id + ".png",
		Roles:       roles,
		Complexity:  complexity,
		Expansion:   expansion,
		Description: description,
		Attack:      atk,
		Defence:     def,
		Initiative:  ini,
		Movement:    mov,
	}
}

var catalog = []engine.Hero{
	hero("arien", "Arien", []string{"Melee", "Tempo"}, 1, ExpansionBase, "A duelist who trades blows early and often.", 4, 3, 5, 3),
	hero("brogan", "Brogan", []string{"Durable", "Melee"}, 1, ExpansionBase, "A frontline bruiser who holds the minion line.", 3, 5, 2, 2),
	hero("dodger", "Dodger", []string{"Ranged", "Sneaky"}, 1, ExpansionBase, "A gunslinger who punishes careless positioning.", 4, 2, 6, 3),
	hero("sabina", "Sabina", []string{"Support", "Disabler"}, 1, ExpansionBase, "A tinkerer who drags enemies out of position.", 2, 3, 4, 3),
	hero("swift", "Swift", []string{"Ranged", "Sniper"}, 1, ExpansionBase, "A sharpshooter with unmatched reach.", 5, 2, 3, 2),
	hero("tigerclaw", "Tigerclaw", []string{"Melee", "Sneaky"}, 2, ExpansionBase, "An assassin who darts through back lines.", 4, 3, 5, 4),
	hero("wasp", "Wasp", []string{"Melee", "Tempo"}, 2, ExpansionBase, "A skirmisher who stings, then slips away.", 5, 2, 4, 4),
	hero("whisper", "Whisper", []string{"Support", "Sneaky"}, 2, ExpansionBase, "A shadow who guides allies from the dark.", 2, 2, 6, 3),
	hero("xargatha", "Xargatha", []string{"Durable", "Disabler"}, 2, ExpansionBase, "A gorgon who freezes the enemy advance.", 3, 4, 3, 2),

	hero("bain", "Bain", []string{"Ranged", "Farming"}, 2, ExpansionWaveOne, "A bounty hunter who turns minions into gold.", 4, 2, 4, 3),
	hero("brynn", "Brynn", []string{"Melee", "Tactician"}, 3, ExpansionWaveOne, "A raider who rewrites the battle line.", 4, 3, 4, 3),
	hero("cutter", "Cutter", []string{"Melee", "Tempo"}, 3, ExpansionWaveOne, "A whirlwind of blades building momentum.", 5, 2, 5, 3),
	hero("emmitt", "Emmitt", []string{"Support", "Tactician"}, 3, ExpansionWaveOne, "A professor bending time for his allies.", 2, 3, 2, 2),
	hero("garrus", "Garrus", []string{"Durable", "Melee"}, 2, ExpansionWaveOne, "A gladiator who grows stronger when surrounded.", 4, 4, 2, 2),
	hero("gydion", "Gydion", []string{"Ranged", "Tactician"}, 4, ExpansionWaveOne, "A wizard with a spellbook for every occasion.", 3, 2, 3, 2),
	hero("hanu", "Hanu", []string{"Sneaky", "Disabler"}, 3, ExpansionWaveOne, "A trickster who steals turns outright.", 3, 2, 6, 4),
	hero("ignatia", "Ignatia", []string{"Ranged", "Pusher"}, 2, ExpansionWaveOne, "A pyromancer who burns lanes clear.", 5, 2, 3, 3),
	hero("misa", "Misa", []string{"Melee", "Durable"}, 2, ExpansionWaveOne, "A samurai who commands the front.", 4, 4, 3, 3),
	hero("mrak", "Mrak", []string{"Durable", "Disabler"}, 2, ExpansionWaveOne, "A stone giant nothing moves through.", 3, 5, 1, 2),
	hero("tali", "Tali", []string{"Support", "Healer"}, 2, ExpansionWaveOne, "A priestess who keeps the line standing.", 2, 3, 4, 3),
	hero("ursafar", "Ursafar", []string{"Melee", "Durable"}, 2, ExpansionWaveOne, "A savage bear shrugging off wounds.", 5, 4, 2, 3),

	hero("cascade", "Cascade", []string{"Ranged", "Disabler"}, 3, ExpansionWaveTwo, "A tidecaller who washes enemies away.", 4, 2, 4, 3),
	hero("min", "Min", []string{"Melee", "Tempo"}, 3, ExpansionWaveTwo, "A martial artist who flows between stances.", 4, 3, 5, 4),
	hero("mortimer", "Mortimer", []string{"Durable", "Pusher"}, 3, ExpansionWaveTwo, "A necromancer marching waves of the dead.", 3, 5, 1, 2),
	hero("nebkher", "Nebkher", []string{"Support", "Disabler"}, 4, ExpansionWaveTwo, "A lich trading lives for control.", 2, 3, 2, 2),
	hero("nightshade", "NightShade", []string{"Sneaky", "Melee"}, 3, ExpansionWaveTwo, "A phantom who hunts isolated prey.", 5, 2, 6, 3),
	hero("razzle", "Razzle", []string{"Support", "Tactician"}, 4, ExpansionWaveTwo, "An illusionist whose copies clog the field.", 2, 2, 3, 3),
	hero("rowenna", "Rowenna", []string{"Durable", "Tactician"}, 3, ExpansionWaveTwo, "A shieldmaiden who dictates engagements.", 3, 4, 3, 2),
	hero("silverarrow", "Silverarrow", []string{"Ranged", "Sniper"}, 2, ExpansionWaveTwo, "An elven archer who never misses twice.", 5, 2, 4, 3),
	hero("snorri", "Snorri", []string{"Support", "Healer"}, 3, ExpansionWaveTwo, "A runesmith warding allies with sigils.", 2, 4, 2, 2),
	hero("takahide", "Takahide", []string{"Melee", "Tactician"}, 3, ExpansionWaveTwo, "A warlord whose banners rally the push.", 4, 4, 3, 3),
	hero("trinkets", "Trinkets", []string{"Sneaky", "Farming"}, 3, ExpansionWaveTwo, "A thief who profits from every exchange.", 3, 2, 5, 3),
	hero("wuk", "Wuk", []string{"Durable", "Pusher"}, 2, ExpansionWaveTwo, "A forest guardian rooted to the lane.", 3, 5, 2, 2),
}
