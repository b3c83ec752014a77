package catalog

import (
	"fmt"
	"math"
)

func monstersData() []Monster {
	return []Monster{
		{ID: "goblin", Name: "Goblin", HP: 10, GoldMin: 1, GoldMax: 5, ExpMin: 2, ExpMax: 5, UnlockLevel: 1},
		{ID: "orc", Name: "Orc", HP: 25, GoldMin: 5, GoldMax: 15, ExpMin: 5, ExpMax: 12, UnlockLevel: 5},
		{ID: "troll", Name: "Troll", HP: 50, GoldMin: 15, GoldMax: 40, ExpMin: 12, ExpMax: 25, UnlockLevel: 10},
		{ID: "undead_warrior", Name: "Undead Warrior", HP: 100, GoldMin: 40, GoldMax: 100, ExpMin: 25, ExpMax: 50, UnlockLevel: 20},
		{ID: "dark_knight", Name: "Dark Knight", HP: 200, GoldMin: 100, GoldMax: 250, ExpMin: 50, ExpMax: 100, UnlockLevel: 35},
		{ID: "dragon_whelp", Name: "Dragon Whelp", HP: 500, GoldMin: 250, GoldMax: 600, ExpMin: 100, ExpMax: 200, UnlockLevel: 50},
		{ID: "demon", Name: "Demon", HP: 1000, GoldMin: 600, GoldMax: 1500, ExpMin: 200, ExpMax: 400, UnlockLevel: 70},
		{ID: "ancient_dragon", Name: "Ancient Dragon", HP: 5000, GoldMin: 1500, GoldMax: 5000, ExpMin: 500, ExpMax: 1000, UnlockLevel: 90},
	}
}

// tierNames prefixes scaled monster variants; tiers past the list fall back
// to a numbered label.
var tierNames = []string{
	"Lesser", "Greater", "Elite", "Champion", "Legendary",
	"Mythic", "Ancient", "Primordial", "Celestial", "Divine",
}

// ScaledMonster synthesizes an endless-progression variant of base at the
// given tier. HP and reward ranges all scale by 2^tier.
func ScaledMonster(base Monster, tier int) Monster {
	name := fmt.Sprintf("Tier-%d", tier+1)
	if tier < len(tierNames) {
		name = tierNames[tier]
	}

	scale := math.Pow(2, float64(tier))
	return Monster{
		ID:          fmt.Sprintf("%s_tier_%d", base.ID, tier),
		Name:        fmt.Sprintf("%s %s", name, base.Name),
		HP:          math.Floor(base.HP * scale),
		GoldMin:     int(math.Floor(float64(base.GoldMin) * scale)),
		GoldMax:     int(math.Floor(float64(base.GoldMax) * scale)),
		ExpMin:      int(math.Floor(float64(base.ExpMin) * scale)),
		ExpMax:      int(math.Floor(float64(base.ExpMax) * scale)),
		UnlockLevel: base.UnlockLevel,
	}
}
