package game

import "github.com/talgya/echoforge/internal/catalog"

// Multipliers are the final per-channel factors applied to gains. All
// sources compose multiplicatively, so fold order never changes the result.
type Multipliers struct {
	Gold       float64 `json:"gold"`
	Exp        float64 `json:"exp"`
	Production float64 `json:"production"`
	QuestSpeed float64 `json:"quest_speed"`
	Attack     float64 `json:"attack"`
	Defense    float64 `json:"defense"`
}

// equipmentMultipliers folds every owned equipment bonus, with the
// equipment-sourced "all" factor already applied to each channel.
func equipmentMultipliers(s *State, cat *catalog.Catalog) Multipliers {
	gold, exp, production, questSpeed, attack, defense, all := 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0

	for _, id := range s.Equipment.Owned {
		eq, ok := cat.EquipmentByID(id)
		if !ok {
			continue
		}
		b := eq.Bonus
		if b.Gold != 0 {
			gold *= b.Gold
		}
		if b.Exp != 0 {
			exp *= b.Exp
		}
		if b.Production != 0 {
			production *= b.Production
		}
		if b.QuestSpeed != 0 {
			questSpeed *= b.QuestSpeed
		}
		if b.Attack != 0 {
			attack *= b.Attack
		}
		if b.Defense != 0 {
			defense *= b.Defense
		}
		if b.All != 0 {
			all *= b.All
		}
	}

	return Multipliers{
		Gold:       gold * all,
		Exp:        exp * all,
		Production: production * all,
		QuestSpeed: questSpeed * all,
		Attack:     attack * all,
		Defense:    defense * all,
	}
}

// totalMultipliers aggregates every bonus source into final channel values:
// ascension power, transcendence power, claimed achievements, owned
// equipment, then the race bonus applied once.
func totalMultipliers(s *State, cat *catalog.Catalog) Multipliers {
	gold, exp, production, questSpeed, all := 1.0, 1.0, 1.0, 1.0, 1.0

	// Ascension power boosts gold, exp and production; quest speed is
	// untouched by ascension.
	gold *= 1 + s.Ascension.Power*0.10
	exp *= 1 + s.Ascension.Power*0.05
	production *= 1 + s.Ascension.Power*0.08

	// Transcendence power boosts every channel.
	transcendence := 1 + s.Transcendence.Power
	gold *= transcendence
	exp *= transcendence
	production *= transcendence
	questSpeed *= transcendence

	// Claimed achievements.
	for _, id := range s.Achievements.Claimed {
		ach, ok := cat.Achievement(id)
		if !ok {
			continue
		}
		b := ach.Reward.Bonus
		if b.Gold != 0 {
			gold *= b.Gold
		}
		if b.Exp != 0 {
			exp *= b.Exp
		}
		if b.Production != 0 {
			production *= b.Production
		}
		if b.QuestSpeed != 0 {
			questSpeed *= b.QuestSpeed
		}
		if b.All != 0 {
			all *= b.All
		}
	}

	// Owned equipment, with its own "all" factor already folded in.
	equip := equipmentMultipliers(s, cat)
	gold *= equip.Gold
	exp *= equip.Exp
	production *= equip.Production
	questSpeed *= equip.QuestSpeed

	// Achievement-sourced "all" factor covers every channel.
	gold *= all
	exp *= all
	production *= all
	questSpeed *= all

	// Race bonus, applied once.
	if race, ok := cat.Races[s.Player.Race]; ok {
		b := race.Bonus
		if b.Gold != 0 {
			gold *= b.Gold
		}
		if b.Exp != 0 {
			exp *= b.Exp
		}
		if b.Production != 0 {
			production *= b.Production
		}
		if b.QuestSpeed != 0 {
			questSpeed *= b.QuestSpeed
		}
	}

	return Multipliers{
		Gold:       gold,
		Exp:        exp,
		Production: production,
		QuestSpeed: questSpeed,
		Attack:     equip.Attack,
		Defense:    equip.Defense,
	}
}
