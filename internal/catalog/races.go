package catalog

func racesData() map[Race]RaceInfo {
	return map[Race]RaceInfo{
		RaceHuman: {
			Name:        "Human",
			Description: "Versatile and adaptable, humans excel in all trades",
			Bonus:       Bonus{Gold: 1.1},
		},
		RaceElf: {
			Name:        "Elf",
			Description: "Ancient and wise, elves gain experience more quickly",
			Bonus:       Bonus{Exp: 1.15},
		},
		RaceDwarf: {
			Name:        "Dwarf",
			Description: "Master craftsmen, dwarves produce resources faster",
			Bonus:       Bonus{Production: 1.2},
		},
		RaceUndead: {
			Name:        "Undead",
			Description: "Tireless workers, undead never suffer production penalties",
			Bonus:       Bonus{NoProductionPenalty: true},
		},
		RaceBeastfolk: {
			Name:        "Beastfolk",
			Description: "Natural warriors, beastfolk complete quests faster",
			Bonus:       Bonus{QuestSpeed: 1.25},
		},
	}
}
