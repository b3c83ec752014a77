package catalog

// Equipment authoring order matters within each cadence tier: the special
// quest scheduler indexes a cadence's pool by calendar position.
func equipmentData() []Equipment {
	return []Equipment{
		// Daily pool.
		{ID: "daily_sword", Name: "Steel Sword", Description: "Increases attack power", Tier: CadenceDaily, Bonus: Bonus{Attack: 1.05}},
		{ID: "daily_shield", Name: "Iron Shield", Description: "Increases defense", Tier: CadenceDaily, Bonus: Bonus{Defense: 1.05}},
		{ID: "daily_helmet", Name: "Knight Helmet", Description: "Increases EXP gain", Tier: CadenceDaily, Bonus: Bonus{Exp: 1.03}},
		{ID: "daily_armor", Name: "Plate Armor", Description: "Increases production", Tier: CadenceDaily, Bonus: Bonus{Production: 1.03}},
		{ID: "daily_boots", Name: "Swift Boots", Description: "Increases quest speed", Tier: CadenceDaily, Bonus: Bonus{QuestSpeed: 1.05}},

		// Weekly pool.
		{ID: "weekly_legendary_sword", Name: "Excalibur", Description: "Legendary blade of kings", Tier: CadenceWeekly, Bonus: Bonus{Attack: 1.15, Gold: 1.1}},
		{ID: "weekly_dragon_scale_armor", Name: "Dragonscale Plate", Description: "Armor forged from ancient dragons", Tier: CadenceWeekly, Bonus: Bonus{Defense: 1.15, Production: 1.1}},
		{ID: "weekly_ethereal_ring", Name: "Ring of Eternity", Description: "Channels ethereal energies", Tier: CadenceWeekly, Bonus: Bonus{Exp: 1.2}},
		{ID: "weekly_mystic_amulet", Name: "Amulet of Power", Description: "Amplifies all abilities", Tier: CadenceWeekly, Bonus: Bonus{All: 1.08}},

		// Monthly pool.
		{ID: "monthly_artifact", Name: "Ancient Artifact", Description: "Relic of immense power", Tier: CadenceMonthly, Bonus: Bonus{All: 1.25}},
		{ID: "monthly_crown", Name: "Crown of Kings", Description: "Rules over all resources", Tier: CadenceMonthly, Bonus: Bonus{Gold: 1.5, Production: 1.3}},
		{ID: "monthly_wings", Name: "Celestial Wings", Description: "Grants divine speed", Tier: CadenceMonthly, Bonus: Bonus{QuestSpeed: 1.5, Exp: 1.3}},
		{ID: "monthly_transcendent_orb", Name: "Orb of Transcendence", Description: "Ultimate power incarnate", Tier: CadenceMonthly, Bonus: Bonus{All: 1.5}},

		// Challenge chain rewards.
		{ID: "slime_crown", Name: "Slime Crown", Description: "A crown made of condensed slime", Tier: TierChallenge, Bonus: Bonus{Attack: 1.5, Production: 1.1}},
		{ID: "goblin_blade", Name: "Goblin King's Blade", Description: "A blade forged by the goblin king", Tier: TierChallenge, Bonus: Bonus{Attack: 2.5, Gold: 1.2}},
		{ID: "lich_staff", Name: "Staff of Eternal Darkness", Description: "A staff that commands the undead", Tier: TierChallenge, Bonus: Bonus{Attack: 3.5, Exp: 1.5, Production: 1.3}},
		{ID: "griffin_feather", Name: "Griffin's Feather", Description: "A feather from a legendary griffin", Tier: TierChallenge, Bonus: Bonus{Attack: 2.8, Gold: 1.4, Production: 1.2}},
		{ID: "troll_club", Name: "Troll's War Club", Description: "A massive club that crushes enemies", Tier: TierChallenge, Bonus: Bonus{Attack: 4.0, Gold: 1.3}},
		{ID: "dragon_scale", Name: "Ancient Dragon Scale", Description: "An impenetrable scale from an ancient dragon", Tier: TierChallenge, Bonus: Bonus{Attack: 5.0, Gold: 2.0, Exp: 2.0, Production: 1.5}},
		{ID: "demon_crown", Name: "Crown of the Damned", Description: "A crown forged in hellfire", Tier: TierChallenge, Bonus: Bonus{Attack: 7.0, Gold: 3.0, Exp: 3.0, Production: 2.0}},
	}
}
