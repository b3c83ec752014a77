package catalog

func questsData() []Quest {
	return []Quest{
		{
			ID:           "quest_1",
			Name:         "The Beginner's Trial",
			Description:  "Gather your first resources and prove your worth",
			Category:     "tutorial",
			Requirements: map[Resource]float64{ResourceGold: 100},
			Rewards: QuestReward{
				Resources: map[Resource]float64{ResourceGold: 200},
				Exp:       50,
			},
		},
		{
			ID:           "quest_2",
			Name:         "Timber for the Keep",
			Description:  "The castle needs wood for repairs",
			Category:     "gathering",
			Requirements: map[Resource]float64{ResourceWood: 100},
			Rewards: QuestReward{
				Resources: map[Resource]float64{ResourceGold: 500, ResourceStone: 50},
				Exp:       100,
			},
		},
		{
			ID:           "quest_3",
			Name:         "Stones of Foundation",
			Description:  "Collect stone to fortify the kingdom",
			Category:     "gathering",
			Requirements: map[Resource]float64{ResourceStone: 200},
			Rewards: QuestReward{
				Resources: map[Resource]float64{ResourceGold: 1000, ResourceIron: 25},
				Exp:       150,
			},
		},
		{
			ID:           "quest_4",
			Name:         "Iron Will",
			Description:  "Mine iron to forge weapons for the realm",
			Category:     "gathering",
			Requirements: map[Resource]float64{ResourceIron: 100},
			Rewards: QuestReward{
				Resources: map[Resource]float64{ResourceGold: 2500, ResourceMithril: 10},
				Exp:       300,
			},
			UnlockLevel: 10,
		},
		{
			ID:           "quest_5",
			Name:         "The Dragon's Bargain",
			Description:  "Negotiate with dragons for their scales",
			Category:     "legendary",
			Requirements: map[Resource]float64{ResourceGold: 50000, ResourceMithril: 500},
			Rewards: QuestReward{
				Resources: map[Resource]float64{ResourceDragonscale: 50},
				Exp:       5000,
			},
			UnlockLevel: 50,
		},
		{
			ID:             "quest_6",
			Name:           "Slay the Goblin Horde",
			Description:    "Defend the village from goblin raiders",
			Category:       "combat",
			CompletionTime: 300,
			Rewards: QuestReward{
				Resources: map[Resource]float64{ResourceGold: 1000, ResourceIron: 50},
				Exp:       250,
			},
		},
		{
			ID:           "quest_7",
			Name:         "The Wizard's Apprentice",
			Description:  "Study under the grand wizard to unlock arcane secrets",
			Category:     "magic",
			Requirements: map[Resource]float64{ResourceArcaneEssence: 100},
			Rewards: QuestReward{
				Resources: map[Resource]float64{ResourceGold: 10000, ResourceArcaneEssence: 150},
				Exp:       1000,
			},
			UnlockLevel: 25,
		},
		{
			ID:           "quest_8",
			Name:         "Forge of the Ancients",
			Description:  "Discover the lost forge and craft legendary mithril",
			Category:     "crafting",
			Requirements: map[Resource]float64{ResourceIron: 1000, ResourceStone: 500},
			Rewards: QuestReward{
				Resources: map[Resource]float64{ResourceMithril: 200},
				Exp:       2000,
			},
			UnlockLevel: 15,
		},
		{
			ID:             "quest_9",
			Name:           "The Undead Uprising",
			Description:    "Quell the undead forces rising from ancient tombs",
			Category:       "combat",
			CompletionTime: 600,
			Rewards: QuestReward{
				Resources: map[Resource]float64{ResourceGold: 5000, ResourceArcaneEssence: 50},
				Exp:       800,
			},
			UnlockLevel: 20,
		},
		{
			ID:           "quest_10",
			Name:         "Breach the Ethereal Veil",
			Description:  "Open a portal to the ethereal plane",
			Category:     "legendary",
			Requirements: map[Resource]float64{ResourceArcaneEssence: 1000, ResourceDragonscale: 100},
			Rewards: QuestReward{
				Resources: map[Resource]float64{ResourceEtherealShard: 100},
				Exp:       10000,
			},
			UnlockLevel: 75,
		},
		{
			ID:           "quest_11",
			Name:         "The King's Request",
			Description:  "Gather resources for King Arthur's grand feast",
			Category:     "royal",
			Requirements: map[Resource]float64{ResourceGold: 10000, ResourceWood: 500, ResourceStone: 500},
			Rewards: QuestReward{
				Resources: map[Resource]float64{ResourceGold: 25000},
				Exp:       1500,
			},
			UnlockLevel: 30,
		},
		{
			ID:           "quest_12",
			Name:         "Dwarf Trading Alliance",
			Description:  "Establish trade routes with the dwarven kingdoms",
			Category:     "trading",
			Requirements: map[Resource]float64{ResourceIron: 2000, ResourceMithril: 100},
			Rewards: QuestReward{
				Resources: map[Resource]float64{ResourceGold: 50000, ResourceIron: 3000},
				Exp:       3000,
			},
			UnlockLevel: 35,
		},
		{
			ID:           "quest_13",
			Name:         "Elven Wisdom",
			Description:  "Learn ancient elven magic and lore",
			Category:     "magic",
			Requirements: map[Resource]float64{ResourceArcaneEssence: 500},
			Rewards: QuestReward{
				Resources: map[Resource]float64{ResourceArcaneEssence: 1000},
				Exp:       5000,
			},
			UnlockLevel: 40,
		},
		{
			ID:             "quest_14",
			Name:           "The Beastfolk Hunt",
			Description:    "Join the beastfolk in their sacred hunt",
			Category:       "combat",
			CompletionTime: 900,
			Rewards: QuestReward{
				Resources: map[Resource]float64{ResourceGold: 20000, ResourceDragonscale: 25},
				Exp:       4000,
			},
			UnlockLevel: 45,
		},
		{
			ID:           "quest_15",
			Name:         "Transcendent Awakening",
			Description:  "Unlock the secrets of transcendence",
			Category:     "legendary",
			Requirements: map[Resource]float64{ResourceEtherealShard: 1000, ResourceArcaneEssence: 5000, ResourceDragonscale: 500},
			Rewards: QuestReward{
				Resources: map[Resource]float64{ResourceGold: 1000000},
				Exp:       50000,
			},
			UnlockLevel: 90,
		},
	}
}
