package catalog

func achievementsData() []Achievement {
	return []Achievement{
		// Resource milestones.
		{
			ID:          "first_fortune",
			Name:        "First Fortune",
			Description: "Hold 1,000 gold",
			Requirement: AchievementRequirement{Type: RequireResource, Resource: ResourceGold, Amount: 1000},
			Reward:      AchievementReward{Resources: map[Resource]float64{ResourceGold: 500}},
		},
		{
			ID:          "merchant_prince",
			Name:        "Merchant Prince",
			Description: "Hold 100,000 gold",
			Requirement: AchievementRequirement{Type: RequireResource, Resource: ResourceGold, Amount: 100000},
			Reward:      AchievementReward{Bonus: Bonus{Gold: 1.05}},
		},
		{
			ID:          "royal_treasury",
			Name:        "Royal Treasury",
			Description: "Hold 1,000,000 gold",
			Requirement: AchievementRequirement{Type: RequireResource, Resource: ResourceGold, Amount: 1000000},
			Reward:      AchievementReward{Bonus: Bonus{Gold: 1.1}},
		},
		{
			ID:          "dragons_hoard",
			Name:        "Dragon's Hoard",
			Description: "Hold 1,000,000,000 gold",
			Requirement: AchievementRequirement{Type: RequireResource, Resource: ResourceGold, Amount: 1000000000},
			Reward:      AchievementReward{Bonus: Bonus{All: 1.1}},
		},
		{
			ID:          "mithril_touched",
			Name:        "Mithril-Touched",
			Description: "Hold 100 mithril",
			Requirement: AchievementRequirement{Type: RequireResource, Resource: ResourceMithril, Amount: 100},
			Reward:      AchievementReward{Bonus: Bonus{Production: 1.05}},
		},
		{
			ID:          "shard_collector",
			Name:        "Shard Collector",
			Description: "Hold 100 ethereal shards",
			Requirement: AchievementRequirement{Type: RequireResource, Resource: ResourceEtherealShard, Amount: 100},
			Reward:      AchievementReward{Bonus: Bonus{All: 1.05}},
		},

		// Building milestones.
		{
			ID:          "humble_hamlet",
			Name:        "Humble Hamlet",
			Description: "Own 10 buildings",
			Requirement: AchievementRequirement{Type: RequireBuilding, Count: 10},
			Reward:      AchievementReward{Resources: map[Resource]float64{ResourceGold: 1000}},
		},
		{
			ID:          "thriving_town",
			Name:        "Thriving Town",
			Description: "Own 50 buildings",
			Requirement: AchievementRequirement{Type: RequireBuilding, Count: 50},
			Reward:      AchievementReward{Bonus: Bonus{Production: 1.1}},
		},
		{
			ID:          "grand_city",
			Name:        "Grand City",
			Description: "Own 100 buildings",
			Requirement: AchievementRequirement{Type: RequireBuilding, Count: 100},
			Reward:      AchievementReward{Bonus: Bonus{Production: 1.15}},
		},

		// Quest milestones.
		{
			ID:          "errand_runner",
			Name:        "Errand Runner",
			Description: "Complete 5 quests",
			Requirement: AchievementRequirement{Type: RequireQuest, Count: 5},
			Reward:      AchievementReward{Resources: map[Resource]float64{ResourceGold: 2500}},
		},
		{
			ID:          "seasoned_adventurer",
			Name:        "Seasoned Adventurer",
			Description: "Complete 10 quests",
			Requirement: AchievementRequirement{Type: RequireQuest, Count: 10},
			Reward:      AchievementReward{Bonus: Bonus{QuestSpeed: 1.1}},
		},
		{
			ID:          "living_legend",
			Name:        "Living Legend",
			Description: "Complete 15 quests",
			Requirement: AchievementRequirement{Type: RequireQuest, Count: 15},
			Reward:      AchievementReward{Bonus: Bonus{Exp: 1.15}},
		},

		// Level milestones.
		{
			ID:          "apprentice",
			Name:        "Apprentice",
			Description: "Reach level 10",
			Requirement: AchievementRequirement{Type: RequireLevel, Level: 10},
			Reward:      AchievementReward{Resources: map[Resource]float64{ResourceGold: 500}},
		},
		{
			ID:          "veteran",
			Name:        "Veteran",
			Description: "Reach level 50",
			Requirement: AchievementRequirement{Type: RequireLevel, Level: 50},
			Reward:      AchievementReward{Bonus: Bonus{Exp: 1.1}},
		},
		{
			ID:          "centurion",
			Name:        "Centurion",
			Description: "Reach level 100",
			Requirement: AchievementRequirement{Type: RequireLevel, Level: 100},
			Reward:      AchievementReward{Bonus: Bonus{All: 1.05}},
		},

		// Prestige milestones.
		{
			ID:          "reborn",
			Name:        "Reborn",
			Description: "Ascend for the first time",
			Requirement: AchievementRequirement{Type: RequireAscension, Count: 1},
			Reward:      AchievementReward{Bonus: Bonus{Gold: 1.1}},
		},
		{
			ID:          "cycle_breaker",
			Name:        "Cycle Breaker",
			Description: "Ascend 5 times",
			Requirement: AchievementRequirement{Type: RequireAscension, Count: 5},
			Reward:      AchievementReward{Bonus: Bonus{Production: 1.1}},
		},
		{
			ID:          "eternal",
			Name:        "Eternal",
			Description: "Ascend 10 times",
			Requirement: AchievementRequirement{Type: RequireAscension, Count: 10},
			Reward:      AchievementReward{Bonus: Bonus{All: 1.1}},
		},
		{
			ID:          "beyond_the_veil",
			Name:        "Beyond the Veil",
			Description: "Transcend for the first time",
			Requirement: AchievementRequirement{Type: RequireTranscendence, Count: 1},
			Reward:      AchievementReward{Bonus: Bonus{All: 1.2}},
		},

		// Challenge milestones.
		{
			ID:          "monster_hunter",
			Name:        "Monster Hunter",
			Description: "Complete 5 challenge tiers",
			Requirement: AchievementRequirement{Type: RequireChallenge, Count: 5},
			Reward:      AchievementReward{Bonus: Bonus{Gold: 1.05}},
		},
		{
			ID:          "apex_predator",
			Name:        "Apex Predator",
			Description: "Complete every challenge tier",
			Requirement: AchievementRequirement{Type: RequireChallenge, Count: totalTierCount()},
			Reward:      AchievementReward{Bonus: Bonus{All: 1.25}},
		},
	}
}

func totalTierCount() int {
	n := 0
	for _, ch := range challengeChainsData() {
		n += len(ch.Tiers)
	}
	return n
}
