package catalog

func challengeChainsData() []ChallengeChain {
	return []ChallengeChain{
		{
			ID:          "slimes",
			Name:        "Slime Evolution",
			Description: "The weakest creatures, perfect for beginners",
			Tiers: []ChallengeTier{
				{ID: "slime", Name: "Slime", RequiredDefeats: 100, Reward: ChallengeReward{Gold: 500, Exp: 100}},
				{ID: "blue_slime", Name: "Blue Slime", RequiredDefeats: 500, Reward: ChallengeReward{Gold: 2500, Exp: 500}},
				{ID: "king_slime", Name: "King Slime", RequiredDefeats: 2000, Reward: ChallengeReward{Gold: 15000, Exp: 3000, Equipment: "slime_crown"}},
			},
		},
		{
			ID:          "goblins",
			Name:        "Goblin Horde",
			Description: "Small but cunning creatures that grow in power",
			Tiers: []ChallengeTier{
				{ID: "goblin", Name: "Goblin", RequiredDefeats: 250, Reward: ChallengeReward{Gold: 1000, Exp: 200}},
				{ID: "hobgoblin", Name: "Hobgoblin", RequiredDefeats: 1000, Reward: ChallengeReward{Gold: 5000, Exp: 1000}},
				{ID: "bugbear", Name: "Bugbear", RequiredDefeats: 3000, Reward: ChallengeReward{Gold: 20000, Exp: 5000}},
				{ID: "goblin_king", Name: "Goblin King", RequiredDefeats: 8000, Reward: ChallengeReward{Gold: 50000, Exp: 15000, Equipment: "goblin_blade"}},
			},
		},
		{
			ID:          "undead",
			Name:        "Undead Legion",
			Description: "The restless dead grow stronger in darkness",
			Tiers: []ChallengeTier{
				{ID: "skeleton", Name: "Skeleton", RequiredDefeats: 500, Reward: ChallengeReward{Gold: 2000, Exp: 400}},
				{ID: "zombie", Name: "Zombie", RequiredDefeats: 1500, Reward: ChallengeReward{Gold: 7500, Exp: 2000}},
				{ID: "ghoul", Name: "Ghoul", RequiredDefeats: 4000, Reward: ChallengeReward{Gold: 25000, Exp: 7000}},
				{ID: "wight", Name: "Wight", RequiredDefeats: 9000, Reward: ChallengeReward{Gold: 60000, Exp: 18000}},
				{ID: "lich", Name: "Lich King", RequiredDefeats: 20000, Reward: ChallengeReward{Gold: 150000, Exp: 50000, Equipment: "lich_staff"}},
			},
		},
		{
			ID:          "beasts",
			Name:        "Wild Beasts",
			Description: "From wolves to legendary creatures",
			Tiers: []ChallengeTier{
				{ID: "wolf", Name: "Wolf", RequiredDefeats: 750, Reward: ChallengeReward{Gold: 3000, Exp: 600}},
				{ID: "dire_wolf", Name: "Dire Wolf", RequiredDefeats: 2500, Reward: ChallengeReward{Gold: 12500, Exp: 3500}},
				{ID: "wyvern", Name: "Wyvern", RequiredDefeats: 6000, Reward: ChallengeReward{Gold: 40000, Exp: 12000}},
				{ID: "griffin", Name: "Griffin", RequiredDefeats: 12000, Reward: ChallengeReward{Gold: 80000, Exp: 28000, Equipment: "griffin_feather"}},
			},
		},
		{
			ID:          "orcs",
			Name:        "Orc Warriors",
			Description: "Brutal warriors that command respect through strength",
			Tiers: []ChallengeTier{
				{ID: "orc", Name: "Orc", RequiredDefeats: 1500, Reward: ChallengeReward{Gold: 7500, Exp: 2000}},
				{ID: "orc_berserker", Name: "Orc Berserker", RequiredDefeats: 4500, Reward: ChallengeReward{Gold: 30000, Exp: 9000}},
				{ID: "ogre", Name: "Ogre", RequiredDefeats: 10000, Reward: ChallengeReward{Gold: 70000, Exp: 22000}},
				{ID: "troll", Name: "Troll", RequiredDefeats: 18000, Reward: ChallengeReward{Gold: 120000, Exp: 40000, Equipment: "troll_club"}},
			},
		},
		{
			ID:          "dragons",
			Name:        "Dragon Ancestry",
			Description: "The most powerful creatures in existence",
			UnlockLevel: 50,
			Tiers: []ChallengeTier{
				{ID: "drake", Name: "Drake", RequiredDefeats: 5000, Reward: ChallengeReward{Gold: 35000, Exp: 10000}},
				{ID: "wyrm", Name: "Wyrm", RequiredDefeats: 12000, Reward: ChallengeReward{Gold: 85000, Exp: 25000}},
				{ID: "dragon", Name: "Dragon", RequiredDefeats: 25000, Reward: ChallengeReward{Gold: 200000, Exp: 70000}},
				{ID: "ancient_dragon", Name: "Ancient Dragon", RequiredDefeats: 50000, Reward: ChallengeReward{Gold: 500000, Exp: 200000, Equipment: "dragon_scale"}},
			},
		},
		{
			ID:          "demons",
			Name:        "Demonic Forces",
			Description: "Evil incarnate from the nether realms",
			UnlockLevel: 100,
			Tiers: []ChallengeTier{
				{ID: "imp", Name: "Imp", RequiredDefeats: 10000, Reward: ChallengeReward{Gold: 65000, Exp: 20000}},
				{ID: "demon", Name: "Demon", RequiredDefeats: 22000, Reward: ChallengeReward{Gold: 150000, Exp: 50000}},
				{ID: "arch_demon", Name: "Arch Demon", RequiredDefeats: 45000, Reward: ChallengeReward{Gold: 400000, Exp: 150000}},
				{ID: "demon_lord", Name: "Demon Lord", RequiredDefeats: 100000, Reward: ChallengeReward{Gold: 1000000, Exp: 500000, Equipment: "demon_crown"}},
			},
		},
	}
}
