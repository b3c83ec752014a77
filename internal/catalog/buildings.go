package catalog

// Starting allotment for a fresh run.
const (
	StartingGold = 50
)

func buildingsData() []Building {
	return []Building{
		{
			ID:             "lumber_mill",
			Name:           "Lumber Mill",
			Description:    "Harvests timber from the surrounding forests",
			BaseCost:       map[Resource]float64{ResourceGold: 10},
			CostMultiplier: 1.15,
			Produces:       ResourceWood,
			BaseProduction: 1,
		},
		{
			ID:             "quarry",
			Name:           "Quarry",
			Description:    "Cuts stone blocks from the mountainside",
			BaseCost:       map[Resource]float64{ResourceGold: 50, ResourceWood: 10},
			CostMultiplier: 1.15,
			Produces:       ResourceStone,
			BaseProduction: 0.8,
		},
		{
			ID:             "mine",
			Name:           "Mine",
			Description:    "Digs deep for veins of iron ore",
			BaseCost:       map[Resource]float64{ResourceGold: 250, ResourceWood: 50, ResourceStone: 25},
			CostMultiplier: 1.15,
			Produces:       ResourceIron,
			BaseProduction: 0.5,
			UnlockLevel:    5,
		},
		{
			ID:             "forge",
			Name:           "Forge",
			Description:    "Smelts ore into goods sold for gold",
			BaseCost:       map[Resource]float64{ResourceGold: 1000, ResourceIron: 100, ResourceStone: 200},
			CostMultiplier: 1.2,
			Produces:       ResourceGold,
			BaseProduction: 10,
			UnlockLevel:    10,
		},
		{
			ID:             "mages_tower",
			Name:           "Mage's Tower",
			Description:    "Distills raw magic into arcane essence",
			BaseCost:       map[Resource]float64{ResourceGold: 10000, ResourceStone: 1000, ResourceIron: 500},
			CostMultiplier: 1.2,
			Produces:       ResourceArcaneEssence,
			BaseProduction: 0.25,
			UnlockLevel:    25,
		},
		{
			ID:             "barracks",
			Name:           "Barracks",
			Description:    "Trained soldiers bring home spoils of war",
			BaseCost:       map[Resource]float64{ResourceGold: 50000, ResourceWood: 1000, ResourceStone: 1000, ResourceIron: 500},
			CostMultiplier: 1.2,
			Produces:       ResourceGold,
			BaseProduction: 25,
			UnlockLevel:    30,
		},
		{
			ID:             "alchemist_lab",
			Name:           "Alchemist's Lab",
			Description:    "Transmutes base metals into mithril",
			BaseCost:       map[Resource]float64{ResourceGold: 25000, ResourceIron: 1000, ResourceArcaneEssence: 100},
			CostMultiplier: 1.25,
			Produces:       ResourceMithril,
			BaseProduction: 0.1,
			UnlockLevel:    35,
		},
		{
			ID:             "dragon_roost",
			Name:           "Dragon Roost",
			Description:    "Tamed dragons shed their precious scales",
			BaseCost:       map[Resource]float64{ResourceGold: 100000, ResourceMithril: 500, ResourceArcaneEssence: 250},
			CostMultiplier: 1.25,
			Produces:       ResourceDragonscale,
			BaseProduction: 0.05,
			UnlockLevel:    50,
		},
		{
			ID:             "workshop",
			Name:           "Workshop",
			Description:    "Master artisans craft wares of great value",
			BaseCost:       map[Resource]float64{ResourceGold: 500000, ResourceIron: 2000, ResourceMithril: 200},
			CostMultiplier: 1.25,
			Produces:       ResourceGold,
			BaseProduction: 100,
			UnlockLevel:    60,
		},
		{
			ID:             "ethereal_nexus",
			Name:           "Ethereal Nexus",
			Description:    "A rift that condenses ethereal shards",
			BaseCost:       map[Resource]float64{ResourceGold: 1000000, ResourceArcaneEssence: 1000, ResourceDragonscale: 100},
			CostMultiplier: 1.3,
			Produces:       ResourceEtherealShard,
			BaseProduction: 0.02,
			UnlockLevel:    75,
		},
	}
}
