// Package catalog holds the immutable game content tables: buildings,
// quests, achievements, monsters, challenge chains, special equipment and
// races. Everything here is static data keyed by id; the engine receives a
// validated Catalog at construction and never mutates it.
package catalog

import "fmt"

// Catalog bundles every content table behind id-checked lookups.
// Slices preserve authoring order, which is the stable iteration order for
// bulk operations and reward-pool indexing.
type Catalog struct {
	Buildings    []Building
	Quests       []Quest
	Achievements []Achievement
	Monsters     []Monster
	Chains       []ChallengeChain
	Equipment    []Equipment
	Races        map[Race]RaceInfo

	buildingIndex map[string]*Building
	questIndex    map[string]*Quest
	achIndex      map[string]*Achievement
	chainIndex    map[string]*ChallengeChain
	equipIndex    map[string]*Equipment
}

// Default returns the full game content set.
func Default() *Catalog {
	c := &Catalog{
		Buildings:    buildingsData(),
		Quests:       questsData(),
		Achievements: achievementsData(),
		Monsters:     monstersData(),
		Chains:       challengeChainsData(),
		Equipment:    equipmentData(),
		Races:        racesData(),
	}
	c.buildIndexes()
	return c
}

func (c *Catalog) buildIndexes() {
	c.buildingIndex = make(map[string]*Building, len(c.Buildings))
	for i := range c.Buildings {
		c.buildingIndex[c.Buildings[i].ID] = &c.Buildings[i]
	}
	c.questIndex = make(map[string]*Quest, len(c.Quests))
	for i := range c.Quests {
		c.questIndex[c.Quests[i].ID] = &c.Quests[i]
	}
	c.achIndex = make(map[string]*Achievement, len(c.Achievements))
	for i := range c.Achievements {
		c.achIndex[c.Achievements[i].ID] = &c.Achievements[i]
	}
	c.chainIndex = make(map[string]*ChallengeChain, len(c.Chains))
	for i := range c.Chains {
		c.chainIndex[c.Chains[i].ID] = &c.Chains[i]
	}
	c.equipIndex = make(map[string]*Equipment, len(c.Equipment))
	for i := range c.Equipment {
		c.equipIndex[c.Equipment[i].ID] = &c.Equipment[i]
	}
}

// Building returns the building definition for id.
func (c *Catalog) Building(id string) (*Building, bool) {
	b, ok := c.buildingIndex[id]
	return b, ok
}

// Quest returns the quest definition for id.
func (c *Catalog) Quest(id string) (*Quest, bool) {
	q, ok := c.questIndex[id]
	return q, ok
}

// Achievement returns the achievement definition for id.
func (c *Catalog) Achievement(id string) (*Achievement, bool) {
	a, ok := c.achIndex[id]
	return a, ok
}

// Chain returns the challenge chain definition for id.
func (c *Catalog) Chain(id string) (*ChallengeChain, bool) {
	ch, ok := c.chainIndex[id]
	return ch, ok
}

// EquipmentByID returns the equipment definition for id.
func (c *Catalog) EquipmentByID(id string) (*Equipment, bool) {
	e, ok := c.equipIndex[id]
	return e, ok
}

// EquipmentPool returns the ordered equipment ids for a cadence tier.
// Order follows the authoring order in the equipment table; reward selection
// indexes into it, so the order is part of the content contract.
func (c *Catalog) EquipmentPool(tier Cadence) []string {
	var pool []string
	for i := range c.Equipment {
		if c.Equipment[i].Tier == tier {
			pool = append(pool, c.Equipment[i].ID)
		}
	}
	return pool
}

// TotalChallengeTiers counts every tier across all chains.
func (c *Catalog) TotalChallengeTiers() int {
	n := 0
	for i := range c.Chains {
		n += len(c.Chains[i].Tiers)
	}
	return n
}

// Validate cross-checks every inter-table reference so unknown ids cannot
// reach the engine at runtime. Called once at startup.
func (c *Catalog) Validate() error {
	for i := range c.Buildings {
		b := &c.Buildings[i]
		if b.CostMultiplier <= 1 {
			return fmt.Errorf("building %s: cost multiplier %v must be > 1", b.ID, b.CostMultiplier)
		}
		if !validResource(b.Produces) {
			return fmt.Errorf("building %s: unknown output resource %q", b.ID, b.Produces)
		}
		for r := range b.BaseCost {
			if !validResource(r) {
				return fmt.Errorf("building %s: unknown cost resource %q", b.ID, r)
			}
		}
	}
	for i := range c.Quests {
		q := &c.Quests[i]
		for r := range q.Requirements {
			if !validResource(r) {
				return fmt.Errorf("quest %s: unknown requirement resource %q", q.ID, r)
			}
		}
		for r := range q.Rewards.Resources {
			if !validResource(r) {
				return fmt.Errorf("quest %s: unknown reward resource %q", q.ID, r)
			}
		}
	}
	for i := range c.Achievements {
		a := &c.Achievements[i]
		if a.Requirement.Type == RequireResource && !validResource(a.Requirement.Resource) {
			return fmt.Errorf("achievement %s: unknown requirement resource %q", a.ID, a.Requirement.Resource)
		}
		for r := range a.Reward.Resources {
			if !validResource(r) {
				return fmt.Errorf("achievement %s: unknown reward resource %q", a.ID, r)
			}
		}
	}
	for i := range c.Chains {
		ch := &c.Chains[i]
		for j := range ch.Tiers {
			t := &ch.Tiers[j]
			if t.RequiredDefeats <= 0 {
				return fmt.Errorf("chain %s tier %s: required defeats must be positive", ch.ID, t.ID)
			}
			if j > 0 && t.RequiredDefeats < ch.Tiers[j-1].RequiredDefeats {
				return fmt.Errorf("chain %s tier %s: thresholds must not decrease", ch.ID, t.ID)
			}
			if t.Reward.Equipment != "" {
				if _, ok := c.equipIndex[t.Reward.Equipment]; !ok {
					return fmt.Errorf("chain %s tier %s: unknown equipment %q", ch.ID, t.ID, t.Reward.Equipment)
				}
			}
		}
	}
	for _, tier := range []Cadence{CadenceDaily, CadenceWeekly, CadenceMonthly} {
		if len(c.EquipmentPool(tier)) == 0 {
			return fmt.Errorf("equipment pool for %s cadence is empty", tier)
		}
	}
	if len(c.Races) == 0 {
		return fmt.Errorf("no races defined")
	}
	return nil
}

func validResource(r Resource) bool {
	for _, known := range AllResources {
		if r == known {
			return true
		}
	}
	return false
}
