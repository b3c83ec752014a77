package game

import (
	"math"
	"time"

	"github.com/talgya/echoforge/internal/catalog"
)

// SelectMonster picks the strongest monster unlocked at the player level,
// scaling it past level 100: every 100 levels adds a tier that doubles HP
// and reward ranges.
func SelectMonster(cat *catalog.Catalog, level int) catalog.Monster {
	chosen := cat.Monsters[0]
	for _, m := range cat.Monsters {
		if m.UnlockLevel <= level {
			chosen = m
		}
	}

	tier := level / 100
	if tier > 0 {
		return catalog.ScaledMonster(chosen, tier)
	}
	return chosen
}

// AttackInterval is the auto-attack cadence at a given level; faster with
// levels, floored at 200ms.
func AttackInterval(level int) time.Duration {
	ms := 1000 - level*2
	if ms < 200 {
		ms = 200
	}
	return time.Duration(ms) * time.Millisecond
}

// rollDamage computes one hit: base damage grows every 5 levels, scaled by
// the attack channel, with up to +30% roll variance. Never below 1.
func rollDamage(level int, attack float64, rng *RNG) float64 {
	base := float64(1 + level/5)
	dmg := math.Floor(base * attack * (1 + rng.Float()*0.3))
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// AttackResult reports the outcome of one attack.
type AttackResult struct {
	Monster    ActiveMonster `json:"monster"`
	Damage     float64       `json:"damage"`
	Defeated   bool          `json:"defeated"`
	GoldReward float64       `json:"gold_reward,omitempty"`
	ExpReward  float64       `json:"exp_reward,omitempty"`
	LeveledUp  bool          `json:"leveled_up,omitempty"`
}

// ensureMonster spawns or replaces the engaged monster when none exists or
// the player's level now selects a different one.
func (s *State) ensureMonster(cat *catalog.Catalog) {
	want := SelectMonster(cat, s.Player.Level)
	cur := s.Combat.CurrentMonster
	if cur != nil && cur.ID == want.ID {
		return
	}
	s.Combat.CurrentMonster = &ActiveMonster{
		ID:      want.ID,
		Name:    want.Name,
		Tier:    s.Player.Level / 100,
		HP:      want.HP,
		MaxHP:   want.HP,
		GoldMin: want.GoldMin,
		GoldMax: want.GoldMax,
		ExpMin:  want.ExpMin,
		ExpMax:  want.ExpMax,
	}
}

// attack lands one hit on the engaged monster. On a kill: uniform gold and
// exp rolls (floored) scaled by their channels, defeat counters incremented,
// and the monster respawns at full HP.
func (s *State) attack(cat *catalog.Catalog, rng *RNG, mult Multipliers) AttackResult {
	s.ensureMonster(cat)
	m := s.Combat.CurrentMonster

	dmg := rollDamage(s.Player.Level, mult.Attack, rng)
	m.HP -= dmg
	if m.HP < 0 {
		m.HP = 0
	}
	res := AttackResult{Monster: *m, Damage: dmg}

	if m.HP == 0 {
		gold := math.Floor(rng.Between(float64(m.GoldMin), float64(m.GoldMax))) * mult.Gold
		exp := math.Floor(rng.Between(float64(m.ExpMin), float64(m.ExpMax))) * mult.Exp

		s.credit(catalog.ResourceGold, gold)
		res.LeveledUp = s.addExp(exp)
		res.GoldReward = gold
		res.ExpReward = exp
		res.Defeated = true

		s.Combat.TotalDefeated++
		s.Combat.MonstersDefeated[m.ID]++

		// Respawn; a level-up may select a stronger monster.
		s.Combat.CurrentMonster = nil
		s.ensureMonster(cat)
	}
	return res
}

// claimChallengeTier claims a chain tier: the chain's level gate must be
// open, every earlier tier completed, the lifetime kill counter at the
// threshold, and the tier not yet claimed. Rewards are flat gold/exp plus an
// optional unique equipment piece. Completion survives prestige.
func (s *State) claimChallengeTier(cat *catalog.Catalog, chainID, tierID string) (*catalog.ChallengeTier, error) {
	chain, ok := cat.Chain(chainID)
	if !ok {
		return nil, ErrUnknownID
	}
	if chain.UnlockLevel > 0 && s.Player.Level < chain.UnlockLevel {
		return nil, ErrLocked
	}

	for i := range chain.Tiers {
		tier := &chain.Tiers[i]
		if tier.ID != tierID {
			if !contains(s.Challenges.Completed, challengeTierKey(chainID, tier.ID)) {
				// Tiers unlock strictly in order.
				return nil, ErrLocked
			}
			continue
		}

		key := challengeTierKey(chainID, tierID)
		if contains(s.Challenges.Completed, key) {
			return nil, ErrAlreadyCompleted
		}
		if s.Combat.TotalDefeated < tier.RequiredDefeats {
			return nil, ErrNotAvailable
		}

		if tier.Reward.Gold > 0 {
			s.credit(catalog.ResourceGold, tier.Reward.Gold)
		}
		if tier.Reward.Exp > 0 {
			s.addExp(tier.Reward.Exp)
		}
		if tier.Reward.Equipment != "" {
			s.addEquipment(tier.Reward.Equipment)
		}
		s.Challenges.Completed = append(s.Challenges.Completed, key)
		return tier, nil
	}
	return nil, ErrUnknownID
}

// challengeTierKey namespaces tier ids by chain: several chains reuse tier
// ids like "troll".
func challengeTierKey(chainID, tierID string) string {
	return chainID + ":" + tierID
}
