package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/echoforge/internal/catalog"
)

func TestSelectMonster_HighestUnlocked(t *testing.T) {
	cat := catalog.Default()

	assert.Equal(t, "goblin", SelectMonster(cat, 1).ID)
	assert.Equal(t, "goblin", SelectMonster(cat, 4).ID)
	assert.Equal(t, "orc", SelectMonster(cat, 5).ID)
	assert.Equal(t, "ancient_dragon", SelectMonster(cat, 99).ID)
}

func TestSelectMonster_TierScalingPast100(t *testing.T) {
	cat := catalog.Default()

	m := SelectMonster(cat, 150)
	assert.Equal(t, "ancient_dragon_tier_1", m.ID)
	assert.Equal(t, float64(10000), m.HP)

	m = SelectMonster(cat, 250)
	assert.Equal(t, "ancient_dragon_tier_2", m.ID)
	assert.Equal(t, float64(20000), m.HP)
}

func TestAttackInterval(t *testing.T) {
	assert.Equal(t, 998*time.Millisecond, AttackInterval(1))
	assert.Equal(t, 800*time.Millisecond, AttackInterval(100))
	assert.Equal(t, 200*time.Millisecond, AttackInterval(400))
	assert.Equal(t, 200*time.Millisecond, AttackInterval(5000))
}

func TestRollDamage_Bounds(t *testing.T) {
	rng := NewRNG(1)

	for i := 0; i < 200; i++ {
		dmg := rollDamage(10, 1.0, rng)
		// base 3 (1 + 10/5), variance up to +30%, floored.
		assert.GreaterOrEqual(t, dmg, float64(3))
		assert.LessOrEqual(t, dmg, float64(3))
	}

	for i := 0; i < 200; i++ {
		dmg := rollDamage(25, 2.0, rng)
		// base 6, attack x2 = 12, up to 15.6 floored.
		assert.GreaterOrEqual(t, dmg, float64(12))
		assert.LessOrEqual(t, dmg, float64(15))
	}
}

func TestRollDamage_NeverBelowOne(t *testing.T) {
	rng := NewRNG(2)
	assert.Equal(t, float64(1), rollDamage(1, 0.1, rng))
}

func TestAttack_KillGrantsRewardsAndRespawns(t *testing.T) {
	s := testState(t)
	cat := catalog.Default()
	rng := NewRNG(3)
	mult := totalMultipliers(s, cat)

	goldBefore := s.Resources[catalog.ResourceGold]

	// Level 1 goblin has 10 HP; enough swings always kill it.
	var kill AttackResult
	for i := 0; i < 50; i++ {
		res := s.attack(cat, rng, mult)
		if res.Defeated {
			kill = res
			break
		}
	}
	require.True(t, kill.Defeated)
	assert.Equal(t, "goblin", kill.Monster.ID)
	assert.Zero(t, kill.Monster.HP)

	assert.Equal(t, 1, s.Combat.TotalDefeated)
	assert.Equal(t, 1, s.Combat.MonstersDefeated["goblin"])
	assert.Greater(t, s.Resources[catalog.ResourceGold], goldBefore)
	assert.Greater(t, s.Player.Exp, float64(0))

	// Fresh monster engaged at full HP.
	require.NotNil(t, s.Combat.CurrentMonster)
	assert.Equal(t, s.Combat.CurrentMonster.MaxHP, s.Combat.CurrentMonster.HP)
}

func TestEnsureMonster_ReplacesOnLevelChange(t *testing.T) {
	s := testState(t)
	cat := catalog.Default()

	s.ensureMonster(cat)
	assert.Equal(t, "goblin", s.Combat.CurrentMonster.ID)

	s.Player.Level = 10
	s.ensureMonster(cat)
	assert.Equal(t, "troll", s.Combat.CurrentMonster.ID)
	assert.Equal(t, float64(50), s.Combat.CurrentMonster.HP)
}

func TestClaimChallengeTier_StrictSequence(t *testing.T) {
	s := testState(t)
	cat := catalog.Default()
	s.Combat.TotalDefeated = 100000

	// Claiming tier 2 before tier 1 is locked.
	_, err := s.claimChallengeTier(cat, "slimes", "blue_slime")
	assert.ErrorIs(t, err, ErrLocked)

	_, err = s.claimChallengeTier(cat, "slimes", "slime")
	require.NoError(t, err)
	_, err = s.claimChallengeTier(cat, "slimes", "blue_slime")
	require.NoError(t, err)

	// Double claim.
	_, err = s.claimChallengeTier(cat, "slimes", "slime")
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestClaimChallengeTier_ThresholdAndRewards(t *testing.T) {
	s := testState(t)
	cat := catalog.Default()

	s.Combat.TotalDefeated = 99
	_, err := s.claimChallengeTier(cat, "slimes", "slime")
	assert.ErrorIs(t, err, ErrNotAvailable)

	s.Combat.TotalDefeated = 100
	tier, err := s.claimChallengeTier(cat, "slimes", "slime")
	require.NoError(t, err)
	assert.Equal(t, float64(500), tier.Reward.Gold)
	assert.Equal(t, float64(50+500), s.Resources[catalog.ResourceGold])
	assert.Equal(t, float64(100), s.Player.Exp)
}

func TestClaimChallengeTier_EquipmentAndChainGate(t *testing.T) {
	s := testState(t)
	cat := catalog.Default()
	s.Combat.TotalDefeated = 100000

	// The dragon chain is level-gated.
	_, err := s.claimChallengeTier(cat, "dragons", "drake")
	assert.ErrorIs(t, err, ErrLocked)

	// Final slime tier grants its unique equipment.
	for _, tierID := range []string{"slime", "blue_slime", "king_slime"} {
		_, err := s.claimChallengeTier(cat, "slimes", tierID)
		require.NoError(t, err)
	}
	assert.Contains(t, s.Equipment.Owned, "slime_crown")
}

func TestChallengeProgress_SurvivesPrestige(t *testing.T) {
	s := testState(t)
	cat := catalog.Default()
	s.Combat.TotalDefeated = 100

	_, err := s.claimChallengeTier(cat, "slimes", "slime")
	require.NoError(t, err)

	s.Player.Exp = ExpAtLevel(100)
	s.Player.Level = 100
	s.Resources[catalog.ResourceGold] = AscensionGoldRequirement
	_, err = s.performAscension()
	require.NoError(t, err)

	assert.Contains(t, s.Challenges.Completed, "slimes:slime")
	assert.Equal(t, 100, s.Combat.TotalDefeated)
}
