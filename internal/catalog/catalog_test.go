package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	cat := Default()
	require.NoError(t, cat.Validate())

	assert.Len(t, cat.Buildings, 10)
	assert.Len(t, cat.Quests, 15)
	assert.Len(t, cat.Monsters, 8)
	assert.Len(t, cat.Chains, 7)
	assert.Len(t, cat.Races, 5)
}

func TestLookups(t *testing.T) {
	cat := Default()

	b, ok := cat.Building("lumber_mill")
	require.True(t, ok)
	assert.Equal(t, "Lumber Mill", b.Name)
	assert.Equal(t, ResourceWood, b.Produces)

	_, ok = cat.Building("no_such_building")
	assert.False(t, ok)

	q, ok := cat.Quest("quest_6")
	require.True(t, ok)
	assert.True(t, q.TimeGated())

	q, ok = cat.Quest("quest_1")
	require.True(t, ok)
	assert.False(t, q.TimeGated())

	ch, ok := cat.Chain("slimes")
	require.True(t, ok)
	assert.Len(t, ch.Tiers, 3)
}

func TestEquipmentPool_OrderIsStable(t *testing.T) {
	cat := Default()

	daily := cat.EquipmentPool(CadenceDaily)
	require.Len(t, daily, 5)
	assert.Equal(t, "daily_sword", daily[0])
	assert.Equal(t, "daily_boots", daily[4])

	weekly := cat.EquipmentPool(CadenceWeekly)
	require.Len(t, weekly, 4)
	assert.Equal(t, "weekly_legendary_sword", weekly[0])

	monthly := cat.EquipmentPool(CadenceMonthly)
	require.Len(t, monthly, 4)
	assert.Equal(t, "monthly_artifact", monthly[0])
	assert.Equal(t, "monthly_transcendent_orb", monthly[3])
}

func TestScaledMonster_DoublesPerTier(t *testing.T) {
	base := Monster{ID: "goblin", Name: "Goblin", HP: 10, GoldMin: 1, GoldMax: 5, ExpMin: 2, ExpMax: 5, UnlockLevel: 1}

	t1 := ScaledMonster(base, 1)
	assert.Equal(t, "goblin_tier_1", t1.ID)
	assert.Equal(t, float64(20), t1.HP)

	t2 := ScaledMonster(base, 2)
	assert.Equal(t, float64(40), t2.HP)
	assert.Equal(t, 4, t2.GoldMin)
	assert.Equal(t, 20, t2.GoldMax)
	assert.Equal(t, 8, t2.ExpMin)
	assert.Equal(t, 20, t2.ExpMax)
}

func TestScaledMonster_TierNames(t *testing.T) {
	base := Monster{ID: "goblin", Name: "Goblin", HP: 10}

	t1 := ScaledMonster(base, 1)
	assert.Contains(t, t1.Name, "Goblin")
	assert.NotEqual(t, "Goblin", t1.Name)

	// Past the named tiers the fallback label kicks in.
	t12 := ScaledMonster(base, 12)
	assert.Contains(t, t12.Name, "Tier-13")
}

func TestTotalChallengeTiers(t *testing.T) {
	cat := Default()

	total := 0
	for _, ch := range cat.Chains {
		total += len(ch.Tiers)
	}
	assert.Equal(t, total, cat.TotalChallengeTiers())
	assert.Greater(t, cat.TotalChallengeTiers(), 20)
}

func TestRandomName_UsesRacePools(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		name := RandomName(RaceHuman, rng)
		assert.NotEmpty(t, name)
	}

	// Deterministic for a fixed seed.
	a := RandomName(RaceElf, rand.New(rand.NewSource(42)))
	b := RandomName(RaceElf, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestValidate_RejectsBadReferences(t *testing.T) {
	cat := Default()
	cat.Buildings[0].Produces = "plutonium"
	assert.Error(t, cat.Validate())
}
