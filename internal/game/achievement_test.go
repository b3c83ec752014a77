package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/echoforge/internal/catalog"
)

func TestCheckAchievements_SweepUnlocks(t *testing.T) {
	s := testState(t)
	cat := catalog.Default()

	assert.Empty(t, s.checkAchievements(cat))

	s.Resources[catalog.ResourceGold] = 1000
	unlocked := s.checkAchievements(cat)
	assert.Contains(t, unlocked, "first_fortune")

	// Already-unlocked ids don't come back.
	assert.Empty(t, s.checkAchievements(cat))
}

func TestCheckAchievements_NeverRevoked(t *testing.T) {
	s := testState(t)
	cat := catalog.Default()

	s.Resources[catalog.ResourceGold] = 1000
	s.checkAchievements(cat)

	s.Resources[catalog.ResourceGold] = 0
	s.checkAchievements(cat)
	assert.Contains(t, s.Achievements.Unlocked, "first_fortune")
}

func TestCheckAchievements_AllRequirementTypes(t *testing.T) {
	s := testState(t)
	cat := catalog.Default()

	s.Buildings["lumber_mill"] = 10
	s.Quests.Completed = []string{"a", "b", "c", "d", "e"}
	s.Player.Level = 10
	s.Ascension.Count = 1
	s.Transcendence.Count = 1
	s.Combat.TotalDefeated = 100
	s.Challenges.Completed = []string{"slimes:slime"}

	s.checkAchievements(cat)
	assert.Contains(t, s.Achievements.Unlocked, "humble_hamlet") // 10 buildings
	assert.Contains(t, s.Achievements.Unlocked, "errand_runner") // 5 quests
	assert.Contains(t, s.Achievements.Unlocked, "apprentice")    // level 10
	assert.Contains(t, s.Achievements.Unlocked, "reborn")        // 1 ascension
	assert.Contains(t, s.Achievements.Unlocked, "beyond_the_veil") // 1 transcendence
}

func TestClaimAchievement_FlatResourceReward(t *testing.T) {
	s := testState(t)
	cat := catalog.Default()

	s.Resources[catalog.ResourceGold] = 1000
	s.checkAchievements(cat)

	require.NoError(t, s.claimAchievement(cat, "first_fortune"))
	assert.Equal(t, float64(1500), s.Resources[catalog.ResourceGold])

	err := s.claimAchievement(cat, "first_fortune")
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestClaimAchievement_Gates(t *testing.T) {
	s := testState(t)
	cat := catalog.Default()

	err := s.claimAchievement(cat, "no_such_achievement")
	assert.ErrorIs(t, err, ErrUnknownID)

	// Not yet unlocked.
	err = s.claimAchievement(cat, "first_fortune")
	assert.ErrorIs(t, err, ErrNotAvailable)
}
