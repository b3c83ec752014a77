package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/echoforge/internal/catalog"
)

func newTestSession(t *testing.T) (*Session, *FakeClock) {
	t.Helper()
	clock := NewFakeClock(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	sn := NewSession(catalog.Default(), clock, NewRNG(1), nil)
	return sn, clock
}

func newPlayingSession(t *testing.T) (*Session, *FakeClock) {
	t.Helper()
	sn, clock := newTestSession(t)
	require.NoError(t, sn.CreateCharacter("Aldric", catalog.RaceHuman))
	return sn, clock
}

func TestCreateCharacter(t *testing.T) {
	sn, _ := newTestSession(t)

	require.NoError(t, sn.CreateCharacter("Aldric", catalog.RaceHuman))
	st := sn.Snapshot()
	assert.Equal(t, "Aldric", st.Player.Name)
	assert.Equal(t, catalog.RaceHuman, st.Player.Race)
	assert.Equal(t, 1, st.Player.Level)
	assert.True(t, st.Clock.Initialized)

	// One character per save.
	err := sn.CreateCharacter("Other", catalog.RaceElf)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestCreateCharacter_RandomNameAndBadRace(t *testing.T) {
	sn, _ := newTestSession(t)

	err := sn.CreateCharacter("X", catalog.Race("gnome"))
	assert.ErrorIs(t, err, ErrUnknownID)

	require.NoError(t, sn.CreateCharacter("", catalog.RaceElf))
	assert.NotEmpty(t, sn.Snapshot().Player.Name)
}

func TestPlayActions_RequireCharacter(t *testing.T) {
	sn, _ := newTestSession(t)

	assert.ErrorIs(t, sn.BuildBuilding("lumber_mill"), ErrNoCharacter)
	assert.ErrorIs(t, sn.CompleteQuest("quest_1"), ErrNoCharacter)
	_, err := sn.Attack()
	assert.ErrorIs(t, err, ErrNoCharacter)
	_, err = sn.PerformAscension()
	assert.ErrorIs(t, err, ErrNoCharacter)
}

func TestTick_ProductionAndTimeAccounting(t *testing.T) {
	sn, clock := newPlayingSession(t)
	require.NoError(t, sn.BuildBuilding("lumber_mill"))

	clock.Advance(2 * time.Second)
	sn.Tick(clock.Now())

	st := sn.Snapshot()
	// Human race: no production bonus.
	assert.InDelta(t, 2.0, st.Resources[catalog.ResourceWood], 1e-9)
	assert.InDelta(t, 2.0, st.Clock.TotalGameTime, 1e-9)
	assert.InDelta(t, 2.0, st.Clock.CurrentRunTime, 1e-9)
	assert.InDelta(t, 2.0, st.LifetimeStats.PlayTime, 1e-9)
	assert.Equal(t, clock.Now().UnixMilli(), st.Clock.LastTick)

	rates := sn.Rates()
	assert.InDelta(t, 1.0, rates[catalog.ResourceWood], 1e-9)
}

func TestTick_RunsAchievementSweep(t *testing.T) {
	sn, clock := newPlayingSession(t)
	require.NoError(t, sn.AddResource(catalog.ResourceGold, 5000))

	clock.Advance(100 * time.Millisecond)
	sn.Tick(clock.Now())

	assert.Contains(t, sn.Snapshot().Achievements.Unlocked, "first_fortune")
}

func TestCatchUp_CappedAtTwoHours(t *testing.T) {
	sn, _ := newPlayingSession(t)
	require.NoError(t, sn.BuildBuilding("lumber_mill"))

	applied := sn.CatchUp(100000 * time.Second)
	assert.Equal(t, float64(7200), applied)

	st := sn.Snapshot()
	assert.InDelta(t, 7200, st.Resources[catalog.ResourceWood], 1e-6)
	assert.InDelta(t, 7200, st.Clock.TotalGameTime, 1e-6)
}

func TestCatchUp_DoesNotCountAsPlayTime(t *testing.T) {
	sn, _ := newPlayingSession(t)

	before := sn.Snapshot().LifetimeStats.PlayTime
	sn.CatchUp(90 * time.Second)

	st := sn.Snapshot()
	assert.Equal(t, before, st.LifetimeStats.PlayTime)
	assert.InDelta(t, 90, st.Clock.TotalGameTime, 1e-6)
}

func TestAddResource_RejectsNegative(t *testing.T) {
	sn, _ := newPlayingSession(t)

	before := sn.Snapshot().Resources[catalog.ResourceGold]
	err := sn.AddResource(catalog.ResourceGold, -1000)
	require.ErrorIs(t, err, ErrNegativeAmount)
	assert.Equal(t, before, sn.Snapshot().Resources[catalog.ResourceGold])
}

func TestSnapshot_CarriesStableSaveID(t *testing.T) {
	sn, _ := newPlayingSession(t)

	first := sn.Snapshot().ID
	require.NotEmpty(t, first)
	assert.Equal(t, first, sn.Snapshot().ID)
}

func TestCatchUp_ShortAbsence(t *testing.T) {
	sn, _ := newPlayingSession(t)
	require.NoError(t, sn.BuildBuilding("lumber_mill"))

	applied := sn.CatchUp(90 * time.Second)
	assert.InDelta(t, 90, applied, 1e-9)
	assert.InDelta(t, 90, sn.Snapshot().Resources[catalog.ResourceWood], 1e-6)
}

func TestSetLevel_AdjustsExpFloor(t *testing.T) {
	sn, _ := newPlayingSession(t)

	require.NoError(t, sn.SetLevel(25))
	st := sn.Snapshot()
	assert.Equal(t, 25, st.Player.Level)
	assert.Equal(t, ExpAtLevel(25), st.Player.Exp)
	assert.Equal(t, ExpForNextLevel(25), st.Player.ExpToNext)

	assert.Error(t, sn.SetLevel(0))
}

func TestSnapshot_IsolatedFromSession(t *testing.T) {
	sn, _ := newPlayingSession(t)
	require.NoError(t, sn.BuildBuilding("lumber_mill"))

	snap := sn.Snapshot()
	snap.Resources[catalog.ResourceGold] = 9999999
	snap.Buildings["lumber_mill"] = 50
	snap.Quests.Completed = append(snap.Quests.Completed, "quest_1")

	st := sn.Snapshot()
	assert.NotEqual(t, float64(9999999), st.Resources[catalog.ResourceGold])
	assert.Equal(t, 1, st.Buildings["lumber_mill"])
	assert.Empty(t, st.Quests.Completed)
}

func TestSessionAttack_EventuallyKills(t *testing.T) {
	sn, _ := newPlayingSession(t)

	killed := false
	for i := 0; i < 100 && !killed; i++ {
		res, err := sn.Attack()
		require.NoError(t, err)
		killed = res.Defeated
	}
	assert.True(t, killed)
	assert.Equal(t, 1, sn.Snapshot().Combat.TotalDefeated)
}

func TestEvents_RecordedAndLimited(t *testing.T) {
	sn, _ := newPlayingSession(t)
	require.NoError(t, sn.BuildBuilding("lumber_mill"))

	events := sn.Events(0)
	require.NotEmpty(t, events)
	assert.Equal(t, "progress", events[0].Category)

	limited := sn.Events(1)
	assert.Len(t, limited, 1)
}

func TestReset_WipesEverything(t *testing.T) {
	sn, _ := newPlayingSession(t)
	require.NoError(t, sn.AddResource(catalog.ResourceGold, 5000))

	sn.Reset()
	st := sn.Snapshot()
	assert.False(t, st.Clock.Initialized)
	assert.Equal(t, float64(catalog.StartingGold), st.Resources[catalog.ResourceGold])
	assert.Empty(t, sn.Events(0))
}
