package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/echoforge/internal/catalog"
)

func TestLoopStep_AdvancesSession(t *testing.T) {
	sn, clock := newPlayingSession(t)
	require.NoError(t, sn.BuildBuilding("lumber_mill"))

	l := NewLoop(sn, clock)
	l.lastSave = clock.Now()

	var ticks []uint64
	l.OnTick = func(tick uint64) { ticks = append(ticks, tick) }

	clock.Advance(100 * time.Millisecond)
	l.step()
	clock.Advance(100 * time.Millisecond)
	l.step()

	assert.Equal(t, []uint64{1, 2}, ticks)
	assert.InDelta(t, 0.2, sn.Snapshot().Resources[catalog.ResourceWood], 1e-9)
}

func TestLoopStep_AutosaveCadence(t *testing.T) {
	sn, clock := newPlayingSession(t)
	l := NewLoop(sn, clock)
	l.lastSave = clock.Now()

	saves := 0
	l.OnAutosave = func() { saves++ }

	// 29s in: not yet due.
	clock.Advance(29 * time.Second)
	l.step()
	assert.Zero(t, saves)

	clock.Advance(2 * time.Second)
	l.step()
	assert.Equal(t, 1, saves)

	// Cadence resets after firing.
	clock.Advance(time.Second)
	l.step()
	assert.Equal(t, 1, saves)

	clock.Advance(DefaultAutosaveEvery)
	l.step()
	assert.Equal(t, 2, saves)
}

func TestLoopDefaults(t *testing.T) {
	sn, clock := newTestSession(t)
	l := NewLoop(sn, clock)

	assert.Equal(t, DefaultTickInterval, l.Interval)
	assert.Equal(t, DefaultAutosaveEvery, l.AutosaveEvery)
}

func TestLoopStop_IsIdempotent(t *testing.T) {
	sn, clock := newTestSession(t)
	l := NewLoop(sn, clock)

	l.Stop()
	l.Stop()

	select {
	case <-l.stop:
	default:
		t.Fatal("stop channel not closed")
	}
}

func TestLoopRun_ExitsOnStop(t *testing.T) {
	sn, clock := newPlayingSession(t)
	l := NewLoop(sn, clock)
	l.Interval = time.Millisecond

	done := make(chan struct{})
	go func() {
		l.Run()
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	l.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not exit after Stop")
	}
}
