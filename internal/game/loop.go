package game

import (
	"log/slog"
	"time"
)

// Loop drives the session forward in real time: one production tick every
// Interval, plus periodic callbacks for autosave and broadcast.
type Loop struct {
	Session  *Session
	Interval time.Duration // base tick interval (default 100ms)

	// Callbacks populated during setup.
	OnTick     func(tick uint64) // every tick, after the session advanced
	OnAutosave func()            // every AutosaveEvery of wall time

	AutosaveEvery time.Duration

	tick     uint64
	lastSave time.Time
	clock    Clock
	stop     chan struct{}
}

// DefaultTickInterval is the production tick cadence.
const DefaultTickInterval = 100 * time.Millisecond

// DefaultAutosaveEvery is the autosave cadence.
const DefaultAutosaveEvery = 30 * time.Second

// NewLoop creates a tick loop over a session with default settings.
func NewLoop(sn *Session, clock Clock) *Loop {
	return &Loop{
		Session:       sn,
		Interval:      DefaultTickInterval,
		AutosaveEvery: DefaultAutosaveEvery,
		clock:         clock,
		stop:          make(chan struct{}),
	}
}

// Run starts the tick loop. Blocks until Stop() is called. Exit is signaled
// through the stop channel so Stop is safe from another goroutine.
func (l *Loop) Run() {
	l.lastSave = l.clock.Now()
	slog.Info("game loop started", "interval", l.Interval)

	for {
		select {
		case <-l.stop:
			slog.Info("game loop stopped", "tick", l.tick)
			return
		default:
		}

		start := time.Now()

		l.step()

		// Sleep for the remainder of the tick interval.
		elapsed := time.Since(start)
		if elapsed < l.Interval {
			select {
			case <-time.After(l.Interval - elapsed):
			case <-l.stop:
			}
		}
	}
}

// Stop halts the tick loop.
func (l *Loop) Stop() {
	select {
	case <-l.stop:
	default:
		close(l.stop)
	}
}

// step advances the session by one tick and fires due callbacks.
func (l *Loop) step() {
	l.tick++
	now := l.clock.Now()

	l.Session.Tick(now)

	if l.OnTick != nil {
		l.OnTick(l.tick)
	}

	if l.OnAutosave != nil && now.Sub(l.lastSave) >= l.AutosaveEvery {
		l.lastSave = now
		l.OnAutosave()
	}
}
