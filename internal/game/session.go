package game

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/talgya/echoforge/internal/catalog"
)

// Event is a notable occurrence surfaced to observers.
type Event struct {
	Time        time.Time `json:"time"`
	Description string    `json:"description"`
	Category    string    `json:"category"` // "progress", "quest", "combat", "prestige", "achievement"
}

// Session owns one State and serializes every read and write behind a
// single lock: nearly every operation reads resources, buildings and
// multipliers to decide one write, so fine-grained locking would buy
// nothing but races.
type Session struct {
	mu    sync.Mutex
	cat   *catalog.Catalog
	clock Clock
	rng   *RNG
	state *State

	rates  map[catalog.Resource]float64
	events []Event
}

// NewSession wraps a loaded state, or a fresh one when state is nil.
// The catalog must already be validated.
func NewSession(cat *catalog.Catalog, clock Clock, rng *RNG, state *State) *Session {
	if state == nil {
		state = NewState(clock.Now())
	}
	state.Normalize()
	return &Session{
		cat:   cat,
		clock: clock,
		rng:   rng,
		state: state,
		rates: map[catalog.Resource]float64{},
	}
}

// Catalog exposes the injected content tables.
func (sn *Session) Catalog() *catalog.Catalog { return sn.cat }

func (sn *Session) record(category, format string, args ...any) {
	sn.events = append(sn.events, Event{
		Time:        sn.clock.Now(),
		Description: fmt.Sprintf(format, args...),
		Category:    category,
	})
	// Bound the ring.
	if len(sn.events) > 1000 {
		sn.events = sn.events[len(sn.events)-1000:]
	}
}

func (sn *Session) requireCharacter() error {
	if !sn.state.Clock.Initialized {
		return ErrNoCharacter
	}
	return nil
}

// CreateCharacter fixes name and race once. An empty name draws from the
// race's name pool. Creating over an existing character fails.
func (sn *Session) CreateCharacter(name string, race catalog.Race) error {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	if sn.state.Clock.Initialized {
		return ErrAlreadyCompleted
	}
	if _, ok := sn.cat.Races[race]; !ok {
		return ErrUnknownID
	}
	if name == "" {
		name = catalog.RandomName(race, sn.rng.Source())
	}

	sn.state.Player.Name = name
	sn.state.Player.Race = race
	sn.state.Player.Level = 1
	sn.state.Player.Exp = 0
	sn.state.Player.ExpToNext = ExpForNextLevel(1)
	sn.state.Clock.Initialized = true

	sn.record("progress", "%s the %s begins their tale", name, race)
	slog.Info("character created", "name", name, "race", race)
	return nil
}

// Tick advances the engine one step: production for the elapsed interval,
// time accounting, the achievement sweep and the special-quest scheduler.
func (sn *Session) Tick(now time.Time) {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	st := sn.state
	dt := float64(now.UnixMilli()-st.Clock.LastTick) / 1000
	if dt < 0 {
		dt = 0
	}
	st.Clock.LastTick = now.UnixMilli()

	sn.rates = st.productionStep(sn.cat, dt)

	st.Clock.TotalGameTime += dt
	st.Clock.CurrentRunTime += dt
	st.LifetimeStats.PlayTime += dt

	for _, id := range st.checkAchievements(sn.cat) {
		if ach, ok := sn.cat.Achievement(id); ok {
			sn.record("achievement", "achievement unlocked: %s", ach.Name)
		}
	}
	st.updateSpecialQuests(sn.cat, now)
}

// offlineCapSeconds bounds catch-up progress at 2 hours. The clamp, not a
// decay curve, is the contract.
const offlineCapSeconds = 7200

// CatchUp applies one lump production step for elapsed wall time, capped at
// 2 hours. Quests, achievements and the scheduler are not replayed per
// sub-interval; they re-evaluate on the next live tick. Game time advances
// (so timed quests mature offline) but LifetimeStats.PlayTime counts live
// ticks only.
func (sn *Session) CatchUp(elapsed time.Duration) float64 {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	seconds := elapsed.Seconds()
	if seconds < 0 {
		seconds = 0
	}
	if seconds > offlineCapSeconds {
		seconds = offlineCapSeconds
	}

	sn.rates = sn.state.productionStep(sn.cat, seconds)
	sn.state.Clock.TotalGameTime += seconds
	sn.state.Clock.CurrentRunTime += seconds
	sn.state.Clock.LastTick = sn.clock.Now().UnixMilli()
	return seconds
}

// BuildBuilding purchases one unit.
func (sn *Session) BuildBuilding(id string) error {
	return sn.BuildBuildings(id, 1)
}

// BuildBuildings purchases k units atomically: either the full cumulative
// cost is debited and the count raised by k, or nothing changes.
func (sn *Session) BuildBuildings(id string, k int) error {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	if err := sn.requireCharacter(); err != nil {
		return err
	}
	b, ok := sn.cat.Building(id)
	if !ok {
		return ErrUnknownID
	}
	if err := sn.state.buildBuildings(b, k); err != nil {
		return err
	}
	sn.record("progress", "built %dx %s", k, b.Name)
	return nil
}

// BuildingCost returns the cumulative cost of the next k units.
func (sn *Session) BuildingCost(id string, k int) (map[catalog.Resource]float64, error) {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	b, ok := sn.cat.Building(id)
	if !ok {
		return nil, ErrUnknownID
	}
	return BulkCost(b, sn.state.Buildings[id], k), nil
}

// MaxAffordable returns the largest purchase the ledger covers right now.
func (sn *Session) MaxAffordable(id string) (int, error) {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	b, ok := sn.cat.Building(id)
	if !ok {
		return 0, ErrUnknownID
	}
	return sn.state.maxAffordable(b), nil
}

// AcceptQuest starts a timed quest's waiting period.
func (sn *Session) AcceptQuest(id string) error {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	if err := sn.requireCharacter(); err != nil {
		return err
	}
	q, ok := sn.cat.Quest(id)
	if !ok {
		return ErrUnknownID
	}
	return sn.state.acceptQuest(q)
}

// CompleteQuest completes a standard quest.
func (sn *Session) CompleteQuest(id string) error {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	if err := sn.requireCharacter(); err != nil {
		return err
	}
	q, ok := sn.cat.Quest(id)
	if !ok {
		return ErrUnknownID
	}
	mult := totalMultipliers(sn.state, sn.cat)
	if err := sn.state.completeQuest(sn.cat, q, mult); err != nil {
		return err
	}
	sn.record("quest", "quest completed: %s", q.Name)
	return nil
}

// CompleteAllQuests attempts every eligible quest in catalog order and
// returns how many completed.
func (sn *Session) CompleteAllQuests() (int, error) {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	if err := sn.requireCharacter(); err != nil {
		return 0, err
	}
	n := sn.state.completeAllQuests(sn.cat)
	if n > 0 {
		sn.record("quest", "completed %d quests", n)
	}
	return n, nil
}

// ClaimAchievement claims an unlocked achievement's reward.
func (sn *Session) ClaimAchievement(id string) error {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	if err := sn.requireCharacter(); err != nil {
		return err
	}
	if err := sn.state.claimAchievement(sn.cat, id); err != nil {
		return err
	}
	if ach, ok := sn.cat.Achievement(id); ok {
		sn.record("achievement", "achievement claimed: %s", ach.Name)
	}
	return nil
}

// Attack lands one hit on the current monster.
func (sn *Session) Attack() (AttackResult, error) {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	if err := sn.requireCharacter(); err != nil {
		return AttackResult{}, err
	}
	mult := totalMultipliers(sn.state, sn.cat)
	res := sn.state.attack(sn.cat, sn.rng, mult)
	if res.Defeated {
		sn.record("combat", "%s defeated", res.Monster.Name)
	}
	return res, nil
}

// ClaimChallengeTier claims a challenge chain tier.
func (sn *Session) ClaimChallengeTier(chainID, tierID string) error {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	if err := sn.requireCharacter(); err != nil {
		return err
	}
	tier, err := sn.state.claimChallengeTier(sn.cat, chainID, tierID)
	if err != nil {
		return err
	}
	sn.record("combat", "challenge tier claimed: %s", tier.Name)
	return nil
}

// CompleteSpecialQuest resolves the active quest in a cadence slot.
func (sn *Session) CompleteSpecialQuest(cadence catalog.Cadence) error {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	if err := sn.requireCharacter(); err != nil {
		return err
	}
	mult := totalMultipliers(sn.state, sn.cat)
	q, err := sn.state.completeSpecialQuest(sn.cat, cadence, mult)
	if err != nil {
		return err
	}
	sn.record("quest", "special quest completed: %s", q.Name)
	return nil
}

// PerformAscension runs the ascension reset; returns the power gained.
func (sn *Session) PerformAscension() (float64, error) {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	if err := sn.requireCharacter(); err != nil {
		return 0, err
	}
	gain, err := sn.state.performAscension()
	if err != nil {
		return 0, err
	}
	sn.record("prestige", "ascended: +%.0f power (total %.0f)", gain, sn.state.Ascension.Power)
	slog.Info("ascension performed", "power_gain", gain, "count", sn.state.Ascension.Count)
	return gain, nil
}

// PerformTranscendence runs the transcendence reset; returns the power gained.
func (sn *Session) PerformTranscendence() (float64, error) {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	if err := sn.requireCharacter(); err != nil {
		return 0, err
	}
	gain, err := sn.state.performTranscendence()
	if err != nil {
		return 0, err
	}
	sn.record("prestige", "transcended: +%.1f power (total %.1f)", gain, sn.state.Transcendence.Power)
	slog.Info("transcendence performed", "power_gain", gain, "count", sn.state.Transcendence.Count)
	return gain, nil
}

// AddResource credits an arbitrary amount of a resource. Privileged surface.
// The amount must be non-negative; the ledger never goes below zero.
func (sn *Session) AddResource(r catalog.Resource, amount float64) error {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	if amount < 0 {
		return ErrNegativeAmount
	}
	valid := false
	for _, known := range catalog.AllResources {
		if r == known {
			valid = true
			break
		}
	}
	if !valid {
		return ErrUnknownID
	}
	sn.state.credit(r, amount)
	return nil
}

// AddExp credits raw experience. Privileged surface.
func (sn *Session) AddExp(amount float64) bool {
	sn.mu.Lock()
	defer sn.mu.Unlock()
	return sn.state.addExp(amount)
}

// SetLevel adjusts exp to the floor of the requested level. Privileged
// surface.
func (sn *Session) SetLevel(level int) error {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	if level < 1 {
		return ErrNotAvailable
	}
	sn.state.Player.Exp = ExpAtLevel(level)
	sn.state.Player.Level = level
	sn.state.Player.ExpToNext = ExpForNextLevel(level)
	return nil
}

// UnlockAchievement force-unlocks an achievement by id. Privileged surface.
func (sn *Session) UnlockAchievement(id string) error {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	if _, ok := sn.cat.Achievement(id); !ok {
		return ErrUnknownID
	}
	if contains(sn.state.Achievements.Unlocked, id) {
		return ErrAlreadyCompleted
	}
	sn.state.Achievements.Unlocked = append(sn.state.Achievements.Unlocked, id)
	return nil
}

// UnlockQuest force-marks a quest completed by id, skipping its level gate,
// waiting period and requirements. No rewards are granted. Privileged
// surface.
func (sn *Session) UnlockQuest(id string) error {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	if _, ok := sn.cat.Quest(id); !ok {
		return ErrUnknownID
	}
	if contains(sn.state.Quests.Completed, id) {
		return ErrAlreadyCompleted
	}
	sn.state.Quests.Completed = append(sn.state.Quests.Completed, id)
	delete(sn.state.Quests.Accepted, id)
	sn.state.LifetimeStats.TotalQuestsCompleted++
	return nil
}

// Reset discards the entire state, including prestige and lifetime
// counters, and starts over from first run. Privileged surface.
func (sn *Session) Reset() {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	sn.state = NewState(sn.clock.Now())
	sn.rates = map[catalog.Resource]float64{}
	sn.events = nil
	slog.Warn("game state wiped")
}

// Multipliers returns the current final channel multipliers.
func (sn *Session) Multipliers() Multipliers {
	sn.mu.Lock()
	defer sn.mu.Unlock()
	return totalMultipliers(sn.state, sn.cat)
}

// Rates returns the per-second production rates from the latest step.
func (sn *Session) Rates() map[catalog.Resource]float64 {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	out := make(map[catalog.Resource]float64, len(sn.rates))
	for r, v := range sn.rates {
		out[r] = v
	}
	return out
}

// Events returns up to limit most recent events, newest last.
func (sn *Session) Events(limit int) []Event {
	sn.mu.Lock()
	defer sn.mu.Unlock()

	start := 0
	if limit > 0 && len(sn.events) > limit {
		start = len(sn.events) - limit
	}
	out := make([]Event, len(sn.events)-start)
	copy(out, sn.events[start:])
	return out
}

// Snapshot returns a deep copy of the State, safe to serialize outside the
// lock. It is taken under the same exclusion boundary as mutations, so it
// can never observe a half-applied one.
func (sn *Session) Snapshot() *State {
	sn.mu.Lock()
	defer sn.mu.Unlock()
	return sn.state.clone()
}
