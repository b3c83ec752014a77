// Package game implements the progression and economy engine: the resource
// ledger, building production, quests, combat, achievements, the special
// quest scheduler and the ascension/transcendence prestige machine. One
// Session owns one State; every mutation happens under its lock.
package game

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/echoforge/internal/catalog"
)

// PlayerProfile is the character sheet. Race and name are fixed at creation;
// level and expToNext are derived from exp.
type PlayerProfile struct {
	Name      string       `json:"name"`
	Race      catalog.Race `json:"race"`
	Level     int          `json:"level"`
	Exp       float64      `json:"exp"`
	ExpToNext float64      `json:"exp_to_next_level"`
}

// LifetimeStats are cumulative counters that survive every prestige reset.
type LifetimeStats struct {
	TotalGoldEarned      float64 `json:"total_gold_earned"`
	TotalQuestsCompleted int     `json:"total_quests_completed"`
	TotalBuildingsBuilt  int     `json:"total_buildings_built"`
	TotalAscensions      int     `json:"total_ascensions"`
	TotalTranscendences  int     `json:"total_transcendences"`
	PlayTime             float64 `json:"play_time"` // seconds
}

// QuestState tracks standard quest progress. Accepted maps a timed quest id
// to the game-time second it was accepted at.
type QuestState struct {
	Completed []string           `json:"completed"`
	Accepted  map[string]float64 `json:"accepted"`
}

// AchievementState tracks unlocked and claimed achievement ids. Both sets
// are append-only; Claimed is always a subset of Unlocked.
type AchievementState struct {
	Unlocked []string `json:"unlocked"`
	Claimed  []string `json:"claimed"`
}

// ChallengeState tracks completed challenge tiers; append-only, survives
// prestige.
type ChallengeState struct {
	Completed []string `json:"completed"`
}

// ActiveMonster is the monster currently being fought.
type ActiveMonster struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Tier    int     `json:"tier"`
	HP      float64 `json:"hp"`
	MaxHP   float64 `json:"max_hp"`
	GoldMin int     `json:"gold_min"`
	GoldMax int     `json:"gold_max"`
	ExpMin  int     `json:"exp_min"`
	ExpMax  int     `json:"exp_max"`
}

// CombatState tracks kill counters (lifetime, survive prestige) and the
// currently engaged monster.
type CombatState struct {
	TotalDefeated    int            `json:"total_defeated"`
	MonstersDefeated map[string]int `json:"monsters_defeated"`
	CurrentMonster   *ActiveMonster `json:"current_monster,omitempty"`
}

// EquipmentState is the owned-equipment set; append-only, survives prestige.
// All owned equipment bonuses are active; there are no slots.
type EquipmentState struct {
	Owned []string `json:"owned"`
}

// SpecialQuest is a generated timed quest occupying a cadence slot.
type SpecialQuest struct {
	ID               string                       `json:"id"`
	Name             string                       `json:"name"`
	Description      string                       `json:"description"`
	Cadence          catalog.Cadence              `json:"cadence"`
	Requirements     map[catalog.Resource]float64 `json:"requirements"`
	MonstersDefeated int                          `json:"monsters_defeated"`
	RewardResources  map[catalog.Resource]float64 `json:"reward_resources"`
	RewardExp        float64                      `json:"reward_exp"`
	RewardEquipment  string                       `json:"reward_equipment"`
	AvailableUntil   time.Time                    `json:"available_until"`
}

// SpecialQuestState holds at most one active quest per cadence plus the
// append-only completed set.
type SpecialQuestState struct {
	Daily     *SpecialQuest `json:"daily,omitempty"`
	Weekly    *SpecialQuest `json:"weekly,omitempty"`
	Monthly   *SpecialQuest `json:"monthly,omitempty"`
	Completed []string      `json:"completed"`
}

// PrestigeState is one prestige tier's counter and banked power.
type PrestigeState struct {
	Count int     `json:"count"`
	Power float64 `json:"power"`
}

// ClockState carries tick bookkeeping across saves.
type ClockState struct {
	LastTick       int64   `json:"last_tick"` // unix milliseconds
	TotalGameTime  float64 `json:"total_game_time"`  // seconds
	CurrentRunTime float64 `json:"current_run_time"` // seconds, reset by prestige
	Initialized    bool    `json:"is_initialized"`   // character exists
}

// State is the complete game snapshot, serialized for persistence as one
// unit. No sub-component owns any piece of it independently.
type State struct {
	ID            string                       `json:"id"` // save identity
	Player        PlayerProfile                `json:"player"`
	Resources     map[catalog.Resource]float64 `json:"resources"`
	LifetimeStats LifetimeStats                `json:"lifetime_stats"`
	Buildings     map[string]int               `json:"buildings"`
	Quests        QuestState                   `json:"quests"`
	Achievements  AchievementState             `json:"achievements"`
	Challenges    ChallengeState               `json:"challenges"`
	Combat        CombatState                  `json:"combat"`
	Equipment     EquipmentState               `json:"equipment"`
	SpecialQuests SpecialQuestState            `json:"special_quests"`
	Ascension     PrestigeState                `json:"ascension"`
	Transcendence PrestigeState                `json:"transcendence"`
	Clock         ClockState                   `json:"game_state"`
}

// NewState returns the first-run state: a fresh save identity, the starting
// gold allotment and empty everything else.
func NewState(now time.Time) *State {
	return &State{
		ID: uuid.NewString(),
		Player: PlayerProfile{
			Level:     1,
			ExpToNext: ExpForNextLevel(1),
		},
		Resources: startingResources(),
		LifetimeStats: LifetimeStats{
			TotalGoldEarned: catalog.StartingGold,
		},
		Buildings: map[string]int{},
		Quests: QuestState{
			Completed: []string{},
			Accepted:  map[string]float64{},
		},
		Achievements: AchievementState{Unlocked: []string{}, Claimed: []string{}},
		Challenges:   ChallengeState{Completed: []string{}},
		Combat: CombatState{
			MonstersDefeated: map[string]int{},
		},
		Equipment:     EquipmentState{Owned: []string{}},
		SpecialQuests: SpecialQuestState{Completed: []string{}},
		Clock: ClockState{
			LastTick: now.UnixMilli(),
		},
	}
}

// Normalize backfills nil maps and slices after a JSON load so the engine
// never branches on nil collections. A save without an id gets one.
func (s *State) Normalize() {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Resources == nil {
		s.Resources = startingResources()
	}
	for _, r := range catalog.AllResources {
		if _, ok := s.Resources[r]; !ok {
			s.Resources[r] = 0
		}
	}
	if s.Buildings == nil {
		s.Buildings = map[string]int{}
	}
	if s.Quests.Completed == nil {
		s.Quests.Completed = []string{}
	}
	if s.Quests.Accepted == nil {
		s.Quests.Accepted = map[string]float64{}
	}
	if s.Achievements.Unlocked == nil {
		s.Achievements.Unlocked = []string{}
	}
	if s.Achievements.Claimed == nil {
		s.Achievements.Claimed = []string{}
	}
	if s.Challenges.Completed == nil {
		s.Challenges.Completed = []string{}
	}
	if s.Combat.MonstersDefeated == nil {
		s.Combat.MonstersDefeated = map[string]int{}
	}
	if s.Equipment.Owned == nil {
		s.Equipment.Owned = []string{}
	}
	if s.SpecialQuests.Completed == nil {
		s.SpecialQuests.Completed = []string{}
	}
	if s.Player.Level < 1 {
		s.Player.Level = 1
		s.Player.ExpToNext = ExpForNextLevel(1)
	}
}

func startingResources() map[catalog.Resource]float64 {
	res := make(map[catalog.Resource]float64, len(catalog.AllResources))
	for _, r := range catalog.AllResources {
		res[r] = 0
	}
	res[catalog.ResourceGold] = catalog.StartingGold
	return res
}

// TotalBuildings sums owned counts across every building type.
func (s *State) TotalBuildings() int {
	total := 0
	for _, count := range s.Buildings {
		total += count
	}
	return total
}

// LevelForExp derives player level from accumulated experience.
func LevelForExp(exp float64) int {
	return int(math.Floor(math.Sqrt(exp/100))) + 1
}

// ExpForNextLevel returns the experience threshold that ends the given level.
func ExpForNextLevel(level int) float64 {
	return float64(level*level) * 100
}

// ExpAtLevel returns the experience floor at which a level begins.
func ExpAtLevel(level int) float64 {
	if level <= 1 {
		return 0
	}
	return float64((level-1)*(level-1)) * 100
}

// clone deep-copies the state, including every map, slice and pointer
// field, so the copy can be serialized without holding the session lock.
func (s *State) clone() *State {
	out := *s

	out.Resources = make(map[catalog.Resource]float64, len(s.Resources))
	for r, v := range s.Resources {
		out.Resources[r] = v
	}
	out.Buildings = make(map[string]int, len(s.Buildings))
	for id, n := range s.Buildings {
		out.Buildings[id] = n
	}
	out.Quests.Completed = append([]string(nil), s.Quests.Completed...)
	out.Quests.Accepted = make(map[string]float64, len(s.Quests.Accepted))
	for id, at := range s.Quests.Accepted {
		out.Quests.Accepted[id] = at
	}
	out.Achievements.Unlocked = append([]string(nil), s.Achievements.Unlocked...)
	out.Achievements.Claimed = append([]string(nil), s.Achievements.Claimed...)
	out.Challenges.Completed = append([]string(nil), s.Challenges.Completed...)
	out.Combat.MonstersDefeated = make(map[string]int, len(s.Combat.MonstersDefeated))
	for id, n := range s.Combat.MonstersDefeated {
		out.Combat.MonstersDefeated[id] = n
	}
	if s.Combat.CurrentMonster != nil {
		m := *s.Combat.CurrentMonster
		out.Combat.CurrentMonster = &m
	}
	out.Equipment.Owned = append([]string(nil), s.Equipment.Owned...)
	out.SpecialQuests.Daily = cloneSpecialQuest(s.SpecialQuests.Daily)
	out.SpecialQuests.Weekly = cloneSpecialQuest(s.SpecialQuests.Weekly)
	out.SpecialQuests.Monthly = cloneSpecialQuest(s.SpecialQuests.Monthly)
	out.SpecialQuests.Completed = append([]string(nil), s.SpecialQuests.Completed...)

	return &out
}

func cloneSpecialQuest(q *SpecialQuest) *SpecialQuest {
	if q == nil {
		return nil
	}
	out := *q
	out.Requirements = make(map[catalog.Resource]float64, len(q.Requirements))
	for r, v := range q.Requirements {
		out.Requirements[r] = v
	}
	out.RewardResources = make(map[catalog.Resource]float64, len(q.RewardResources))
	for r, v := range q.RewardResources {
		out.RewardResources[r] = v
	}
	return &out
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
