package game

import (
	"fmt"
	"time"

	"github.com/talgya/echoforge/internal/catalog"
)

// Special quest windows open for one hour each evening, local time.
const (
	specialWindowStartHour = 20
	specialWindowEndHour   = 21

	// Weekly quests appear on Saturdays only.
	specialWeeklyWeekday = time.Saturday
)

// windowOpen reports whether the cadence's window is open at now. Daily
// opens every evening, weekly only on the fixed weekday, monthly only on the
// last calendar day of the month.
func windowOpen(cadence catalog.Cadence, now time.Time) bool {
	hour := now.Hour()
	if hour < specialWindowStartHour || hour >= specialWindowEndHour {
		return false
	}
	switch cadence {
	case catalog.CadenceDaily:
		return true
	case catalog.CadenceWeekly:
		return now.Weekday() == specialWeeklyWeekday
	case catalog.CadenceMonthly:
		return now.Day() == lastDayOfMonth(now)
	}
	return false
}

func lastDayOfMonth(now time.Time) int {
	firstOfNext := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
	return firstOfNext.AddDate(0, 0, -1).Day()
}

// weekOfYear counts whole weeks elapsed since January 1st.
func weekOfYear(now time.Time) int {
	jan1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	return int(now.Sub(jan1).Hours() / 24 / 7)
}

func windowEnd(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), specialWindowEndHour, 0, 0, 0, now.Location())
}

// pickEquipment indexes the cadence's ordered pool by calendar position, so
// the same date always selects the same reward.
func pickEquipment(cat *catalog.Catalog, tier catalog.Cadence, index int) string {
	pool := cat.EquipmentPool(tier)
	return pool[index%len(pool)]
}

// GenerateDailyQuest builds the daily quest for the given date. Identity is
// a pure function of the date: regenerating within the same window yields
// the same id and the same equipment reward.
func GenerateDailyQuest(cat *catalog.Catalog, now time.Time) *SpecialQuest {
	return &SpecialQuest{
		ID:          fmt.Sprintf("daily_quest_%s", now.Format("2006-01-02")),
		Name:        "Daily Challenge",
		Description: "Complete the daily challenge for exclusive equipment",
		Cadence:     catalog.CadenceDaily,
		Requirements: map[catalog.Resource]float64{
			catalog.ResourceGold: 50000,
		},
		MonstersDefeated: 100,
		RewardResources: map[catalog.Resource]float64{
			catalog.ResourceGold: 100000,
		},
		RewardExp:       5000,
		RewardEquipment: pickEquipment(cat, catalog.CadenceDaily, now.YearDay()),
		AvailableUntil:  windowEnd(now),
	}
}

// GenerateWeeklyQuest builds the weekly quest for the given date.
func GenerateWeeklyQuest(cat *catalog.Catalog, now time.Time) *SpecialQuest {
	return &SpecialQuest{
		ID:          fmt.Sprintf("weekly_quest_%s", now.Format("2006-01-02")),
		Name:        "Weekly Legendary Trial",
		Description: "Prove your worth in the legendary trial",
		Cadence:     catalog.CadenceWeekly,
		Requirements: map[catalog.Resource]float64{
			catalog.ResourceGold:    500000,
			catalog.ResourceMithril: 100,
		},
		MonstersDefeated: 500,
		RewardResources: map[catalog.Resource]float64{
			catalog.ResourceGold:        1000000,
			catalog.ResourceDragonscale: 50,
		},
		RewardExp:       25000,
		RewardEquipment: pickEquipment(cat, catalog.CadenceWeekly, weekOfYear(now)),
		AvailableUntil:  windowEnd(now),
	}
}

// GenerateMonthlyQuest builds the monthly quest for the given date.
func GenerateMonthlyQuest(cat *catalog.Catalog, now time.Time) *SpecialQuest {
	return &SpecialQuest{
		ID:          fmt.Sprintf("monthly_quest_%s", now.Format("2006-01-02")),
		Name:        "Monthly Epic Saga",
		Description: "Complete the ultimate monthly challenge",
		Cadence:     catalog.CadenceMonthly,
		Requirements: map[catalog.Resource]float64{
			catalog.ResourceGold:          10000000,
			catalog.ResourceArcaneEssence: 1000,
			catalog.ResourceDragonscale:   500,
		},
		MonstersDefeated: 5000,
		RewardResources: map[catalog.Resource]float64{
			catalog.ResourceGold:          50000000,
			catalog.ResourceEtherealShard: 500,
		},
		RewardExp:       100000,
		RewardEquipment: pickEquipment(cat, catalog.CadenceMonthly, int(now.Month())-1),
		AvailableUntil:  windowEnd(now),
	}
}

// updateSpecialQuests re-evaluates all three cadence slots against the
// current time: open windows populate an empty or stale slot unless the
// date's quest was already completed; closed windows clear the slot.
func (s *State) updateSpecialQuests(cat *catalog.Catalog, now time.Time) {
	type slot struct {
		cadence  catalog.Cadence
		ptr      **SpecialQuest
		generate func(*catalog.Catalog, time.Time) *SpecialQuest
	}
	slots := []slot{
		{catalog.CadenceDaily, &s.SpecialQuests.Daily, GenerateDailyQuest},
		{catalog.CadenceWeekly, &s.SpecialQuests.Weekly, GenerateWeeklyQuest},
		{catalog.CadenceMonthly, &s.SpecialQuests.Monthly, GenerateMonthlyQuest},
	}

	for _, sl := range slots {
		if !windowOpen(sl.cadence, now) {
			// Unclaimed special quests expire silently with the window.
			*sl.ptr = nil
			continue
		}
		q := sl.generate(cat, now)
		if contains(s.SpecialQuests.Completed, q.ID) {
			continue
		}
		if *sl.ptr == nil || (*sl.ptr).ID != q.ID {
			*sl.ptr = q
		}
	}
}

// specialSlot returns the active-quest slot for a cadence.
func (s *State) specialSlot(cadence catalog.Cadence) **SpecialQuest {
	switch cadence {
	case catalog.CadenceDaily:
		return &s.SpecialQuests.Daily
	case catalog.CadenceWeekly:
		return &s.SpecialQuests.Weekly
	case catalog.CadenceMonthly:
		return &s.SpecialQuests.Monthly
	}
	return nil
}

// completeSpecialQuest resolves the active quest in the cadence slot:
// requirements are checked (kill counts read the lifetime counter without
// consuming it), resources debited atomically, rewards credited through the
// gold and exp channels, equipment granted, and the quest id recorded so the
// same date cannot reissue it.
func (s *State) completeSpecialQuest(cat *catalog.Catalog, cadence catalog.Cadence, mult Multipliers) (*SpecialQuest, error) {
	slotPtr := s.specialSlot(cadence)
	if slotPtr == nil {
		return nil, ErrUnknownID
	}
	q := *slotPtr
	if q == nil {
		return nil, ErrNotAvailable
	}
	if contains(s.SpecialQuests.Completed, q.ID) {
		return nil, ErrAlreadyCompleted
	}
	if s.Combat.TotalDefeated < q.MonstersDefeated {
		return nil, ErrInsufficientResources
	}
	if !s.spend(q.Requirements) {
		return nil, ErrInsufficientResources
	}

	for r, amount := range q.RewardResources {
		if r == catalog.ResourceGold {
			amount *= mult.Gold
		}
		s.credit(r, amount)
	}
	if q.RewardExp > 0 {
		s.addExp(q.RewardExp * mult.Exp)
	}
	if q.RewardEquipment != "" {
		s.addEquipment(q.RewardEquipment)
	}

	s.SpecialQuests.Completed = append(s.SpecialQuests.Completed, q.ID)
	*slotPtr = nil
	return q, nil
}

// addEquipment grants an equipment id; owning a piece twice is impossible.
func (s *State) addEquipment(id string) bool {
	if contains(s.Equipment.Owned, id) {
		return false
	}
	s.Equipment.Owned = append(s.Equipment.Owned, id)
	return true
}
