package game

import "github.com/talgya/echoforge/internal/catalog"

// addExp credits experience and rederives level. Returns whether the player
// leveled up.
func (s *State) addExp(amount float64) bool {
	s.Player.Exp += amount
	newLevel := LevelForExp(s.Player.Exp)
	leveledUp := newLevel > s.Player.Level
	s.Player.Level = newLevel
	s.Player.ExpToNext = ExpForNextLevel(newLevel)
	return leveledUp
}

// questUnlocked reports whether the quest's level gate is open.
func (s *State) questUnlocked(q *catalog.Quest) bool {
	return q.UnlockLevel == 0 || s.Player.Level >= q.UnlockLevel
}

// acceptQuest starts the waiting period of a time-gated quest. Accepting an
// already-accepted quest is a no-op.
func (s *State) acceptQuest(q *catalog.Quest) error {
	if !q.TimeGated() {
		return ErrNotAvailable
	}
	if contains(s.Quests.Completed, q.ID) {
		return ErrAlreadyCompleted
	}
	if !s.questUnlocked(q) {
		return ErrLocked
	}
	if _, ok := s.Quests.Accepted[q.ID]; ok {
		return nil
	}
	s.Quests.Accepted[q.ID] = s.Clock.TotalGameTime
	return nil
}

// completeQuest verifies the unlock gate and every requirement, then debits
// resource requirements atomically, credits rewards through the gold and exp
// channels, and marks the quest completed. Any failure leaves the state
// unchanged.
func (s *State) completeQuest(cat *catalog.Catalog, q *catalog.Quest, mult Multipliers) error {
	if contains(s.Quests.Completed, q.ID) {
		return ErrAlreadyCompleted
	}
	if !s.questUnlocked(q) {
		return ErrLocked
	}

	// Waiting-period gate: the quest must have been accepted and its period
	// (shortened by the quest-speed channel) must have elapsed.
	if q.TimeGated() {
		acceptedAt, ok := s.Quests.Accepted[q.ID]
		if !ok {
			return ErrNotAvailable
		}
		wait := q.CompletionTime
		if mult.QuestSpeed > 0 {
			wait = q.CompletionTime / mult.QuestSpeed
		}
		if s.Clock.TotalGameTime-acceptedAt < wait {
			return ErrNotAvailable
		}
	}

	if len(q.Requirements) > 0 && !s.spend(q.Requirements) {
		return ErrInsufficientResources
	}

	for r, amount := range q.Rewards.Resources {
		if r == catalog.ResourceGold {
			amount *= mult.Gold
		}
		s.credit(r, amount)
	}
	if q.Rewards.Exp > 0 {
		s.addExp(q.Rewards.Exp * mult.Exp)
	}

	s.Quests.Completed = append(s.Quests.Completed, q.ID)
	delete(s.Quests.Accepted, q.ID)
	s.LifetimeStats.TotalQuestsCompleted++
	return nil
}

// completeAllQuests attempts every not-yet-completed, unlocked quest in
// catalog order and returns the number completed. Earlier completions may
// spend resources later ones needed; first come, first served.
func (s *State) completeAllQuests(cat *catalog.Catalog) int {
	completed := 0
	for i := range cat.Quests {
		q := &cat.Quests[i]
		if contains(s.Quests.Completed, q.ID) || !s.questUnlocked(q) {
			continue
		}
		// Multipliers can change mid-pass when a completion levels the
		// player or credits gold, so recompute per attempt.
		// (Achievement claims don't happen here, but exp rewards do.)
		mult := totalMultipliers(s, cat)
		if err := s.completeQuest(cat, q, mult); err == nil {
			completed++
		}
	}
	return completed
}
