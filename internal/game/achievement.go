package game

import "github.com/talgya/echoforge/internal/catalog"

// achievementMet evaluates an unlock condition against current and lifetime
// state. Pure read; unlocking is handled by the sweep.
func (s *State) achievementMet(req catalog.AchievementRequirement) bool {
	switch req.Type {
	case catalog.RequireResource:
		return s.Resources[req.Resource] >= req.Amount
	case catalog.RequireBuilding:
		return s.TotalBuildings() >= req.Count
	case catalog.RequireQuest:
		return len(s.Quests.Completed) >= req.Count
	case catalog.RequireLevel:
		return s.Player.Level >= req.Level
	case catalog.RequireAscension:
		return s.Ascension.Count >= req.Count
	case catalog.RequireTranscendence:
		return s.Transcendence.Count >= req.Count
	case catalog.RequireChallenge:
		return len(s.Challenges.Completed) >= req.Count
	}
	return false
}

// checkAchievements sweeps the catalog and unlocks every achievement whose
// requirement the current state satisfies. Runs once per tick; unlocks are
// append-only and never reverted even if the condition later lapses.
func (s *State) checkAchievements(cat *catalog.Catalog) []string {
	var unlocked []string
	for i := range cat.Achievements {
		ach := &cat.Achievements[i]
		if contains(s.Achievements.Unlocked, ach.ID) {
			continue
		}
		if s.achievementMet(ach.Requirement) {
			s.Achievements.Unlocked = append(s.Achievements.Unlocked, ach.ID)
			unlocked = append(unlocked, ach.ID)
		}
	}
	return unlocked
}

// claimAchievement grants an unlocked achievement's one-time reward. Flat
// resources are credited immediately; multiplier bonuses activate through
// aggregation once the id is in the claimed set. Double claims fail.
func (s *State) claimAchievement(cat *catalog.Catalog, id string) error {
	ach, ok := cat.Achievement(id)
	if !ok {
		return ErrUnknownID
	}
	if contains(s.Achievements.Claimed, id) {
		return ErrAlreadyCompleted
	}
	if !contains(s.Achievements.Unlocked, id) {
		return ErrNotAvailable
	}

	for r, amount := range ach.Reward.Resources {
		s.credit(r, amount)
	}
	s.Achievements.Claimed = append(s.Achievements.Claimed, id)
	return nil
}
