package game

import "github.com/talgya/echoforge/internal/catalog"

// Prestige thresholds.
const (
	AscensionLevelRequirement = 100
	AscensionGoldRequirement  = 1_000_000

	TranscendenceAscensionRequirement = 10
	TranscendenceGoldRequirement      = 1_000_000_000
)

// CanAscend reports ascension eligibility.
func (s *State) CanAscend() bool {
	return s.Player.Level >= AscensionLevelRequirement &&
		s.Resources[catalog.ResourceGold] >= AscensionGoldRequirement
}

// CanTranscend reports transcendence eligibility.
func (s *State) CanTranscend() bool {
	return s.Ascension.Count >= TranscendenceAscensionRequirement &&
		s.Resources[catalog.ResourceGold] >= TranscendenceGoldRequirement
}

// resetRun rolls the run-scoped state back to a fresh start: level, exp,
// resources, buildings, standard-quest progress and the per-run clock.
// Achievements, equipment, challenge progress, special-quest history and
// lifetime stats all survive.
func (s *State) resetRun() {
	s.Player.Level = 1
	s.Player.Exp = 0
	s.Player.ExpToNext = ExpForNextLevel(1)
	s.Resources = startingResources()
	s.Buildings = map[string]int{}
	s.Quests.Completed = []string{}
	s.Quests.Accepted = map[string]float64{}
	s.Clock.CurrentRunTime = 0
}

// performAscension resets the run and banks ascension power. Power gain is
// floor(level/10) plus the total number of buildings owned across all types.
func (s *State) performAscension() (float64, error) {
	if !s.CanAscend() {
		return 0, ErrIneligible
	}

	powerGain := float64(s.Player.Level/10 + s.TotalBuildings())

	s.resetRun()
	s.Ascension.Count++
	s.Ascension.Power += powerGain
	s.LifetimeStats.TotalAscensions++
	return powerGain, nil
}

// performTranscendence resets the run and the entire ascension tier, banking
// transcendence power worth 0.1 per ascension spent.
func (s *State) performTranscendence() (float64, error) {
	if !s.CanTranscend() {
		return 0, ErrIneligible
	}

	powerGain := float64(s.Ascension.Count) * 0.1

	s.resetRun()
	s.Ascension.Count = 0
	s.Ascension.Power = 0
	s.Transcendence.Count++
	s.Transcendence.Power += powerGain
	s.LifetimeStats.TotalTranscendences++
	return powerGain, nil
}
