package game

import (
	"math"

	"github.com/talgya/echoforge/internal/catalog"
)

// maxAffordableProbe caps the bulk-purchase search so a runaway ledger can't
// spin the loop forever.
const maxAffordableProbe = 10000

// UnitCost returns the cost bundle for the unit that would become the n-th
// owned (n is 0-indexed): floor(base * multiplier^n) per resource.
func UnitCost(b *catalog.Building, n int) map[catalog.Resource]float64 {
	cost := make(map[catalog.Resource]float64, len(b.BaseCost))
	for r, base := range b.BaseCost {
		cost[r] = math.Floor(base * math.Pow(b.CostMultiplier, float64(n)))
	}
	return cost
}

// BulkCost sums the per-unit costs for k units starting from owned count n,
// resource-wise, before any affordability check.
func BulkCost(b *catalog.Building, n, k int) map[catalog.Resource]float64 {
	total := make(map[catalog.Resource]float64, len(b.BaseCost))
	for i := 0; i < k; i++ {
		for r, amount := range UnitCost(b, n+i) {
			total[r] += amount
		}
	}
	return total
}

// canAfford reports whether the ledger covers every entry of the bundle.
func (s *State) canAfford(costs map[catalog.Resource]float64) bool {
	for r, amount := range costs {
		if s.Resources[r] < amount {
			return false
		}
	}
	return true
}

// spend debits the whole bundle atomically; on failure nothing is debited.
func (s *State) spend(costs map[catalog.Resource]float64) bool {
	if !s.canAfford(costs) {
		return false
	}
	for r, amount := range costs {
		s.Resources[r] -= amount
	}
	return true
}

// credit adds amount of a resource, tracking lifetime gold.
func (s *State) credit(r catalog.Resource, amount float64) {
	s.Resources[r] += amount
	if r == catalog.ResourceGold && amount > 0 {
		s.LifetimeStats.TotalGoldEarned += amount
	}
}

// buildBuildings purchases k units of the building, debiting the cumulative
// bulk cost atomically. Caller holds the session lock.
func (s *State) buildBuildings(b *catalog.Building, k int) error {
	if k < 1 {
		return ErrNotAvailable
	}
	if b.UnlockLevel > 0 && s.Player.Level < b.UnlockLevel {
		return ErrLocked
	}
	owned := s.Buildings[b.ID]
	if !s.spend(BulkCost(b, owned, k)) {
		return ErrInsufficientResources
	}
	s.Buildings[b.ID] = owned + k
	s.LifetimeStats.TotalBuildingsBuilt += k
	return nil
}

// maxAffordable returns the largest k whose cumulative bulk cost the ledger
// covers, by iterative accumulation.
func (s *State) maxAffordable(b *catalog.Building) int {
	owned := s.Buildings[b.ID]
	running := make(map[catalog.Resource]float64, len(b.BaseCost))

	for k := 0; k < maxAffordableProbe; k++ {
		for r, amount := range UnitCost(b, owned+k) {
			running[r] += amount
		}
		if !s.canAfford(running) {
			return k
		}
	}
	return maxAffordableProbe
}

// productionStep credits dt seconds of building output and returns the
// per-second display rates (un-multiplied by dt).
func (s *State) productionStep(cat *catalog.Catalog, dt float64) map[catalog.Resource]float64 {
	rates := make(map[catalog.Resource]float64)
	production := totalMultipliers(s, cat).Production

	for i := range cat.Buildings {
		b := &cat.Buildings[i]
		count := s.Buildings[b.ID]
		if count == 0 {
			continue
		}
		rate := b.BaseProduction * float64(count) * production
		rates[b.Produces] += rate
		s.credit(b.Produces, rate*dt)
	}
	return rates
}
