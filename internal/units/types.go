package units

import (
	"sort"

	"github.com/napolitain/proai/internal/models"
)

// Create returns count new units of unitType owned by player
func Create(unitType string, player *models.Player, count int) []models.Unit {
	owner := ""
	if player != nil {
		owner = player.Name
	}
	out := make([]models.Unit, count)
	for i := range out {
		out[i] = models.Unit{Type: unitType, Owner: owner}
	}
	return out
}

// Combine concatenates unit lists into a new pool without aliasing inputs
func Combine(lists ...[]models.Unit) []models.Unit {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	pool := make([]models.Unit, 0, n)
	for _, l := range lists {
		pool = append(pool, l...)
	}
	return pool
}

// CountMatching returns how many units in pool have a type accepted by
// match. Each unit is counted once.
func CountMatching(pool []models.Unit, match func(unitType string) bool) int {
	count := 0
	for _, u := range pool {
		if match(u.Type) {
			count++
		}
	}
	return count
}

// Tally returns unit counts per type
func Tally(pool []models.Unit) map[string]int {
	counts := make(map[string]int)
	for _, u := range pool {
		counts[u.Type]++
	}
	return counts
}

// Types returns the distinct unit types in pool in deterministic order
func Types(pool []models.Unit) []string {
	counts := Tally(pool)
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
