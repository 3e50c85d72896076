package reconcile

import (
	"sort"
	"time"

	"github.com/c-senju/ponto-fazenda/internal/domain/punch"
	"github.com/c-senju/ponto-fazenda/internal/domain/reconcile"
)

// GroupPunches partitions a flat punch list into per-employee,
// per-calendar-day groups, ordered ascending by (employee id, time).
// Input order does not matter; duplicates are kept and flow downstream.
func GroupPunches(punches []punch.Punch) []reconcile.EmployeeDays {
	sorted := make([]punch.Punch, len(punches))
	copy(sorted, punches)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].EmployeeID != sorted[j].EmployeeID {
			return sorted[i].EmployeeID < sorted[j].EmployeeID
		}
		return sorted[i].PunchedAt.Before(sorted[j].PunchedAt)
	})

	var grouped []reconcile.EmployeeDays
	for _, p := range sorted {
		if len(grouped) == 0 || grouped[len(grouped)-1].EmployeeID != p.EmployeeID {
			grouped = append(grouped, reconcile.EmployeeDays{EmployeeID: p.EmployeeID})
		}
		emp := &grouped[len(grouped)-1]

		day := dateOf(p.PunchedAt)
		if len(emp.Days) == 0 || !emp.Days[len(emp.Days)-1].Date.Equal(day) {
			emp.Days = append(emp.Days, reconcile.DayPunches{Date: day})
		}
		dp := &emp.Days[len(emp.Days)-1]
		dp.Punches = append(dp.Punches, p.PunchedAt)
	}

	return grouped
}

// dateOf truncates a timestamp to its local calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
