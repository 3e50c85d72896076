package reconcile

import (
	"sort"
	"time"

	"github.com/c-senju/ponto-fazenda/internal/domain/employee"
	"github.com/c-senju/ponto-fazenda/internal/domain/holiday"
	"github.com/c-senju/ponto-fazenda/internal/domain/reconcile"
)

// ClassifyHours accumulates each employee's worked time into normal, 50%
// premium and 100% premium buckets across every day in the input.
//
// Rules:
//   - Sundays and holidays: the whole day is 100% premium.
//   - Mon-Fri: up to 8h normal, the excess 50% premium.
//   - Saturday: up to 4h normal, the excess 50% premium.
//   - Odd punch count: the latest punch of the day is dropped.
//
// Pair durations are not clamped; out-of-order data can subtract from
// totals, which is the caller's data-quality problem to filter upstream.
// Every directory employee appears in the result, zeroed when absent.
func ClassifyHours(grouped []reconcile.EmployeeDays, directory employee.Directory, holidays holiday.Set) map[string]reconcile.DayHours {
	results := make(map[string]reconcile.DayHours, len(directory))
	for _, name := range directory.Names() {
		results[name] = reconcile.DayHours{}
	}

	for _, emp := range grouped {
		name := directory.NameFor(emp.EmployeeID)
		totals := results[name]

		for _, day := range emp.Days {
			punches := make([]time.Time, len(day.Punches))
			copy(punches, day.Punches)
			// The grouper already sorts, but do not depend on it here.
			sort.Slice(punches, func(i, j int) bool { return punches[i].Before(punches[j]) })

			if len(punches)%2 != 0 {
				punches = punches[:len(punches)-1]
			}

			var worked time.Duration
			for i := 0; i+1 < len(punches); i += 2 {
				worked += punches[i+1].Sub(punches[i])
			}

			switch {
			case day.Date.Weekday() == time.Sunday || holidays.Contains(day.Date.Format("2006-01-02")):
				totals.Extra100 += worked
			default:
				limit := weekdayLimit
				if day.Date.Weekday() == time.Saturday {
					limit = saturdayLimit
				}
				if worked > limit {
					totals.Normal += limit
					totals.Extra50 += worked - limit
				} else {
					totals.Normal += worked
				}
			}
		}

		results[name] = totals
	}

	return results
}
