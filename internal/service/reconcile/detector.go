package reconcile

import (
	"github.com/c-senju/ponto-fazenda/internal/domain/employee"
	"github.com/c-senju/ponto-fazenda/internal/domain/reconcile"
)

// DetectMissing reports every scheduled punch with no actual punch
// within tolerance, for each day an employee punched at least once.
// Days with zero punches are not reported: absence is not incomplete
// attendance in this model. Sundays have no schedule and are skipped.
//
// Matching is deliberately non-exclusive: a single actual punch can
// satisfy more than one expected slot when the tolerance windows
// overlap.
func DetectMissing(grouped []reconcile.EmployeeDays, directory employee.Directory) []reconcile.MissingPunch {
	var missing []reconcile.MissingPunch

	for _, emp := range grouped {
		name := directory.NameFor(emp.EmployeeID)

		for _, day := range emp.Days {
			schedule := scheduleFor(day.Date)
			if schedule == nil {
				continue
			}

			for _, expected := range schedule {
				expectedAt := expected.at(day.Date)

				found := false
				for _, punchedAt := range day.Punches {
					diff := punchedAt.Sub(expectedAt)
					if diff < 0 {
						diff = -diff
					}
					if diff <= tolerance {
						found = true
						break
					}
				}

				if !found {
					missing = append(missing, reconcile.MissingPunch{
						EmployeeName: name,
						Date:         day.Date.Format("02/01/2006"),
						ExpectedTime: expected.String(),
					})
				}
			}
		}
	}

	return missing
}
