package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-senju/ponto-fazenda/internal/domain/punch"
)

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func TestGroupPunches_OrdersByEmployeeAndTime(t *testing.T) {
	t.Parallel()
	monday := time.Date(2025, 8, 4, 0, 0, 0, 0, time.Local)
	tuesday := monday.AddDate(0, 0, 1)

	// Deliberately shuffled input.
	punches := []punch.Punch{
		{EmployeeID: "2", PunchedAt: at(monday, 13, 0)},
		{EmployeeID: "1", PunchedAt: at(tuesday, 7, 5)},
		{EmployeeID: "1", PunchedAt: at(monday, 11, 0)},
		{EmployeeID: "2", PunchedAt: at(monday, 7, 0)},
		{EmployeeID: "1", PunchedAt: at(monday, 7, 0)},
	}

	grouped := GroupPunches(punches)
	require.Len(t, grouped, 2)

	assert.Equal(t, "1", grouped[0].EmployeeID)
	require.Len(t, grouped[0].Days, 2)
	assert.Equal(t, monday, grouped[0].Days[0].Date)
	assert.Equal(t, []time.Time{at(monday, 7, 0), at(monday, 11, 0)}, grouped[0].Days[0].Punches)
	assert.Equal(t, tuesday, grouped[0].Days[1].Date)

	assert.Equal(t, "2", grouped[1].EmployeeID)
	require.Len(t, grouped[1].Days, 1)
	assert.Equal(t, []time.Time{at(monday, 7, 0), at(monday, 13, 0)}, grouped[1].Days[0].Punches)
}

func TestGroupPunches_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, GroupPunches(nil))
}

func TestGroupPunches_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	monday := time.Date(2025, 8, 4, 0, 0, 0, 0, time.Local)
	punches := []punch.Punch{
		{EmployeeID: "1", PunchedAt: at(monday, 17, 0)},
		{EmployeeID: "1", PunchedAt: at(monday, 7, 0)},
	}

	GroupPunches(punches)
	assert.Equal(t, at(monday, 17, 0), punches[0].PunchedAt)
}
