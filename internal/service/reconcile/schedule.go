package reconcile

import (
	"time"
)

// Farm schedule: four punches Monday through Friday, two on Saturday,
// none on Sunday. Sundays are excluded from missing-punch detection and
// classify entirely as 100% premium when worked.
type expectedTime struct {
	Hour, Minute int
}

var (
	weekdaySchedule  = []expectedTime{{7, 0}, {11, 0}, {13, 0}, {17, 0}}
	saturdaySchedule = []expectedTime{{7, 0}, {11, 0}}
)

const (
	// A punch within this margin of an expected slot satisfies it.
	tolerance = 90 * time.Minute

	// Normal-hours ceiling per day class; work beyond it is 50% premium.
	weekdayLimit  = 8 * time.Hour
	saturdayLimit = 4 * time.Hour
)

// scheduleFor returns the expected punch times for a day, or nil for
// Sunday.
func scheduleFor(date time.Time) []expectedTime {
	switch date.Weekday() {
	case time.Sunday:
		return nil
	case time.Saturday:
		return saturdaySchedule
	default:
		return weekdaySchedule
	}
}

// at anchors an expected time onto a concrete calendar day.
func (e expectedTime) at(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), e.Hour, e.Minute, 0, 0, date.Location())
}

func (e expectedTime) String() string {
	return e.at(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)).Format("15:04")
}
