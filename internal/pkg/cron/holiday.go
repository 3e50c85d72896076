package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/c-senju/ponto-fazenda/internal/domain/holiday"
)

type HolidayJobs struct {
	holidayService holiday.Service
}

func NewHolidayJobs(holidayService holiday.Service) *HolidayJobs {
	return &HolidayJobs{
		holidayService: holidayService,
	}
}

func (j *HolidayJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("prewarm_holiday_cache", 12*time.Hour, j.PrewarmHolidayCache)
}

// PrewarmHolidayCache resolves the current year ahead of the first
// report of the day, so the dashboard never waits on the holiday
// sources. Around New Year it also warms the outgoing year, which
// reports still reference.
func (j *HolidayJobs) PrewarmHolidayCache(ctx context.Context) error {
	for _, year := range warmYears(time.Now()) {
		set := j.holidayService.Resolve(ctx, year)
		slog.Info("Cron: Holiday cache warmed", "year", year, "holidays", len(set))
	}

	return nil
}

// warmYears picks the calendar years worth caching: the current one,
// plus the outgoing one through January.
func warmYears(now time.Time) []int {
	years := []int{now.Year()}
	if now.Month() == time.January {
		years = append(years, now.Year()-1)
	}
	return years
}
