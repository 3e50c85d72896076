package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/c-senju/ponto-fazenda/internal/domain/holiday"
)

// LocalHoliday is a fixed locality-specific holiday observed every year
// (e.g. the municipal anniversary), merged under any remote source.
type LocalHoliday struct {
	Month int
	Day   int
	Name  string
}

type HolidayServiceImpl struct {
	providers []holiday.Provider
	local     []LocalHoliday

	mu    sync.Mutex
	cache map[int]holiday.Set
}

// Resolve implements holiday.Service.
//
// The provider chain is "first success wins": a reachable primary source
// supplies the whole remote set; only when it fails does the next
// provider contribute. The fixed local holidays are merged last and
// never overwrite remote entries. Failures degrade the set instead of
// propagating; a resolver outage silently costs accuracy, not uptime.
func (s *HolidayServiceImpl) Resolve(ctx context.Context, year int) holiday.Set {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.cache[year]; ok {
		return cached
	}

	set := holiday.Set{}
	for _, provider := range s.providers {
		fetched, err := provider.Fetch(ctx, year)
		if err != nil {
			slog.Warn("Holiday source failed, degrading to next source",
				"source", provider.Name(), "year", year, "error", err)
			continue
		}
		set.MergeMissing(fetched)
		break
	}

	local := holiday.Set{}
	for _, h := range s.local {
		local[fmt.Sprintf("%04d-%02d-%02d", year, h.Month, h.Day)] = h.Name
	}
	set.MergeMissing(local)

	s.cache[year] = set
	return set
}

func NewHolidayService(providers []holiday.Provider, local []LocalHoliday) holiday.Service {
	return &HolidayServiceImpl{
		providers: providers,
		local:     local,
		cache:     make(map[int]holiday.Set),
	}
}
