package holiday

import (
	"context"
)

// Set maps ISO dates ("2006-01-02") to holiday display names for one
// calendar year.
type Set map[string]string

// Contains reports whether the ISO date is a holiday.
func (s Set) Contains(isoDate string) bool {
	_, ok := s[isoDate]
	return ok
}

// MergeMissing copies entries from src whose dates are not already
// present. Earlier sources in the provider chain take precedence.
func (s Set) MergeMissing(src Set) {
	for date, name := range src {
		if _, ok := s[date]; !ok {
			s[date] = name
		}
	}
}

// Provider fetches the holiday set for a calendar year from one source.
// A provider that is unreachable or returns a malformed payload reports
// an error; the caller degrades to the next source in the chain.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, year int) (Set, error)
}

// Service resolves the holiday set for a year, caching results for the
// process lifetime.
type Service interface {
	Resolve(ctx context.Context, year int) Set
}
