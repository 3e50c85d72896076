package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/c-senju/ponto-fazenda/internal/domain/holiday"
)

const nagerBaseURL = "https://date.nager.at/api/v3/PublicHolidays"

// nagerHoliday is one entry of the Nager.Date public-holidays payload.
type nagerHoliday struct {
	Date      string `json:"date"`
	LocalName string `json:"localName"`
	Name      string `json:"name"`
}

// NagerProvider fetches national holidays from Nager.Date, the fallback
// source when BrasilAPI is unavailable.
type NagerProvider struct {
	baseURL     string
	countryCode string
	client      *http.Client
}

func NewNagerProvider(countryCode string) *NagerProvider {
	return NewNagerProviderWithBaseURL(nagerBaseURL, countryCode)
}

func NewNagerProviderWithBaseURL(baseURL, countryCode string) *NagerProvider {
	return &NagerProvider{
		baseURL:     baseURL,
		countryCode: countryCode,
		client:      &http.Client{Timeout: sourceTimeout},
	}
}

// Name implements holiday.Provider.
func (p *NagerProvider) Name() string {
	return "nager.date"
}

// Fetch implements holiday.Provider.
func (p *NagerProvider) Fetch(ctx context.Context, year int) (holiday.Set, error) {
	url := fmt.Sprintf("%s/%d/%s", p.baseURL, year, p.countryCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload []nagerHoliday
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("malformed payload: %w", err)
	}

	set := holiday.Set{}
	for _, h := range payload {
		name := h.LocalName
		if name == "" {
			name = h.Name
		}
		set[h.Date] = name
	}
	return set, nil
}
