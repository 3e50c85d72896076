package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/c-senju/ponto-fazenda/internal/domain/holiday"
)

// sourceTimeout bounds each holiday lookup so a slow source degrades to
// the fallback chain instead of stalling report generation.
const sourceTimeout = 5 * time.Second

const brasilAPIBaseURL = "https://brasilapi.com.br/api/feriados/v1"

// brasilAPIHoliday is one entry of the BrasilAPI feriados payload.
type brasilAPIHoliday struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// BrasilAPIProvider fetches Brazilian national holidays from BrasilAPI,
// the primary source.
type BrasilAPIProvider struct {
	baseURL string
	client  *http.Client
}

func NewBrasilAPIProvider() *BrasilAPIProvider {
	return NewBrasilAPIProviderWithBaseURL(brasilAPIBaseURL)
}

func NewBrasilAPIProviderWithBaseURL(baseURL string) *BrasilAPIProvider {
	return &BrasilAPIProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: sourceTimeout},
	}
}

// Name implements holiday.Provider.
func (p *BrasilAPIProvider) Name() string {
	return "brasilapi"
}

// Fetch implements holiday.Provider.
func (p *BrasilAPIProvider) Fetch(ctx context.Context, year int) (holiday.Set, error) {
	url := fmt.Sprintf("%s/%d", p.baseURL, year)

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

	var payload []brasilAPIHoliday
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("malformed payload: %w", err)
	}

	set := holiday.Set{}
	for _, h := range payload {
		set[h.Date] = h.Name
	}
	return set, nil
}
