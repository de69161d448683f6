package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"expenso/internal/config"
	"expenso/internal/domain"
	"expenso/internal/port"
)

var _ port.RateSource = (*Client)(nil)

// Client fetches live HKD-based exchange rates from an open rates API.
// It implements port.RateSource.
type Client struct {
	url    string
	client *http.Client
}

// NewClient creates a rate client from config.
func NewClient(cfg *config.FXConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:    cfg.RateURL,
		client: &http.Client{Timeout: timeout},
	}
}

// rateResponse models the open.er-api.com payload.
type rateResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// FetchRates returns live rates for all supported currencies, filling any
// the API does not quote from the fallback table. The base currency is
// always 1.
func (c *Client) FetchRates(ctx context.Context) (map[domain.Currency]decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching rates: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading rate response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed rateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshaling rate response: %w", err)
	}
	if parsed.Result != "success" {
		return nil, fmt.Errorf("rate API returned result %q", parsed.Result)
	}

	rates := make(map[domain.Currency]decimal.Decimal, len(domain.Currencies))
	for _, cur := range domain.Currencies {
		if v, ok := parsed.Rates[string(cur)]; ok {
			rates[cur] = decimal.NewFromFloat(v)
		} else {
			rates[cur] = FallbackRates[cur]
		}
	}
	rates[domain.BaseCurrency] = decimal.NewFromInt(1)
	return rates, nil
}
