// Package currency converts PayPal-sourced payment amounts from THB to KES.
// The rate comes from a public exchange-rate API and is refreshed on a
// schedule; when the fetch fails the last known rate (or the fallback) stays
// in effect.
package currency

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"eventease-admin/internal/pkg/config"
	"eventease-admin/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const MethodPayPal = "PayPal"

// FallbackTHBToKES matches the hardcoded rate the dashboard fell back to when
// the rate API was unreachable.
var FallbackTHBToKES = decimal.NewFromFloat(3.75)

type RateSource interface {
	Rate() decimal.Decimal
}

type Converter struct {
	source RateSource
}

func NewConverter(source RateSource) *Converter {
	return &Converter{source: source}
}

// Convert applies the THB→KES rate to PayPal payments; every other payment
// method is already in KES and passes through unchanged.
func (c *Converter) Convert(amount decimal.Decimal, method string) decimal.Decimal {
	if method != MethodPayPal {
		return amount
	}
	return amount.Mul(c.source.Rate())
}

type apiResponse struct {
	Result string                     `json:"result"`
	Rates  map[string]decimal.Decimal `json:"rates"`
}

// FetchedRateSource holds the latest fetched rate behind a mutex; Refresh is
// called from the cron scheduler and at startup.
type FetchedRateSource struct {
	mu     sync.RWMutex
	rate   decimal.Decimal
	cfg    config.RatesConfig
	client *http.Client
	logger *slog.Logger
}

func NewFetchedRateSource(cfg config.RatesConfig, logger *slog.Logger) *FetchedRateSource {
	return &FetchedRateSource{
		rate:   FallbackTHBToKES,
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.FetchTimeout},
		logger: logger,
	}
}

func (s *FetchedRateSource) Rate() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rate
}

func (s *FetchedRateSource) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return errs.Wrap(err, "failed to build rate request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "failed to fetch exchange rate")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.New("rate API returned non-200 status")
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errs.Wrap(err, "failed to decode rate response")
	}

	rate, ok := body.Rates["KES"]
	if !ok || rate.LessThanOrEqual(decimal.Zero) {
		return errs.New("rate response missing KES rate")
	}

	s.mu.Lock()
	s.rate = rate
	s.mu.Unlock()

	s.logger.Info("exchange rate refreshed", "thb_to_kes", rate.String())
	return nil
}

// RefreshOrFallback logs fetch failures instead of propagating them; the
// previous rate keeps serving conversions.
func (s *FetchedRateSource) RefreshOrFallback(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("exchange rate refresh failed, keeping current rate",
			"error", err.Error(), "thb_to_kes", s.Rate().String())
	}
}

// StaticRateSource pins the rate, used by tests and as the converter fallback.
type StaticRateSource struct {
	rate decimal.Decimal
}

func NewStaticRateSource(rate decimal.Decimal) *StaticRateSource {
	return &StaticRateSource{rate: rate}
}

func (s *StaticRateSource) Rate() decimal.Decimal {
	return s.rate
}
