//go:build unit

package currency_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventease-admin/internal/currency"
	"eventease-admin/internal/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ratesConfig(url string) config.RatesConfig {
	return config.RatesConfig{
		URL:             url,
		RefreshSchedule: "@every 1h",
		FetchTimeout:    time.Second,
	}
}

func TestConverter(t *testing.T) {
	converter := currency.NewConverter(currency.NewStaticRateSource(decimal.NewFromFloat(3.75)))

	t.Run("PayPal amounts are converted THB to KES", func(t *testing.T) {
		got := converter.Convert(decimal.NewFromInt(1000), "PayPal")
		assert.True(t, got.Equal(decimal.NewFromInt(3750)), "got %s", got)
	})

	t.Run("other methods pass through unchanged", func(t *testing.T) {
		for _, method := range []string{"M-Pesa", "Bank Transfer", "Cash", ""} {
			got := converter.Convert(decimal.NewFromInt(1000), method)
			assert.True(t, got.Equal(decimal.NewFromInt(1000)), "method %q got %s", method, got)
		}
	})
}

func TestFetchedRateSource(t *testing.T) {
	t.Run("refresh picks up the KES rate", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"result":"success","rates":{"KES":3.91,"USD":0.029}}`))
		}))
		defer srv.Close()

		source := currency.NewFetchedRateSource(ratesConfig(srv.URL), testLogger())
		require.NoError(t, source.Refresh(context.Background()))
		assert.True(t, source.Rate().Equal(decimal.NewFromFloat(3.91)), "got %s", source.Rate())
	})

	t.Run("starts from the fallback rate", func(t *testing.T) {
		source := currency.NewFetchedRateSource(ratesConfig("http://localhost:0"), testLogger())
		assert.True(t, source.Rate().Equal(currency.FallbackTHBToKES))
	})

	t.Run("failed fetch keeps the current rate", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		source := currency.NewFetchedRateSource(ratesConfig(srv.URL), testLogger())
		source.RefreshOrFallback(context.Background())
		assert.True(t, source.Rate().Equal(currency.FallbackTHBToKES))
	})

	t.Run("missing KES entry is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"result":"success","rates":{"USD":0.029}}`))
		}))
		defer srv.Close()

		source := currency.NewFetchedRateSource(ratesConfig(srv.URL), testLogger())
		assert.Error(t, source.Refresh(context.Background()))
		assert.True(t, source.Rate().Equal(currency.FallbackTHBToKES))
	})
}
