package bootstrap

import (
	"context"
	"log/slog"

	"eventease-admin/internal/currency"
	"eventease-admin/internal/pkg/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var RatesModule = fx.Module("rates",
	fx.Provide(
		NewRateSource,
		NewConverter,
	),
	fx.Invoke(StartRateRefresh),
)

func NewRateSource(cfg config.Config, logger *slog.Logger) *currency.FetchedRateSource {
	return currency.NewFetchedRateSource(cfg.Rates, logger)
}

func NewConverter(source *currency.FetchedRateSource) *currency.Converter {
	return currency.NewConverter(source)
}

// StartRateRefresh fetches the rate once at startup, then on the configured
// cron schedule. A failed fetch keeps the last known rate in effect.
func StartRateRefresh(lc fx.Lifecycle, cfg config.Config, source *currency.FetchedRateSource, logger *slog.Logger) error {
	scheduler := cron.New()
	_, err := scheduler.AddFunc(cfg.Rates.RefreshSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Rates.FetchTimeout)
		defer cancel()
		source.RefreshOrFallback(ctx)
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			source.RefreshOrFallback(ctx)
			scheduler.Start()
			logger.Info("exchange rate refresh scheduled", "schedule", cfg.Rates.RefreshSchedule)
			return nil
		},
		OnStop: func(_ context.Context) error {
			<-scheduler.Stop().Done()
			return nil
		},
	})
	return nil
}
