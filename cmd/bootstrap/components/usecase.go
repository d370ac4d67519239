package components

import (
	"context"

	"guestlink/internal/pkg/clock"
	"guestlink/internal/pkg/config"
	"guestlink/internal/usecase"
	"guestlink/internal/usecase/metrics"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewFlowStore,
		usecase.NewLinkValidator,
		usecase.NewRegistrationFlows,
	),
	fx.Invoke(RunFlowSweeper),
)

func NewFlowStore(cfg config.Config, clk clock.Clock, m *metrics.Metrics) *usecase.FlowStore {
	return usecase.NewFlowStore(cfg.Flow.TTL, clk, m)
}

// RunFlowSweeper evicts idle flows for the lifetime of the app.
func RunFlowSweeper(lc fx.Lifecycle, store *usecase.FlowStore, cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				store.Run(ctx, cfg.Flow.SweepInterval)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
