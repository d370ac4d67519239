package bootstrap

import (
	"log/slog"

	"guestlink/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}

	slog.Info("設定を読み込みました",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"flow_ttl", cfg.Flow.TTL,
		"flow_sweep_interval", cfg.Flow.SweepInterval,
	)
	return cfg, nil
}
