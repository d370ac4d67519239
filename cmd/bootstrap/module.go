package bootstrap

import (
	"guestlink/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	LoggerModule,
	JWTModule,
	MetricsModule,
	components.PersistenceModule,
	components.BackendModule,
	components.UseCaseModule,
	components.HandlerModule,
)
