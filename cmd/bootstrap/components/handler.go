package components

import (
	"guestlink/internal/handler"
	"guestlink/internal/handler/api"
	"guestlink/internal/handler/middleware"
	"guestlink/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRegistrationFlowHandler,
		middleware.NewFlowMiddleware,
		NewHealthHandler,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHealthHandler(pool *pgxpool.Pool, store *usecase.FlowStore) *api.HealthHandler {
	return api.NewHealthHandler(pool, store)
}
