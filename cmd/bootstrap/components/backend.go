package components

import (
	"guestlink/internal/infra/backend"
	"guestlink/internal/pkg/jwt"
	"guestlink/internal/usecase"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		NewTokenDecoder,
		fx.Annotate(
			backend.NewGateway,
			fx.As(new(usecase.LinkBackend)),
			fx.As(new(usecase.RegistrationBackend)),
		),
	),
)

func NewTokenDecoder(s *jwt.Service) backend.TokenDecoder {
	return s
}
