package bootstrap

import (
	"guestlink/internal/pkg/clock"
	"guestlink/internal/pkg/config"
	"guestlink/internal/pkg/jwt"

	"go.uber.org/fx"
)

// JWTModule provides the link token codec. The secret is checked by config.Validate.
var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewLinkTokenService,
	),
)

func NewLinkTokenService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, clk)
}
