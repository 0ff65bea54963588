package live

import (
	"context"

	"go.uber.org/fx"
)

var Module = fx.Module("live",
	fx.Provide(NewServer),
	fx.Invoke(registerShutdown),
)

func registerShutdown(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return s.Shutdown(ctx)
		},
	})
}
