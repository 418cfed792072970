package auth

import (
	"context"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"auth",
		fx.Provide(NewController),
		fx.Invoke(func(lc fx.Lifecycle, c *Controller) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					c.StartSweep()
					return nil
				},
				OnStop: func(_ context.Context) error {
					c.StopSweep()
					return nil
				},
			})
		}),
	)
}
