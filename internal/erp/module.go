package erp

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"erp",
		fx.Provide(NewClient),
	)
}
