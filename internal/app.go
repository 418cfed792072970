package internal

import (
	"context"

	"erpctl/internal/auth"
	"erpctl/internal/cli"
	"erpctl/internal/config"
	"erpctl/internal/erp"
	"erpctl/internal/logging"
	"erpctl/internal/session"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Run() error {
	var runner *cli.Runner

	app := fx.New(
		logger.Module(),
		logger.WithFxDefaultLogger(),
		config.Module(),
		logging.Module(),
		session.Module(),
		erp.Module(),
		auth.Module(),
		cli.Module(),
		fx.Populate(&runner),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(ctx)
	}()

	return runner.Execute()
}
