package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/Mihklz/observer/internal/app"
	"github.com/Mihklz/observer/internal/version"
)

func main() {
	version.Print(os.Stdout)

	if err := run(); err != nil {
		log.Fatalf("example failed: %v", err)
	}
}

func run() error {
	fxApp := fx.New(
		fx.Provide(app.ProvideConfig),
		app.Module,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			l := &fxevent.ZapLogger{Logger: log.Named("fx")}
			l.UseLogLevel(zap.DebugLevel)
			return l
		}),
	)
	if err := fxApp.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(context.Background(), fxApp.StartTimeout())
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		return err
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), fxApp.StopTimeout())
	defer cancelStop()
	return fxApp.Stop(stopCtx)
}
