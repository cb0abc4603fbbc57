package main

import (
	"flag"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mhutchens/fleetdash/internal/api"
	"github.com/mhutchens/fleetdash/internal/config"
	"github.com/mhutchens/fleetdash/internal/dashboard"
	"github.com/mhutchens/fleetdash/internal/event"
	"github.com/mhutchens/fleetdash/internal/mockapi"
	"github.com/mhutchens/fleetdash/internal/notify"
	"github.com/mhutchens/fleetdash/internal/session"
	"github.com/mhutchens/fleetdash/internal/tokenstore"
)

func main() {
	var (
		mode     = flag.String("mode", "dashboard", "either dashboard or mockapi")
		confPath = flag.String("config", "", "path to a yaml config file")
	)
	flag.Parse()

	newConfig := func() (*config.Config, error) {
		return config.Load(*confPath)
	}

	newTokenStore := func(cfg *config.Config, log *zap.Logger) tokenstore.Store {
		return tokenstore.NewFallback(tokenstore.NewFile(cfg.API.TokenPath), log)
	}

	deps := fx.Options(
		fx.Provide(
			zap.NewDevelopment,
			newConfig,
		),
	)

	var app *fx.App
	if *mode == "dashboard" {
		app = fx.New(
			deps,
			fx.Provide(
				clockwork.NewRealClock,
				newTokenStore,
				event.NewBus,
				notify.NewQueue,
				notify.NewBridge,
				api.New,
				session.New,
				dashboard.New,
			),
			fx.Invoke(
				notify.RegisterHooks,
				session.RegisterHooks,
				dashboard.RegisterHooks,
			),
		)
	} else if *mode == "mockapi" {
		app = fx.New(
			deps,
			mockapi.Module,
			fx.Invoke(mockapi.RegisterHooks),
		)
	} else {
		panic("unrecognized mode")
	}

	app.Run()
}
