package mockapi

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mhutchens/fleetdash/internal/config"
	"github.com/mhutchens/fleetdash/internal/repository"
)

var Module = fx.Options(
	fx.Provide(
		repository.NewJSON,
		NewHandler,
		New,
	),
)

type Server struct {
	log    *zap.Logger
	server *http.Server
}

type Params struct {
	fx.In

	Log     *zap.Logger
	Config  *config.Config
	Handler *Handler
}

func New(p Params) (*Server, error) {
	return &Server{
		log: p.Log,
		server: &http.Server{
			Addr:    fmt.Sprintf("localhost:%d", p.Config.MockAPI.Port),
			Handler: p.Handler.Router(),
		},
	}, nil
}

// RegisterHooks should be invoked by fx
func RegisterHooks(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.server.Shutdown,
	})
}

func (s *Server) Start(_ context.Context) error {
	go func() {
		err := s.server.ListenAndServe()
		if err != nil {
			s.log.Error("error shutting down server", zap.Error(err))
		}
	}()
	return nil
}
