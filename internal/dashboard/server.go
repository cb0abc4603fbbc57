package dashboard

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mhutchens/fleetdash/internal/api"
	"github.com/mhutchens/fleetdash/internal/config"
	"github.com/mhutchens/fleetdash/internal/notify"
	"github.com/mhutchens/fleetdash/internal/session"
)

// Server renders the operator console on localhost. Everything under
// /dashboard sits behind the session guard; data comes from the fleet API
// through the shared client.
type Server struct {
	log      *zap.Logger
	sessions *session.Manager
	api      *api.Client
	notify   *notify.Queue
	server   *http.Server
}

type Params struct {
	fx.In

	Log      *zap.Logger
	Config   *config.Config
	Sessions *session.Manager
	API      *api.Client
	Notify   *notify.Queue
}

func New(p Params) (*Server, error) {
	s := &Server{
		log:      p.Log,
		sessions: p.Sessions,
		api:      p.API,
		notify:   p.Notify,
	}

	root := chi.NewRouter()

	// Auth
	root.Group(func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/", s.home)
		r.Get("/dashboard", s.overview)
		r.Get("/dashboard/users", s.users)
		r.Get("/dashboard/users/export", s.exportUsers)
		r.Get("/dashboard/riders", s.riders)
		r.Get("/dashboard/owners", s.owners)
		r.Get("/dashboard/system", s.system)
	})

	// No auth
	root.Group(func(r chi.Router) {
		r.Get("/login", s.loginForm)
		r.Post("/login", s.login)
		r.Get("/logout", s.logout)
	})

	s.server = &http.Server{
		Addr:    fmt.Sprintf("localhost:%d", p.Config.Dashboard.Port),
		Handler: root,
	}

	return s, nil
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.server.Handler
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
