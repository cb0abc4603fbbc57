package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mhutchens/fleetdash/internal/api"
	"github.com/mhutchens/fleetdash/internal/model"
	"github.com/mhutchens/fleetdash/internal/tokenstore"
)

// State is a point-in-time copy of the process-wide session. The session is
// authenticated only when both the token and the resolved user are present;
// a token on its own is not enough.
type State struct {
	User    *model.User
	Token   string
	Loading bool
}

func (s State) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Manager owns the one session this process holds against the fleet backend.
// It starts in a loading state and resolves to authenticated or anonymous
// depending on whether a persisted token still names a valid user.
type Manager struct {
	mu      sync.Mutex
	user    *model.User
	token   string
	loading bool

	api    *api.Client
	tokens tokenstore.Store
	log    *zap.Logger
}

type Params struct {
	fx.In

	Log    *zap.Logger
	API    *api.Client
	Tokens tokenstore.Store
}

func New(p Params) *Manager {
	return &Manager{
		loading: true,
		api:     p.API,
		tokens:  p.Tokens,
		log:     p.Log,
	}
}

// RegisterHooks should be invoked by fx
func RegisterHooks(lc fx.Lifecycle, m *Manager) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				m.Resolve(ctx)
			}()
			return nil
		},
	})
}

// Resolve performs the startup check: with no persisted token the session is
// anonymous; with one, the current user is fetched and any failure clears the
// token everywhere so a dead session heals itself.
func (m *Manager) Resolve(ctx context.Context) {
	token := m.tokens.Get()
	if token == "" {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
		return
	}

	m.mu.Lock()
	m.token = token
	m.mu.Unlock()

	user, err := m.api.CurrentUser(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false

	if err != nil {
		m.log.Warn("persisted session rejected, clearing", zap.Error(err))
		m.user = nil
		m.token = ""
		if cerr := m.tokens.Clear(); cerr != nil {
			m.log.Warn("failed clearing rejected token", zap.Error(cerr))
		}
		return
	}

	m.user = user
}

// Login authenticates and resolves the current user. A failed authentication
// leaves the session untouched. The token is persisted before the user fetch
// so the fetch goes out with the fresh credential; if that fetch fails the
// token stays set with no user, which reads as unauthenticated.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	tr, err := m.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := m.tokens.Set(tr.AccessToken); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}

	m.mu.Lock()
	m.token = tr.AccessToken
	m.user = nil
	m.mu.Unlock()

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()

	return nil
}

// Logout drops the session unconditionally. Calling it while anonymous is a
// no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.mu.Unlock()

	if err := m.tokens.Clear(); err != nil {
		m.log.Warn("failed clearing token on logout", zap.Error(err))
	}
}

// Snapshot returns the current state. If the store no longer holds the token
// this manager remembers, some interceptor revoked the session since the last
// check and the in-memory half is dropped to match.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" && m.tokens.Get() == "" {
		m.user = nil
		m.token = ""
	}

	var user *model.User
	if m.user != nil {
		u := *m.user
		user = &u
	}

	return State{
		User:    user,
		Token:   m.token,
		Loading: m.loading,
	}
}

func (m *Manager) IsAuthenticated() bool {
	return m.Snapshot().Authenticated()
}

func (m *Manager) Loading() bool {
	return m.Snapshot().Loading
}
