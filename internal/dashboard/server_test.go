package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mhutchens/fleetdash/internal/api"
	"github.com/mhutchens/fleetdash/internal/config"
	"github.com/mhutchens/fleetdash/internal/event"
	"github.com/mhutchens/fleetdash/internal/mockapi"
	"github.com/mhutchens/fleetdash/internal/notify"
	"github.com/mhutchens/fleetdash/internal/repository"
	"github.com/mhutchens/fleetdash/internal/session"
	"github.com/mhutchens/fleetdash/internal/tokenstore"
)

type testStack struct {
	server   *Server
	sessions *session.Manager
	store    tokenstore.Store
	queue    *notify.Queue
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	handler := mockapi.NewHandler(mockapi.HandlerParams{
		Log:  zap.NewNop(),
		Repo: repository.NewMemory(repository.Seed()),
	})
	backend := httptest.NewServer(handler.Router())
	t.Cleanup(backend.Close)

	store := tokenstore.NewMemory()
	bus := event.NewBus()
	queue := notify.NewQueue(clockwork.NewRealClock())

	bridge := notify.NewBridge(bus, queue)
	t.Cleanup(bridge.Close)

	client := api.New(api.Params{
		Log:    zap.NewNop(),
		Config: &config.Config{API: config.API{BaseURL: backend.URL}},
		Tokens: store,
		Bus:    bus,
	})

	sessions := session.New(session.Params{
		Log:    zap.NewNop(),
		API:    client,
		Tokens: store,
	})

	server, err := New(Params{
		Log:      zap.NewNop(),
		Config:   &config.Config{Dashboard: config.Dashboard{Port: 0}},
		Sessions: sessions,
		API:      client,
		Notify:   queue,
	})
	require.NoError(t, err)

	return &testStack{
		server:   server,
		sessions: sessions,
		store:    store,
		queue:    queue,
	}
}

func (ts *testStack) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	ts.server.Router().ServeHTTP(rr, req)
	return rr
}

func (ts *testStack) postLogin(username, password string) *httptest.ResponseRecorder {
	form := url.Values{
		"username": {username},
		"password": {password},
	}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	ts.server.Router().ServeHTTP(rr, req)
	return rr
}

func Test_guardShowsLoadingWhileResolving(t *testing.T) {
	assert := assert.New(t)

	ts := newTestStack(t)
	// no Resolve call: the session is still loading

	rr := ts.get("/dashboard")
	assert.Equal(http.StatusOK, rr.Code)
	assert.Contains(rr.Body.String(), "Checking your session")
	assert.NotContains(rr.Body.String(), "Overview")
}

func Test_guardRedirectsAnonymous(t *testing.T) {
	assert := assert.New(t)

	ts := newTestStack(t)
	ts.sessions.Resolve(context.Background())

	rr := ts.get("/dashboard")
	assert.Equal(http.StatusSeeOther, rr.Code)
	assert.Equal("/login", rr.Result().Header.Get("Location"))
}

func Test_guardPassesAuthenticated(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	ts := newTestStack(t)
	ts.sessions.Resolve(context.Background())
	require.NoError(ts.sessions.Login(context.Background(), "admin@example.com", "password"))

	rr := ts.get("/dashboard")
	assert.Equal(http.StatusOK, rr.Code)
	assert.Contains(rr.Body.String(), "Overview")
}

func Test_guardRedirectsAfterRevocation(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	ts := newTestStack(t)
	ts.sessions.Resolve(context.Background())
	require.NoError(ts.sessions.Login(context.Background(), "admin@example.com", "password"))
	require.Equal(http.StatusOK, ts.get("/dashboard").Code)

	// the interceptor cleared the store on some unrelated 401
	require.NoError(ts.store.Clear())

	rr := ts.get("/dashboard")
	assert.Equal(http.StatusSeeOther, rr.Code)
	assert.Equal("/login", rr.Result().Header.Get("Location"))
}

func Test_loginFlow(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	ts := newTestStack(t)
	ts.sessions.Resolve(context.Background())

	rr := ts.postLogin("admin@example.com", "password")
	require.Equal(http.StatusSeeOther, rr.Code)
	assert.Equal("/dashboard", rr.Result().Header.Get("Location"))
	assert.True(ts.sessions.IsAuthenticated())
	assert.Equal("mock-jwt-token", ts.store.Get())
}

func Test_failedLoginRendersInlineError(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	ts := newTestStack(t)
	ts.sessions.Resolve(context.Background())

	rr := ts.postLogin("admin@example.com", "wrong")
	require.Equal(http.StatusOK, rr.Code)
	assert.Contains(rr.Body.String(), "Login failed")
	assert.False(ts.sessions.IsAuthenticated())
}

func Test_logoutRedirectsToLogin(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	ts := newTestStack(t)
	ts.sessions.Resolve(context.Background())
	require.NoError(ts.sessions.Login(context.Background(), "admin@example.com", "password"))

	rr := ts.get("/logout")
	assert.Equal(http.StatusSeeOther, rr.Code)
	assert.Equal("/login", rr.Result().Header.Get("Location"))
	assert.False(ts.sessions.IsAuthenticated())
}

func Test_usersPageAndExport(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	ts := newTestStack(t)
	ts.sessions.Resolve(context.Background())
	require.NoError(ts.sessions.Login(context.Background(), "admin@example.com", "password"))

	rr := ts.get("/dashboard/users")
	require.Equal(http.StatusOK, rr.Code)
	assert.Contains(rr.Body.String(), "admin@example.com")

	rr = ts.get("/dashboard/users/export")
	require.Equal(http.StatusOK, rr.Code)
	assert.Equal("text/csv", rr.Result().Header.Get("Content-Type"))
	assert.Contains(rr.Body.String(), "admin@example.com")
	assert.Contains(rr.Body.String(), "id,email,full_name")
}

func Test_systemPageShowsActivities(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	ts := newTestStack(t)
	ts.sessions.Resolve(context.Background())
	require.NoError(ts.sessions.Login(context.Background(), "admin@example.com", "password"))

	rr := ts.get("/dashboard/system")
	require.Equal(http.StatusOK, rr.Code)
	assert.Contains(rr.Body.String(), "Recent Activities")
	assert.Contains(rr.Body.String(), "logged in")
}
