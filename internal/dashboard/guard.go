package dashboard

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mhutchens/fleetdash/internal/template"
)

// requireSession gates the protected pages on the session state. While the
// startup resolution is still running it renders the loading page and nothing
// else; once resolved, an anonymous session is redirected to the login form.
// The check runs on every request, so a session revoked mid-flight redirects
// on the next navigation.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snap := s.sessions.Snapshot()

		if snap.Loading {
			if err := template.Render(w, r, "loading.html", &template.Data{
				PageTitle: "loading",
			}); err != nil {
				s.log.Error("failed rendering loading page", zap.Error(err))
			}
			return
		}

		if !snap.Authenticated() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
