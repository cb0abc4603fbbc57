package dashboard

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/mhutchens/fleetdash/internal/model"
	"github.com/mhutchens/fleetdash/internal/template"
)

func (s *Server) pageData(title string) *template.Data {
	return &template.Data{
		PageTitle: title,
		User:      s.sessions.Snapshot().User,
		Toasts:    s.notify.Snapshot(),
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, tmpl string, td *template.Data) {
	if err := template.Render(w, r, tmpl, td); err != nil {
		s.log.Error("failed rendering page", zap.String("template", tmpl), zap.Error(err))
	}
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) loginForm(w http.ResponseWriter, r *http.Request) {
	if s.sessions.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	s.render(w, r, "login.html", s.pageData("login"))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	err := s.sessions.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		// inline error on the form, no redirect
		td := s.pageData("login")
		td.Error = "Login failed. Check your username and password."
		s.log.Warn("login rejected", zap.Error(err))
		s.render(w, r, "login.html", td)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Logout()
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) overview(w http.ResponseWriter, r *http.Request) {
	td := s.pageData("overview")

	metrics, err := s.api.Metrics(r.Context())
	if err != nil {
		s.notify.Error("Failed to load metrics", err.Error())
		td.Toasts = s.notify.Snapshot()
		metrics = &model.MetricsSummary{}
	}

	td.Page = metrics
	s.render(w, r, "dashboard.html", td)
}

func (s *Server) users(w http.ResponseWriter, r *http.Request) {
	td := s.pageData("users")

	users, err := s.api.Users(r.Context())
	if err != nil {
		s.notify.Error("Failed to load users", err.Error())
		td.Toasts = s.notify.Snapshot()
	}

	td.Page = users
	s.render(w, r, "users.html", td)
}

func (s *Server) exportUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.api.Users(r.Context())
	if err != nil {
		s.notify.Error("Export failed", err.Error())
		http.Redirect(w, r, "/dashboard/users", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="users.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"id", "email", "full_name", "is_active", "is_admin", "created_at"})
	for _, u := range users {
		_ = cw.Write([]string{
			u.ID,
			u.Email,
			u.FullName,
			strconv.FormatBool(u.IsActive),
			strconv.FormatBool(u.IsAdmin),
			u.CreatedAt.Format("2006-01-02"),
		})
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		s.log.Error("failed writing csv export", zap.Error(err))
	}
}

func (s *Server) riders(w http.ResponseWriter, r *http.Request) {
	td := s.pageData("riders")

	riders, err := s.api.Riders(r.Context())
	if err != nil {
		s.notify.Error("Failed to load riders", err.Error())
		td.Toasts = s.notify.Snapshot()
	}

	td.Page = riders
	s.render(w, r, "riders.html", td)
}

func (s *Server) owners(w http.ResponseWriter, r *http.Request) {
	td := s.pageData("owners")

	owners, err := s.api.Owners(r.Context())
	if err != nil {
		s.notify.Error("Failed to load owners", err.Error())
		td.Toasts = s.notify.Snapshot()
	}

	td.Page = owners
	s.render(w, r, "owners.html", td)
}

type systemPage struct {
	Health     *model.HealthStatus
	Activities []model.Activity
}

func (s *Server) system(w http.ResponseWriter, r *http.Request) {
	td := s.pageData("system")
	page := &systemPage{}

	health, err := s.api.Health(r.Context())
	if err != nil {
		s.notify.Error("Failed to load system health", err.Error())
	} else {
		page.Health = health
	}

	activities, err := s.api.Activities(r.Context())
	if err != nil {
		s.notify.Error("Failed to load activities", err.Error())
	} else {
		page.Activities = activities
	}

	td.Toasts = s.notify.Snapshot()
	td.Page = page
	s.render(w, r, "system.html", td)
}
