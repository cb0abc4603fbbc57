package mockapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mhutchens/fleetdash/internal/model"
	"github.com/mhutchens/fleetdash/internal/repository"
)

type ctxKey int

const userKey ctxKey = 0

// Handler serves the fleet backend contract the console consumes. It exists
// so the console can be developed and tested without the real platform.
type Handler struct {
	repo    repository.Repository
	log     *zap.Logger
	started time.Time
}

type HandlerParams struct {
	fx.In

	Log  *zap.Logger
	Repo repository.Repository
}

func NewHandler(p HandlerParams) *Handler {
	return &Handler{
		repo:    p.Repo,
		log:     p.Log,
		started: time.Now(),
	}
}

func (h *Handler) Router() chi.Router {
	root := chi.NewRouter()

	// No auth
	root.Group(func(r chi.Router) {
		r.Post("/auth/access-token", h.accessToken)
		r.Post("/auth/refresh", h.refresh)
	})

	// Bearer auth
	root.Group(func(r chi.Router) {
		r.Use(h.requireBearer)
		r.Get("/users/me", h.currentUser)
		r.Get("/users", h.users)
		r.Get("/riders", h.riders)
		r.Get("/owners", h.owners)
		r.Get("/metrics/summary", h.metrics)
		r.Get("/activities", h.activities)
		r.Get("/system/health", h.health)
	})

	return root
}

func (h *Handler) accessToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	account, err := h.repo.GetAccountByEmail(r.Context(), username)
	if err != nil || account.Password != password {
		writeDetail(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	token := devToken
	if account.User.ID != devUserID {
		token, err = issueToken(account.User.ID)
		if err != nil {
			h.log.Error("failed issuing token", zap.Error(err))
			writeDetail(w, http.StatusInternalServerError, "token issuance failed")
			return
		}
	}

	if err := h.repo.AddActivity(r.Context(), &model.Activity{
		ID:        uuid.NewString(),
		Actor:     account.User.Email,
		Action:    "logged in",
		CreatedAt: time.Now(),
	}); err != nil {
		h.log.Warn("failed recording login activity", zap.Error(err))
	}

	writeJSON(w, http.StatusOK, &model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(tokenTTL.Seconds()),
	})
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed json body")
		return
	}

	subject, err := subjectOf(body.RefreshToken)
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	token := devToken
	if subject != devUserID {
		token, err = issueToken(subject)
		if err != nil {
			h.log.Error("failed issuing token", zap.Error(err))
			writeDetail(w, http.StatusInternalServerError, "token issuance failed")
			return
		}
	}

	writeJSON(w, http.StatusOK, &model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(tokenTTL.Seconds()),
	})
}

func (h *Handler) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		subject, err := subjectOf(token)
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		account, err := h.repo.GetAccountByID(r.Context(), subject)
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, &account.User)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(userKey).(*model.User)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) users(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.GetUsers(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) riders(w http.ResponseWriter, r *http.Request) {
	riders, err := h.repo.GetRiders(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, riders)
}

func (h *Handler) owners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.repo.GetOwners(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, owners)
}

func (h *Handler) metrics(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.GetUsers(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	riders, err := h.repo.GetRiders(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	owners, err := h.repo.GetOwners(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	activities, err := h.repo.GetActivities(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	summary := &model.MetricsSummary{TotalUsers: len(users)}
	for _, rd := range riders {
		if rd.Status == "active" {
			summary.ActiveRiders++
		}
	}
	for _, o := range owners {
		if o.Status == "active" {
			summary.ActiveOwners++
		}
	}
	midnight := time.Now().Truncate(24 * time.Hour)
	for _, a := range activities {
		if a.CreatedAt.After(midnight) {
			summary.ActivitiesToday++
		}
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.repo.GetActivities(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, &model.HealthStatus{
		Status:     "ok",
		UptimeSecs: int64(time.Since(h.started).Seconds()),
		Components: map[string]string{
			"repository": "ok",
			"auth":       "ok",
		},
		CheckedAt: time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
