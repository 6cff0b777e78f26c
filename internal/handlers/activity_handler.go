package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mergington-high/activities-api/internal/config"
	"github.com/mergington-high/activities-api/internal/repository"
	"github.com/mergington-high/activities-api/internal/services"
	"github.com/mergington-high/activities-api/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ActivityHandler handles HTTP requests related to activities.
type ActivityHandler struct {
	Service *services.ActivityService
	cfg     *config.Config
}

// NewActivityHandler creates a new instance of ActivityHandler.
func NewActivityHandler(service *services.ActivityService, cfg *config.Config) *ActivityHandler {
	return &ActivityHandler{Service: service, cfg: cfg}
}

// GetActivitiesHandler handles GET /activities.
func (h *ActivityHandler) GetActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	activities, err := h.Service.ListActivities(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch activities")
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, activities)
}

// SignupHandler handles POST /activities/{name}/signup?email=...
func (h *ActivityHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	activityName := vars["name"]
	email := r.URL.Query().Get("email")

	message, err := h.Service.SignUp(r.Context(), activityName, email)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

// UnregisterHandler handles DELETE /activities/{name}/unregister?email=...
func (h *ActivityHandler) UnregisterHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	activityName := vars["name"]
	email := r.URL.Query().Get("email")

	message, err := h.Service.Unregister(r.Context(), activityName, email)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

// RootHandler redirects to the static landing page, which is served by an
// external static-file host.
func (h *ActivityHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.cfg.StaticURL, http.StatusTemporaryRedirect)
}

// HealthHandler reports liveness for deploy tooling.
func (h *ActivityHandler) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusForError maps the service's sentinel errors onto HTTP statuses:
// unknown activity is 404, the registration conflicts and a missing email
// are 400, anything else is 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrAlreadySignedUp),
		errors.Is(err, repository.ErrNotSignedUp),
		errors.Is(err, services.ErrEmailRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Log.WithError(err).Error("Failed to encode response")
	}
}

// respondError writes the error envelope. The detail key matches what API
// consumers scrape for "not found" / "already signed up" / "not signed up".
func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

func respondServiceError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = "internal server error"
	}
	respondError(w, status, detail)
}
