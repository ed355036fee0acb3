package handlers

import (
	"encoding/json"
	"net/http"

	"fantasy-stats-web/logging"
	"fantasy-stats-web/server/views"

	"github.com/gorilla/mux"
)

// StatusHandler serves the pages that explain why a page cannot be shown.
type StatusHandler struct {
	pageResponder
	logger *logging.Logger
}

func NewStatusHandler(renderer *views.Renderer, boundary *ErrorBoundary) *StatusHandler {
	return &StatusHandler{
		pageResponder: pageResponder{renderer: renderer, boundary: boundary},
		logger:        logging.For("StatusHandler"),
	}
}

// GetTooEarlyPage handles GET /fantasy_stats/uh-oh-too-early/{page}/{leagueYear}/{leagueId}
func (h *StatusHandler) GetTooEarlyPage(w http.ResponseWriter, r *http.Request) {
	leagueYear, leagueID := leagueVars(r)
	view := views.TooEarlyView{Page: mux.Vars(r)[PageVar], LeagueYear: leagueYear, LeagueID: leagueID}
	h.render(w, r, http.StatusOK, views.TooEarlyPage, view)
}

// GetInvalidLeaguePage handles GET /fantasy_stats/invalid-league
func (h *StatusHandler) GetInvalidLeaguePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.InvalidLeaguePage, nil)
}

// NotFound renders the not-found page for unknown routes.
func (h *StatusHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("No route for %s %s", r.Method, r.URL.Path)
	h.render(w, r, http.StatusNotFound, views.NotFoundPage, nil)
}

// Ping handles GET /ping
func (h *StatusHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
