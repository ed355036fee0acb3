package handlers

import (
	"net/http"
	"strings"

	"fantasy-stats-web/server/views"
	services "fantasy-stats-web/service"

	"github.com/gorilla/mux"
)

// Path variables
const (
	LeagueYearVar = "leagueYear"
	LeagueIDVar   = "leagueId"
	WeekVar       = "week"
	PageVar       = "page"
)

// Query arguments
const (
	WeekQueryArg        = "week"
	SimulationsQueryArg = "n_simulations"
)

// pageResponder writes the result of a page build.
type pageResponder struct {
	renderer *views.Renderer
	boundary *ErrorBoundary
}

// pageModel is a built page. All page models embed services.PageOutcome.
type pageModel interface {
	Outcome() services.PageOutcome
}

// respond hands a failed build to the error boundary, redirects a
// Redirecting page and renders anything else as page.
func (p pageResponder) respond(w http.ResponseWriter, r *http.Request, page string, model pageModel, err error) {
	if err != nil {
		p.boundary.Fail(w, r, err)
		return
	}
	if outcome := model.Outcome(); outcome.Redirecting() {
		http.Redirect(w, r, outcome.RedirectPath, http.StatusFound)
		return
	}
	p.render(w, r, http.StatusOK, page, model)
}

func (p pageResponder) render(w http.ResponseWriter, r *http.Request, status int, page string, data interface{}) {
	if err := p.renderer.Render(w, r, status, page, data); err != nil {
		p.boundary.Fail(w, r, err)
	}
}

func leagueVars(r *http.Request) (string, string) {
	vars := mux.Vars(r)
	return strings.TrimSpace(vars[LeagueYearVar]), strings.TrimSpace(vars[LeagueIDVar])
}
