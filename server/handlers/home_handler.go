package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"fantasy-stats-web/logging"
	"fantasy-stats-web/models"
	"fantasy-stats-web/server/views"
	services "fantasy-stats-web/service"

	"github.com/gorilla/mux"
)

// Form fields of the new league form.
const (
	LeagueIDFormField   = "league_id"
	LeagueYearFormField = "league_year"
	SWIDFormField       = "swid"
	EspnS2FormField     = "espn_s2"
)

type HomePageBuilder interface {
	BuildHomePage(ctx context.Context) (*services.HomePage, error)
	SubmitLeague(ctx context.Context, input models.LeagueInput) services.FormResult
	CopyOldLeague(ctx context.Context, leagueID string) services.FormResult
}

// HomeHandler serves the home page and its two league forms.
type HomeHandler struct {
	pageResponder
	homePages HomePageBuilder
	logger    *logging.Logger
}

func NewHomeHandler(homePages HomePageBuilder, renderer *views.Renderer, boundary *ErrorBoundary) *HomeHandler {
	return &HomeHandler{
		pageResponder: pageResponder{renderer: renderer, boundary: boundary},
		homePages:     homePages,
		logger:        logging.For("HomeHandler"),
	}
}

// GetHomePage handles GET /
func (h *HomeHandler) GetHomePage(w http.ResponseWriter, r *http.Request) {
	page, err := h.homePages.BuildHomePage(r.Context())
	h.respond(w, r, views.HomePage, page, err)
}

// PostLeagueInput handles POST /fantasy_stats/league-input
func (h *HomeHandler) PostLeagueInput(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	input := models.LeagueInput{
		LeagueID: strings.TrimSpace(r.PostForm.Get(LeagueIDFormField)),
		SWID:     strings.TrimSpace(r.PostForm.Get(SWIDFormField)),
		EspnS2:   strings.TrimSpace(r.PostForm.Get(EspnS2FormField)),
	}
	year, err := strconv.Atoi(strings.TrimSpace(r.PostForm.Get(LeagueYearFormField)))
	if err != nil || input.LeagueID == "" {
		h.logger.Warn("Rejected league form: id=%q year=%q", input.LeagueID, r.PostForm.Get(LeagueYearFormField))
		h.renderFormError(w, r, input, func(page *services.HomePage) {
			page.FormError = services.CreateLeagueFailMessage
		})
		return
	}
	input.LeagueYear = year

	result := h.homePages.SubmitLeague(r.Context(), input)
	if result.RedirectPath != "" {
		http.Redirect(w, r, result.RedirectPath, http.StatusSeeOther)
		return
	}
	h.renderFormError(w, r, input, func(page *services.HomePage) {
		page.FormError = result.Error
	})
}

// PostCopyOldLeague handles POST /fantasy_stats/copy-old-league/{leagueId}
func (h *HomeHandler) PostCopyOldLeague(w http.ResponseWriter, r *http.Request) {
	leagueID := strings.TrimSpace(mux.Vars(r)[LeagueIDVar])

	result := h.homePages.CopyOldLeague(r.Context(), leagueID)
	if result.RedirectPath != "" {
		http.Redirect(w, r, result.RedirectPath, http.StatusSeeOther)
		return
	}
	h.renderFormError(w, r, models.LeagueInput{}, func(page *services.HomePage) {
		page.CopyError = result.Error
	})
}

// renderFormError shows the home page again with the rejected form. The
// credentials are never echoed back.
func (h *HomeHandler) renderFormError(w http.ResponseWriter, r *http.Request, input models.LeagueInput, setError func(*services.HomePage)) {
	page, err := h.homePages.BuildHomePage(r.Context())
	if err != nil {
		h.boundary.Fail(w, r, err)
		return
	}
	if page.Redirecting() {
		http.Redirect(w, r, page.RedirectPath, http.StatusSeeOther)
		return
	}
	page.Form = models.LeagueInput{LeagueID: input.LeagueID, LeagueYear: input.LeagueYear}
	setError(page)
	h.render(w, r, http.StatusOK, views.HomePage, page)
}
