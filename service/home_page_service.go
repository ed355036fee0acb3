package services

import (
	"context"
	"strconv"
	"strings"

	"fantasy-stats-web/api"
	"fantasy-stats-web/api/fantasystats"
	"fantasy-stats-web/logging"
	"fantasy-stats-web/models"
)

// Inline messages shown by the league forms.
const (
	UnexpectedErrorMessage  = "An unexpected error occurred."
	CreateLeagueFailMessage = "Failed to create league."
	CopyLeagueFailMessage   = "Failed to copy league."
)

// HomePage lists the known leagues and carries the league forms' state.
type HomePage struct {
	PageOutcome

	LeaguesCurrent   []models.LeagueSummary
	LeaguesPrevious  []models.LeagueSummary
	DistinctPrevious []models.LeagueSummary
	RecentLeagues    []models.RecentLeague

	Form      models.LeagueInput
	FormError string
	CopyError string
}

// FormResult is the outcome of a league form: either a path to navigate to
// or an inline error message.
type FormResult struct {
	RedirectPath string
	Error        string
}

type HomePageService struct {
	api           fantasystats.FantasyStatsAPI
	recentLeagues RecentLeagueStore
	logger        *logging.Logger
}

func NewHomePageService(fantasyStatsApi fantasystats.FantasyStatsAPI, recentLeagues RecentLeagueStore) *HomePageService {
	return &HomePageService{
		api:           fantasyStatsApi,
		recentLeagues: recentLeagues,
		logger:        logging.For("HomePageService"),
	}
}

// BuildHomePage loads the league directory. Only the directory is required;
// the returning-league list and the recently viewed leagues are left empty
// when they cannot be loaded.
func (s *HomePageService) BuildHomePage(ctx context.Context) (*HomePage, error) {
	page := &HomePage{}

	var directory models.LeagueDirectory
	resp, err := s.api.GetLeagues(ctx)
	if err := page.settle(fetchInto(&directory, resp, err)); err != nil {
		s.logger.Error("Error fetching leagues: %v", err)
		return page, err
	}
	if page.Redirecting() {
		return page, nil
	}
	page.LeaguesCurrent = directory.LeaguesCurrentYear
	page.LeaguesPrevious = directory.LeaguesPreviousYear

	distinct, err := s.api.GetDistinctLeaguesPrevious(ctx)
	switch {
	case err != nil:
		s.logger.Warn("Error fetching distinct leagues: %v", err)
	case !distinct.Redirected():
		page.DistinctPrevious = distinct.Data
	}

	if s.recentLeagues != nil {
		recent, err := s.recentLeagues.List()
		if err != nil {
			s.logger.Warn("Error listing recent leagues: %v", err)
		}
		page.RecentLeagues = recent
	}
	return page, nil
}

// SubmitLeague adds a league through the backend. A league whose season has
// not started yet leads to the too-early page of the submitted league.
func (s *HomePageService) SubmitLeague(ctx context.Context, input models.LeagueInput) FormResult {
	resp, err := s.api.SubmitLeague(ctx, input)
	if err != nil {
		s.logger.Warn("Submission of league %s failed: %v", input.LeagueID, err)
		return FormResult{Error: formErrorMessage(err, UnexpectedErrorMessage)}
	}
	if resp.Redirected() {
		if strings.Contains(resp.Redirect, "/uh-oh-too-early/") {
			return FormResult{RedirectPath: api.TooEarlyPath(api.TooEarlyLeaguePage, strconv.Itoa(input.LeagueYear), input.LeagueID)}
		}
		return FormResult{RedirectPath: resp.Redirect}
	}
	return formOutcome(resp.Data, CreateLeagueFailMessage)
}

// CopyOldLeague carries a previous season's league into the current season.
func (s *HomePageService) CopyOldLeague(ctx context.Context, leagueID string) FormResult {
	resp, err := s.api.CopyOldLeague(ctx, leagueID)
	if err != nil {
		s.logger.Warn("Error copying league %s: %v", leagueID, err)
		return FormResult{Error: formErrorMessage(err, UnexpectedErrorMessage)}
	}
	if resp.Redirected() {
		return FormResult{RedirectPath: resp.Redirect}
	}
	return formOutcome(resp.Data, CopyLeagueFailMessage)
}

func formOutcome(result models.LeagueFormResult, fallback string) FormResult {
	if result.RedirectURL != "" && result.Error == "" {
		return FormResult{RedirectPath: result.RedirectURL}
	}
	if result.Error != "" {
		return FormResult{Error: result.Error}
	}
	return FormResult{Error: fallback}
}

// formErrorMessage prefers the backend's error field of a rejected form over
// fallback.
func formErrorMessage(err error, fallback string) string {
	fe, ok := api.AsFetchError(err)
	if !ok || fe.Kind != api.FailureHTTP {
		return fallback
	}
	if msg := fe.BodyString("error"); msg != "" {
		return msg
	}
	if fe.Message != "" {
		return fe.Message
	}
	return fallback
}
