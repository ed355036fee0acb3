package views

import "fantasy-stats-web/api"

// TooEarlyView is the model of the too-early page.
type TooEarlyView struct {
	Page       string
	LeagueYear string
	LeagueID   string
}

func (v TooEarlyView) Message() string {
	switch v.Page {
	case api.TooEarlyLeaguePage:
		return "We're sorry, but league homepages are not accessible until Week 1 has begun. " +
			"Please check back later for the information you're looking for."
	case api.TooEarlySimulationsPage:
		return "We're sorry, but playoff simulations are not accessible until Week 4 has completed. " +
			"Please check back later for the information you're looking for."
	default:
		return "This page is not available yet. Please check back later."
	}
}

// LeagueLink points back to the league page, except when the league page
// itself is the one that is too early.
func (v TooEarlyView) LeagueLink() string {
	if v.Page == api.TooEarlyLeaguePage || v.LeagueYear == "" || v.LeagueID == "" {
		return ""
	}
	return api.LeaguePagePath(v.LeagueYear, v.LeagueID)
}

// ErrorView is the model of the error boundary page.
type ErrorView struct {
	Message   string
	Details   string
	Reference string
}
