package services

import (
	"strconv"
	"strings"

	"fantasy-stats-web/models"
)

const (
	// LeagueWeekOffset makes the league page default to the last finished week.
	LeagueWeekOffset = -1
	// SimulationWeekOffset makes the simulation page default to the current week.
	SimulationWeekOffset = 0
	// MinSimulationWeek is the first week playoff simulations are offered for.
	MinSimulationWeek = 4
)

// ParseWeekQuery returns the week in a ?week= value, or nil when raw is not an
// integer.
func ParseWeekQuery(raw string) *int {
	week, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &week
}

// DeriveWeekSelection picks the displayed week. A ?week= value that parses is
// authoritative; otherwise the server's current week plus offset is used.
// Without either the selected week stays unknown.
func DeriveWeekSelection(rawWeek string, currentWeek *int, offset, minWeek, maxWeek int) models.WeekSelection {
	selection := models.WeekSelection{
		CurrentWeek: currentWeek,
		MinWeek:     minWeek,
		MaxWeek:     maxWeek,
	}
	if week := ParseWeekQuery(rawWeek); week != nil {
		selection.SelectedWeek = week
		selection.FromQuery = true
		return selection
	}
	if currentWeek != nil {
		week := *currentWeek + offset
		selection.SelectedWeek = &week
	}
	return selection
}

// ClampWeek returns week limited to limit when both are known.
func ClampWeek(week, limit *int) *int {
	if week == nil {
		return nil
	}
	clamped := *week
	if limit != nil && *limit < clamped {
		clamped = *limit
	}
	return &clamped
}
