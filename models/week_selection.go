package models

// WeekSelection is the week a page displays together with the bounds of the
// week picker. SelectedWeek and CurrentWeek are nil until known.
type WeekSelection struct {
	SelectedWeek *int `json:"selected_week"`
	CurrentWeek  *int `json:"current_week"`
	MinWeek      int  `json:"min_week"`
	MaxWeek      int  `json:"max_week"`
	FromQuery    bool `json:"from_query"`
}

// Selected returns the selected week or 0 when unknown.
func (w WeekSelection) Selected() int {
	if w.SelectedWeek == nil {
		return 0
	}
	return *w.SelectedWeek
}

// Options lists MinWeek..MaxWeek.
func (w WeekSelection) Options() []int {
	if w.MaxWeek < w.MinWeek {
		return nil
	}
	weeks := make([]int, 0, w.MaxWeek-w.MinWeek+1)
	for week := w.MinWeek; week <= w.MaxWeek; week++ {
		weeks = append(weeks, week)
	}
	return weeks
}
