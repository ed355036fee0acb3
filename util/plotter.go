package util

import (
	"fmt"
	"io"

	"fantasy-stats-web/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartWidth  = "900px"
	chartHeight = "500px"
)

// PlotPowerRankings renders the week's power rankings as an HTML bar chart.
func PlotPowerRankings(w io.Writer, leagueName string, week int, rankings []models.PowerRanking) error {
	teams := make([]string, 0, len(rankings))
	values := make([]opts.BarData, 0, len(rankings))
	for _, r := range rankings {
		teams = append(teams, r.Team)
		values = append(values, opts.BarData{Name: r.Owner, Value: r.Value})
	}

	bar := newBarChart(
		fmt.Sprintf("%s Power Rankings", leagueName),
		fmt.Sprintf("Week %d", week),
	)
	bar.SetXAxis(teams).AddSeries("Power Score", values,
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "top",
		}),
	)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render power rankings chart: %w", err)
	}
	return nil
}

// PlotPlayoffOdds renders the simulated playoff odds as an HTML bar chart.
func PlotPlayoffOdds(w io.Writer, nSimulations string, odds []models.PlayoffOdds) error {
	teams := make([]string, 0, len(odds))
	values := make([]opts.BarData, 0, len(odds))
	for _, o := range odds {
		teams = append(teams, o.Team)
		values = append(values, opts.BarData{Name: o.Owner, Value: o.PlayoffOdds})
	}

	subtitle := "Simulated season"
	if nSimulations != "" {
		subtitle = fmt.Sprintf("%s simulations", nSimulations)
	}
	bar := newBarChart("Playoff Odds", subtitle)
	bar.SetXAxis(teams).AddSeries("Playoff Odds (%)", values,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Position:  "top",
			Formatter: "{c}%",
		}),
	)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render playoff odds chart: %w", err)
	}
	return nil
}

func newBarChart(title, subtitle string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	return bar
}
