package util

import (
	"bytes"
	"testing"

	"fantasy-stats-web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotPowerRankings(t *testing.T) {
	var buf bytes.Buffer
	rankings := []models.PowerRanking{
		{Team: "Team A", Owner: "Pat", Value: 91.2},
		{Team: "Team B", Owner: "Sam", Value: 77.4},
	}

	require.NoError(t, PlotPowerRankings(&buf, "The Dorito Bowl", 7, rankings))

	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "The Dorito Bowl Power Rankings")
	assert.Contains(t, html, "Team A")
	assert.Contains(t, html, "91.2")
}

func TestPlotPlayoffOdds(t *testing.T) {
	var buf bytes.Buffer
	odds := []models.PlayoffOdds{{Team: "Team A", PlayoffOdds: 87.5}}

	require.NoError(t, PlotPlayoffOdds(&buf, "250", odds))

	html := buf.String()
	assert.Contains(t, html, "Playoff Odds")
	assert.Contains(t, html, "250 simulations")
	assert.Contains(t, html, "87.5")
}
