package services

import (
	"fmt"

	"fantasy-stats-web/models"

	"github.com/montanaflynn/stats"
)

// BoxScoreSummary describes every team score of one week.
type BoxScoreSummary struct {
	Teams  int
	Mean   float64
	Median float64
	StdDev float64
	High   float64
	Low    float64
}

// SummarizeBoxScores returns nil for a week without box scores.
func SummarizeBoxScores(boxScores []models.BoxScore) (*BoxScoreSummary, error) {
	if len(boxScores) == 0 {
		return nil, nil
	}
	data := make(stats.Float64Data, 0, 2*len(boxScores))
	for _, b := range boxScores {
		data = append(data, b.HomeScore, b.AwayScore)
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, fmt.Errorf("mean: %w", err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return nil, fmt.Errorf("median: %w", err)
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return nil, fmt.Errorf("standard deviation: %w", err)
	}
	high, err := stats.Max(data)
	if err != nil {
		return nil, fmt.Errorf("max: %w", err)
	}
	low, err := stats.Min(data)
	if err != nil {
		return nil, fmt.Errorf("min: %w", err)
	}

	return &BoxScoreSummary{
		Teams:  len(data),
		Mean:   round2(mean),
		Median: round2(median),
		StdDev: round2(stdDev),
		High:   high,
		Low:    low,
	}, nil
}

func round2(v float64) float64 {
	r, err := stats.Round(v, 2)
	if err != nil {
		return v
	}
	return r
}
