package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveWeekSelection(t *testing.T) {
	tests := []struct {
		name         string
		rawWeek      string
		currentWeek  *int
		offset       int
		wantSelected *int
		wantQuery    bool
	}{
		{"query week is authoritative", "7", intPtr(10), LeagueWeekOffset, intPtr(7), true},
		{"query week beyond current", "12", intPtr(10), LeagueWeekOffset, intPtr(12), true},
		{"zero query week", "0", intPtr(10), LeagueWeekOffset, intPtr(0), true},
		{"padded query week", " 5 ", intPtr(10), LeagueWeekOffset, intPtr(5), true},
		{"no query week", "", intPtr(10), LeagueWeekOffset, intPtr(9), false},
		{"unparsable query week", "seven", intPtr(10), LeagueWeekOffset, intPtr(9), false},
		{"simulation offset", "", intPtr(10), SimulationWeekOffset, intPtr(10), false},
		{"unknown current week", "", nil, LeagueWeekOffset, nil, false},
		{"unknown current week with query", "3", nil, LeagueWeekOffset, intPtr(3), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			selection := DeriveWeekSelection(test.rawWeek, test.currentWeek, test.offset, 1, 10)

			assert.Equal(t, test.wantSelected, selection.SelectedWeek)
			assert.Equal(t, test.wantQuery, selection.FromQuery)
			assert.Equal(t, test.currentWeek, selection.CurrentWeek)
			assert.Equal(t, 1, selection.MinWeek)
			assert.Equal(t, 10, selection.MaxWeek)
		})
	}
}

func TestDeriveWeekSelection_IsRederivedPerCall(t *testing.T) {
	first := DeriveWeekSelection("", intPtr(10), LeagueWeekOffset, 1, 10)
	second := DeriveWeekSelection("", intPtr(11), LeagueWeekOffset, 1, 11)

	assert.Equal(t, 9, first.Selected())
	assert.Equal(t, 10, second.Selected())
}

func TestClampWeek(t *testing.T) {
	assert.Nil(t, ClampWeek(nil, intPtr(14)))
	assert.Equal(t, intPtr(10), ClampWeek(intPtr(10), nil))
	assert.Equal(t, intPtr(10), ClampWeek(intPtr(10), intPtr(14)))
	assert.Equal(t, intPtr(14), ClampWeek(intPtr(17), intPtr(14)))
}

func TestWeekSelection_Options(t *testing.T) {
	selection := DeriveWeekSelection("", intPtr(4), LeagueWeekOffset, 1, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, selection.Options())

	selection = DeriveWeekSelection("", nil, LeagueWeekOffset, 1, 0)
	assert.Empty(t, selection.Options())
}
