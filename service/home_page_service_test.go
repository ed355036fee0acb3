package services

import (
	"context"
	"errors"
	"testing"

	"fantasy-stats-web/api"
	"fantasy-stats-web/dao/redis"
	"fantasy-stats-web/db"
	"fantasy-stats-web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomePageService_BuildHomePage(t *testing.T) {
	fake := newFakeAPI()
	fake.directory = models.LeagueDirectory{
		LeaguesCurrentYear:  []models.LeagueSummary{{LeagueID: 1, LeagueYear: 2024, LeagueName: "Now"}},
		LeaguesPreviousYear: []models.LeagueSummary{{LeagueID: 1, LeagueYear: 2023, LeagueName: "Then"}},
	}
	dao := redis.NewRedisRecentLeagueDAO(db.NewMockRedisClient(context.Background()))
	require.NoError(t, dao.Record(models.RecentLeague{LeagueYear: "2024", LeagueID: "1", ViewedAt: 5}))
	svc := NewHomePageService(fake, dao)

	page, err := svc.BuildHomePage(context.Background())

	require.NoError(t, err)
	assert.Equal(t, PageReady, page.State)
	assert.Len(t, page.LeaguesCurrent, 1)
	assert.Len(t, page.LeaguesPrevious, 1)
	assert.Len(t, page.DistinctPrevious, 1)
	assert.Len(t, page.RecentLeagues, 1)
}

func TestHomePageService_BuildHomePage_OptionalListsFailQuietly(t *testing.T) {
	fake := newFakeAPI()
	fake.failures["GetDistinctLeaguesPrevious"] = errors.New("down")
	svc := NewHomePageService(fake, nil)

	page, err := svc.BuildHomePage(context.Background())

	require.NoError(t, err)
	assert.Empty(t, page.DistinctPrevious)
	assert.Empty(t, page.RecentLeagues)
}

func TestHomePageService_BuildHomePage_DirectoryFailure(t *testing.T) {
	fake := newFakeAPI()
	fake.failures["GetLeagues"] = &api.FetchError{Kind: api.FailureHTTP, StatusCode: 500}
	svc := NewHomePageService(fake, nil)

	page, err := svc.BuildHomePage(context.Background())

	require.Error(t, err)
	assert.Equal(t, PageErrored, page.State)
}

func TestHomePageService_SubmitLeague(t *testing.T) {
	input := models.LeagueInput{LeagueID: "123", LeagueYear: 2025, SWID: "swid", EspnS2: "s2"}
	tests := []struct {
		name     string
		result   models.LeagueFormResult
		redirect string
		failure  error
		want     FormResult
	}{
		{
			name:   "success",
			result: models.LeagueFormResult{Success: true, RedirectURL: "/fantasy_stats/league/2025/123/"},
			want:   FormResult{RedirectPath: "/fantasy_stats/league/2025/123/"},
		},
		{
			name:     "too early uses the submitted league",
			redirect: "/fantasy_stats/uh-oh-too-early/league-homepage//",
			want:     FormResult{RedirectPath: "/fantasy_stats/uh-oh-too-early/league-homepage/2025/123"},
		},
		{
			name:     "invalid league",
			redirect: api.InvalidLeaguePath,
			want:     FormResult{RedirectPath: api.InvalidLeaguePath},
		},
		{
			name:   "backend refusal",
			result: models.LeagueFormResult{Error: "Invalid credentials"},
			want:   FormResult{Error: "Invalid credentials"},
		},
		{
			name: "no redirect and no error",
			want: FormResult{Error: CreateLeagueFailMessage},
		},
		{
			name: "rejected with error body",
			failure: &api.FetchError{Kind: api.FailureHTTP, StatusCode: 400,
				Body: map[string]interface{}{"error": "League already exists"}},
			want: FormResult{Error: "League already exists"},
		},
		{
			name:    "network failure",
			failure: &api.FetchError{Kind: api.FailureNetwork},
			want:    FormResult{Error: UnexpectedErrorMessage},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fake := newFakeAPI()
			fake.formResult = test.result
			if test.redirect != "" {
				fake.redirects["SubmitLeague"] = test.redirect
			}
			if test.failure != nil {
				fake.failures["SubmitLeague"] = test.failure
			}
			svc := NewHomePageService(fake, nil)

			got := svc.SubmitLeague(context.Background(), input)

			assert.Equal(t, test.want, got)
			assert.Equal(t, input, fake.submitted)
		})
	}
}

func TestHomePageService_CopyOldLeague(t *testing.T) {
	tests := []struct {
		name    string
		result  models.LeagueFormResult
		failure error
		want    FormResult
	}{
		{"success", models.LeagueFormResult{Success: true, RedirectURL: "/fantasy_stats/league/2025/9/"}, nil, FormResult{RedirectPath: "/fantasy_stats/league/2025/9/"}},
		{"no redirect", models.LeagueFormResult{}, nil, FormResult{Error: CopyLeagueFailMessage}},
		{"backend error", models.LeagueFormResult{Error: "Already copied"}, nil, FormResult{Error: "Already copied"}},
		{"failure", models.LeagueFormResult{}, errors.New("dial tcp: refused"), FormResult{Error: UnexpectedErrorMessage}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fake := newFakeAPI()
			fake.formResult = test.result
			if test.failure != nil {
				fake.failures["CopyOldLeague"] = test.failure
			}
			svc := NewHomePageService(fake, nil)

			got := svc.CopyOldLeague(context.Background(), "9")

			assert.Equal(t, test.want, got)
			assert.Equal(t, "9", fake.copiedLeague)
		})
	}
}
