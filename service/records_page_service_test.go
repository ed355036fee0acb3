package services

import (
	"context"
	"testing"

	"fantasy-stats-web/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsPageService(t *testing.T) {
	tests := []struct {
		name      string
		redirect  string
		failure   error
		wantState PageState
	}{
		{"ready", "", nil, PageReady},
		{"redirect", api.InvalidLeaguePath, nil, PageRedirecting},
		{"failure", "", &api.FetchError{Kind: api.FailureHTTP, StatusCode: 502}, PageErrored},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fake := newFakeAPI()
			if test.redirect != "" {
				fake.redirects["GetSeasonRecords"] = test.redirect
			}
			if test.failure != nil {
				fake.failures["GetSeasonRecords"] = test.failure
			}
			svc := NewRecordsPageService(fake)

			page, err := svc.BuildRecordsPage(context.Background(), "2024", "123")

			assert.Equal(t, test.wantState, page.State)
			assert.Equal(t, test.redirect, page.RedirectPath)
			if test.failure != nil {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if test.redirect == "" {
				assert.Len(t, page.Records.BestTeamStats, 1)
			}
		})
	}
}
