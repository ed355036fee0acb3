package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// MockHandlers answers every route with the name of the handler method and
// the path variables it saw.
type MockHandlers struct{}

func writeName(w http.ResponseWriter, r *http.Request, name string) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(name + " " + vars["leagueYear"] + " " + vars["leagueId"] + " " + vars["page"] + " " + vars["week"]))
}

func (h *MockHandlers) GetLeaguePage(w http.ResponseWriter, r *http.Request) {
	writeName(w, r, "league")
}

func (h *MockHandlers) GetSimulationPage(w http.ResponseWriter, r *http.Request) {
	writeName(w, r, "simulation")
}

func (h *MockHandlers) GetRecordsPage(w http.ResponseWriter, r *http.Request) {
	writeName(w, r, "records")
}

func (h *MockHandlers) GetHomePage(w http.ResponseWriter, r *http.Request) {
	writeName(w, r, "home")
}

func (h *MockHandlers) PostLeagueInput(w http.ResponseWriter, r *http.Request) {
	writeName(w, r, "league-input")
}

func (h *MockHandlers) PostCopyOldLeague(w http.ResponseWriter, r *http.Request) {
	writeName(w, r, "copy-old-league")
}

func (h *MockHandlers) GetTooEarlyPage(w http.ResponseWriter, r *http.Request) {
	writeName(w, r, "too-early")
}

func (h *MockHandlers) GetInvalidLeaguePage(w http.ResponseWriter, r *http.Request) {
	writeName(w, r, "invalid-league")
}

func (h *MockHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("not-found"))
}

func (h *MockHandlers) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"pong"}`))
}

func (h *MockHandlers) GetPowerRankingsChart(w http.ResponseWriter, r *http.Request) {
	writeName(w, r, "power-rankings-chart")
}

func (h *MockHandlers) GetPlayoffOddsChart(w http.ResponseWriter, r *http.Request) {
	writeName(w, r, "playoff-odds-chart")
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	mockHandlers := &MockHandlers{}
	router := mux.NewRouter()
	appRouter := NewRouter(mockHandlers, mockHandlers, mockHandlers, mockHandlers, nil, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{"Home", "GET", "/", http.StatusOK, "home    "},
		{"League Input", "POST", "/fantasy_stats/league-input", http.StatusOK, "league-input    "},
		{"Copy Old League", "POST", "/fantasy_stats/copy-old-league/555", http.StatusOK, "copy-old-league  555  "},
		{"League Page", "GET", "/fantasy_stats/league/2024/123?week=3", http.StatusOK, "league 2024 123  "},
		{"Simulation Page", "GET", "/fantasy_stats/simulation/2024/123", http.StatusOK, "simulation 2024 123  "},
		{"Records Page", "GET", "/fantasy_stats/league-records/2024/123", http.StatusOK, "records 2024 123  "},
		{"Too Early", "GET", "/fantasy_stats/uh-oh-too-early/league-homepage/2024/123", http.StatusOK, "too-early 2024 123 league-homepage "},
		{"Invalid League", "GET", "/fantasy_stats/invalid-league", http.StatusOK, "invalid-league    "},
		{"Power Rankings Chart", "GET", "/fantasy_stats/charts/power-rankings/2024/123/7", http.StatusOK, "power-rankings-chart 2024 123  7"},
		{"Playoff Odds Chart", "GET", "/fantasy_stats/charts/playoff-odds/2024/123", http.StatusOK, "playoff-odds-chart 2024 123  "},
		{"Ping Route", "GET", "/ping", http.StatusOK, `{"status":"pong"}`},
		{"Non Numeric Chart Week", "GET", "/fantasy_stats/charts/power-rankings/2024/123/seven", http.StatusNotFound, "not-found"},
		{"Invalid Route", "GET", "/invalid", http.StatusNotFound, "not-found"},
		{"Wrong Method", "GET", "/fantasy_stats/league-input", http.StatusMethodNotAllowed, ""},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, test.statusCode, rr.Code)
			if test.response != "" {
				assert.Equal(t, test.response, rr.Body.String())
			}
		})
	}
}

func TestRouter_Recoverer(t *testing.T) {
	mockHandlers := &MockHandlers{}
	router := mux.NewRouter()
	var wrapped []string
	recoverer := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped = append(wrapped, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
	NewRouter(mockHandlers, mockHandlers, mockHandlers, mockHandlers, recoverer, router).RegisterRoutes()

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/ping", nil))
	notFound := httptest.NewRecorder()
	router.ServeHTTP(notFound, httptest.NewRequest("GET", "/no/such/page", nil))

	assert.Equal(t, []string{"/ping", "/no/such/page"}, wrapped)
	assert.Equal(t, http.StatusNotFound, notFound.Code)
}
