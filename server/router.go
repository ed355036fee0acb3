package server

import (
	"net/http"

	"fantasy-stats-web/server/views"

	"github.com/gorilla/mux"
)

type LeagueHandler interface {
	GetLeaguePage(w http.ResponseWriter, r *http.Request)
	GetSimulationPage(w http.ResponseWriter, r *http.Request)
	GetRecordsPage(w http.ResponseWriter, r *http.Request)
}

type HomeHandler interface {
	GetHomePage(w http.ResponseWriter, r *http.Request)
	PostLeagueInput(w http.ResponseWriter, r *http.Request)
	PostCopyOldLeague(w http.ResponseWriter, r *http.Request)
}

type StatusHandler interface {
	GetTooEarlyPage(w http.ResponseWriter, r *http.Request)
	GetInvalidLeaguePage(w http.ResponseWriter, r *http.Request)
	NotFound(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type ChartHandler interface {
	GetPowerRankingsChart(w http.ResponseWriter, r *http.Request)
	GetPlayoffOddsChart(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	leagueHandler LeagueHandler
	homeHandler   HomeHandler
	statusHandler StatusHandler
	chartHandler  ChartHandler
	recoverer     mux.MiddlewareFunc
	router        *mux.Router
}

// NewRouter creates a router with the app's routes. recoverer may be nil.
func NewRouter(
	leagueHandler LeagueHandler,
	homeHandler HomeHandler,
	statusHandler StatusHandler,
	chartHandler ChartHandler,
	recoverer mux.MiddlewareFunc,
	router *mux.Router) *Router {
	return &Router{
		leagueHandler: leagueHandler,
		homeHandler:   homeHandler,
		statusHandler: statusHandler,
		chartHandler:  chartHandler,
		recoverer:     recoverer,
		router:        router,
	}
}

func (r *Router) RegisterRoutes() {
	if r.recoverer != nil {
		r.router.Use(r.recoverer)
	}

	r.router.HandleFunc("/", r.homeHandler.GetHomePage).Methods("GET")
	r.router.HandleFunc("/fantasy_stats/league-input", r.homeHandler.PostLeagueInput).Methods("POST")
	r.router.HandleFunc("/fantasy_stats/copy-old-league/{leagueId}", r.homeHandler.PostCopyOldLeague).Methods("POST")

	// expects ?week={week(int)}
	r.router.HandleFunc("/fantasy_stats/league/{leagueYear}/{leagueId}", r.leagueHandler.GetLeaguePage).Methods("GET")
	// expects ?week={week(int)}&n_simulations={n(int)}
	r.router.HandleFunc("/fantasy_stats/simulation/{leagueYear}/{leagueId}", r.leagueHandler.GetSimulationPage).Methods("GET")
	r.router.HandleFunc("/fantasy_stats/league-records/{leagueYear}/{leagueId}", r.leagueHandler.GetRecordsPage).Methods("GET")

	r.router.HandleFunc("/fantasy_stats/uh-oh-too-early/{page}/{leagueYear}/{leagueId}", r.statusHandler.GetTooEarlyPage).Methods("GET")
	r.router.HandleFunc("/fantasy_stats/invalid-league", r.statusHandler.GetInvalidLeaguePage).Methods("GET")

	r.router.HandleFunc("/fantasy_stats/charts/power-rankings/{leagueYear}/{leagueId}/{week:[0-9]+}", r.chartHandler.GetPowerRankingsChart).Methods("GET")
	r.router.HandleFunc("/fantasy_stats/charts/playoff-odds/{leagueYear}/{leagueId}", r.chartHandler.GetPlayoffOddsChart).Methods("GET")

	r.router.PathPrefix("/static/").Handler(views.StaticHandler("/static/")).Methods("GET")
	r.router.HandleFunc("/ping", r.statusHandler.Ping).Methods("GET")

	var notFound http.Handler = http.HandlerFunc(r.statusHandler.NotFound)
	// mux middleware does not run for NotFoundHandler.
	if r.recoverer != nil {
		notFound = r.recoverer(notFound)
	}
	r.router.NotFoundHandler = notFound
}
