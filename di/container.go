package di

import (
	"context"
	"fmt"

	"fantasy-stats-web/api"
	"fantasy-stats-web/api/fantasystats"
	"fantasy-stats-web/config"
	"fantasy-stats-web/dao/redis"
	"fantasy-stats-web/db"
	"fantasy-stats-web/logging"
	"fantasy-stats-web/server"
	"fantasy-stats-web/server/handlers"
	"fantasy-stats-web/server/views"
	services "fantasy-stats-web/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	Config                     *config.Config
	RedisClient                db.RedisClient
	RedisRecentLeagueDao       *redis.RedisRecentLeagueDAO
	FantasyStatsAPI            fantasystats.FantasyStatsAPI
	LeaguePageService          *services.LeaguePageService
	SimulationPageService      *services.SimulationPageService
	RecordsPageService         *services.RecordsPageService
	HomePageService            *services.HomePageService
	RecentLeaguesPrunerService *services.RecentLeaguesPrunerService
	Notices                    *views.NoticeStore
	Renderer                   *views.Renderer
	ErrorBoundary              *handlers.ErrorBoundary
	LeagueHandler              *handlers.LeagueHandler
	HomeHandler                *handlers.HomeHandler
	StatusHandler              *handlers.StatusHandler
	ChartHandler               *handlers.ChartHandler
	MuxRouter                  *mux.Router
	Router                     *server.Router
	FantasyStatsHttpServer     *server.FantasyStatsHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger := logging.For("Container")
	logger.Info("Initializing container - env: %s", cfg.Env)

	// Initialize Redis client, in memory when no address is configured
	var redisClient db.RedisClient
	if cfg.Redis.Address == "" {
		logger.Info("Using in-memory redis client")
		redisClient = db.NewMockRedisClient(ctx)
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		goRedisClient, err := db.NewGoRedisClient(ctx, redisInternalClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		redisClient = goRedisClient
	}

	// Initialize Redis recent league DAO
	redisRecentLeagueDao := redis.NewRedisRecentLeagueDAO(redisClient)

	// Initialize the stats API, using fixtures outside prod
	var fantasyStatsAPI fantasystats.FantasyStatsAPI
	if !cfg.IsProd() {
		logger.Info("Using mock fantasy stats api with fixtures from %s", cfg.ResourcesDir)
		fantasyStatsAPI = fantasystats.NewFantasyStatsApiClientMock(cfg.ResourcesDir)
	} else {
		logger.Info("Using fantasy stats api at %s", cfg.API.BaseURL)
		httpClient := api.NewHTTPClientWithTimeout(cfg.API.BaseURL, cfg.APITimeout())
		fantasyStatsAPI = fantasystats.NewFantasyStatsApiClient(httpClient, cfg.API.RetryCount, cfg.API.Verbose)
	}

	// Initialize service layer
	leaguePageService := services.NewLeaguePageService(fantasyStatsAPI, redisRecentLeagueDao, cfg.APITimeout())
	simulationPageService := services.NewSimulationPageService(fantasyStatsAPI, cfg.APITimeout())
	recordsPageService := services.NewRecordsPageService(fantasyStatsAPI)
	homePageService := services.NewHomePageService(fantasyStatsAPI, redisRecentLeagueDao)
	prunerService := services.NewRecentLeaguesPrunerService(redisRecentLeagueDao, cfg.RecentLeagues.Limit)

	// Initialize views
	notices := views.NewNoticeStore(cfg.Notices)
	renderer, err := views.NewRenderer(notices)
	if err != nil {
		return nil, err
	}
	if cfg.Analytics.Enabled {
		if err := renderer.InitAnalytics(cfg.Analytics.MeasurementID); err != nil {
			return nil, err
		}
	}

	// Initialize handlers
	errorBoundary := handlers.NewErrorBoundary(renderer)
	leagueHandler := handlers.NewLeagueHandler(leaguePageService, simulationPageService, recordsPageService, renderer, errorBoundary)
	homeHandler := handlers.NewHomeHandler(homePageService, renderer, errorBoundary)
	statusHandler := handlers.NewStatusHandler(renderer, errorBoundary)
	chartHandler := handlers.NewChartHandler(fantasyStatsAPI, renderer, errorBoundary)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(leagueHandler, homeHandler, statusHandler, chartHandler, errorBoundary.Recover, muxRouter)

	// Initialize fantasy stats server
	fantasyStatsHttpServer := server.NewFantasyStatsHttpServer(router, muxRouter, cfg.Addr())

	return &Container{
		Config:                     cfg,
		RedisClient:                redisClient,
		RedisRecentLeagueDao:       redisRecentLeagueDao,
		FantasyStatsAPI:            fantasyStatsAPI,
		LeaguePageService:          leaguePageService,
		SimulationPageService:      simulationPageService,
		RecordsPageService:         recordsPageService,
		HomePageService:            homePageService,
		RecentLeaguesPrunerService: prunerService,
		Notices:                    notices,
		Renderer:                   renderer,
		ErrorBoundary:              errorBoundary,
		LeagueHandler:              leagueHandler,
		HomeHandler:                homeHandler,
		StatusHandler:              statusHandler,
		ChartHandler:               chartHandler,
		MuxRouter:                  muxRouter,
		Router:                     router,
		FantasyStatsHttpServer:     fantasyStatsHttpServer,
	}, nil
}
