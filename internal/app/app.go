package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/vpl-ladder/external/dribl"
	"github.com/riskibarqy/vpl-ladder/internal/config"
	"github.com/riskibarqy/vpl-ladder/internal/domain/competition"
	"github.com/riskibarqy/vpl-ladder/internal/domain/leaguestanding"
	"github.com/riskibarqy/vpl-ladder/internal/domain/matchresult"
	cacherepo "github.com/riskibarqy/vpl-ladder/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/vpl-ladder/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/vpl-ladder/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/vpl-ladder/internal/platform/cache"
	"github.com/riskibarqy/vpl-ladder/internal/platform/logging"
	"github.com/riskibarqy/vpl-ladder/internal/platform/resilience"
	"github.com/riskibarqy/vpl-ladder/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	namer, err := leaguestanding.NewClubNamer(cfg.LadderAgeGroupTokens)
	if err != nil {
		return nil, fmt.Errorf("build club namer: %w", err)
	}

	competitionRepo := memory.NewCompetitionRepository(memory.SeedCompetitions())

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(resilience.CircuitBreakerConfig{
		Enabled:          cfg.DriblCircuitEnabled,
		FailureThreshold: cfg.DriblCircuitFailureCount,
		OpenTimeout:      cfg.DriblCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.DriblCircuitHalfOpenMaxReq,
	})

	driblClient := dribl.NewClient(dribl.ClientConfig{
		BaseURL:        cfg.DriblBaseURL,
		Season:         cfg.DriblSeason,
		Tenant:         cfg.DriblTenant,
		Timezone:       cfg.DriblTimezone,
		DateRange:      cfg.DriblDateRange,
		Timeout:        cfg.DriblTimeout,
		MaxPages:       cfg.DriblMaxPages,
		Logger:         logger.Named("dribl"),
		CircuitBreaker: breakerCfg,
	})

	var (
		matchRepo   matchresult.Repository = driblClient
		invalidator matchresult.Invalidator
	)
	if cfg.CacheEnabled {
		cached := cacherepo.NewMatchRepository(
			driblClient,
			basecache.NewStore[[]competition.AgeGroup](cfg.CacheTTL),
			basecache.NewStore[[]matchresult.Result](cfg.CacheTTL),
		)
		matchRepo = cached
		invalidator = cached
	}

	feedSvc := usecase.NewMatchFeedService(competitionRepo, matchRepo, invalidator, cfg.FetchMaxWorkers, logger)
	competitionSvc := usecase.NewCompetitionService(competitionRepo, feedSvc)
	ladderSvc := usecase.NewLadderService(feedSvc, namer)
	matchSvc := usecase.NewMatchService(feedSvc, namer)

	handler := httpapi.NewHandler(competitionSvc, feedSvc, ladderSvc, matchSvc, driblClient.Breaker(), logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	logger.Info("app wired", append([]any{
		"cache_enabled", cfg.CacheEnabled,
		"fetch_max_workers", cfg.FetchMaxWorkers,
		"dribl_season", cfg.DriblSeason,
	}, breakerCfg.LogArgs("dribl_circuit")...)...)

	return server, nil
}
