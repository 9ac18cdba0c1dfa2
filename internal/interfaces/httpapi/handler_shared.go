package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/vpl-ladder/internal/platform/logging"
	"github.com/riskibarqy/vpl-ladder/internal/platform/resilience"
	"github.com/riskibarqy/vpl-ladder/internal/usecase"
)

type Handler struct {
	competitionService *usecase.CompetitionService
	feedService        *usecase.MatchFeedService
	ladderService      *usecase.LadderService
	matchService       *usecase.MatchService
	upstreamBreaker    *resilience.CircuitBreaker
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	competitionService *usecase.CompetitionService,
	feedService *usecase.MatchFeedService,
	ladderService *usecase.LadderService,
	matchService *usecase.MatchService,
	upstreamBreaker *resilience.CircuitBreaker,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		competitionService: competitionService,
		feedService:        feedService,
		ladderService:      ladderService,
		matchService:       matchService,
		upstreamBreaker:    upstreamBreaker,
		logger:             logger,
		validator:          validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// Healthz reports liveness. The upstream breaker state is informational and
// never fails the probe.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, healthDTO{
		Status:   "ok",
		Upstream: h.upstreamBreaker.Stats(),
	})
}

type competitionPath struct {
	CompetitionID string `validate:"required,alphanum,max=32"`
}

type competitionListQuery struct {
	Gender string `validate:"omitempty,oneof=boys girls"`
}

type ladderPath struct {
	CompetitionID string `validate:"required,alphanum,max=32"`
	AgeGroup      string `validate:"required,max=64"`
}

type matchListQuery struct {
	CompetitionID string `validate:"required,alphanum,max=32"`
	AgeGroup      string `validate:"omitempty,max=64"`
	Round         string `validate:"omitempty,max=32,printascii"`
}
