package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/vpl-ladder/internal/usecase"
)

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	query := matchQueryFromRequest(r)
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	rounds, err := h.matchService.ListFixtures(ctx, usecase.MatchQuery(query))
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "competition_id", query.CompetitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundMatchesToDTO(rounds))
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListResults")
	defer span.End()

	query := matchQueryFromRequest(r)
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	rounds, err := h.matchService.ListResults(ctx, usecase.MatchQuery(query))
	if err != nil {
		h.logger.WarnContext(ctx, "list results failed", "competition_id", query.CompetitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundMatchesToDTO(rounds))
}

func (h *Handler) ListRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRounds")
	defer span.End()

	path := competitionPath{CompetitionID: strings.TrimSpace(r.PathValue("competitionID"))}
	if err := h.validateRequest(ctx, path); err != nil {
		writeError(ctx, w, err)
		return
	}

	rounds, err := h.matchService.ListRounds(ctx, path.CompetitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list rounds failed", "competition_id", path.CompetitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundsDTO{
		Fixtures: roundOptionsToDTO(rounds.Fixtures),
		Results:  roundOptionsToDTO(rounds.Results),
	})
}

func matchQueryFromRequest(r *http.Request) matchListQuery {
	values := r.URL.Query()
	return matchListQuery{
		CompetitionID: strings.TrimSpace(r.PathValue("competitionID")),
		AgeGroup:      strings.TrimSpace(values.Get("age_group")),
		Round:         strings.TrimSpace(values.Get("round")),
	}
}
