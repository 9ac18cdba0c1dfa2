package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	query := competitionListQuery{Gender: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("gender")))}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.competitionService.List(ctx, query.Gender)
	if err != nil {
		h.logger.ErrorContext(ctx, "list competitions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]competitionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, competitionToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListAgeGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAgeGroups")
	defer span.End()

	path := competitionPath{CompetitionID: strings.TrimSpace(r.PathValue("competitionID"))}
	if err := h.validateRequest(ctx, path); err != nil {
		writeError(ctx, w, err)
		return
	}

	groups, err := h.competitionService.ListAgeGroups(ctx, path.CompetitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list age groups failed", "competition_id", path.CompetitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]ageGroupDTO, 0, len(groups))
	for _, group := range groups {
		out = append(out, ageGroupDTO{ID: group.ID, Name: group.Name})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) RefreshCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshCompetition")
	defer span.End()

	path := competitionPath{CompetitionID: strings.TrimSpace(r.PathValue("competitionID"))}
	if err := h.validateRequest(ctx, path); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.feedService.Refresh(ctx, path.CompetitionID); err != nil {
		h.logger.WarnContext(ctx, "refresh competition failed", "competition_id", path.CompetitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, refreshDTO{CompetitionID: path.CompetitionID, Refreshed: true})
}
