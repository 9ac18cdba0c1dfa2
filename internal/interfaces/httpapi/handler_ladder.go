package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListDivisionLadders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisionLadders")
	defer span.End()

	path := competitionPath{CompetitionID: strings.TrimSpace(r.PathValue("competitionID"))}
	if err := h.validateRequest(ctx, path); err != nil {
		writeError(ctx, w, err)
		return
	}

	ladders, err := h.ladderService.DivisionLadders(ctx, path.CompetitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list division ladders failed", "competition_id", path.CompetitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]divisionLadderDTO, 0, len(ladders))
	for _, ladder := range ladders {
		out = append(out, divisionLadderToDTO(ladder))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetDivisionLadder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDivisionLadder")
	defer span.End()

	path := ladderPath{
		CompetitionID: strings.TrimSpace(r.PathValue("competitionID")),
		AgeGroup:      strings.TrimSpace(r.PathValue("ageGroup")),
	}
	if err := h.validateRequest(ctx, path); err != nil {
		writeError(ctx, w, err)
		return
	}

	ladder, err := h.ladderService.DivisionLadder(ctx, path.CompetitionID, path.AgeGroup)
	if err != nil {
		h.logger.WarnContext(ctx, "get division ladder failed",
			"competition_id", path.CompetitionID,
			"age_group", path.AgeGroup,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, divisionLadderToDTO(ladder))
}

func (h *Handler) GetClubLadder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubLadder")
	defer span.End()

	path := competitionPath{CompetitionID: strings.TrimSpace(r.PathValue("competitionID"))}
	if err := h.validateRequest(ctx, path); err != nil {
		writeError(ctx, w, err)
		return
	}

	ladder, err := h.ladderService.ClubLadder(ctx, path.CompetitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get club ladder failed", "competition_id", path.CompetitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubLadderToDTO(ladder))
}
