package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCompetitionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/competitions", handler.ListCompetitions)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/age-groups", handler.ListAgeGroups)
	mux.HandleFunc("POST /v1/competitions/{competitionID}/refresh", handler.RefreshCompetition)
}

func registerLadderRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/competitions/{competitionID}/ladders", handler.ListDivisionLadders)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/ladders/{ageGroup}", handler.GetDivisionLadder)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/club-ladder", handler.GetClubLadder)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/competitions/{competitionID}/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/results", handler.ListResults)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/rounds", handler.ListRounds)
}
