package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/vpl-ladder/internal/domain/competition"
	"github.com/riskibarqy/vpl-ladder/internal/domain/leaguestanding"
	"github.com/riskibarqy/vpl-ladder/internal/domain/matchresult"
	"github.com/riskibarqy/vpl-ladder/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/vpl-ladder/internal/platform/logging"
	"github.com/riskibarqy/vpl-ladder/internal/platform/resilience"
	"github.com/riskibarqy/vpl-ladder/internal/usecase"
)

type stubMatchRepository struct {
	mu          sync.Mutex
	ageGroups   []competition.AgeGroup
	records     map[string][]matchresult.Result
	err         error
	invalidated []string
}

func (s *stubMatchRepository) ListAgeGroups(_ context.Context, _ string) ([]competition.AgeGroup, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.ageGroups, nil
}

func (s *stubMatchRepository) ListByAgeGroup(_ context.Context, _ string, ageGroupID string, kind matchresult.Kind) ([]matchresult.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records[ageGroupID+"/"+string(kind)], nil
}

func (s *stubMatchRepository) Invalidate(_ context.Context, competitionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidated = append(s.invalidated, competitionID)
}

func scored(league, round, home, away string, homeScore, awayScore int) matchresult.Result {
	return matchresult.Result{
		LeagueName:   league,
		Round:        round,
		FullRound:    "Round " + round[1:],
		HomeTeamName: home,
		AwayTeamName: away,
		HomeScore:    &homeScore,
		AwayScore:    &awayScore,
		Status:       matchresult.StatusComplete,
		KickoffAt:    time.Date(2025, 4, 5, 9, 0, 0, 0, time.UTC),
	}
}

func pending(league, round, home, away string) matchresult.Result {
	return matchresult.Result{
		LeagueName:   league,
		Round:        round,
		FullRound:    "Round " + round[1:],
		HomeTeamName: home,
		AwayTeamName: away,
		Status:       matchresult.StatusPending,
	}
}

func newStubMatchRepository() *stubMatchRepository {
	return &stubMatchRepository{
		ageGroups: []competition.AgeGroup{
			{ID: "L13", Name: "U13 YPL1"},
			{ID: "L14", Name: "U14 YPL1"},
		},
		records: map[string][]matchresult.Result{
			"L13/results":  {scored("U13 YPL1", "R1", "Alpha FC U13", "Bravo SC U13", 3, 1)},
			"L14/results":  {scored("U14 YPL1", "R1", "Alpha FC U14", "Bravo SC U14", 1, 0)},
			"L13/fixtures": {pending("U13 YPL1", "R2", "Bravo SC U13", "Alpha FC U13")},
			"L14/fixtures": {pending("U14 YPL1", "R2", "Bravo SC U14", "Alpha FC U14")},
		},
	}
}

func newTestRouter(t *testing.T, matches *stubMatchRepository) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	competitions := memory.NewCompetitionRepository(memory.SeedCompetitions())
	namer := leaguestanding.DefaultClubNamer()
	feeds := usecase.NewMatchFeedService(competitions, matches, matches, 2, logger)

	handler := NewHandler(
		usecase.NewCompetitionService(competitions, feeds),
		feeds,
		usecase.NewLadderService(feeds, namer),
		usecase.NewMatchService(feeds, namer),
		resilience.NewCircuitBreaker(3, time.Second, 1),
		logger,
	)
	return NewRouter(handler, logger, []string{"*"})
}

func serve(t *testing.T, router http.Handler, method, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body), "body=%s", rec.Body.String())
	return rec, body
}

func TestHealthzReportsUpstreamBreaker(t *testing.T) {
	router := newTestRouter(t, newStubMatchRepository())

	rec, body := serve(t, router, http.MethodGet, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
	data := body["data"].(map[string]any)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "closed", data["upstream"].(map[string]any)["state"])
}

func TestListCompetitionsFiltersByGender(t *testing.T) {
	router := newTestRouter(t, newStubMatchRepository())

	rec, body := serve(t, router, http.MethodGet, "/v1/competitions?gender=girls")
	require.Equal(t, http.StatusOK, rec.Code)
	items := body["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, memory.CompetitionIDYGPL, items[0].(map[string]any)["id"])

	rec, _ = serve(t, router, http.MethodGet, "/v1/competitions?gender=mixed")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAgeGroups(t *testing.T) {
	router := newTestRouter(t, newStubMatchRepository())

	rec, body := serve(t, router, http.MethodGet, "/v1/competitions/"+memory.CompetitionIDYPL1+"/age-groups")

	require.Equal(t, http.StatusOK, rec.Code)
	items := body["data"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "U13 YPL1", items[0].(map[string]any)["name"])
}

func TestGetClubLadder(t *testing.T) {
	router := newTestRouter(t, newStubMatchRepository())

	rec, body := serve(t, router, http.MethodGet, "/v1/competitions/"+memory.CompetitionIDYPL1+"/club-ladder")

	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, []any{"U13 YPL1", "U14 YPL1"}, data["divisions"])

	rows := data["rows"].([]any)
	require.Len(t, rows, 2)
	first := rows[0].(map[string]any)
	assert.Equal(t, "Alpha FC", first["name"])
	assert.EqualValues(t, 1, first["position"])
	assert.EqualValues(t, 6, first["points"])
	assert.EqualValues(t, 3, first["goalDifference"])
	assert.Equal(t, "promotion", first["zone"])

	divisions := first["divisions"].([]any)
	require.Len(t, divisions, 2)
	assert.Equal(t, "U13 YPL1", divisions[0].(map[string]any)["division"])
	assert.EqualValues(t, 1, divisions[0].(map[string]any)["position"])

	second := rows[1].(map[string]any)
	assert.Equal(t, "Bravo SC", second["name"])
	assert.EqualValues(t, 0, second["points"])
}

func TestGetDivisionLadder(t *testing.T) {
	router := newTestRouter(t, newStubMatchRepository())

	rec, body := serve(t, router, http.MethodGet, "/v1/competitions/"+memory.CompetitionIDYPL1+"/ladders/L14")
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "U14 YPL1", data["ageGroup"].(map[string]any)["name"])
	standings := data["standings"].([]any)
	require.Len(t, standings, 2)
	assert.Equal(t, "Alpha FC U14", standings[0].(map[string]any)["name"])
	assert.EqualValues(t, 3, standings[0].(map[string]any)["points"])

	rec, _ = serve(t, router, http.MethodGet, "/v1/competitions/"+memory.CompetitionIDYPL1+"/ladders/U13%20YPL1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, router, http.MethodGet, "/v1/competitions/"+memory.CompetitionIDYPL1+"/ladders/L99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListDivisionLadders(t *testing.T) {
	router := newTestRouter(t, newStubMatchRepository())

	rec, body := serve(t, router, http.MethodGet, "/v1/competitions/"+memory.CompetitionIDYPL1+"/ladders")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["data"].([]any), 2)
}

func TestListFixturesAndResults(t *testing.T) {
	router := newTestRouter(t, newStubMatchRepository())
	base := "/v1/competitions/" + memory.CompetitionIDYPL1

	rec, body := serve(t, router, http.MethodGet, base+"/fixtures?round=roundrobin_2")
	require.Equal(t, http.StatusOK, rec.Code)
	rounds := body["data"].([]any)
	require.Len(t, rounds, 1)
	round := rounds[0].(map[string]any)
	assert.Equal(t, "Round 2", round["round"])
	assert.EqualValues(t, 2, round["number"])
	matchups := round["matchups"].([]any)
	require.Len(t, matchups, 1)
	assert.Equal(t, "Bravo SC vs Alpha FC", matchups[0].(map[string]any)["key"])
	assert.Len(t, matchups[0].(map[string]any)["matches"], 2)

	rec, body = serve(t, router, http.MethodGet, base+"/results?age_group=L13")
	require.Equal(t, http.StatusOK, rec.Code)
	rounds = body["data"].([]any)
	require.Len(t, rounds, 1)
	matches := rounds[0].(map[string]any)["matchups"].([]any)[0].(map[string]any)["matches"].([]any)
	require.Len(t, matches, 1)
	assert.EqualValues(t, 3, matches[0].(map[string]any)["homeScore"])

	rec, _ = serve(t, router, http.MethodGet, base+"/results?age_group=L99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRounds(t *testing.T) {
	router := newTestRouter(t, newStubMatchRepository())

	rec, body := serve(t, router, http.MethodGet, "/v1/competitions/"+memory.CompetitionIDYPL1+"/rounds")

	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Len(t, data["fixtures"], 1)
	assert.Len(t, data["results"], 1)
}

func TestRefreshCompetitionInvalidatesCache(t *testing.T) {
	matches := newStubMatchRepository()
	router := newTestRouter(t, matches)

	rec, body := serve(t, router, http.MethodPost, "/v1/competitions/"+memory.CompetitionIDYPL1+"/refresh")

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, true, body["data"].(map[string]any)["refreshed"])
	assert.Equal(t, []string{memory.CompetitionIDYPL1}, matches.invalidated)
}

func TestHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{name: "unknown competition", target: "/v1/competitions/unknown123/club-ladder", want: http.StatusNotFound},
		{name: "malformed competition id", target: "/v1/competitions/bad-id!/club-ladder", want: http.StatusBadRequest},
		{name: "upstream down", target: "/v1/competitions/" + memory.CompetitionIDYPL1 + "/club-ladder", err: errors.New("connection refused"), want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := newStubMatchRepository()
			matches.err = tt.err
			router := newTestRouter(t, matches)

			rec, body := serve(t, router, http.MethodGet, tt.target)

			assert.Equal(t, tt.want, rec.Code)
			errorObj := body["error"].(map[string]any)
			assert.EqualValues(t, tt.want, errorObj["code"])
		})
	}
}

func TestRequestIDEchoesValidHeader(t *testing.T) {
	router := newTestRouter(t, newStubMatchRepository())
	const requestID = "0b6c5d8e-3f7a-4c2b-9d1e-5a4f3b2c1d0e"

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, requestID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, requestID, rec.Header().Get(requestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(requestIDHeader))
	assert.Len(t, rec.Header().Get(requestIDHeader), 36)
}
