package dribl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/vpl-ladder/internal/domain/matchresult"
	"github.com/riskibarqy/vpl-ladder/internal/platform/logging"
	"github.com/riskibarqy/vpl-ladder/internal/platform/resilience"
	"github.com/riskibarqy/vpl-ladder/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate ...func(*ClientConfig)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		Logger:     logging.NewNop(),
		MaxPages:   5,
	}
	for _, fn := range mutate {
		fn(&cfg)
	}
	return NewClient(cfg)
}

func TestListAgeGroups(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/list/leagues", r.URL.Path)
		assert.Equal(t, "bgdMX6MDKE", r.URL.Query().Get("competition"))
		assert.Equal(t, defaultSeason, r.URL.Query().Get("season"))
		assert.Equal(t, defaultTenant, r.URL.Query().Get("tenant"))
		_, _ = w.Write([]byte(`{"data":[
			{"id":"6lNb5eGymx","name":"U13 YPL1"},
			{"id":42,"attributes":{"name":"U14 YPL1"}},
			{"id":"","name":"broken"}
		]}`))
	})

	groups, err := client.ListAgeGroups(context.Background(), "bgdMX6MDKE")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "6lNb5eGymx", groups[0].ID)
	assert.Equal(t, "U13 YPL1", groups[0].Name)
	assert.Equal(t, "42", groups[1].ID)
	assert.Equal(t, "U14 YPL1", groups[1].Name)
}

func TestListByAgeGroup_FollowsCursor(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/results", r.URL.Path)
		assert.Equal(t, "L1", r.URL.Query().Get("league"))
		assert.Equal(t, defaultTimezone, r.URL.Query().Get("timezone"))
		assert.Equal(t, defaultDateRange, r.URL.Query().Get("date_range"))

		switch r.URL.Query().Get("cursor") {
		case "":
			_, _ = w.Write([]byte(`{"data":[{"id":"m1","attributes":{
				"league_name":"U13 YPL1","round":"R1","full_round":"Round 1",
				"home_team_name":"Alpha FC U13","away_team_name":"Beta SC U13",
				"home_score":"2","away_score":1,"status":"complete",
				"date":"2025-04-05T09:00:00+10:00","ground_name":"Park","field_name":"Field 1"
			}}],"meta":{"next_cursor":"c2"}}`))
		case "c2":
			_, _ = w.Write([]byte(`{"data":[
				{"id":"m2","attributes":{"league_name":"U13 YPL1","round":"roundrobin_2","home_team_name":"Gamma U13","away_team_name":"Alpha FC U13","home_score":null,"away_score":null,"status":"Pending","date":"2025-04-12 09:00:00"}},
				{"id":"m3","attributes":{"league_name":"U13 YPL1","home_team_name":"","away_team_name":"Beta SC U13"}}
			],"meta":{"next_cursor":null}}`))
		default:
			t.Errorf("unexpected cursor %q", r.URL.Query().Get("cursor"))
		}
	})

	results, err := client.ListByAgeGroup(context.Background(), "bgdMX6MDKE", "L1", matchresult.KindResults)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.EqualValues(t, 2, calls.Load())

	first := results[0]
	assert.Equal(t, "m1", first.ID)
	assert.Equal(t, "bgdMX6MDKE", first.CompetitionID)
	assert.Equal(t, "L1", first.AgeGroupID)
	assert.Equal(t, matchresult.StatusComplete, first.Status)
	require.NotNil(t, first.HomeScore)
	require.NotNil(t, first.AwayScore)
	assert.Equal(t, 2, *first.HomeScore)
	assert.Equal(t, 1, *first.AwayScore)
	assert.Equal(t, "Field 1", first.FieldName)
	assert.True(t, first.KickoffAt.Equal(time.Date(2025, 4, 4, 23, 0, 0, 0, time.UTC)))

	second := results[1]
	assert.Equal(t, "R2", second.Round)
	assert.Equal(t, matchresult.StatusPending, second.Status)
	assert.Nil(t, second.HomeScore)
	assert.Nil(t, second.AwayScore)
	assert.False(t, second.KickoffAt.IsZero())
}

func TestListByAgeGroup_StopsOnRepeatedCursor(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"data":[],"meta":{"next_cursor":"same"}}`))
	})

	results, err := client.ListByAgeGroup(context.Background(), "C", "L", matchresult.KindFixtures)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.EqualValues(t, 2, calls.Load())
}

func TestListByAgeGroup_StopsAtPageLimit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		_, _ = w.Write([]byte(`{"data":[],"meta":{"next_cursor":"c` + string(rune('0'+n)) + `"}}`))
	}, func(cfg *ClientConfig) { cfg.MaxPages = 3 })

	_, err := client.ListByAgeGroup(context.Background(), "C", "L", matchresult.KindFixtures)
	require.NoError(t, err)
	assert.EqualValues(t, 3, calls.Load())
}

func TestListByAgeGroup_RejectsUnknownKind(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})

	_, err := client.ListByAgeGroup(context.Background(), "C", "L", matchresult.Kind("ladders"))
	require.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestListByAgeGroup_UpstreamFailureIsDependencyUnavailable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream exploded`))
	})

	_, err := client.ListByAgeGroup(context.Background(), "C", "L", matchresult.KindResults)
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrDependencyUnavailable))
}

func TestListAgeGroups_MalformedPayloadIsDependencyUnavailable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":`))
	})

	_, err := client.ListAgeGroups(context.Background(), "C")
	require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
}

func TestCircuitBreakerOpensOnTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, func(cfg *ClientConfig) {
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		}
	})

	for i := 0; i < 3; i++ {
		_, err := client.ListAgeGroups(context.Background(), "C")
		require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
	}
	assert.EqualValues(t, 2, calls.Load())
	assert.Equal(t, resilience.CircuitStateOpen, client.Breaker().State())
}

func TestCircuitBreakerIgnoresClientErrors(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, func(cfg *ClientConfig) {
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1}
	})

	for i := 0; i < 2; i++ {
		_, err := client.ListAgeGroups(context.Background(), "C")
		require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
	}
	assert.Equal(t, resilience.CircuitStateClosed, client.Breaker().State())
}

func TestFlexScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want *int
	}{
		{raw: `3`, want: intPtr(3)},
		{raw: `"4"`, want: intPtr(4)},
		{raw: `2.0`, want: intPtr(2)},
		{raw: `null`, want: nil},
		{raw: `""`, want: nil},
		{raw: `"n/a"`, want: nil},
		{raw: `1.5`, want: nil},
	}

	for _, tt := range tests {
		var got flexScore
		require.NoError(t, got.UnmarshalJSON([]byte(tt.raw)), tt.raw)
		assert.Equal(t, tt.want, got.Value, tt.raw)
	}
}

func intPtr(v int) *int {
	return &v
}
