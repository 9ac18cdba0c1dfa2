package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/vpl-ladder/internal/domain/competition"
	"github.com/riskibarqy/vpl-ladder/internal/domain/matchresult"
	competitionmock "github.com/riskibarqy/vpl-ladder/internal/mocks/domain/competition"
	matchresultmock "github.com/riskibarqy/vpl-ladder/internal/mocks/domain/matchresult"
	"github.com/riskibarqy/vpl-ladder/internal/platform/logging"
)

func TestMatchFeedService_Load_KeepsAgeGroupOrder(t *testing.T) {
	t.Parallel()

	f := newFeedFixture(t)
	f.expectFeed(
		map[string][]matchresult.Result{
			"L13": {result("U13 YPL1", "R1", "Alpha U13", "Beta U13", 1, 0)},
			"L14": {result("U14 YPL1", "R1", "Alpha U14", "Beta U14", 2, 2)},
		},
		map[string][]matchresult.Result{
			"L14": {fixture("U14 YPL1", "R2", "Beta U14", "Alpha U14")},
		},
	)

	feed, err := f.service.Load(context.Background(), " "+testCompetitionID+" ")
	require.NoError(t, err)
	assert.Equal(t, testCompetition, feed.Competition)
	assert.Equal(t, []string{"U13 YPL1", "U14 YPL1"}, feed.Divisions())
	require.Len(t, feed.Results, 2)
	assert.Equal(t, "U13 YPL1", feed.Results[0].LeagueName)
	assert.Equal(t, "U14 YPL1", feed.Results[1].LeagueName)
	require.Len(t, feed.Fixtures, 1)
}

func TestMatchFeedService_Load_CompetitionNotFound(t *testing.T) {
	t.Parallel()

	f := newFeedFixture(t)
	f.competitions.
		On("GetByID", mock.Anything, "missing").
		Return(competition.Competition{}, false, nil).
		Once()

	_, err := f.service.Load(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMatchFeedService_Load_RequiresCompetitionID(t *testing.T) {
	t.Parallel()

	f := newFeedFixture(t)
	_, err := f.service.Load(context.Background(), "  ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatchFeedService_Load_WrapsFetchFailure(t *testing.T) {
	t.Parallel()

	f := newFeedFixture(t)
	f.competitions.
		On("GetByID", mock.Anything, testCompetitionID).
		Return(testCompetition, true, nil).
		Once()
	f.matches.
		On("ListAgeGroups", mock.Anything, testCompetitionID).
		Return(testAgeGroups, nil).
		Once()
	f.matches.
		On("ListByAgeGroup", mock.Anything, testCompetitionID, mock.Anything, matchresult.KindResults).
		Return(nil, errors.New("connection reset")).
		Times(2)
	f.matches.
		On("ListByAgeGroup", mock.Anything, testCompetitionID, mock.Anything, matchresult.KindFixtures).
		Return([]matchresult.Result{}, nil).
		Times(2)

	_, err := f.service.Load(context.Background(), testCompetitionID)
	require.ErrorIs(t, err, ErrDependencyUnavailable)
	assert.Contains(t, err.Error(), "U13 YPL1")
}

func TestMatchFeedService_Load_AgeGroupListFailure(t *testing.T) {
	t.Parallel()

	f := newFeedFixture(t)
	f.competitions.
		On("GetByID", mock.Anything, testCompetitionID).
		Return(testCompetition, true, nil).
		Once()
	f.matches.
		On("ListAgeGroups", mock.Anything, testCompetitionID).
		Return(nil, errors.New("timeout")).
		Once()

	_, err := f.service.Load(context.Background(), testCompetitionID)
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}

func TestMatchFeedService_Load_NoAgeGroups(t *testing.T) {
	t.Parallel()

	f := newFeedFixture(t)
	f.competitions.
		On("GetByID", mock.Anything, testCompetitionID).
		Return(testCompetition, true, nil).
		Once()
	f.matches.
		On("ListAgeGroups", mock.Anything, testCompetitionID).
		Return([]competition.AgeGroup{}, nil).
		Once()

	feed, err := f.service.Load(context.Background(), testCompetitionID)
	require.NoError(t, err)
	assert.Empty(t, feed.AgeGroups)
	assert.Empty(t, feed.Results)
}

func TestMatchFeedService_Refresh(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	competitions := competitionmock.NewRepository(t)
	matches := matchresultmock.NewRepository(t)
	invalidator := matchresultmock.NewInvalidator(t)
	service := NewMatchFeedService(competitions, matches, invalidator, 1, logging.NewNop())

	competitions.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), testCompetitionID).
		Return(testCompetition, true, nil).
		Once()
	invalidator.
		On("Invalidate", mock.Anything, testCompetitionID).
		Return().
		Once()

	require.NoError(t, service.Refresh(ctx, testCompetitionID))
}

func TestMatchFeedService_RefreshWithoutInvalidator(t *testing.T) {
	t.Parallel()

	f := newFeedFixture(t)
	f.competitions.
		On("GetByID", mock.Anything, testCompetitionID).
		Return(testCompetition, true, nil).
		Once()

	require.NoError(t, f.service.Refresh(context.Background(), testCompetitionID))
}

func TestFeed_AgeGroupMatchesNameBeforeID(t *testing.T) {
	t.Parallel()

	feed := Feed{AgeGroups: []competition.AgeGroup{
		{ID: "U14 YPL1", Name: "odd"},
		{ID: "L14", Name: "U14 YPL1"},
	}}

	group, ok := feed.AgeGroup("U14 YPL1")
	require.True(t, ok)
	assert.Equal(t, "L14", group.ID)

	group, ok = feed.AgeGroup("L14")
	require.True(t, ok)
	assert.Equal(t, "U14 YPL1", group.Name)

	_, ok = feed.AgeGroup("U18 YPL1")
	assert.False(t, ok)
}
