package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/vpl-ladder/internal/domain/competition"
	"github.com/riskibarqy/vpl-ladder/internal/domain/matchresult"
	competitionmock "github.com/riskibarqy/vpl-ladder/internal/mocks/domain/competition"
	matchresultmock "github.com/riskibarqy/vpl-ladder/internal/mocks/domain/matchresult"
	"github.com/riskibarqy/vpl-ladder/internal/platform/logging"
)

const testCompetitionID = "bgdMX6MDKE"

var testCompetition = competition.Competition{
	ID:              testCompetitionID,
	Name:            "YPL1",
	FullName:        "Youth Premier League 1",
	Gender:          competition.GenderBoys,
	PromotionSlots:  2,
	RelegationSlots: 2,
}

var testAgeGroups = []competition.AgeGroup{
	{ID: "L13", Name: "U13 YPL1"},
	{ID: "L14", Name: "U14 YPL1"},
}

type feedFixture struct {
	competitions *competitionmock.Repository
	matches      *matchresultmock.Repository
	service      *MatchFeedService
}

func newFeedFixture(t *testing.T) feedFixture {
	t.Helper()

	competitions := competitionmock.NewRepository(t)
	matches := matchresultmock.NewRepository(t)
	return feedFixture{
		competitions: competitions,
		matches:      matches,
		service:      NewMatchFeedService(competitions, matches, nil, 2, logging.NewNop()),
	}
}

// expectFeed stubs one full load of testCompetition with the given records
// per age-group id.
func (f feedFixture) expectFeed(results, fixtures map[string][]matchresult.Result) {
	f.competitions.
		On("GetByID", mock.Anything, testCompetitionID).
		Return(testCompetition, true, nil).
		Once()
	f.matches.
		On("ListAgeGroups", mock.Anything, testCompetitionID).
		Return(testAgeGroups, nil).
		Once()
	for _, group := range testAgeGroups {
		f.matches.
			On("ListByAgeGroup", mock.Anything, testCompetitionID, group.ID, matchresult.KindResults).
			Return(results[group.ID], nil).
			Once()
		f.matches.
			On("ListByAgeGroup", mock.Anything, testCompetitionID, group.ID, matchresult.KindFixtures).
			Return(fixtures[group.ID], nil).
			Once()
	}
}

func result(league, round, home, away string, homeScore, awayScore int) matchresult.Result {
	return matchresult.Result{
		LeagueName:   league,
		Round:        matchresult.NormalizeRound(round),
		FullRound:    "Round " + round[1:],
		HomeTeamName: home,
		AwayTeamName: away,
		HomeScore:    &homeScore,
		AwayScore:    &awayScore,
		Status:       matchresult.StatusComplete,
		KickoffAt:    time.Date(2025, 4, 5, 9, 0, 0, 0, time.UTC),
	}
}

func fixture(league, round, home, away string) matchresult.Result {
	return matchresult.Result{
		LeagueName:   league,
		Round:        matchresult.NormalizeRound(round),
		FullRound:    "Round " + round[1:],
		HomeTeamName: home,
		AwayTeamName: away,
		Status:       matchresult.StatusPending,
	}
}
