package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/vpl-ladder/internal/domain/competition"
	"github.com/riskibarqy/vpl-ladder/internal/domain/leaguestanding"
)

// DivisionLadder is the ranked table of one age-group league.
type DivisionLadder struct {
	AgeGroup  competition.AgeGroup
	Standings []leaguestanding.TeamStanding
}

type ClubLadderRow struct {
	Position int
	Zone     leaguestanding.Zone
	leaguestanding.ClubStanding
}

// ClubLadder is the combined club table of a competition. Divisions lists
// the age groups that make up each row's breakdown, in feed order.
type ClubLadder struct {
	Competition competition.Competition
	Divisions   []string
	Rows        []ClubLadderRow
}

type LadderService struct {
	feeds *MatchFeedService
	namer leaguestanding.ClubNamer
}

func NewLadderService(feeds *MatchFeedService, namer leaguestanding.ClubNamer) *LadderService {
	return &LadderService{
		feeds: feeds,
		namer: namer,
	}
}

func (s *LadderService) DivisionLadder(ctx context.Context, competitionID, ageGroup string) (DivisionLadder, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LadderService.DivisionLadder")
	defer span.End()

	ageGroup = strings.TrimSpace(ageGroup)
	if ageGroup == "" {
		return DivisionLadder{}, fmt.Errorf("%w: age group is required", ErrInvalidInput)
	}

	feed, err := s.feeds.Load(ctx, competitionID)
	if err != nil {
		return DivisionLadder{}, err
	}

	group, ok := feed.AgeGroup(ageGroup)
	if !ok {
		return DivisionLadder{}, fmt.Errorf("%w: age group=%s competition=%s", ErrNotFound, ageGroup, feed.Competition.ID)
	}

	return DivisionLadder{
		AgeGroup:  group,
		Standings: leaguestanding.Calculate(feed.Results, group.Name),
	}, nil
}

func (s *LadderService) DivisionLadders(ctx context.Context, competitionID string) ([]DivisionLadder, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LadderService.DivisionLadders")
	defer span.End()

	feed, err := s.feeds.Load(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	out := make([]DivisionLadder, 0, len(feed.AgeGroups))
	for _, group := range feed.AgeGroups {
		out = append(out, DivisionLadder{
			AgeGroup:  group,
			Standings: leaguestanding.Calculate(feed.Results, group.Name),
		})
	}

	return out, nil
}

func (s *LadderService) ClubLadder(ctx context.Context, competitionID string) (ClubLadder, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LadderService.ClubLadder")
	defer span.End()

	feed, err := s.feeds.Load(ctx, competitionID)
	if err != nil {
		return ClubLadder{}, err
	}

	divisions := feed.Divisions()
	clubs := leaguestanding.Aggregate(feed.Results, divisions, s.namer)
	rows := make([]ClubLadderRow, 0, len(clubs))
	for i, club := range clubs {
		position := i + 1
		rows = append(rows, ClubLadderRow{
			Position:     position,
			Zone:         leaguestanding.ZoneFor(position, len(clubs), feed.Competition.PromotionSlots, feed.Competition.RelegationSlots),
			ClubStanding: club,
		})
	}

	return ClubLadder{
		Competition: feed.Competition,
		Divisions:   divisions,
		Rows:        rows,
	}, nil
}
