package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/vpl-ladder/internal/domain/leaguestanding"
	"github.com/riskibarqy/vpl-ladder/internal/domain/matchresult"
)

// MatchQuery filters match listings. Empty filters match everything; Round
// accepts "R3", "r3" or "roundrobin_3".
type MatchQuery struct {
	CompetitionID string
	AgeGroup      string
	Round         string
}

// Matchup groups the age-group games two clubs play against each other in
// one round.
type Matchup struct {
	Key      string
	HomeClub string
	AwayClub string
	Matches  []matchresult.Result
}

type RoundMatches struct {
	Round    string
	Number   int
	Matchups []Matchup
}

type RoundOption struct {
	Code   string
	Label  string
	Number int
}

// Rounds lists the rounds that still have pending fixtures and the rounds
// that already have complete results.
type Rounds struct {
	Fixtures []RoundOption
	Results  []RoundOption
}

type MatchService struct {
	feeds *MatchFeedService
	namer leaguestanding.ClubNamer
}

func NewMatchService(feeds *MatchFeedService, namer leaguestanding.ClubNamer) *MatchService {
	return &MatchService{
		feeds: feeds,
		namer: namer,
	}
}

// ListFixtures returns pending matches grouped by round, earliest round first.
func (s *MatchService) ListFixtures(ctx context.Context, query MatchQuery) ([]RoundMatches, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListFixtures")
	defer span.End()

	feed, err := s.feeds.Load(ctx, query.CompetitionID)
	if err != nil {
		return nil, err
	}

	matches, err := filterMatches(feed, feed.Fixtures, matchresult.StatusPending, query)
	if err != nil {
		return nil, err
	}
	return s.groupByRound(matches, false), nil
}

// ListResults returns complete matches grouped by round, latest round first.
func (s *MatchService) ListResults(ctx context.Context, query MatchQuery) ([]RoundMatches, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListResults")
	defer span.End()

	feed, err := s.feeds.Load(ctx, query.CompetitionID)
	if err != nil {
		return nil, err
	}

	matches, err := filterMatches(feed, feed.Results, matchresult.StatusComplete, query)
	if err != nil {
		return nil, err
	}
	return s.groupByRound(matches, true), nil
}

func (s *MatchService) ListRounds(ctx context.Context, competitionID string) (Rounds, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListRounds")
	defer span.End()

	feed, err := s.feeds.Load(ctx, competitionID)
	if err != nil {
		return Rounds{}, err
	}

	return Rounds{
		Fixtures: roundOptions(feed.Fixtures, matchresult.StatusPending),
		Results:  roundOptions(feed.Results, matchresult.StatusComplete),
	}, nil
}

func filterMatches(feed Feed, records []matchresult.Result, status matchresult.Status, query MatchQuery) ([]matchresult.Result, error) {
	league := ""
	if ageGroup := strings.TrimSpace(query.AgeGroup); ageGroup != "" {
		group, ok := feed.AgeGroup(ageGroup)
		if !ok {
			return nil, fmt.Errorf("%w: age group=%s competition=%s", ErrNotFound, ageGroup, feed.Competition.ID)
		}
		league = group.Name
	}
	round := matchresult.NormalizeRound(query.Round)

	out := make([]matchresult.Result, 0, len(records))
	for _, record := range records {
		if record.Status != status {
			continue
		}
		if league != "" && record.LeagueName != league {
			continue
		}
		if round != "" && record.Round != round {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (s *MatchService) groupByRound(matches []matchresult.Result, latestFirst bool) []RoundMatches {
	byRound := make(map[string]map[string]*Matchup)
	rounds := make([]RoundMatches, 0)
	for _, match := range matches {
		label := match.FullRound
		matchups, ok := byRound[label]
		if !ok {
			matchups = make(map[string]*Matchup)
			byRound[label] = matchups
			rounds = append(rounds, RoundMatches{Round: label, Number: matchresult.RoundNumber(label)})
		}

		home := s.namer.ClubName(match.HomeTeamName)
		away := s.namer.ClubName(match.AwayTeamName)
		key := home + " vs " + away
		matchup, ok := matchups[key]
		if !ok {
			matchup = &Matchup{Key: key, HomeClub: home, AwayClub: away}
			matchups[key] = matchup
		}
		matchup.Matches = append(matchup.Matches, match)
	}

	for i := range rounds {
		matchups := byRound[rounds[i].Round]
		rounds[i].Matchups = make([]Matchup, 0, len(matchups))
		for _, matchup := range matchups {
			rounds[i].Matchups = append(rounds[i].Matchups, *matchup)
		}
		slices.SortFunc(rounds[i].Matchups, func(a, b Matchup) int {
			return strings.Compare(a.Key, b.Key)
		})
	}

	slices.SortStableFunc(rounds, func(a, b RoundMatches) int {
		if latestFirst {
			return cmp.Compare(b.Number, a.Number)
		}
		return cmp.Compare(a.Number, b.Number)
	})
	return rounds
}

func roundOptions(records []matchresult.Result, status matchresult.Status) []RoundOption {
	seen := make(map[string]struct{})
	out := make([]RoundOption, 0)
	for _, record := range records {
		if record.Status != status || record.Round == "" {
			continue
		}
		if _, ok := seen[record.Round]; ok {
			continue
		}
		seen[record.Round] = struct{}{}

		label := record.FullRound
		if label == "" {
			label = record.Round
		}
		out = append(out, RoundOption{
			Code:   record.Round,
			Label:  label,
			Number: matchresult.RoundNumber(record.Round),
		})
	}

	slices.SortStableFunc(out, func(a, b RoundOption) int {
		return cmp.Compare(a.Number, b.Number)
	})
	return out
}
