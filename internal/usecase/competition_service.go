package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/vpl-ladder/internal/domain/competition"
)

type CompetitionService struct {
	competitionRepo competition.Repository
	feeds           *MatchFeedService
}

func NewCompetitionService(competitionRepo competition.Repository, feeds *MatchFeedService) *CompetitionService {
	return &CompetitionService{
		competitionRepo: competitionRepo,
		feeds:           feeds,
	}
}

// List returns configured competitions, optionally narrowed to one gender.
func (s *CompetitionService) List(ctx context.Context, gender string) ([]competition.Competition, error) {
	gender = strings.ToLower(strings.TrimSpace(gender))
	switch gender {
	case "":
		items, err := s.competitionRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list competitions: %w", err)
		}
		return items, nil
	case competition.GenderBoys, competition.GenderGirls:
		items, err := s.competitionRepo.ListByGender(ctx, gender)
		if err != nil {
			return nil, fmt.Errorf("list competitions by gender: %w", err)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: gender must be %s or %s", ErrInvalidInput, competition.GenderBoys, competition.GenderGirls)
	}
}

// ListAgeGroups returns the age-group leagues the provider lists for a
// competition, without loading match data.
func (s *CompetitionService) ListAgeGroups(ctx context.Context, competitionID string) ([]competition.AgeGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.ListAgeGroups")
	defer span.End()

	comp, err := s.feeds.Competition(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	groups, err := s.feeds.matchRepo.ListAgeGroups(ctx, comp.ID)
	if err != nil {
		return nil, dependencyError("list age groups", err)
	}
	return groups, nil
}
