package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/vpl-ladder/internal/domain/competition"
	"github.com/riskibarqy/vpl-ladder/internal/domain/matchresult"
	"github.com/riskibarqy/vpl-ladder/internal/platform/logging"
)

const defaultFeedWorkers = 4

// Feed is everything the upstream knows about one competition: its age-group
// leagues in upstream order plus the records of both match feeds.
type Feed struct {
	Competition competition.Competition
	AgeGroups   []competition.AgeGroup
	Results     []matchresult.Result
	Fixtures    []matchresult.Result
}

// Divisions returns the age-group names in feed order.
func (f Feed) Divisions() []string {
	out := make([]string, 0, len(f.AgeGroups))
	for _, group := range f.AgeGroups {
		out = append(out, group.Name)
	}
	return out
}

// AgeGroup finds an age group by name, falling back to its upstream id.
func (f Feed) AgeGroup(nameOrID string) (competition.AgeGroup, bool) {
	nameOrID = strings.TrimSpace(nameOrID)
	for _, group := range f.AgeGroups {
		if group.Name == nameOrID {
			return group, true
		}
	}
	for _, group := range f.AgeGroups {
		if group.ID == nameOrID {
			return group, true
		}
	}
	return competition.AgeGroup{}, false
}

type MatchFeedService struct {
	competitionRepo competition.Repository
	matchRepo       matchresult.Repository
	invalidator     matchresult.Invalidator
	maxWorkers      int
	newPool         func(size int) (*ants.Pool, error)
	logger          *logging.Logger
}

func NewMatchFeedService(
	competitionRepo competition.Repository,
	matchRepo matchresult.Repository,
	invalidator matchresult.Invalidator,
	maxWorkers int,
	logger *logging.Logger,
) *MatchFeedService {
	if maxWorkers < 1 {
		maxWorkers = defaultFeedWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchFeedService{
		competitionRepo: competitionRepo,
		matchRepo:       matchRepo,
		invalidator:     invalidator,
		maxWorkers:      maxWorkers,
		newPool:         func(size int) (*ants.Pool, error) { return ants.NewPool(size) },
		logger:          logger,
	}
}

// Competition resolves a configured competition or fails with ErrNotFound.
func (s *MatchFeedService) Competition(ctx context.Context, competitionID string) (competition.Competition, error) {
	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return competition.Competition{}, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}

	item, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}

	return item, nil
}

// Load fetches the age groups of a competition and then the results and
// fixtures of every age group concurrently. Records keep age-group order.
func (s *MatchFeedService) Load(ctx context.Context, competitionID string) (Feed, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchFeedService.Load", competitionAttr(competitionID))
	defer span.End()

	comp, err := s.Competition(ctx, competitionID)
	if err != nil {
		return Feed{}, recordSpanError(span, err)
	}

	groups, err := s.matchRepo.ListAgeGroups(ctx, comp.ID)
	if err != nil {
		return Feed{}, recordSpanError(span, dependencyError("list age groups", err))
	}

	feed := Feed{Competition: comp, AgeGroups: groups}
	if len(groups) == 0 {
		return feed, nil
	}

	type slot struct {
		results  []matchresult.Result
		fixtures []matchresult.Result
		err      error
	}
	slots := make([]slot, len(groups))

	workers := min(s.maxWorkers, len(groups))
	pool, err := s.newPool(workers)
	if err != nil {
		return Feed{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, group := range groups {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			var (
				feeds       conc.WaitGroup
				resultsErr  error
				fixturesErr error
			)
			feeds.Go(func() {
				slots[i].results, resultsErr = s.matchRepo.ListByAgeGroup(ctx, comp.ID, group.ID, matchresult.KindResults)
			})
			feeds.Go(func() {
				slots[i].fixtures, fixturesErr = s.matchRepo.ListByAgeGroup(ctx, comp.ID, group.ID, matchresult.KindFixtures)
			})
			feeds.Wait()

			switch {
			case resultsErr != nil:
				slots[i].err = fmt.Errorf("age group %s results: %w", group.Name, resultsErr)
			case fixturesErr != nil:
				slots[i].err = fmt.Errorf("age group %s fixtures: %w", group.Name, fixturesErr)
			}
		}); err != nil {
			wg.Done()
			wg.Wait()
			return Feed{}, recordSpanError(span, fmt.Errorf("submit age group fetch: %w", err))
		}
	}
	wg.Wait()

	for _, item := range slots {
		if item.err != nil {
			s.logger.WarnContext(ctx, "competition feed unavailable", "competition_id", comp.ID, "error", item.err)
			return Feed{}, recordSpanError(span, dependencyError("load match feed", item.err))
		}
		feed.Results = append(feed.Results, item.results...)
		feed.Fixtures = append(feed.Fixtures, item.fixtures...)
	}

	span.SetAttributes(
		attribute.Int("feed.age_groups", len(groups)),
		attribute.Int("feed.results", len(feed.Results)),
		attribute.Int("feed.fixtures", len(feed.Fixtures)),
	)
	s.logger.DebugContext(ctx, "competition feed loaded",
		"competition_id", comp.ID,
		"age_groups", len(groups),
		"results", len(feed.Results),
		"fixtures", len(feed.Fixtures),
	)

	return feed, nil
}

// Refresh drops cached upstream data for a competition so the next Load
// reads through to the provider.
func (s *MatchFeedService) Refresh(ctx context.Context, competitionID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchFeedService.Refresh", competitionAttr(competitionID))
	defer span.End()

	comp, err := s.Competition(ctx, competitionID)
	if err != nil {
		return err
	}
	if s.invalidator == nil {
		return nil
	}

	s.invalidator.Invalidate(ctx, comp.ID)
	s.logger.InfoContext(ctx, "competition feed invalidated", "competition_id", comp.ID)
	return nil
}
