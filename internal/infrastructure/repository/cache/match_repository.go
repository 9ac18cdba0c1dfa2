package cache

import (
	"context"
	"slices"

	"github.com/riskibarqy/vpl-ladder/internal/domain/competition"
	"github.com/riskibarqy/vpl-ladder/internal/domain/matchresult"
	basecache "github.com/riskibarqy/vpl-ladder/internal/platform/cache"
)

// MatchRepository keeps upstream age groups and match records for a TTL.
// Keys are prefixed by competition so one competition can be dropped at once.
type MatchRepository struct {
	next      matchresult.Repository
	ageGroups *basecache.Store[[]competition.AgeGroup]
	matches   *basecache.Store[[]matchresult.Result]
}

var (
	_ matchresult.Repository  = (*MatchRepository)(nil)
	_ matchresult.Invalidator = (*MatchRepository)(nil)
)

func NewMatchRepository(
	next matchresult.Repository,
	ageGroups *basecache.Store[[]competition.AgeGroup],
	matches *basecache.Store[[]matchresult.Result],
) *MatchRepository {
	return &MatchRepository{
		next:      next,
		ageGroups: ageGroups,
		matches:   matches,
	}
}

func (r *MatchRepository) ListAgeGroups(ctx context.Context, competitionID string) ([]competition.AgeGroup, error) {
	items, err := r.ageGroups.GetOrLoad(ctx, competitionKey(competitionID), func(ctx context.Context) ([]competition.AgeGroup, error) {
		items, err := r.next.ListAgeGroups(ctx, competitionID)
		if err != nil {
			return nil, err
		}
		return slices.Clone(items), nil
	})
	if err != nil {
		return nil, err
	}

	return slices.Clone(items), nil
}

func (r *MatchRepository) ListByAgeGroup(ctx context.Context, competitionID, ageGroupID string, kind matchresult.Kind) ([]matchresult.Result, error) {
	key := competitionKey(competitionID) + string(kind) + ":" + ageGroupID
	items, err := r.matches.GetOrLoad(ctx, key, func(ctx context.Context) ([]matchresult.Result, error) {
		items, err := r.next.ListByAgeGroup(ctx, competitionID, ageGroupID, kind)
		if err != nil {
			return nil, err
		}
		return slices.Clone(items), nil
	})
	if err != nil {
		return nil, err
	}

	return slices.Clone(items), nil
}

func (r *MatchRepository) Invalidate(ctx context.Context, competitionID string) {
	prefix := competitionKey(competitionID)
	r.ageGroups.DeletePrefix(ctx, prefix)
	r.matches.DeletePrefix(ctx, prefix)
}

func competitionKey(competitionID string) string {
	return "competition:" + competitionID + ":"
}
