package matchresult

import (
	"context"

	"github.com/riskibarqy/vpl-ladder/internal/domain/competition"
)

// Repository exposes the upstream competition feed as typed records.
type Repository interface {
	ListAgeGroups(ctx context.Context, competitionID string) ([]competition.AgeGroup, error)
	ListByAgeGroup(ctx context.Context, competitionID, ageGroupID string, kind Kind) ([]Result, error)
}

// Invalidator is implemented by repositories that keep upstream data around
// and can drop it for one competition.
type Invalidator interface {
	Invalidate(ctx context.Context, competitionID string)
}
