package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/vpl-ladder/internal/domain/competition"
)

type CompetitionRepository struct {
	mu     sync.RWMutex
	items  map[string]competition.Competition
	orders []string
}

func NewCompetitionRepository(competitions []competition.Competition) *CompetitionRepository {
	items := make(map[string]competition.Competition, len(competitions))
	orders := make([]string, 0, len(competitions))

	for _, c := range competitions {
		if _, exists := items[c.ID]; !exists {
			orders = append(orders, c.ID)
		}
		items[c.ID] = c
	}

	return &CompetitionRepository{
		items:  items,
		orders: orders,
	}
}

func (r *CompetitionRepository) List(_ context.Context) ([]competition.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]competition.Competition, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *CompetitionRepository) ListByGender(_ context.Context, gender string) ([]competition.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]competition.Competition, 0, len(r.orders))
	for _, id := range r.orders {
		if item := r.items[id]; item.Gender == gender {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *CompetitionRepository) GetByID(_ context.Context, competitionID string) (competition.Competition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[competitionID]
	return item, ok, nil
}
