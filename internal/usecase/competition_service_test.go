package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/vpl-ladder/internal/domain/competition"
)

func TestCompetitionService_List(t *testing.T) {
	t.Parallel()

	f := newFeedFixture(t)
	service := NewCompetitionService(f.competitions, f.service)

	f.competitions.
		On("ListByGender", mock.Anything, competition.GenderBoys).
		Return([]competition.Competition{testCompetition}, nil).
		Once()
	f.competitions.
		On("List", mock.Anything).
		Return([]competition.Competition{testCompetition}, nil).
		Once()

	boys, err := service.List(context.Background(), " Boys ")
	require.NoError(t, err)
	assert.Len(t, boys, 1)

	all, err := service.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = service.List(context.Background(), "mixed")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompetitionService_ListAgeGroups(t *testing.T) {
	t.Parallel()

	f := newFeedFixture(t)
	service := NewCompetitionService(f.competitions, f.service)

	f.competitions.
		On("GetByID", mock.Anything, testCompetitionID).
		Return(testCompetition, true, nil).
		Once()
	f.matches.
		On("ListAgeGroups", mock.Anything, testCompetitionID).
		Return(testAgeGroups, nil).
		Once()

	got, err := service.ListAgeGroups(context.Background(), testCompetitionID)
	require.NoError(t, err)
	assert.Equal(t, testAgeGroups, got)
}
