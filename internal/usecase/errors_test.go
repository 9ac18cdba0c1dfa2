package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDependencyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		unavailable bool
		target      error
	}{
		{name: "plain upstream error", err: errors.New("connection reset"), unavailable: true},
		{name: "already unavailable", err: fmt.Errorf("%w: 502", ErrDependencyUnavailable), unavailable: true},
		{name: "not found keeps class", err: fmt.Errorf("%w: league", ErrNotFound), target: ErrNotFound},
		{name: "deadline keeps class", err: context.DeadlineExceeded, target: context.DeadlineExceeded},
		{name: "cancel keeps class", err: context.Canceled, target: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := dependencyError("load", tt.err)
			assert.Equal(t, tt.unavailable, errors.Is(got, ErrDependencyUnavailable))
			assert.ErrorIs(t, got, tt.err)
			if tt.target != nil {
				assert.ErrorIs(t, got, tt.target)
			}
			assert.Contains(t, got.Error(), "load")
		})
	}
}

func TestRecordSpanErrorReturnsInput(t *testing.T) {
	t.Parallel()

	_, span := startUsecaseSpan(context.Background(), "usecase.test")
	defer span.End()

	err := errors.New("boom")
	assert.Same(t, err, recordSpanError(span, err))
	assert.NoError(t, recordSpanError(span, nil))
}
