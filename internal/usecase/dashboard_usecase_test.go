package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/linkedin-autoapply/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	total         int64
	offset, limit int
	counts        map[model.ApplicationStatus]int64
}

func (r *stubReader) Latest(_ context.Context, offset, limit int) ([]model.Application, int64, error) {
	r.offset, r.limit = offset, limit
	return make([]model.Application, limit), r.total, nil
}

func (r *stubReader) CountByStatus(context.Context) (map[model.ApplicationStatus]int64, error) {
	return r.counts, nil
}

func TestDashboardListCapsAtMaxRecords(t *testing.T) {
	reader := &stubReader{total: 250}
	uc := NewDashboardUsecase(reader)

	apps, total, err := uc.List(context.Background(), 5, 22)
	require.NoError(t, err)
	assert.EqualValues(t, 100, total)
	assert.Equal(t, 88, reader.offset)
	assert.Equal(t, 12, reader.limit)
	assert.Len(t, apps, 12)

	apps, _, err = uc.List(context.Background(), 6, 20)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestDashboardListDefaults(t *testing.T) {
	reader := &stubReader{total: 3}
	uc := NewDashboardUsecase(reader)

	_, total, err := uc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Equal(t, 0, reader.offset)
	assert.Equal(t, 20, reader.limit)
}

func TestDashboardStats(t *testing.T) {
	uc := NewDashboardUsecase(&stubReader{counts: map[model.ApplicationStatus]int64{
		model.StatusApplied:               4,
		model.StatusFailedNoButton:        2,
		model.StatusFailedTooManySteps:    1,
		model.StatusSkippedAlreadyApplied: 2,
	}})

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 9, stats.Total)
	assert.EqualValues(t, 4, stats.Applied)
	assert.EqualValues(t, 5, stats.NotApplied)
	assert.EqualValues(t, 3, stats.Failed)
}
