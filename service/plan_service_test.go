package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"debt-planner/domain"
	"debt-planner/repository"
	mock_repository "debt-planner/repository/mocks"
)

func TestPlanService_BuildSchedule_WithoutCache(t *testing.T) {
	svc := NewPlanService(nil, zap.NewNop())

	result, err := svc.BuildSchedule(context.Background(),
		[]domain.Debt{debt("a", "500", "12", "25")},
		settingsFor(domain.Avalanche, "50"),
	)

	require.NoError(t, err)
	assert.Equal(t, 7, result.Months)
}

func TestPlanService_BuildSchedule_StoresAndReusesResult(t *testing.T) {
	store := repository.NewMemoryStore()
	cache := repository.NewScheduleCache(store)
	svc := NewPlanService(cache, zap.NewNop())

	debts := []domain.Debt{debt("a", "500", "12", "25")}
	settings := settingsFor(domain.Avalanche, "50")

	first, err := svc.BuildSchedule(context.Background(), debts, settings)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	// poison the entry so a hit is observable
	key, err := cache.Key(debts, settings)
	require.NoError(t, err)
	fake := first
	fake.Months = 99
	require.NoError(t, cache.Set(context.Background(), key, fake))

	second, err := svc.BuildSchedule(context.Background(), debts, settings)
	require.NoError(t, err)
	assert.Equal(t, 99, second.Months)
	assertMoney(t, "20.05", second.TotalInterest)
	require.NotNil(t, second.PayoffMonth)
	assert.Equal(t, "2024-07", second.PayoffMonth.String())
}

func TestPlanService_BuildSchedule_CacheFailuresAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_repository.NewMockKVStore(ctrl)
	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", false, errors.New("connection refused"))
	store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	svc := NewPlanService(repository.NewScheduleCache(store), zap.NewNop())

	result, err := svc.BuildSchedule(context.Background(),
		[]domain.Debt{debt("a", "500", "12", "25")},
		settingsFor(domain.Avalanche, "50"),
	)

	require.NoError(t, err)
	assert.Equal(t, 7, result.Months)
}

func TestPlanService_BuildSchedule_CorruptEntryIsAMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_repository.NewMockKVStore(ctrl)
	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return("{not json", true, nil)
	store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	svc := NewPlanService(repository.NewScheduleCache(store), zap.NewNop())

	result, err := svc.BuildSchedule(context.Background(),
		[]domain.Debt{debt("a", "500", "12", "25")},
		settingsFor(domain.Avalanche, "50"),
	)

	require.NoError(t, err)
	assert.Equal(t, 7, result.Months)
}

func TestPlanService_BuildSchedule_CanceledContext(t *testing.T) {
	svc := NewPlanService(nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.BuildSchedule(ctx, []domain.Debt{debt("a", "500", "12", "25")}, settingsFor(domain.Avalanche, "50"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlanService_CompareStrategies(t *testing.T) {
	svc := NewPlanService(nil, zap.NewNop())

	comparison, err := svc.CompareStrategies(context.Background(),
		[]domain.Debt{
			debt("x", "1000", "20", "20"),
			debt("y", "100", "5", "10"),
		},
		settingsFor(domain.Snowball, "30"),
	)
	require.NoError(t, err)

	assert.Equal(t, domain.Avalanche, comparison.Avalanche.Strategy)
	assert.Equal(t, domain.Snowball, comparison.Snowball.Strategy)
	assert.Equal(t, domain.Avalanche, comparison.Recommended)
	assertMoney(t, "229.00", comparison.Avalanche.TotalInterest)
	assertMoney(t, "262.45", comparison.Snowball.TotalInterest)
	assertMoney(t, "33.45", comparison.InterestSaved)
	assert.Equal(t, 2, comparison.MonthsSaved)
}

func TestPlanService_CompareStrategies_TieRecommendsSnowball(t *testing.T) {
	svc := NewPlanService(nil, zap.NewNop())

	comparison, err := svc.CompareStrategies(context.Background(),
		[]domain.Debt{debt("a", "500", "12", "25")},
		settingsFor(domain.Avalanche, "50"),
	)
	require.NoError(t, err)

	assert.Equal(t, domain.Snowball, comparison.Recommended)
	assertMoney(t, "0.00", comparison.InterestSaved)
	assert.Zero(t, comparison.MonthsSaved)
}
