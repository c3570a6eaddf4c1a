package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"debt-planner/domain"
	"debt-planner/repository"
	mock_repository "debt-planner/repository/mocks"
)

func newTestStateService(store repository.KVStore) *StateService {
	repo := repository.NewStateRepository(store, StateKey, ProfileKey)
	return NewStateService(repo, zap.NewNop(), func() time.Time { return fixedNow })
}

func ptr[T any](v T) *T {
	return &v
}

func TestStateService_State_DefaultsWhenEmpty(t *testing.T) {
	svc := newTestStateService(repository.NewMemoryStore())

	state, err := svc.State(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.AppID, state.Meta.AppID)
	assert.Equal(t, domain.Avalanche, state.Settings.Strategy)
	assertMoney(t, "50.00", state.Settings.ExtraMonthly)
	assert.Equal(t, "2025-03", state.Settings.StartMonth.String())
	assert.Equal(t, domain.DefaultHorizonMonths, state.Settings.HorizonMonths)
	assert.Equal(t, DefaultCurrency, state.Settings.Currency)
	require.Len(t, state.Debts, 1)
	assertMoney(t, "500.00", state.Debts[0].Balance)
	assertMoney(t, "25.00", state.Debts[0].MinPayment)
	assert.Equal(t, "12", state.Debts[0].APR.String())
}

func TestStateService_State_DefaultsWhenMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":         `{"settings":`,
		"debts not array":  `{"settings":{},"debts":{}}`,
		"missing settings": `{"debts":[]}`,
		"apr out of range": `{"settings":{"strategy":"avalanche","extraMonthly":"0","startMonth":"2024-01","horizonMonths":240},"debts":[{"id":"a","balance":"100","apr":"1e20000","minPayment":"10"}]}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store := repository.NewMemoryStore()
			require.NoError(t, store.Set(context.Background(), StateKey, raw))
			svc := newTestStateService(store)

			state, err := svc.State(context.Background())
			require.NoError(t, err)
			assert.Len(t, state.Debts, 1)
			assert.Equal(t, domain.Avalanche, state.Settings.Strategy)
		})
	}
}

func TestStateService_State_StoreErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_repository.NewMockKVStore(ctrl)
	store.EXPECT().Get(gomock.Any(), StateKey).Return("", false, errors.New("i/o timeout"))

	_, err := newTestStateService(store).State(context.Background())
	assert.Error(t, err)
}

func TestStateService_ReplaceState(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := newTestStateService(store)

	saved, err := svc.ReplaceState(context.Background(), domain.PlanInput{
		Debts: []domain.DebtInput{
			{ID: "visa", Name: "Visa", Balance: "1200", APR: "21", MinPayment: "40", DueDay: "15"},
		},
		Settings: domain.SettingsInput{Strategy: "snowball", ExtraMonthly: "100", StartMonth: "2025-06"},
	})
	require.NoError(t, err)
	assert.True(t, fixedNow.Equal(saved.Meta.UpdatedAt))

	loaded, err := svc.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Snowball, loaded.Settings.Strategy)
	assert.Equal(t, "2025-06", loaded.Settings.StartMonth.String())
	require.Len(t, loaded.Debts, 1)
	assert.Equal(t, "visa", loaded.Debts[0].ID)
	assertMoney(t, "1200.00", loaded.Debts[0].Balance)
}

func TestStateService_ReplaceState_InvalidLeavesStoreUntouched(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := newTestStateService(store)

	_, err := svc.ReplaceState(context.Background(), domain.PlanInput{
		Settings: domain.SettingsInput{HorizonMonths: 1000},
	})
	assert.ErrorIs(t, err, ErrInvalidHorizon)
	assert.Zero(t, store.Len())
}

func TestStateService_UpdateSettings(t *testing.T) {
	svc := newTestStateService(repository.NewMemoryStore())

	state, err := svc.UpdateSettings(context.Background(), domain.SettingsPatch{
		Strategy:     ptr("snowball"),
		ExtraMonthly: ptr(domain.LooseNumber("120.5")),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Snowball, state.Settings.Strategy)
	assertMoney(t, "120.50", state.Settings.ExtraMonthly)
	assert.Equal(t, DefaultCurrency, state.Settings.Currency)
	assert.Len(t, state.Debts, 1, "debts survive a settings change")

	_, err = svc.UpdateSettings(context.Background(), domain.SettingsPatch{StartMonth: ptr("March")})
	assert.ErrorIs(t, err, ErrInvalidStartMonth)
}

func TestStateService_DebtLifecycle(t *testing.T) {
	svc := newTestStateService(repository.NewMemoryStore())
	ctx := context.Background()

	added, err := svc.AddDebt(ctx, domain.DebtInput{
		ID:         "client-chosen",
		Name:       "Car loan",
		Balance:    "8000",
		APR:        "6.5",
		MinPayment: "180",
		DueDay:     "20",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "client-chosen", added.ID)
	assert.NotEmpty(t, added.ID)

	state, err := svc.State(ctx)
	require.NoError(t, err)
	require.Len(t, state.Debts, 2)

	updated, err := svc.UpdateDebt(ctx, added.ID, domain.DebtPatch{
		Balance: ptr(domain.LooseNumber("7500")),
		Notes:   ptr("refinanced"),
	})
	require.NoError(t, err)
	assert.Equal(t, added.ID, updated.ID)
	assertMoney(t, "7500.00", updated.Balance)
	assert.Equal(t, "6.5", updated.APR.String())
	assert.Equal(t, 20, updated.DueDay)
	assert.Equal(t, "refinanced", updated.Notes)

	_, err = svc.UpdateDebt(ctx, "missing", domain.DebtPatch{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrDebtNotFound)

	require.NoError(t, svc.DeleteDebt(ctx, added.ID))
	assert.ErrorIs(t, svc.DeleteDebt(ctx, added.ID), ErrDebtNotFound)

	state, err = svc.State(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Debts, 1)
}

func TestStateService_RejectsOversizedAmounts(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := newTestStateService(store)
	ctx := context.Background()

	_, err := svc.AddDebt(ctx, domain.DebtInput{Name: "Huge", Balance: "1e20000"})
	assert.ErrorIs(t, err, ErrAmountTooLarge)
	assert.Zero(t, store.Len())

	_, err = svc.ReplaceState(ctx, domain.PlanInput{
		Debts: []domain.DebtInput{{ID: "a", Balance: "100", APR: "10", MinPayment: "5"}},
	})
	require.NoError(t, err)
	_, err = svc.UpdateDebt(ctx, "a", domain.DebtPatch{APR: ptr(domain.LooseNumber("5000"))})
	assert.ErrorIs(t, err, ErrAmountTooLarge)

	_, err = svc.UpdateSettings(ctx, domain.SettingsPatch{ExtraMonthly: ptr(domain.LooseNumber("1e9"))})
	assert.ErrorIs(t, err, ErrAmountTooLarge)
}

func TestStateService_AddDebt_Limit(t *testing.T) {
	svc := newTestStateService(repository.NewMemoryStore())
	ctx := context.Background()

	in := domain.PlanInput{Debts: make([]domain.DebtInput, MaxDebtsPerPlan)}
	_, err := svc.ReplaceState(ctx, in)
	require.NoError(t, err)

	_, err = svc.AddDebt(ctx, domain.DebtInput{Name: "one too many"})
	assert.ErrorIs(t, err, ErrTooManyDebts)
}

func TestStateService_DeleteLastDebtKeepsEmptyList(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := newTestStateService(store)
	ctx := context.Background()

	state, err := svc.State(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteDebt(ctx, state.Debts[0].ID))

	raw, found, err := store.Get(ctx, StateKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, raw, `"debts":[]`)
}

func TestStateService_Profile(t *testing.T) {
	svc := newTestStateService(repository.NewMemoryStore())
	ctx := context.Background()

	profile, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfile(), profile)

	_, err = svc.SaveProfile(ctx, domain.Profile{Org: "Acme", User: "sam", Language: "DE"})
	require.NoError(t, err)

	profile, err = svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme", profile.Org)
	assert.Equal(t, "DE", profile.Language)
}
