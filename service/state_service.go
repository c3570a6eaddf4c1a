package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"debt-planner/domain"
	"debt-planner/repository"
)

var ErrDebtNotFound = errors.New("debt not found")

// StateService owns the persisted app state and profile. Reads never fail on
// missing or malformed stored data: they fall back to the defaults instead.
type StateService struct {
	repo   *repository.StateRepository
	logger *zap.Logger
	now    func() time.Time

	mu sync.Mutex // serializes read-modify-write cycles
}

// NewStateService creates a StateService; now defaults to time.Now.
func NewStateService(repo *repository.StateRepository, logger *zap.Logger, now func() time.Time) *StateService {
	if now == nil {
		now = time.Now
	}
	return &StateService{repo: repo, logger: logger, now: now}
}

// DefaultState is the state a first-time user starts with.
func DefaultState(now time.Time) domain.AppState {
	return domain.AppState{
		Meta: domain.Meta{
			AppID:     domain.AppID,
			Version:   domain.AppVersion,
			UpdatedAt: now.UTC(),
		},
		Settings: domain.PlanSettings{
			Strategy:      domain.Avalanche,
			ExtraMonthly:  decimal.NewFromInt(50),
			StartMonth:    domain.NewYearMonth(now),
			HorizonMonths: domain.DefaultHorizonMonths,
			Currency:      DefaultCurrency,
		},
		Debts: []domain.Debt{
			{
				ID:         uuid.NewString(),
				Name:       "Example debt",
				Balance:    decimal.NewFromInt(500),
				APR:        decimal.NewFromInt(12),
				MinPayment: decimal.NewFromInt(25),
				DueDay:     1,
			},
		},
	}
}

func (s *StateService) State(ctx context.Context) (domain.AppState, error) {
	state, err := s.repo.GetState(ctx)
	if err == nil {
		if limitErr := CheckPlanLimits(state.Debts, state.Settings); limitErr != nil {
			err = fmt.Errorf("%w: %w", repository.ErrMalformed, limitErr)
		}
	}
	switch {
	case err == nil:
		return *state, nil
	case errors.Is(err, repository.ErrNotFound):
		s.logger.Info("no stored state, using defaults")
		return DefaultState(s.now()), nil
	case errors.Is(err, repository.ErrMalformed):
		s.logger.Warn("stored state is malformed, using defaults", zap.Error(err))
		return DefaultState(s.now()), nil
	default:
		return domain.AppState{}, err
	}
}

// ReplaceState normalizes a complete state coming from a client and stores it.
func (s *StateService) ReplaceState(ctx context.Context, in domain.PlanInput) (domain.AppState, error) {
	debts, settings, err := NormalizePlanInput(in, s.now())
	if err != nil {
		return domain.AppState{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, domain.AppState{Settings: settings, Debts: debts})
}

func (s *StateService) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.State(ctx)
	if err != nil {
		return domain.AppState{}, err
	}

	in := state.Settings.ToInput()
	if patch.Strategy != nil {
		in.Strategy = *patch.Strategy
	}
	if patch.ExtraMonthly != nil {
		in.ExtraMonthly = *patch.ExtraMonthly
	}
	if patch.StartMonth != nil {
		in.StartMonth = *patch.StartMonth
	}
	if patch.HorizonMonths != nil {
		in.HorizonMonths = *patch.HorizonMonths
	}
	if patch.Currency != nil {
		in.Currency = *patch.Currency
	}

	settings, err := NormalizeSettings(in, s.now())
	if err != nil {
		return domain.AppState{}, err
	}
	state.Settings = settings
	return s.save(ctx, state)
}

// AddDebt appends a new debt. The id is always generated here.
func (s *StateService) AddDebt(ctx context.Context, in domain.DebtInput) (domain.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.State(ctx)
	if err != nil {
		return domain.Debt{}, err
	}
	if len(state.Debts) >= MaxDebtsPerPlan {
		return domain.Debt{}, ErrTooManyDebts
	}

	in.ID = ""
	debt, err := NormalizeDebt(in)
	if err != nil {
		return domain.Debt{}, err
	}
	state.Debts = append(state.Debts, debt)
	if _, err := s.save(ctx, state); err != nil {
		return domain.Debt{}, err
	}
	return debt, nil
}

// UpdateDebt applies the non-nil fields of patch to the debt with the given id.
func (s *StateService) UpdateDebt(ctx context.Context, id string, patch domain.DebtPatch) (domain.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.State(ctx)
	if err != nil {
		return domain.Debt{}, err
	}

	idx := indexOfDebt(state.Debts, id)
	if idx < 0 {
		return domain.Debt{}, ErrDebtNotFound
	}

	in := state.Debts[idx].ToInput()
	if patch.Name != nil {
		in.Name = *patch.Name
	}
	if patch.Balance != nil {
		in.Balance = *patch.Balance
	}
	if patch.APR != nil {
		in.APR = *patch.APR
	}
	if patch.MinPayment != nil {
		in.MinPayment = *patch.MinPayment
	}
	if patch.DueDay != nil {
		in.DueDay = *patch.DueDay
	}
	if patch.Notes != nil {
		in.Notes = *patch.Notes
	}

	updated, err := NormalizeDebt(in)
	if err != nil {
		return domain.Debt{}, err
	}
	state.Debts[idx] = updated
	if _, err := s.save(ctx, state); err != nil {
		return domain.Debt{}, err
	}
	return state.Debts[idx], nil
}

func (s *StateService) DeleteDebt(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.State(ctx)
	if err != nil {
		return err
	}

	idx := indexOfDebt(state.Debts, id)
	if idx < 0 {
		return ErrDebtNotFound
	}
	state.Debts = append(state.Debts[:idx], state.Debts[idx+1:]...)
	_, err = s.save(ctx, state)
	return err
}

func (s *StateService) Profile(ctx context.Context) (domain.Profile, error) {
	profile, err := s.repo.GetProfile(ctx)
	switch {
	case err == nil:
		return *profile, nil
	case errors.Is(err, repository.ErrNotFound):
		return domain.DefaultProfile(), nil
	case errors.Is(err, repository.ErrMalformed):
		s.logger.Warn("stored profile is malformed, using defaults", zap.Error(err))
		return domain.DefaultProfile(), nil
	default:
		return domain.Profile{}, err
	}
}

func (s *StateService) SaveProfile(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

// save stamps the metadata and persists the state. Callers hold s.mu.
func (s *StateService) save(ctx context.Context, state domain.AppState) (domain.AppState, error) {
	state.Meta = domain.Meta{
		AppID:     domain.AppID,
		Version:   domain.AppVersion,
		UpdatedAt: s.now().UTC(),
	}
	if state.Debts == nil {
		state.Debts = []domain.Debt{}
	}
	if err := s.repo.SaveState(ctx, state); err != nil {
		s.logger.Error("could not persist state", zap.String("op", "StateService.save"), zap.Error(err))
		return domain.AppState{}, err
	}
	return state, nil
}

func indexOfDebt(debts []domain.Debt, id string) int {
	for i, d := range debts {
		if d.ID == id {
			return i
		}
	}
	return -1
}
