package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"debt-planner/domain"
)

var (
	ErrInvalidStrategy   = errors.New("strategy must be avalanche or snowball")
	ErrInvalidStartMonth = errors.New("start month must be formatted as YYYY-MM")
	ErrInvalidHorizon    = fmt.Errorf("horizon must be between 1 and %d months", MaxHorizonMonths)
	ErrTooManyDebts      = fmt.Errorf("a plan accepts at most %d debts", MaxDebtsPerPlan)
	ErrDuplicateDebtID   = errors.New("duplicate debt id")
	ErrAmountTooLarge    = errors.New("value exceeds the allowed maximum")
)

// NormalizeDebt turns a raw debt into a strictly typed one. Numeric fields
// that do not parse become zero, negative values are clamped to zero, money
// is rounded to cents and the APR to four places. A missing id is replaced
// by a fresh UUID. Amounts above MaxDebtAmount and rates above
// MaxInterestRate fail with ErrAmountTooLarge.
func NormalizeDebt(in domain.DebtInput) (domain.Debt, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}

	d := domain.Debt{
		ID:         id,
		Name:       strings.TrimSpace(in.Name),
		Balance:    clampNonNegative(in.Balance.Decimal()),
		APR:        clampNonNegative(in.APR.Decimal()),
		MinPayment: clampNonNegative(in.MinPayment.Decimal()),
		DueDay:     normalizeDueDay(in.DueDay),
		Notes:      strings.TrimSpace(in.Notes),
	}
	// bounds first: rounding rescales the coefficient
	if err := CheckDebtLimits(d); err != nil {
		return domain.Debt{}, fmt.Errorf("debt %s: %w", id, err)
	}

	d.Balance = round2(d.Balance)
	d.APR = d.APR.Round(aprPlaces)
	d.MinPayment = round2(d.MinPayment)
	return d, nil
}

// CheckDebtLimits reports ErrAmountTooLarge for a debt whose balance,
// minimum payment or APR is above the supported range.
func CheckDebtLimits(d domain.Debt) error {
	switch {
	case exceeds(d.Balance, maxDebtAmount):
		return fmt.Errorf("%w: balance above %d", ErrAmountTooLarge, MaxDebtAmount)
	case exceeds(d.MinPayment, maxDebtAmount):
		return fmt.Errorf("%w: minimum payment above %d", ErrAmountTooLarge, MaxDebtAmount)
	case exceeds(d.APR, maxInterestRate):
		return fmt.Errorf("%w: APR above %d%%", ErrAmountTooLarge, MaxInterestRate)
	}
	return nil
}

func checkExtraLimit(extra decimal.Decimal) error {
	if exceeds(extra, maxDebtAmount) {
		return fmt.Errorf("%w: extra payment above %d", ErrAmountTooLarge, MaxDebtAmount)
	}
	return nil
}

func normalizeDueDay(n domain.LooseNumber) int {
	day := n.Decimal().IntPart()
	if day < 1 {
		return 1
	}
	if day > MaxDueDay {
		return MaxDueDay
	}
	return int(day)
}

// NormalizeDebts normalizes every debt and rejects duplicate ids.
func NormalizeDebts(in []domain.DebtInput) ([]domain.Debt, error) {
	if len(in) > MaxDebtsPerPlan {
		return nil, ErrTooManyDebts
	}

	debts := make([]domain.Debt, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, raw := range in {
		d, err := NormalizeDebt(raw)
		if err != nil {
			return nil, err
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDebtID, d.ID)
		}
		seen[d.ID] = true
		debts = append(debts, d)
	}
	return debts, nil
}

// NormalizeSettings validates plan settings. Empty values fall back to the
// defaults (avalanche, current month, 240 months, EUR); values that are
// present but wrong are rejected.
func NormalizeSettings(in domain.SettingsInput, now time.Time) (domain.PlanSettings, error) {
	strategy := domain.Strategy(strings.ToLower(strings.TrimSpace(in.Strategy)))
	if strategy == "" {
		strategy = domain.Avalanche
	}
	if !strategy.Valid() {
		return domain.PlanSettings{}, fmt.Errorf("%w: %q", ErrInvalidStrategy, in.Strategy)
	}

	start := domain.NewYearMonth(now)
	if s := strings.TrimSpace(in.StartMonth); s != "" {
		parsed, err := domain.ParseYearMonth(s)
		if err != nil {
			return domain.PlanSettings{}, fmt.Errorf("%w: %v", ErrInvalidStartMonth, err)
		}
		start = parsed
	}

	horizon := in.HorizonMonths
	if horizon == 0 {
		horizon = domain.DefaultHorizonMonths
	}
	if horizon < 0 || horizon > MaxHorizonMonths {
		return domain.PlanSettings{}, ErrInvalidHorizon
	}

	extra := clampNonNegative(in.ExtraMonthly.Decimal())
	if err := checkExtraLimit(extra); err != nil {
		return domain.PlanSettings{}, err
	}

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}

	return domain.PlanSettings{
		Strategy:      strategy,
		ExtraMonthly:  round2(extra),
		StartMonth:    start,
		HorizonMonths: horizon,
		Currency:      currency,
	}, nil
}

// CheckPlanLimits applies the input bounds to values that did not come
// through normalization, such as a state read back from a store.
func CheckPlanLimits(debts []domain.Debt, settings domain.PlanSettings) error {
	if len(debts) > MaxDebtsPerPlan {
		return ErrTooManyDebts
	}
	if settings.HorizonMonths < 0 || settings.HorizonMonths > MaxHorizonMonths {
		return ErrInvalidHorizon
	}
	for _, d := range debts {
		if err := CheckDebtLimits(d); err != nil {
			return fmt.Errorf("debt %s: %w", d.ID, err)
		}
	}
	return checkExtraLimit(settings.ExtraMonthly)
}

// NormalizePlanInput is the single entry point from untrusted input to the
// simulator's types.
func NormalizePlanInput(in domain.PlanInput, now time.Time) ([]domain.Debt, domain.PlanSettings, error) {
	debts, err := NormalizeDebts(in.Debts)
	if err != nil {
		return nil, domain.PlanSettings{}, err
	}
	settings, err := NormalizeSettings(in.Settings, now)
	if err != nil {
		return nil, domain.PlanSettings{}, err
	}
	return debts, settings, nil
}

// PortfolioTotals sums balances and minimum payments as entered.
func PortfolioTotals(debts []domain.Debt) domain.PortfolioTotals {
	totals := domain.PortfolioTotals{TotalBalance: decimal.Zero, TotalMinimum: decimal.Zero}
	for _, d := range debts {
		totals.TotalBalance = round2(totals.TotalBalance.Add(clampNonNegative(d.Balance)))
		totals.TotalMinimum = round2(totals.TotalMinimum.Add(clampNonNegative(d.MinPayment)))
	}
	return totals
}
