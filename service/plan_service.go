package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"debt-planner/domain"
	"debt-planner/repository"
)

type PlanService struct {
	cache  *repository.ScheduleCache
	logger *zap.Logger
}

// NewPlanService creates a PlanService. cache may be nil to disable caching.
func NewPlanService(cache *repository.ScheduleCache, logger *zap.Logger) *PlanService {
	return &PlanService{cache: cache, logger: logger}
}

// BuildSchedule simulates the plan, serving repeated inputs from the cache.
// Cache failures are logged and never fail the request.
func (s *PlanService) BuildSchedule(
	ctx context.Context,
	debts []domain.Debt,
	settings domain.PlanSettings,
) (domain.ScheduleResult, error) {

	if err := ctx.Err(); err != nil {
		return domain.ScheduleResult{}, err
	}
	if s.cache == nil {
		return Simulate(debts, settings), nil
	}

	key, err := s.cache.Key(debts, settings)
	if err != nil {
		s.logger.Warn("could not derive schedule cache key", zap.String("op", "PlanService.BuildSchedule"), zap.Error(err))
		return Simulate(debts, settings), nil
	}

	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("schedule cache read failed", zap.String("op", "PlanService.BuildSchedule"), zap.String("key", key), zap.Error(err))
	}
	if found {
		s.logger.Debug("schedule cache hit", zap.String("key", key))
		return *cached, nil
	}

	result := Simulate(debts, settings)
	s.logger.Debug("simulated payoff plan",
		zap.String("strategy", string(settings.Strategy)),
		zap.Int("debts", len(debts)),
		zap.Int("months", result.Months),
		zap.Bool("paidOff", result.PaidOff()),
	)

	if err := s.cache.Set(ctx, key, result); err != nil {
		s.logger.Warn("schedule cache write failed", zap.String("op", "PlanService.BuildSchedule"), zap.String("key", key), zap.Error(err))
	}
	return result, nil
}

// CompareStrategies runs the plan under both strategies. Avalanche is
// recommended only when its total interest is strictly lower.
func (s *PlanService) CompareStrategies(
	ctx context.Context,
	debts []domain.Debt,
	settings domain.PlanSettings,
) (domain.StrategyComparison, error) {

	results := make(map[domain.Strategy]domain.StrategyResult, 2)
	for _, strategy := range []domain.Strategy{domain.Avalanche, domain.Snowball} {
		variant := settings
		variant.Strategy = strategy
		schedule, err := s.BuildSchedule(ctx, debts, variant)
		if err != nil {
			return domain.StrategyComparison{}, err
		}
		results[strategy] = domain.StrategyResult{
			Strategy:      strategy,
			TotalInterest: schedule.TotalInterest,
			TotalPaid:     schedule.TotalPaid,
			Months:        schedule.Months,
			PayoffMonth:   schedule.PayoffMonth,
		}
	}

	avalanche := results[domain.Avalanche]
	snowball := results[domain.Snowball]

	comparison := domain.StrategyComparison{
		Avalanche:     avalanche,
		Snowball:      snowball,
		Recommended:   domain.Snowball,
		InterestSaved: round2(decimal.Max(decimal.Zero, snowball.TotalInterest.Sub(avalanche.TotalInterest))),
		MonthsSaved:   snowball.Months - avalanche.Months,
	}
	if avalanche.TotalInterest.LessThan(snowball.TotalInterest) {
		comparison.Recommended = domain.Avalanche
	}
	return comparison, nil
}
