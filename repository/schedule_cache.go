package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"debt-planner/domain"
)

const scheduleKeyPrefix = "schedule:"

// ScheduleCache memoizes simulation results. The simulator is a pure
// function, so a digest of its inputs is a complete cache key.
type ScheduleCache struct {
	store KVStore
}

func NewScheduleCache(store KVStore) *ScheduleCache {
	return &ScheduleCache{store: store}
}

// Key derives the cache key for a debt list and its settings.
func (c *ScheduleCache) Key(debts []domain.Debt, settings domain.PlanSettings) (string, error) {
	payload, err := json.Marshal(struct {
		Debts    []domain.Debt       `json:"debts"`
		Settings domain.PlanSettings `json:"settings"`
	}{debts, settings})
	if err != nil {
		return "", fmt.Errorf("could not encode schedule key: %w", err)
	}
	return fmt.Sprintf("%s%016x", scheduleKeyPrefix, xxhash.Sum64(payload)), nil
}

// Get returns the cached result, if any. A corrupt entry counts as a miss.
func (c *ScheduleCache) Get(ctx context.Context, key string) (*domain.ScheduleResult, bool, error) {
	raw, found, err := c.store.Get(ctx, key)
	if err != nil || !found {
		return nil, false, err
	}

	var result domain.ScheduleResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false, nil
	}
	return &result, true, nil
}

func (c *ScheduleCache) Set(ctx context.Context, key string, result domain.ScheduleResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not encode schedule: %w", err)
	}
	return c.store.Set(ctx, key, string(payload))
}
