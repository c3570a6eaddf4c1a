package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"debt-planner/domain"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrMalformed = errors.New("stored record is malformed")
)

// StateRepository reads and writes the app state and the user profile as
// JSON documents under fixed keys.
type StateRepository struct {
	store      KVStore
	stateKey   string
	profileKey string
}

func NewStateRepository(store KVStore, stateKey, profileKey string) *StateRepository {
	return &StateRepository{store: store, stateKey: stateKey, profileKey: profileKey}
}

// GetState returns ErrNotFound when nothing is stored and ErrMalformed when
// the stored document cannot be decoded into a state with settings and debts.
func (r *StateRepository) GetState(ctx context.Context) (*domain.AppState, error) {
	raw, err := r.load(ctx, r.stateKey)
	if err != nil {
		return nil, err
	}

	var shape struct {
		Settings json.RawMessage `json:"settings"`
		Debts    json.RawMessage `json:"debts"`
	}
	if err := json.Unmarshal([]byte(raw), &shape); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !IsJSONObject(shape.Settings) || !IsJSONArray(shape.Debts) {
		return nil, fmt.Errorf("%w: missing settings or debts", ErrMalformed)
	}

	var state domain.AppState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &state, nil
}

func (r *StateRepository) SaveState(ctx context.Context, state domain.AppState) error {
	return r.save(ctx, r.stateKey, state)
}

func (r *StateRepository) GetProfile(ctx context.Context) (*domain.Profile, error) {
	raw, err := r.load(ctx, r.profileKey)
	if err != nil {
		return nil, err
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &profile, nil
}

func (r *StateRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	return r.save(ctx, r.profileKey, profile)
}

func (r *StateRepository) load(ctx context.Context, key string) (string, error) {
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", key, err)
	}
	if !found || raw == "" {
		return "", ErrNotFound
	}
	return raw, nil
}

func (r *StateRepository) save(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("could not write %s: %w", key, err)
	}
	return nil
}
