package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"debt-planner/domain"
	"debt-planner/repository"
)

var ErrInvalidImport = errors.New("invalid import file")

// TransferService moves the full app state in and out as a JSON document.
type TransferService struct {
	state  *StateService
	logger *zap.Logger
	now    func() time.Time
}

func NewTransferService(state *StateService, logger *zap.Logger, now func() time.Time) *TransferService {
	if now == nil {
		now = time.Now
	}
	return &TransferService{state: state, logger: logger, now: now}
}

func (s *TransferService) Export(ctx context.Context) (domain.ExportDocument, error) {
	state, err := s.state.State(ctx)
	if err != nil {
		return domain.ExportDocument{}, err
	}
	profile, err := s.state.Profile(ctx)
	if err != nil {
		return domain.ExportDocument{}, err
	}
	return domain.ExportDocument{
		ExportedAt: s.now().UTC(),
		Profile:    profile,
		Data:       state,
	}, nil
}

// ExportFilename is the suggested download name for an export taken at t.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("toolstack-debt-it-%s-%s.json", domain.AppVersion, t.Format(time.DateOnly))
}

// Import replaces the stored state with the one in payload. The payload must
// carry data.settings as an object and data.debts as an array; anything else
// fails with ErrInvalidImport and leaves the stored state untouched.
//
// The profile and the state are two separate writes. The profile goes first,
// so a failed profile write leaves the stored state as it was. A state write
// that fails after it keeps the new profile.
func (s *TransferService) Import(ctx context.Context, payload []byte) (domain.AppState, error) {
	var doc struct {
		Profile *domain.Profile `json:"profile"`
		Data    *struct {
			Settings json.RawMessage `json:"settings"`
			Debts    json.RawMessage `json:"debts"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return domain.AppState{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if doc.Data == nil || !repository.IsJSONObject(doc.Data.Settings) || !repository.IsJSONArray(doc.Data.Debts) {
		return domain.AppState{}, ErrInvalidImport
	}

	var in domain.PlanInput
	if err := json.Unmarshal(doc.Data.Settings, &in.Settings); err != nil {
		return domain.AppState{}, fmt.Errorf("%w: settings: %v", ErrInvalidImport, err)
	}
	if err := json.Unmarshal(doc.Data.Debts, &in.Debts); err != nil {
		return domain.AppState{}, fmt.Errorf("%w: debts: %v", ErrInvalidImport, err)
	}

	// Validate before touching the store.
	if _, _, err := NormalizePlanInput(in, s.now()); err != nil {
		return domain.AppState{}, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}

	if doc.Profile != nil {
		if _, err := s.state.SaveProfile(ctx, *doc.Profile); err != nil {
			return domain.AppState{}, err
		}
	}
	state, err := s.state.ReplaceState(ctx, in)
	if err != nil {
		return domain.AppState{}, err
	}

	s.logger.Info("imported state", zap.Int("debts", len(state.Debts)))
	return state, nil
}
