package repository

import "context"

// KVStore is the persistence port shared by the state repository and the
// schedule cache. Get reports found=false, with a nil error, for a missing key.
//
//go:generate mockgen -destination=mocks/mock_kv_store.go -source=kv_store.go KVStore
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
