package ports

import "context"

type Unlocker interface {
	Unlock(ctx context.Context) error
}

// EventLocker serializes concurrent handling of the same external event id
// before the database uniqueness constraint is reached. The database stays
// authoritative for idempotency.
type EventLocker interface {
	Lock(ctx context.Context, key string) (Unlocker, error)
}
