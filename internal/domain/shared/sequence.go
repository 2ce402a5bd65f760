package shared

import "context"

// SeedFunc returns the value a counter should start from when it does not
// exist yet, typically the number of identifiers already issued for its scope.
type SeedFunc func(ctx context.Context) (int64, error)

// SequenceRepository hands out monotonically increasing values per scope.
// Reserve is atomic: two concurrent callers never receive the same value.
// Outside a transaction a reserved value is consumed for good, even when the
// work that uses it later fails.
type SequenceRepository interface {
	Reserve(ctx context.Context, scope string, seed SeedFunc) (int64, error)
	// Current returns the last reserved value, or 0 when the scope is unused
	Current(ctx context.Context, scope string) (int64, error)
}
