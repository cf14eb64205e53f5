package ports

import (
	"context"

	"cognia/domain/profile"
	"cognia/domain/table"
)

// Profiler analyzes a table into an immutable statistical profile
type Profiler interface {
	Profile(ctx context.Context, t *table.Table, opts profile.Options) (*profile.Profile, error)
}
