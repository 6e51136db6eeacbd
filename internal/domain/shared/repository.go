package shared

import (
	"context"
)

// QueryOption composes a lazy query before it is executed.
// Options stack; nothing runs until the repository materializes the query.
type QueryOption interface {
	queryOption()
}

// WhereOption narrows a query with a condition and its arguments
type WhereOption struct {
	Condition string
	Args      []any
}

func (WhereOption) queryOption() {}

// IncludeOption eager-loads a named relationship path
type IncludeOption struct {
	Path string
}

func (IncludeOption) queryOption() {}

// Where builds a filter option
func Where(condition string, args ...any) QueryOption {
	return WhereOption{Condition: condition, Args: args}
}

// Include builds an eager-load option for the given association path
func Include(path string) QueryOption {
	return IncludeOption{Path: path}
}

// Repository is the generic entity-set facade. Mutations only stage changes;
// committing is the unit of work's responsibility.
type Repository[T any] interface {
	// GetAll returns all entities, filtered and eager-loaded per the options
	GetAll(ctx context.Context, opts ...QueryOption) ([]T, error)

	// Find returns the entity with the given identity, or nil when absent.
	// A missing key is not an error.
	Find(ctx context.Context, id int64) (*T, error)

	// Add stages an insert
	Add(entity *T) error

	// Update stages a full update; the entity must carry its identity
	Update(entity *T) error

	// Delete stages a removal by identity
	Delete(id int64)

	// DeleteRange stages removal of every given entity
	DeleteRange(entities []T)
}

// UnitOfWork is the atomic boundary around staged write operations
type UnitOfWork interface {
	// Commit applies all staged changes inside one transaction and returns
	// the number of affected records. A non-positive count means "no
	// effective change", not an error.
	Commit(ctx context.Context) (int64, error)

	// SaveChanges flushes staged changes without an explicit transaction wrapper
	SaveChanges(ctx context.Context) (int64, error)

	// Close releases the underlying session; repeated calls are a no-op
	Close() error
}
