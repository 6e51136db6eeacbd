package persistence

import (
	"context"

	"github.com/mediastorage/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// pendingChange is one staged mutation; it reports affected rows when applied
type pendingChange func(tx *gorm.DB) (int64, error)

// GormUnitOfWork batches staged mutations from generic repositories and
// applies them atomically. It owns one persistence session scoped to a single
// logical unit of work; it is not safe for concurrent use.
type GormUnitOfWork struct {
	db      *gorm.DB
	pending []pendingChange
	closed  bool
}

// NewGormUnitOfWork creates a unit of work over the given session
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// register stages a mutation for the next flush
func (u *GormUnitOfWork) register(change pendingChange) {
	u.pending = append(u.pending, change)
}

// Commit applies all staged changes inside one transaction and returns the
// total number of affected records. Nothing staged commits nothing and
// returns 0; callers treat non-positive counts as "no effective change".
// Any session error rolls the transaction back and propagates untranslated
// with the -1 not-executed sentinel.
func (u *GormUnitOfWork) Commit(ctx context.Context) (int64, error) {
	if len(u.pending) == 0 {
		return 0, nil
	}

	affected := int64(-1)
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := u.flush(tx)
		if err != nil {
			return err
		}
		affected = n
		return nil
	})
	if err != nil {
		return -1, err
	}

	u.pending = nil
	return affected, nil
}

// SaveChanges flushes staged changes without an explicit transaction wrapper,
// for callers that already hold a repository-managed transaction
func (u *GormUnitOfWork) SaveChanges(ctx context.Context) (int64, error) {
	affected, err := u.flush(u.db.WithContext(ctx))
	if err != nil {
		return -1, err
	}
	u.pending = nil
	return affected, nil
}

func (u *GormUnitOfWork) flush(tx *gorm.DB) (int64, error) {
	var total int64
	for _, change := range u.pending {
		n, err := change(tx)
		if err != nil {
			return -1, err
		}
		total += n
	}
	return total, nil
}

// Close releases the session exactly once; repeated calls are a no-op.
// The session borrows pooled connections, so releasing it means dropping any
// staged changes that were never committed.
func (u *GormUnitOfWork) Close() error {
	if u.closed {
		return nil
	}
	u.closed = true
	u.pending = nil
	return nil
}

// Ensure GormUnitOfWork implements shared.UnitOfWork
var _ shared.UnitOfWork = (*GormUnitOfWork)(nil)
