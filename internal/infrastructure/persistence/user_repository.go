package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mediastorage/backend/internal/domain/identity"
	"gorm.io/gorm"
)

// GormUserReadRepository implements identity.UserReader using GORM.
// Logically deleted users are invisible to every query; a missing match is
// returned as nil, never as an error.
type GormUserReadRepository struct {
	db *gorm.DB
}

// NewGormUserReadRepository creates a new GormUserReadRepository
func NewGormUserReadRepository(db *gorm.DB) *GormUserReadRepository {
	return &GormUserReadRepository{db: db}
}

// GetAllUsers returns the list projection of every user
func (r *GormUserReadRepository) GetAllUsers(ctx context.Context) ([]identity.UserView, error) {
	var users []identity.User
	if err := r.db.WithContext(ctx).Where("is_deleted = ?", false).Find(&users).Error; err != nil {
		return nil, err
	}

	views := make([]identity.UserView, len(users))
	for i, user := range users {
		views[i] = identity.UserView{
			ID:       user.ID.String(),
			Username: user.Username,
			Mail:     user.Mail,
			IsActive: user.IsActive,
		}
	}
	return views, nil
}

// GetUserByID returns the non-deleted user with the given identity
func (r *GormUserReadRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	return r.firstUser(ctx, "is_deleted = ? AND id = ?", false, id)
}

// GetByUsernamePassword returns the non-deleted user matching both credentials exactly
func (r *GormUserReadRepository) GetByUsernamePassword(ctx context.Context, username, password string) (*identity.User, error) {
	return r.firstUser(ctx, "is_deleted = ? AND username = ? AND password = ?", false, username, password)
}

// GetByUserName returns the non-deleted user with the given username
func (r *GormUserReadRepository) GetByUserName(ctx context.Context, username string) (*identity.User, error) {
	return r.firstUser(ctx, "is_deleted = ? AND username = ?", false, username)
}

// GetByUserEmail returns the non-deleted user with the given mail address
func (r *GormUserReadRepository) GetByUserEmail(ctx context.Context, mail string) (*identity.User, error) {
	return r.firstUser(ctx, "is_deleted = ? AND mail = ?", false, mail)
}

func (r *GormUserReadRepository) firstUser(ctx context.Context, condition string, args ...any) (*identity.User, error) {
	var user identity.User
	if err := r.db.WithContext(ctx).Where(condition, args...).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GormUserWriteRepository implements identity.UserWriter using GORM, one
// transaction per mutation
type GormUserWriteRepository struct {
	db *gorm.DB
}

// NewGormUserWriteRepository creates a new GormUserWriteRepository
func NewGormUserWriteRepository(db *gorm.DB) *GormUserWriteRepository {
	return &GormUserWriteRepository{db: db}
}

// AddUser inserts the user; false means nothing was inserted
func (r *GormUserWriteRepository) AddUser(ctx context.Context, user *identity.User) (bool, error) {
	added := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Create(user)
		if result.Error != nil {
			return result.Error
		}
		added = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

// DeleteUser flags the user as deleted; the record is retained. Flagging an
// already-deleted user changes nothing and reports false.
func (r *GormUserWriteRepository) DeleteUser(ctx context.Context, user *identity.User) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&identity.User{}).
			Where("id = ? AND is_deleted = ?", user.ID, false).
			Update("is_deleted", true)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	if deleted {
		user.MarkDeleted()
	}
	return deleted, nil
}

// Ensure implementations satisfy the domain contracts
var (
	_ identity.UserReader = (*GormUserReadRepository)(nil)
	_ identity.UserWriter = (*GormUserWriteRepository)(nil)
)
