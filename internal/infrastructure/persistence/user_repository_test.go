package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/mediastorage/backend/internal/domain/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUserReadRepository_GetByUsernamePassword(t *testing.T) {
	t.Run("returns the user matching both credentials", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		repo := NewGormUserReadRepository(gormDB)
		userID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE is_deleted = \$1 AND username = \$2 AND password = \$3`).
			WithArgs(false, "alice", "secret", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "mail", "is_active", "is_deleted"}).
				AddRow(userID, "alice", "secret", "alice@example.com", true, false))

		user, err := repo.GetByUsernamePassword(context.Background(), "alice", "secret")

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, userID, user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a credential miss is nil, not an error", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		repo := NewGormUserReadRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE is_deleted = \$1 AND username = \$2 AND password = \$3`).
			WithArgs(false, "alice", "wrong", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		user, err := repo.GetByUsernamePassword(context.Background(), "alice", "wrong")

		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUserReadRepository_GetAllUsers(t *testing.T) {
	t.Run("projects users without their password", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		repo := NewGormUserReadRepository(gormDB)
		userID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE is_deleted = \$1`).
			WithArgs(false).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "mail", "is_active", "is_deleted"}).
				AddRow(userID, "alice", "secret", "alice@example.com", true, false))

		users, err := repo.GetAllUsers(context.Background())

		assert.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, userID.String(), users[0].ID)
		assert.Equal(t, "alice", users[0].Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUserWriteRepository_DeleteUser(t *testing.T) {
	t.Run("flags the user and marks the entity", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		repo := NewGormUserWriteRepository(gormDB)
		user := identity.NewUser("alice", "secret", "alice@example.com")

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "users" SET "is_deleted"=\$1 WHERE id = \$2 AND is_deleted = \$3`).
			WithArgs(true, user.ID, false).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		deleted, err := repo.DeleteUser(context.Background(), user)

		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.True(t, user.IsDeleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleting an already-deleted user changes nothing", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		repo := NewGormUserWriteRepository(gormDB)
		user := identity.NewUser("alice", "secret", "alice@example.com")

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "users" SET "is_deleted"=\$1 WHERE id = \$2 AND is_deleted = \$3`).
			WithArgs(true, user.ID, false).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		deleted, err := repo.DeleteUser(context.Background(), user)

		assert.NoError(t, err)
		assert.False(t, deleted)
		assert.False(t, user.IsDeleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
