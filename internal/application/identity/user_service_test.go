package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mediastorage/backend/internal/domain/identity"
	"github.com/mediastorage/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockUserReader is a mock implementation of identity.UserReader
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetAllUsers(ctx context.Context) ([]identity.UserView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.UserView), args.Error(1)
}

func (m *MockUserReader) GetUserByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserReader) GetByUsernamePassword(ctx context.Context, username, password string) (*identity.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserReader) GetByUserName(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserReader) GetByUserEmail(ctx context.Context, mail string) (*identity.User, error) {
	args := m.Called(ctx, mail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

// MockUserWriter is a mock implementation of identity.UserWriter
type MockUserWriter struct {
	mock.Mock
}

func (m *MockUserWriter) AddUser(ctx context.Context, user *identity.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserWriter) DeleteUser(ctx context.Context, user *identity.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}

func newUserService() (*UserService, *MockUserReader, *MockUserWriter) {
	reader := new(MockUserReader)
	writer := new(MockUserWriter)
	return NewUserService(reader, writer, zap.NewNop()), reader, writer
}

func TestUserService_GetAllUsers(t *testing.T) {
	t.Run("returns all users", func(t *testing.T) {
		svc, reader, _ := newUserService()

		expected := []identity.UserView{
			{ID: uuid.NewString(), Username: "alice", Mail: "alice@example.com", IsActive: true},
		}
		reader.On("GetAllUsers", mock.Anything).Return(expected, nil)

		users, err := svc.GetAllUsers(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, expected, users)
	})

	t.Run("raises not found when empty", func(t *testing.T) {
		svc, reader, _ := newUserService()

		reader.On("GetAllUsers", mock.Anything).Return([]identity.UserView{}, nil)

		users, err := svc.GetAllUsers(context.Background())

		assert.Nil(t, users)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestUserService_AddUser(t *testing.T) {
	input := RegisterUserInput{Username: "alice", Password: "secret", Mail: "alice@example.com"}

	t.Run("registers a user with free username and mail", func(t *testing.T) {
		svc, reader, writer := newUserService()

		reader.On("GetByUserName", mock.Anything, "alice").Return(nil, nil)
		reader.On("GetByUserEmail", mock.Anything, "alice@example.com").Return(nil, nil)
		writer.On("AddUser", mock.Anything, mock.MatchedBy(func(u *identity.User) bool {
			return u.Username == "alice" && u.Mail == "alice@example.com" && u.IsActive && !u.IsDeleted
		})).Return(true, nil)

		result, err := svc.AddUser(context.Background(), input)

		assert.NoError(t, err)
		assert.True(t, result.IsSuccessful)
		assert.Equal(t, "User added successfully.", result.Message)
	})

	t.Run("short-circuits on a taken username", func(t *testing.T) {
		svc, reader, writer := newUserService()

		existing := identity.NewUser("alice", "other", "other@example.com")
		reader.On("GetByUserName", mock.Anything, "alice").Return(existing, nil)

		result, err := svc.AddUser(context.Background(), input)

		assert.NoError(t, err)
		assert.False(t, result.IsSuccessful)
		assert.Equal(t, "Username already exists.", result.Message)
		writer.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything)
		reader.AssertNotCalled(t, "GetByUserEmail", mock.Anything, mock.Anything)
	})

	t.Run("short-circuits on a taken mail address", func(t *testing.T) {
		svc, reader, writer := newUserService()

		existing := identity.NewUser("bob", "other", "alice@example.com")
		reader.On("GetByUserName", mock.Anything, "alice").Return(nil, nil)
		reader.On("GetByUserEmail", mock.Anything, "alice@example.com").Return(existing, nil)

		result, err := svc.AddUser(context.Background(), input)

		assert.NoError(t, err)
		assert.False(t, result.IsSuccessful)
		assert.Equal(t, "Mail address already exists.", result.Message)
		writer.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything)
	})

	t.Run("reports failure when the write was ineffective", func(t *testing.T) {
		svc, reader, writer := newUserService()

		reader.On("GetByUserName", mock.Anything, "alice").Return(nil, nil)
		reader.On("GetByUserEmail", mock.Anything, "alice@example.com").Return(nil, nil)
		writer.On("AddUser", mock.Anything, mock.Anything).Return(false, nil)

		result, err := svc.AddUser(context.Background(), input)

		assert.NoError(t, err)
		assert.False(t, result.IsSuccessful)
		assert.Equal(t, "Error while inserting user.", result.Message)
	})

	t.Run("propagates reader errors", func(t *testing.T) {
		svc, reader, _ := newUserService()

		readerErr := errors.New("connection reset")
		reader.On("GetByUserName", mock.Anything, "alice").Return(nil, readerErr)

		result, err := svc.AddUser(context.Background(), input)

		assert.Equal(t, readerErr, err)
		assert.Equal(t, shared.ServiceResult{}, result)
	})
}

func TestUserService_RemoveUser(t *testing.T) {
	t.Run("logically deletes an existing user", func(t *testing.T) {
		svc, reader, writer := newUserService()

		user := identity.NewUser("alice", "secret", "alice@example.com")
		reader.On("GetUserByID", mock.Anything, user.ID).Return(user, nil)
		writer.On("DeleteUser", mock.Anything, user).Return(true, nil)

		result, err := svc.RemoveUser(context.Background(), user.ID)

		assert.NoError(t, err)
		assert.True(t, result.IsSuccessful)
		assert.Equal(t, "User deleted successfully.", result.Message)
	})

	t.Run("reports failure for an absent user without writing", func(t *testing.T) {
		svc, reader, writer := newUserService()

		id := uuid.New()
		reader.On("GetUserByID", mock.Anything, id).Return(nil, nil)

		result, err := svc.RemoveUser(context.Background(), id)

		assert.NoError(t, err)
		assert.False(t, result.IsSuccessful)
		assert.Equal(t, "Error while deleting user.", result.Message)
		writer.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	})
}

func TestUserService_Login(t *testing.T) {
	t.Run("matches the exact credential pair", func(t *testing.T) {
		svc, reader, _ := newUserService()

		user := identity.NewUser("alice", "secret", "alice@example.com")
		reader.On("GetByUsernamePassword", mock.Anything, "alice", "secret").Return(user, nil)

		got, err := svc.Login(context.Background(), Credentials{Username: "alice", Password: "secret"})

		assert.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("an empty password never matches", func(t *testing.T) {
		svc, reader, _ := newUserService()

		got, err := svc.Login(context.Background(), Credentials{Username: "alice", Password: ""})

		assert.Nil(t, got)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		reader.AssertNotCalled(t, "GetByUsernamePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("raises not found on a credential miss", func(t *testing.T) {
		svc, reader, _ := newUserService()

		reader.On("GetByUsernamePassword", mock.Anything, "alice", "wrong").Return(nil, nil)

		got, err := svc.Login(context.Background(), Credentials{Username: "alice", Password: "wrong"})

		assert.Nil(t, got)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
