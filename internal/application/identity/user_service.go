package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/mediastorage/backend/internal/domain/identity"
	"github.com/mediastorage/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UserService orchestrates account registration, logical removal, and login.
// Uniqueness of username and mail is checked here, before any write is
// attempted, so a collision never reaches the database.
type UserService struct {
	reader identity.UserReader
	writer identity.UserWriter
	logger *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(reader identity.UserReader, writer identity.UserWriter, logger *zap.Logger) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		logger: logger,
	}
}

// GetAllUsers returns every non-deleted user, or not-found when there are none
func (s *UserService) GetAllUsers(ctx context.Context) ([]identity.UserView, error) {
	users, err := s.reader.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		s.logger.Error(shared.ErrNotFound.Message)
		return nil, shared.ErrNotFound
	}
	return users, nil
}

// GetUserByID returns one user, or not-found when absent
func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	user, err := s.reader.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.logger.Error(shared.ErrNotFound.Message)
		return nil, shared.ErrNotFound
	}
	return user, nil
}

// AddUser registers an account. A taken username or mail short-circuits into
// a failed result without touching the writer.
func (s *UserService) AddUser(ctx context.Context, input RegisterUserInput) (shared.ServiceResult, error) {
	var result shared.ServiceResult

	existing, err := s.reader.GetByUserName(ctx, input.Username)
	if err != nil {
		return shared.ServiceResult{}, err
	}
	if existing != nil {
		result.SetFailure("Username already exists.")
		return result, nil
	}

	existing, err = s.reader.GetByUserEmail(ctx, input.Mail)
	if err != nil {
		return shared.ServiceResult{}, err
	}
	if existing != nil {
		result.SetFailure("Mail address already exists.")
		return result, nil
	}

	user := identity.NewUser(input.Username, input.Password, input.Mail)
	added, err := s.writer.AddUser(ctx, user)
	if err != nil {
		return shared.ServiceResult{}, err
	}

	if !added {
		result.SetFailure("Error while inserting user.")
	} else {
		result.SetSuccess("User added successfully.")
	}
	return result, nil
}

// RemoveUser logically deletes a user. An absent user is a failed result,
// not an error.
func (s *UserService) RemoveUser(ctx context.Context, id uuid.UUID) (shared.ServiceResult, error) {
	var result shared.ServiceResult

	user, err := s.reader.GetUserByID(ctx, id)
	if err != nil {
		return shared.ServiceResult{}, err
	}
	if user == nil {
		result.SetFailure("Error while deleting user.")
		return result, nil
	}

	deleted, err := s.writer.DeleteUser(ctx, user)
	if err != nil {
		return shared.ServiceResult{}, err
	}

	if !deleted {
		result.SetFailure("Error while deleting user.")
	} else {
		result.SetSuccess("User deleted successfully.")
	}
	return result, nil
}

// Login matches the exact username and password pair. An empty password never
// matches; a miss is raised as not-found.
func (s *UserService) Login(ctx context.Context, credentials Credentials) (*identity.User, error) {
	if credentials.Password == "" {
		s.logger.Error(shared.ErrNotFound.Message)
		return nil, shared.ErrNotFound
	}

	user, err := s.reader.GetByUsernamePassword(ctx, credentials.Username, credentials.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.logger.Error(shared.ErrNotFound.Message)
		return nil, shared.ErrNotFound
	}
	return user, nil
}
