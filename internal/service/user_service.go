package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nour-apps/nursery-core/internal/dto"
	"github.com/nour-apps/nursery-core/internal/mapper"
	"github.com/nour-apps/nursery-core/internal/models"
	"github.com/nour-apps/nursery-core/pkg/database"
	appErrors "github.com/nour-apps/nursery-core/pkg/errors"
	"github.com/nour-apps/nursery-core/pkg/security"
)

type userRepository interface {
	FindByID(ctx context.Context, scope database.Scope, id string) (*models.User, error)
	FindByUsername(ctx context.Context, scope database.Scope, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, scope database.Scope, username string, excludeID string) (bool, error)
	ListAll(ctx context.Context, scope database.Scope) ([]models.User, error)
	Insert(ctx context.Context, scope database.Scope, user *models.User) error
	Update(ctx context.Context, scope database.Scope, user *models.User) error
	Delete(ctx context.Context, scope database.Scope, id string) (bool, error)
}

// UserService manages staff accounts. Sign-in tokens and sessions are the
// presentation layer's problem; this service only stores accounts and
// checks credentials.
type UserService struct {
	repo      userRepository
	hasher    security.PasswordHasher
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService constructs the user service.
func NewUserService(repo userRepository, hasher security.PasswordHasher, validate *validator.Validate, logger *zap.Logger) *UserService {
	if hasher == nil {
		hasher = security.NewBcryptHasher(0)
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, hasher: hasher, validator: validate, logger: logger}
}

// Create registers a staff account with a hashed password.
func (s *UserService) Create(ctx context.Context, scope database.Scope, req dto.CreateUser) (*dto.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid user payload")
	}
	taken, err := s.repo.ExistsByUsername(ctx, scope, req.Username, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to check username")
	}
	if taken {
		return nil, appErrors.Clone(appErrors.ErrConflict, "username already used")
	}
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to hash password")
	}
	user := mapper.NewUserFromCreate(req, hash)
	if err := s.repo.Insert(ctx, scope, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "username already used")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create user")
	}
	s.logger.Info("user created", zap.String("username", user.Username), zap.String("role", user.Role))
	return mapper.UserToDTO(user), nil
}

// Get returns an account by id.
func (s *UserService) Get(ctx context.Context, scope database.Scope, id string) (*dto.User, error) {
	user, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load user")
	}
	return mapper.UserToDTO(user), nil
}

// GetByUsername returns an account by its unique username.
func (s *UserService) GetByUsername(ctx context.Context, scope database.Scope, username string) (*dto.User, error) {
	user, err := s.repo.FindByUsername(ctx, scope, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load user")
	}
	return mapper.UserToDTO(user), nil
}

// ListAll returns every account.
func (s *UserService) ListAll(ctx context.Context, scope database.Scope) ([]dto.User, error) {
	users, err := s.repo.ListAll(ctx, scope)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list users")
	}
	out := make([]dto.User, 0, len(users))
	for i := range users {
		out = append(out, *mapper.UserToDTO(&users[i]))
	}
	return out, nil
}

// Update applies a partial patch to an account. Username uniqueness is
// re-checked when the patch renames the account.
func (s *UserService) Update(ctx context.Context, scope database.Scope, id string, patch dto.UpdateUser) (*dto.User, error) {
	user, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load user")
	}
	if patch.Username != nil && *patch.Username != user.Username {
		taken, err := s.repo.ExistsByUsername(ctx, scope, *patch.Username, id)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to check username")
		}
		if taken {
			return nil, appErrors.Clone(appErrors.ErrConflict, "username already used")
		}
	}
	mapper.ApplyUserPatch(user, patch)
	if err := s.repo.Update(ctx, scope, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "username already used")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update user")
	}
	return mapper.UserToDTO(user), nil
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, scope database.Scope, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, scope, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to delete user")
	}
	return deleted, nil
}

// Authenticate checks a username/password pair and returns the account on
// success. Unknown usernames and wrong passwords are indistinguishable to
// the caller.
func (s *UserService) Authenticate(ctx context.Context, scope database.Scope, username, password string) (*dto.User, error) {
	user, err := s.repo.FindByUsername(ctx, scope, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load user")
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}
	return mapper.UserToDTO(user), nil
}

// ChangePassword verifies the old password and stores a new hash.
func (s *UserService) ChangePassword(ctx context.Context, scope database.Scope, id, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return appErrors.Clone(appErrors.ErrValidation, "password too short")
	}
	user, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load user")
	}
	if err := s.hasher.Compare(user.PasswordHash, oldPassword); err != nil {
		return appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to hash password")
	}
	user.PasswordHash = hash
	if err := s.repo.Update(ctx, scope, user); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update user")
	}
	s.logger.Info("password changed", zap.String("username", user.Username))
	return nil
}
