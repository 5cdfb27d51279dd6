package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nour-apps/nursery-core/internal/dto"
	"github.com/nour-apps/nursery-core/internal/models"
	"github.com/nour-apps/nursery-core/pkg/database"
	appErrors "github.com/nour-apps/nursery-core/pkg/errors"
)

type mockUserRepo struct {
	users map[string]models.User
}

func (m *mockUserRepo) FindByID(ctx context.Context, scope database.Scope, id string) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, scope database.Scope, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, scope database.Scope, username, excludeID string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username && (excludeID == "" || u.ID != excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) ListAll(ctx context.Context, scope database.Scope) ([]models.User, error) {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) Insert(ctx context.Context, scope database.Scope, user *models.User) error {
	if m.users == nil {
		m.users = make(map[string]models.User)
	}
	if user.ID == "" {
		user.ID = "generated"
	}
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, scope database.Scope, user *models.User) error {
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, scope database.Scope, id string) (bool, error) {
	if _, ok := m.users[id]; ok {
		delete(m.users, id)
		return true, nil
	}
	return false, nil
}

// plainHasher keeps user service tests fast; bcrypt itself is covered in
// pkg/security.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func newUserService(repo *mockUserRepo) *UserService {
	return NewUserService(repo, plainHasher{}, validator.New(), zap.NewNop())
}

func TestUserServiceCreateHashesPassword(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newUserService(repo)

	user, err := svc.Create(context.Background(), nil, dto.CreateUser{Username: "admin", Password: "secret1", Role: "admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "hashed:secret1", repo.users[user.ID].PasswordHash)
}

func TestUserServiceCreateRejectsBadRole(t *testing.T) {
	svc := newUserService(&mockUserRepo{})

	_, err := svc.Create(context.Background(), nil, dto.CreateUser{Username: "admin", Password: "secret1", Role: "root"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestUserServiceCreateDuplicateUsername(t *testing.T) {
	repo := &mockUserRepo{users: map[string]models.User{"u1": {ID: "u1", Username: "admin"}}}
	svc := newUserService(repo)

	_, err := svc.Create(context.Background(), nil, dto.CreateUser{Username: "admin", Password: "secret1", Role: "staff"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))
}

func TestUserServiceAuthenticate(t *testing.T) {
	repo := &mockUserRepo{users: map[string]models.User{"u1": {ID: "u1", Username: "admin", PasswordHash: "hashed:secret1", Role: "admin"}}}
	svc := newUserService(repo)

	user, err := svc.Authenticate(context.Background(), nil, "admin", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestUserServiceAuthenticateFailuresLookAlike(t *testing.T) {
	repo := &mockUserRepo{users: map[string]models.User{"u1": {ID: "u1", Username: "admin", PasswordHash: "hashed:secret1"}}}
	svc := newUserService(repo)

	_, wrongPassword := svc.Authenticate(context.Background(), nil, "admin", "nope")
	_, unknownUser := svc.Authenticate(context.Background(), nil, "ghost", "secret1")

	assert.True(t, appErrors.Is(wrongPassword, appErrors.ErrInvalidCredentials))
	assert.True(t, appErrors.Is(unknownUser, appErrors.ErrInvalidCredentials))
}

func TestUserServiceChangePassword(t *testing.T) {
	repo := &mockUserRepo{users: map[string]models.User{"u1": {ID: "u1", Username: "admin", PasswordHash: "hashed:secret1"}}}
	svc := newUserService(repo)

	require.NoError(t, svc.ChangePassword(context.Background(), nil, "u1", "secret1", "longer-secret"))
	assert.Equal(t, "hashed:longer-secret", repo.users["u1"].PasswordHash)
}

func TestUserServiceChangePasswordWrongOld(t *testing.T) {
	repo := &mockUserRepo{users: map[string]models.User{"u1": {ID: "u1", Username: "admin", PasswordHash: "hashed:secret1"}}}
	svc := newUserService(repo)

	err := svc.ChangePassword(context.Background(), nil, "u1", "wrong", "longer-secret")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidCredentials))
	assert.Equal(t, "hashed:secret1", repo.users["u1"].PasswordHash)
}

func TestUserServiceUpdateRename(t *testing.T) {
	repo := &mockUserRepo{users: map[string]models.User{
		"u1": {ID: "u1", Username: "admin", Role: "admin"},
		"u2": {ID: "u2", Username: "staff", Role: "staff"},
	}}
	svc := newUserService(repo)

	taken := "staff"
	_, err := svc.Update(context.Background(), nil, "u1", dto.UpdateUser{Username: &taken})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))

	fresh := "director"
	user, err := svc.Update(context.Background(), nil, "u1", dto.UpdateUser{Username: &fresh})
	require.NoError(t, err)
	assert.Equal(t, "director", user.Username)
	assert.Equal(t, "admin", user.Role)
}
