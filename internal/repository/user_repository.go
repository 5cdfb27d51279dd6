package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nour-apps/nursery-core/internal/models"
	"github.com/nour-apps/nursery-core/pkg/database"
)

const userColumns = `id, username, password_hash, role, created_at, updated_at`

// UserRepository manages persistence for staff accounts.
type UserRepository struct{}

// NewUserRepository constructs a UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID fetches an account by primary key.
func (r *UserRepository) FindByID(ctx context.Context, scope database.Scope, id string) (*models.User, error) {
	query := scope.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?`)
	var user models.User
	if err := scope.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername fetches an account by its unique username.
func (r *UserRepository) FindByUsername(ctx context.Context, scope database.Scope, username string) (*models.User, error) {
	query := scope.Rebind(`SELECT ` + userColumns + ` FROM users WHERE username = ?`)
	var user models.User
	if err := scope.GetContext(ctx, &user, query, username); err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername checks username uniqueness, optionally excluding one id.
func (r *UserRepository) ExistsByUsername(ctx context.Context, scope database.Scope, username string, excludeID string) (bool, error) {
	query := `SELECT 1 FROM users WHERE username = ?`
	args := []interface{}{username}
	if excludeID != "" {
		query += ` AND id <> ?`
		args = append(args, excludeID)
	}
	var exists int
	if err := scope.GetContext(ctx, &exists, scope.Rebind(query+` LIMIT 1`), args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check username: %w", err)
	}
	return true, nil
}

// ListAll returns every account in username order.
func (r *UserRepository) ListAll(ctx context.Context, scope database.Scope) ([]models.User, error) {
	var users []models.User
	if err := scope.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users ORDER BY username`); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Insert stores a new account, minting a uuid when the id is empty.
func (r *UserRepository) Insert(ctx context.Context, scope database.Scope, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	const query = `INSERT INTO users (id, username, password_hash, role, created_at, updated_at)
        VALUES (:id, :username, :password_hash, :role, :created_at, :updated_at)`
	if _, err := scope.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Update persists a modified account and refreshes updated_at.
func (r *UserRepository) Update(ctx context.Context, scope database.Scope, user *models.User) error {
	user.UpdatedAt = time.Now().UTC()
	const query = `UPDATE users SET username = :username, password_hash = :password_hash, role = :role, updated_at = :updated_at WHERE id = :id`
	if _, err := scope.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes an account and reports whether a row was hit.
func (r *UserRepository) Delete(ctx context.Context, scope database.Scope, id string) (bool, error) {
	query := scope.Rebind(`DELETE FROM users WHERE id = ?`)
	res, err := scope.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return affected > 0, nil
}
