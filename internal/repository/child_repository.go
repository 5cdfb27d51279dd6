package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/nour-apps/nursery-core/internal/models"
	"github.com/nour-apps/nursery-core/pkg/database"
)

const childColumns = `id, name, birth_date, age, phone, address, father_job, mother_job, notes, problems, child_image, child_type, has_left, is_deleted, created_at, updated_at`

// childActiveSelect is the single source for child reads. Soft-deleted rows
// are filtered here so no query can forget the predicate; anything that
// must see deleted rows says so in its name.
const childActiveSelect = `SELECT ` + childColumns + ` FROM children WHERE is_deleted = FALSE`

// ChildRepository manages persistence for child records. Methods operate on
// the caller's session scope.
type ChildRepository struct{}

// NewChildRepository constructs a ChildRepository.
func NewChildRepository() *ChildRepository {
	return &ChildRepository{}
}

// FindByID fetches a non-deleted child by id.
func (r *ChildRepository) FindByID(ctx context.Context, scope database.Scope, id int) (*models.Child, error) {
	query := scope.Rebind(childActiveSelect + ` AND id = ?`)
	var child models.Child
	if err := scope.GetContext(ctx, &child, query, id); err != nil {
		return nil, err
	}
	return &child, nil
}

// ExistsIncludingDeleted reports whether any row, deleted or not, ever used
// the given id. Backs the id-reuse invariant.
func (r *ChildRepository) ExistsIncludingDeleted(ctx context.Context, scope database.Scope, id int) (bool, error) {
	query := scope.Rebind(`SELECT 1 FROM children WHERE id = ? LIMIT 1`)
	var exists int
	if err := scope.GetContext(ctx, &exists, query, id); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check child id: %w", err)
	}
	return true, nil
}

// ListAll returns every non-deleted child in id order.
func (r *ChildRepository) ListAll(ctx context.Context, scope database.Scope) ([]models.Child, error) {
	var children []models.Child
	if err := scope.SelectContext(ctx, &children, childActiveSelect+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	return children, nil
}

// Search returns non-deleted children matching the query case-insensitively
// in name, phone, father's job, mother's job or notes. An empty query lists
// everyone.
func (r *ChildRepository) Search(ctx context.Context, scope database.Scope, search string) ([]models.Child, error) {
	if strings.TrimSpace(search) == "" {
		return r.ListAll(ctx, scope)
	}
	query := scope.Rebind(childActiveSelect + ` AND (
        LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(father_job) LIKE ? OR LOWER(mother_job) LIKE ? OR LOWER(notes) LIKE ?
    ) ORDER BY id`)
	pattern := "%" + strings.ToLower(search) + "%"
	var children []models.Child
	if err := scope.SelectContext(ctx, &children, query, pattern, pattern, pattern, pattern, pattern); err != nil {
		return nil, fmt.Errorf("search children: %w", err)
	}
	return children, nil
}

// Insert stores a new child row. The id is caller-assigned; timestamps are
// filled here unless the caller backdated created_at.
func (r *ChildRepository) Insert(ctx context.Context, scope database.Scope, child *models.Child) error {
	now := time.Now().UTC()
	if child.CreatedAt.IsZero() {
		child.CreatedAt = now
	}
	child.UpdatedAt = now
	const query = `INSERT INTO children (id, name, birth_date, age, phone, address, father_job, mother_job, notes, problems, child_image, child_type, has_left, is_deleted, created_at, updated_at)
        VALUES (:id, :name, :birth_date, :age, :phone, :address, :father_job, :mother_job, :notes, :problems, :child_image, :child_type, :has_left, :is_deleted, :created_at, :updated_at)`
	if _, err := scope.NamedExecContext(ctx, query, child); err != nil {
		return fmt.Errorf("insert child: %w", err)
	}
	return nil
}

// Update persists a modified child and refreshes updated_at. Soft-deleted
// rows are not valid targets.
func (r *ChildRepository) Update(ctx context.Context, scope database.Scope, child *models.Child) error {
	child.UpdatedAt = time.Now().UTC()
	const query = `UPDATE children SET name = :name, birth_date = :birth_date, age = :age, phone = :phone, address = :address, father_job = :father_job, mother_job = :mother_job, notes = :notes, problems = :problems, child_image = :child_image, child_type = :child_type, has_left = :has_left, updated_at = :updated_at
        WHERE id = :id AND is_deleted = FALSE`
	if _, err := scope.NamedExecContext(ctx, query, child); err != nil {
		return fmt.Errorf("update child: %w", err)
	}
	return nil
}

// SoftDelete flags a child as deleted and reports whether a live row was
// hit. The row and its sub-records stay in storage.
func (r *ChildRepository) SoftDelete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	query := scope.Rebind(`UPDATE children SET is_deleted = TRUE, updated_at = ? WHERE id = ? AND is_deleted = FALSE`)
	res, err := scope.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("soft delete child: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("soft delete child: %w", err)
	}
	return affected > 0, nil
}

// CountByType counts non-deleted children of one classification.
func (r *ChildRepository) CountByType(ctx context.Context, scope database.Scope, childType models.ChildType) (int, error) {
	query := scope.Rebind(`SELECT COUNT(*) FROM children WHERE is_deleted = FALSE AND child_type = ?`)
	var count int
	if err := scope.GetContext(ctx, &count, query, childType); err != nil {
		return 0, fmt.Errorf("count children by type: %w", err)
	}
	return count, nil
}
