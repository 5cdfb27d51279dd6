package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/nour-apps/nursery-core/internal/models"
	"github.com/nour-apps/nursery-core/pkg/database"
)

const visitColumns = `id, child_id, value, appointment, visit_date, purpose, notes, created_at, updated_at`

// DailyVisitRepository manages persistence for daily visits.
type DailyVisitRepository struct{}

// NewDailyVisitRepository constructs a DailyVisitRepository.
func NewDailyVisitRepository() *DailyVisitRepository {
	return &DailyVisitRepository{}
}

// FindByID fetches a visit by primary key.
func (r *DailyVisitRepository) FindByID(ctx context.Context, scope database.Scope, id int) (*models.DailyVisit, error) {
	query := scope.Rebind(`SELECT ` + visitColumns + ` FROM daily_visits WHERE id = ?`)
	var visit models.DailyVisit
	if err := scope.GetContext(ctx, &visit, query, id); err != nil {
		return nil, err
	}
	return &visit, nil
}

// ListByChildID returns every visit recorded for a child.
func (r *DailyVisitRepository) ListByChildID(ctx context.Context, scope database.Scope, childID int) ([]models.DailyVisit, error) {
	query := scope.Rebind(`SELECT ` + visitColumns + ` FROM daily_visits WHERE child_id = ? ORDER BY id`)
	var visits []models.DailyVisit
	if err := scope.SelectContext(ctx, &visits, query, childID); err != nil {
		return nil, fmt.Errorf("list visits by child: %w", err)
	}
	return visits, nil
}

// ListAll returns every visit in id order.
func (r *DailyVisitRepository) ListAll(ctx context.Context, scope database.Scope) ([]models.DailyVisit, error) {
	var visits []models.DailyVisit
	if err := scope.SelectContext(ctx, &visits, `SELECT `+visitColumns+` FROM daily_visits ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	return visits, nil
}

// Insert stores a new visit and fills the generated id.
func (r *DailyVisitRepository) Insert(ctx context.Context, scope database.Scope, visit *models.DailyVisit) error {
	now := time.Now().UTC()
	visit.CreatedAt = now
	visit.UpdatedAt = now
	const query = `INSERT INTO daily_visits (child_id, value, appointment, visit_date, purpose, notes, created_at, updated_at)
        VALUES (:child_id, :value, :appointment, :visit_date, :purpose, :notes, :created_at, :updated_at)
        RETURNING id`
	id, err := insertReturningID(ctx, scope, query, visit)
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}
	visit.ID = id
	return nil
}

// Update persists a modified visit and refreshes updated_at.
func (r *DailyVisitRepository) Update(ctx context.Context, scope database.Scope, visit *models.DailyVisit) error {
	visit.UpdatedAt = time.Now().UTC()
	const query = `UPDATE daily_visits SET value = :value, appointment = :appointment, visit_date = :visit_date, purpose = :purpose, notes = :notes, updated_at = :updated_at
        WHERE id = :id`
	if _, err := scope.NamedExecContext(ctx, query, visit); err != nil {
		return fmt.Errorf("update visit: %w", err)
	}
	return nil
}

// Delete removes a visit and reports whether a row was hit.
func (r *DailyVisitRepository) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	query := scope.Rebind(`DELETE FROM daily_visits WHERE id = ?`)
	res, err := scope.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete visit: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete visit: %w", err)
	}
	return affected > 0, nil
}
