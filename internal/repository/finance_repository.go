package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/nour-apps/nursery-core/internal/models"
	"github.com/nour-apps/nursery-core/pkg/database"
)

const dailyFinanceColumns = `id, child_id, value, remaining, count, service, payment_date, notes, created_at, updated_at`

// DailyFinanceRepository manages persistence for per-child payment records.
type DailyFinanceRepository struct{}

// NewDailyFinanceRepository constructs a DailyFinanceRepository.
func NewDailyFinanceRepository() *DailyFinanceRepository {
	return &DailyFinanceRepository{}
}

// FindByID fetches a payment record by primary key.
func (r *DailyFinanceRepository) FindByID(ctx context.Context, scope database.Scope, id int) (*models.DailyFinance, error) {
	query := scope.Rebind(`SELECT ` + dailyFinanceColumns + ` FROM daily_finances WHERE id = ?`)
	var finance models.DailyFinance
	if err := scope.GetContext(ctx, &finance, query, id); err != nil {
		return nil, err
	}
	return &finance, nil
}

// ListByChildID returns every payment recorded for a child.
func (r *DailyFinanceRepository) ListByChildID(ctx context.Context, scope database.Scope, childID int) ([]models.DailyFinance, error) {
	query := scope.Rebind(`SELECT ` + dailyFinanceColumns + ` FROM daily_finances WHERE child_id = ? ORDER BY id`)
	var finances []models.DailyFinance
	if err := scope.SelectContext(ctx, &finances, query, childID); err != nil {
		return nil, fmt.Errorf("list finances by child: %w", err)
	}
	return finances, nil
}

// ListAll returns every payment record in id order.
func (r *DailyFinanceRepository) ListAll(ctx context.Context, scope database.Scope) ([]models.DailyFinance, error) {
	var finances []models.DailyFinance
	if err := scope.SelectContext(ctx, &finances, `SELECT `+dailyFinanceColumns+` FROM daily_finances ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list finances: %w", err)
	}
	return finances, nil
}

// Insert stores a new payment record and fills the generated id.
func (r *DailyFinanceRepository) Insert(ctx context.Context, scope database.Scope, finance *models.DailyFinance) error {
	now := time.Now().UTC()
	finance.CreatedAt = now
	finance.UpdatedAt = now
	const query = `INSERT INTO daily_finances (child_id, value, remaining, count, service, payment_date, notes, created_at, updated_at)
        VALUES (:child_id, :value, :remaining, :count, :service, :payment_date, :notes, :created_at, :updated_at)
        RETURNING id`
	id, err := insertReturningID(ctx, scope, query, finance)
	if err != nil {
		return fmt.Errorf("insert finance: %w", err)
	}
	finance.ID = id
	return nil
}

// Update persists a modified payment record and refreshes updated_at.
func (r *DailyFinanceRepository) Update(ctx context.Context, scope database.Scope, finance *models.DailyFinance) error {
	finance.UpdatedAt = time.Now().UTC()
	const query = `UPDATE daily_finances SET value = :value, remaining = :remaining, count = :count, service = :service, payment_date = :payment_date, notes = :notes, updated_at = :updated_at
        WHERE id = :id`
	if _, err := scope.NamedExecContext(ctx, query, finance); err != nil {
		return fmt.Errorf("update finance: %w", err)
	}
	return nil
}

// Delete removes a payment record and reports whether a row was hit.
func (r *DailyFinanceRepository) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	query := scope.Rebind(`DELETE FROM daily_finances WHERE id = ?`)
	res, err := scope.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete finance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete finance: %w", err)
	}
	return affected > 0, nil
}

// Monthly ledger table names. Three tables share one row shape.
const (
	TableMonthlyFullDay    = "monthly_finances_full_day"
	TableMonthlyIndividual = "monthly_finances_individual"
	TableMonthlyOverall    = "monthly_finances_overall"
)

const monthlyFinanceColumns = `id, month, income, expenses, net, notes, created_at, updated_at`

// MonthlyFinanceRepository manages one of the three monthly ledgers; the
// table is fixed at construction, never caller input.
type MonthlyFinanceRepository struct {
	table string
}

// NewMonthlyFinanceFullDayRepository manages the full-day ledger.
func NewMonthlyFinanceFullDayRepository() *MonthlyFinanceRepository {
	return &MonthlyFinanceRepository{table: TableMonthlyFullDay}
}

// NewMonthlyFinanceIndividualRepository manages the sessions ledger.
func NewMonthlyFinanceIndividualRepository() *MonthlyFinanceRepository {
	return &MonthlyFinanceRepository{table: TableMonthlyIndividual}
}

// NewMonthlyFinanceOverallRepository manages the overall ledger.
func NewMonthlyFinanceOverallRepository() *MonthlyFinanceRepository {
	return &MonthlyFinanceRepository{table: TableMonthlyOverall}
}

// FindByID fetches a ledger row by primary key.
func (r *MonthlyFinanceRepository) FindByID(ctx context.Context, scope database.Scope, id int) (*models.MonthlyFinance, error) {
	query := scope.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, monthlyFinanceColumns, r.table))
	var finance models.MonthlyFinance
	if err := scope.GetContext(ctx, &finance, query, id); err != nil {
		return nil, err
	}
	return &finance, nil
}

// FindByMonth fetches a ledger row by its month key.
func (r *MonthlyFinanceRepository) FindByMonth(ctx context.Context, scope database.Scope, month string) (*models.MonthlyFinance, error) {
	query := scope.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE month = ?`, monthlyFinanceColumns, r.table))
	var finance models.MonthlyFinance
	if err := scope.GetContext(ctx, &finance, query, month); err != nil {
		return nil, err
	}
	return &finance, nil
}

// ListAll returns the whole ledger in month order.
func (r *MonthlyFinanceRepository) ListAll(ctx context.Context, scope database.Scope) ([]models.MonthlyFinance, error) {
	var finances []models.MonthlyFinance
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY month`, monthlyFinanceColumns, r.table)
	if err := scope.SelectContext(ctx, &finances, query); err != nil {
		return nil, fmt.Errorf("list monthly finances: %w", err)
	}
	return finances, nil
}

// Insert stores a new ledger row and fills the generated id.
func (r *MonthlyFinanceRepository) Insert(ctx context.Context, scope database.Scope, finance *models.MonthlyFinance) error {
	now := time.Now().UTC()
	finance.CreatedAt = now
	finance.UpdatedAt = now
	query := fmt.Sprintf(`INSERT INTO %s (month, income, expenses, net, notes, created_at, updated_at)
        VALUES (:month, :income, :expenses, :net, :notes, :created_at, :updated_at)
        RETURNING id`, r.table)
	id, err := insertReturningID(ctx, scope, query, finance)
	if err != nil {
		return fmt.Errorf("insert monthly finance: %w", err)
	}
	finance.ID = id
	return nil
}

// Update persists a modified ledger row and refreshes updated_at.
func (r *MonthlyFinanceRepository) Update(ctx context.Context, scope database.Scope, finance *models.MonthlyFinance) error {
	finance.UpdatedAt = time.Now().UTC()
	query := fmt.Sprintf(`UPDATE %s SET income = :income, expenses = :expenses, net = :net, notes = :notes, updated_at = :updated_at
        WHERE id = :id`, r.table)
	if _, err := scope.NamedExecContext(ctx, query, finance); err != nil {
		return fmt.Errorf("update monthly finance: %w", err)
	}
	return nil
}

// Delete removes a ledger row and reports whether a row was hit.
func (r *MonthlyFinanceRepository) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	query := scope.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, r.table))
	res, err := scope.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete monthly finance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete monthly finance: %w", err)
	}
	return affected > 0, nil
}
