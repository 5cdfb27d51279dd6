package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/nour-apps/nursery-core/internal/models"
	"github.com/nour-apps/nursery-core/pkg/database"
)

const fullDayColumns = `id, child_id, diagnosis, monthly_fee, attendance_status, birth_certificate_file, medical_report_file, diagnosis_report_file, guardian_id_file, notes, created_at, updated_at`

// FullDayProgramRepository manages persistence for full-day sub-records.
type FullDayProgramRepository struct{}

// NewFullDayProgramRepository constructs a FullDayProgramRepository.
func NewFullDayProgramRepository() *FullDayProgramRepository {
	return &FullDayProgramRepository{}
}

// FindByID fetches a full-day sub-record by primary key.
func (r *FullDayProgramRepository) FindByID(ctx context.Context, scope database.Scope, id int) (*models.FullDayProgram, error) {
	query := scope.Rebind(`SELECT ` + fullDayColumns + ` FROM full_day_programs WHERE id = ?`)
	var program models.FullDayProgram
	if err := scope.GetContext(ctx, &program, query, id); err != nil {
		return nil, err
	}
	return &program, nil
}

// FindByChildID fetches the sub-record linked to a child, if any.
func (r *FullDayProgramRepository) FindByChildID(ctx context.Context, scope database.Scope, childID int) (*models.FullDayProgram, error) {
	query := scope.Rebind(`SELECT ` + fullDayColumns + ` FROM full_day_programs WHERE child_id = ?`)
	var program models.FullDayProgram
	if err := scope.GetContext(ctx, &program, query, childID); err != nil {
		return nil, err
	}
	return &program, nil
}

// ListAll returns every full-day sub-record in id order.
func (r *FullDayProgramRepository) ListAll(ctx context.Context, scope database.Scope) ([]models.FullDayProgram, error) {
	var programs []models.FullDayProgram
	if err := scope.SelectContext(ctx, &programs, `SELECT `+fullDayColumns+` FROM full_day_programs ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list full-day programs: %w", err)
	}
	return programs, nil
}

// Insert stores a new sub-record and fills the generated id.
func (r *FullDayProgramRepository) Insert(ctx context.Context, scope database.Scope, program *models.FullDayProgram) error {
	now := time.Now().UTC()
	program.CreatedAt = now
	program.UpdatedAt = now
	const query = `INSERT INTO full_day_programs (child_id, diagnosis, monthly_fee, attendance_status, birth_certificate_file, medical_report_file, diagnosis_report_file, guardian_id_file, notes, created_at, updated_at)
        VALUES (:child_id, :diagnosis, :monthly_fee, :attendance_status, :birth_certificate_file, :medical_report_file, :diagnosis_report_file, :guardian_id_file, :notes, :created_at, :updated_at)
        RETURNING id`
	id, err := insertReturningID(ctx, scope, query, program)
	if err != nil {
		return fmt.Errorf("insert full-day program: %w", err)
	}
	program.ID = id
	return nil
}

// Update persists a modified sub-record and refreshes updated_at.
func (r *FullDayProgramRepository) Update(ctx context.Context, scope database.Scope, program *models.FullDayProgram) error {
	program.UpdatedAt = time.Now().UTC()
	const query = `UPDATE full_day_programs SET diagnosis = :diagnosis, monthly_fee = :monthly_fee, attendance_status = :attendance_status, birth_certificate_file = :birth_certificate_file, medical_report_file = :medical_report_file, diagnosis_report_file = :diagnosis_report_file, guardian_id_file = :guardian_id_file, notes = :notes, updated_at = :updated_at
        WHERE id = :id`
	if _, err := scope.NamedExecContext(ctx, query, program); err != nil {
		return fmt.Errorf("update full-day program: %w", err)
	}
	return nil
}

// Delete removes a sub-record and reports whether a row was hit.
func (r *FullDayProgramRepository) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	query := scope.Rebind(`DELETE FROM full_day_programs WHERE id = ?`)
	res, err := scope.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete full-day program: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete full-day program: %w", err)
	}
	return affected > 0, nil
}

const sessionColumns = `id, child_id, diagnosis, session_fee, monthly_sessions, attended_sessions, specialist_name, report_file, plan_file, notes, created_at, updated_at`

// IndividualSessionRepository manages persistence for session sub-records.
type IndividualSessionRepository struct{}

// NewIndividualSessionRepository constructs an IndividualSessionRepository.
func NewIndividualSessionRepository() *IndividualSessionRepository {
	return &IndividualSessionRepository{}
}

// FindByID fetches a session sub-record by primary key.
func (r *IndividualSessionRepository) FindByID(ctx context.Context, scope database.Scope, id int) (*models.IndividualSession, error) {
	query := scope.Rebind(`SELECT ` + sessionColumns + ` FROM individual_sessions WHERE id = ?`)
	var session models.IndividualSession
	if err := scope.GetContext(ctx, &session, query, id); err != nil {
		return nil, err
	}
	return &session, nil
}

// ListByChildID returns every session sub-record linked to a child.
func (r *IndividualSessionRepository) ListByChildID(ctx context.Context, scope database.Scope, childID int) ([]models.IndividualSession, error) {
	query := scope.Rebind(`SELECT ` + sessionColumns + ` FROM individual_sessions WHERE child_id = ? ORDER BY id`)
	var sessions []models.IndividualSession
	if err := scope.SelectContext(ctx, &sessions, query, childID); err != nil {
		return nil, fmt.Errorf("list sessions by child: %w", err)
	}
	return sessions, nil
}

// ListAll returns every session sub-record in id order.
func (r *IndividualSessionRepository) ListAll(ctx context.Context, scope database.Scope) ([]models.IndividualSession, error) {
	var sessions []models.IndividualSession
	if err := scope.SelectContext(ctx, &sessions, `SELECT `+sessionColumns+` FROM individual_sessions ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// Insert stores a new sub-record and fills the generated id.
func (r *IndividualSessionRepository) Insert(ctx context.Context, scope database.Scope, session *models.IndividualSession) error {
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	const query = `INSERT INTO individual_sessions (child_id, diagnosis, session_fee, monthly_sessions, attended_sessions, specialist_name, report_file, plan_file, notes, created_at, updated_at)
        VALUES (:child_id, :diagnosis, :session_fee, :monthly_sessions, :attended_sessions, :specialist_name, :report_file, :plan_file, :notes, :created_at, :updated_at)
        RETURNING id`
	id, err := insertReturningID(ctx, scope, query, session)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	session.ID = id
	return nil
}

// Update persists a modified sub-record and refreshes updated_at.
func (r *IndividualSessionRepository) Update(ctx context.Context, scope database.Scope, session *models.IndividualSession) error {
	session.UpdatedAt = time.Now().UTC()
	const query = `UPDATE individual_sessions SET diagnosis = :diagnosis, session_fee = :session_fee, monthly_sessions = :monthly_sessions, attended_sessions = :attended_sessions, specialist_name = :specialist_name, report_file = :report_file, plan_file = :plan_file, notes = :notes, updated_at = :updated_at
        WHERE id = :id`
	if _, err := scope.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

// Delete removes a sub-record and reports whether a row was hit.
func (r *IndividualSessionRepository) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	query := scope.Rebind(`DELETE FROM individual_sessions WHERE id = ?`)
	res, err := scope.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	return affected > 0, nil
}
