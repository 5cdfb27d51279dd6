package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nour-apps/nursery-core/internal/dto"
	"github.com/nour-apps/nursery-core/internal/models"
	"github.com/nour-apps/nursery-core/pkg/database"
	appErrors "github.com/nour-apps/nursery-core/pkg/errors"
)

type mockFullDayRepo struct {
	programs map[int]models.FullDayProgram
	nextID   int
}

func (m *mockFullDayRepo) FindByID(ctx context.Context, scope database.Scope, id int) (*models.FullDayProgram, error) {
	if p, ok := m.programs[id]; ok {
		return &p, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockFullDayRepo) FindByChildID(ctx context.Context, scope database.Scope, childID int) (*models.FullDayProgram, error) {
	for _, p := range m.programs {
		if p.ChildID == childID {
			p := p
			return &p, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockFullDayRepo) ListAll(ctx context.Context, scope database.Scope) ([]models.FullDayProgram, error) {
	out := make([]models.FullDayProgram, 0, len(m.programs))
	for _, p := range m.programs {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockFullDayRepo) Insert(ctx context.Context, scope database.Scope, program *models.FullDayProgram) error {
	for _, p := range m.programs {
		if p.ChildID == program.ChildID {
			return errors.New("UNIQUE constraint failed: full_day_programs.child_id")
		}
	}
	if m.programs == nil {
		m.programs = make(map[int]models.FullDayProgram)
	}
	m.nextID++
	program.ID = m.nextID
	m.programs[program.ID] = *program
	return nil
}

func (m *mockFullDayRepo) Update(ctx context.Context, scope database.Scope, program *models.FullDayProgram) error {
	m.programs[program.ID] = *program
	return nil
}

func (m *mockFullDayRepo) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	if _, ok := m.programs[id]; ok {
		delete(m.programs, id)
		return true, nil
	}
	return false, nil
}

func TestFullDayProgramServiceCreateSecondForChildConflicts(t *testing.T) {
	repo := &mockFullDayRepo{}
	svc := NewFullDayProgramService(repo, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), nil, dto.CreateFullDayProgram{ChildID: 101, MonthlyFee: decimal.NewFromInt(120)})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), nil, dto.CreateFullDayProgram{ChildID: 101})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))
}

func TestFullDayProgramServiceGetByChildID(t *testing.T) {
	repo := &mockFullDayRepo{programs: map[int]models.FullDayProgram{1: {ID: 1, ChildID: 101, Diagnosis: "speech delay"}}}
	svc := NewFullDayProgramService(repo, validator.New(), zap.NewNop())

	program, err := svc.GetByChildID(context.Background(), nil, 101)
	require.NoError(t, err)
	assert.Equal(t, "speech delay", program.Diagnosis)

	_, err = svc.GetByChildID(context.Background(), nil, 102)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestFullDayProgramServiceUpdatePatchesDocuments(t *testing.T) {
	repo := &mockFullDayRepo{programs: map[int]models.FullDayProgram{1: {
		ID: 1, ChildID: 101, Diagnosis: "speech delay", MonthlyFee: decimal.NewFromInt(120),
	}}, nextID: 1}
	svc := NewFullDayProgramService(repo, validator.New(), zap.NewNop())

	report := "docs/medical/abc.pdf"
	updated, err := svc.Update(context.Background(), nil, 1, dto.UpdateFullDayProgram{MedicalReportFile: &report})
	require.NoError(t, err)
	assert.Equal(t, report, updated.MedicalReportFile)
	assert.Equal(t, "speech delay", updated.Diagnosis)
	assert.True(t, updated.MonthlyFee.Equal(decimal.NewFromInt(120)))
}

type mockSessionRepo struct {
	sessions map[int]models.IndividualSession
	nextID   int
}

func (m *mockSessionRepo) FindByID(ctx context.Context, scope database.Scope, id int) (*models.IndividualSession, error) {
	if s, ok := m.sessions[id]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockSessionRepo) ListByChildID(ctx context.Context, scope database.Scope, childID int) ([]models.IndividualSession, error) {
	out := []models.IndividualSession{}
	for _, s := range m.sessions {
		if s.ChildID == childID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSessionRepo) ListAll(ctx context.Context, scope database.Scope) ([]models.IndividualSession, error) {
	out := make([]models.IndividualSession, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockSessionRepo) Insert(ctx context.Context, scope database.Scope, session *models.IndividualSession) error {
	if m.sessions == nil {
		m.sessions = make(map[int]models.IndividualSession)
	}
	m.nextID++
	session.ID = m.nextID
	m.sessions[session.ID] = *session
	return nil
}

func (m *mockSessionRepo) Update(ctx context.Context, scope database.Scope, session *models.IndividualSession) error {
	m.sessions[session.ID] = *session
	return nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	if _, ok := m.sessions[id]; ok {
		delete(m.sessions, id)
		return true, nil
	}
	return false, nil
}

func TestIndividualSessionServiceChildMayHaveSeveral(t *testing.T) {
	repo := &mockSessionRepo{}
	svc := NewIndividualSessionService(repo, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), nil, dto.CreateIndividualSession{ChildID: 101, MonthlySessions: 8})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), nil, dto.CreateIndividualSession{ChildID: 101, MonthlySessions: 4})
	require.NoError(t, err)

	sessions, err := svc.ListByChildID(context.Background(), nil, 101)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestIndividualSessionServiceUpdateAttendance(t *testing.T) {
	repo := &mockSessionRepo{sessions: map[int]models.IndividualSession{1: {
		ID: 1, ChildID: 101, MonthlySessions: 8, AttendedSessions: 2, SpecialistName: "Dr. Salma",
	}}, nextID: 1}
	svc := NewIndividualSessionService(repo, validator.New(), zap.NewNop())

	attended := 3
	updated, err := svc.Update(context.Background(), nil, 1, dto.UpdateIndividualSession{AttendedSessions: &attended})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.AttendedSessions)
	assert.Equal(t, "Dr. Salma", updated.SpecialistName)
	assert.Equal(t, 8, updated.MonthlySessions)
}
