package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

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

type mockMonthlyFinanceRepo struct {
	byMonth   map[string]models.MonthlyFinance
	nextID    int
	insertErr error
}

func (m *mockMonthlyFinanceRepo) FindByID(ctx context.Context, scope database.Scope, id int) (*models.MonthlyFinance, error) {
	for _, f := range m.byMonth {
		if f.ID == id {
			return &f, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockMonthlyFinanceRepo) FindByMonth(ctx context.Context, scope database.Scope, month string) (*models.MonthlyFinance, error) {
	if f, ok := m.byMonth[month]; ok {
		return &f, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockMonthlyFinanceRepo) ListAll(ctx context.Context, scope database.Scope) ([]models.MonthlyFinance, error) {
	out := make([]models.MonthlyFinance, 0, len(m.byMonth))
	for _, f := range m.byMonth {
		out = append(out, f)
	}
	return out, nil
}

func (m *mockMonthlyFinanceRepo) Insert(ctx context.Context, scope database.Scope, finance *models.MonthlyFinance) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if _, ok := m.byMonth[finance.Month]; ok {
		return errors.New("UNIQUE constraint failed: monthly_finances_overall.month")
	}
	if m.byMonth == nil {
		m.byMonth = make(map[string]models.MonthlyFinance)
	}
	m.nextID++
	finance.ID = m.nextID
	m.byMonth[finance.Month] = *finance
	return nil
}

func (m *mockMonthlyFinanceRepo) Update(ctx context.Context, scope database.Scope, finance *models.MonthlyFinance) error {
	m.byMonth[finance.Month] = *finance
	return nil
}

func (m *mockMonthlyFinanceRepo) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	for month, f := range m.byMonth {
		if f.ID == id {
			delete(m.byMonth, month)
			return true, nil
		}
	}
	return false, nil
}

func TestMonthlyFinanceServiceCreate(t *testing.T) {
	repo := &mockMonthlyFinanceRepo{}
	svc := NewMonthlyFinanceService(repo, validator.New(), zap.NewNop())

	finance, err := svc.Create(context.Background(), nil, dto.CreateMonthlyFinance{
		Month:    "2026-01",
		Income:   decimal.NewFromInt(1200),
		Expenses: decimal.NewFromInt(800),
		Net:      decimal.NewFromInt(400),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-01", finance.Month)
	assert.NotZero(t, finance.ID)
}

func TestMonthlyFinanceServiceCreateDuplicateMonth(t *testing.T) {
	repo := &mockMonthlyFinanceRepo{byMonth: map[string]models.MonthlyFinance{"2026-01": {ID: 1, Month: "2026-01"}}}
	svc := NewMonthlyFinanceService(repo, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), nil, dto.CreateMonthlyFinance{Month: "2026-01"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))
}

func TestMonthlyFinanceServiceGetByMonthMiss(t *testing.T) {
	repo := &mockMonthlyFinanceRepo{}
	svc := NewMonthlyFinanceService(repo, validator.New(), zap.NewNop())

	_, err := svc.GetByMonth(context.Background(), nil, "2026-02")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestMonthlyFinanceServiceUpdateKeepsMonth(t *testing.T) {
	repo := &mockMonthlyFinanceRepo{byMonth: map[string]models.MonthlyFinance{
		"2026-01": {ID: 1, Month: "2026-01", Income: decimal.NewFromInt(100)},
	}}
	svc := NewMonthlyFinanceService(repo, validator.New(), zap.NewNop())

	income := decimal.NewFromInt(150)
	updated, err := svc.Update(context.Background(), nil, 1, dto.UpdateMonthlyFinance{Income: &income})
	require.NoError(t, err)
	assert.Equal(t, "2026-01", updated.Month)
	assert.True(t, updated.Income.Equal(income))
}

type mockDailyFinanceRepo struct {
	finances map[int]models.DailyFinance
	nextID   int
}

func (m *mockDailyFinanceRepo) FindByID(ctx context.Context, scope database.Scope, id int) (*models.DailyFinance, error) {
	if f, ok := m.finances[id]; ok {
		return &f, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockDailyFinanceRepo) ListByChildID(ctx context.Context, scope database.Scope, childID int) ([]models.DailyFinance, error) {
	out := []models.DailyFinance{}
	for _, f := range m.finances {
		if f.ChildID == childID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *mockDailyFinanceRepo) ListAll(ctx context.Context, scope database.Scope) ([]models.DailyFinance, error) {
	out := make([]models.DailyFinance, 0, len(m.finances))
	for _, f := range m.finances {
		out = append(out, f)
	}
	return out, nil
}

func (m *mockDailyFinanceRepo) Insert(ctx context.Context, scope database.Scope, finance *models.DailyFinance) error {
	if m.finances == nil {
		m.finances = make(map[int]models.DailyFinance)
	}
	m.nextID++
	finance.ID = m.nextID
	m.finances[finance.ID] = *finance
	return nil
}

func (m *mockDailyFinanceRepo) Update(ctx context.Context, scope database.Scope, finance *models.DailyFinance) error {
	m.finances[finance.ID] = *finance
	return nil
}

func (m *mockDailyFinanceRepo) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	if _, ok := m.finances[id]; ok {
		delete(m.finances, id)
		return true, nil
	}
	return false, nil
}

func TestDailyFinanceServiceCreate(t *testing.T) {
	repo := &mockDailyFinanceRepo{}
	svc := NewDailyFinanceService(repo, validator.New(), zap.NewNop())

	finance, err := svc.Create(context.Background(), nil, dto.CreateDailyFinance{
		ChildID:     101,
		Value:       decimal.RequireFromString("25.50"),
		Count:       1,
		Service:     "session",
		PaymentDate: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, 101, finance.ChildID)
	assert.True(t, finance.Value.Equal(decimal.RequireFromString("25.5")))
	assert.NotZero(t, finance.ID)
}

func TestDailyFinanceServiceCreateRejectsLowChildID(t *testing.T) {
	repo := &mockDailyFinanceRepo{}
	svc := NewDailyFinanceService(repo, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), nil, dto.CreateDailyFinance{ChildID: 5, PaymentDate: time.Now()})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestDailyFinanceServiceUpdatePartialPatch(t *testing.T) {
	repo := &mockDailyFinanceRepo{finances: map[int]models.DailyFinance{1: {
		ID: 1, ChildID: 101, Value: decimal.NewFromInt(50), Service: "full day",
	}}, nextID: 1}
	svc := NewDailyFinanceService(repo, validator.New(), zap.NewNop())

	remaining := decimal.NewFromInt(20)
	updated, err := svc.Update(context.Background(), nil, 1, dto.UpdateDailyFinance{Remaining: &remaining})
	require.NoError(t, err)
	assert.True(t, updated.Remaining.Equal(remaining))
	assert.True(t, updated.Value.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "full day", updated.Service)
}

func TestDailyFinanceServiceDeleteMiss(t *testing.T) {
	repo := &mockDailyFinanceRepo{}
	svc := NewDailyFinanceService(repo, validator.New(), zap.NewNop())

	deleted, err := svc.Delete(context.Background(), nil, 42)
	require.NoError(t, err)
	assert.False(t, deleted)
}
