package service

import (
	"context"
	"database/sql"
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

type mockVisitRepo struct {
	visits map[int]models.DailyVisit
	nextID int
}

func (m *mockVisitRepo) FindByID(ctx context.Context, scope database.Scope, id int) (*models.DailyVisit, error) {
	if v, ok := m.visits[id]; ok {
		return &v, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockVisitRepo) ListByChildID(ctx context.Context, scope database.Scope, childID int) ([]models.DailyVisit, error) {
	out := []models.DailyVisit{}
	for _, v := range m.visits {
		if v.ChildID == childID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockVisitRepo) ListAll(ctx context.Context, scope database.Scope) ([]models.DailyVisit, error) {
	out := make([]models.DailyVisit, 0, len(m.visits))
	for _, v := range m.visits {
		out = append(out, v)
	}
	return out, nil
}

func (m *mockVisitRepo) Insert(ctx context.Context, scope database.Scope, visit *models.DailyVisit) error {
	if m.visits == nil {
		m.visits = make(map[int]models.DailyVisit)
	}
	m.nextID++
	visit.ID = m.nextID
	m.visits[visit.ID] = *visit
	return nil
}

func (m *mockVisitRepo) Update(ctx context.Context, scope database.Scope, visit *models.DailyVisit) error {
	m.visits[visit.ID] = *visit
	return nil
}

func (m *mockVisitRepo) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	if _, ok := m.visits[id]; ok {
		delete(m.visits, id)
		return true, nil
	}
	return false, nil
}

func TestDailyVisitServiceCreate(t *testing.T) {
	repo := &mockVisitRepo{}
	svc := NewDailyVisitService(repo, validator.New(), zap.NewNop())

	visit, err := svc.Create(context.Background(), nil, dto.CreateDailyVisit{
		ChildID:   101,
		Value:     decimal.NewFromInt(10),
		VisitDate: time.Now(),
		Purpose:   "assessment",
	})
	require.NoError(t, err)
	assert.NotZero(t, visit.ID)
	assert.Equal(t, 101, visit.ChildID)
}

func TestDailyVisitServiceCreateRequiresVisitDate(t *testing.T) {
	svc := NewDailyVisitService(&mockVisitRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), nil, dto.CreateDailyVisit{ChildID: 101})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestDailyVisitServiceUpdatePartialPatch(t *testing.T) {
	repo := &mockVisitRepo{visits: map[int]models.DailyVisit{1: {
		ID: 1, ChildID: 101, Value: decimal.NewFromInt(10), Purpose: "assessment",
	}}, nextID: 1}
	svc := NewDailyVisitService(repo, validator.New(), zap.NewNop())

	notes := "follow-up booked"
	updated, err := svc.Update(context.Background(), nil, 1, dto.UpdateDailyVisit{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, "assessment", updated.Purpose)
	assert.True(t, updated.Value.Equal(decimal.NewFromInt(10)))
}

func TestDailyVisitServiceDeleteMiss(t *testing.T) {
	svc := NewDailyVisitService(&mockVisitRepo{}, validator.New(), zap.NewNop())

	deleted, err := svc.Delete(context.Background(), nil, 9)
	require.NoError(t, err)
	assert.False(t, deleted)
}
