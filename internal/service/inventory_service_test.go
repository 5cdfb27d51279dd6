package service

import (
	"context"
	"database/sql"
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

type mockTrainingToolRepo struct {
	tools  map[int]models.TrainingTool
	nextID int
}

func (m *mockTrainingToolRepo) FindByID(ctx context.Context, scope database.Scope, id int) (*models.TrainingTool, error) {
	if tool, ok := m.tools[id]; ok {
		return &tool, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockTrainingToolRepo) ListAll(ctx context.Context, scope database.Scope) ([]models.TrainingTool, error) {
	out := make([]models.TrainingTool, 0, len(m.tools))
	for _, tool := range m.tools {
		out = append(out, tool)
	}
	return out, nil
}

func (m *mockTrainingToolRepo) Insert(ctx context.Context, scope database.Scope, tool *models.TrainingTool) error {
	if m.tools == nil {
		m.tools = make(map[int]models.TrainingTool)
	}
	m.nextID++
	tool.ID = m.nextID
	m.tools[tool.ID] = *tool
	return nil
}

func (m *mockTrainingToolRepo) Update(ctx context.Context, scope database.Scope, tool *models.TrainingTool) error {
	m.tools[tool.ID] = *tool
	return nil
}

func (m *mockTrainingToolRepo) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	if _, ok := m.tools[id]; ok {
		delete(m.tools, id)
		return true, nil
	}
	return false, nil
}

func TestTrainingToolServiceCreate(t *testing.T) {
	repo := &mockTrainingToolRepo{}
	svc := NewTrainingToolService(repo, validator.New(), zap.NewNop())

	tool, err := svc.Create(context.Background(), nil, dto.CreateTrainingTool{Name: "sensory blocks", Quantity: 3})
	require.NoError(t, err)
	assert.NotZero(t, tool.ID)
	assert.Equal(t, 3, tool.Quantity)
}

func TestTrainingToolServiceCreateRequiresName(t *testing.T) {
	svc := NewTrainingToolService(&mockTrainingToolRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), nil, dto.CreateTrainingTool{Quantity: 3})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestTrainingToolServiceUpdateQuantity(t *testing.T) {
	repo := &mockTrainingToolRepo{tools: map[int]models.TrainingTool{1: {ID: 1, Name: "sensory blocks", Quantity: 3}}, nextID: 1}
	svc := NewTrainingToolService(repo, validator.New(), zap.NewNop())

	quantity := 5
	updated, err := svc.Update(context.Background(), nil, 1, dto.UpdateTrainingTool{Quantity: &quantity})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, "sensory blocks", updated.Name)
}

type mockBookRepo struct {
	books  map[int]models.BookForSale
	nextID int
}

func (m *mockBookRepo) FindByID(ctx context.Context, scope database.Scope, id int) (*models.BookForSale, error) {
	if b, ok := m.books[id]; ok {
		return &b, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockBookRepo) ListAll(ctx context.Context, scope database.Scope) ([]models.BookForSale, error) {
	out := make([]models.BookForSale, 0, len(m.books))
	for _, b := range m.books {
		out = append(out, b)
	}
	return out, nil
}

func (m *mockBookRepo) Insert(ctx context.Context, scope database.Scope, book *models.BookForSale) error {
	if m.books == nil {
		m.books = make(map[int]models.BookForSale)
	}
	m.nextID++
	book.ID = m.nextID
	m.books[book.ID] = *book
	return nil
}

func (m *mockBookRepo) Update(ctx context.Context, scope database.Scope, book *models.BookForSale) error {
	m.books[book.ID] = *book
	return nil
}

func (m *mockBookRepo) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	if _, ok := m.books[id]; ok {
		delete(m.books, id)
		return true, nil
	}
	return false, nil
}

func TestBookForSaleServicePricePatch(t *testing.T) {
	repo := &mockBookRepo{books: map[int]models.BookForSale{1: {
		ID: 1, Title: "First Words", Price: decimal.RequireFromString("7.50"), Quantity: 10,
	}}, nextID: 1}
	svc := NewBookForSaleService(repo, validator.New(), zap.NewNop())

	price := decimal.RequireFromString("8.25")
	updated, err := svc.Update(context.Background(), nil, 1, dto.UpdateBookForSale{Price: &price})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(price))
	assert.Equal(t, 10, updated.Quantity)
}

func TestBookForSaleServiceDelete(t *testing.T) {
	repo := &mockBookRepo{books: map[int]models.BookForSale{1: {ID: 1, Title: "First Words"}}, nextID: 1}
	svc := NewBookForSaleService(repo, validator.New(), zap.NewNop())

	deleted, err := svc.Delete(context.Background(), nil, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.Get(context.Background(), nil, 1)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}
