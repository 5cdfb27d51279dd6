package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nour-apps/nursery-core/internal/dto"
	"github.com/nour-apps/nursery-core/internal/mapper"
	"github.com/nour-apps/nursery-core/internal/models"
	"github.com/nour-apps/nursery-core/pkg/database"
	appErrors "github.com/nour-apps/nursery-core/pkg/errors"
)

type dailyFinanceRepository interface {
	FindByID(ctx context.Context, scope database.Scope, id int) (*models.DailyFinance, error)
	ListByChildID(ctx context.Context, scope database.Scope, childID int) ([]models.DailyFinance, error)
	ListAll(ctx context.Context, scope database.Scope) ([]models.DailyFinance, error)
	Insert(ctx context.Context, scope database.Scope, finance *models.DailyFinance) error
	Update(ctx context.Context, scope database.Scope, finance *models.DailyFinance) error
	Delete(ctx context.Context, scope database.Scope, id int) (bool, error)
}

// DailyFinanceService manages per-child payment records.
type DailyFinanceService struct {
	repo      dailyFinanceRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDailyFinanceService constructs the daily finance service.
func NewDailyFinanceService(repo dailyFinanceRepository, validate *validator.Validate, logger *zap.Logger) *DailyFinanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DailyFinanceService{repo: repo, validator: validate, logger: logger}
}

// Create records a payment.
func (s *DailyFinanceService) Create(ctx context.Context, scope database.Scope, req dto.CreateDailyFinance) (*dto.DailyFinance, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid finance payload")
	}
	finance := mapper.NewDailyFinanceFromCreate(req)
	if err := s.repo.Insert(ctx, scope, finance); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create finance record")
	}
	return mapper.DailyFinanceToDTO(finance), nil
}

// Get returns a payment record by id.
func (s *DailyFinanceService) Get(ctx context.Context, scope database.Scope, id int) (*dto.DailyFinance, error) {
	finance, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "finance record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load finance record")
	}
	return mapper.DailyFinanceToDTO(finance), nil
}

// ListByChildID returns every payment recorded for one child.
func (s *DailyFinanceService) ListByChildID(ctx context.Context, scope database.Scope, childID int) ([]dto.DailyFinance, error) {
	finances, err := s.repo.ListByChildID(ctx, scope, childID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list finance records")
	}
	return dailyFinancesToDTOs(finances), nil
}

// ListAll returns every payment record.
func (s *DailyFinanceService) ListAll(ctx context.Context, scope database.Scope) ([]dto.DailyFinance, error) {
	finances, err := s.repo.ListAll(ctx, scope)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list finance records")
	}
	return dailyFinancesToDTOs(finances), nil
}

// Update applies a partial patch to a payment record.
func (s *DailyFinanceService) Update(ctx context.Context, scope database.Scope, id int, patch dto.UpdateDailyFinance) (*dto.DailyFinance, error) {
	finance, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "finance record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load finance record")
	}
	mapper.ApplyDailyFinancePatch(finance, patch)
	if err := s.repo.Update(ctx, scope, finance); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update finance record")
	}
	return mapper.DailyFinanceToDTO(finance), nil
}

// Delete hard-deletes a payment record.
func (s *DailyFinanceService) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, scope, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to delete finance record")
	}
	return deleted, nil
}

func dailyFinancesToDTOs(finances []models.DailyFinance) []dto.DailyFinance {
	out := make([]dto.DailyFinance, 0, len(finances))
	for i := range finances {
		out = append(out, *mapper.DailyFinanceToDTO(&finances[i]))
	}
	return out
}

type monthlyFinanceRepository interface {
	FindByID(ctx context.Context, scope database.Scope, id int) (*models.MonthlyFinance, error)
	FindByMonth(ctx context.Context, scope database.Scope, month string) (*models.MonthlyFinance, error)
	ListAll(ctx context.Context, scope database.Scope) ([]models.MonthlyFinance, error)
	Insert(ctx context.Context, scope database.Scope, finance *models.MonthlyFinance) error
	Update(ctx context.Context, scope database.Scope, finance *models.MonthlyFinance) error
	Delete(ctx context.Context, scope database.Scope, id int) (bool, error)
}

// MonthlyFinanceService manages one monthly ledger. Construct three of
// them, one per ledger repository.
type MonthlyFinanceService struct {
	repo      monthlyFinanceRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMonthlyFinanceService constructs a ledger service over the given
// ledger repository.
func NewMonthlyFinanceService(repo monthlyFinanceRepository, validate *validator.Validate, logger *zap.Logger) *MonthlyFinanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MonthlyFinanceService{repo: repo, validator: validate, logger: logger}
}

// Create inserts a ledger row; a duplicate month is a conflict.
func (s *MonthlyFinanceService) Create(ctx context.Context, scope database.Scope, req dto.CreateMonthlyFinance) (*dto.MonthlyFinance, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid monthly finance payload")
	}
	finance := mapper.NewMonthlyFinanceFromCreate(req)
	if err := s.repo.Insert(ctx, scope, finance); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "month already recorded")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create monthly finance")
	}
	return mapper.MonthlyFinanceToDTO(finance), nil
}

// Get returns a ledger row by id.
func (s *MonthlyFinanceService) Get(ctx context.Context, scope database.Scope, id int) (*dto.MonthlyFinance, error) {
	finance, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "monthly finance not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load monthly finance")
	}
	return mapper.MonthlyFinanceToDTO(finance), nil
}

// GetByMonth returns a ledger row by its month key.
func (s *MonthlyFinanceService) GetByMonth(ctx context.Context, scope database.Scope, month string) (*dto.MonthlyFinance, error) {
	finance, err := s.repo.FindByMonth(ctx, scope, month)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "monthly finance not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load monthly finance")
	}
	return mapper.MonthlyFinanceToDTO(finance), nil
}

// ListAll returns the whole ledger in month order.
func (s *MonthlyFinanceService) ListAll(ctx context.Context, scope database.Scope) ([]dto.MonthlyFinance, error) {
	finances, err := s.repo.ListAll(ctx, scope)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list monthly finances")
	}
	out := make([]dto.MonthlyFinance, 0, len(finances))
	for i := range finances {
		out = append(out, *mapper.MonthlyFinanceToDTO(&finances[i]))
	}
	return out, nil
}

// Update applies a partial patch to a ledger row. The month key stays put.
func (s *MonthlyFinanceService) Update(ctx context.Context, scope database.Scope, id int, patch dto.UpdateMonthlyFinance) (*dto.MonthlyFinance, error) {
	finance, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "monthly finance not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load monthly finance")
	}
	mapper.ApplyMonthlyFinancePatch(finance, patch)
	if err := s.repo.Update(ctx, scope, finance); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update monthly finance")
	}
	return mapper.MonthlyFinanceToDTO(finance), nil
}

// Delete hard-deletes a ledger row.
func (s *MonthlyFinanceService) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, scope, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to delete monthly finance")
	}
	return deleted, nil
}
