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

type dailyVisitRepository interface {
	FindByID(ctx context.Context, scope database.Scope, id int) (*models.DailyVisit, error)
	ListByChildID(ctx context.Context, scope database.Scope, childID int) ([]models.DailyVisit, error)
	ListAll(ctx context.Context, scope database.Scope) ([]models.DailyVisit, error)
	Insert(ctx context.Context, scope database.Scope, visit *models.DailyVisit) error
	Update(ctx context.Context, scope database.Scope, visit *models.DailyVisit) error
	Delete(ctx context.Context, scope database.Scope, id int) (bool, error)
}

// DailyVisitService manages one-off visit records.
type DailyVisitService struct {
	repo      dailyVisitRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDailyVisitService constructs the visit service.
func NewDailyVisitService(repo dailyVisitRepository, validate *validator.Validate, logger *zap.Logger) *DailyVisitService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DailyVisitService{repo: repo, validator: validate, logger: logger}
}

// Create records a new visit.
func (s *DailyVisitService) Create(ctx context.Context, scope database.Scope, req dto.CreateDailyVisit) (*dto.DailyVisit, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid visit payload")
	}
	visit := mapper.NewDailyVisitFromCreate(req)
	if err := s.repo.Insert(ctx, scope, visit); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create visit")
	}
	return mapper.DailyVisitToDTO(visit), nil
}

// Get returns a visit by id.
func (s *DailyVisitService) Get(ctx context.Context, scope database.Scope, id int) (*dto.DailyVisit, error) {
	visit, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "visit not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load visit")
	}
	return mapper.DailyVisitToDTO(visit), nil
}

// ListByChildID returns every visit recorded for one child.
func (s *DailyVisitService) ListByChildID(ctx context.Context, scope database.Scope, childID int) ([]dto.DailyVisit, error) {
	visits, err := s.repo.ListByChildID(ctx, scope, childID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list visits")
	}
	return visitsToDTOs(visits), nil
}

// ListAll returns every visit.
func (s *DailyVisitService) ListAll(ctx context.Context, scope database.Scope) ([]dto.DailyVisit, error) {
	visits, err := s.repo.ListAll(ctx, scope)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list visits")
	}
	return visitsToDTOs(visits), nil
}

// Update applies a partial patch to a visit.
func (s *DailyVisitService) Update(ctx context.Context, scope database.Scope, id int, patch dto.UpdateDailyVisit) (*dto.DailyVisit, error) {
	visit, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "visit not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load visit")
	}
	mapper.ApplyDailyVisitPatch(visit, patch)
	if err := s.repo.Update(ctx, scope, visit); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update visit")
	}
	return mapper.DailyVisitToDTO(visit), nil
}

// Delete hard-deletes a visit.
func (s *DailyVisitService) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, scope, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to delete visit")
	}
	return deleted, nil
}

func visitsToDTOs(visits []models.DailyVisit) []dto.DailyVisit {
	out := make([]dto.DailyVisit, 0, len(visits))
	for i := range visits {
		out = append(out, *mapper.DailyVisitToDTO(&visits[i]))
	}
	return out
}
