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

type childRepository interface {
	FindByID(ctx context.Context, scope database.Scope, id int) (*models.Child, error)
	ExistsIncludingDeleted(ctx context.Context, scope database.Scope, id int) (bool, error)
	ListAll(ctx context.Context, scope database.Scope) ([]models.Child, error)
	Search(ctx context.Context, scope database.Scope, search string) ([]models.Child, error)
	Insert(ctx context.Context, scope database.Scope, child *models.Child) error
	Update(ctx context.Context, scope database.Scope, child *models.Child) error
	SoftDelete(ctx context.Context, scope database.Scope, id int) (bool, error)
	CountByType(ctx context.Context, scope database.Scope, childType models.ChildType) (int, error)
}

type fullDayProgramInserter interface {
	Insert(ctx context.Context, scope database.Scope, program *models.FullDayProgram) error
}

type individualSessionInserter interface {
	Insert(ctx context.Context, scope database.Scope, session *models.IndividualSession) error
}

// ChildService handles registration, search, classification and
// soft-deletion of children. Every method runs on the caller's scope.
type ChildService struct {
	repo      childRepository
	fullDay   fullDayProgramInserter
	sessions  individualSessionInserter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewChildService constructs the child service.
func NewChildService(repo childRepository, fullDay fullDayProgramInserter, sessions individualSessionInserter, validate *validator.Validate, logger *zap.Logger) *ChildService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChildService{repo: repo, fullDay: fullDay, sessions: sessions, validator: validate, logger: logger}
}

// Create registers a child under a staff-assigned id. The id must exceed
// models.MinChildID and must never have been used before, soft-deleted rows
// included.
func (s *ChildService) Create(ctx context.Context, scope database.Scope, req dto.CreateChild) (*dto.Child, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid child payload")
	}
	used, err := s.repo.ExistsIncludingDeleted(ctx, scope, req.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to check child id")
	}
	if used {
		return nil, appErrors.Clone(appErrors.ErrConflict, "child id already used")
	}
	child := mapper.NewChildFromCreate(req)
	if err := s.repo.Insert(ctx, scope, child); err != nil {
		// Lost the race on the id: same conflict as the pre-check.
		if database.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "child id already used")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create child")
	}
	s.logger.Info("child registered", zap.Int("id", child.ID))
	return mapper.ChildToDTO(child), nil
}

// Get returns a non-deleted child by id.
func (s *ChildService) Get(ctx context.Context, scope database.Scope, id int) (*dto.Child, error) {
	child, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "child not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load child")
	}
	return mapper.ChildToDTO(child), nil
}

// ListAll returns every non-deleted child.
func (s *ChildService) ListAll(ctx context.Context, scope database.Scope) ([]dto.Child, error) {
	children, err := s.repo.ListAll(ctx, scope)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list children")
	}
	return childrenToDTOs(children), nil
}

// Search matches the query case-insensitively against name, phone, both
// parents' jobs and notes. An empty query behaves like ListAll.
func (s *ChildService) Search(ctx context.Context, scope database.Scope, query string) ([]dto.Child, error) {
	children, err := s.repo.Search(ctx, scope, query)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to search children")
	}
	return childrenToDTOs(children), nil
}

// Update applies a partial patch to a non-deleted child and refreshes its
// updated_at stamp.
func (s *ChildService) Update(ctx context.Context, scope database.Scope, id int, patch dto.UpdateChild) (*dto.Child, error) {
	child, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "child not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load child")
	}
	mapper.ApplyChildPatch(child, patch)
	if err := s.repo.Update(ctx, scope, child); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update child")
	}
	return mapper.ChildToDTO(child), nil
}

// Delete soft-deletes a child. It reports false when no live row matched;
// the stored row and its sub-records remain.
func (s *ChildService) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	deleted, err := s.repo.SoftDelete(ctx, scope, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to delete child")
	}
	if deleted {
		s.logger.Info("child soft-deleted", zap.Int("id", id))
	}
	return deleted, nil
}

// CountByType counts non-deleted children with the given classification.
func (s *ChildService) CountByType(ctx context.Context, scope database.Scope, childType models.ChildType) (int, error) {
	count, err := s.repo.CountByType(ctx, scope, childType)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to count children")
	}
	return count, nil
}

// CountFullDay counts non-deleted full-day children.
func (s *ChildService) CountFullDay(ctx context.Context, scope database.Scope) (int, error) {
	return s.CountByType(ctx, scope, models.ChildTypeFullDay)
}

// CountSessions counts non-deleted session-based children.
func (s *ChildService) CountSessions(ctx context.Context, scope database.Scope) (int, error) {
	return s.CountByType(ctx, scope, models.ChildTypeSession)
}

// ClassifyFullDay moves an unclassified child into the full-day program and
// creates its sub-record. Both writes ride the same scope, so the caller's
// transaction makes the pair atomic. A child that already has a type is
// rejected; re-classification is a product decision this layer refuses to
// guess at.
func (s *ChildService) ClassifyFullDay(ctx context.Context, scope database.Scope, childID int, req dto.CreateFullDayProgram) (*dto.FullDayProgram, error) {
	child, err := s.loadUnclassified(ctx, scope, childID)
	if err != nil {
		return nil, err
	}
	req.ChildID = childID
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid full-day payload")
	}
	child.ChildType = models.ChildTypeFullDay
	if err := s.repo.Update(ctx, scope, child); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to classify child")
	}
	program := mapper.NewFullDayProgramFromCreate(req)
	if err := s.fullDay.Insert(ctx, scope, program); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create full-day program")
	}
	s.logger.Info("child classified", zap.Int("id", childID), zap.String("type", string(models.ChildTypeFullDay)))
	return mapper.FullDayProgramToDTO(program), nil
}

// ClassifySessions moves an unclassified child into session-based care and
// creates its first session sub-record, atomically with the type change.
func (s *ChildService) ClassifySessions(ctx context.Context, scope database.Scope, childID int, req dto.CreateIndividualSession) (*dto.IndividualSession, error) {
	child, err := s.loadUnclassified(ctx, scope, childID)
	if err != nil {
		return nil, err
	}
	req.ChildID = childID
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid session payload")
	}
	child.ChildType = models.ChildTypeSession
	if err := s.repo.Update(ctx, scope, child); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to classify child")
	}
	session := mapper.NewIndividualSessionFromCreate(req)
	if err := s.sessions.Insert(ctx, scope, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create session record")
	}
	s.logger.Info("child classified", zap.Int("id", childID), zap.String("type", string(models.ChildTypeSession)))
	return mapper.IndividualSessionToDTO(session), nil
}

func (s *ChildService) loadUnclassified(ctx context.Context, scope database.Scope, childID int) (*models.Child, error) {
	child, err := s.repo.FindByID(ctx, scope, childID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "child not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load child")
	}
	if child.ChildType != models.ChildTypeNone {
		return nil, appErrors.Clone(appErrors.ErrConflict, "child already classified")
	}
	return child, nil
}

func childrenToDTOs(children []models.Child) []dto.Child {
	out := make([]dto.Child, 0, len(children))
	for i := range children {
		out = append(out, *mapper.ChildToDTO(&children[i]))
	}
	return out
}
