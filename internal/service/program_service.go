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

type fullDayProgramRepository interface {
	FindByID(ctx context.Context, scope database.Scope, id int) (*models.FullDayProgram, error)
	FindByChildID(ctx context.Context, scope database.Scope, childID int) (*models.FullDayProgram, error)
	ListAll(ctx context.Context, scope database.Scope) ([]models.FullDayProgram, error)
	Insert(ctx context.Context, scope database.Scope, program *models.FullDayProgram) error
	Update(ctx context.Context, scope database.Scope, program *models.FullDayProgram) error
	Delete(ctx context.Context, scope database.Scope, id int) (bool, error)
}

// FullDayProgramService manages full-day sub-records outside the classify
// flow (edits, document paths, removal on withdrawal).
type FullDayProgramService struct {
	repo      fullDayProgramRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFullDayProgramService constructs the full-day program service.
func NewFullDayProgramService(repo fullDayProgramRepository, validate *validator.Validate, logger *zap.Logger) *FullDayProgramService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FullDayProgramService{repo: repo, validator: validate, logger: logger}
}

// Create inserts a sub-record directly. The usual entry point is
// ChildService.ClassifyFullDay; this exists for repair flows where the
// sub-record was removed but the child kept its type.
func (s *FullDayProgramService) Create(ctx context.Context, scope database.Scope, req dto.CreateFullDayProgram) (*dto.FullDayProgram, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid full-day payload")
	}
	program := mapper.NewFullDayProgramFromCreate(req)
	if err := s.repo.Insert(ctx, scope, program); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "child already has a full-day program")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create full-day program")
	}
	return mapper.FullDayProgramToDTO(program), nil
}

// Get returns a sub-record by id.
func (s *FullDayProgramService) Get(ctx context.Context, scope database.Scope, id int) (*dto.FullDayProgram, error) {
	program, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "full-day program not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load full-day program")
	}
	return mapper.FullDayProgramToDTO(program), nil
}

// GetByChildID returns the sub-record linked to a child.
func (s *FullDayProgramService) GetByChildID(ctx context.Context, scope database.Scope, childID int) (*dto.FullDayProgram, error) {
	program, err := s.repo.FindByChildID(ctx, scope, childID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "full-day program not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load full-day program")
	}
	return mapper.FullDayProgramToDTO(program), nil
}

// ListAll returns every sub-record.
func (s *FullDayProgramService) ListAll(ctx context.Context, scope database.Scope) ([]dto.FullDayProgram, error) {
	programs, err := s.repo.ListAll(ctx, scope)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list full-day programs")
	}
	out := make([]dto.FullDayProgram, 0, len(programs))
	for i := range programs {
		out = append(out, *mapper.FullDayProgramToDTO(&programs[i]))
	}
	return out, nil
}

// Update applies a partial patch to a sub-record.
func (s *FullDayProgramService) Update(ctx context.Context, scope database.Scope, id int, patch dto.UpdateFullDayProgram) (*dto.FullDayProgram, error) {
	program, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "full-day program not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load full-day program")
	}
	mapper.ApplyFullDayProgramPatch(program, patch)
	if err := s.repo.Update(ctx, scope, program); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update full-day program")
	}
	return mapper.FullDayProgramToDTO(program), nil
}

// Delete hard-deletes a sub-record.
func (s *FullDayProgramService) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, scope, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to delete full-day program")
	}
	return deleted, nil
}

type individualSessionRepository interface {
	FindByID(ctx context.Context, scope database.Scope, id int) (*models.IndividualSession, error)
	ListByChildID(ctx context.Context, scope database.Scope, childID int) ([]models.IndividualSession, error)
	ListAll(ctx context.Context, scope database.Scope) ([]models.IndividualSession, error)
	Insert(ctx context.Context, scope database.Scope, session *models.IndividualSession) error
	Update(ctx context.Context, scope database.Scope, session *models.IndividualSession) error
	Delete(ctx context.Context, scope database.Scope, id int) (bool, error)
}

// IndividualSessionService manages session sub-records.
type IndividualSessionService struct {
	repo      individualSessionRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewIndividualSessionService constructs the session service.
func NewIndividualSessionService(repo individualSessionRepository, validate *validator.Validate, logger *zap.Logger) *IndividualSessionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IndividualSessionService{repo: repo, validator: validate, logger: logger}
}

// Create inserts a session sub-record for an already-classified child.
func (s *IndividualSessionService) Create(ctx context.Context, scope database.Scope, req dto.CreateIndividualSession) (*dto.IndividualSession, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid session payload")
	}
	session := mapper.NewIndividualSessionFromCreate(req)
	if err := s.repo.Insert(ctx, scope, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create session record")
	}
	return mapper.IndividualSessionToDTO(session), nil
}

// Get returns a session sub-record by id.
func (s *IndividualSessionService) Get(ctx context.Context, scope database.Scope, id int) (*dto.IndividualSession, error) {
	session, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load session record")
	}
	return mapper.IndividualSessionToDTO(session), nil
}

// ListByChildID returns every session recorded for one child.
func (s *IndividualSessionService) ListByChildID(ctx context.Context, scope database.Scope, childID int) ([]dto.IndividualSession, error) {
	sessions, err := s.repo.ListByChildID(ctx, scope, childID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list session records")
	}
	return sessionsToDTOs(sessions), nil
}

// ListAll returns every session sub-record.
func (s *IndividualSessionService) ListAll(ctx context.Context, scope database.Scope) ([]dto.IndividualSession, error) {
	sessions, err := s.repo.ListAll(ctx, scope)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list session records")
	}
	return sessionsToDTOs(sessions), nil
}

// Update applies a partial patch to a session sub-record.
func (s *IndividualSessionService) Update(ctx context.Context, scope database.Scope, id int, patch dto.UpdateIndividualSession) (*dto.IndividualSession, error) {
	session, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load session record")
	}
	mapper.ApplyIndividualSessionPatch(session, patch)
	if err := s.repo.Update(ctx, scope, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update session record")
	}
	return mapper.IndividualSessionToDTO(session), nil
}

// Delete hard-deletes a session sub-record.
func (s *IndividualSessionService) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, scope, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to delete session record")
	}
	return deleted, nil
}

func sessionsToDTOs(sessions []models.IndividualSession) []dto.IndividualSession {
	out := make([]dto.IndividualSession, 0, len(sessions))
	for i := range sessions {
		out = append(out, *mapper.IndividualSessionToDTO(&sessions[i]))
	}
	return out
}
