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

type trainingToolRepository interface {
	FindByID(ctx context.Context, scope database.Scope, id int) (*models.TrainingTool, error)
	ListAll(ctx context.Context, scope database.Scope) ([]models.TrainingTool, error)
	Insert(ctx context.Context, scope database.Scope, tool *models.TrainingTool) error
	Update(ctx context.Context, scope database.Scope, tool *models.TrainingTool) error
	Delete(ctx context.Context, scope database.Scope, id int) (bool, error)
}

// TrainingToolService manages custody training tools.
type TrainingToolService struct {
	repo      trainingToolRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTrainingToolService constructs the training tool service.
func NewTrainingToolService(repo trainingToolRepository, validate *validator.Validate, logger *zap.Logger) *TrainingToolService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrainingToolService{repo: repo, validator: validate, logger: logger}
}

func (s *TrainingToolService) Create(ctx context.Context, scope database.Scope, req dto.CreateTrainingTool) (*dto.TrainingTool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid training tool payload")
	}
	tool := mapper.NewTrainingToolFromCreate(req)
	if err := s.repo.Insert(ctx, scope, tool); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create training tool")
	}
	return mapper.TrainingToolToDTO(tool), nil
}

func (s *TrainingToolService) Get(ctx context.Context, scope database.Scope, id int) (*dto.TrainingTool, error) {
	tool, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "training tool not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load training tool")
	}
	return mapper.TrainingToolToDTO(tool), nil
}

func (s *TrainingToolService) ListAll(ctx context.Context, scope database.Scope) ([]dto.TrainingTool, error) {
	tools, err := s.repo.ListAll(ctx, scope)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list training tools")
	}
	out := make([]dto.TrainingTool, 0, len(tools))
	for i := range tools {
		out = append(out, *mapper.TrainingToolToDTO(&tools[i]))
	}
	return out, nil
}

func (s *TrainingToolService) Update(ctx context.Context, scope database.Scope, id int, patch dto.UpdateTrainingTool) (*dto.TrainingTool, error) {
	tool, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "training tool not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load training tool")
	}
	mapper.ApplyTrainingToolPatch(tool, patch)
	if err := s.repo.Update(ctx, scope, tool); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update training tool")
	}
	return mapper.TrainingToolToDTO(tool), nil
}

func (s *TrainingToolService) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, scope, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to delete training tool")
	}
	return deleted, nil
}

type toolForSaleRepository interface {
	FindByID(ctx context.Context, scope database.Scope, id int) (*models.ToolForSale, error)
	ListAll(ctx context.Context, scope database.Scope) ([]models.ToolForSale, error)
	Insert(ctx context.Context, scope database.Scope, tool *models.ToolForSale) error
	Update(ctx context.Context, scope database.Scope, tool *models.ToolForSale) error
	Delete(ctx context.Context, scope database.Scope, id int) (bool, error)
}

// ToolForSaleService manages sellable tool stock.
type ToolForSaleService struct {
	repo      toolForSaleRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewToolForSaleService constructs the sellable tool service.
func NewToolForSaleService(repo toolForSaleRepository, validate *validator.Validate, logger *zap.Logger) *ToolForSaleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ToolForSaleService{repo: repo, validator: validate, logger: logger}
}

func (s *ToolForSaleService) Create(ctx context.Context, scope database.Scope, req dto.CreateToolForSale) (*dto.ToolForSale, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid tool payload")
	}
	tool := mapper.NewToolForSaleFromCreate(req)
	if err := s.repo.Insert(ctx, scope, tool); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create tool")
	}
	return mapper.ToolForSaleToDTO(tool), nil
}

func (s *ToolForSaleService) Get(ctx context.Context, scope database.Scope, id int) (*dto.ToolForSale, error) {
	tool, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "tool not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load tool")
	}
	return mapper.ToolForSaleToDTO(tool), nil
}

func (s *ToolForSaleService) ListAll(ctx context.Context, scope database.Scope) ([]dto.ToolForSale, error) {
	tools, err := s.repo.ListAll(ctx, scope)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list tools")
	}
	out := make([]dto.ToolForSale, 0, len(tools))
	for i := range tools {
		out = append(out, *mapper.ToolForSaleToDTO(&tools[i]))
	}
	return out, nil
}

func (s *ToolForSaleService) Update(ctx context.Context, scope database.Scope, id int, patch dto.UpdateToolForSale) (*dto.ToolForSale, error) {
	tool, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "tool not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load tool")
	}
	mapper.ApplyToolForSalePatch(tool, patch)
	if err := s.repo.Update(ctx, scope, tool); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update tool")
	}
	return mapper.ToolForSaleToDTO(tool), nil
}

func (s *ToolForSaleService) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, scope, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to delete tool")
	}
	return deleted, nil
}

type uniformForSaleRepository interface {
	FindByID(ctx context.Context, scope database.Scope, id int) (*models.UniformForSale, error)
	ListAll(ctx context.Context, scope database.Scope) ([]models.UniformForSale, error)
	Insert(ctx context.Context, scope database.Scope, uniform *models.UniformForSale) error
	Update(ctx context.Context, scope database.Scope, uniform *models.UniformForSale) error
	Delete(ctx context.Context, scope database.Scope, id int) (bool, error)
}

// UniformForSaleService manages sellable uniform stock.
type UniformForSaleService struct {
	repo      uniformForSaleRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUniformForSaleService constructs the uniform service.
func NewUniformForSaleService(repo uniformForSaleRepository, validate *validator.Validate, logger *zap.Logger) *UniformForSaleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UniformForSaleService{repo: repo, validator: validate, logger: logger}
}

func (s *UniformForSaleService) Create(ctx context.Context, scope database.Scope, req dto.CreateUniformForSale) (*dto.UniformForSale, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid uniform payload")
	}
	uniform := mapper.NewUniformForSaleFromCreate(req)
	if err := s.repo.Insert(ctx, scope, uniform); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create uniform")
	}
	return mapper.UniformForSaleToDTO(uniform), nil
}

func (s *UniformForSaleService) Get(ctx context.Context, scope database.Scope, id int) (*dto.UniformForSale, error) {
	uniform, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "uniform not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load uniform")
	}
	return mapper.UniformForSaleToDTO(uniform), nil
}

func (s *UniformForSaleService) ListAll(ctx context.Context, scope database.Scope) ([]dto.UniformForSale, error) {
	uniforms, err := s.repo.ListAll(ctx, scope)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list uniforms")
	}
	out := make([]dto.UniformForSale, 0, len(uniforms))
	for i := range uniforms {
		out = append(out, *mapper.UniformForSaleToDTO(&uniforms[i]))
	}
	return out, nil
}

func (s *UniformForSaleService) Update(ctx context.Context, scope database.Scope, id int, patch dto.UpdateUniformForSale) (*dto.UniformForSale, error) {
	uniform, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "uniform not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load uniform")
	}
	mapper.ApplyUniformForSalePatch(uniform, patch)
	if err := s.repo.Update(ctx, scope, uniform); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update uniform")
	}
	return mapper.UniformForSaleToDTO(uniform), nil
}

func (s *UniformForSaleService) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, scope, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to delete uniform")
	}
	return deleted, nil
}

type bookForSaleRepository interface {
	FindByID(ctx context.Context, scope database.Scope, id int) (*models.BookForSale, error)
	ListAll(ctx context.Context, scope database.Scope) ([]models.BookForSale, error)
	Insert(ctx context.Context, scope database.Scope, book *models.BookForSale) error
	Update(ctx context.Context, scope database.Scope, book *models.BookForSale) error
	Delete(ctx context.Context, scope database.Scope, id int) (bool, error)
}

// BookForSaleService manages sellable book stock.
type BookForSaleService struct {
	repo      bookForSaleRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBookForSaleService constructs the book service.
func NewBookForSaleService(repo bookForSaleRepository, validate *validator.Validate, logger *zap.Logger) *BookForSaleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookForSaleService{repo: repo, validator: validate, logger: logger}
}

func (s *BookForSaleService) Create(ctx context.Context, scope database.Scope, req dto.CreateBookForSale) (*dto.BookForSale, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid book payload")
	}
	book := mapper.NewBookForSaleFromCreate(req)
	if err := s.repo.Insert(ctx, scope, book); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create book")
	}
	return mapper.BookForSaleToDTO(book), nil
}

func (s *BookForSaleService) Get(ctx context.Context, scope database.Scope, id int) (*dto.BookForSale, error) {
	book, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "book not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load book")
	}
	return mapper.BookForSaleToDTO(book), nil
}

func (s *BookForSaleService) ListAll(ctx context.Context, scope database.Scope) ([]dto.BookForSale, error) {
	books, err := s.repo.ListAll(ctx, scope)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list books")
	}
	out := make([]dto.BookForSale, 0, len(books))
	for i := range books {
		out = append(out, *mapper.BookForSaleToDTO(&books[i]))
	}
	return out, nil
}

func (s *BookForSaleService) Update(ctx context.Context, scope database.Scope, id int, patch dto.UpdateBookForSale) (*dto.BookForSale, error) {
	book, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "book not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load book")
	}
	mapper.ApplyBookForSalePatch(book, patch)
	if err := s.repo.Update(ctx, scope, book); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update book")
	}
	return mapper.BookForSaleToDTO(book), nil
}

func (s *BookForSaleService) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, scope, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to delete book")
	}
	return deleted, nil
}
