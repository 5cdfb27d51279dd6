package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/nour-apps/nursery-core/internal/models"
	"github.com/nour-apps/nursery-core/pkg/database"
)

// TrainingToolRepository manages persistence for custody training tools.
type TrainingToolRepository struct{}

func NewTrainingToolRepository() *TrainingToolRepository {
	return &TrainingToolRepository{}
}

const trainingToolColumns = `id, name, quantity, tool_image, notes, created_at, updated_at`

func (r *TrainingToolRepository) FindByID(ctx context.Context, scope database.Scope, id int) (*models.TrainingTool, error) {
	query := scope.Rebind(`SELECT ` + trainingToolColumns + ` FROM training_tools WHERE id = ?`)
	var tool models.TrainingTool
	if err := scope.GetContext(ctx, &tool, query, id); err != nil {
		return nil, err
	}
	return &tool, nil
}

func (r *TrainingToolRepository) ListAll(ctx context.Context, scope database.Scope) ([]models.TrainingTool, error) {
	var tools []models.TrainingTool
	if err := scope.SelectContext(ctx, &tools, `SELECT `+trainingToolColumns+` FROM training_tools ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list training tools: %w", err)
	}
	return tools, nil
}

func (r *TrainingToolRepository) Insert(ctx context.Context, scope database.Scope, tool *models.TrainingTool) error {
	now := time.Now().UTC()
	tool.CreatedAt = now
	tool.UpdatedAt = now
	const query = `INSERT INTO training_tools (name, quantity, tool_image, notes, created_at, updated_at)
        VALUES (:name, :quantity, :tool_image, :notes, :created_at, :updated_at)
        RETURNING id`
	id, err := insertReturningID(ctx, scope, query, tool)
	if err != nil {
		return fmt.Errorf("insert training tool: %w", err)
	}
	tool.ID = id
	return nil
}

func (r *TrainingToolRepository) Update(ctx context.Context, scope database.Scope, tool *models.TrainingTool) error {
	tool.UpdatedAt = time.Now().UTC()
	const query = `UPDATE training_tools SET name = :name, quantity = :quantity, tool_image = :tool_image, notes = :notes, updated_at = :updated_at WHERE id = :id`
	if _, err := scope.NamedExecContext(ctx, query, tool); err != nil {
		return fmt.Errorf("update training tool: %w", err)
	}
	return nil
}

func (r *TrainingToolRepository) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	query := scope.Rebind(`DELETE FROM training_tools WHERE id = ?`)
	res, err := scope.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete training tool: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete training tool: %w", err)
	}
	return affected > 0, nil
}

// ToolForSaleRepository manages persistence for sellable tools.
type ToolForSaleRepository struct{}

func NewToolForSaleRepository() *ToolForSaleRepository {
	return &ToolForSaleRepository{}
}

const toolForSaleColumns = `id, name, price, quantity, tool_image, notes, created_at, updated_at`

func (r *ToolForSaleRepository) FindByID(ctx context.Context, scope database.Scope, id int) (*models.ToolForSale, error) {
	query := scope.Rebind(`SELECT ` + toolForSaleColumns + ` FROM tools_for_sale WHERE id = ?`)
	var tool models.ToolForSale
	if err := scope.GetContext(ctx, &tool, query, id); err != nil {
		return nil, err
	}
	return &tool, nil
}

func (r *ToolForSaleRepository) ListAll(ctx context.Context, scope database.Scope) ([]models.ToolForSale, error) {
	var tools []models.ToolForSale
	if err := scope.SelectContext(ctx, &tools, `SELECT `+toolForSaleColumns+` FROM tools_for_sale ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list tools for sale: %w", err)
	}
	return tools, nil
}

func (r *ToolForSaleRepository) Insert(ctx context.Context, scope database.Scope, tool *models.ToolForSale) error {
	now := time.Now().UTC()
	tool.CreatedAt = now
	tool.UpdatedAt = now
	const query = `INSERT INTO tools_for_sale (name, price, quantity, tool_image, notes, created_at, updated_at)
        VALUES (:name, :price, :quantity, :tool_image, :notes, :created_at, :updated_at)
        RETURNING id`
	id, err := insertReturningID(ctx, scope, query, tool)
	if err != nil {
		return fmt.Errorf("insert tool for sale: %w", err)
	}
	tool.ID = id
	return nil
}

func (r *ToolForSaleRepository) Update(ctx context.Context, scope database.Scope, tool *models.ToolForSale) error {
	tool.UpdatedAt = time.Now().UTC()
	const query = `UPDATE tools_for_sale SET name = :name, price = :price, quantity = :quantity, tool_image = :tool_image, notes = :notes, updated_at = :updated_at WHERE id = :id`
	if _, err := scope.NamedExecContext(ctx, query, tool); err != nil {
		return fmt.Errorf("update tool for sale: %w", err)
	}
	return nil
}

func (r *ToolForSaleRepository) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	query := scope.Rebind(`DELETE FROM tools_for_sale WHERE id = ?`)
	res, err := scope.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete tool for sale: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete tool for sale: %w", err)
	}
	return affected > 0, nil
}

// UniformForSaleRepository manages persistence for sellable uniforms.
type UniformForSaleRepository struct{}

func NewUniformForSaleRepository() *UniformForSaleRepository {
	return &UniformForSaleRepository{}
}

const uniformColumns = `id, name, size, price, quantity, notes, created_at, updated_at`

func (r *UniformForSaleRepository) FindByID(ctx context.Context, scope database.Scope, id int) (*models.UniformForSale, error) {
	query := scope.Rebind(`SELECT ` + uniformColumns + ` FROM uniforms_for_sale WHERE id = ?`)
	var uniform models.UniformForSale
	if err := scope.GetContext(ctx, &uniform, query, id); err != nil {
		return nil, err
	}
	return &uniform, nil
}

func (r *UniformForSaleRepository) ListAll(ctx context.Context, scope database.Scope) ([]models.UniformForSale, error) {
	var uniforms []models.UniformForSale
	if err := scope.SelectContext(ctx, &uniforms, `SELECT `+uniformColumns+` FROM uniforms_for_sale ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list uniforms: %w", err)
	}
	return uniforms, nil
}

func (r *UniformForSaleRepository) Insert(ctx context.Context, scope database.Scope, uniform *models.UniformForSale) error {
	now := time.Now().UTC()
	uniform.CreatedAt = now
	uniform.UpdatedAt = now
	const query = `INSERT INTO uniforms_for_sale (name, size, price, quantity, notes, created_at, updated_at)
        VALUES (:name, :size, :price, :quantity, :notes, :created_at, :updated_at)
        RETURNING id`
	id, err := insertReturningID(ctx, scope, query, uniform)
	if err != nil {
		return fmt.Errorf("insert uniform: %w", err)
	}
	uniform.ID = id
	return nil
}

func (r *UniformForSaleRepository) Update(ctx context.Context, scope database.Scope, uniform *models.UniformForSale) error {
	uniform.UpdatedAt = time.Now().UTC()
	const query = `UPDATE uniforms_for_sale SET name = :name, size = :size, price = :price, quantity = :quantity, notes = :notes, updated_at = :updated_at WHERE id = :id`
	if _, err := scope.NamedExecContext(ctx, query, uniform); err != nil {
		return fmt.Errorf("update uniform: %w", err)
	}
	return nil
}

func (r *UniformForSaleRepository) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	query := scope.Rebind(`DELETE FROM uniforms_for_sale WHERE id = ?`)
	res, err := scope.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete uniform: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete uniform: %w", err)
	}
	return affected > 0, nil
}

// BookForSaleRepository manages persistence for sellable books.
type BookForSaleRepository struct{}

func NewBookForSaleRepository() *BookForSaleRepository {
	return &BookForSaleRepository{}
}

const bookColumns = `id, title, price, quantity, book_image, notes, created_at, updated_at`

func (r *BookForSaleRepository) FindByID(ctx context.Context, scope database.Scope, id int) (*models.BookForSale, error) {
	query := scope.Rebind(`SELECT ` + bookColumns + ` FROM books_for_sale WHERE id = ?`)
	var book models.BookForSale
	if err := scope.GetContext(ctx, &book, query, id); err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *BookForSaleRepository) ListAll(ctx context.Context, scope database.Scope) ([]models.BookForSale, error) {
	var books []models.BookForSale
	if err := scope.SelectContext(ctx, &books, `SELECT `+bookColumns+` FROM books_for_sale ORDER BY title`); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (r *BookForSaleRepository) Insert(ctx context.Context, scope database.Scope, book *models.BookForSale) error {
	now := time.Now().UTC()
	book.CreatedAt = now
	book.UpdatedAt = now
	const query = `INSERT INTO books_for_sale (title, price, quantity, book_image, notes, created_at, updated_at)
        VALUES (:title, :price, :quantity, :book_image, :notes, :created_at, :updated_at)
        RETURNING id`
	id, err := insertReturningID(ctx, scope, query, book)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	book.ID = id
	return nil
}

func (r *BookForSaleRepository) Update(ctx context.Context, scope database.Scope, book *models.BookForSale) error {
	book.UpdatedAt = time.Now().UTC()
	const query = `UPDATE books_for_sale SET title = :title, price = :price, quantity = :quantity, book_image = :book_image, notes = :notes, updated_at = :updated_at WHERE id = :id`
	if _, err := scope.NamedExecContext(ctx, query, book); err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (r *BookForSaleRepository) Delete(ctx context.Context, scope database.Scope, id int) (bool, error) {
	query := scope.Rebind(`DELETE FROM books_for_sale WHERE id = ?`)
	res, err := scope.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete book: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete book: %w", err)
	}
	return affected > 0, nil
}
