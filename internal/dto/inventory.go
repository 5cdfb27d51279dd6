package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrainingTool is the read shape for a custody training tool.
type TrainingTool struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	ToolImage string    `json:"tool_image"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTrainingTool carries the fields for a new training tool.
type CreateTrainingTool struct {
	Name      string `json:"name" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
	ToolImage string `json:"tool_image"`
	Notes     string `json:"notes"`
}

// UpdateTrainingTool is a partial patch over a training tool.
type UpdateTrainingTool struct {
	Name      *string `json:"name"`
	Quantity  *int    `json:"quantity"`
	ToolImage *string `json:"tool_image"`
	Notes     *string `json:"notes"`
}

// ToolForSale is the read shape for a sellable tool.
type ToolForSale struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ToolImage string          `json:"tool_image"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateToolForSale carries the fields for a new sellable tool.
type CreateToolForSale struct {
	Name      string          `json:"name" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity" validate:"gte=0"`
	ToolImage string          `json:"tool_image"`
	Notes     string          `json:"notes"`
}

// UpdateToolForSale is a partial patch over a sellable tool.
type UpdateToolForSale struct {
	Name      *string          `json:"name"`
	Price     *decimal.Decimal `json:"price"`
	Quantity  *int             `json:"quantity"`
	ToolImage *string          `json:"tool_image"`
	Notes     *string          `json:"notes"`
}

// UniformForSale is the read shape for a sellable uniform.
type UniformForSale struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateUniformForSale carries the fields for a new sellable uniform.
type CreateUniformForSale struct {
	Name     string          `json:"name" validate:"required"`
	Size     string          `json:"size"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Notes    string          `json:"notes"`
}

// UpdateUniformForSale is a partial patch over a sellable uniform.
type UpdateUniformForSale struct {
	Name     *string          `json:"name"`
	Size     *string          `json:"size"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *int             `json:"quantity"`
	Notes    *string          `json:"notes"`
}

// BookForSale is the read shape for a sellable book.
type BookForSale struct {
	ID        int             `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	BookImage string          `json:"book_image"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateBookForSale carries the fields for a new sellable book.
type CreateBookForSale struct {
	Title     string          `json:"title" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity" validate:"gte=0"`
	BookImage string          `json:"book_image"`
	Notes     string          `json:"notes"`
}

// UpdateBookForSale is a partial patch over a sellable book.
type UpdateBookForSale struct {
	Title     *string          `json:"title"`
	Price     *decimal.Decimal `json:"price"`
	Quantity  *int             `json:"quantity"`
	BookImage *string          `json:"book_image"`
	Notes     *string          `json:"notes"`
}
