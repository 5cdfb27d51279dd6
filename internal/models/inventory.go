package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrainingTool is a tool kept in custody for training use, not for sale.
type TrainingTool struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Quantity  int       `db:"quantity" json:"quantity"`
	ToolImage string    `db:"tool_image" json:"tool_image"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ToolForSale is a sellable tool in stock.
type ToolForSale struct {
	ID        int             `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Quantity  int             `db:"quantity" json:"quantity"`
	ToolImage string          `db:"tool_image" json:"tool_image"`
	Notes     string          `db:"notes" json:"notes"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// UniformForSale is a sellable uniform in stock.
type UniformForSale struct {
	ID        int             `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Size      string          `db:"size" json:"size"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Quantity  int             `db:"quantity" json:"quantity"`
	Notes     string          `db:"notes" json:"notes"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// BookForSale is a sellable book in stock.
type BookForSale struct {
	ID        int             `db:"id" json:"id"`
	Title     string          `db:"title" json:"title"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Quantity  int             `db:"quantity" json:"quantity"`
	BookImage string          `db:"book_image" json:"book_image"`
	Notes     string          `db:"notes" json:"notes"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}
