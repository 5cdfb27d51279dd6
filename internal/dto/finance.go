package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyFinance is the read shape for a per-child payment record.
type DailyFinance struct {
	ID          int             `json:"id"`
	ChildID     int             `json:"child_id"`
	Value       decimal.Decimal `json:"value"`
	Remaining   decimal.Decimal `json:"remaining"`
	Count       int             `json:"count"`
	Service     string          `json:"service"`
	PaymentDate time.Time       `json:"payment_date"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateDailyFinance carries the fields for a new payment record.
type CreateDailyFinance struct {
	ChildID     int             `json:"child_id" validate:"required,gt=100"`
	Value       decimal.Decimal `json:"value"`
	Remaining   decimal.Decimal `json:"remaining"`
	Count       int             `json:"count" validate:"gte=0"`
	Service     string          `json:"service"`
	PaymentDate time.Time       `json:"payment_date" validate:"required"`
	Notes       string          `json:"notes"`
}

// UpdateDailyFinance is a partial patch over a payment record.
type UpdateDailyFinance struct {
	Value       *decimal.Decimal `json:"value"`
	Remaining   *decimal.Decimal `json:"remaining"`
	Count       *int             `json:"count"`
	Service     *string          `json:"service"`
	PaymentDate *time.Time       `json:"payment_date"`
	Notes       *string          `json:"notes"`
}

// MonthlyFinance is the read shape shared by the three monthly ledgers.
type MonthlyFinance struct {
	ID        int             `json:"id"`
	Month     string          `json:"month"`
	Income    decimal.Decimal `json:"income"`
	Expenses  decimal.Decimal `json:"expenses"`
	Net       decimal.Decimal `json:"net"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateMonthlyFinance carries the fields for a new monthly ledger row.
type CreateMonthlyFinance struct {
	Month    string          `json:"month" validate:"required"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
	Notes    string          `json:"notes"`
}

// UpdateMonthlyFinance is a partial patch over a monthly ledger row. The
// month key itself is immutable.
type UpdateMonthlyFinance struct {
	Income   *decimal.Decimal `json:"income"`
	Expenses *decimal.Decimal `json:"expenses"`
	Net      *decimal.Decimal `json:"net"`
	Notes    *string          `json:"notes"`
}
