package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyFinance records a payment made for a child on a given day.
type DailyFinance struct {
	ID          int             `db:"id" json:"id"`
	ChildID     int             `db:"child_id" json:"child_id"`
	Value       decimal.Decimal `db:"value" json:"value"`
	Remaining   decimal.Decimal `db:"remaining" json:"remaining"`
	Count       int             `db:"count" json:"count"`
	Service     string          `db:"service" json:"service"`
	PaymentDate time.Time       `db:"payment_date" json:"payment_date"`
	Notes       string          `db:"notes" json:"notes"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// MonthlyFinance is an aggregated ledger snapshot keyed by month. Three
// ledgers share this shape: full-day, individual sessions, and overall.
type MonthlyFinance struct {
	ID        int             `db:"id" json:"id"`
	Month     string          `db:"month" json:"month"`
	Income    decimal.Decimal `db:"income" json:"income"`
	Expenses  decimal.Decimal `db:"expenses" json:"expenses"`
	Net       decimal.Decimal `db:"net" json:"net"`
	Notes     string          `db:"notes" json:"notes"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}
