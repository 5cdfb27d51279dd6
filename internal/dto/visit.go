package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyVisit is the read shape for a daily visit.
type DailyVisit struct {
	ID          int             `json:"id"`
	ChildID     int             `json:"child_id"`
	Value       decimal.Decimal `json:"value"`
	Appointment string          `json:"appointment"`
	VisitDate   time.Time       `json:"visit_date"`
	Purpose     string          `json:"purpose"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateDailyVisit carries the fields for a new daily visit.
type CreateDailyVisit struct {
	ChildID     int             `json:"child_id" validate:"required,gt=100"`
	Value       decimal.Decimal `json:"value"`
	Appointment string          `json:"appointment"`
	VisitDate   time.Time       `json:"visit_date" validate:"required"`
	Purpose     string          `json:"purpose"`
	Notes       string          `json:"notes"`
}

// UpdateDailyVisit is a partial patch over a daily visit.
type UpdateDailyVisit struct {
	Value       *decimal.Decimal `json:"value"`
	Appointment *string          `json:"appointment"`
	VisitDate   *time.Time       `json:"visit_date"`
	Purpose     *string          `json:"purpose"`
	Notes       *string          `json:"notes"`
}
