package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyVisit records a one-off visit by a child, billed per visit.
type DailyVisit struct {
	ID          int             `db:"id" json:"id"`
	ChildID     int             `db:"child_id" json:"child_id"`
	Value       decimal.Decimal `db:"value" json:"value"`
	Appointment string          `db:"appointment" json:"appointment"`
	VisitDate   time.Time       `db:"visit_date" json:"visit_date"`
	Purpose     string          `db:"purpose" json:"purpose"`
	Notes       string          `db:"notes" json:"notes"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}
