package mapper

import (
	"github.com/nour-apps/nursery-core/internal/dto"
	"github.com/nour-apps/nursery-core/internal/models"
)

// DailyFinanceToDTO copies a persisted payment record into its read shape.
func DailyFinanceToDTO(record *models.DailyFinance) *dto.DailyFinance {
	return &dto.DailyFinance{
		ID:          record.ID,
		ChildID:     record.ChildID,
		Value:       record.Value,
		Remaining:   record.Remaining,
		Count:       record.Count,
		Service:     record.Service,
		PaymentDate: record.PaymentDate,
		Notes:       record.Notes,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// NewDailyFinanceFromCreate builds a not-yet-persisted payment record.
func NewDailyFinanceFromCreate(in dto.CreateDailyFinance) *models.DailyFinance {
	return &models.DailyFinance{
		ChildID:     in.ChildID,
		Value:       in.Value,
		Remaining:   in.Remaining,
		Count:       in.Count,
		Service:     in.Service,
		PaymentDate: in.PaymentDate,
		Notes:       in.Notes,
	}
}

// ApplyDailyFinancePatch overwrites only the fields the caller set.
func ApplyDailyFinancePatch(record *models.DailyFinance, patch dto.UpdateDailyFinance) *models.DailyFinance {
	if patch.Value != nil {
		record.Value = *patch.Value
	}
	if patch.Remaining != nil {
		record.Remaining = *patch.Remaining
	}
	if patch.Count != nil {
		record.Count = *patch.Count
	}
	if patch.Service != nil {
		record.Service = *patch.Service
	}
	if patch.PaymentDate != nil {
		record.PaymentDate = *patch.PaymentDate
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	return record
}

// MonthlyFinanceToDTO copies a persisted ledger row into its read shape.
func MonthlyFinanceToDTO(record *models.MonthlyFinance) *dto.MonthlyFinance {
	return &dto.MonthlyFinance{
		ID:        record.ID,
		Month:     record.Month,
		Income:    record.Income,
		Expenses:  record.Expenses,
		Net:       record.Net,
		Notes:     record.Notes,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// NewMonthlyFinanceFromCreate builds a not-yet-persisted ledger row.
func NewMonthlyFinanceFromCreate(in dto.CreateMonthlyFinance) *models.MonthlyFinance {
	return &models.MonthlyFinance{
		Month:    in.Month,
		Income:   in.Income,
		Expenses: in.Expenses,
		Net:      in.Net,
		Notes:    in.Notes,
	}
}

// ApplyMonthlyFinancePatch overwrites only the fields the caller set. The
// month key is immutable and has no patch field.
func ApplyMonthlyFinancePatch(record *models.MonthlyFinance, patch dto.UpdateMonthlyFinance) *models.MonthlyFinance {
	if patch.Income != nil {
		record.Income = *patch.Income
	}
	if patch.Expenses != nil {
		record.Expenses = *patch.Expenses
	}
	if patch.Net != nil {
		record.Net = *patch.Net
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	return record
}
