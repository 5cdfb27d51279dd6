package mapper

import (
	"github.com/nour-apps/nursery-core/internal/dto"
	"github.com/nour-apps/nursery-core/internal/models"
)

// DailyVisitToDTO copies a persisted visit into its read shape.
func DailyVisitToDTO(record *models.DailyVisit) *dto.DailyVisit {
	return &dto.DailyVisit{
		ID:          record.ID,
		ChildID:     record.ChildID,
		Value:       record.Value,
		Appointment: record.Appointment,
		VisitDate:   record.VisitDate,
		Purpose:     record.Purpose,
		Notes:       record.Notes,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// NewDailyVisitFromCreate builds a not-yet-persisted visit.
func NewDailyVisitFromCreate(in dto.CreateDailyVisit) *models.DailyVisit {
	return &models.DailyVisit{
		ChildID:     in.ChildID,
		Value:       in.Value,
		Appointment: in.Appointment,
		VisitDate:   in.VisitDate,
		Purpose:     in.Purpose,
		Notes:       in.Notes,
	}
}

// ApplyDailyVisitPatch overwrites only the fields the caller set.
func ApplyDailyVisitPatch(record *models.DailyVisit, patch dto.UpdateDailyVisit) *models.DailyVisit {
	if patch.Value != nil {
		record.Value = *patch.Value
	}
	if patch.Appointment != nil {
		record.Appointment = *patch.Appointment
	}
	if patch.VisitDate != nil {
		record.VisitDate = *patch.VisitDate
	}
	if patch.Purpose != nil {
		record.Purpose = *patch.Purpose
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	return record
}
