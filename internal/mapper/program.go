package mapper

import (
	"github.com/nour-apps/nursery-core/internal/dto"
	"github.com/nour-apps/nursery-core/internal/models"
)

// FullDayProgramToDTO copies a persisted full-day sub-record into its read shape.
func FullDayProgramToDTO(record *models.FullDayProgram) *dto.FullDayProgram {
	return &dto.FullDayProgram{
		ID:                   record.ID,
		ChildID:              record.ChildID,
		Diagnosis:            record.Diagnosis,
		MonthlyFee:           record.MonthlyFee,
		AttendanceStatus:     record.AttendanceStatus,
		BirthCertificateFile: record.BirthCertificateFile,
		MedicalReportFile:    record.MedicalReportFile,
		DiagnosisReportFile:  record.DiagnosisReportFile,
		GuardianIDFile:       record.GuardianIDFile,
		Notes:                record.Notes,
		CreatedAt:            record.CreatedAt,
		UpdatedAt:            record.UpdatedAt,
	}
}

// NewFullDayProgramFromCreate builds a not-yet-persisted full-day sub-record.
func NewFullDayProgramFromCreate(in dto.CreateFullDayProgram) *models.FullDayProgram {
	return &models.FullDayProgram{
		ChildID:              in.ChildID,
		Diagnosis:            in.Diagnosis,
		MonthlyFee:           in.MonthlyFee,
		AttendanceStatus:     in.AttendanceStatus,
		BirthCertificateFile: in.BirthCertificateFile,
		MedicalReportFile:    in.MedicalReportFile,
		DiagnosisReportFile:  in.DiagnosisReportFile,
		GuardianIDFile:       in.GuardianIDFile,
		Notes:                in.Notes,
	}
}

// ApplyFullDayProgramPatch overwrites only the fields the caller set.
func ApplyFullDayProgramPatch(record *models.FullDayProgram, patch dto.UpdateFullDayProgram) *models.FullDayProgram {
	if patch.Diagnosis != nil {
		record.Diagnosis = *patch.Diagnosis
	}
	if patch.MonthlyFee != nil {
		record.MonthlyFee = *patch.MonthlyFee
	}
	if patch.AttendanceStatus != nil {
		record.AttendanceStatus = *patch.AttendanceStatus
	}
	if patch.BirthCertificateFile != nil {
		record.BirthCertificateFile = *patch.BirthCertificateFile
	}
	if patch.MedicalReportFile != nil {
		record.MedicalReportFile = *patch.MedicalReportFile
	}
	if patch.DiagnosisReportFile != nil {
		record.DiagnosisReportFile = *patch.DiagnosisReportFile
	}
	if patch.GuardianIDFile != nil {
		record.GuardianIDFile = *patch.GuardianIDFile
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	return record
}

// IndividualSessionToDTO copies a persisted session sub-record into its read shape.
func IndividualSessionToDTO(record *models.IndividualSession) *dto.IndividualSession {
	return &dto.IndividualSession{
		ID:               record.ID,
		ChildID:          record.ChildID,
		Diagnosis:        record.Diagnosis,
		SessionFee:       record.SessionFee,
		MonthlySessions:  record.MonthlySessions,
		AttendedSessions: record.AttendedSessions,
		SpecialistName:   record.SpecialistName,
		ReportFile:       record.ReportFile,
		PlanFile:         record.PlanFile,
		Notes:            record.Notes,
		CreatedAt:        record.CreatedAt,
		UpdatedAt:        record.UpdatedAt,
	}
}

// NewIndividualSessionFromCreate builds a not-yet-persisted session sub-record.
func NewIndividualSessionFromCreate(in dto.CreateIndividualSession) *models.IndividualSession {
	return &models.IndividualSession{
		ChildID:          in.ChildID,
		Diagnosis:        in.Diagnosis,
		SessionFee:       in.SessionFee,
		MonthlySessions:  in.MonthlySessions,
		AttendedSessions: in.AttendedSessions,
		SpecialistName:   in.SpecialistName,
		ReportFile:       in.ReportFile,
		PlanFile:         in.PlanFile,
		Notes:            in.Notes,
	}
}

// ApplyIndividualSessionPatch overwrites only the fields the caller set.
func ApplyIndividualSessionPatch(record *models.IndividualSession, patch dto.UpdateIndividualSession) *models.IndividualSession {
	if patch.Diagnosis != nil {
		record.Diagnosis = *patch.Diagnosis
	}
	if patch.SessionFee != nil {
		record.SessionFee = *patch.SessionFee
	}
	if patch.MonthlySessions != nil {
		record.MonthlySessions = *patch.MonthlySessions
	}
	if patch.AttendedSessions != nil {
		record.AttendedSessions = *patch.AttendedSessions
	}
	if patch.SpecialistName != nil {
		record.SpecialistName = *patch.SpecialistName
	}
	if patch.ReportFile != nil {
		record.ReportFile = *patch.ReportFile
	}
	if patch.PlanFile != nil {
		record.PlanFile = *patch.PlanFile
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	return record
}
