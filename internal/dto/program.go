package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FullDayProgram is the read shape for a full-day program sub-record.
type FullDayProgram struct {
	ID                   int             `json:"id"`
	ChildID              int             `json:"child_id"`
	Diagnosis            string          `json:"diagnosis"`
	MonthlyFee           decimal.Decimal `json:"monthly_fee"`
	AttendanceStatus     string          `json:"attendance_status"`
	BirthCertificateFile string          `json:"birth_certificate_file"`
	MedicalReportFile    string          `json:"medical_report_file"`
	DiagnosisReportFile  string          `json:"diagnosis_report_file"`
	GuardianIDFile       string          `json:"guardian_id_file"`
	Notes                string          `json:"notes"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// CreateFullDayProgram carries the fields for a new full-day sub-record.
type CreateFullDayProgram struct {
	ChildID              int             `json:"child_id" validate:"required,gt=100"`
	Diagnosis            string          `json:"diagnosis"`
	MonthlyFee           decimal.Decimal `json:"monthly_fee"`
	AttendanceStatus     string          `json:"attendance_status"`
	BirthCertificateFile string          `json:"birth_certificate_file"`
	MedicalReportFile    string          `json:"medical_report_file"`
	DiagnosisReportFile  string          `json:"diagnosis_report_file"`
	GuardianIDFile       string          `json:"guardian_id_file"`
	Notes                string          `json:"notes"`
}

// UpdateFullDayProgram is a partial patch over a full-day sub-record.
type UpdateFullDayProgram struct {
	Diagnosis            *string          `json:"diagnosis"`
	MonthlyFee           *decimal.Decimal `json:"monthly_fee"`
	AttendanceStatus     *string          `json:"attendance_status"`
	BirthCertificateFile *string          `json:"birth_certificate_file"`
	MedicalReportFile    *string          `json:"medical_report_file"`
	DiagnosisReportFile  *string          `json:"diagnosis_report_file"`
	GuardianIDFile       *string          `json:"guardian_id_file"`
	Notes                *string          `json:"notes"`
}

// IndividualSession is the read shape for a session sub-record.
type IndividualSession struct {
	ID               int             `json:"id"`
	ChildID          int             `json:"child_id"`
	Diagnosis        string          `json:"diagnosis"`
	SessionFee       decimal.Decimal `json:"session_fee"`
	MonthlySessions  int             `json:"monthly_sessions"`
	AttendedSessions int             `json:"attended_sessions"`
	SpecialistName   string          `json:"specialist_name"`
	ReportFile       string          `json:"report_file"`
	PlanFile         string          `json:"plan_file"`
	Notes            string          `json:"notes"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CreateIndividualSession carries the fields for a new session sub-record.
type CreateIndividualSession struct {
	ChildID          int             `json:"child_id" validate:"required,gt=100"`
	Diagnosis        string          `json:"diagnosis"`
	SessionFee       decimal.Decimal `json:"session_fee"`
	MonthlySessions  int             `json:"monthly_sessions" validate:"gte=0"`
	AttendedSessions int             `json:"attended_sessions" validate:"gte=0"`
	SpecialistName   string          `json:"specialist_name"`
	ReportFile       string          `json:"report_file"`
	PlanFile         string          `json:"plan_file"`
	Notes            string          `json:"notes"`
}

// UpdateIndividualSession is a partial patch over a session sub-record.
type UpdateIndividualSession struct {
	Diagnosis        *string          `json:"diagnosis"`
	SessionFee       *decimal.Decimal `json:"session_fee"`
	MonthlySessions  *int             `json:"monthly_sessions"`
	AttendedSessions *int             `json:"attended_sessions"`
	SpecialistName   *string          `json:"specialist_name"`
	ReportFile       *string          `json:"report_file"`
	PlanFile         *string          `json:"plan_file"`
	Notes            *string          `json:"notes"`
}
