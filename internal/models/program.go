package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FullDayProgram is the sub-record created when a child is classified into
// the full-day program. At most one per child.
type FullDayProgram struct {
	ID                   int             `db:"id" json:"id"`
	ChildID              int             `db:"child_id" json:"child_id"`
	Diagnosis            string          `db:"diagnosis" json:"diagnosis"`
	MonthlyFee           decimal.Decimal `db:"monthly_fee" json:"monthly_fee"`
	AttendanceStatus     string          `db:"attendance_status" json:"attendance_status"`
	BirthCertificateFile string          `db:"birth_certificate_file" json:"birth_certificate_file"`
	MedicalReportFile    string          `db:"medical_report_file" json:"medical_report_file"`
	DiagnosisReportFile  string          `db:"diagnosis_report_file" json:"diagnosis_report_file"`
	GuardianIDFile       string          `db:"guardian_id_file" json:"guardian_id_file"`
	Notes                string          `db:"notes" json:"notes"`
	CreatedAt            time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at" json:"updated_at"`
}

// IndividualSession is the sub-record created when a child is classified
// into session-based care. A child may accumulate several over time.
type IndividualSession struct {
	ID               int             `db:"id" json:"id"`
	ChildID          int             `db:"child_id" json:"child_id"`
	Diagnosis        string          `db:"diagnosis" json:"diagnosis"`
	SessionFee       decimal.Decimal `db:"session_fee" json:"session_fee"`
	MonthlySessions  int             `db:"monthly_sessions" json:"monthly_sessions"`
	AttendedSessions int             `db:"attended_sessions" json:"attended_sessions"`
	SpecialistName   string          `db:"specialist_name" json:"specialist_name"`
	ReportFile       string          `db:"report_file" json:"report_file"`
	PlanFile         string          `db:"plan_file" json:"plan_file"`
	Notes            string          `db:"notes" json:"notes"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}
