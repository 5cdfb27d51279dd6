package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// schemaDDL bootstraps a fresh sqlite file. Money columns are TEXT so
// decimals round-trip without float coercion. Postgres installs are
// provisioned by the external migration tooling instead.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS children (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    birth_date DATE NOT NULL,
    age INTEGER NOT NULL DEFAULT 0,
    phone TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    father_job TEXT NOT NULL DEFAULT '',
    mother_job TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    problems TEXT NOT NULL DEFAULT '',
    child_image TEXT NOT NULL DEFAULT '',
    child_type TEXT NOT NULL DEFAULT 'NONE',
    has_left INTEGER NOT NULL DEFAULT 0,
    is_deleted INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS full_day_programs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    child_id INTEGER NOT NULL UNIQUE REFERENCES children(id),
    diagnosis TEXT NOT NULL DEFAULT '',
    monthly_fee TEXT NOT NULL DEFAULT '0',
    attendance_status TEXT NOT NULL DEFAULT '',
    birth_certificate_file TEXT NOT NULL DEFAULT '',
    medical_report_file TEXT NOT NULL DEFAULT '',
    diagnosis_report_file TEXT NOT NULL DEFAULT '',
    guardian_id_file TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS individual_sessions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    child_id INTEGER NOT NULL REFERENCES children(id),
    diagnosis TEXT NOT NULL DEFAULT '',
    session_fee TEXT NOT NULL DEFAULT '0',
    monthly_sessions INTEGER NOT NULL DEFAULT 0,
    attended_sessions INTEGER NOT NULL DEFAULT 0,
    specialist_name TEXT NOT NULL DEFAULT '',
    report_file TEXT NOT NULL DEFAULT '',
    plan_file TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_visits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    child_id INTEGER NOT NULL REFERENCES children(id),
    value TEXT NOT NULL DEFAULT '0',
    appointment TEXT NOT NULL DEFAULT '',
    visit_date DATE NOT NULL,
    purpose TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_finances (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    child_id INTEGER NOT NULL REFERENCES children(id),
    value TEXT NOT NULL DEFAULT '0',
    remaining TEXT NOT NULL DEFAULT '0',
    count INTEGER NOT NULL DEFAULT 0,
    service TEXT NOT NULL DEFAULT '',
    payment_date DATE NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS monthly_finances_full_day (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    month TEXT NOT NULL UNIQUE,
    income TEXT NOT NULL DEFAULT '0',
    expenses TEXT NOT NULL DEFAULT '0',
    net TEXT NOT NULL DEFAULT '0',
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS monthly_finances_individual (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    month TEXT NOT NULL UNIQUE,
    income TEXT NOT NULL DEFAULT '0',
    expenses TEXT NOT NULL DEFAULT '0',
    net TEXT NOT NULL DEFAULT '0',
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS monthly_finances_overall (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    month TEXT NOT NULL UNIQUE,
    income TEXT NOT NULL DEFAULT '0',
    expenses TEXT NOT NULL DEFAULT '0',
    net TEXT NOT NULL DEFAULT '0',
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS training_tools (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    quantity INTEGER NOT NULL DEFAULT 0,
    tool_image TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS tools_for_sale (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    price TEXT NOT NULL DEFAULT '0',
    quantity INTEGER NOT NULL DEFAULT 0,
    tool_image TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS uniforms_for_sale (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    size TEXT NOT NULL DEFAULT '',
    price TEXT NOT NULL DEFAULT '0',
    quantity INTEGER NOT NULL DEFAULT 0,
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS books_for_sale (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    price TEXT NOT NULL DEFAULT '0',
    quantity INTEGER NOT NULL DEFAULT 0,
    book_image TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'staff',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

// EnsureSchema creates any missing tables in a local sqlite database.
// Idempotent; intended for the launcher on first run.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schemaDDL)
	return err
}
