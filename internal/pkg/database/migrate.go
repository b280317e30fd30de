package database

import (
	"context"
	"fmt"
)

// migrations holds the schema as individual statements. Every statement is
// idempotent so Migrate can run on each bootstrap and in test setup without
// tracking applied versions. The head/supervisor foreign keys are added after
// the users table exists because departments/units and users reference each
// other.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS office_locations (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT office_locations_name_key UNIQUE (name)
	)`,

	`CREATE TABLE IF NOT EXISTS departments (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		head_id UUID,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT departments_name_key UNIQUE (name),
		CONSTRAINT departments_head_id_key UNIQUE (head_id)
	)`,

	`CREATE TABLE IF NOT EXISTS units (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		department_id UUID NOT NULL REFERENCES departments(id) ON DELETE CASCADE,
		supervisor_id UUID,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT units_department_id_name_key UNIQUE (department_id, name),
		CONSTRAINT units_supervisor_id_key UNIQUE (supervisor_id)
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL,
		middle_name TEXT,
		last_name TEXT NOT NULL,
		gender TEXT,
		date_of_birth DATE,
		marital_status TEXT,
		phone_number TEXT,
		alternate_phone TEXT,
		address TEXT,
		city TEXT,
		state TEXT,
		country TEXT NOT NULL DEFAULT 'Nigeria',
		nationality TEXT,
		bank_name TEXT,
		account_number TEXT,
		emergency_contact_name TEXT,
		emergency_contact_phone TEXT,
		department_id UUID REFERENCES departments(id) ON DELETE SET NULL,
		unit_id UUID REFERENCES units(id) ON DELETE SET NULL,
		office_location_id UUID REFERENCES office_locations(id) ON DELETE SET NULL,
		reports_to_id UUID REFERENCES users(id) ON DELETE SET NULL,
		employee_status TEXT NOT NULL DEFAULT 'ACTIVE',
		approval_level TEXT NOT NULL DEFAULT 'STAFF',
		date_joined DATE NOT NULL DEFAULT CURRENT_DATE,
		last_login TIMESTAMPTZ,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		is_staff BOOLEAN NOT NULL DEFAULT FALSE,
		is_superuser BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT users_email_key UNIQUE (email)
	)`,

	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'departments_head_id_fkey') THEN
			ALTER TABLE departments
				ADD CONSTRAINT departments_head_id_fkey
				FOREIGN KEY (head_id) REFERENCES users(id) ON DELETE SET NULL;
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'units_supervisor_id_fkey') THEN
			ALTER TABLE units
				ADD CONSTRAINT units_supervisor_id_fkey
				FOREIGN KEY (supervisor_id) REFERENCES users(id) ON DELETE SET NULL;
		END IF;
	END $$`,

	`CREATE INDEX IF NOT EXISTS idx_users_department_id ON users(department_id)`,
	`CREATE INDEX IF NOT EXISTS idx_users_approval_level ON users(approval_level)`,
	`CREATE INDEX IF NOT EXISTS idx_users_reports_to_id ON users(reports_to_id)`,
	`CREATE INDEX IF NOT EXISTS idx_units_department_id ON units(department_id)`,
}

// Migrate applies the schema inside a single transaction.
func (db *DB) Migrate(ctx context.Context) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin migration transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for i, stmt := range migrations {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement %d failed: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}

	return nil
}
