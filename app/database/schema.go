package database

import (
	"database/sql"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// InitSchema ensures all tables, indexes and seed rows exist. The panel runs
// against whatever database it is pointed at, so everything here is
// idempotent.
func InitSchema(db *sql.DB) error {
	log.Println("Initializing database schema...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_code VARCHAR(50) UNIQUE NOT NULL,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			khmer_name VARCHAR(255) DEFAULT '',
			gender VARCHAR(10) DEFAULT '',
			date_of_birth DATE,
			phone VARCHAR(20) DEFAULT '',
			guardian_name VARCHAR(255) DEFAULT '',
			guardian_phone VARCHAR(20) DEFAULT '',
			class_name VARCHAR(100) DEFAULT '',
			photo_url TEXT DEFAULT '',
			enrolled_at DATE NOT NULL DEFAULT CURRENT_DATE,
			tuition_fee NUMERIC NOT NULL DEFAULT 0,
			material_fee NUMERIC NOT NULL DEFAULT 0,
			admin_fee NUMERIC NOT NULL DEFAULT 0,
			discount_amount NUMERIC NOT NULL DEFAULT 0,
			discount_percent NUMERIC NOT NULL DEFAULT 0,
			initial_payment NUMERIC NOT NULL DEFAULT 0,
			due_date TEXT DEFAULT '',
			payment_status TEXT DEFAULT '',
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS installments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			amount NUMERIC NOT NULL,
			paid_amount NUMERIC NOT NULL DEFAULT 0,
			paid BOOLEAN DEFAULT false,
			status VARCHAR(20) DEFAULT '',
			date TEXT DEFAULT '',
			note TEXT DEFAULT '',
			receiver VARCHAR(255) DEFAULT '',
			receipt_no VARCHAR(64) UNIQUE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100) DEFAULT '',
			unit_price NUMERIC NOT NULL DEFAULT 0,
			unit_cost NUMERIC NOT NULL DEFAULT 0,
			stock_qty INTEGER NOT NULL DEFAULT 0,
			low_stock_level INTEGER NOT NULL DEFAULT 5,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			item_id UUID NOT NULL REFERENCES items(id) ON DELETE CASCADE,
			quantity INTEGER NOT NULL,
			unit_price NUMERIC NOT NULL,
			total NUMERIC NOT NULL,
			sold_by UUID,
			sold_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			kind VARCHAR(10) NOT NULL CHECK (kind IN ('income', 'expense')),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			amount NUMERIC NOT NULL,
			date DATE NOT NULL,
			notes TEXT DEFAULT '',
			recorded_by UUID,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating table: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_students_is_active ON students(is_active)`,
		`CREATE INDEX IF NOT EXISTS idx_students_class_name ON students(class_name)`,
		`CREATE INDEX IF NOT EXISTS idx_students_deleted_at ON students(deleted_at)`,
		`CREATE INDEX IF NOT EXISTS idx_installments_student_id ON installments(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_sold_at ON sales(sold_at)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_category_id ON transactions(category_id)`,
	}
	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating index: %v", err)
		}
	}

	if err := seedRoles(db); err != nil {
		return err
	}
	if err := seedCategories(db); err != nil {
		return err
	}
	return seedAdminUser(db)
}

func seedRoles(db *sql.DB) error {
	for _, name := range []string{"admin", "accountant", "staff"} {
		if _, err := db.Exec(`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return err
		}
	}
	return nil
}

func seedCategories(db *sql.DB) error {
	seeds := []struct {
		name, kind string
	}{
		{"Tuition", "income"},
		{"Sales", "income"},
		{"Other Income", "income"},
		{"Salary", "expense"},
		{"Rent", "expense"},
		{"Utilities", "expense"},
		{"Supplies", "expense"},
	}
	for _, s := range seeds {
		if _, err := db.Exec(`INSERT INTO categories (name, kind) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`, s.name, s.kind); err != nil {
			return err
		}
	}
	return nil
}

// seedAdminUser creates the initial admin account when the users table is
// empty so a fresh install is reachable.
func seedAdminUser(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), 14)
	if err != nil {
		return err
	}

	var userID string
	err = db.QueryRow(`INSERT INTO users (email, password, first_name, last_name)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		"admin@sala.local", string(hash), "System", "Admin").Scan(&userID)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO user_roles (user_id, role_id)
		SELECT $1, id FROM roles WHERE name = 'admin'`, userID)
	if err != nil {
		return err
	}

	log.Println("Seeded default admin user admin@sala.local (password: changeme)")
	return nil
}
