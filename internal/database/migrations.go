package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations creates the schema when it does not exist yet. Statements
// are idempotent so the server can run them on every startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS user_settings (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
			currency TEXT NOT NULL DEFAULT 'BRL',
			theme TEXT NOT NULL DEFAULT 'light',
			notifications_enabled BOOLEAN NOT NULL DEFAULT TRUE,
			weekly_reports BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			type TEXT NOT NULL CHECK (type IN ('income', 'expense', 'investment')),
			icon TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '',
			budget NUMERIC(14,2),
			amount NUMERIC(14,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS bank_accounts (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			type TEXT NOT NULL CHECK (type IN ('checking', 'savings', 'investment', 'wallet', 'other')),
			initial_balance NUMERIC(14,2) NOT NULL DEFAULT 0,
			color TEXT NOT NULL DEFAULT '',
			bank TEXT NOT NULL DEFAULT '',
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS credit_cards (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			credit_limit NUMERIC(14,2) NOT NULL DEFAULT 0,
			closing_day INTEGER NOT NULL CHECK (closing_day BETWEEN 1 AND 31),
			due_day INTEGER NOT NULL CHECK (due_day BETWEEN 1 AND 31),
			color TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			description TEXT NOT NULL,
			amount NUMERIC(14,2) NOT NULL CHECK (amount > 0),
			date DATE NOT NULL,
			type TEXT NOT NULL CHECK (type IN ('income', 'expense', 'investment')),
			category_id INTEGER NOT NULL REFERENCES categories(id),
			payment_method TEXT NOT NULL CHECK (payment_method IN ('cash', 'credit', 'debit', 'pix', 'transfer')),
			expense_type TEXT CHECK (expense_type IN ('fixed', 'variable')),
			account_id INTEGER REFERENCES bank_accounts(id),
			credit_card_id INTEGER REFERENCES credit_cards(id),
			installment_number INTEGER,
			total_installments INTEGER,
			installment_group UUID,
			paid BOOLEAN NOT NULL DEFAULT FALSE,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS goals (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			target_amount NUMERIC(14,2) NOT NULL,
			current_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
			deadline DATE,
			category_id INTEGER REFERENCES categories(id),
			notes TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '',
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS investments (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			amount NUMERIC(14,2) NOT NULL,
			type TEXT NOT NULL CHECK (type IN ('cdb', 'lci', 'lca', 'tesouro', 'funds', 'stocks', 'crypto', 'others')),
			initial_date DATE NOT NULL,
			due_date DATE,
			expected_return NUMERIC(8,4),
			current_return NUMERIC(8,4),
			category_id INTEGER NOT NULL REFERENCES categories(id),
			goal_id INTEGER REFERENCES goals(id),
			notes TEXT NOT NULL DEFAULT '',
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions (user_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_account ON transactions (account_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_card ON transactions (credit_card_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %v", err)
		}
	}
	log.Println("database schema is up to date")
	return nil
}
