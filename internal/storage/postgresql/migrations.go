package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/tern/v2/migrate"
)

const migrationsTable = "walletd_migrations"

// walletSchema is applied at startup. Each user owns exactly one wallet,
// so user_id keys the deposits and withdrawals directly.
var walletSchema = []*migrate.Migration{
	{
		Sequence: 1,
		Name:     "wallet schema",
		UpSQL: `
			CREATE TABLE IF NOT EXISTS users (
					id SERIAL PRIMARY KEY,
					login VARCHAR(255) UNIQUE NOT NULL,
					password_hash VARCHAR(255) NOT NULL,
					created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			);

			CREATE TABLE IF NOT EXISTS deposits (
					id SERIAL PRIMARY KEY,
					user_id INTEGER NOT NULL REFERENCES users(id),
					reference VARCHAR(255) UNIQUE NOT NULL,
					status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
					amount BIGINT NOT NULL DEFAULT 0,
					created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
					last_polled_at TIMESTAMP WITH TIME ZONE
			);

			CREATE TABLE IF NOT EXISTS withdrawals (
					id SERIAL PRIMARY KEY,
					user_id INTEGER NOT NULL REFERENCES users(id),
					destination VARCHAR(255) NOT NULL,
					amount BIGINT NOT NULL,
					processed_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			);

			CREATE INDEX IF NOT EXISTS idx_deposits_user_id_status
			ON deposits (user_id, status);

			CREATE INDEX IF NOT EXISTS idx_withdrawals_user_id
			ON withdrawals (user_id);
		`,
		DownSQL: `
			DROP INDEX IF EXISTS idx_deposits_user_id_status;
			DROP INDEX IF EXISTS idx_withdrawals_user_id;

			DROP TABLE IF EXISTS withdrawals;
			DROP TABLE IF EXISTS deposits;
			DROP TABLE IF EXISTS users;
		`,
	},
}

func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire migration connection: %w", err)
	}
	defer conn.Release()

	m, err := migrate.NewMigrator(ctx, conn.Conn(), migrationsTable)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}
	m.Migrations = walletSchema

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate wallet schema: %w", err)
	}

	return nil
}
