package database

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// Connect opens the application connection pool. DATABASE_URL wins when
// set; otherwise the URL is assembled from the discrete DB_* variables.
func Connect(ctx context.Context) (*pgxpool.Pool, error) {
	_ = godotenv.Load()

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		connStr = fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			port,
			os.Getenv("DB_NAME"))
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("error creating connection pool: %v", err)
	}
	return pool, nil
}
