package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/controlfin/controlfin-backend/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser stores a new user with a hashed password and a default
// settings row.
func RegisterUser(pool *pgxpool.Pool, user *models.User) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %v", err)
	}

	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err = pool.QueryRow(context.Background(), query, user.Name, user.Email, string(hash)).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("error registering user: %v", err)
	}
	user.Password = ""

	_, err = pool.Exec(context.Background(),
		`INSERT INTO user_settings (user_id) VALUES ($1)`, user.ID)
	if err != nil {
		return fmt.Errorf("error creating default settings: %v", err)
	}
	return nil
}

func AuthenticateUser(pool *pgxpool.Pool, email, password string) (*models.User, error) {
	query := `SELECT id, name, email, password, created_at FROM users WHERE email = $1`

	user := &models.User{}
	err := pool.QueryRow(context.Background(), query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("invalid email or password")
		}
		return nil, fmt.Errorf("error fetching user: %v", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errors.New("invalid email or password")
	}
	user.Password = ""
	return user, nil
}

func GetUserByID(pool *pgxpool.Pool, id int) (*models.User, error) {
	query := `SELECT id, name, email, created_at FROM users WHERE id = $1`

	user := &models.User{}
	err := pool.QueryRow(context.Background(), query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with ID %d not found", id)
		}
		return nil, fmt.Errorf("error fetching user: %v", err)
	}
	return user, nil
}
