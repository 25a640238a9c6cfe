package repo

import (
	"context"
	"database/sql"
)

// Credential is what the auth layer needs to verify a login. A zero ID
// means the login is unknown.
type Credential struct {
	ID           int
	PasswordHash string
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, passwordHash string) (int, error)
	GetByLogin(ctx context.Context, login string) (Credential, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, passwordHash string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, passwordHash).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (Credential, error) {
	var cred Credential
	query := "SELECT id, password FROM users WHERE login=$1"
	err := r.db.QueryRowContext(ctx, query, login).Scan(&cred.ID, &cred.PasswordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return Credential{}, nil
		}
		return Credential{}, err
	}
	return cred, nil
}
