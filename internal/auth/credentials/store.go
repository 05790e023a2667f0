package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PythonShinobi/Otaku-Store/internal/auth"
	"github.com/PythonShinobi/Otaku-Store/internal/db"

	"github.com/lib/pq"
)

var ErrAlreadyRegistered = errors.New("credentials already exist")

// Store is the credential store. FindUser returns (nil, nil) when no
// user has the given username.
type Store interface {
	FindUser(ctx context.Context, username string) (*auth.User, error)
	CreateUser(ctx context.Context, u auth.User) (*auth.User, error)
}

type PostgresStore struct {
	db db.Querier
}

func NewPostgresStore(q db.Querier) *PostgresStore {
	return &PostgresStore{db: q}
}

func (s *PostgresStore) FindUser(ctx context.Context, username string) (*auth.User, error) {
	var u auth.User

	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, email, password, is_admin, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("credentials: find user: %w", err)
	}

	return &u, nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, u auth.User) (*auth.User, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, u.Username, u.Email, u.PasswordHash).Scan(&u.ID, &u.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return nil, ErrAlreadyRegistered
	}
	if err != nil {
		return nil, fmt.Errorf("credentials: create user: %w", err)
	}

	return &u, nil
}
