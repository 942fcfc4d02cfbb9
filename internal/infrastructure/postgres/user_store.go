package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
	"github.com/oksasatya/go-auth-engine/internal/domain/port"
	"github.com/oksasatya/go-auth-engine/internal/domain/valueobject"
)

const uniqueViolation = "23505"

// UserStore persists accounts in Postgres. Email is the primary key, so the
// unique constraint is the atomic duplicate guard Create relies on.
type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

func (s *UserStore) Get(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	var (
		rawEmail string
		u        entity.User
	)
	row := s.pool.QueryRow(ctx, `
		SELECT email, password_hash, requires_2fa, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email.String())

	if err := row.Scan(&rawEmail, &u.PasswordHash, &u.RequiresTwoFa, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrNotFound
		}
		return nil, err
	}
	parsed, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	u.Email = parsed
	return &u, nil
}

func (s *UserStore) Create(ctx context.Context, u *entity.User) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (email, password_hash, requires_2fa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, u.Email.String(), u.PasswordHash, u.RequiresTwoFa, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return port.ErrConflict
		}
		return err
	}
	return nil
}

func (s *UserStore) Update(ctx context.Context, u *entity.User) error {
	res, err := s.pool.Exec(ctx, `
		UPDATE users
		SET password_hash = $1, requires_2fa = $2, updated_at = $3
		WHERE email = $4
	`, u.PasswordHash, u.RequiresTwoFa, u.UpdatedAt, u.Email.String())
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (s *UserStore) Delete(ctx context.Context, email valueobject.Email) error {
	res, err := s.pool.Exec(ctx, `
		DELETE FROM users
		WHERE email = $1
	`, email.String())
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

var _ port.UserStore = (*UserStore)(nil)
