package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres unique_violation
const uniqueViolation = "23505"

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Create(ctx context.Context, u *User) (int64, error) {
	query := `
		INSERT INTO users (email, name, password, nickname, age, phone, sex)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		u.Email, u.Name, u.Password, u.Nickname, u.Age, u.Phone, u.Sex,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrEmailTaken
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	u.ID = id
	return id, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.get(ctx, `
		SELECT id, email, name, password, nickname, age, phone, sex
		FROM users WHERE email = $1
	`, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	return r.get(ctx, `
		SELECT id, email, name, password, nickname, age, phone, sex
		FROM users WHERE id = $1
	`, id)
}

func (r *PostgresRepository) get(ctx context.Context, query string, arg any) (*User, error) {
	u := &User{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.Name, &u.Password, &u.Nickname, &u.Age, &u.Phone, &u.Sex,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}
