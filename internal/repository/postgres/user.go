package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/repository"
)

type userRepository struct {
	q DBTX
}

func NewUserRepository(q DBTX) repository.UserRepository {
	return &userRepository{q: q}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`
	return r.q.QueryRowContext(ctx, query, u.Name, u.Email).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email FROM users WHERE id = $1`
	err := r.q.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email FROM users WHERE email = $1`
	err := r.q.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: user with email %s", domain.ErrNotFound, email)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name, email FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name = $1, email = $2 WHERE id = $3`
	_, err := r.q.ExecContext(ctx, query, u.Name, u.Email, u.ID)
	return err
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

func (r *userRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`
	if err := r.q.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
