package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

type userRepo struct {
	db *sql.DB
}

func (r *userRepo) GetOrCreate(ctx context.Context, email string) (*User, error) {
	u, err := r.getByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	u = &User{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, is_admin, is_subscribed, created_at)
		 VALUES (?, ?, 0, 0, ?)`,
		u.ID, u.Email, u.CreatedAt,
	)
	if err != nil {
		// Lost a race with a concurrent insert; read the winner.
		if existing, gerr := r.getByEmail(ctx, email); gerr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *userRepo) getByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, email, is_admin, is_subscribed, created_at
		 FROM users WHERE email = ?`, email)

	var u User
	err := row.Scan(&u.ID, &u.Email, &u.IsAdmin, &u.IsSubscribed, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func (r *userRepo) SetSubscribed(ctx context.Context, id string, subscribed bool) error {
	return r.setFlag(ctx, "is_subscribed", id, subscribed)
}

func (r *userRepo) SetAdmin(ctx context.Context, id string, admin bool) error {
	return r.setFlag(ctx, "is_admin", id, admin)
}

func (r *userRepo) setFlag(ctx context.Context, column, id string, value bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET "+column+" = ? WHERE id = ?", value, id)
	if err != nil {
		return fmt.Errorf("update %s: %w", column, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
