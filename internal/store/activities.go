package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type activityRepo struct {
	db *sql.DB
}

func (r *activityRepo) Save(ctx context.Context, a *SavedActivity) (string, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	formJSON, err := json.Marshal(a.FormData)
	if err != nil {
		return "", fmt.Errorf("marshal form data: %w", err)
	}
	pagesJSON, err := json.Marshal(a.Pages)
	if err != nil {
		return "", fmt.Errorf("marshal pages: %w", err)
	}

	// Anonymous worksheets carry no owner; NULL keeps the foreign key
	// to users honest.
	owner := sql.NullString{String: a.UserID, Valid: a.UserID != ""}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO activities (id, user_id, name, form_data, pages_data, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, owner, a.Name, string(formJSON), string(pagesJSON), a.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert activity: %w", err)
	}
	return a.ID, nil
}

func (r *activityRepo) List(ctx context.Context, userID string) ([]SavedActivity, error) {
	q := `SELECT id, user_id, name, form_data, pages_data, created_at
	      FROM activities WHERE user_id = ?
	      ORDER BY created_at DESC`
	args := []any{userID}
	if userID == "" {
		q = `SELECT id, user_id, name, form_data, pages_data, created_at
		     FROM activities WHERE user_id IS NULL
		     ORDER BY created_at DESC`
		args = nil
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	var out []SavedActivity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *activityRepo) Get(ctx context.Context, id string) (*SavedActivity, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, form_data, pages_data, created_at
		 FROM activities WHERE id = ?`, id)

	a, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *activityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*SavedActivity, error) {
	var (
		a         SavedActivity
		owner     sql.NullString
		formJSON  string
		pagesJSON string
	)
	err := row.Scan(&a.ID, &owner, &a.Name, &formJSON, &pagesJSON, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.UserID = owner.String
	if err := json.Unmarshal([]byte(formJSON), &a.FormData); err != nil {
		return nil, fmt.Errorf("unmarshal form data for %s: %w", a.ID, err)
	}
	if pagesJSON != "" {
		if err := json.Unmarshal([]byte(pagesJSON), &a.Pages); err != nil {
			return nil, fmt.Errorf("unmarshal pages for %s: %w", a.ID, err)
		}
	}
	return &a, nil
}
