package postgres

import (
	"context"
	"database/sql"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/model"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/repository"
)

// TalentPoolPostgres is a PostgreSQL implementation of
// repository.TalentPoolRepository.
type TalentPoolPostgres struct {
	db *sql.DB
}

// NewTalentPoolPostgres creates a new TalentPoolPostgres repository.
func NewTalentPoolPostgres(db *sql.DB) *TalentPoolPostgres {
	return &TalentPoolPostgres{db: db}
}

var _ repository.TalentPoolRepository = (*TalentPoolPostgres)(nil)

// Exists reports whether an email is already subscribed.
func (r *TalentPoolPostgres) Exists(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM talent_pool WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts a new signup row.
func (r *TalentPoolPostgres) Create(ctx context.Context, entry *model.TalentPoolEntry) error {
	const q = `INSERT INTO talent_pool (id, email, subscribed_at) VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, q, entry.ID, entry.Email, entry.SubscribedAt)
	return err
}
