package postgres

import (
	"context"
	"database/sql"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/model"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/repository"
)

// ReferralPostgres is a PostgreSQL implementation of
// repository.ReferralRepository.
type ReferralPostgres struct {
	db *sql.DB
}

// NewReferralPostgres creates a new ReferralPostgres repository.
func NewReferralPostgres(db *sql.DB) *ReferralPostgres {
	return &ReferralPostgres{db: db}
}

var _ repository.ReferralRepository = (*ReferralPostgres)(nil)

// Create inserts a new referral row.
func (r *ReferralPostgres) Create(ctx context.Context, ref *model.Referral) error {
	const q = `
		INSERT INTO referrals (id, referrer_name, referrer_email, referrer_phone,
			candidate_name, candidate_email, candidate_phone, position, notes,
			status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, q,
		ref.ID,
		ref.ReferrerName,
		ref.ReferrerEmail,
		ref.ReferrerPhone,
		ref.CandidateName,
		ref.CandidateEmail,
		ref.CandidatePhone,
		ref.Position,
		ref.Notes,
		ref.Status,
		ref.CreatedAt,
	)
	return err
}
