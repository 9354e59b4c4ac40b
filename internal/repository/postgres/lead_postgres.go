package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/model"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/repository"
)

// LeadPostgres is a PostgreSQL implementation of repository.LeadRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type LeadPostgres struct {
	db *sql.DB
}

// NewLeadPostgres creates a new LeadPostgres repository.
func NewLeadPostgres(db *sql.DB) *LeadPostgres {
	return &LeadPostgres{db: db}
}

var _ repository.LeadRepository = (*LeadPostgres)(nil)

// Create inserts a new lead row.
func (r *LeadPostgres) Create(ctx context.Context, lead *model.Lead) error {
	const q = `
		INSERT INTO leads (id, company_name, contact_name, email, phone, city_state,
			service_needed, target_date, estimated_footage, notes, file_urls, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	fileURLs := lead.FileURLs
	if fileURLs == nil {
		fileURLs = []string{}
	}
	urls, err := json.Marshal(fileURLs)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, q,
		lead.ID,
		lead.CompanyName,
		lead.ContactName,
		lead.Email,
		lead.Phone,
		lead.CityState,
		lead.ServiceNeeded,
		lead.TargetStartDate,
		lead.EstimatedFootage,
		lead.Notes,
		urls,
		lead.CreatedAt,
	)
	return err
}
