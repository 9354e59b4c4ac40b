package postgres

import (
	"context"
	"database/sql"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/model"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/repository"
)

// ApplicationPostgres is a PostgreSQL implementation of
// repository.ApplicationRepository.
type ApplicationPostgres struct {
	db *sql.DB
}

// NewApplicationPostgres creates a new ApplicationPostgres repository.
func NewApplicationPostgres(db *sql.DB) *ApplicationPostgres {
	return &ApplicationPostgres{db: db}
}

var _ repository.ApplicationRepository = (*ApplicationPostgres)(nil)

// Create inserts a new application row.
func (r *ApplicationPostgres) Create(ctx context.Context, app *model.Application) error {
	const q = `
		INSERT INTO applications (id, first_name, last_name, email, phone, position,
			years_experience, has_cdl, equipment_experience, resume_url,
			tracking_number, status, created_at, status_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, q,
		app.ID,
		app.FirstName,
		app.LastName,
		app.Email,
		app.Phone,
		app.Position,
		app.YearsExperience,
		app.HasCDL,
		app.EquipmentExperience,
		app.ResumeURL,
		app.TrackingNumber,
		app.Status,
		app.CreatedAt,
		app.StatusUpdatedAt,
	)
	return err
}

// FindByEmail returns all applications for an email, newest first.
func (r *ApplicationPostgres) FindByEmail(ctx context.Context, email string) ([]model.Application, error) {
	const q = `
		SELECT id, first_name, last_name, email, phone, position,
			years_experience, has_cdl, equipment_experience, resume_url,
			tracking_number, status, created_at, status_updated_at
		FROM applications
		WHERE email = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Application, 0)
	for rows.Next() {
		var a model.Application
		if err := rows.Scan(
			&a.ID,
			&a.FirstName,
			&a.LastName,
			&a.Email,
			&a.Phone,
			&a.Position,
			&a.YearsExperience,
			&a.HasCDL,
			&a.EquipmentExperience,
			&a.ResumeURL,
			&a.TrackingNumber,
			&a.Status,
			&a.CreatedAt,
			&a.StatusUpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
