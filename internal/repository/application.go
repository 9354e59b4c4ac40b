package repository

import (
	"context"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/model"
)

// ApplicationRepository persists job applications and serves the
// applicant-facing status lookup.
type ApplicationRepository interface {
	// Create inserts a new application row.
	Create(ctx context.Context, app *model.Application) error

	// FindByEmail returns all applications for an email, newest first.
	FindByEmail(ctx context.Context, email string) ([]model.Application, error)
}
