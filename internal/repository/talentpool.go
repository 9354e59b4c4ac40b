package repository

import (
	"context"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/model"
)

// TalentPoolRepository persists job-alert signups.
type TalentPoolRepository interface {
	// Exists reports whether an email is already subscribed.
	Exists(ctx context.Context, email string) (bool, error)

	// Create inserts a new signup row.
	Create(ctx context.Context, entry *model.TalentPoolEntry) error
}
