package repository

import (
	"context"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/model"
)

// LeadRepository persists project/bid requests. Strictly persistence
// operations, no business logic.
type LeadRepository interface {
	// Create inserts a new lead row. The caller provides ID and CreatedAt.
	Create(ctx context.Context, lead *model.Lead) error
}
