package repository

import (
	"context"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/model"
)

// ReferralRepository persists candidate referrals.
type ReferralRepository interface {
	Create(ctx context.Context, ref *model.Referral) error
}
