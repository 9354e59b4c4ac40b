package noop

import (
	"context"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/logger"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/model"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/repository"
)

// Package noop provides null-object repositories selected at startup when
// no database is configured. Writes are logged and discarded so that
// submission flows still succeed; reads return empty results.

// Repositories bundles one null-object per repository interface.
type Repositories struct {
	Leads        repository.LeadRepository
	Applications repository.ApplicationRepository
	Referrals    repository.ReferralRepository
	TalentPool   repository.TalentPoolRepository
}

// New creates the full set of null-object repositories.
func New(log logger.Logger) *Repositories {
	l := log.WithFields(map[string]interface{}{"component": "repository", "backend": "noop"})
	return &Repositories{
		Leads:        &leadNoop{log: l},
		Applications: &applicationNoop{log: l},
		Referrals:    &referralNoop{log: l},
		TalentPool:   &talentPoolNoop{log: l},
	}
}

type leadNoop struct {
	log logger.Logger
}

func (r *leadNoop) Create(_ context.Context, lead *model.Lead) error {
	r.log.Warn("database not configured, lead not persisted", map[string]interface{}{
		"company": lead.CompanyName,
		"email":   lead.Email,
	})
	return nil
}

type applicationNoop struct {
	log logger.Logger
}

func (r *applicationNoop) Create(_ context.Context, app *model.Application) error {
	r.log.Warn("database not configured, application not persisted", map[string]interface{}{
		"email":    app.Email,
		"tracking": app.TrackingNumber,
	})
	return nil
}

func (r *applicationNoop) FindByEmail(context.Context, string) ([]model.Application, error) {
	return []model.Application{}, nil
}

type referralNoop struct {
	log logger.Logger
}

func (r *referralNoop) Create(_ context.Context, ref *model.Referral) error {
	r.log.Warn("database not configured, referral not persisted", map[string]interface{}{
		"candidate": ref.CandidateEmail,
	})
	return nil
}

type talentPoolNoop struct {
	log logger.Logger
}

func (r *talentPoolNoop) Exists(context.Context, string) (bool, error) {
	return false, nil
}

func (r *talentPoolNoop) Create(_ context.Context, entry *model.TalentPoolEntry) error {
	r.log.Warn("database not configured, signup not persisted", map[string]interface{}{
		"email": entry.Email,
	})
	return nil
}
