package service

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/mail"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/model"
)

// TalentPoolInput is the job-alerts signup form.
type TalentPoolInput struct {
	Email string `json:"email"`

	Website string `json:"-"`
}

func (in TalentPoolInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Enter a valid email")),
	)
}

// SubscribeTalentPool adds an email to the job-alerts list. An address
// already on the list gets a silent success with no duplicate row and no
// second welcome email.
func (s *Service) SubscribeTalentPool(ctx context.Context, in TalentPoolInput) (result SubmitResult) {
	defer s.recovered("talent_pool", &result)

	if in.Website != "" {
		s.log.Info("honeypot tripped, dropping submission", map[string]interface{}{"flow": "talent_pool"})
		return ok()
	}

	if err := in.Validate(); err != nil {
		return validationFailed(fieldErrorMap(err))
	}

	email := strings.ToLower(in.Email)

	exists, err := s.talentPool.Exists(ctx, email)
	if err != nil {
		s.log.WithError(err).Error("talent pool duplicate check failed, continuing", nil)
	}
	if exists {
		return ok()
	}

	entry := &model.TalentPoolEntry{
		ID:           uuid.NewString(),
		Email:        email,
		SubscribedAt: s.now().UTC(),
	}
	if err := s.talentPool.Create(ctx, entry); err != nil {
		s.log.WithError(err).Error("talent pool insert failed, continuing", nil)
	}

	msg := mail.TalentPoolWelcome(email, s.email.CareersFrom, s.siteURL)
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log.WithError(err).Error("talent pool welcome email failed", nil)
	}

	s.log.Info("talent pool signup", nil)
	return ok()
}
