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

// ReferralInput is the raw referral form.
type ReferralInput struct {
	ReferrerName   string `json:"referrerName"`
	ReferrerEmail  string `json:"referrerEmail"`
	ReferrerPhone  string `json:"referrerPhone"`
	CandidateName  string `json:"candidateName"`
	CandidateEmail string `json:"candidateEmail"`
	CandidatePhone string `json:"candidatePhone"`
	Position       string `json:"position"`
	Notes          string `json:"notes"`

	Website string `json:"-"`
}

func (in ReferralInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ReferrerName,
			validation.Required.Error("Your name is required"),
			validation.Length(0, 200)),
		validation.Field(&in.ReferrerEmail,
			validation.Required.Error("Your email is required"),
			is.EmailFormat.Error("Enter a valid email")),
		validation.Field(&in.ReferrerPhone, validation.Length(0, 30)),
		validation.Field(&in.CandidateName,
			validation.Required.Error("Candidate name is required"),
			validation.Length(0, 200)),
		validation.Field(&in.CandidateEmail,
			validation.Required.Error("Candidate email is required"),
			is.EmailFormat.Error("Enter a valid email")),
		validation.Field(&in.CandidatePhone, validation.Length(0, 30)),
		validation.Field(&in.Position, validation.Length(0, 200)),
		validation.Field(&in.Notes, validation.Length(0, 3000)),
	)
}

// SubmitReferral records a candidate referral and alerts the careers
// inbox. Emails are stored lowercased.
func (s *Service) SubmitReferral(ctx context.Context, in ReferralInput) (result SubmitResult) {
	defer s.recovered("referral", &result)

	if in.Website != "" {
		s.log.Info("honeypot tripped, dropping submission", map[string]interface{}{"flow": "referral"})
		return ok()
	}

	if err := in.Validate(); err != nil {
		return validationFailed(fieldErrorMap(err))
	}

	ref := &model.Referral{
		ID:             uuid.NewString(),
		ReferrerName:   in.ReferrerName,
		ReferrerEmail:  strings.ToLower(in.ReferrerEmail),
		ReferrerPhone:  in.ReferrerPhone,
		CandidateName:  in.CandidateName,
		CandidateEmail: strings.ToLower(in.CandidateEmail),
		CandidatePhone: in.CandidatePhone,
		Position:       in.Position,
		Notes:          in.Notes,
		Status:         model.StatusSubmitted,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.referrals.Create(ctx, ref); err != nil {
		s.log.WithError(err).Error("referral insert failed, continuing", map[string]interface{}{
			"candidate": in.CandidateName,
		})
	}

	msg := mail.ReferralNotification(mail.ReferralPayload{
		ReferrerName:   in.ReferrerName,
		ReferrerEmail:  in.ReferrerEmail,
		ReferrerPhone:  in.ReferrerPhone,
		CandidateName:  in.CandidateName,
		CandidateEmail: in.CandidateEmail,
		CandidatePhone: in.CandidatePhone,
		Position:       in.Position,
		Notes:          in.Notes,
	}, s.email.CareersFrom, s.email.CareersTo)
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log.WithError(err).Error("referral notification failed", nil)
	}

	s.log.Info("referral submitted", map[string]interface{}{
		"candidate": in.CandidateName,
	})
	return ok()
}
