package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/mail"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/model"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/storage"
)

// maxLeadFileBytes is the per-file ceiling for lead attachments. One
// oversize file aborts the whole submission with a named-file error.
const maxLeadFileBytes = 25 * 1024 * 1024

// LeadInput is the raw lead form. Website is the hidden honeypot field.
type LeadInput struct {
	CompanyName      string `json:"companyName"`
	ContactName      string `json:"contactName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	CityState        string `json:"cityState"`
	ServiceNeeded    string `json:"serviceNeeded"`
	TargetStartDate  string `json:"targetStartDate"`
	EstimatedFootage string `json:"estimatedFootage"`
	Notes            string `json:"notes"`

	TurnstileToken string      `json:"-"`
	Website        string      `json:"-"`
	Files          []FileInput `json:"-"`
}

func (in LeadInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.CompanyName,
			validation.Required.Error("Company name is required"),
			validation.Length(0, 200)),
		validation.Field(&in.ContactName,
			validation.Required.Error("Contact name is required"),
			validation.Length(0, 200)),
		validation.Field(&in.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Enter a valid email")),
		validation.Field(&in.Phone,
			validation.Required.Error("Phone number is required"),
			validation.Length(0, 30)),
		validation.Field(&in.CityState,
			validation.Required.Error("City / State is required"),
			validation.Length(0, 200)),
		validation.Field(&in.ServiceNeeded,
			validation.Required.Error("Select a project type"),
			validation.In("jetting", "splicing", "both", "emergency").Error("Select a project type")),
		validation.Field(&in.EstimatedFootage, validation.Length(0, 200)),
		validation.Field(&in.Notes, validation.Length(0, 5000)),
	)
}

// SubmitLead runs the project-request flow: honeypot, validation, bot
// challenge, attachment ceiling, best-effort upload and persistence, then
// the internal alert and submitter confirmation dispatched concurrently.
func (s *Service) SubmitLead(ctx context.Context, in LeadInput) (result SubmitResult) {
	defer s.recovered("lead", &result)

	// Bots that fill the hidden field get a clean success and nothing else.
	if in.Website != "" {
		s.log.Info("honeypot tripped, dropping submission", map[string]interface{}{"flow": "lead"})
		return ok()
	}

	if err := in.Validate(); err != nil {
		return validationFailed(fieldErrorMap(err))
	}

	if v := s.verifier.Verify(ctx, in.TurnstileToken); !v.Success {
		msg := v.Error
		if msg == "" {
			msg = "Bot verification failed. Please refresh and try again."
		}
		return badRequest(msg)
	}

	for _, f := range in.Files {
		if f.Size > maxLeadFileBytes {
			return badRequest(fmt.Sprintf("File %q exceeds the 25MB limit.", f.Name))
		}
	}

	fileURLs := s.uploadLeadFiles(ctx, in.Files)

	lead := &model.Lead{
		ID:               uuid.NewString(),
		CompanyName:      in.CompanyName,
		ContactName:      in.ContactName,
		Email:            in.Email,
		Phone:            in.Phone,
		CityState:        in.CityState,
		ServiceNeeded:    in.ServiceNeeded,
		TargetStartDate:  in.TargetStartDate,
		EstimatedFootage: in.EstimatedFootage,
		Notes:            in.Notes,
		FileURLs:         fileURLs,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		s.log.WithError(err).Error("lead insert failed, continuing", map[string]interface{}{
			"company": lead.CompanyName,
		})
	}

	payload := mail.LeadPayload{
		CompanyName:      in.CompanyName,
		ContactName:      in.ContactName,
		Email:            in.Email,
		Phone:            in.Phone,
		CityState:        in.CityState,
		ServiceNeeded:    in.ServiceNeeded,
		EstimatedFootage: in.EstimatedFootage,
		TargetStartDate:  in.TargetStartDate,
		Notes:            in.Notes,
		FileURLs:         fileURLs,
	}

	// Internal alert and confirmation go out in parallel; the response
	// waits for both but ignores their failures.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		msg := mail.LeadNotification(payload, s.email.From, s.email.NotificationTo)
		if err := s.mailer.Send(ctx, msg); err != nil {
			s.log.WithError(err).Error("lead internal notification failed", nil)
		}
	}()
	go func() {
		defer wg.Done()
		msg := mail.LeadConfirmation(payload, s.email.From)
		if err := s.mailer.Send(ctx, msg); err != nil {
			s.log.WithError(err).Error("lead confirmation failed", nil)
		}
	}()
	wg.Wait()

	s.log.Info("lead submitted", map[string]interface{}{
		"company": in.CompanyName,
		"service": in.ServiceNeeded,
		"files":   len(fileURLs),
	})
	return ok()
}

// uploadLeadFiles pushes each attachment under a shared timestamp prefix.
// Individual failures skip that file; a missing storage backend skips the
// whole batch.
func (s *Service) uploadLeadFiles(ctx context.Context, files []FileInput) []string {
	if len(files) == 0 || !s.store.Configured() {
		return nil
	}

	prefix := "prints/" + strconv.FormatInt(s.now().Unix(), 10)
	urls := make([]string, 0, len(files))
	for _, f := range files {
		if f.Size == 0 {
			continue
		}
		key := prefix + "/" + sanitizeFilename(f.Name)

		r, err := f.Open()
		if err != nil {
			s.log.WithError(err).Error("attachment open failed, skipping", map[string]interface{}{"file": f.Name})
			continue
		}
		_, err = s.store.Put(ctx, key, r, storage.PutObjectOptions{
			Size:        f.Size,
			ContentType: f.ContentType,
		})
		r.Close()
		if err != nil {
			s.log.WithError(err).Error("attachment upload failed, skipping", map[string]interface{}{"file": f.Name})
			continue
		}
		urls = append(urls, s.store.PublicURL(key))
	}
	return urls
}
