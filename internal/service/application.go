package service

import (
	"bytes"
	"context"
	"io"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/mail"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/model"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/storage"
)

// maxResumeBytes is the resume ceiling. Unlike lead attachments an
// oversize resume does not abort the submission; it is dropped and the
// application is recorded without it.
const maxResumeBytes = 10 * 1024 * 1024

// ApplicationInput is the raw job application form.
type ApplicationInput struct {
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Position            string `json:"position"`
	YearsExperience     string `json:"yearsExperience"`
	HasCDL              string `json:"hasCDL"`
	EquipmentExperience string `json:"equipmentExperience"`

	Website string     `json:"-"`
	Resume  *FileInput `json:"-"`
}

func (in ApplicationInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.FirstName,
			validation.Required.Error("First name is required"),
			validation.Length(0, 100)),
		validation.Field(&in.LastName,
			validation.Required.Error("Last name is required"),
			validation.Length(0, 100)),
		validation.Field(&in.Phone,
			validation.Required.Error("Phone number is required"),
			validation.Length(0, 30)),
		validation.Field(&in.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Enter a valid email")),
		validation.Field(&in.Position,
			validation.Required.Error("Select a position"),
			validation.In("jetting-operator", "precision-splicer", "osp-laborer").Error("Select a position")),
		validation.Field(&in.YearsExperience,
			validation.Required.Error("Years of experience is required")),
		validation.Field(&in.HasCDL,
			validation.Required.Error("CDL status is required"),
			validation.In("yes", "no").Error("CDL status is required")),
		validation.Field(&in.EquipmentExperience, validation.Length(0, 3000)),
	)
}

// SubmitApplication runs the careers flow and returns the applicant's
// tracking number on success.
func (s *Service) SubmitApplication(ctx context.Context, in ApplicationInput) (result ApplicationResult) {
	defer s.recovered("application", &result.SubmitResult)

	if in.Website != "" {
		s.log.Info("honeypot tripped, dropping submission", map[string]interface{}{"flow": "application"})
		return ApplicationResult{SubmitResult: ok()}
	}

	if err := in.Validate(); err != nil {
		return ApplicationResult{SubmitResult: validationFailed(fieldErrorMap(err))}
	}

	tracking := newTrackingNumber(s.now())
	fullName := strings.TrimSpace(in.FirstName + " " + in.LastName)

	resume := s.readResume(in.Resume)
	resumeURL := s.uploadResume(ctx, tracking, resume)

	app := &model.Application{
		ID:                  uuid.NewString(),
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		Email:               strings.ToLower(in.Email),
		Phone:               in.Phone,
		Position:            in.Position,
		YearsExperience:     in.YearsExperience,
		HasCDL:              in.HasCDL,
		EquipmentExperience: in.EquipmentExperience,
		ResumeURL:           resumeURL,
		TrackingNumber:      tracking,
		Status:              model.StatusSubmitted,
		CreatedAt:           s.now().UTC(),
		StatusUpdatedAt:     s.now().UTC(),
	}
	if err := s.applications.Create(ctx, app); err != nil {
		s.log.WithError(err).Error("application insert failed, continuing", map[string]interface{}{
			"tracking_number": tracking,
		})
	}

	payload := mail.ApplicationPayload{
		FullName:            fullName,
		Email:               in.Email,
		Phone:               in.Phone,
		Position:            in.Position,
		YearsExperience:     in.YearsExperience,
		HasCDL:              in.HasCDL,
		EquipmentExperience: in.EquipmentExperience,
		TrackingNumber:      tracking,
	}

	notification := mail.ApplicationNotification(payload, resume, s.email.CareersFrom, s.email.CareersTo)
	if err := s.mailer.Send(ctx, notification); err != nil {
		s.log.WithError(err).Error("application notification failed", map[string]interface{}{
			"tracking_number": tracking,
		})
	}
	confirmation := mail.ApplicationConfirmation(payload, s.email.CareersFrom)
	if err := s.mailer.Send(ctx, confirmation); err != nil {
		s.log.WithError(err).Error("application confirmation failed", map[string]interface{}{
			"tracking_number": tracking,
		})
	}

	s.log.Info("application submitted", map[string]interface{}{
		"tracking_number": tracking,
		"position":        in.Position,
	})
	return ApplicationResult{SubmitResult: ok(), TrackingNumber: tracking}
}

// readResume buffers the resume for attaching and uploading. Oversize or
// unreadable resumes are dropped without failing the submission.
func (s *Service) readResume(f *FileInput) *mail.Attachment {
	if f == nil || f.Size == 0 {
		return nil
	}
	if f.Size > maxResumeBytes {
		s.log.Warn("resume exceeds size limit, dropping", map[string]interface{}{
			"file": f.Name,
			"size": f.Size,
		})
		return nil
	}

	r, err := f.Open()
	if err != nil {
		s.log.WithError(err).Error("resume open failed, dropping", map[string]interface{}{"file": f.Name})
		return nil
	}
	defer r.Close()

	content, err := io.ReadAll(io.LimitReader(r, maxResumeBytes+1))
	if err != nil {
		s.log.WithError(err).Error("resume read failed, dropping", map[string]interface{}{"file": f.Name})
		return nil
	}
	if len(content) > maxResumeBytes {
		s.log.Warn("resume exceeds size limit, dropping", map[string]interface{}{"file": f.Name})
		return nil
	}

	return &mail.Attachment{
		Filename:    f.Name,
		ContentType: f.ContentType,
		Content:     content,
	}
}

// uploadResume stores the buffered resume under the tracking number and
// returns its public URL, or empty on any failure.
func (s *Service) uploadResume(ctx context.Context, tracking string, resume *mail.Attachment) string {
	if resume == nil || !s.store.Configured() {
		return ""
	}

	key := "resumes/" + tracking + "/" + sanitizeFilename(resume.Filename)
	_, err := s.store.Put(ctx, key, bytes.NewReader(resume.Content), storage.PutObjectOptions{
		Size:        int64(len(resume.Content)),
		ContentType: resume.ContentType,
	})
	if err != nil {
		s.log.WithError(err).Error("resume upload failed, skipping", map[string]interface{}{"file": resume.Filename})
		return ""
	}
	return s.store.PublicURL(key)
}
