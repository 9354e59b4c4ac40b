package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ApplicationStatus is one row of the applicant-facing status lookup.
type ApplicationStatus struct {
	TrackingNumber  string    `json:"trackingNumber"`
	Position        string    `json:"position"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	StatusUpdatedAt time.Time `json:"statusUpdatedAt"`
}

// StatusResult is the outcome of a status lookup.
type StatusResult struct {
	SubmitResult
	Applications []ApplicationStatus `json:"applications"`
}

// StatusInput is the status lookup form.
type StatusInput struct {
	Email string `json:"email"`
}

func (in StatusInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Enter a valid email")),
	)
}

// CheckApplicationStatus returns an applicant's submissions, newest
// first. A missing database yields an empty list, not an error.
func (s *Service) CheckApplicationStatus(ctx context.Context, in StatusInput) (result StatusResult) {
	defer s.recovered("status_lookup", &result.SubmitResult)

	if err := in.Validate(); err != nil {
		return StatusResult{SubmitResult: validationFailed(fieldErrorMap(err))}
	}

	apps, err := s.applications.FindByEmail(ctx, strings.ToLower(in.Email))
	if err != nil {
		s.log.WithError(err).Error("application status query failed", nil)
		return StatusResult{SubmitResult: SubmitResult{
			Success:    false,
			Error:      "Unable to look up applications. Please try again.",
			StatusCode: http.StatusInternalServerError,
		}}
	}

	entries := make([]ApplicationStatus, 0, len(apps))
	for _, app := range apps {
		entries = append(entries, ApplicationStatus{
			TrackingNumber:  app.TrackingNumber,
			Position:        app.Position,
			Status:          app.Status,
			CreatedAt:       app.CreatedAt,
			StatusUpdatedAt: app.StatusUpdatedAt,
		})
	}

	return StatusResult{SubmitResult: ok(), Applications: entries}
}
