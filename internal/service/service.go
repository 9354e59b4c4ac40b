package service

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"net/http"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/config"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/logger"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/mail"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/repository"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/storage"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/turnstile"
)

// Package service contains the submission orchestrators. Each flow follows
// the same sequence: honeypot check, validation, optional bot challenge,
// attachment handling, persistence, notification. Persistence and email
// are best effort; a submission is never failed over an infrastructure
// problem once validation has passed.

// genericErrorMessage is the only message shown for unexpected failures.
const genericErrorMessage = "An unexpected error occurred. Please try again."

// SubmitResult is the outcome of one submission flow.
type SubmitResult struct {
	Success     bool              `json:"success"`
	Error       string            `json:"error,omitempty"`
	FieldErrors map[string]string `json:"errors,omitempty"`

	// StatusCode is the HTTP status the transport layer should use.
	StatusCode int `json:"-"`
}

// ApplicationResult extends SubmitResult with the applicant's tracking
// number.
type ApplicationResult struct {
	SubmitResult
	TrackingNumber string `json:"trackingNumber,omitempty"`
}

// FileInput is one uploaded file as received from the transport layer.
// Open must return a fresh reader on each call.
type FileInput struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// Service drives the four submission flows against its injected adapters.
// Any adapter may be a null object; the flows degrade per adapter rather
// than failing outright.
type Service struct {
	leads        repository.LeadRepository
	applications repository.ApplicationRepository
	referrals    repository.ReferralRepository
	talentPool   repository.TalentPoolRepository
	store        storage.Storage
	mailer       mail.Mailer
	verifier     turnstile.Verifier
	email        config.EmailConfig
	siteURL      string
	log          logger.Logger

	now func() time.Time
}

// New creates a Service.
func New(
	leads repository.LeadRepository,
	applications repository.ApplicationRepository,
	referrals repository.ReferralRepository,
	talentPool repository.TalentPoolRepository,
	store storage.Storage,
	mailer mail.Mailer,
	verifier turnstile.Verifier,
	email config.EmailConfig,
	siteURL string,
	log logger.Logger,
) *Service {
	return &Service{
		leads:        leads,
		applications: applications,
		referrals:    referrals,
		talentPool:   talentPool,
		store:        store,
		mailer:       mailer,
		verifier:     verifier,
		email:        email,
		siteURL:      siteURL,
		log:          log,
		now:          time.Now,
	}
}

func ok() SubmitResult {
	return SubmitResult{Success: true, StatusCode: http.StatusOK}
}

func validationFailed(fieldErrors map[string]string) SubmitResult {
	return SubmitResult{
		Success:     false,
		Error:       "Validation failed",
		FieldErrors: fieldErrors,
		StatusCode:  http.StatusBadRequest,
	}
}

func badRequest(msg string) SubmitResult {
	return SubmitResult{Success: false, Error: msg, StatusCode: http.StatusBadRequest}
}

func internalError() SubmitResult {
	return SubmitResult{Success: false, Error: genericErrorMessage, StatusCode: http.StatusInternalServerError}
}

// fieldErrorMap flattens a validation error into one message per field,
// keyed by the field's form name.
func fieldErrorMap(err error) map[string]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for field, ferr := range verrs {
		out[field] = ferr.Error()
	}
	return out
}

// recovered converts a panic anywhere in a flow into the generic failure
// result. Nothing below the flow entry points is allowed to take the
// process down.
func (s *Service) recovered(flow string, result *SubmitResult) {
	if r := recover(); r != nil {
		s.log.Error("submission flow panicked", map[string]interface{}{
			"flow":  flow,
			"panic": r,
		})
		*result = internalError()
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// sanitizeFilename replaces every character outside a conservative safe
// set with an underscore.
func sanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

const trackingAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newTrackingNumber builds an applicant-facing identifier of the form
// FG-YYYYMMDD-XXXX. The 4-character suffix is random; collisions within a
// day are possible and accepted, there is no uniqueness check or retry.
func newTrackingNumber(now time.Time) string {
	suffix := make([]byte, 4)
	max := big.NewInt(int64(len(trackingAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is
			// broken; fall back to a time-derived character.
			suffix[i] = trackingAlphabet[now.UnixNano()%int64(len(trackingAlphabet))]
			continue
		}
		suffix[i] = trackingAlphabet[n.Int64()]
	}
	return "FG-" + now.Format("20060102") + "-" + string(suffix)
}
