package service

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/mail"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/model"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/storage"
)

func validApplicationInput() ApplicationInput {
	return ApplicationInput{
		FirstName:       "John",
		LastName:        "Doe",
		Email:           "John@Example.com",
		Phone:           "555-0101",
		Position:        "precision-splicer",
		YearsExperience: "5",
		HasCDL:          "yes",
	}
}

func TestSubmitApplicationSuccess(t *testing.T) {
	svc, deps := newTestService(t)

	var captured *model.Application
	deps.store.On("Configured").Return(false).Maybe()
	deps.applications.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*model.Application)
	}).Return(nil)
	deps.mailer.On("Send", mock.Anything, mock.Anything).Return(nil)

	result := svc.SubmitApplication(context.Background(), validApplicationInput())

	assert.True(t, result.Success)
	assert.Regexp(t, regexp.MustCompile(`^FG-20260829-[0-9A-Z]{4}$`), result.TrackingNumber)

	require.NotNil(t, captured)
	assert.Equal(t, result.TrackingNumber, captured.TrackingNumber)
	assert.Equal(t, "john@example.com", captured.Email, "stored email is lowercased")
	assert.Equal(t, model.StatusSubmitted, captured.Status)
	assert.Empty(t, captured.ResumeURL)

	deps.mailer.AssertNumberOfCalls(t, "Send", 2)
}

func TestSubmitApplicationHoneypot(t *testing.T) {
	svc, deps := newTestService(t)

	in := validApplicationInput()
	in.Website = "bot"

	result := svc.SubmitApplication(context.Background(), in)

	assert.True(t, result.Success)
	assert.Empty(t, result.TrackingNumber)
	deps.applications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	deps.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmitApplicationValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*ApplicationInput)
		field    string
		expected string
	}{
		{
			name:     "missing first name",
			mutate:   func(in *ApplicationInput) { in.FirstName = "" },
			field:    "firstName",
			expected: "First name is required",
		},
		{
			name:     "unknown position",
			mutate:   func(in *ApplicationInput) { in.Position = "project-manager" },
			field:    "position",
			expected: "Select a position",
		},
		{
			name:     "invalid cdl value",
			mutate:   func(in *ApplicationInput) { in.HasCDL = "maybe" },
			field:    "hasCDL",
			expected: "CDL status is required",
		},
		{
			name:     "missing experience",
			mutate:   func(in *ApplicationInput) { in.YearsExperience = "" },
			field:    "yearsExperience",
			expected: "Years of experience is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestService(t)

			in := validApplicationInput()
			tt.mutate(&in)

			result := svc.SubmitApplication(context.Background(), in)

			assert.False(t, result.Success)
			assert.Equal(t, http.StatusBadRequest, result.StatusCode)
			assert.Equal(t, tt.expected, result.FieldErrors[tt.field])
			deps.applications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitApplicationOversizeResumeDropped(t *testing.T) {
	svc, deps := newTestService(t)

	var captured *model.Application
	deps.applications.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*model.Application)
	}).Return(nil)

	var sent []mail.Message
	deps.mailer.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = append(sent, args.Get(1).(mail.Message))
	}).Return(nil)

	in := validApplicationInput()
	in.Resume = &FileInput{
		Name: "resume.pdf",
		Size: 11 * 1024 * 1024,
	}

	result := svc.SubmitApplication(context.Background(), in)

	assert.True(t, result.Success, "oversize resume drops the file, not the application")
	assert.NotEmpty(t, result.TrackingNumber)

	require.NotNil(t, captured)
	assert.Empty(t, captured.ResumeURL)
	for _, msg := range sent {
		assert.Empty(t, msg.Attachments)
	}
	deps.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitApplicationResumeStoredAndAttached(t *testing.T) {
	svc, deps := newTestService(t)

	deps.store.On("Configured").Return(true)
	deps.store.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "resumes/FG-20260829-") && strings.HasSuffix(key, "/my_resume.pdf")
	}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
	deps.store.On("PublicURL", mock.Anything).Return("https://files.example.com/lead-files/resumes/x/my_resume.pdf")

	var captured *model.Application
	deps.applications.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*model.Application)
	}).Return(nil)

	var sent []mail.Message
	deps.mailer.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = append(sent, args.Get(1).(mail.Message))
	}).Return(nil)

	in := validApplicationInput()
	resume := fileFromString("my resume.pdf", "application/pdf", "resume body")
	in.Resume = &resume

	result := svc.SubmitApplication(context.Background(), in)

	assert.True(t, result.Success)
	require.NotNil(t, captured)
	assert.Equal(t, "https://files.example.com/lead-files/resumes/x/my_resume.pdf", captured.ResumeURL)

	// Resume rides only on the internal notification, never the
	// applicant confirmation.
	require.Len(t, sent, 2)
	var withAttachment int
	for _, msg := range sent {
		if len(msg.Attachments) > 0 {
			withAttachment++
			assert.Equal(t, []string{"careers@fiberguysllc.com"}, msg.To)
			assert.Equal(t, "my resume.pdf", msg.Attachments[0].Filename)
		}
	}
	assert.Equal(t, 1, withAttachment)
}

func TestSubmitApplicationPersistenceFailsOpen(t *testing.T) {
	svc, deps := newTestService(t)

	deps.store.On("Configured").Return(false).Maybe()
	deps.applications.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	deps.mailer.On("Send", mock.Anything, mock.Anything).Return(nil)

	result := svc.SubmitApplication(context.Background(), validApplicationInput())

	assert.True(t, result.Success)
	assert.NotEmpty(t, result.TrackingNumber)
}
