package mail

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/logger"
)

type mockSESClient struct {
	mock.Mock
}

func (m *mockSESClient) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*ses.SendEmailOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSESClient) SendRawEmail(ctx context.Context, params *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*ses.SendRawEmailOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSESMailerSendSimple(t *testing.T) {
	client := new(mockSESClient)
	m := &SESMailer{client: client, log: logger.NewTest(t)}

	client.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *ses.SendEmailInput) bool {
		return *in.Source == "Dispatch <dispatch@fiberguysllc.com>" &&
			len(in.Destination.ToAddresses) == 1 &&
			in.Destination.ToAddresses[0] == "info@fiberguysllc.com" &&
			*in.Message.Subject.Data == "[NEW BID] Project Review: Acme Fiber" &&
			len(in.ReplyToAddresses) == 1 &&
			in.ReplyToAddresses[0] == "jane@acme.com"
	})).Return(&ses.SendEmailOutput{}, nil)

	err := m.Send(context.Background(), Message{
		From:    "Dispatch <dispatch@fiberguysllc.com>",
		To:      []string{"info@fiberguysllc.com"},
		ReplyTo: "jane@acme.com",
		Subject: "[NEW BID] Project Review: Acme Fiber",
		HTML:    "<p>hi</p>",
	})

	require.NoError(t, err)
	client.AssertExpectations(t)
	client.AssertNotCalled(t, "SendRawEmail", mock.Anything, mock.Anything)
}

func TestSESMailerSendRawWithAttachment(t *testing.T) {
	client := new(mockSESClient)
	m := &SESMailer{client: client, log: logger.NewTest(t)}

	var raw string
	client.On("SendRawEmail", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		in := args.Get(1).(*ses.SendRawEmailInput)
		raw = string(in.RawMessage.Data)
	}).Return(&ses.SendRawEmailOutput{}, nil)

	err := m.Send(context.Background(), Message{
		From:    "careers@fiberguysllc.com",
		To:      []string{"careers@fiberguysllc.com"},
		Subject: "[NEW APPLICANT] John Doe",
		HTML:    "<p>application</p>",
		Attachments: []Attachment{{
			Filename:    "resume.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.4 fake resume body"),
		}},
	})

	require.NoError(t, err)
	client.AssertExpectations(t)
	client.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)

	assert.Contains(t, raw, "Content-Type: multipart/mixed")
	assert.Contains(t, raw, "Content-Type: text/html; charset=UTF-8")
	assert.Contains(t, raw, "Content-Type: application/pdf")
	assert.Contains(t, raw, `Content-Disposition: attachment; filename="resume.pdf"`)
	assert.Contains(t, raw, "Content-Transfer-Encoding: base64")
}

func TestBuildRawMessageWrapsBase64Lines(t *testing.T) {
	raw, err := buildRawMessage(Message{
		From:    "a@example.com",
		To:      []string{"b@example.com"},
		Subject: "big file",
		HTML:    "<p>x</p>",
		Attachments: []Attachment{{
			Filename: "big.bin",
			Content:  make([]byte, 4096),
		}},
	})
	require.NoError(t, err)

	inBody := false
	for _, line := range strings.Split(string(raw), "\r\n") {
		if strings.HasPrefix(line, "Content-Disposition") {
			inBody = true
			continue
		}
		if inBody {
			assert.LessOrEqual(t, len(line), 76)
		}
	}
}

func TestConsoleMailerNeverFails(t *testing.T) {
	m := NewConsole(logger.NewTest(t))

	err := m.Send(context.Background(), Message{
		To:      []string{"someone@example.com"},
		Subject: "hello",
		Attachments: []Attachment{
			{Filename: "resume.pdf"},
		},
	})
	assert.NoError(t, err)
}

func TestLeadNotification(t *testing.T) {
	msg := LeadNotification(LeadPayload{
		CompanyName:   "Acme Fiber",
		ContactName:   "Jane Roe",
		Email:         "jane@acme.com",
		Phone:         "555-0100",
		ServiceNeeded: "both",
		Notes:         "<script>alert(1)</script>",
		FileURLs:      []string{"https://files.example.com/lead-files/prints/1700000000/site_plan.pdf"},
	}, "dispatch@fiberguysllc.com", "info@fiberguysllc.com")

	assert.Equal(t, "[NEW BID] Project Review: Acme Fiber", msg.Subject)
	assert.Equal(t, []string{"info@fiberguysllc.com"}, msg.To)
	assert.Equal(t, "jane@acme.com", msg.ReplyTo)
	assert.Contains(t, msg.HTML, "Jetting + Splicing")
	assert.Contains(t, msg.HTML, "site_plan.pdf")
	assert.NotContains(t, msg.HTML, "<script>", "user content must be escaped")
}

func TestLeadNotificationNoFiles(t *testing.T) {
	msg := LeadNotification(LeadPayload{
		CompanyName:   "Acme Fiber",
		ContactName:   "Jane Roe",
		Email:         "jane@acme.com",
		ServiceNeeded: "jetting",
	}, "dispatch@fiberguysllc.com", "info@fiberguysllc.com")

	assert.Contains(t, msg.HTML, "No files attached")
}

func TestLeadConfirmation(t *testing.T) {
	msg := LeadConfirmation(LeadPayload{
		ContactName:   "Jane Roe",
		Email:         "jane@acme.com",
		ServiceNeeded: "emergency",
	}, "dispatch@fiberguysllc.com")

	assert.Equal(t, "Project Review Initiated // Fiber Guys LLC", msg.Subject)
	assert.Equal(t, []string{"jane@acme.com"}, msg.To)
	assert.Empty(t, msg.ReplyTo)
	assert.Contains(t, msg.HTML, "Emergency Restoration")
}

func TestApplicationNotificationAttachesResume(t *testing.T) {
	resume := &Attachment{
		Filename:    "resume.pdf",
		ContentType: "application/pdf",
		Content:     []byte("pdf bytes"),
	}
	msg := ApplicationNotification(ApplicationPayload{
		FullName:       "John Doe",
		Email:          "john@example.com",
		Position:       "precision-splicer",
		HasCDL:         "yes",
		TrackingNumber: "FG-20260829-A1B2",
	}, resume, "careers@fiberguysllc.com", "careers@fiberguysllc.com")

	assert.Equal(t, "[NEW APPLICANT] John Doe — Precision Splicer", msg.Subject)
	assert.Equal(t, "john@example.com", msg.ReplyTo)
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "resume.pdf", msg.Attachments[0].Filename)
	assert.Contains(t, msg.HTML, "FG-20260829-A1B2")
}

func TestApplicationNotificationWithoutResume(t *testing.T) {
	msg := ApplicationNotification(ApplicationPayload{
		FullName: "John Doe",
		Email:    "john@example.com",
		Position: "osp-laborer",
	}, nil, "careers@fiberguysllc.com", "careers@fiberguysllc.com")

	assert.Empty(t, msg.Attachments)
	assert.Contains(t, msg.Subject, "OSP Laborer / CDL Driver")
}

func TestApplicationConfirmation(t *testing.T) {
	msg := ApplicationConfirmation(ApplicationPayload{
		FullName:       "John Doe",
		Email:          "john@example.com",
		Position:       "jetting-operator",
		TrackingNumber: "FG-20260829-ZZ99",
	}, "careers@fiberguysllc.com")

	assert.Equal(t, []string{"john@example.com"}, msg.To)
	assert.Contains(t, msg.HTML, "FG-20260829-ZZ99")
	assert.Contains(t, msg.HTML, "Fiber Jetting Operator")
}

func TestReferralNotification(t *testing.T) {
	msg := ReferralNotification(ReferralPayload{
		ReferrerName:   "Alice",
		ReferrerEmail:  "alice@example.com",
		CandidateName:  "Bob",
		CandidateEmail: "bob@example.com",
	}, "careers@fiberguysllc.com", "careers@fiberguysllc.com")

	assert.Equal(t, "[REFERRAL] Bob — referred by Alice", msg.Subject)
	assert.Equal(t, "alice@example.com", msg.ReplyTo)
}

func TestTalentPoolWelcome(t *testing.T) {
	msg := TalentPoolWelcome("new@example.com", "careers@fiberguysllc.com", "https://fiberguysllc.com")

	assert.Equal(t, "You are on the list // Fiber Guys LLC", msg.Subject)
	assert.Equal(t, []string{"new@example.com"}, msg.To)
	assert.Contains(t, msg.HTML, "https://fiberguysllc.com/careers")
}

func TestPositionLabelFallsBackToCode(t *testing.T) {
	assert.Equal(t, "unknown-role", positionLabel("unknown-role"))
	assert.Equal(t, "mystery", serviceLabel("mystery"))
}
