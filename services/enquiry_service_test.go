package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maison-decor/models"
)

type recordingMailer struct {
	sent      []models.OutboundEmail
	failAfter int // fail every send once this many have succeeded; -1 never fails
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{failAfter: -1}
}

func (m *recordingMailer) Send(email models.OutboundEmail) error {
	if m.failAfter >= 0 && len(m.sent) >= m.failAfter {
		return errors.New("smtp connection refused")
	}
	m.sent = append(m.sent, email)
	return nil
}

func serviceWith(m Mailer) *EnquiryService {
	return NewEnquiryServiceWithMailer(func() (Mailer, error) { return m, nil })
}

func validContact() models.ContactRequest {
	return models.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "+15551234567",
		Message: "Interested in the lamp",
	}
}

func validEnquiry() models.EnquiryRequest {
	return models.EnquiryRequest{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "+15551234567",
		Message:    "Interested in the lamp",
		Items:      []models.EnquiryItem{{ID: "a1", Name: "Lamp", Price: 100, Quantity: 2}},
		TotalItems: 2,
		TotalValue: 200,
		Timestamp:  "2024-01-01T00:00:00Z",
	}
}

func TestSubmitContactReportsEveryInvalidField(t *testing.T) {
	svc := serviceWith(newRecordingMailer())

	_, err := svc.SubmitContact(models.ContactRequest{
		Name:    "A",
		Email:   "not-an-email",
		Phone:   "123",
		Message: "short",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.GreaterOrEqual(t, len(verr.Details), 4)

	fields := map[string]bool{}
	for _, d := range verr.Details {
		fields[d.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["email"])
	assert.True(t, fields["phone"])
	assert.True(t, fields["message"])
}

func TestSubmitContactSendsBothEmails(t *testing.T) {
	mailer := newRecordingMailer()
	svc := serviceWith(mailer)

	result, err := svc.SubmitContact(validContact())
	require.NoError(t, err)
	assert.Empty(t, result.Warning)

	require.Len(t, mailer.sent, 2)
	notification, confirmation := mailer.sent[0], mailer.sent[1]
	assert.Equal(t, "jane@example.com", notification.ReplyTo)
	assert.Contains(t, notification.Subject, "Jane Doe")
	assert.Contains(t, notification.HTML, "Interested in the lamp")
	assert.Equal(t, "jane@example.com", confirmation.To)
	assert.Contains(t, confirmation.HTML, "24 hours")
}

func TestSubmitContactStripsScriptFromEmailBody(t *testing.T) {
	mailer := newRecordingMailer()
	svc := serviceWith(mailer)

	req := validContact()
	req.Message = "hello there <script>alert(1)</script>"

	_, err := svc.SubmitContact(req)
	require.NoError(t, err)

	for _, email := range mailer.sent {
		assert.NotContains(t, email.HTML, "<script")
		assert.NotContains(t, email.HTML, "alert(1)</script>")
	}
}

func TestSubmitEnquiryEndToEnd(t *testing.T) {
	mailer := newRecordingMailer()
	svc := serviceWith(mailer)

	result, err := svc.SubmitEnquiry(validEnquiry())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.EnquiryID, "ENQ-"))

	require.Len(t, mailer.sent, 2)
	for _, email := range mailer.sent {
		assert.Contains(t, email.HTML, "Lamp")
		assert.Contains(t, email.HTML, "$200.00")
	}
	assert.Contains(t, mailer.sent[0].HTML, result.EnquiryID)
	assert.Equal(t, "jane@example.com", mailer.sent[1].To)
}

func TestSubmitEnquiryValidatesItems(t *testing.T) {
	svc := serviceWith(newRecordingMailer())

	req := validEnquiry()
	req.Items = []models.EnquiryItem{{ID: "a1", Name: "Lamp", Price: 99999, Quantity: 500}}

	_, err := svc.SubmitEnquiry(req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Details, 2)
}

func TestSubmitEnquiryRejectsEmptyItems(t *testing.T) {
	svc := serviceWith(newRecordingMailer())

	req := validEnquiry()
	req.Items = nil

	_, err := svc.SubmitEnquiry(req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestNotificationFailureFailsSubmission(t *testing.T) {
	mailer := newRecordingMailer()
	mailer.failAfter = 0
	svc := serviceWith(mailer)

	_, err := svc.SubmitEnquiry(validEnquiry())
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}

func TestConfirmationFailureIsPartialSuccess(t *testing.T) {
	mailer := newRecordingMailer()
	mailer.failAfter = 1
	svc := serviceWith(mailer)

	result, err := svc.SubmitEnquiry(validEnquiry())
	require.NoError(t, err)
	assert.NotEmpty(t, result.EnquiryID)
	assert.NotEmpty(t, result.Warning)
	assert.Len(t, mailer.sent, 1)
}

func TestMissingMailConfigIsMisconfiguration(t *testing.T) {
	svc := NewEnquiryServiceWithMailer(func() (Mailer, error) {
		return nil, errors.New("SMTP configuration missing")
	})

	_, err := svc.SubmitContact(validContact())
	assert.ErrorIs(t, err, ErrServiceMisconfigured)
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$200.00", formatUSD(200))
	assert.Equal(t, "$45.50", formatUSD(45.5))
	assert.Equal(t, "$1,234.56", formatUSD(1234.56))
	assert.Equal(t, "$0.00", formatUSD(0))
}
