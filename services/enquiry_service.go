package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"maison-decor/models"
	"maison-decor/utils"
)

var (
	ErrServiceMisconfigured = errors.New("email service is not configured")
	ErrDeliveryFailed       = errors.New("failed to send message")
)

// ValidationError carries the complete field report so the form can annotate
// every offending input at once.
type ValidationError struct {
	Details []models.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Details))
}

// Mailer is the outbound transport the pipeline delivers through. The
// production implementation is models.EmailService over SMTP.
type Mailer interface {
	Send(email models.OutboundEmail) error
}

// EnquiryService turns a raw form payload into delivered email. Stages run
// in strict order (validate, sanitize, configuration check, compose, send
// business notification, send customer confirmation) and the first failing
// stage short-circuits. Rate limiting sits in front of the handlers as
// middleware, before any of this runs.
type EnquiryService struct {
	newMailer func() (Mailer, error)
}

func NewEnquiryService() *EnquiryService {
	return &EnquiryService{
		newMailer: func() (Mailer, error) {
			return models.NewEmailService()
		},
	}
}

// NewEnquiryServiceWithMailer injects the transport, for tests.
func NewEnquiryServiceWithMailer(factory func() (Mailer, error)) *EnquiryService {
	return &EnquiryService{newMailer: factory}
}

type ContactResult struct {
	Message string
	Warning string
}

type EnquiryResult struct {
	EnquiryID string
	Warning   string
}

func (s *EnquiryService) SubmitContact(req models.ContactRequest) (*ContactResult, error) {
	if details := utils.ValidateStruct(req); details != nil {
		return nil, &ValidationError{Details: details}
	}

	req.Name = utils.SanitizeString(req.Name, utils.MaxSanitizedLen)
	req.Email = utils.SanitizeString(req.Email, utils.MaxEmailLen)
	req.Phone = utils.SanitizeString(req.Phone, utils.MaxPhoneLen)
	req.Message = utils.SanitizeString(req.Message, utils.MaxSanitizedLen)

	mailer, err := s.newMailer()
	if err != nil {
		log.Println("Email service unavailable:", err)
		return nil, ErrServiceMisconfigured
	}

	if err := mailer.Send(composeContactNotification(req)); err != nil {
		log.Println("Failed to send contact notification:", err)
		return nil, ErrDeliveryFailed
	}

	result := &ContactResult{Message: "Your message has been sent. We will get back to you within 24 hours."}
	if err := mailer.Send(composeContactConfirmation(req)); err != nil {
		// The business-critical send already succeeded, so the submission
		// still counts as delivered; only the courtesy copy was lost.
		log.Println("Failed to send contact confirmation:", err)
		result.Warning = "confirmation email could not be delivered"
	}
	return result, nil
}

func (s *EnquiryService) SubmitEnquiry(req models.EnquiryRequest) (*EnquiryResult, error) {
	if details := utils.ValidateStruct(req); details != nil {
		return nil, &ValidationError{Details: details}
	}

	req.Name = utils.SanitizeString(req.Name, utils.MaxSanitizedLen)
	req.Email = utils.SanitizeString(req.Email, utils.MaxEmailLen)
	req.Phone = utils.SanitizeString(req.Phone, utils.MaxPhoneLen)
	req.Message = utils.SanitizeString(req.Message, utils.MaxSanitizedLen)
	for i := range req.Items {
		req.Items[i].Name = utils.SanitizeString(req.Items[i].Name, utils.MaxSanitizedLen)
		req.Items[i].Category = utils.SanitizeString(req.Items[i].Category, utils.MaxSanitizedLen)
	}

	mailer, err := s.newMailer()
	if err != nil {
		log.Println("Email service unavailable:", err)
		return nil, ErrServiceMisconfigured
	}

	enquiryID := fmt.Sprintf("ENQ-%d", time.Now().UnixMilli())

	if err := mailer.Send(composeEnquiryNotification(req, enquiryID)); err != nil {
		log.Println("Failed to send enquiry notification:", err)
		return nil, ErrDeliveryFailed
	}

	result := &EnquiryResult{EnquiryID: enquiryID}
	if err := mailer.Send(composeEnquiryConfirmation(req, enquiryID)); err != nil {
		log.Println("Failed to send enquiry confirmation:", err)
		result.Warning = "confirmation email could not be delivered"
	}
	return result, nil
}
