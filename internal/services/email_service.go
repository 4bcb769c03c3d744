package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// InvoiceEmailSender delivers the payment link to the customer. The
// resend-backed EmailService implements it; a nil-safe no-op is used
// when email is not configured.
type InvoiceEmailSender interface {
	Configured() bool
	SendInvoiceEmail(ctx context.Context, data InvoiceEmailData) error
}

// InvoiceEmailData contains the data for the invoice email template.
type InvoiceEmailData struct {
	CustomerName   string
	CustomerEmail  string
	InvoiceNumber  string
	TotalFormatted string
	PaymentLinkURL string
	MerchantName   string
}

const invoiceEmailTemplate = `<p>Hi {{.CustomerName}},</p>
<p>Your invoice <strong>{{.InvoiceNumber}}</strong> from {{.MerchantName}} is ready.</p>
<p>Amount due: <strong>{{.TotalFormatted}}</strong></p>
<p><a href="{{.PaymentLinkURL}}">Pay this invoice online</a></p>
<p>Thank you,<br>{{.MerchantName}}</p>`

// EmailService sends transactional email through Resend.
type EmailService struct {
	client    *resend.Client
	logger    *zap.Logger
	fromEmail string
	fromName  string
	tmpl      *template.Template
}

// NewEmailService creates an EmailService. With an empty API key the
// service reports unconfigured and sends nothing.
func NewEmailService(apiKey, fromEmail, fromName string, logger *zap.Logger) *EmailService {
	s := &EmailService{
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
		tmpl:      template.Must(template.New("invoice").Parse(invoiceEmailTemplate)),
	}
	if apiKey != "" {
		s.client = resend.NewClient(apiKey)
	}
	return s
}

// Configured reports whether email delivery is available.
func (s *EmailService) Configured() bool {
	return s.client != nil && s.fromEmail != ""
}

// SendInvoiceEmail emails the customer their payment link.
func (s *EmailService) SendInvoiceEmail(ctx context.Context, data InvoiceEmailData) error {
	if !s.Configured() {
		return fmt.Errorf("email service not configured")
	}

	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render invoice email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{data.CustomerEmail},
		Subject: fmt.Sprintf("Invoice %s from %s", data.InvoiceNumber, s.fromName),
		Html:    body.String(),
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send invoice email: %w", err)
	}

	s.logger.Info("Invoice email sent",
		zap.String("invoice_number", data.InvoiceNumber),
		zap.String("email_id", sent.Id),
	)
	return nil
}
