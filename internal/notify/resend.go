package notify

import (
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ReportNotifier emails finished research reports via the Resend API.
// Optional: when unconfigured the research loop proceeds without delivery.
type ReportNotifier struct {
	client      *resend.Client
	fromAddress string
}

// NewReportNotifier creates a report notifier, or nil when no API key is set.
func NewReportNotifier(apiKey, from string) *ReportNotifier {
	if apiKey == "" {
		return nil
	}
	return &ReportNotifier{
		client:      resend.NewClient(apiKey),
		fromAddress: from,
	}
}

// IsConfigured returns true if the notifier has server-side config
func (r *ReportNotifier) IsConfigured() bool {
	return r != nil && r.client != nil && r.fromAddress != ""
}

// SendReport delivers one finished report. The report is already markdown, so
// it ships as the text body as-is.
func (r *ReportNotifier) SendReport(recipient, company, report string) error {
	if recipient == "" {
		return fmt.Errorf("no recipient specified")
	}

	params := &resend.SendEmailRequest{
		From:    r.fromAddress,
		To:      []string{recipient},
		Subject: fmt.Sprintf("Research report: %s", company),
		Text:    report,
	}

	_, err := r.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}

	fmt.Printf("Report email sent to %s for %s\n", recipient, company)
	return nil
}
