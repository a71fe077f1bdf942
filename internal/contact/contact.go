// Package contact lists the support channels and payment apps, and runs the
// simulated contact-form submission.
package contact

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrIncompleteForm is returned when a required field is empty.
var ErrIncompleteForm = errors.New("please fill in name, email, subject and message")

// DefaultDelay is how long a submission pretends to take.
const DefaultDelay = 2 * time.Second

// Channel is a way to reach support.
type Channel struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Channels returns the support contact links.
func Channels() []Channel {
	return []Channel{
		{Kind: "phone", Label: "+1 (234) 567-890", URL: "tel:+1234567890"},
		{Kind: "email", Label: "support@splitabill.com", URL: "mailto:support@splitabill.com"},
		{Kind: "whatsapp", Label: "WhatsApp", URL: "https://wa.me/1234567890"},
	}
}

// PaymentApp is a UPI app deep link with a web fallback. Nothing is paid
// through it; it is only listed for the user to open.
type PaymentApp struct {
	Name        string `json:"name"`
	DeepLink    string `json:"deep_link"`
	FallbackURL string `json:"fallback_url"`
}

// PaymentApps returns the supported UPI apps.
func PaymentApps() []PaymentApp {
	return []PaymentApp{
		{Name: "PhonePe", DeepLink: "phonepe://pay", FallbackURL: "https://www.phonepe.com/"},
		{Name: "Google Pay", DeepLink: "tez://upi", FallbackURL: "https://pay.google.com/"},
	}
}

// Form is a contact request.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (f Form) complete() bool {
	for _, v := range []string{f.Name, f.Email, f.Subject, f.Message} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Receipt acknowledges a submission.
type Receipt struct {
	Form        Form      `json:"form"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Submitter fakes sending a contact form. The zero value waits DefaultDelay.
type Submitter struct {
	Delay time.Duration
	Now   func() time.Time
}

// Submit validates the form, waits out the delay and returns a receipt.
// It returns ctx.Err() if the context ends first.
func (s Submitter) Submit(ctx context.Context, f Form) (Receipt, error) {
	if !f.complete() {
		return Receipt{}, ErrIncompleteForm
	}

	delay := s.Delay
	if delay == 0 {
		delay = DefaultDelay
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-timer.C:
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Receipt{Form: f, SubmittedAt: now()}, nil
}
