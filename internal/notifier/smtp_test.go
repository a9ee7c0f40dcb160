package notifier

import (
	"errors"
	"strings"
	"testing"

	"github.com/AnasLabzar/server-paiment-service-fr/internal/config"
)

func testNotifier() *smtpNotifier {
	return &smtpNotifier{cfg: config.SMTP{
		Host:     "localhost",
		Port:     "587",
		Sender:   "no-reply@paiement-service.fr",
		Operator: "ops@paiement-service.fr",
	}}
}

func TestProblemRecipients(t *testing.T) {
	n := testNotifier()

	to := n.problemRecipients(Order{Email: "a@b.com"})
	if len(to) != 2 || to[0] != "ops@paiement-service.fr" || to[1] != "a@b.com" {
		t.Fatalf("expected operator + submitter, got %v", to)
	}

	// Operator gets the mail even when the submitter is unknown.
	to = n.problemRecipients(Order{})
	if len(to) != 1 || to[0] != "ops@paiement-service.fr" {
		t.Fatalf("expected operator only, got %v", to)
	}
}

func TestFormatTotal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "49.99", want: "49.99"},
		{in: "50", want: "50.00"},
		{in: "49.9", want: "49.90"},
		{in: " 12.5 ", want: "12.50"},
		{in: "", want: "0.00"},
		{in: "not-a-number", want: "0.00"},
	}

	for _, tt := range tests {
		if got := formatTotal(tt.in); got != tt.want {
			t.Fatalf("formatTotal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewMailDataDefaults(t *testing.T) {
	data := newMailData(Order{})
	if data.Origin != "notre site" || data.Produit != "votre commande" ||
		data.EntryID != "N/A" || data.Email != "Non fourni" {
		t.Fatalf("unexpected defaults: %+v", data)
	}
	if data.Total != "0.00" {
		t.Fatalf("expected zero total, got %q", data.Total)
	}
}

func TestRenderSuccessTemplate(t *testing.T) {
	data := newMailData(Order{
		Email:   "a@b.com",
		Origin:  "https://site.fr",
		Produit: "Pack Pro",
		Total:   "49.99",
		EntryID: "123",
	})

	body, err := render(successTmpl, data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"https://site.fr", "Pack Pro", "49.99", "123"} {
		if !strings.Contains(body, want) {
			t.Fatalf("rendered body missing %q", want)
		}
	}
}

func TestRenderProblemTemplate(t *testing.T) {
	data := newMailData(Order{Email: "a@b.com", Produit: "Pack Pro"})
	data.ErrorMessage = "store unavailable"

	body, err := render(problemTmpl, data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"a@b.com", "Pack Pro", "store unavailable"} {
		if !strings.Contains(body, want) {
			t.Fatalf("rendered body missing %q", want)
		}
	}
}

func TestPaymentConfirmedRequiresRecipient(t *testing.T) {
	n := testNotifier()
	if err := n.PaymentConfirmed(Order{}); err == nil {
		t.Fatal("expected an error without a recipient address")
	}
}

func TestPaymentProblemDefaultCause(t *testing.T) {
	data := newMailData(Order{})
	data.ErrorMessage = "Erreur inconnue"
	if _, err := render(problemTmpl, data); err != nil {
		t.Fatalf("render with default cause: %v", err)
	}

	// cause.Error() text lands in the mail body
	cause := errors.New("incomplete payment submission")
	data.ErrorMessage = cause.Error()
	body, err := render(problemTmpl, data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(body, "incomplete payment submission") {
		t.Fatal("expected cause message in body")
	}
}
