package notifier

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/AnasLabzar/server-paiment-service-fr/internal/config"
)

//go:embed templates/payment_success.html
var successHTML string

//go:embed templates/payment_problem.html
var problemHTML string

var (
	successTmpl = template.Must(template.New("payment_success").Parse(successHTML))
	problemTmpl = template.Must(template.New("payment_problem").Parse(problemHTML))
)

type smtpNotifier struct {
	cfg config.SMTP
}

func NewSMTPNotifier(cfg config.SMTP) Notifier {
	return &smtpNotifier{cfg: cfg}
}

type mailData struct {
	Origin       string
	Produit      string
	Total        string
	EntryID      string
	Email        string
	ErrorMessage string
}

func (n *smtpNotifier) PaymentConfirmed(order Order) error {
	if order.Email == "" {
		return fmt.Errorf("no recipient address on confirmed order")
	}

	data := newMailData(order)
	body, err := render(successTmpl, data)
	if err != nil {
		return fmt.Errorf("render confirmation mail: %w", err)
	}

	subject := "Confirmation de votre paiement - " + data.Produit
	return n.send([]string{order.Email}, subject, body)
}

func (n *smtpNotifier) PaymentProblem(order Order, cause error) error {
	data := newMailData(order)
	data.ErrorMessage = "Erreur inconnue"
	if cause != nil {
		data.ErrorMessage = cause.Error()
	}

	body, err := render(problemTmpl, data)
	if err != nil {
		return fmt.Errorf("render problem mail: %w", err)
	}

	subject := "Problème avec votre paiement - " + data.Produit
	return n.send(n.problemRecipients(order), subject, body)
}

// The operator always gets the problem mail; the submitter too when we
// know their address.
func (n *smtpNotifier) problemRecipients(order Order) []string {
	to := []string{n.cfg.Operator}
	if order.Email != "" {
		to = append(to, order.Email)
	}
	return to
}

func newMailData(order Order) mailData {
	data := mailData{
		Origin:  order.Origin,
		Produit: order.Produit,
		Total:   formatTotal(order.Total),
		EntryID: order.EntryID,
		Email:   order.Email,
	}
	if data.Origin == "" {
		data.Origin = "notre site"
	}
	if data.Produit == "" {
		data.Produit = "votre commande"
	}
	if data.EntryID == "" {
		data.EntryID = "N/A"
	}
	if data.Email == "" {
		data.Email = "Non fourni"
	}
	return data
}

// formatTotal renders the amount with two decimals for display. The
// record keeps the raw string; this conversion is display-only.
func formatTotal(total string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(total))
	if err != nil {
		return "0.00"
	}
	return d.StringFixed(2)
}

func render(tmpl *template.Template, data mailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (n *smtpNotifier) send(to []string, subject, body string) error {
	var auth smtp.Auth
	if n.cfg.Username != "" && n.cfg.Password != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	addr := net.JoinHostPort(n.cfg.Host, n.cfg.Port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", n.cfg.Sender, strings.Join(to, ", "), subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	return smtp.SendMail(addr, auth, n.cfg.Sender, to, msg)
}
