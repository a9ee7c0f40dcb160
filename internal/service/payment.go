package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/AnasLabzar/server-paiment-service-fr/internal/model"
	"github.com/AnasLabzar/server-paiment-service-fr/internal/notifier"
	"github.com/AnasLabzar/server-paiment-service-fr/internal/repository"
)

// RawSubmission is a payment-form submission after client-side processor
// confirmation, before validation.
type RawSubmission struct {
	Email           string `validate:"required,email"`
	PaymentMethodID string `validate:"required"`
	CustomerID      string

	CardholderName string
	Country        string
	PostalCode     string
	Phone          string

	EntryID string
	Total   string
	Produit string
	Origin  string
}

// RequestMeta is what the transport layer knows about the request,
// already detached from net/http so the service can be exercised without
// a server.
type RequestMeta struct {
	ForwardedFor   string
	RemoteAddr     string
	UserAgent      string
	AcceptLanguage string
	// Best-effort country guess, may be empty.
	CountryCode string
}

type PaymentService interface {
	// Save validates the submission, persists one record enriched with
	// request metadata, and dispatches exactly one notification attempt
	// after the outcome is fixed. The notification never changes the
	// returned result.
	Save(ctx context.Context, sub *RawSubmission, meta *RequestMeta) (*model.PaymentRecord, error)
}

type paymentServiceImpl struct {
	paymentRepo     repository.PaymentRepository
	notifier        notifier.Notifier
	validate        *validator.Validate
	requireFullForm bool
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	notif notifier.Notifier,
	requireFullForm bool,
) PaymentService {
	return &paymentServiceImpl{
		paymentRepo:     paymentRepo,
		notifier:        notif,
		validate:        validator.New(),
		requireFullForm: requireFullForm,
	}
}

func (s *paymentServiceImpl) Save(ctx context.Context, sub *RawSubmission, meta *RequestMeta) (*model.PaymentRecord, error) {
	if err := s.validateSubmission(sub); err != nil {
		s.notifyProblem(sub, err)
		return nil, err
	}

	record := &model.PaymentRecord{
		ID:             uuid.NewString(),
		Email:          strings.ToLower(strings.TrimSpace(sub.Email)),
		CardholderName: strings.TrimSpace(sub.CardholderName),
		Country:        sub.Country,
		PostalCode:     sub.PostalCode,
		Phone:          sub.Phone,

		StripePaymentMethodID: sub.PaymentMethodID,
		StripeCustomerID:      sub.CustomerID,

		EntryID: sub.EntryID,
		Total:   sub.Total,
		Produit: sub.Produit,
		Origin:  sub.Origin,

		IPAddress:           clientAddress(meta),
		SystemInfo:          meta.UserAgent,
		AcceptLanguage:      meta.AcceptLanguage,
		DetectedCountryCode: meta.CountryCode,
	}

	if err := s.paymentRepo.Create(ctx, record); err != nil {
		wrapped := fmt.Errorf("%w: %v", ErrPersistence, err)
		s.notifyProblem(sub, wrapped)
		return nil, wrapped
	}

	log.Printf("payment details saved for entry_id=%s", record.EntryID)
	s.notifyConfirmed(sub)

	return record, nil
}

func (s *paymentServiceImpl) validateSubmission(sub *RawSubmission) error {
	if err := s.validate.Struct(sub); err != nil {
		return fmt.Errorf("%w: %v", ErrIncompleteSubmission, err)
	}
	if s.requireFullForm {
		if sub.CardholderName == "" || sub.Country == "" || sub.PostalCode == "" {
			return fmt.Errorf("%w: cardholder name, country and postal code are required", ErrIncompleteSubmission)
		}
	}
	return nil
}

// The forwarding header wins over the peer address; its value is kept
// verbatim, proxy chain included.
func clientAddress(meta *RequestMeta) string {
	if meta.ForwardedFor != "" {
		return meta.ForwardedFor
	}
	return meta.RemoteAddr
}

// Notifications run on their own goroutine once the save outcome is
// fixed. Delivery failure is logged and goes nowhere else; there is no
// retry and no outbox.
func (s *paymentServiceImpl) notifyConfirmed(sub *RawSubmission) {
	order := orderFromSubmission(sub)
	go func() {
		if err := s.notifier.PaymentConfirmed(order); err != nil {
			log.Printf("payment confirmation email failed for %s: %v", order.Email, err)
		}
	}()
}

func (s *paymentServiceImpl) notifyProblem(sub *RawSubmission, cause error) {
	order := orderFromSubmission(sub)
	go func() {
		if err := s.notifier.PaymentProblem(order, cause); err != nil {
			log.Printf("payment problem email failed for %s: %v", order.Email, err)
		}
	}()
}

func orderFromSubmission(sub *RawSubmission) notifier.Order {
	return notifier.Order{
		Email:   sub.Email,
		Origin:  sub.Origin,
		Produit: sub.Produit,
		Total:   sub.Total,
		EntryID: sub.EntryID,
	}
}
