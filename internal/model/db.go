package model

import "time"

// PaymentRecord is one saved checkout submission. Records are append-only:
// nothing in this service ever updates or deletes them. Card data never
// lands here, only the processor-issued tokens.
type PaymentRecord struct {
	ID string `gorm:"primaryKey;size:36;not null" json:"id"`

	// Form fields
	Email          string `gorm:"size:255;not null" json:"email"`
	CardholderName string `gorm:"size:255" json:"nomSurCarte,omitempty"`
	Country        string `gorm:"size:128" json:"pays,omitempty"`
	PostalCode     string `gorm:"size:32" json:"zip,omitempty"`
	Phone          string `gorm:"size:64" json:"phone,omitempty"`

	// Processor tokens
	StripePaymentMethodID string `gorm:"size:128;index;not null" json:"stripePaymentMethodId"`
	StripeCustomerID      string `gorm:"size:128;index" json:"stripeCustomerId,omitempty"`

	// Verified order data carried forward by the client. Total keeps the
	// signer's exact string, its formatting is part of the signature
	// contract.
	EntryID string `gorm:"size:64;index" json:"entry_id,omitempty"`
	Total   string `gorm:"size:32" json:"total,omitempty"`
	Produit string `gorm:"size:255" json:"produit,omitempty"`
	Origin  string `gorm:"size:255" json:"origin,omitempty"`

	// Collected server-side from the request
	IPAddress           string `gorm:"size:128" json:"ipAddress,omitempty"`
	SystemInfo          string `gorm:"size:512" json:"systemInfo,omitempty"`
	AcceptLanguage      string `gorm:"size:255" json:"acceptLanguage,omitempty"`
	DetectedCountryCode string `gorm:"size:8" json:"detectedCountryCode,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
