package dto

import "github.com/AnasLabzar/server-paiment-service-fr/internal/model"

// VerifyOrderRequest carries the order fields plus the signature the form
// system computed over them. Field names follow the form system's payload.
type VerifyOrderRequest struct {
	Total     string `json:"total"`
	Produit   string `json:"produit"`
	Email     string `json:"email"`
	EntryID   string `json:"entry_id"`
	Origin    string `json:"origin"`
	Signature string `json:"signature"`
}

type VerifyOrderResponse struct {
	Message   string             `json:"message"`
	OrderData VerifyOrderRequest `json:"orderData"`
}

type SavePaymentRequest struct {
	Email           string `json:"email"`
	PaymentMethodID string `json:"paymentMethodId"`
	CustomerID      string `json:"customerId"`

	NomSurCarte string `json:"nomSurCarte"`
	Pays        string `json:"pays"`
	Zip         string `json:"zip"`
	Phone       string `json:"phone"`

	EntryID string `json:"entry_id"`
	Total   string `json:"total"`
	Produit string `json:"produit"`
	Origin  string `json:"origin"`
}

type SavePaymentResponse struct {
	Message string               `json:"message"`
	Data    *model.PaymentRecord `json:"data"`
}

type UserInfoResponse struct {
	CountryCode *string `json:"countryCode"`
}
