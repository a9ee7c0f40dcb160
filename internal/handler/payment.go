package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AnasLabzar/server-paiment-service-fr/internal/dto"
	"github.com/AnasLabzar/server-paiment-service-fr/internal/geo"
	"github.com/AnasLabzar/server-paiment-service-fr/internal/service"
)

type PaymentHandler struct {
	verifier       service.OrderVerifier
	paymentService service.PaymentService
}

func NewPaymentHandler(verifier service.OrderVerifier, paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		verifier:       verifier,
		paymentService: paymentService,
	}
}

// VerifyOrder checks the signature the form system computed over the
// order fields. Response messages match what the checkout front-end
// displays to the user.
func (h *PaymentHandler) VerifyOrder(c echo.Context) error {
	var req dto.VerifyOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	claim := &service.OrderClaim{
		Total:     req.Total,
		Produit:   req.Produit,
		Email:     req.Email,
		EntryID:   req.EntryID,
		Origin:    req.Origin,
		Signature: req.Signature,
	}

	_, err := h.verifier.Verify(claim)
	switch {
	case errors.Is(err, service.ErrIncompleteClaim):
		return echo.NewHTTPError(http.StatusBadRequest, "Données manquantes")
	case errors.Is(err, service.ErrSignatureLength):
		return echo.NewHTTPError(http.StatusForbidden, "Signature invalide (longueur).")
	case errors.Is(err, service.ErrInvalidSignature):
		return echo.NewHTTPError(http.StatusForbidden, "Signature invalide.")
	case err != nil:
		log.Printf("verify order: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Erreur interne lors de la vérification.")
	}

	return c.JSON(http.StatusOK, dto.VerifyOrderResponse{
		Message:   "Commande vérifiée",
		OrderData: req,
	})
}

// SavePaymentDetails persists a tokenized submission after the processor
// confirmed it client-side.
func (h *PaymentHandler) SavePaymentDetails(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SavePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	sub := &service.RawSubmission{
		Email:           req.Email,
		PaymentMethodID: req.PaymentMethodID,
		CustomerID:      req.CustomerID,
		CardholderName:  req.NomSurCarte,
		Country:         req.Pays,
		PostalCode:      req.Zip,
		Phone:           req.Phone,
		EntryID:         req.EntryID,
		Total:           req.Total,
		Produit:         req.Produit,
		Origin:          req.Origin,
	}

	record, err := h.paymentService.Save(ctx, sub, requestMeta(c))
	switch {
	case errors.Is(err, service.ErrIncompleteSubmission):
		return echo.NewHTTPError(http.StatusBadRequest, "Données de formulaire ou de paiement manquantes")
	case err != nil:
		log.Printf("save payment details: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Erreur interne du serveur lors de la sauvegarde.")
	}

	return c.JSON(http.StatusCreated, dto.SavePaymentResponse{
		Message: "Détails sauvegardés avec succès",
		Data:    record,
	})
}

// GetUserInfo returns the best-guess country for the caller, or null
// when nothing usable is in the headers.
func (h *PaymentHandler) GetUserInfo(c echo.Context) error {
	resp := dto.UserInfoResponse{}
	if code := geo.CountryFromHeaders(c.Request().Header); code != "" {
		resp.CountryCode = &code
	}
	return c.JSON(http.StatusOK, resp)
}

func requestMeta(c echo.Context) *service.RequestMeta {
	req := c.Request()
	return &service.RequestMeta{
		ForwardedFor:   req.Header.Get("X-Forwarded-For"),
		RemoteAddr:     req.RemoteAddr,
		UserAgent:      req.UserAgent(),
		AcceptLanguage: req.Header.Get("Accept-Language"),
		CountryCode:    geo.CountryFromHeaders(req.Header),
	}
}
