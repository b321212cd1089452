package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	request "agency_billing/internal/adapter/http/dto/request"
	response "agency_billing/internal/adapter/http/dto/response"
	"agency_billing/internal/usecase"
	"agency_billing/internal/usecase/interfaces"
	"agency_billing/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for quote deposit payments and
// the provider's payment-completion webhook.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePaymentByQuoteID creates a Billplz bill for a confirmed quote.
// The body is optional; an empty body charges the quote's minimum price
// using the contact details captured on the quote.
func (h *PaymentHandler) CreatePaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")

	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreatePaymentForQuote(c.Request.Context(), quoteID, usecase.CreatePaymentOptions{
		AmountAUD: payload.AmountAUD,
		Email:     payload.Email,
		Name:      payload.Name,
		Mobile:    payload.Mobile,
	})
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// GetPaymentByQuoteID returns the payment for a quote. With
// ?refresh=true the provider is polled first and the stored paid/state
// are brought up to date.
func (h *PaymentHandler) GetPaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")
	refresh := strings.EqualFold(c.Query("refresh"), "true")

	payment, err := h.usecase.GetByQuoteID(c.Request.Context(), quoteID, refresh)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// PaymentCallback receives the provider's form-encoded webhook. Every
// posted field participates in signature verification; a mismatch is
// rejected with 401 before any state is touched.
func (h *PaymentHandler) PaymentCallback(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	fields := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	payment, err := h.usecase.HandleCallback(c.Request.Context(), fields)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func mapPaymentError(err error) *pkg.AppError {
	var gwErr *interfaces.GatewayError
	var netErr *interfaces.NetworkError
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidPaymentAmount), errors.Is(err, usecase.ErrMissingCallbackBillID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSignatureMismatch):
		return pkg.NewDomainErrorSimple("SIGNATURE_MISMATCH", "Webhook signature mismatch", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotConfirmed):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_CONFIRMED", "Quote not confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentAlreadyExists):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_EXISTS", "Payment already exists for this quote", http.StatusConflict)
	case errors.As(err, &gwErr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_REJECTED", gwErr.Message, err, http.StatusBadGateway)
	case errors.As(err, &netErr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNREACHABLE", "Payment provider unreachable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGatewayNotConfigured), errors.Is(err, usecase.ErrWebhookKeyNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
