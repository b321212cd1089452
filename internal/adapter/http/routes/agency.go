package routes

import (
	"agency_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathPayments = "/payments"
)

func addAgencyRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.PaymentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PATCH("/:quote_id/confirm", quoteHandler.ConfirmQuote)
		quotes.PATCH("/:quote_id/cancel", quoteHandler.CancelQuote)
	}

	payments := rg.Group(PathPayments)
	{
		// Static segment takes precedence over :quote_id.
		payments.POST("/callback", paymentHandler.PaymentCallback)
		payments.POST("/:quote_id", paymentHandler.CreatePaymentByQuoteID)
		payments.GET("/:quote_id", paymentHandler.GetPaymentByQuoteID)
	}
}
