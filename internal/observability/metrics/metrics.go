package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "agency_billing_"

var (
	registerOnce sync.Once

	quoteCalculations    *prometheus.CounterVec
	billCreations        *prometheus.CounterVec
	webhookVerifications *prometheus.CounterVec
)

// Init registers the service counters. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		quoteCalculations = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "quote_calculations_total",
				Help: "Total quote estimations by result",
			},
			[]string{"result"},
		)
		billCreations = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "bill_creations_total",
				Help: "Total provider bill creations by result",
			},
			[]string{"result"},
		)
		webhookVerifications = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "webhook_verifications_total",
				Help: "Total webhook signature verifications by result",
			},
			[]string{"result"},
		)

		prometheus.MustRegister(
			quoteCalculations,
			billCreations,
			webhookVerifications,
		)
	})
}

// QuoteCalculated records an estimation outcome ("ok", "invalid_input", "error").
func QuoteCalculated(result string) {
	if quoteCalculations != nil {
		quoteCalculations.WithLabelValues(result).Inc()
	}
}

// BillCreated records a provider bill creation outcome ("ok", "rejected", "unreachable").
func BillCreated(result string) {
	if billCreations != nil {
		billCreations.WithLabelValues(result).Inc()
	}
}

// WebhookVerified records a signature verification verdict ("ok", "mismatch").
func WebhookVerified(result string) {
	if webhookVerifications != nil {
		webhookVerifications.WithLabelValues(result).Inc()
	}
}
