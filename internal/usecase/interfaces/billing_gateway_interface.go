package interfaces

import (
	"context"
	"fmt"

	"agency_billing/internal/domain/entities"
)

// IBillingGateway abstracts the Billplz payment provider.
//
// The gateway is a stateless translation layer: the provider owns the
// canonical Bill/Collection state and this service only creates and
// reads it. VerifyCallback is the security boundary for inbound
// webhooks; a false return means "reject", not an exceptional condition.
type IBillingGateway interface {
	CreateCollection(ctx context.Context, title string) (entities.Collection, error)
	CreateBill(ctx context.Context, params entities.CreateBillParams) (entities.Bill, error)
	GetBill(ctx context.Context, billID string) (entities.Bill, error)
	HasXSignatureKey() bool
	VerifyCallback(fields map[string]string) bool
}

// GatewayError is a provider rejection: the provider responded with a
// non-2xx status. Retrying these uncritically is rarely useful.
type GatewayError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("billplz: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("billplz: %s", e.Status)
}

// NetworkError is a transport failure (DNS, timeout, connection refused),
// distinct from a provider rejection so callers can decide to retry.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("billplz: %s: provider unreachable: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
