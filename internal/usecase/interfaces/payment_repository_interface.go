package interfaces

import (
	"context"
	"time"

	"agency_billing/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment records.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Payment, error)
	UpdateStatusByID(ctx context.Context, id string, paid bool, state string, paidAt time.Time) (entities.Payment, error)
}
