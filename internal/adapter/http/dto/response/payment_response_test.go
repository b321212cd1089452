package response

import (
	"testing"
	"time"

	"agency_billing/internal/domain/entities"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Payment{
		ID:           "bill-1",
		QuoteID:      "q-1",
		CollectionID: "col-1",
		AmountSen:    19840,
		Currency:     "MYR",
		URL:          "https://www.billplz-sandbox.com/bills/bill-1",
		Paid:         false,
		State:        "due",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res := FromPayment(p)
	if res.ID != "bill-1" || res.QuoteID != "q-1" || res.AmountSen != 19840 {
		t.Fatalf("unexpected mapping: %+v", res)
	}
	if res.PaidAt != nil {
		t.Fatalf("expected nil paid_at for unpaid payment, got %v", res.PaidAt)
	}

	paidAt := now.Add(time.Minute)
	p.Paid = true
	p.State = "paid"
	p.PaidAt = paidAt

	res = FromPayment(p)
	if !res.Paid || res.State != "paid" {
		t.Fatalf("unexpected paid mapping: %+v", res)
	}
	if res.PaidAt == nil || !res.PaidAt.Equal(paidAt) {
		t.Fatalf("expected paid_at %v, got %v", paidAt, res.PaidAt)
	}
}
