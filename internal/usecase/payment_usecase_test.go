package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"agency_billing/internal/domain/entities"
	"agency_billing/internal/usecase/interfaces"
	mock_interfaces "agency_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	repo      *mock_interfaces.MockIPaymentRepository
	quoteRepo *mock_interfaces.MockIQuoteRepository
	gateway   *mock_interfaces.MockIBillingGateway
	converter *mock_interfaces.MockICurrencyConverter
}

func newPaymentUseCaseForTest(t *testing.T, cfg PaymentConfig) (*PaymentUseCase, paymentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := paymentMocks{
		repo:      mock_interfaces.NewMockIPaymentRepository(ctrl),
		quoteRepo: mock_interfaces.NewMockIQuoteRepository(ctrl),
		gateway:   mock_interfaces.NewMockIBillingGateway(ctrl),
		converter: mock_interfaces.NewMockICurrencyConverter(ctrl),
	}
	uc := NewPaymentUseCase(m.repo, m.quoteRepo, m.gateway, m.converter, cfg, nil)
	return uc, m
}

func confirmedQuote() entities.Quote {
	return entities.Quote{
		ID:          "q-1",
		ProjectType: "website",
		MinPrice:    6400,
		MaxPrice:    9600,
		Name:        "Jo",
		Email:       "jo@example.com",
		Status:      entities.QuoteStatusConfirmed,
	}
}

func TestPaymentUseCase_CreatePaymentForQuote(t *testing.T) {
	cfg := PaymentConfig{
		CollectionID: "col-1",
		CallbackURL:  "https://example.com/v1/payments/callback",
		RedirectURL:  "https://example.com/thanks",
	}

	t.Run("invalid quote id", func(t *testing.T) {
		uc, _ := newPaymentUseCaseForTest(t, cfg)
		if _, err := uc.CreatePaymentForQuote(context.Background(), "  ", CreatePaymentOptions{}); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, cfg, nil)
		if _, err := uc.CreatePaymentForQuote(context.Background(), "q-1", CreatePaymentOptions{}); !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, cfg)
		m.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		if _, err := uc.CreatePaymentForQuote(context.Background(), "q-1", CreatePaymentOptions{}); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote not confirmed", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, cfg)
		q := confirmedQuote()
		q.Status = entities.QuoteStatusPending
		m.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		if _, err := uc.CreatePaymentForQuote(context.Background(), "q-1", CreatePaymentOptions{}); !errors.Is(err, ErrQuoteNotConfirmed) {
			t.Fatalf("expected ErrQuoteNotConfirmed, got %v", err)
		}
	})

	t.Run("payment already exists", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, cfg)
		m.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(confirmedQuote(), nil)
		m.repo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Payment{ID: "bill-0"}, nil)

		if _, err := uc.CreatePaymentForQuote(context.Background(), "q-1", CreatePaymentOptions{}); !errors.Is(err, ErrPaymentAlreadyExists) {
			t.Fatalf("expected ErrPaymentAlreadyExists, got %v", err)
		}
	})

	t.Run("gateway rejection propagates", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, cfg)
		m.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(confirmedQuote(), nil)
		m.repo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Payment{}, nil)
		m.converter.EXPECT().AUDToSen(gomock.Any(), 6400.0).Return(int64(1984000), nil)
		m.gateway.EXPECT().CreateBill(gomock.Any(), gomock.Any()).
			Return(entities.Bill{}, &interfaces.GatewayError{StatusCode: 422, Message: "Email is invalid"})

		_, err := uc.CreatePaymentForQuote(context.Background(), "q-1", CreatePaymentOptions{})
		var gwErr *interfaces.GatewayError
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected GatewayError, got %v", err)
		}
	})

	t.Run("success with quote minimum price", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, cfg)
		m.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(confirmedQuote(), nil)
		m.repo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Payment{}, nil)
		m.converter.EXPECT().AUDToSen(gomock.Any(), 6400.0).Return(int64(1984000), nil)
		m.gateway.EXPECT().CreateBill(gomock.Any(), gomock.AssignableToTypeOf(entities.CreateBillParams{})).DoAndReturn(
			func(_ context.Context, params entities.CreateBillParams) (entities.Bill, error) {
				if params.CollectionID != "col-1" || params.Amount != 1984000 {
					t.Fatalf("unexpected params: %+v", params)
				}
				if params.Email != "jo@example.com" || params.Name != "Jo" {
					t.Fatalf("payer defaults not taken from quote: %+v", params)
				}
				if params.Reference1 != "q-1" || params.Reference1Label != "quote_id" {
					t.Fatalf("quote linkage missing: %+v", params)
				}
				if params.CallbackURL == "" {
					t.Fatalf("callback url missing")
				}
				return entities.Bill{
					ID: "bill-1", CollectionID: "col-1", Amount: params.Amount,
					State: "due", URL: "https://x/bills/bill-1",
				}, nil
			},
		)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID != "bill-1" || p.QuoteID != "q-1" || p.Currency != "MYR" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.AmountSen != 1984000 || p.URL == "" {
					t.Fatalf("unexpected payment amount/url: %+v", p)
				}
				return p, nil
			},
		)

		created, err := uc.CreatePaymentForQuote(context.Background(), "q-1", CreatePaymentOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.State != "due" {
			t.Fatalf("unexpected state: %+v", created)
		}
	})

	t.Run("amount override", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, cfg)
		m.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(confirmedQuote(), nil)
		m.repo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Payment{}, nil)
		m.converter.EXPECT().AUDToSen(gomock.Any(), 1000.0).Return(int64(310000), nil)
		m.gateway.EXPECT().CreateBill(gomock.Any(), gomock.Any()).
			Return(entities.Bill{ID: "bill-2", Amount: 310000, State: "due"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)

		if _, err := uc.CreatePaymentForQuote(context.Background(), "q-1", CreatePaymentOptions{AmountAUD: 1000}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_GetByQuoteID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentConfig{})
		m.repo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Payment{}, nil)

		if _, err := uc.GetByQuoteID(context.Background(), "q-1", false); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("no refresh returns stored record", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentConfig{})
		m.repo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Payment{ID: "bill-1", State: "due"}, nil)

		p, err := uc.GetByQuoteID(context.Background(), "q-1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "bill-1" {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("refresh applies provider state change", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentConfig{})
		m.repo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Payment{ID: "bill-1", State: "due"}, nil)
		m.gateway.EXPECT().GetBill(gomock.Any(), "bill-1").Return(entities.Bill{ID: "bill-1", Paid: true, State: "paid"}, nil)
		m.repo.EXPECT().UpdateStatusByID(gomock.Any(), "bill-1", true, "paid", gomock.Any()).
			Return(entities.Payment{ID: "bill-1", Paid: true, State: "paid"}, nil)

		p, err := uc.GetByQuoteID(context.Background(), "q-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.Paid || p.State != "paid" {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("refresh with unchanged state skips update", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentConfig{})
		m.repo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Payment{ID: "bill-1", State: "due"}, nil)
		m.gateway.EXPECT().GetBill(gomock.Any(), "bill-1").Return(entities.Bill{ID: "bill-1", State: "due"}, nil)

		if _, err := uc.GetByQuoteID(context.Background(), "q-1", true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_HandleCallback(t *testing.T) {
	fields := func() map[string]string {
		return map[string]string{
			"id":          "bill-1",
			"paid":        "true",
			"state":       "paid",
			"paid_at":     "2026-08-29T10:00:00Z",
			"x_signature": "sig",
		}
	}

	t.Run("no signing key configured", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentConfig{})
		m.gateway.EXPECT().HasXSignatureKey().Return(false)

		if _, err := uc.HandleCallback(context.Background(), fields()); !errors.Is(err, ErrWebhookKeyNotConfigured) {
			t.Fatalf("expected ErrWebhookKeyNotConfigured, got %v", err)
		}
	})

	t.Run("signature mismatch leaves record untouched", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentConfig{})
		m.gateway.EXPECT().HasXSignatureKey().Return(true)
		m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(false)
		// No repo expectation: any update call would fail the controller.

		if _, err := uc.HandleCallback(context.Background(), fields()); !errors.Is(err, ErrSignatureMismatch) {
			t.Fatalf("expected ErrSignatureMismatch, got %v", err)
		}
	})

	t.Run("missing bill id", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentConfig{})
		m.gateway.EXPECT().HasXSignatureKey().Return(true)
		m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(true)

		f := fields()
		delete(f, "id")
		if _, err := uc.HandleCallback(context.Background(), f); !errors.Is(err, ErrMissingCallbackBillID) {
			t.Fatalf("expected ErrMissingCallbackBillID, got %v", err)
		}
	})

	t.Run("unknown bill", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentConfig{})
		m.gateway.EXPECT().HasXSignatureKey().Return(true)
		m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(true)
		m.repo.EXPECT().UpdateStatusByID(gomock.Any(), "bill-1", true, "paid", gomock.Any()).
			Return(entities.Payment{}, nil)

		if _, err := uc.HandleCallback(context.Background(), fields()); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("verified callback applies paid state", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentConfig{})
		m.gateway.EXPECT().HasXSignatureKey().Return(true)
		m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(true)
		m.repo.EXPECT().UpdateStatusByID(gomock.Any(), "bill-1", true, "paid", gomock.AssignableToTypeOf(time.Time{})).DoAndReturn(
			func(_ context.Context, id string, paid bool, state string, paidAt time.Time) (entities.Payment, error) {
				want, _ := time.Parse(time.RFC3339, "2026-08-29T10:00:00Z")
				if !paidAt.Equal(want) {
					t.Fatalf("expected paid_at from payload, got %v", paidAt)
				}
				return entities.Payment{ID: id, Paid: paid, State: state, PaidAt: paidAt}, nil
			},
		)

		p, err := uc.HandleCallback(context.Background(), fields())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.Paid || p.State != "paid" {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})
}
