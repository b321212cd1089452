package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agency_billing/internal/domain/entities"
	"agency_billing/internal/observability/metrics"
	"agency_billing/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrPaymentAlreadyExists    = errors.New("payment already exists for this quote")
	ErrQuoteNotConfirmed       = errors.New("quote not confirmed")
	ErrInvalidPaymentAmount    = errors.New("invalid payment amount")
	ErrSignatureMismatch       = errors.New("webhook signature mismatch")
	ErrMissingCallbackBillID   = errors.New("webhook payload missing bill id")
	ErrGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrWebhookKeyNotConfigured = errors.New("webhook signing key not configured")
)

// PaymentConfig carries the caller-side bill defaults. CollectionID is a
// pre-created Billplz collection; CallbackURL receives the provider's
// webhook; RedirectURL is where the payer lands after paying.
type PaymentConfig struct {
	CollectionID string
	CallbackURL  string
	RedirectURL  string
}

// CreatePaymentOptions are per-request overrides. A zero AmountAUD means
// "bill the quote's minimum price".
type CreatePaymentOptions struct {
	AmountAUD float64
	Email     string
	Name      string
	Mobile    string
}

// IPaymentUseCase bridges confirmed quotes to provider bills and applies
// verified webhook callbacks.

type IPaymentUseCase interface {
	CreatePaymentForQuote(ctx context.Context, quoteID string, opts CreatePaymentOptions) (entities.Payment, error)
	GetByQuoteID(ctx context.Context, quoteID string, refresh bool) (entities.Payment, error)
	HandleCallback(ctx context.Context, fields map[string]string) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IBillingGateway
	converter interfaces.ICurrencyConverter
	cfg       PaymentConfig
	log       *logrus.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	quoteRepo interfaces.IQuoteRepository,
	gateway interfaces.IBillingGateway,
	converter interfaces.ICurrencyConverter,
	cfg PaymentConfig,
	log *logrus.Logger,
) *PaymentUseCase {
	if log == nil {
		log = logrus.New()
	}
	return &PaymentUseCase{
		repo:      repo,
		quoteRepo: quoteRepo,
		gateway:   gateway,
		converter: converter,
		cfg:       cfg,
		log:       log,
	}
}

// CreatePaymentForQuote raises a Billplz bill for a confirmed quote and
// records it locally. One payment per quote; retries reconcile through
// reference_1 carrying the quote id.
func (u *PaymentUseCase) CreatePaymentForQuote(ctx context.Context, quoteID string, opts CreatePaymentOptions) (entities.Payment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Payment{}, ErrInvalidQuoteID
	}
	if u.gateway == nil {
		u.log.WithField("quote_id", quoteID).Error("[payment][usecase] gateway not configured")
		return entities.Payment{}, ErrGatewayNotConfigured
	}

	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Payment{}, err
	}
	if quote.ID == "" {
		return entities.Payment{}, ErrQuoteNotFound
	}
	if quote.Status != entities.QuoteStatusConfirmed {
		u.log.WithFields(logrus.Fields{"quote_id": quoteID, "status": quote.Status}).
			Warn("[payment][usecase] quote not confirmed")
		return entities.Payment{}, ErrQuoteNotConfirmed
	}

	if existing, err := u.repo.GetByQuoteID(ctx, quoteID); err != nil {
		return entities.Payment{}, err
	} else if existing.ID != "" {
		return entities.Payment{}, ErrPaymentAlreadyExists
	}

	amountAUD := opts.AmountAUD
	if amountAUD == 0 {
		amountAUD = float64(quote.MinPrice)
	}
	if amountAUD <= 0 {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}

	amountSen, err := u.converter.AUDToSen(ctx, amountAUD)
	if err != nil {
		u.log.WithError(err).WithField("quote_id", quoteID).Error("[payment][usecase] currency conversion failed")
		return entities.Payment{}, err
	}

	params := entities.CreateBillParams{
		CollectionID:    u.cfg.CollectionID,
		Email:           coalesce(opts.Email, quote.Email),
		Name:            coalesce(opts.Name, quote.Name),
		Amount:          amountSen,
		Description:     fmt.Sprintf("%s project deposit (quote %s)", quote.ProjectType, quote.ID),
		CallbackURL:     u.cfg.CallbackURL,
		RedirectURL:     u.cfg.RedirectURL,
		Mobile:          strings.TrimSpace(opts.Mobile),
		Reference1Label: "quote_id",
		Reference1:      quote.ID,
	}

	bill, err := u.gateway.CreateBill(ctx, params)
	if err != nil {
		var netErr *interfaces.NetworkError
		if errors.As(err, &netErr) {
			metrics.BillCreated("unreachable")
		} else {
			metrics.BillCreated("rejected")
		}
		u.log.WithError(err).WithField("quote_id", quoteID).Error("[payment][usecase] bill creation failed")
		return entities.Payment{}, err
	}
	metrics.BillCreated("ok")

	now := time.Now().UTC()
	p := entities.Payment{
		ID:           bill.ID,
		QuoteID:      quote.ID,
		CollectionID: bill.CollectionID,
		AmountSen:    bill.Amount,
		Currency:     "MYR",
		URL:          bill.URL,
		Paid:         bill.Paid,
		State:        bill.State,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.WithError(err).WithFields(logrus.Fields{"quote_id": quoteID, "bill_id": bill.ID}).
			Error("[payment][usecase] payment record create failed")
		return entities.Payment{}, err
	}
	u.log.WithFields(logrus.Fields{"quote_id": quoteID, "bill_id": created.ID, "amount_sen": created.AmountSen}).
		Info("[payment][usecase] payment created")
	return created, nil
}

// GetByQuoteID returns the payment record for a quote. With refresh set,
// the provider is polled first and the stored paid/state are updated.
func (u *PaymentUseCase) GetByQuoteID(ctx context.Context, quoteID string, refresh bool) (entities.Payment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Payment{}, ErrInvalidQuoteID
	}

	p, err := u.repo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if !refresh {
		return p, nil
	}

	if u.gateway == nil {
		return entities.Payment{}, ErrGatewayNotConfigured
	}
	bill, err := u.gateway.GetBill(ctx, p.ID)
	if err != nil {
		return entities.Payment{}, err
	}
	if bill.Paid == p.Paid && bill.State == p.State {
		return p, nil
	}

	updated, err := u.repo.UpdateStatusByID(ctx, p.ID, bill.Paid, bill.State, time.Now().UTC())
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return updated, nil
}

// HandleCallback applies an inbound provider webhook. The signature
// verdict gates everything: a mismatch leaves the record untouched.
func (u *PaymentUseCase) HandleCallback(ctx context.Context, fields map[string]string) (entities.Payment, error) {
	if u.gateway == nil {
		return entities.Payment{}, ErrGatewayNotConfigured
	}
	if !u.gateway.HasXSignatureKey() {
		u.log.Error("[payment][usecase] callback received but no signing key configured")
		return entities.Payment{}, ErrWebhookKeyNotConfigured
	}

	if !u.gateway.VerifyCallback(fields) {
		metrics.WebhookVerified("mismatch")
		u.log.WithField("bill_id", fields["id"]).Warn("[payment][usecase] callback signature mismatch")
		return entities.Payment{}, ErrSignatureMismatch
	}
	metrics.WebhookVerified("ok")

	billID := strings.TrimSpace(fields["id"])
	if billID == "" {
		return entities.Payment{}, ErrMissingCallbackBillID
	}

	paid := fields["paid"] == "true"
	state := fields["state"]

	paidAt := time.Now().UTC()
	if raw := fields["paid_at"]; raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			paidAt = t.UTC()
		}
	}

	updated, err := u.repo.UpdateStatusByID(ctx, billID, paid, state, paidAt)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	u.log.WithFields(logrus.Fields{"bill_id": billID, "paid": paid, "state": state}).
		Info("[payment][usecase] callback applied")
	return updated, nil
}

func coalesce(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
