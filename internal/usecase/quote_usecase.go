package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"agency_billing/internal/domain/entities"
	"agency_billing/internal/domain/pricing"
	"agency_billing/internal/observability/metrics"
	"agency_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrInvalidQuoteID = errors.New("invalid quote id")
)

// CreateQuoteCommand carries the quote-builder selections. The three
// enum fields must all be set; there is no defaulting policy here — an
// unrecognized value surfaces as pricing.InvalidInputError.
type CreateQuoteCommand struct {
	ProjectType string
	Complexity  string
	Timeline    string
	Name        string
	Email       string
}

// IQuoteUseCase exposes quote operations.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ConfirmByID(ctx context.Context, id string) (entities.Quote, error)
	CancelByID(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
	log  *logrus.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, log *logrus.Logger) *QuoteUseCase {
	if log == nil {
		log = logrus.New()
	}
	return &QuoteUseCase{repo: repo, log: log}
}

// CreateQuote runs the pricing estimator over the selections and
// persists the resulting quote in pending state.
func (u *QuoteUseCase) CreateQuote(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error) {
	projectType := pricing.ProjectType(strings.TrimSpace(cmd.ProjectType))
	complexity := pricing.Complexity(strings.TrimSpace(cmd.Complexity))
	timeline := pricing.Timeline(strings.TrimSpace(cmd.Timeline))

	est, err := pricing.Estimate(projectType, complexity, timeline)
	if err != nil {
		u.log.WithError(err).Warn("[quote][usecase] estimation rejected")
		metrics.QuoteCalculated("invalid_input")
		return entities.Quote{}, err
	}
	metrics.QuoteCalculated("ok")

	now := time.Now().UTC()
	q := entities.Quote{
		ID:          uuid.NewString(),
		ProjectType: projectType,
		Complexity:  complexity,
		Timeline:    timeline,
		MinPrice:    est.MinPrice,
		MaxPrice:    est.MaxPrice,
		Duration:    est.Duration,
		Features:    est.Features,
		Name:        strings.TrimSpace(cmd.Name),
		Email:       strings.TrimSpace(cmd.Email),
		Status:      entities.QuoteStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.log.WithError(err).WithField("quote_id", q.ID).Error("[quote][usecase] create failed")
		return entities.Quote{}, err
	}
	u.log.WithFields(logrus.Fields{
		"quote_id":     created.ID,
		"project_type": created.ProjectType,
		"min_price":    created.MinPrice,
		"max_price":    created.MaxPrice,
	}).Info("[quote][usecase] quote created")
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ConfirmByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusConfirmed)
}

func (u *QuoteUseCase) CancelByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusCancelled)
}

func (u *QuoteUseCase) updateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	u.log.WithFields(logrus.Fields{"quote_id": updated.ID, "status": updated.Status}).
		Info("[quote][usecase] status updated")
	return updated, nil
}
