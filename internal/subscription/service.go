package subscription

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/aggregate"
	"github.com/frahmantamala/student-finance/internal/core/common/validation"
	subscriptionDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/subscription"
	"github.com/frahmantamala/student-finance/internal/store"
)

var ErrNothingToUpdate = internal.NewValidationError("no fields to update", internal.ErrCodeValidationFailed)

type RepositoryAPI interface {
	List(ctx context.Context, owner string) ([]*subscriptionDatamodel.Subscription, error)
	Insert(ctx context.Context, record *subscriptionDatamodel.Subscription) error
	Update(ctx context.Context, owner, id string, apply func(*subscriptionDatamodel.Subscription) error) (*subscriptionDatamodel.Subscription, error)
}

type Service struct {
	repo      RepositoryAPI
	snapshots *store.Snapshots
	logger    *slog.Logger
	Now       func() time.Time
}

func NewService(repo RepositoryAPI, snapshots *store.Snapshots, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		snapshots: snapshots,
		logger:    logger,
		Now:       aggregate.Now,
	}
}

func (s *Service) GetSubscriptions(ctx context.Context, ownerID string) *SubscriptionsView {
	rows, stale := store.Read[subscriptionDatamodel.Subscription](ctx, s.snapshots, store.Subscriptions, ownerID, s.repo)

	subs := make([]*Subscription, 0, len(rows))
	for _, row := range rows {
		sub, err := FromDataModel(row)
		if err != nil {
			s.logger.Warn("skipping unreadable subscription", "subscription_id", row.ID, "error", err)
			continue
		}
		subs = append(subs, sub)
	}

	view := BuildSubscriptionsView(subs, s.Now())
	view.Stale = stale
	return &view
}

func (s *Service) CreateSubscription(ctx context.Context, ownerID string, dto CreateSubscriptionDTO) (*SubscriptionLine, error) {
	if dto.BillingCycle == "" {
		dto.BillingCycle = string(CycleMonthly)
	}
	if dto.Category == "" {
		dto.Category = string(CategoryOther)
	}

	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(100)
	v.Field("amount", dto.Amount).Positive()
	v.Field("billing_cycle", dto.BillingCycle).OneOf(internal.ErrCodeValidationFailed, cycles...)
	v.Field("category", dto.Category).OneOf(internal.ErrCodeInvalidCategory, categories...)
	v.Field("next_billing", dto.NextBilling).Required()
	if err := v.Validate(); err != nil {
		return nil, err
	}

	next, err := aggregate.ParseDate(dto.NextBilling)
	if err != nil {
		return nil, internal.NewValidationFieldError("next_billing", "next_billing must be formatted as YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}

	sub := &Subscription{
		OwnerID:      ownerID,
		Name:         dto.Name,
		Amount:       dto.Amount,
		BillingCycle: BillingCycle(dto.BillingCycle),
		NextBilling:  next,
		Status:       StatusActive,
		Autopay:      dto.Autopay,
		Category:     Category(dto.Category),
	}

	row := ToDataModel(sub)
	if err := s.repo.Insert(ctx, row); err != nil {
		s.logger.Error("failed to create subscription", "owner_id", ownerID, "error", err)
		return nil, internal.NewStoreWriteError(err)
	}
	sub.ID = row.ID
	sub.CreatedAt = row.CreatedAt

	line := BuildLine(sub, s.Now())
	return &line, nil
}

func (s *Service) UpdateSubscription(ctx context.Context, ownerID, subscriptionID string, dto UpdateSubscriptionDTO) (*SubscriptionLine, error) {
	if dto.Status == nil && dto.Autopay == nil && dto.Amount == nil && dto.NextBilling == nil {
		return nil, ErrNothingToUpdate
	}

	v := validation.NewValidator()
	if dto.Status != nil {
		v.Field("status", *dto.Status).OneOf(internal.ErrCodeInvalidStatus, statuses...)
	}
	if dto.Amount != nil {
		v.Field("amount", *dto.Amount).Positive()
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	var next time.Time
	if dto.NextBilling != nil {
		parsed, err := aggregate.ParseDate(*dto.NextBilling)
		if err != nil {
			return nil, internal.NewValidationFieldError("next_billing", "next_billing must be formatted as YYYY-MM-DD", internal.ErrCodeInvalidDate)
		}
		next = parsed
	}

	row, err := s.repo.Update(ctx, ownerID, subscriptionID, func(sub *subscriptionDatamodel.Subscription) error {
		if dto.Status != nil {
			sub.Status = *dto.Status
		}
		if dto.Autopay != nil {
			sub.Autopay = *dto.Autopay
		}
		if dto.Amount != nil {
			sub.Amount = *dto.Amount
		}
		if dto.NextBilling != nil {
			sub.NextBilling = next
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, internal.ErrRecordNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update subscription", "subscription_id", subscriptionID, "error", err)
		return nil, internal.NewStoreWriteError(err)
	}

	sub, err := FromDataModel(row)
	if err != nil {
		return nil, internal.NewInternalError("stored subscription is unreadable", err)
	}
	line := BuildLine(sub, s.Now())
	return &line, nil
}
