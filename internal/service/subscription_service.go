package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ankush0407/salon-backend/internal/models"
	"github.com/ankush0407/salon-backend/internal/repository"
	"github.com/rs/zerolog"
)

const visitDateLayout = "2006-01-02"

// subscriptionService is the concrete implementation of SubscriptionService
type subscriptionService struct {
	subscriptions repository.SubscriptionRepository
	locks         *keyedMutex
	log           zerolog.Logger
}

func newSubscriptionService(subscriptions repository.SubscriptionRepository, log zerolog.Logger) SubscriptionService {
	return &subscriptionService{
		subscriptions: subscriptions,
		locks:         newKeyedMutex(),
		log:           log.With().Str("service", "subscription").Logger(),
	}
}

// ListByCustomer returns the customer's subscriptions
func (s *subscriptionService) ListByCustomer(ctx context.Context, customerID string) ([]*models.Subscription, error) {
	return s.subscriptions.ListByCustomer(ctx, customerID)
}

// Create appends a new subscription with no visits used yet
func (s *subscriptionService) Create(ctx context.Context, customerID, name, totalVisits string) (*models.Subscription, error) {
	sub := &models.Subscription{
		ID:          models.NewID(),
		CustomerID:  customerID,
		Name:        name,
		TotalVisits: totalVisits,
		UsedVisits:  "0",
		VisitDates:  "",
		VisitNotes:  "",
		CreatedAt:   models.Timestamp(),
	}
	if err := s.subscriptions.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	s.log.Info().Str("subscription_id", sub.ID).Str("customer_id", customerID).Msg("Subscription created")
	return sub, nil
}

// RedeemVisit consumes one visit: today's date joins visitDates, the note
// entry joins visitNotes at the same index, and usedVisits increments.
// Fails with ErrNoVisitsRemaining before mutating anything when the
// allowance is exhausted.
func (s *subscriptionService) RedeemVisit(ctx context.Context, id, note string) (*models.Subscription, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	sub, err := s.subscriptions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	used, err := strconv.Atoi(sub.UsedVisits)
	if err != nil {
		return nil, fmt.Errorf("subscription %s has malformed usedVisits %q: %w", id, sub.UsedVisits, err)
	}
	total, err := strconv.Atoi(sub.TotalVisits)
	if err != nil {
		return nil, fmt.Errorf("subscription %s has malformed totalVisits %q: %w", id, sub.TotalVisits, err)
	}

	if used+1 > total {
		return nil, ErrNoVisitsRemaining
	}

	visits := append(sub.Visits(), models.Visit{
		Date: time.Now().Format(visitDateLayout),
		Note: note,
	})
	sub.SetVisits(visits)
	sub.UsedVisits = strconv.Itoa(used + 1)

	if err := s.subscriptions.Update(ctx, sub); err != nil {
		return nil, err
	}

	s.log.Info().Str("subscription_id", id).Int("used_visits", used+1).Msg("Visit redeemed")
	return sub, nil
}

// UpdateVisitNote replaces the note at visitIndex, leaving its date and all
// other entries untouched. An empty note clears the entry.
func (s *subscriptionService) UpdateVisitNote(ctx context.Context, id string, visitIndex int, note string) (*models.Subscription, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	sub, err := s.subscriptions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	visits := sub.Visits()
	if visitIndex < 0 || visitIndex >= len(visits) {
		return nil, ErrInvalidVisitIndex
	}

	visits[visitIndex].Note = note
	sub.SetVisits(visits)

	if err := s.subscriptions.Update(ctx, sub); err != nil {
		return nil, err
	}

	s.log.Info().Str("subscription_id", id).Int("visit_index", visitIndex).Msg("Visit note updated")
	return sub, nil
}

// DeleteVisit removes the entry at visitIndex from both lists and decrements
// usedVisits. The decrement is literal; a row whose counter already
// disagrees with its visit list keeps disagreeing.
func (s *subscriptionService) DeleteVisit(ctx context.Context, id string, visitIndex int) (*models.Subscription, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	sub, err := s.subscriptions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	visits := sub.Visits()
	if visitIndex < 0 || visitIndex >= len(visits) {
		return nil, ErrInvalidVisitIndex
	}

	used, err := strconv.Atoi(sub.UsedVisits)
	if err != nil {
		return nil, fmt.Errorf("subscription %s has malformed usedVisits %q: %w", id, sub.UsedVisits, err)
	}

	visits = append(visits[:visitIndex], visits[visitIndex+1:]...)
	sub.SetVisits(visits)
	sub.UsedVisits = strconv.Itoa(used - 1)

	if err := s.subscriptions.Update(ctx, sub); err != nil {
		return nil, err
	}

	s.log.Info().Str("subscription_id", id).Int("visit_index", visitIndex).Msg("Visit deleted")
	return sub, nil
}
