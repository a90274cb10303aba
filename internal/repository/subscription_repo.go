package repository

import (
	"context"

	"github.com/ankush0407/salon-backend/internal/models"
	"github.com/ankush0407/salon-backend/internal/rowstore"
)

// subscriptionRepo is the concrete implementation of SubscriptionRepository
type subscriptionRepo struct {
	store rowstore.Store
}

// NewSubscriptionRepo creates a new subscription repository
func NewSubscriptionRepo(store rowstore.Store) SubscriptionRepository {
	return &subscriptionRepo{store: store}
}

// ListByCustomer returns the subscriptions whose customerId matches
func (r *subscriptionRepo) ListByCustomer(ctx context.Context, customerID string) ([]*models.Subscription, error) {
	records, err := r.store.GetAll(ctx, rowstore.TableSubscriptions)
	if err != nil {
		return nil, err
	}
	subs := make([]*models.Subscription, 0)
	for _, rec := range records {
		if rec["customerId"] == customerID {
			subs = append(subs, subscriptionFromRecord(rec))
		}
	}
	return subs, nil
}

// GetByID returns the subscription with the given id, or ErrNotFound
func (r *subscriptionRepo) GetByID(ctx context.Context, id string) (*models.Subscription, error) {
	records, err := r.store.GetAll(ctx, rowstore.TableSubscriptions)
	if err != nil {
		return nil, err
	}
	_, rec, found := findRowByID(records, id)
	if !found {
		return nil, ErrNotFound
	}
	return subscriptionFromRecord(rec), nil
}

// Create appends a new subscription row
func (r *subscriptionRepo) Create(ctx context.Context, sub *models.Subscription) error {
	return r.store.Append(ctx, rowstore.TableSubscriptions, []rowstore.Record{subscriptionToRecord(sub)})
}

// Update rewrites the row holding sub.ID, or returns ErrNotFound
func (r *subscriptionRepo) Update(ctx context.Context, sub *models.Subscription) error {
	records, err := r.store.GetAll(ctx, rowstore.TableSubscriptions)
	if err != nil {
		return err
	}
	idx, _, found := findRowByID(records, sub.ID)
	if !found {
		return ErrNotFound
	}
	return r.store.UpdateRow(ctx, rowstore.TableSubscriptions, idx+dataRowOffset, subscriptionToRecord(sub))
}

// DeleteForCustomer removes every subscription row belonging to the customer
// and returns how many were deleted. Rows are deleted from the highest row
// number down so earlier deletions do not invalidate the remaining offsets.
func (r *subscriptionRepo) DeleteForCustomer(ctx context.Context, customerID string) (int, error) {
	records, err := r.store.GetAll(ctx, rowstore.TableSubscriptions)
	if err != nil {
		return 0, err
	}

	var rowNumbers []int
	for i, rec := range records {
		if rec["customerId"] == customerID {
			rowNumbers = append(rowNumbers, i+dataRowOffset)
		}
	}

	deleted := 0
	for i := len(rowNumbers) - 1; i >= 0; i-- {
		if err := r.store.DeleteRow(ctx, rowstore.TableSubscriptions, rowNumbers[i]); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

func subscriptionToRecord(s *models.Subscription) rowstore.Record {
	return rowstore.Record{
		"id":          s.ID,
		"customerId":  s.CustomerID,
		"name":        s.Name,
		"totalVisits": s.TotalVisits,
		"usedVisits":  s.UsedVisits,
		"visitDates":  s.VisitDates,
		"visitNotes":  s.VisitNotes,
		"createdAt":   s.CreatedAt,
	}
}

func subscriptionFromRecord(rec rowstore.Record) *models.Subscription {
	return &models.Subscription{
		ID:          rec["id"],
		CustomerID:  rec["customerId"],
		Name:        rec["name"],
		TotalVisits: rec["totalVisits"],
		UsedVisits:  rec["usedVisits"],
		VisitDates:  rec["visitDates"],
		VisitNotes:  rec["visitNotes"],
		CreatedAt:   rec["createdAt"],
	}
}
