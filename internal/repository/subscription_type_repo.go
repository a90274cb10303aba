package repository

import (
	"context"

	"github.com/ankush0407/salon-backend/internal/models"
	"github.com/ankush0407/salon-backend/internal/rowstore"
)

// subscriptionTypeRepo is the concrete implementation of SubscriptionTypeRepository
type subscriptionTypeRepo struct {
	store rowstore.Store
}

// NewSubscriptionTypeRepo creates a new subscription type repository
func NewSubscriptionTypeRepo(store rowstore.Store) SubscriptionTypeRepository {
	return &subscriptionTypeRepo{store: store}
}

// List returns all subscription types
func (r *subscriptionTypeRepo) List(ctx context.Context) ([]*models.SubscriptionType, error) {
	records, err := r.store.GetAll(ctx, rowstore.TableSubscriptionTypes)
	if err != nil {
		return nil, err
	}
	types := make([]*models.SubscriptionType, 0, len(records))
	for _, rec := range records {
		types = append(types, subscriptionTypeFromRecord(rec))
	}
	return types, nil
}

// Create appends a new subscription type row
func (r *subscriptionTypeRepo) Create(ctx context.Context, st *models.SubscriptionType) error {
	return r.store.Append(ctx, rowstore.TableSubscriptionTypes, []rowstore.Record{subscriptionTypeToRecord(st)})
}

// Delete removes the row holding id, or returns ErrNotFound
func (r *subscriptionTypeRepo) Delete(ctx context.Context, id string) error {
	records, err := r.store.GetAll(ctx, rowstore.TableSubscriptionTypes)
	if err != nil {
		return err
	}
	idx, _, found := findRowByID(records, id)
	if !found {
		return ErrNotFound
	}
	return r.store.DeleteRow(ctx, rowstore.TableSubscriptionTypes, idx+dataRowOffset)
}

func subscriptionTypeToRecord(st *models.SubscriptionType) rowstore.Record {
	return rowstore.Record{
		"id":        st.ID,
		"name":      st.Name,
		"visits":    st.Visits,
		"createdAt": st.CreatedAt,
	}
}

func subscriptionTypeFromRecord(rec rowstore.Record) *models.SubscriptionType {
	return &models.SubscriptionType{
		ID:        rec["id"],
		Name:      rec["name"],
		Visits:    rec["visits"],
		CreatedAt: rec["createdAt"],
	}
}
