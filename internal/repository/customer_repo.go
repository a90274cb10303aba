package repository

import (
	"context"

	"github.com/ankush0407/salon-backend/internal/models"
	"github.com/ankush0407/salon-backend/internal/rowstore"
)

// customerRepo is the concrete implementation of CustomerRepository
type customerRepo struct {
	store rowstore.Store
}

// NewCustomerRepo creates a new customer repository
func NewCustomerRepo(store rowstore.Store) CustomerRepository {
	return &customerRepo{store: store}
}

// List returns all customers
func (r *customerRepo) List(ctx context.Context) ([]*models.Customer, error) {
	records, err := r.store.GetAll(ctx, rowstore.TableCustomers)
	if err != nil {
		return nil, err
	}
	customers := make([]*models.Customer, 0, len(records))
	for _, rec := range records {
		customers = append(customers, customerFromRecord(rec))
	}
	return customers, nil
}

// GetByID returns the customer with the given id, or ErrNotFound
func (r *customerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	records, err := r.store.GetAll(ctx, rowstore.TableCustomers)
	if err != nil {
		return nil, err
	}
	_, rec, found := findRowByID(records, id)
	if !found {
		return nil, ErrNotFound
	}
	return customerFromRecord(rec), nil
}

// Create appends a new customer row
func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	return r.store.Append(ctx, rowstore.TableCustomers, []rowstore.Record{customerToRecord(customer)})
}

// Update rewrites the row holding customer.ID, or returns ErrNotFound
func (r *customerRepo) Update(ctx context.Context, customer *models.Customer) error {
	records, err := r.store.GetAll(ctx, rowstore.TableCustomers)
	if err != nil {
		return err
	}
	idx, _, found := findRowByID(records, customer.ID)
	if !found {
		return ErrNotFound
	}
	return r.store.UpdateRow(ctx, rowstore.TableCustomers, idx+dataRowOffset, customerToRecord(customer))
}

// Delete removes the row holding id, or returns ErrNotFound
func (r *customerRepo) Delete(ctx context.Context, id string) error {
	records, err := r.store.GetAll(ctx, rowstore.TableCustomers)
	if err != nil {
		return err
	}
	idx, _, found := findRowByID(records, id)
	if !found {
		return ErrNotFound
	}
	return r.store.DeleteRow(ctx, rowstore.TableCustomers, idx+dataRowOffset)
}

func customerToRecord(c *models.Customer) rowstore.Record {
	return rowstore.Record{
		"id":        c.ID,
		"name":      c.Name,
		"email":     c.Email,
		"phone":     c.Phone,
		"createdAt": c.CreatedAt,
	}
}

func customerFromRecord(rec rowstore.Record) *models.Customer {
	return &models.Customer{
		ID:        rec["id"],
		Name:      rec["name"],
		Email:     rec["email"],
		Phone:     rec["phone"],
		CreatedAt: rec["createdAt"],
	}
}
