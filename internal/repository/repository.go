// Package repository maps between the typed domain models and the rows of
// the sheet store. All row-number arithmetic lives here: data row i of a
// table is sheet row i+2 (1-indexed, header included), and deleting a row
// shifts every later row up by one.
package repository

import (
	"context"
	"errors"

	"github.com/ankush0407/salon-backend/internal/models"
	"github.com/ankush0407/salon-backend/internal/rowstore"
)

// ErrNotFound is returned when no row carries the requested id.
var ErrNotFound = errors.New("record not found")

// Sheet row number of data row index i.
const dataRowOffset = 2

// UserRepository defines the interface for user rows
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmailAndRole(ctx context.Context, email, role string) (*models.User, error)
}

// CustomerRepository defines the interface for customer rows
type CustomerRepository interface {
	List(ctx context.Context) ([]*models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
}

// SubscriptionTypeRepository defines the interface for subscription type rows
type SubscriptionTypeRepository interface {
	List(ctx context.Context) ([]*models.SubscriptionType, error)
	Create(ctx context.Context, st *models.SubscriptionType) error
	Delete(ctx context.Context, id string) error
}

// SubscriptionRepository defines the interface for subscription rows
type SubscriptionRepository interface {
	ListByCustomer(ctx context.Context, customerID string) ([]*models.Subscription, error)
	GetByID(ctx context.Context, id string) (*models.Subscription, error)
	Create(ctx context.Context, sub *models.Subscription) error
	Update(ctx context.Context, sub *models.Subscription) error
	DeleteForCustomer(ctx context.Context, customerID string) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User             UserRepository
	Customer         CustomerRepository
	SubscriptionType SubscriptionTypeRepository
	Subscription     SubscriptionRepository
}

// New creates all repositories over the given row store
func New(store rowstore.Store) *Repositories {
	return &Repositories{
		User:             NewUserRepo(store),
		Customer:         NewCustomerRepo(store),
		SubscriptionType: NewSubscriptionTypeRepo(store),
		Subscription:     NewSubscriptionRepo(store),
	}
}

// findRowByID scans records for a matching id and returns its index along
// with the record. The sheet row number is index + dataRowOffset.
func findRowByID(records []rowstore.Record, id string) (int, rowstore.Record, bool) {
	for i, rec := range records {
		if rec["id"] == id {
			return i, rec, true
		}
	}
	return -1, nil, false
}
