package service

import (
	"context"
	"fmt"

	"github.com/ankush0407/salon-backend/internal/models"
	"github.com/ankush0407/salon-backend/internal/repository"
	"github.com/rs/zerolog"
)

// customerService is the concrete implementation of CustomerService
type customerService struct {
	customers     repository.CustomerRepository
	subscriptions repository.SubscriptionRepository
	log           zerolog.Logger
}

func newCustomerService(customers repository.CustomerRepository, subscriptions repository.SubscriptionRepository, log zerolog.Logger) CustomerService {
	return &customerService{
		customers:     customers,
		subscriptions: subscriptions,
		log:           log.With().Str("service", "customer").Logger(),
	}
}

// List returns all customers
func (s *customerService) List(ctx context.Context) ([]*models.Customer, error) {
	return s.customers.List(ctx)
}

// Create appends a new customer and returns it
func (s *customerService) Create(ctx context.Context, name, email, phone string) (*models.Customer, error) {
	customer := &models.Customer{
		ID:        models.NewID(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: models.Timestamp(),
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	s.log.Info().Str("customer_id", customer.ID).Msg("Customer created")
	return customer, nil
}

// Update merges the three editable fields over the existing record and
// rewrites the row. Returns repository.ErrNotFound if the id is absent.
func (s *customerService) Update(ctx context.Context, id, name, email, phone string) (*models.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Name = name
	customer.Email = email
	customer.Phone = phone

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes the customer row and then cascades over its subscriptions.
// If a subscription deletion fails partway the store is left inconsistent;
// the error propagates with no compensating action.
func (s *customerService) Delete(ctx context.Context, id string) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}

	deleted, err := s.subscriptions.DeleteForCustomer(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("customer_id", id).Int("deleted", deleted).
			Msg("Cascade delete failed partway")
		return err
	}

	s.log.Info().Str("customer_id", id).Int("subscriptions_deleted", deleted).Msg("Customer deleted")
	return nil
}
