package service

import (
	"context"
	"fmt"

	"github.com/ankush0407/salon-backend/internal/models"
	"github.com/ankush0407/salon-backend/internal/repository"
	"github.com/rs/zerolog"
)

// subscriptionTypeService is the concrete implementation of SubscriptionTypeService
type subscriptionTypeService struct {
	types repository.SubscriptionTypeRepository
	log   zerolog.Logger
}

func newSubscriptionTypeService(types repository.SubscriptionTypeRepository, log zerolog.Logger) SubscriptionTypeService {
	return &subscriptionTypeService{
		types: types,
		log:   log.With().Str("service", "subscription_type").Logger(),
	}
}

// List returns all subscription types
func (s *subscriptionTypeService) List(ctx context.Context) ([]*models.SubscriptionType, error) {
	return s.types.List(ctx)
}

// Create appends a new type after checking both fields are present
func (s *subscriptionTypeService) Create(ctx context.Context, name, visits string) (*models.SubscriptionType, error) {
	if name == "" || visits == "" {
		return nil, ErrMissingFields
	}

	st := &models.SubscriptionType{
		ID:        models.NewID(),
		Name:      name,
		Visits:    visits,
		CreatedAt: models.Timestamp(),
	}
	if err := s.types.Create(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to create subscription type: %w", err)
	}
	s.log.Info().Str("type_id", st.ID).Str("name", name).Msg("Subscription type created")
	return st, nil
}

// Delete removes the type row, or returns repository.ErrNotFound
func (s *subscriptionTypeService) Delete(ctx context.Context, id string) error {
	if err := s.types.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("type_id", id).Msg("Subscription type deleted")
	return nil
}
