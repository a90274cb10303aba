package service

import (
	"context"
	"errors"

	"github.com/ankush0407/salon-backend/internal/auth"
	"github.com/ankush0407/salon-backend/internal/config"
	"github.com/ankush0407/salon-backend/internal/models"
	"github.com/ankush0407/salon-backend/internal/repository"
	"github.com/rs/zerolog"
)

// Sentinel errors translated to HTTP statuses by the handlers.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("name and visits are required")
	ErrNoVisitsRemaining  = errors.New("no visits remaining")
	ErrInvalidVisitIndex  = errors.New("invalid visit index")
)

// AuthService defines the interface for login and registration
type AuthService interface {
	Login(ctx context.Context, email, password, role string) (string, *models.UserSummary, error)
	Register(ctx context.Context, email, password, role string) (*models.User, error)
}

// CustomerService defines the interface for customer operations
type CustomerService interface {
	List(ctx context.Context) ([]*models.Customer, error)
	Create(ctx context.Context, name, email, phone string) (*models.Customer, error)
	Update(ctx context.Context, id, name, email, phone string) (*models.Customer, error)
	Delete(ctx context.Context, id string) error
}

// SubscriptionTypeService defines the interface for subscription type operations
type SubscriptionTypeService interface {
	List(ctx context.Context) ([]*models.SubscriptionType, error)
	Create(ctx context.Context, name, visits string) (*models.SubscriptionType, error)
	Delete(ctx context.Context, id string) error
}

// SubscriptionService defines the interface for subscription operations
type SubscriptionService interface {
	ListByCustomer(ctx context.Context, customerID string) ([]*models.Subscription, error)
	Create(ctx context.Context, customerID, name, totalVisits string) (*models.Subscription, error)
	RedeemVisit(ctx context.Context, id, note string) (*models.Subscription, error)
	UpdateVisitNote(ctx context.Context, id string, visitIndex int, note string) (*models.Subscription, error)
	DeleteVisit(ctx context.Context, id string, visitIndex int) (*models.Subscription, error)
}

// Services holds all service interfaces
type Services struct {
	Auth             AuthService
	Customer         CustomerService
	SubscriptionType SubscriptionTypeService
	Subscription     SubscriptionService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, tokens *auth.JWTManager, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Auth:             newAuthService(repos.User, tokens, auth.NewPasswordHasher(cfg.Auth.BcryptCost), log),
		Customer:         newCustomerService(repos.Customer, repos.Subscription, log),
		SubscriptionType: newSubscriptionTypeService(repos.SubscriptionType, log),
		Subscription:     newSubscriptionService(repos.Subscription, log),
	}
}
