package repository

import (
	"context"

	"github.com/ankush0407/salon-backend/internal/models"
	"github.com/ankush0407/salon-backend/internal/rowstore"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	store rowstore.Store
}

// NewUserRepo creates a new user repository
func NewUserRepo(store rowstore.Store) UserRepository {
	return &userRepo{store: store}
}

// Create appends a new user row. No uniqueness check: registering the same
// email twice creates two rows, and lookups resolve to the first match.
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	return r.store.Append(ctx, rowstore.TableUsers, []rowstore.Record{userToRecord(user)})
}

// FindByEmailAndRole returns the first user matching the exact (email, role)
// pair, or ErrNotFound.
func (r *userRepo) FindByEmailAndRole(ctx context.Context, email, role string) (*models.User, error) {
	records, err := r.store.GetAll(ctx, rowstore.TableUsers)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec["email"] == email && rec["role"] == role {
			return userFromRecord(rec), nil
		}
	}
	return nil, ErrNotFound
}

func userToRecord(u *models.User) rowstore.Record {
	return rowstore.Record{
		"id":        u.ID,
		"email":     u.Email,
		"password":  u.Password,
		"role":      u.Role,
		"name":      u.Name,
		"createdAt": u.CreatedAt,
	}
}

func userFromRecord(rec rowstore.Record) *models.User {
	return &models.User{
		ID:        rec["id"],
		Email:     rec["email"],
		Password:  rec["password"],
		Role:      rec["role"],
		Name:      rec["name"],
		CreatedAt: rec["createdAt"],
	}
}
