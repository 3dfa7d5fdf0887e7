package repositories

import (
	"context"
	"time"

	"github.com/prudhvinik1/accounts/internal/models"
)

// AccountRepository stores accounts in one backend. Lookups report a missing
// account as (nil, nil); only backend failures are errors.
type AccountRepository interface {
	// Create inserts an account that has no ID yet and returns it with the
	// backend-assigned ID and timestamps.
	Create(ctx context.Context, account models.Account) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByID(ctx context.Context, id string) (*models.Account, error)
}

// EmailReservation holds a short-lived claim on an email address while an
// account for it is being created.
type EmailReservation interface {
	// Reserve returns ok=false when another caller already holds the email.
	// release must be called once the create attempt is over.
	Reserve(ctx context.Context, email string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
}
