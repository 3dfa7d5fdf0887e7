package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prudhvinik1/accounts/internal/models"
	"github.com/prudhvinik1/accounts/internal/repositories"
	"github.com/prudhvinik1/accounts/internal/utils"
)

const DefaultReservationTTL = 30 * time.Second

// AccountService owns the account rules: email uniqueness, provider
// defaulting and password hashing. Storage is delegated to the repository.
type AccountService struct {
	accountRepo    repositories.AccountRepository
	hasher         utils.PasswordHasher
	reservation    repositories.EmailReservation
	reservationTTL time.Duration
	log            *slog.Logger
}

// NewAccountService wires the service. reservation may be nil, in which case
// only the backend's unique email index guards concurrent creates.
func NewAccountService(
	accountRepo repositories.AccountRepository,
	hasher utils.PasswordHasher,
	reservation repositories.EmailReservation,
	log *slog.Logger,
) *AccountService {
	if log == nil {
		log = slog.Default()
	}
	return &AccountService{
		accountRepo:    accountRepo,
		hasher:         hasher,
		reservation:    reservation,
		reservationTTL: DefaultReservationTTL,
		log:            log.With(slog.String("component", "account_service")),
	}
}

// Create registers a new account. It fails with *ValidationError when the
// request is malformed or the email is taken; storage and hashing failures
// are returned as they come.
func (s *AccountService) Create(ctx context.Context, req models.CreateAccountRequest) (*models.Account, error) {
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		return nil, invalidFieldsError(fieldErrors)
	}

	if s.reservation != nil {
		release, ok, err := s.reservation.Reserve(ctx, req.Email, s.reservationTTL)
		if err != nil {
			s.log.Error("failed to reserve email", utils.ErrAttr(err))
			return nil, err
		}
		if !ok {
			return nil, duplicateEmailError()
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				s.log.Warn("failed to release email reservation", utils.ErrAttr(err))
			}
		}()
	}

	if req.Email != "" {
		existing, err := s.accountRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			s.log.Error("failed to check email", utils.ErrAttr(err))
			return nil, err
		}
		if existing != nil {
			return nil, duplicateEmailError()
		}
	}

	if req.Provider == "" {
		req.Provider = models.ProviderEmail
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.log.Error("failed to hash password", utils.ErrAttr(err))
		return nil, err
	}

	account, err := s.accountRepo.Create(ctx, models.Account{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Provider:     req.Provider,
	})
	if errors.Is(err, repositories.ErrDuplicateEmail) {
		// Another create won the race between our check and the insert.
		return nil, duplicateEmailError()
	}
	if err != nil {
		s.log.Error("failed to create account", utils.ErrAttr(err))
		return nil, err
	}

	s.log.Info("account created",
		slog.String("account_id", account.ID),
		slog.String("provider", string(account.Provider)),
	)
	return account, nil
}

func (s *AccountService) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return s.accountRepo.FindByEmail(ctx, email)
}

func (s *AccountService) FindByID(ctx context.Context, id string) (*models.Account, error) {
	return s.accountRepo.FindByID(ctx, id)
}
