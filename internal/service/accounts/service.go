package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bookingjasa/booking-service/internal/domain"
	accountRepo "github.com/bookingjasa/booking-service/internal/infra/storage/account"
	"github.com/bookingjasa/booking-service/internal/service/accounts/models"
)

// Service implements self-service registration and the credentials
// check consulted by the auth gate.
type Service struct {
	repo   AccountRepository
	logger Logger
}

// New creates the service.
func New(repo AccountRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Register creates a new user account. The username is trimmed and
// must contain no inner whitespace; the password has a minimum length
// and is stored as-is, matching the existing account base.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AccountResponse, error) {
	req.Username = strings.TrimSpace(req.Username)

	if req.Username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if strings.ContainsAny(req.Username, " \t") {
		return nil, fmt.Errorf("%w: username must not contain spaces", ErrInvalidInput)
	}
	if len(req.Password) < domain.MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}

	account, err := s.repo.Create(ctx, &domain.Account{
		Username: req.Username,
		Password: req.Password,
		Role:     domain.RoleUser,
	})
	if err != nil {
		if errors.Is(err, accountRepo.ErrUsernameTaken) {
			s.logger.Warn("Register: username %q already taken", req.Username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("Register: failed to create account %q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: failed to create account: %v", ErrInternal, err)
	}

	s.logger.Info("Register: account %q created", account.Username)
	return models.FromDomainAccount(account), nil
}

// Authenticate checks a username/password pair and returns the account
// on success. A missing account and a wrong password are
// indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, req *models.AuthenticateRequest) (*models.AccountResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Authenticate: failed to get account %q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: failed to get account: %v", ErrInternal, err)
	}

	if account.Password != req.Password {
		s.logger.Warn("Authenticate: wrong password for %q", req.Username)
		return nil, ErrInvalidCredentials
	}

	return models.FromDomainAccount(account), nil
}
