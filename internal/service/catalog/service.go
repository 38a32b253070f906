package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bookingjasa/booking-service/internal/domain"
	catalogRepo "github.com/bookingjasa/booking-service/internal/infra/storage/catalog"
	"github.com/bookingjasa/booking-service/internal/service/catalog/models"
)

// Service implements catalog reads and the administrative append
// operation. Offerings are never edited or deleted.
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// New creates the service.
func New(repo CatalogRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Add appends a new offering to the catalog. Admin only.
func (s *Service) Add(ctx context.Context, actor domain.Actor, req *models.AddOfferingRequest) (*models.OfferingResponse, error) {
	if !actor.IsAdmin() {
		s.logger.Warn("Add: account=%s is not an admin", actor.AccountID)
		return nil, ErrAccessDenied
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.DurationMinutes < domain.MinOfferingDurationMinutes {
		return nil, fmt.Errorf("%w: duration must be at least %d minutes", ErrInvalidInput, domain.MinOfferingDurationMinutes)
	}

	offering, err := s.repo.Create(ctx, &domain.ServiceOffering{
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		s.logger.Error("Add: failed to create offering %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: failed to create offering: %v", ErrInternal, err)
	}

	s.logger.Info("Add: offering id=%d %q created by account=%s", offering.ID, offering.Name, actor.AccountID)
	return models.FromDomainOffering(offering), nil
}

// Get returns one offering by id.
func (s *Service) Get(ctx context.Context, id int64) (*models.OfferingResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: offering id must be positive", ErrInvalidInput)
	}

	offering, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrOfferingNotFound) {
			return nil, ErrOfferingNotFound
		}
		s.logger.Error("Get: failed to get offering id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get offering: %v", ErrInternal, err)
	}

	return models.FromDomainOffering(offering), nil
}

// List returns the full catalog ordered by id. Open to any
// authenticated actor.
func (s *Service) List(ctx context.Context) (*models.OfferingListResponse, error) {
	offerings, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list offerings: %v", err)
		return nil, fmt.Errorf("%w: failed to list offerings: %v", ErrInternal, err)
	}

	return models.FromDomainOfferingList(offerings), nil
}
