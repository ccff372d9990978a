package service

import (
	"errors"
	"fmt"

	"roster-backend/internal/database/models"
	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessService handles business logic for business locations
type BusinessService struct {
	repo      *repository.BusinessRepository
	orgRepo   *repository.OrganizationRepository
	validator *validator.Validate
}

// NewBusinessService creates a new business service
func NewBusinessService(repo *repository.BusinessRepository, orgRepo *repository.OrganizationRepository, validator *validator.Validate) *BusinessService {
	return &BusinessService{repo: repo, orgRepo: orgRepo, validator: validator}
}

// CreateBusinessRequest represents the request to create a business location
type CreateBusinessRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Name           string    `json:"name" validate:"required,min=1,max=100"`
}

// BusinessResponse represents the response for business operations
type BusinessResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// BusinessListResponse represents a list of businesses
type BusinessListResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
	Total      int                `json:"total"`
}

// Create creates a new business location
func (s *BusinessService) Create(req *CreateBusinessRequest) (*BusinessResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Validate organization exists
	if _, err := s.orgRepo.GetByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	business := &models.Business{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
	}
	if err := s.repo.Create(business); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrBusinessExists
		}
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	return s.toResponse(business), nil
}

// GetByID retrieves a business by ID
func (s *BusinessService) GetByID(id uuid.UUID) (*BusinessResponse, error) {
	business, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return s.toResponse(business), nil
}

// GetByOrganization retrieves all businesses for an organization
func (s *BusinessService) GetByOrganization(organizationID uuid.UUID) (*BusinessListResponse, error) {
	if _, err := s.orgRepo.GetByID(organizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	businesses, err := s.repo.GetByOrganizationID(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}

	responses := make([]BusinessResponse, len(businesses))
	for i, business := range businesses {
		responses[i] = *s.toResponse(&business)
	}

	return &BusinessListResponse{Businesses: responses, Total: len(responses)}, nil
}

// Delete deletes a business
func (s *BusinessService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBusinessNotFound
		}
		return fmt.Errorf("failed to get business: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}

	return nil
}

func (s *BusinessService) toResponse(business *models.Business) *BusinessResponse {
	return &BusinessResponse{
		ID:             business.ID,
		OrganizationID: business.OrganizationID,
		Name:           business.Name,
		CreatedAt:      business.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      business.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
