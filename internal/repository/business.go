package repository

import (
	"roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessRepository handles database operations for businesses
type BusinessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// Create creates a new business
func (r *BusinessRepository) Create(business *models.Business) error {
	return r.db.Create(business).Error
}

// GetByID retrieves a business by ID
func (r *BusinessRepository) GetByID(id uuid.UUID) (*models.Business, error) {
	var business models.Business
	err := r.db.First(&business, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// GetByOrganizationID retrieves all businesses for an organization ordered by name
func (r *BusinessRepository) GetByOrganizationID(organizationID uuid.UUID) ([]models.Business, error) {
	var businesses []models.Business
	err := r.db.Where("organization_id = ?", organizationID).Order("name ASC").Find(&businesses).Error
	return businesses, err
}

// Delete deletes a business
func (r *BusinessRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Business{}, "id = ?", id).Error
}
