package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sais189/travelex/internal/models"
)

// DestinationRepository gives typed access to the destinations table.
type DestinationRepository struct {
	db *gorm.DB
}

// NewDestinationRepository creates a repository over db.
func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

// FindAll returns every destination ordered by id.
func (r *DestinationRepository) FindAll(ctx context.Context) ([]models.Destination, error) {
	destinations := []models.Destination{}
	if err := r.db.WithContext(ctx).Order("id").Find(&destinations).Error; err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	return destinations, nil
}

// GetByID fetches one destination.
func (r *DestinationRepository) GetByID(ctx context.Context, id int) (*models.Destination, error) {
	var destination models.Destination
	if err := r.db.WithContext(ctx).First(&destination, id).Error; err != nil {
		return nil, fmt.Errorf("get destination %d: %w", id, translate(err))
	}
	return &destination, nil
}

// Create inserts d and fills in its generated id.
func (r *DestinationRepository) Create(ctx context.Context, d *models.Destination) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("create destination: %w", translate(err))
	}
	return nil
}

// Update overwrites every column of an existing destination.
func (r *DestinationRepository) Update(ctx context.Context, d *models.Destination) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Destination
		if err := tx.Select("id", "created_at").First(&existing, d.ID).Error; err != nil {
			return fmt.Errorf("update destination %d: %w", d.ID, translate(err))
		}
		d.CreatedAt = existing.CreatedAt
		if err := tx.Save(d).Error; err != nil {
			return fmt.Errorf("update destination %d: %w", d.ID, translate(err))
		}
		return nil
	})
}

// Delete removes a destination by id.
func (r *DestinationRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&models.Destination{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete destination %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete destination %d: %w", id, ErrNotFound)
	}
	return nil
}
