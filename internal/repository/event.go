// internal/repository/event.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/vaultd/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationEventRepository struct {
	db *gorm.DB
}

func NewOrganizationEventRepository(db *gorm.DB) *OrganizationEventRepository {
	return &OrganizationEventRepository{db: db}
}

func (r *OrganizationEventRepository) Create(ctx context.Context, event *model.OrganizationEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("creating organization event: %w", err)
	}
	return nil
}

// FindByOrganization returns the most recent events first.
func (r *OrganizationEventRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID, limit int) ([]model.OrganizationEvent, error) {
	var events []model.OrganizationEvent
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("finding organization events: %w", err)
	}
	return events, nil
}
