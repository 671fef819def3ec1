package service

import (
	"context"
	"time"

	"github.com/dangerclosesec/vaultd/internal/audit"
	"github.com/dangerclosesec/vaultd/internal/model"
	"github.com/dangerclosesec/vaultd/internal/repository"
)

// Ensure OrganizationEventService implements the audit.Logger interface
var _ audit.Logger = (*OrganizationEventService)(nil)

// OrganizationEventService persists membership lifecycle events.
type OrganizationEventService struct {
	repo *repository.OrganizationEventRepository
}

func NewOrganizationEventService(repo *repository.OrganizationEventRepository) *OrganizationEventService {
	return &OrganizationEventService{repo: repo}
}

// LogOrganizationUserEvent records a membership lifecycle event
func (s *OrganizationEventService) LogOrganizationUserEvent(
	ctx context.Context,
	orgUser *model.OrganizationUser,
	eventType model.EventType,
) error {
	orgUserID := orgUser.ID
	event := &model.OrganizationEvent{
		OrganizationID:     orgUser.OrganizationID,
		OrganizationUserID: &orgUserID,
		UserID:             orgUser.UserID,
		Type:               eventType,
		Timestamp:          time.Now().UTC(),
	}
	return s.repo.Create(ctx, event)
}
