package audit

//go:generate mockgen -source=./logger.go -destination=../mocks/mock_audit_logger.go -package=mocks Logger

import (
	"context"

	"github.com/dangerclosesec/vaultd/internal/model"
)

// Logger defines the interface for auditing membership operations.
// Commands treat it as fire-and-forget: failures are surfaced but never
// retried here.
type Logger interface {
	// LogOrganizationUserEvent records a membership lifecycle event
	LogOrganizationUserEvent(
		ctx context.Context,
		orgUser *model.OrganizationUser,
		eventType model.EventType,
	) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

// LogOrganizationUserEvent implements Logger.LogOrganizationUserEvent
func (l *NoOpLogger) LogOrganizationUserEvent(
	ctx context.Context,
	orgUser *model.OrganizationUser,
	eventType model.EventType,
) error {
	return nil
}
