// internal/model/event.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies an organization audit event.
type EventType string

const (
	EventOrgUserInvited   EventType = "organization_user_invited"
	EventOrgUserAccepted  EventType = "organization_user_accepted"
	EventOrgUserConfirmed EventType = "organization_user_confirmed"
	EventOrgUserRevoked   EventType = "organization_user_revoked"
	EventOrgUserRestored  EventType = "organization_user_restored"
)

// OrganizationEvent is an audit row describing a membership lifecycle
// action within an organization.
type OrganizationEvent struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	OrganizationUserID *uuid.UUID `gorm:"type:uuid;index" json:"organization_user_id,omitempty"`
	UserID             *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Type               EventType  `gorm:"type:text;not null" json:"type"`
	Context            JSONMap    `gorm:"type:jsonb" json:"context,omitempty"`
	Timestamp          time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"timestamp"`
	CreatedAt          time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for OrganizationEvent
func (OrganizationEvent) TableName() string {
	return "organization_events"
}
