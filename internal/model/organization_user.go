// internal/model/organization_user.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type OrganizationUserStatus string

const (
	OrgUserInvited   OrganizationUserStatus = "invited"
	OrgUserAccepted  OrganizationUserStatus = "accepted"
	OrgUserConfirmed OrganizationUserStatus = "confirmed"
	OrgUserRevoked   OrganizationUserStatus = "revoked"
)

type OrganizationUserType string

const (
	OrgUserTypeOwner  OrganizationUserType = "owner"
	OrgUserTypeAdmin  OrganizationUserType = "admin"
	OrgUserTypeUser   OrganizationUserType = "user"
	OrgUserTypeCustom OrganizationUserType = "custom"
)

// OrganizationUser binds a User to an Organization. UserID stays nil and
// Email carries the invitee address until the invite is accepted; Key
// holds the organization key wrapped for the user once confirmed.
type OrganizationUser struct {
	ID                   uuid.UUID              `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID       uuid.UUID              `gorm:"type:uuid;not null;index" json:"organization_id"`
	UserID               *uuid.UUID             `gorm:"type:uuid;index" json:"user_id"`
	Email                *string                `gorm:"type:citext" json:"email,omitempty"`
	Status               OrganizationUserStatus `gorm:"type:text;not null;default:'invited'" json:"status"`
	Type                 OrganizationUserType   `gorm:"type:text;not null;default:'user'" json:"type"`
	Permissions          JSONMap                `gorm:"type:jsonb" json:"permissions,omitempty"`
	Key                  string                 `gorm:"type:text" json:"-"`
	AccessSecretsManager bool                   `gorm:"not null;default:false" json:"access_secrets_manager"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

var (
	// ErrNotAccepted is returned when confirming a membership that has not
	// been accepted by the invitee yet.
	ErrNotAccepted = errors.New("organization user is not in the accepted state")

	// ErrNotInvited is returned when accepting a membership that is not in
	// the invited state.
	ErrNotInvited = errors.New("organization user is not in the invited state")

	// ErrNotRevoked is returned when restoring a membership that is not
	// revoked.
	ErrNotRevoked = errors.New("organization user is not revoked")
)

// Confirm moves an accepted membership to confirmed, storing the wrapped
// organization key. The forward step is irreversible: a confirmed row can
// only leave the state by revocation.
func (ou *OrganizationUser) Confirm(wrappedKey string) error {
	if ou.Status != OrgUserAccepted {
		return ErrNotAccepted
	}
	ou.Status = OrgUserConfirmed
	ou.Key = wrappedKey
	return nil
}

// Accept claims an invited membership for the registered user, linking the
// row to the user record and clearing the invite address.
func (ou *OrganizationUser) Accept(userID uuid.UUID) error {
	if ou.Status != OrgUserInvited {
		return ErrNotInvited
	}
	ou.Status = OrgUserAccepted
	ou.UserID = &userID
	ou.Email = nil
	return nil
}

// Revoke suspends the membership. Revocation is reachable from any state.
func (ou *OrganizationUser) Revoke() {
	if ou.Status == OrgUserRevoked {
		return
	}
	ou.Status = OrgUserRevoked
}

// Restore returns a revoked membership to the invited state; the member
// must walk the accept/confirm steps again.
func (ou *OrganizationUser) Restore() error {
	if ou.Status != OrgUserRevoked {
		return ErrNotRevoked
	}
	ou.Status = OrgUserInvited
	ou.Key = ""
	return nil
}

// Occupied reports whether the membership consumes a seat. Revoked rows
// release their seat; every other state holds one.
func (ou *OrganizationUser) Occupied() bool {
	return ou.Status != OrgUserRevoked
}

// JSONMap is a generic map stored as JSONB in the database.
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}
