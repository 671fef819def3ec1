// internal/model/access_policy.go
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AccessPolicyKind discriminates the polymorphic access-policy variants.
// A policy names exactly one subject (organization user, group, or service
// account) and exactly one object (a granted project, or a granted service
// account for the inverse direction).
type AccessPolicyKind string

const (
	KindUserProject           AccessPolicyKind = "user_project"
	KindGroupProject          AccessPolicyKind = "group_project"
	KindServiceAccountProject AccessPolicyKind = "service_account_project"
	KindUserServiceAccount    AccessPolicyKind = "user_service_account"
	KindGroupServiceAccount   AccessPolicyKind = "group_service_account"
	KindUnknown               AccessPolicyKind = "unknown"
)

// ErrUnsupportedAccessPolicy marks a policy whose subject/object shape does
// not match any known variant. It is a programming error, not a business
// rejection: callers fail fast on it.
var ErrUnsupportedAccessPolicy = errors.New("unsupported access policy type")

// AccessPolicy grants a subject Read/Write access to an object. The subject
// and object references are nullable columns; Kind derives the variant from
// whichever pair is set.
type AccessPolicy struct {
	ID                      uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationUserID      *uuid.UUID `gorm:"type:uuid;index" json:"organization_user_id,omitempty"`
	GroupID                 *uuid.UUID `gorm:"type:uuid;index" json:"group_id,omitempty"`
	ServiceAccountID        *uuid.UUID `gorm:"type:uuid;index" json:"service_account_id,omitempty"`
	GrantedProjectID        *uuid.UUID `gorm:"type:uuid;index" json:"granted_project_id,omitempty"`
	GrantedServiceAccountID *uuid.UUID `gorm:"type:uuid;index" json:"granted_service_account_id,omitempty"`
	Read                    bool       `gorm:"not null" json:"read"`
	Write                   bool       `gorm:"not null" json:"write"`
	CreationDate            time.Time  `gorm:"autoCreateTime" json:"creation_date"`
	RevisionDate            time.Time  `gorm:"autoUpdateTime" json:"revision_date"`
}

// Kind classifies the policy by its populated references. Policies with no
// subject, more than one subject, or no object classify as KindUnknown.
func (p *AccessPolicy) Kind() AccessPolicyKind {
	subjects := 0
	if p.OrganizationUserID != nil {
		subjects++
	}
	if p.GroupID != nil {
		subjects++
	}
	if p.ServiceAccountID != nil {
		subjects++
	}
	if subjects != 1 {
		return KindUnknown
	}

	switch {
	case p.GrantedProjectID != nil && p.GrantedServiceAccountID == nil:
		switch {
		case p.OrganizationUserID != nil:
			return KindUserProject
		case p.GroupID != nil:
			return KindGroupProject
		default:
			return KindServiceAccountProject
		}
	case p.GrantedServiceAccountID != nil && p.GrantedProjectID == nil:
		switch {
		case p.OrganizationUserID != nil:
			return KindUserServiceAccount
		case p.GroupID != nil:
			return KindGroupServiceAccount
		default:
			// A service account granting itself access to a service
			// account is not a modeled variant.
			return KindUnknown
		}
	default:
		return KindUnknown
	}
}

// AccessPolicyIdentity is the uniqueness key of a policy: at most one
// policy may exist per (subject, object) pair.
type AccessPolicyIdentity struct {
	SubjectID uuid.UUID
	ObjectID  uuid.UUID
}

// Identity returns the policy's (subject-id, object-id) uniqueness key,
// or ErrUnsupportedAccessPolicy when the variant cannot be classified.
func (p *AccessPolicy) Identity() (AccessPolicyIdentity, error) {
	kind := p.Kind()
	if kind == KindUnknown {
		return AccessPolicyIdentity{}, fmt.Errorf("%w: %+v", ErrUnsupportedAccessPolicy, p)
	}

	var ident AccessPolicyIdentity
	switch {
	case p.OrganizationUserID != nil:
		ident.SubjectID = *p.OrganizationUserID
	case p.GroupID != nil:
		ident.SubjectID = *p.GroupID
	default:
		ident.SubjectID = *p.ServiceAccountID
	}
	if p.GrantedProjectID != nil {
		ident.ObjectID = *p.GrantedProjectID
	} else {
		ident.ObjectID = *p.GrantedServiceAccountID
	}
	return ident, nil
}

// AccessPolicyOperation tags an entry of a bulk policy update.
type AccessPolicyOperation string

const (
	AccessPolicyCreate AccessPolicyOperation = "create"
	AccessPolicyUpdate AccessPolicyOperation = "update"
	AccessPolicyDelete AccessPolicyOperation = "delete"
)

// ServiceAccountProjectPolicyUpdate is one pre-computed delta entry of a
// bulk replace. The caller has already diffed current against desired
// state; commands hand the set to the store untouched.
type ServiceAccountProjectPolicyUpdate struct {
	Operation AccessPolicyOperation
	Policy    AccessPolicy
}

// ProjectServiceAccountsPoliciesUpdates replaces the service-account
// policies of one project.
type ProjectServiceAccountsPoliciesUpdates struct {
	OrganizationID uuid.UUID
	ProjectID      uuid.UUID
	Updates        []ServiceAccountProjectPolicyUpdate
}

// ServiceAccountGrantedPoliciesUpdates replaces the project grants of one
// service account.
type ServiceAccountGrantedPoliciesUpdates struct {
	OrganizationID   uuid.UUID
	ServiceAccountID uuid.UUID
	Updates          []ServiceAccountProjectPolicyUpdate
}
