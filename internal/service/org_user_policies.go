// internal/service/org_user_policies.go
package service

import (
	"github.com/dangerclosesec/vaultd/internal/model"
	"github.com/google/uuid"
)

// Block reasons surfaced per rejected user. A policy that blocks without
// a reason falls back to defaultBlockReason.
const (
	defaultBlockReason      = "User Invalid."
	freeOrgAdminBlockReason = "User can only be an admin of one free organization."
	alreadyMemberReason     = "User is already a member of this organization."
	tooManyOrgsReason       = "User has reached the maximum number of organizations."
)

// confirmCandidate is the snapshot a confirm policy evaluates: one user,
// the membership being confirmed, the target organization, the user's
// complete cross-organization membership list, and the plans of the
// organizations those memberships belong to.
type confirmCandidate struct {
	user        *model.User
	orgUser     *model.OrganizationUser
	org         *model.Organization
	memberships []*model.OrganizationUser
	orgPlans    map[uuid.UUID]model.PlanType
}

// confirmPolicy permits or blocks one candidate. Policies are pure over
// the snapshot; they never touch a repository.
type confirmPolicy func(c confirmCandidate) (permit bool, reason string)

// composePolicies evaluates policies in order and short-circuits on the
// first block, reporting at most one reason per candidate.
func composePolicies(policies ...confirmPolicy) confirmPolicy {
	return func(c confirmCandidate) (bool, string) {
		for _, policy := range policies {
			permit, reason := policy(c)
			if !permit {
				if reason == "" {
					reason = defaultBlockReason
				}
				return false, reason
			}
		}
		return true, ""
	}
}

func isAdminRole(t model.OrganizationUserType) bool {
	return t == model.OrgUserTypeOwner || t == model.OrgUserTypeAdmin
}

// canBeFreeOrgAdmin blocks confirming an admin or owner into a free
// organization when the user already administers another free
// organization.
func canBeFreeOrgAdmin(c confirmCandidate) (bool, string) {
	if c.org.PlanType != model.PlanFree || !isAdminRole(c.orgUser.Type) {
		return true, ""
	}

	for _, m := range c.memberships {
		if m.ID == c.orgUser.ID || m.Status == model.OrgUserRevoked || !isAdminRole(m.Type) {
			continue
		}
		if c.orgPlans[m.OrganizationID] == model.PlanFree {
			return false, freeOrgAdminBlockReason
		}
	}
	return true, ""
}

// canJoinOrganization blocks a user who already holds another non-revoked
// membership in the same organization.
func canJoinOrganization(c confirmCandidate) (bool, string) {
	for _, m := range c.memberships {
		if m.ID == c.orgUser.ID {
			continue
		}
		if m.OrganizationID == c.org.ID && m.Status != model.OrgUserRevoked {
			return false, alreadyMemberReason
		}
	}
	return true, ""
}

// canJoinMoreOrganizations enforces the per-user membership ceiling; a
// ceiling of zero means unlimited.
func canJoinMoreOrganizations(maxOrganizations int) confirmPolicy {
	return func(c confirmCandidate) (bool, string) {
		if maxOrganizations <= 0 {
			return true, ""
		}
		others := 0
		for _, m := range c.memberships {
			if m.ID == c.orgUser.ID || m.Status == model.OrgUserRevoked {
				continue
			}
			others++
		}
		if others >= maxOrganizations {
			return false, tooManyOrgsReason
		}
		return true, ""
	}
}
