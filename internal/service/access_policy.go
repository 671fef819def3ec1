// internal/service/access_policy.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/vaultd/internal/domain"
	"github.com/dangerclosesec/vaultd/internal/model"
	"github.com/dangerclosesec/vaultd/internal/repository"
	"github.com/google/uuid"
)

// AccessPolicyService owns the create/update/delete rules for access
// policies. It is stateless; every request works against the repository's
// current view.
type AccessPolicyService struct {
	repo repository.AccessPolicyRepositoryIface
}

func NewAccessPolicyService(repo repository.AccessPolicyRepositoryIface) *AccessPolicyService {
	return &AccessPolicyService{repo: repo}
}

// CreateMany validates and persists a heterogeneous batch of policies as
// one unit. The batch is rejected whole when it contains duplicate
// (subject, object) keys or when any item already exists; nothing is
// persisted in either case. The existence check is not atomic with the
// insert — the storage layer's unique index backstops concurrent
// identical batches.
func (s *AccessPolicyService) CreateMany(ctx context.Context, policies []*model.AccessPolicy) ([]*model.AccessPolicy, error) {
	if len(policies) == 0 {
		return nil, nil
	}

	distinct := make(map[model.AccessPolicyIdentity]struct{}, len(policies))
	for _, policy := range policies {
		ident, err := policy.Identity()
		if err != nil {
			return nil, err
		}
		distinct[ident] = struct{}{}
	}
	if len(distinct) != len(policies) {
		return nil, domain.ErrDuplicateAccessPolicies
	}

	for _, policy := range policies {
		exists, err := s.repo.Exists(ctx, policy)
		if err != nil {
			return nil, fmt.Errorf("checking policy existence: %w", err)
		}
		if exists {
			return nil, domain.ErrAccessPolicyExists
		}
	}

	created, err := s.repo.CreateMany(ctx, policies)
	if err != nil {
		return nil, fmt.Errorf("creating access policies: %w", err)
	}
	return created, nil
}

type UpdateAccessPolicyInput struct {
	ID    uuid.UUID `json:"id"`
	Read  bool      `json:"read"`
	Write bool      `json:"write"`
}

// Update replaces an existing policy's Read/Write flags and refreshes its
// revision date, even when the flags are unchanged.
func (s *AccessPolicyService) Update(ctx context.Context, input UpdateAccessPolicyInput) (*model.AccessPolicy, error) {
	policy, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	policy.Read = input.Read
	policy.Write = input.Write
	policy.RevisionDate = time.Now().UTC()

	if err := s.repo.Replace(ctx, policy); err != nil {
		return nil, fmt.Errorf("replacing access policy: %w", err)
	}
	return policy, nil
}

// Delete removes a policy by id with delete-if-exists semantics.
func (s *AccessPolicyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// UpdateProjectServiceAccounts hands a caller-computed delta of one
// project's service-account policies to the store. An empty delta is a
// no-op; this command never diffs state itself.
func (s *AccessPolicyService) UpdateProjectServiceAccounts(ctx context.Context, updates model.ProjectServiceAccountsPoliciesUpdates) error {
	if len(updates.Updates) == 0 {
		return nil
	}
	return s.repo.ReplaceProjectServiceAccounts(ctx, updates)
}

// UpdateServiceAccountGrantedPolicies hands a caller-computed delta of one
// service account's project grants to the store. An empty delta is a
// no-op.
func (s *AccessPolicyService) UpdateServiceAccountGrantedPolicies(ctx context.Context, updates model.ServiceAccountGrantedPoliciesUpdates) error {
	if len(updates.Updates) == 0 {
		return nil
	}
	return s.repo.ReplaceServiceAccountGrantedPolicies(ctx, updates)
}
