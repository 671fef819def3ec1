// internal/repository/access_policy.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/vaultd/internal/domain"
	"github.com/dangerclosesec/vaultd/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessPolicyRepositoryIface interface {
	CreateMany(ctx context.Context, policies []*model.AccessPolicy) ([]*model.AccessPolicy, error)
	Exists(ctx context.Context, policy *model.AccessPolicy) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.AccessPolicy, error)
	Replace(ctx context.Context, policy *model.AccessPolicy) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceProjectServiceAccounts(ctx context.Context, updates model.ProjectServiceAccountsPoliciesUpdates) error
	ReplaceServiceAccountGrantedPolicies(ctx context.Context, updates model.ServiceAccountGrantedPoliciesUpdates) error
}

type AccessPolicyRepository struct {
	db *gorm.DB
}

func NewAccessPolicyRepository(db *gorm.DB) *AccessPolicyRepository {
	return &AccessPolicyRepository{db: db}
}

// accessPolicyIdentityIndex enforces at most one policy per (subject,
// object) pair at the storage level. Every identity column is nullable,
// so the index must treat NULLs as equal; gorm's uniqueIndex tags keep
// the default NULLS DISTINCT semantics and cannot express this.
const accessPolicyIdentityIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_access_policies_identity ` +
	`ON access_policies (organization_user_id, group_id, service_account_id, granted_project_id, granted_service_account_id) ` +
	`NULLS NOT DISTINCT`

// EnsureIdentityIndex creates the unique identity index. The service's
// existence check is not atomic with the insert; this index is what turns
// a concurrent duplicate into gorm.ErrDuplicatedKey.
func (r *AccessPolicyRepository) EnsureIdentityIndex(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Exec(accessPolicyIdentityIndex).Error; err != nil {
		return fmt.Errorf("creating access policy identity index: %w", err)
	}
	return nil
}

// CreateMany persists a batch of policies in one transaction. A unique
// index over the subject/object columns backstops the caller's existence
// check under concurrent identical batches.
func (r *AccessPolicyRepository) CreateMany(ctx context.Context, policies []*model.AccessPolicy) ([]*model.AccessPolicy, error) {
	if err := r.db.WithContext(ctx).Create(policies).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAccessPolicyExists
		}
		return nil, fmt.Errorf("creating access policies: %w", err)
	}
	return policies, nil
}

// Exists reports whether a policy with the same subject and object
// references is already persisted.
func (r *AccessPolicyRepository) Exists(ctx context.Context, policy *model.AccessPolicy) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.AccessPolicy{})

	switch {
	case policy.OrganizationUserID != nil:
		query = query.Where("organization_user_id = ?", *policy.OrganizationUserID)
	case policy.GroupID != nil:
		query = query.Where("group_id = ?", *policy.GroupID)
	case policy.ServiceAccountID != nil:
		query = query.Where("service_account_id = ?", *policy.ServiceAccountID)
	default:
		return false, fmt.Errorf("%w: no subject reference", model.ErrUnsupportedAccessPolicy)
	}

	switch {
	case policy.GrantedProjectID != nil:
		query = query.Where("granted_project_id = ?", *policy.GrantedProjectID)
	case policy.GrantedServiceAccountID != nil:
		query = query.Where("granted_service_account_id = ?", *policy.GrantedServiceAccountID)
	default:
		return false, fmt.Errorf("%w: no object reference", model.ErrUnsupportedAccessPolicy)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking access policy existence: %w", err)
	}
	return count > 0, nil
}

func (r *AccessPolicyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AccessPolicy, error) {
	var policy model.AccessPolicy
	if err := r.db.WithContext(ctx).First(&policy, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccessPolicyNotFound
		}
		return nil, fmt.Errorf("finding access policy: %w", err)
	}
	return &policy, nil
}

func (r *AccessPolicyRepository) Replace(ctx context.Context, policy *model.AccessPolicy) error {
	if err := r.db.WithContext(ctx).Save(policy).Error; err != nil {
		return fmt.Errorf("replacing access policy: %w", err)
	}
	return nil
}

// Delete removes a policy by id; deleting an absent id is not an error.
func (r *AccessPolicyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.AccessPolicy{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting access policy: %w", err)
	}
	return nil
}

// ReplaceProjectServiceAccounts applies a pre-computed delta of one
// project's service-account policies atomically.
func (r *AccessPolicyRepository) ReplaceProjectServiceAccounts(ctx context.Context, updates model.ProjectServiceAccountsPoliciesUpdates) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applyPolicyUpdates(tx, updates.Updates)
	})
	if err != nil {
		return fmt.Errorf("replacing project service account policies: %w", err)
	}
	return nil
}

// ReplaceServiceAccountGrantedPolicies applies a pre-computed delta of one
// service account's project grants atomically.
func (r *AccessPolicyRepository) ReplaceServiceAccountGrantedPolicies(ctx context.Context, updates model.ServiceAccountGrantedPoliciesUpdates) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applyPolicyUpdates(tx, updates.Updates)
	})
	if err != nil {
		return fmt.Errorf("replacing service account granted policies: %w", err)
	}
	return nil
}

func applyPolicyUpdates(tx *gorm.DB, updates []model.ServiceAccountProjectPolicyUpdate) error {
	for _, u := range updates {
		policy := u.Policy
		switch u.Operation {
		case model.AccessPolicyCreate:
			if err := tx.Create(&policy).Error; err != nil {
				return fmt.Errorf("creating policy: %w", err)
			}
		case model.AccessPolicyUpdate:
			if err := tx.Model(&model.AccessPolicy{}).
				Where("id = ?", policy.ID).
				Updates(map[string]interface{}{
					"read":          policy.Read,
					"write":         policy.Write,
					"revision_date": policy.RevisionDate,
				}).Error; err != nil {
				return fmt.Errorf("updating policy: %w", err)
			}
		case model.AccessPolicyDelete:
			if err := tx.Delete(&model.AccessPolicy{}, "id = ?", policy.ID).Error; err != nil {
				return fmt.Errorf("deleting policy: %w", err)
			}
		default:
			return fmt.Errorf("unknown access policy operation: %q", u.Operation)
		}
	}
	return nil
}
