// internal/repository/organization_user.go
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

type OrganizationUserRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrganizationUser, error)
	FindMany(ctx context.Context, ids []uuid.UUID) ([]*model.OrganizationUser, error)
	FindManyByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*model.OrganizationUser, error)
	FindManyByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.OrganizationUser, error)
	CreateMany(ctx context.Context, orgUsers []*model.OrganizationUser) error
	Replace(ctx context.Context, orgUser *model.OrganizationUser) error
	ReplaceMany(ctx context.Context, orgUsers []*model.OrganizationUser) error
	CountOccupiedSeats(ctx context.Context, orgID uuid.UUID) (int, error)
	CountOccupiedSecretsManagerSeats(ctx context.Context, orgID uuid.UUID) (int, error)
}

type OrganizationUserRepository struct {
	db *gorm.DB
}

func NewOrganizationUserRepository(db *gorm.DB) *OrganizationUserRepository {
	return &OrganizationUserRepository{db: db}
}

func (r *OrganizationUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.OrganizationUser, error) {
	var orgUser model.OrganizationUser
	if err := r.db.WithContext(ctx).First(&orgUser, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrgUserNotFound
		}
		return nil, fmt.Errorf("finding organization user: %w", err)
	}
	return &orgUser, nil
}

func (r *OrganizationUserRepository) FindMany(ctx context.Context, ids []uuid.UUID) ([]*model.OrganizationUser, error) {
	var orgUsers []*model.OrganizationUser
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&orgUsers).Error; err != nil {
		return nil, fmt.Errorf("finding organization users: %w", err)
	}
	return orgUsers, nil
}

// FindManyByUsers returns every membership row, across all organizations,
// held by any of the given users.
func (r *OrganizationUserRepository) FindManyByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*model.OrganizationUser, error) {
	var orgUsers []*model.OrganizationUser
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&orgUsers).Error; err != nil {
		return nil, fmt.Errorf("finding organization users by users: %w", err)
	}
	return orgUsers, nil
}

func (r *OrganizationUserRepository) FindManyByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.OrganizationUser, error) {
	var orgUsers []*model.OrganizationUser
	if err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).Find(&orgUsers).Error; err != nil {
		return nil, fmt.Errorf("finding organization users by organization: %w", err)
	}
	return orgUsers, nil
}

func (r *OrganizationUserRepository) CreateMany(ctx context.Context, orgUsers []*model.OrganizationUser) error {
	if err := r.db.WithContext(ctx).Create(orgUsers).Error; err != nil {
		return fmt.Errorf("creating organization users: %w", err)
	}
	return nil
}

func (r *OrganizationUserRepository) Replace(ctx context.Context, orgUser *model.OrganizationUser) error {
	if err := r.db.WithContext(ctx).Save(orgUser).Error; err != nil {
		return fmt.Errorf("replacing organization user: %w", err)
	}
	return nil
}

// ReplaceMany saves the batch in a single transaction; the store's
// transactional guarantee is the only atomicity this call provides.
func (r *OrganizationUserRepository) ReplaceMany(ctx context.Context, orgUsers []*model.OrganizationUser) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ou := range orgUsers {
			if err := tx.Save(ou).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replacing organization users: %w", err)
	}
	return nil
}

// CountOccupiedSeats counts memberships holding a Password Manager seat
// (every non-revoked row).
func (r *OrganizationUserRepository) CountOccupiedSeats(ctx context.Context, orgID uuid.UUID) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.OrganizationUser{}).
		Where("organization_id = ? AND status <> ?", orgID, model.OrgUserRevoked).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting occupied seats: %w", err)
	}
	return int(count), nil
}

// CountOccupiedSecretsManagerSeats counts non-revoked memberships with
// Secrets Manager access.
func (r *OrganizationUserRepository) CountOccupiedSecretsManagerSeats(ctx context.Context, orgID uuid.UUID) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.OrganizationUser{}).
		Where("organization_id = ? AND status <> ? AND access_secrets_manager = ?", orgID, model.OrgUserRevoked, true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting occupied secrets manager seats: %w", err)
	}
	return int(count), nil
}
