// internal/service/org_user_invite.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dangerclosesec/vaultd/internal/billing"
	"github.com/dangerclosesec/vaultd/internal/domain"
	"github.com/dangerclosesec/vaultd/internal/email/mailer"
	"github.com/dangerclosesec/vaultd/internal/model"
	"github.com/google/uuid"
)

// UserInvite is one requested invitation.
type UserInvite struct {
	Email                string                     `json:"email" validate:"required,email"`
	Type                 model.OrganizationUserType `json:"type" validate:"required,oneof=owner admin user custom"`
	AccessSecretsManager bool                       `json:"access_secrets_manager"`
	Permissions          model.JSONMap              `json:"permissions,omitempty"`
}

// InviteUsers creates invited memberships for the given addresses after
// checking both seat pools can absorb them. Addresses already holding a
// non-revoked membership in the organization are skipped; if every
// address is skipped the call fails with ErrNoUsersToInvite.
//
// When the Password Manager or Secrets Manager validator reports that
// growth is needed and permitted, the subscription's seat counts are
// bumped before the rows are written.
func (s *OrganizationUserService) InviteUsers(ctx context.Context, orgID uuid.UUID, invites []UserInvite) ([]*model.OrganizationUser, error) {
	for i, invite := range invites {
		if err := s.validate.Struct(invite); err != nil {
			return nil, fmt.Errorf("%w: invite %d: %v", domain.ErrInvalidInput, i, err)
		}
	}

	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	existing, err := s.orgUserRepo.FindManyByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("loading current memberships: %w", err)
	}
	// Accepted memberships shed their Email column in favor of a user
	// link, so both sides have to feed the skip set.
	taken := make(map[string]struct{}, len(existing))
	linked := make([]uuid.UUID, 0, len(existing))
	for _, ou := range existing {
		if ou.Status == model.OrgUserRevoked {
			continue
		}
		switch {
		case ou.Email != nil:
			taken[strings.ToLower(*ou.Email)] = struct{}{}
		case ou.UserID != nil:
			linked = append(linked, *ou.UserID)
		}
	}
	if len(linked) > 0 {
		users, err := s.userRepo.FindMany(ctx, linked)
		if err != nil {
			return nil, fmt.Errorf("loading linked members: %w", err)
		}
		for _, u := range users {
			taken[strings.ToLower(u.Email)] = struct{}{}
		}
	}

	pending := make([]UserInvite, 0, len(invites))
	for _, invite := range invites {
		addr := strings.ToLower(invite.Email)
		if _, ok := taken[addr]; ok {
			continue
		}
		taken[addr] = struct{}{}
		pending = append(pending, invite)
	}
	if len(pending) == 0 {
		return nil, domain.ErrNoUsersToInvite
	}

	occupied, err := s.orgUserRepo.CountOccupiedSeats(ctx, orgID)
	if err != nil {
		return nil, err
	}

	pmUpdate := billing.NewPasswordManagerSubscriptionUpdate(org, occupied, len(pending))
	if result := billing.ValidatePasswordManagerSeats(pmUpdate); !result.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrSeatLimitReached, result.Error())
	}

	smAdditional := 0
	for _, invite := range pending {
		if invite.AccessSecretsManager {
			smAdditional++
		}
	}

	var smUpdate billing.SecretsManagerSubscriptionUpdate
	if smAdditional > 0 {
		smOccupied, err := s.orgUserRepo.CountOccupiedSecretsManagerSeats(ctx, orgID)
		if err != nil {
			return nil, err
		}
		smUpdate = billing.NewSecretsManagerSubscriptionUpdate(org, pmUpdate, smOccupied, smAdditional)
		if result := billing.ValidateSecretsManagerSeats(smUpdate); !result.IsValid() {
			return nil, fmt.Errorf("%w: %s", domain.ErrSeatLimitReached, result.Error())
		}
	}

	grown := false
	if pmUpdate.SeatsRequiredToAdd() > 0 {
		org.Seats = pmUpdate.UpdatedSeatTotal()
		grown = true
	}
	if smAdditional > 0 && smUpdate.SeatsRequiredToAdd() > 0 {
		org.SmSeats = smUpdate.UpdatedSeatTotal()
		grown = true
	}
	if grown {
		if err := s.orgRepo.Update(ctx, org); err != nil {
			return nil, fmt.Errorf("growing subscription seats: %w", err)
		}
	}

	orgUsers := make([]*model.OrganizationUser, 0, len(pending))
	for _, invite := range pending {
		addr := invite.Email
		orgUsers = append(orgUsers, &model.OrganizationUser{
			OrganizationID:       orgID,
			Email:                &addr,
			Status:               model.OrgUserInvited,
			Type:                 invite.Type,
			Permissions:          invite.Permissions,
			AccessSecretsManager: invite.AccessSecretsManager,
		})
	}

	if err := s.orgUserRepo.CreateMany(ctx, orgUsers); err != nil {
		return nil, err
	}

	for _, ou := range orgUsers {
		if err := s.auditLogger.LogOrganizationUserEvent(ctx, ou, model.EventOrgUserInvited); err != nil {
			return nil, fmt.Errorf("logging invite event: %w", err)
		}
		if s.emailService != nil {
			link := fmt.Sprintf("%s/organizations/%s/invites/%s", s.config.BaseURL, orgID, ou.ID)
			if err := mailer.SendOrganizationInviteEmail(s.emailService, *ou.Email, org.Name, link); err != nil {
				return nil, fmt.Errorf("sending invite email: %w", err)
			}
		}
	}

	return orgUsers, nil
}
