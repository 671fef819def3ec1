// internal/service/org_user.go
package service

//go:generate mockgen -source=./org_user.go -destination=../mocks/mock_registration_pusher.go -package=mocks RegistrationPusher

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/vaultd/internal/audit"
	"github.com/dangerclosesec/vaultd/internal/config"
	"github.com/dangerclosesec/vaultd/internal/domain"
	"github.com/dangerclosesec/vaultd/internal/email"
	"github.com/dangerclosesec/vaultd/internal/email/mailer"
	"github.com/dangerclosesec/vaultd/internal/model"
	"github.com/dangerclosesec/vaultd/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RegistrationPusher clears pending invite push state once a membership
// is finalized.
type RegistrationPusher interface {
	DeleteAndPushUserRegistration(ctx context.Context, orgID, userID uuid.UUID) error
}

// OrganizationUserService drives the membership lifecycle:
// Invited -> Accepted -> Confirmed, with Revoked reachable from any state.
// The service is stateless; concurrent requests are served against the
// repositories' current view, and mutual exclusion is the store's job.
type OrganizationUserService struct {
	orgUserRepo  repository.OrganizationUserRepositoryIface
	userRepo     repository.UserRepositoryIface
	orgRepo      repository.OrganizationRepositoryIface
	auditLogger  audit.Logger
	emailService *email.Service
	pusher       RegistrationPusher
	config       *config.Config
	validate     *validator.Validate
}

func NewOrganizationUserService(
	orgUserRepo repository.OrganizationUserRepositoryIface,
	userRepo repository.UserRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	auditLogger audit.Logger,
	emailService *email.Service,
	pusher RegistrationPusher,
	config *config.Config,
) *OrganizationUserService {
	return &OrganizationUserService{
		orgUserRepo:  orgUserRepo,
		userRepo:     userRepo,
		orgRepo:      orgRepo,
		auditLogger:  auditLogger,
		emailService: emailService,
		pusher:       pusher,
		config:       config,
		validate:     validator.New(),
	}
}

// ConfirmUserResult reports the outcome for one membership of a confirm
// batch. Reason is empty on success.
type ConfirmUserResult struct {
	OrganizationUser *model.OrganizationUser
	Reason           string
}

// ConfirmUsers finalizes a batch of accepted invitees, each with the
// organization key wrapped for that user.
//
// Rows that are not Accepted, belong to another organization, or have no
// linked user are silently dropped from the batch: they appear in neither
// the success nor the failure output. Callers needing per-item
// diagnostics for dropped rows must pre-filter.
//
// Eligibility is evaluated per user against a single snapshot loaded at
// the start of the call; all successful transitions are persisted in one
// batch replace at the end. No lost-update protection exists beyond the
// store's own optimistic concurrency.
func (s *OrganizationUserService) ConfirmUsers(ctx context.Context, orgID uuid.UUID, keys map[uuid.UUID]string) ([]ConfirmUserResult, error) {
	ids := make([]uuid.UUID, 0, len(keys))
	for id := range keys {
		ids = append(ids, id)
	}

	orgUsers, err := s.orgUserRepo.FindMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("loading organization users: %w", err)
	}

	selected := make([]*model.OrganizationUser, 0, len(orgUsers))
	for _, ou := range orgUsers {
		if ou.Status != model.OrgUserAccepted || ou.OrganizationID != orgID || ou.UserID == nil {
			continue
		}
		selected = append(selected, ou)
	}
	if len(selected) == 0 {
		return []ConfirmUserResult{}, nil
	}

	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uuid.UUID, 0, len(selected))
	for _, ou := range selected {
		userIDs = append(userIDs, *ou.UserID)
	}

	users, err := s.userRepo.FindMany(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	usersByID := make(map[uuid.UUID]*model.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	memberships, err := s.orgUserRepo.FindManyByUsers(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("loading cross-organization memberships: %w", err)
	}
	membershipsByUser := make(map[uuid.UUID][]*model.OrganizationUser)
	for _, m := range memberships {
		if m.UserID == nil {
			continue
		}
		membershipsByUser[*m.UserID] = append(membershipsByUser[*m.UserID], m)
	}

	orgPlans, err := s.loadMembershipPlans(ctx, memberships)
	if err != nil {
		return nil, err
	}

	policy := composePolicies(
		canBeFreeOrgAdmin,
		canJoinOrganization,
		canJoinMoreOrganizations(s.config.Limits.MaxOrganizationsPerUser),
	)

	results := make([]ConfirmUserResult, 0, len(selected))
	confirmed := make([]*model.OrganizationUser, 0, len(selected))

	for _, ou := range selected {
		user, ok := usersByID[*ou.UserID]
		if !ok {
			continue
		}

		permit, reason := policy(confirmCandidate{
			user:        user,
			orgUser:     ou,
			org:         org,
			memberships: membershipsByUser[user.ID],
			orgPlans:    orgPlans,
		})
		if !permit {
			results = append(results, ConfirmUserResult{OrganizationUser: ou, Reason: reason})
			continue
		}

		if err := ou.Confirm(keys[ou.ID]); err != nil {
			// The initial filter only admits accepted rows, so the
			// transition cannot fail here; guard anyway.
			results = append(results, ConfirmUserResult{OrganizationUser: ou, Reason: defaultBlockReason})
			continue
		}

		if err := s.auditLogger.LogOrganizationUserEvent(ctx, ou, model.EventOrgUserConfirmed); err != nil {
			return nil, fmt.Errorf("logging confirm event: %w", err)
		}

		if s.emailService != nil {
			if err := mailer.SendOrganizationConfirmedEmail(s.emailService, user.Email, user.Name, org.Name); err != nil {
				return nil, fmt.Errorf("sending confirmation email: %w", err)
			}
		}

		if s.pusher != nil {
			if err := s.pusher.DeleteAndPushUserRegistration(ctx, orgID, user.ID); err != nil {
				return nil, fmt.Errorf("clearing invite registration: %w", err)
			}
		}

		confirmed = append(confirmed, ou)
		results = append(results, ConfirmUserResult{OrganizationUser: ou})
	}

	if len(confirmed) > 0 {
		if err := s.orgUserRepo.ReplaceMany(ctx, confirmed); err != nil {
			return nil, fmt.Errorf("persisting confirmed users: %w", err)
		}
	}

	return results, nil
}

// ConfirmUser confirms a single membership; a rejection reason surfaces
// as an error and a silently-dropped row as ErrOrgUserNotFound.
func (s *OrganizationUserService) ConfirmUser(ctx context.Context, orgID, orgUserID uuid.UUID, wrappedKey string) (*model.OrganizationUser, error) {
	results, err := s.ConfirmUsers(ctx, orgID, map[uuid.UUID]string{orgUserID: wrappedKey})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, domain.ErrOrgUserNotFound
	}
	if results[0].Reason != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, results[0].Reason)
	}
	return results[0].OrganizationUser, nil
}

// loadMembershipPlans resolves the plan type of every organization the
// given memberships reference, for the free-org-admin policy.
func (s *OrganizationUserService) loadMembershipPlans(ctx context.Context, memberships []*model.OrganizationUser) (map[uuid.UUID]model.PlanType, error) {
	seen := make(map[uuid.UUID]struct{})
	orgIDs := make([]uuid.UUID, 0, len(memberships))
	for _, m := range memberships {
		if _, ok := seen[m.OrganizationID]; ok {
			continue
		}
		seen[m.OrganizationID] = struct{}{}
		orgIDs = append(orgIDs, m.OrganizationID)
	}

	plans := make(map[uuid.UUID]model.PlanType, len(orgIDs))
	if len(orgIDs) == 0 {
		return plans, nil
	}

	orgs, err := s.orgRepo.FindMany(ctx, orgIDs)
	if err != nil {
		return nil, fmt.Errorf("loading membership organizations: %w", err)
	}
	for _, o := range orgs {
		plans[o.ID] = o.PlanType
	}
	return plans, nil
}

// AcceptUser claims an invited membership for a registered user.
func (s *OrganizationUserService) AcceptUser(ctx context.Context, orgUserID, userID uuid.UUID) (*model.OrganizationUser, error) {
	orgUser, err := s.orgUserRepo.FindByID(ctx, orgUserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	memberships, err := s.orgUserRepo.FindManyByUsers(ctx, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("loading memberships: %w", err)
	}
	for _, m := range memberships {
		if m.ID != orgUser.ID && m.OrganizationID == orgUser.OrganizationID && m.Status != model.OrgUserRevoked {
			return nil, domain.ErrAlreadyMember
		}
	}

	if err := orgUser.Accept(userID); err != nil {
		return nil, err
	}

	if err := s.orgUserRepo.Replace(ctx, orgUser); err != nil {
		return nil, fmt.Errorf("persisting accepted user: %w", err)
	}

	if err := s.auditLogger.LogOrganizationUserEvent(ctx, orgUser, model.EventOrgUserAccepted); err != nil {
		return nil, fmt.Errorf("logging accept event: %w", err)
	}

	return orgUser, nil
}

// RevokeUser suspends a membership; its seat is released.
func (s *OrganizationUserService) RevokeUser(ctx context.Context, orgUserID uuid.UUID) (*model.OrganizationUser, error) {
	orgUser, err := s.orgUserRepo.FindByID(ctx, orgUserID)
	if err != nil {
		return nil, err
	}

	orgUser.Revoke()

	if err := s.orgUserRepo.Replace(ctx, orgUser); err != nil {
		return nil, fmt.Errorf("persisting revoked user: %w", err)
	}

	if err := s.auditLogger.LogOrganizationUserEvent(ctx, orgUser, model.EventOrgUserRevoked); err != nil {
		return nil, fmt.Errorf("logging revoke event: %w", err)
	}

	return orgUser, nil
}

// RestoreUser returns a revoked membership to the invited state.
func (s *OrganizationUserService) RestoreUser(ctx context.Context, orgUserID uuid.UUID) (*model.OrganizationUser, error) {
	orgUser, err := s.orgUserRepo.FindByID(ctx, orgUserID)
	if err != nil {
		return nil, err
	}

	if err := orgUser.Restore(); err != nil {
		return nil, err
	}

	if err := s.orgUserRepo.Replace(ctx, orgUser); err != nil {
		return nil, fmt.Errorf("persisting restored user: %w", err)
	}

	if err := s.auditLogger.LogOrganizationUserEvent(ctx, orgUser, model.EventOrgUserRestored); err != nil {
		return nil, fmt.Errorf("logging restore event: %w", err)
	}

	return orgUser, nil
}
