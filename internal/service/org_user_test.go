package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/vaultd/internal/config"
	"github.com/dangerclosesec/vaultd/internal/domain"
	"github.com/dangerclosesec/vaultd/internal/mocks"
	"github.com/dangerclosesec/vaultd/internal/model"
	"github.com/dangerclosesec/vaultd/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int { return &i }

type orgUserFixture struct {
	orgUserRepo *mocks.MockOrganizationUserRepositoryIface
	userRepo    *mocks.MockUserRepositoryIface
	orgRepo     *mocks.MockOrganizationRepositoryIface
	auditLogger *mocks.MockLogger
	pusher      *mocks.MockRegistrationPusher
	config      *config.Config
	service     *service.OrganizationUserService
}

func newOrgUserFixture(ctrl *gomock.Controller) *orgUserFixture {
	f := &orgUserFixture{
		orgUserRepo: mocks.NewMockOrganizationUserRepositoryIface(ctrl),
		userRepo:    mocks.NewMockUserRepositoryIface(ctrl),
		orgRepo:     mocks.NewMockOrganizationRepositoryIface(ctrl),
		auditLogger: mocks.NewMockLogger(ctrl),
		pusher:      mocks.NewMockRegistrationPusher(ctrl),
		config:      &config.Config{},
	}
	f.service = service.NewOrganizationUserService(
		f.orgUserRepo,
		f.userRepo,
		f.orgRepo,
		f.auditLogger,
		nil,
		f.pusher,
		f.config,
	)
	return f
}

func paidOrg(id uuid.UUID) *model.Organization {
	return &model.Organization{
		ID:       id,
		Name:     "Acme",
		PlanType: model.PlanTeams,
	}
}

func acceptedOrgUser(orgID uuid.UUID, userID uuid.UUID) *model.OrganizationUser {
	return &model.OrganizationUser{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         &userID,
		Status:         model.OrgUserAccepted,
		Type:           model.OrgUserTypeUser,
	}
}

func TestConfirmUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	t.Run("ineligible rows are silently dropped", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		userID := uuid.New()
		eligible := acceptedOrgUser(orgID, userID)
		invited := &model.OrganizationUser{ID: uuid.New(), OrganizationID: orgID, Status: model.OrgUserInvited}
		wrongOrg := acceptedOrgUser(uuid.New(), uuid.New())
		unlinked := &model.OrganizationUser{ID: uuid.New(), OrganizationID: orgID, Status: model.OrgUserAccepted}

		user := &model.User{ID: userID, Email: "member@example.com", Name: "Member"}

		f.orgUserRepo.EXPECT().FindMany(gomock.Any(), gomock.Any()).
			Return([]*model.OrganizationUser{eligible, invited, wrongOrg, unlinked}, nil)
		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(paidOrg(orgID), nil)
		f.userRepo.EXPECT().FindMany(gomock.Any(), []uuid.UUID{userID}).
			Return([]*model.User{user}, nil)
		f.orgUserRepo.EXPECT().FindManyByUsers(gomock.Any(), []uuid.UUID{userID}).
			Return([]*model.OrganizationUser{eligible}, nil)
		f.orgRepo.EXPECT().FindMany(gomock.Any(), []uuid.UUID{orgID}).
			Return([]*model.Organization{paidOrg(orgID)}, nil)
		f.auditLogger.EXPECT().
			LogOrganizationUserEvent(gomock.Any(), eligible, model.EventOrgUserConfirmed).
			Return(nil)
		f.pusher.EXPECT().DeleteAndPushUserRegistration(gomock.Any(), orgID, userID).Return(nil)
		f.orgUserRepo.EXPECT().ReplaceMany(gomock.Any(), []*model.OrganizationUser{eligible}).Return(nil)

		keys := map[uuid.UUID]string{
			eligible.ID: "key-1",
			invited.ID:  "key-2",
			wrongOrg.ID: "key-3",
			unlinked.ID: "key-4",
		}

		results, err := f.service.ConfirmUsers(context.Background(), orgID, keys)
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Empty(t, results[0].Reason)
		assert.Equal(t, model.OrgUserConfirmed, results[0].OrganizationUser.Status)
		assert.Equal(t, "key-1", results[0].OrganizationUser.Key)
	})

	t.Run("batch with no eligible rows is a no-op", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		invited := &model.OrganizationUser{ID: uuid.New(), OrganizationID: orgID, Status: model.OrgUserInvited}
		f.orgUserRepo.EXPECT().FindMany(gomock.Any(), gomock.Any()).
			Return([]*model.OrganizationUser{invited}, nil)

		results, err := f.service.ConfirmUsers(context.Background(), orgID, map[uuid.UUID]string{invited.ID: "key"})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("free org admin of another free org is blocked", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		userID := uuid.New()
		freeOrg := &model.Organization{ID: orgID, Name: "Side Project", PlanType: model.PlanFree}
		candidate := acceptedOrgUser(orgID, userID)
		candidate.Type = model.OrgUserTypeAdmin

		otherFreeOrgID := uuid.New()
		otherMembership := &model.OrganizationUser{
			ID:             uuid.New(),
			OrganizationID: otherFreeOrgID,
			UserID:         &userID,
			Status:         model.OrgUserConfirmed,
			Type:           model.OrgUserTypeOwner,
		}

		user := &model.User{ID: userID, Email: "admin@example.com", Name: "Admin"}

		f.orgUserRepo.EXPECT().FindMany(gomock.Any(), gomock.Any()).
			Return([]*model.OrganizationUser{candidate}, nil)
		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(freeOrg, nil)
		f.userRepo.EXPECT().FindMany(gomock.Any(), []uuid.UUID{userID}).
			Return([]*model.User{user}, nil)
		f.orgUserRepo.EXPECT().FindManyByUsers(gomock.Any(), []uuid.UUID{userID}).
			Return([]*model.OrganizationUser{candidate, otherMembership}, nil)
		f.orgRepo.EXPECT().FindMany(gomock.Any(), gomock.Any()).
			Return([]*model.Organization{
				freeOrg,
				{ID: otherFreeOrgID, Name: "Other", PlanType: model.PlanFree},
			}, nil)

		results, err := f.service.ConfirmUsers(context.Background(), orgID, map[uuid.UUID]string{candidate.ID: "key"})
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, "User can only be an admin of one free organization.", results[0].Reason)
		assert.Equal(t, model.OrgUserAccepted, results[0].OrganizationUser.Status)
	})

	t.Run("membership ceiling blocks the user", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)
		f.config.Limits.MaxOrganizationsPerUser = 1

		userID := uuid.New()
		candidate := acceptedOrgUser(orgID, userID)

		otherOrgID := uuid.New()
		otherMembership := &model.OrganizationUser{
			ID:             uuid.New(),
			OrganizationID: otherOrgID,
			UserID:         &userID,
			Status:         model.OrgUserConfirmed,
			Type:           model.OrgUserTypeUser,
		}

		user := &model.User{ID: userID, Email: "busy@example.com", Name: "Busy"}

		f.orgUserRepo.EXPECT().FindMany(gomock.Any(), gomock.Any()).
			Return([]*model.OrganizationUser{candidate}, nil)
		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(paidOrg(orgID), nil)
		f.userRepo.EXPECT().FindMany(gomock.Any(), []uuid.UUID{userID}).
			Return([]*model.User{user}, nil)
		f.orgUserRepo.EXPECT().FindManyByUsers(gomock.Any(), []uuid.UUID{userID}).
			Return([]*model.OrganizationUser{candidate, otherMembership}, nil)
		f.orgRepo.EXPECT().FindMany(gomock.Any(), gomock.Any()).
			Return([]*model.Organization{paidOrg(orgID), paidOrg(otherOrgID)}, nil)

		results, err := f.service.ConfirmUsers(context.Background(), orgID, map[uuid.UUID]string{candidate.ID: "key"})
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, "User has reached the maximum number of organizations.", results[0].Reason)
	})

	t.Run("only the successful subset is persisted", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		okUserID := uuid.New()
		okCandidate := acceptedOrgUser(orgID, okUserID)
		okUser := &model.User{ID: okUserID, Email: "ok@example.com", Name: "Ok"}

		dupUserID := uuid.New()
		dupCandidate := acceptedOrgUser(orgID, dupUserID)
		dupUser := &model.User{ID: dupUserID, Email: "dup@example.com", Name: "Dup"}
		existingMembership := &model.OrganizationUser{
			ID:             uuid.New(),
			OrganizationID: orgID,
			UserID:         &dupUserID,
			Status:         model.OrgUserConfirmed,
			Type:           model.OrgUserTypeUser,
		}

		f.orgUserRepo.EXPECT().FindMany(gomock.Any(), gomock.Any()).
			Return([]*model.OrganizationUser{okCandidate, dupCandidate}, nil)
		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(paidOrg(orgID), nil)
		f.userRepo.EXPECT().FindMany(gomock.Any(), gomock.Any()).
			Return([]*model.User{okUser, dupUser}, nil)
		f.orgUserRepo.EXPECT().FindManyByUsers(gomock.Any(), gomock.Any()).
			Return([]*model.OrganizationUser{okCandidate, dupCandidate, existingMembership}, nil)
		f.orgRepo.EXPECT().FindMany(gomock.Any(), gomock.Any()).
			Return([]*model.Organization{paidOrg(orgID)}, nil)
		f.auditLogger.EXPECT().
			LogOrganizationUserEvent(gomock.Any(), okCandidate, model.EventOrgUserConfirmed).
			Return(nil)
		f.pusher.EXPECT().DeleteAndPushUserRegistration(gomock.Any(), orgID, okUserID).Return(nil)
		f.orgUserRepo.EXPECT().
			ReplaceMany(gomock.Any(), []*model.OrganizationUser{okCandidate}).
			Return(nil)

		keys := map[uuid.UUID]string{okCandidate.ID: "key-ok", dupCandidate.ID: "key-dup"}
		results, err := f.service.ConfirmUsers(context.Background(), orgID, keys)
		require.NoError(t, err)

		require.Len(t, results, 2)

		byID := make(map[uuid.UUID]service.ConfirmUserResult, len(results))
		for _, res := range results {
			byID[res.OrganizationUser.ID] = res
		}

		assert.Empty(t, byID[okCandidate.ID].Reason)
		assert.Equal(t, model.OrgUserConfirmed, byID[okCandidate.ID].OrganizationUser.Status)

		assert.Equal(t, "User is already a member of this organization.", byID[dupCandidate.ID].Reason)
		assert.Equal(t, model.OrgUserAccepted, byID[dupCandidate.ID].OrganizationUser.Status)
	})
}

func TestConfirmUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	t.Run("dropped row surfaces not found", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		orgUserID := uuid.New()
		f.orgUserRepo.EXPECT().FindMany(gomock.Any(), []uuid.UUID{orgUserID}).
			Return(nil, nil)

		_, err := f.service.ConfirmUser(context.Background(), orgID, orgUserID, "key")
		assert.ErrorIs(t, err, domain.ErrOrgUserNotFound)
	})
}

func TestInviteUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	invite := func(email string) service.UserInvite {
		return service.UserInvite{Email: email, Type: model.OrgUserTypeUser}
	}

	t.Run("invite that fits the remaining seat is created", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		org := paidOrg(orgID)
		org.Seats = intPtr(10)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(org, nil)
		f.orgUserRepo.EXPECT().FindManyByOrganization(gomock.Any(), orgID).Return(nil, nil)
		f.orgUserRepo.EXPECT().CountOccupiedSeats(gomock.Any(), orgID).Return(9, nil)
		f.orgUserRepo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).Return(nil)
		f.auditLogger.EXPECT().
			LogOrganizationUserEvent(gomock.Any(), gomock.Any(), model.EventOrgUserInvited).
			Return(nil)

		orgUsers, err := f.service.InviteUsers(context.Background(), orgID, []service.UserInvite{
			invite("new@example.com"),
		})
		require.NoError(t, err)

		require.Len(t, orgUsers, 1)
		assert.Equal(t, model.OrgUserInvited, orgUsers[0].Status)
		require.NotNil(t, orgUsers[0].Email)
		assert.Equal(t, "new@example.com", *orgUsers[0].Email)
		assert.Nil(t, orgUsers[0].UserID)
	})

	t.Run("full free plan rejects the invite", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		org := &model.Organization{ID: orgID, Name: "Starter", PlanType: model.PlanFree, Seats: intPtr(2)}

		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(org, nil)
		f.orgUserRepo.EXPECT().FindManyByOrganization(gomock.Any(), orgID).Return(nil, nil)
		f.orgUserRepo.EXPECT().CountOccupiedSeats(gomock.Any(), orgID).Return(2, nil)

		_, err := f.service.InviteUsers(context.Background(), orgID, []service.UserInvite{
			invite("third@example.com"),
		})
		require.ErrorIs(t, err, domain.ErrSeatLimitReached)
		assert.Contains(t, err.Error(), "Plan does not allow additional Password Manager seats.")
	})

	t.Run("growth within the autoscale ceiling bumps the subscription", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		org := paidOrg(orgID)
		org.Seats = intPtr(10)
		org.MaxAutoscaleSeats = intPtr(12)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(org, nil)
		f.orgUserRepo.EXPECT().FindManyByOrganization(gomock.Any(), orgID).Return(nil, nil)
		f.orgUserRepo.EXPECT().CountOccupiedSeats(gomock.Any(), orgID).Return(10, nil)
		f.orgRepo.EXPECT().Update(gomock.Any(), org).DoAndReturn(
			func(_ context.Context, updated *model.Organization) error {
				require.NotNil(t, updated.Seats)
				assert.Equal(t, 12, *updated.Seats)
				return nil
			})
		f.orgUserRepo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).Return(nil)
		f.auditLogger.EXPECT().
			LogOrganizationUserEvent(gomock.Any(), gomock.Any(), model.EventOrgUserInvited).
			Return(nil).
			Times(2)

		orgUsers, err := f.service.InviteUsers(context.Background(), orgID, []service.UserInvite{
			invite("a@example.com"),
			invite("b@example.com"),
		})
		require.NoError(t, err)
		assert.Len(t, orgUsers, 2)
	})

	t.Run("addresses already invited are skipped", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		existingEmail := "taken@example.com"
		existing := &model.OrganizationUser{
			ID:             uuid.New(),
			OrganizationID: orgID,
			Email:          &existingEmail,
			Status:         model.OrgUserInvited,
		}

		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(paidOrg(orgID), nil)
		f.orgUserRepo.EXPECT().FindManyByOrganization(gomock.Any(), orgID).
			Return([]*model.OrganizationUser{existing}, nil)

		_, err := f.service.InviteUsers(context.Background(), orgID, []service.UserInvite{
			invite("Taken@example.com"),
		})
		assert.ErrorIs(t, err, domain.ErrNoUsersToInvite)
	})

	t.Run("addresses of accepted members are skipped via the user link", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		// Accepting clears the membership's Email, so only the linked
		// user row still knows the address.
		userID := uuid.New()
		member := &model.OrganizationUser{
			ID:             uuid.New(),
			OrganizationID: orgID,
			UserID:         &userID,
			Status:         model.OrgUserConfirmed,
		}

		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(paidOrg(orgID), nil)
		f.orgUserRepo.EXPECT().FindManyByOrganization(gomock.Any(), orgID).
			Return([]*model.OrganizationUser{member}, nil)
		f.userRepo.EXPECT().FindMany(gomock.Any(), []uuid.UUID{userID}).
			Return([]*model.User{{ID: userID, Email: "member@example.com"}}, nil)

		_, err := f.service.InviteUsers(context.Background(), orgID, []service.UserInvite{
			invite("Member@example.com"),
		})
		assert.ErrorIs(t, err, domain.ErrNoUsersToInvite)
	})

	t.Run("secrets manager invite without access is rejected", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		org := paidOrg(orgID)
		org.Seats = intPtr(10)
		org.UseSecretsManager = false
		org.SmSeats = intPtr(5)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(org, nil)
		f.orgUserRepo.EXPECT().FindManyByOrganization(gomock.Any(), orgID).Return(nil, nil)
		f.orgUserRepo.EXPECT().CountOccupiedSeats(gomock.Any(), orgID).Return(0, nil)
		f.orgUserRepo.EXPECT().CountOccupiedSecretsManagerSeats(gomock.Any(), orgID).Return(0, nil)

		smInvite := invite("secrets@example.com")
		smInvite.AccessSecretsManager = true

		_, err := f.service.InviteUsers(context.Background(), orgID, []service.UserInvite{smInvite})
		require.ErrorIs(t, err, domain.ErrSeatLimitReached)
		assert.Contains(t, err.Error(), "Organization has no access to Secrets Manager.")
	})

	t.Run("invalid address is rejected before any lookup", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		_, err := f.service.InviteUsers(context.Background(), orgID, []service.UserInvite{
			invite("not-an-email"),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAcceptUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	t.Run("invited user is accepted and linked", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		email := "invitee@example.com"
		orgUser := &model.OrganizationUser{
			ID:             uuid.New(),
			OrganizationID: orgID,
			Email:          &email,
			Status:         model.OrgUserInvited,
		}
		userID := uuid.New()
		user := &model.User{ID: userID, Email: email, Name: "Invitee"}

		f.orgUserRepo.EXPECT().FindByID(gomock.Any(), orgUser.ID).Return(orgUser, nil)
		f.userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
		f.orgUserRepo.EXPECT().FindManyByUsers(gomock.Any(), []uuid.UUID{userID}).Return(nil, nil)
		f.orgUserRepo.EXPECT().Replace(gomock.Any(), orgUser).Return(nil)
		f.auditLogger.EXPECT().
			LogOrganizationUserEvent(gomock.Any(), orgUser, model.EventOrgUserAccepted).
			Return(nil)

		accepted, err := f.service.AcceptUser(context.Background(), orgUser.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, model.OrgUserAccepted, accepted.Status)
		require.NotNil(t, accepted.UserID)
		assert.Equal(t, userID, *accepted.UserID)
	})

	t.Run("second membership in the same organization is rejected", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		email := "invitee@example.com"
		orgUser := &model.OrganizationUser{
			ID:             uuid.New(),
			OrganizationID: orgID,
			Email:          &email,
			Status:         model.OrgUserInvited,
		}
		userID := uuid.New()
		user := &model.User{ID: userID, Email: email, Name: "Invitee"}
		existing := &model.OrganizationUser{
			ID:             uuid.New(),
			OrganizationID: orgID,
			UserID:         &userID,
			Status:         model.OrgUserConfirmed,
		}

		f.orgUserRepo.EXPECT().FindByID(gomock.Any(), orgUser.ID).Return(orgUser, nil)
		f.userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
		f.orgUserRepo.EXPECT().FindManyByUsers(gomock.Any(), []uuid.UUID{userID}).
			Return([]*model.OrganizationUser{existing}, nil)

		_, err := f.service.AcceptUser(context.Background(), orgUser.ID, userID)
		assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	})
}

func TestRevokeRestoreUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	t.Run("confirmed user is revoked", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		userID := uuid.New()
		orgUser := &model.OrganizationUser{
			ID:             uuid.New(),
			OrganizationID: orgID,
			UserID:         &userID,
			Status:         model.OrgUserConfirmed,
		}

		f.orgUserRepo.EXPECT().FindByID(gomock.Any(), orgUser.ID).Return(orgUser, nil)
		f.orgUserRepo.EXPECT().Replace(gomock.Any(), orgUser).Return(nil)
		f.auditLogger.EXPECT().
			LogOrganizationUserEvent(gomock.Any(), orgUser, model.EventOrgUserRevoked).
			Return(nil)

		revoked, err := f.service.RevokeUser(context.Background(), orgUser.ID)
		require.NoError(t, err)
		assert.Equal(t, model.OrgUserRevoked, revoked.Status)
	})

	t.Run("revoked user is restored to invited", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		orgUser := &model.OrganizationUser{
			ID:             uuid.New(),
			OrganizationID: orgID,
			Status:         model.OrgUserRevoked,
			Key:            "wrapped-org-key",
		}

		f.orgUserRepo.EXPECT().FindByID(gomock.Any(), orgUser.ID).Return(orgUser, nil)
		f.orgUserRepo.EXPECT().Replace(gomock.Any(), orgUser).Return(nil)
		f.auditLogger.EXPECT().
			LogOrganizationUserEvent(gomock.Any(), orgUser, model.EventOrgUserRestored).
			Return(nil)

		restored, err := f.service.RestoreUser(context.Background(), orgUser.ID)
		require.NoError(t, err)
		assert.Equal(t, model.OrgUserInvited, restored.Status)
		assert.Empty(t, restored.Key)
	})

	t.Run("restoring a non-revoked user fails", func(t *testing.T) {
		f := newOrgUserFixture(ctrl)

		orgUser := &model.OrganizationUser{
			ID:             uuid.New(),
			OrganizationID: orgID,
			Status:         model.OrgUserConfirmed,
		}

		f.orgUserRepo.EXPECT().FindByID(gomock.Any(), orgUser.ID).Return(orgUser, nil)

		_, err := f.service.RestoreUser(context.Background(), orgUser.ID)
		assert.ErrorIs(t, err, model.ErrNotRevoked)
	})
}
