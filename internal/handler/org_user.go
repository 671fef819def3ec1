// internal/handler/org_user.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dangerclosesec/vaultd/internal/domain"
	"github.com/dangerclosesec/vaultd/internal/model"
	"github.com/dangerclosesec/vaultd/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OrganizationUserHandler struct {
	service *service.OrganizationUserService
}

func NewOrganizationUserHandler(service *service.OrganizationUserService) *OrganizationUserHandler {
	return &OrganizationUserHandler{
		service: service,
	}
}

// InviteUsersRequest represents the request body for inviting users
type InviteUsersRequest struct {
	Invites []service.UserInvite `json:"invites"`
}

// InviteUsers invites a batch of addresses into the organization
func (h *OrganizationUserHandler) InviteUsers(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	var req InviteUsersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	orgUsers, err := h.service.InviteUsers(r.Context(), orgID, req.Invites)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, orgUsers)
}

// AcceptUserRequest represents the request body for accepting an invite
type AcceptUserRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

// AcceptUser claims an invited membership for a registered user
func (h *OrganizationUserHandler) AcceptUser(w http.ResponseWriter, r *http.Request) {
	orgUserID, err := uuid.Parse(chi.URLParam(r, "orgUserID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization user ID")
		return
	}

	var req AcceptUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	orgUser, err := h.service.AcceptUser(r.Context(), orgUserID, req.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, orgUser)
}

// ConfirmUsersRequest maps organization user IDs to the organization key
// wrapped for each user
type ConfirmUsersRequest struct {
	Keys map[uuid.UUID]string `json:"keys"`
}

// ConfirmUserResponse is one entry of a bulk confirm response
type ConfirmUserResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
	Reason string    `json:"reason,omitempty"`
}

// ConfirmUsers finalizes a batch of accepted invites
func (h *OrganizationUserHandler) ConfirmUsers(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	var req ConfirmUsersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	results, err := h.service.ConfirmUsers(r.Context(), orgID, req.Keys)
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp := make([]ConfirmUserResponse, 0, len(results))
	for _, res := range results {
		resp = append(resp, ConfirmUserResponse{
			ID:     res.OrganizationUser.ID,
			Status: string(res.OrganizationUser.Status),
			Reason: res.Reason,
		})
	}

	respondWithJSON(w, http.StatusOK, resp)
}

// ConfirmUserRequest represents the request body for confirming one user
type ConfirmUserRequest struct {
	Key string `json:"key"`
}

// ConfirmUser finalizes a single accepted invite
func (h *OrganizationUserHandler) ConfirmUser(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	orgUserID, err := uuid.Parse(chi.URLParam(r, "orgUserID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization user ID")
		return
	}

	var req ConfirmUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	orgUser, err := h.service.ConfirmUser(r.Context(), orgID, orgUserID, req.Key)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, orgUser)
}

// RevokeUser suspends a membership
func (h *OrganizationUserHandler) RevokeUser(w http.ResponseWriter, r *http.Request) {
	orgUserID, err := uuid.Parse(chi.URLParam(r, "orgUserID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization user ID")
		return
	}

	orgUser, err := h.service.RevokeUser(r.Context(), orgUserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, orgUser)
}

// RestoreUser returns a revoked membership to the invited state
func (h *OrganizationUserHandler) RestoreUser(w http.ResponseWriter, r *http.Request) {
	orgUserID, err := uuid.Parse(chi.URLParam(r, "orgUserID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization user ID")
		return
	}

	orgUser, err := h.service.RestoreUser(r.Context(), orgUserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, orgUser)
}

// handleError handles common error cases
func (h *OrganizationUserHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrganizationNotFound):
		respondWithError(w, http.StatusNotFound, "Organization not found")
	case errors.Is(err, domain.ErrOrgUserNotFound):
		respondWithError(w, http.StatusNotFound, "Organization user not found")
	case errors.Is(err, domain.ErrUserNotFound):
		respondWithError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrAlreadyMember):
		respondWithError(w, http.StatusConflict, "User is already a member of this organization")
	case errors.Is(err, domain.ErrSeatLimitReached):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoUsersToInvite):
		respondWithError(w, http.StatusBadRequest, "No users to invite")
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, model.ErrNotAccepted),
		errors.Is(err, model.ErrNotInvited),
		errors.Is(err, model.ErrNotRevoked):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
