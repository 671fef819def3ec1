// internal/handler/access_policy.go
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

type AccessPolicyHandler struct {
	service *service.AccessPolicyService
}

func NewAccessPolicyHandler(service *service.AccessPolicyService) *AccessPolicyHandler {
	return &AccessPolicyHandler{
		service: service,
	}
}

// CreatePolicies persists a batch of access policies
func (h *AccessPolicyHandler) CreatePolicies(w http.ResponseWriter, r *http.Request) {
	var policies []*model.AccessPolicy
	if err := json.NewDecoder(r.Body).Decode(&policies); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	created, err := h.service.CreateMany(r.Context(), policies)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

// UpdatePolicyRequest represents the request body for updating a policy
type UpdatePolicyRequest struct {
	Read  bool `json:"read"`
	Write bool `json:"write"`
}

// UpdatePolicy replaces a policy's read/write flags
func (h *AccessPolicyHandler) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid policy ID")
		return
	}

	var req UpdatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	policy, err := h.service.Update(r.Context(), service.UpdateAccessPolicyInput{
		ID:    id,
		Read:  req.Read,
		Write: req.Write,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, policy)
}

// DeletePolicy removes a policy by ID
func (h *AccessPolicyHandler) DeletePolicy(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid policy ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// PolicyUpdateEntry is one operation of a bulk policy delta
type PolicyUpdateEntry struct {
	Operation model.AccessPolicyOperation `json:"operation"`
	Policy    model.AccessPolicy          `json:"policy"`
}

func toModelUpdates(entries []PolicyUpdateEntry) []model.ServiceAccountProjectPolicyUpdate {
	updates := make([]model.ServiceAccountProjectPolicyUpdate, 0, len(entries))
	for _, e := range entries {
		updates = append(updates, model.ServiceAccountProjectPolicyUpdate{
			Operation: e.Operation,
			Policy:    e.Policy,
		})
	}
	return updates
}

// UpdateProjectServiceAccounts applies a policy delta for one project
func (h *AccessPolicyHandler) UpdateProjectServiceAccounts(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var entries []PolicyUpdateEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err = h.service.UpdateProjectServiceAccounts(r.Context(), model.ProjectServiceAccountsPoliciesUpdates{
		OrganizationID: orgID,
		ProjectID:      projectID,
		Updates:        toModelUpdates(entries),
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// UpdateServiceAccountGrantedPolicies applies a policy delta for one
// service account
func (h *AccessPolicyHandler) UpdateServiceAccountGrantedPolicies(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	serviceAccountID, err := uuid.Parse(chi.URLParam(r, "serviceAccountID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid service account ID")
		return
	}

	var entries []PolicyUpdateEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err = h.service.UpdateServiceAccountGrantedPolicies(r.Context(), model.ServiceAccountGrantedPoliciesUpdates{
		OrganizationID:   orgID,
		ServiceAccountID: serviceAccountID,
		Updates:          toModelUpdates(entries),
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// handleError handles common error cases
func (h *AccessPolicyHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAccessPolicyNotFound):
		respondWithError(w, http.StatusNotFound, "Access policy not found")
	case errors.Is(err, domain.ErrAccessPolicyExists):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrDuplicateAccessPolicies):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrUnsupportedAccessPolicy):
		respondWithError(w, http.StatusBadRequest, "Unsupported access policy type")
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
