package http

import (
	"encoding/json"
	"net/http"

	"github.com/digitopia/membership-backend-go/internal/domain/invitation"
	"github.com/digitopia/membership-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type InvitationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ListByUser(w http.ResponseWriter, r *http.Request)
	ListByOrganization(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type invitationHandlerImpl struct {
	invitationService invitation.InvitationService
}

func NewInvitationHandler(invitationService invitation.InvitationService) InvitationHandler {
	return &invitationHandlerImpl{
		invitationService: invitationService,
	}
}

// Create implements InvitationHandler - invite a user into an organization
func (h *invitationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	var req invitation.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.invitationService.Create(r.Context(), req, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invitation created", result)
}

// UpdateStatus implements InvitationHandler - accept or reject an invitation
func (h *invitationHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	id := chi.URLParam(r, "id")

	var req invitation.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.invitationService.UpdateStatus(r.Context(), id, req, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByUser implements InvitationHandler
func (h *invitationHandlerImpl) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	results, err := h.invitationService.ListByUser(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListByOrganization implements InvitationHandler
func (h *invitationHandlerImpl) ListByOrganization(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "organizationID")

	results, err := h.invitationService.ListByOrganization(r.Context(), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Delete implements InvitationHandler - administrative hard delete
func (h *invitationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.invitationService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invitation deleted", nil)
}
