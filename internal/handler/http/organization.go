package http

import (
	"encoding/json"
	"net/http"

	"github.com/digitopia/membership-backend-go/internal/domain/organization"
	"github.com/digitopia/membership-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OrganizationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
}

type organizationHandlerImpl struct {
	organizationService organization.OrganizationService
}

func NewOrganizationHandler(organizationService organization.OrganizationService) OrganizationHandler {
	return &organizationHandlerImpl{
		organizationService: organizationService,
	}
}

// Create implements OrganizationHandler
func (h *organizationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	var req organization.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.organizationService.Create(r.Context(), req, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Organization created", result)
}

// Update implements OrganizationHandler
func (h *organizationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	id := chi.URLParam(r, "id")

	var req organization.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.organizationService.Update(r.Context(), id, req, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetByID implements OrganizationHandler
func (h *organizationHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.organizationService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Search implements OrganizationHandler - search organizations by name
func (h *organizationHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		response.BadRequest(w, "name query parameter is required", nil)
		return
	}

	limit, offset := pagination(r)
	results, err := h.organizationService.SearchByName(r.Context(), name, limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
