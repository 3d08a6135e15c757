package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/digitopia/membership-backend-go/internal/domain/user"
	"github.com/digitopia/membership-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// actorID extracts the authenticated principal from the verified token
func actorID(r *http.Request) (string, bool) {
	_, claims, _ := jwtauth.FromContext(r.Context())
	id, ok := claims["user_id"].(string)
	return id, ok && id != ""
}

// pagination reads limit/offset query params with sane bounds
func pagination(r *http.Request) (limit, offset int) {
	limit = defaultPageLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = min(v, maxPageLimit)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetByEmail(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	ListByOrganization(w http.ResponseWriter, r *http.Request)
	Organizations(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{
		userService: userService,
	}
}

// Create implements UserHandler
func (h *userHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	var req user.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.userService.Create(r.Context(), req, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created", result)
}

// Update implements UserHandler
func (h *userHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	id := chi.URLParam(r, "id")

	var req user.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.userService.Update(r.Context(), id, req, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetByID implements UserHandler
func (h *userHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetByEmail implements UserHandler
func (h *userHandlerImpl) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		response.BadRequest(w, "email query parameter is required", nil)
		return
	}

	result, err := h.userService.GetByEmail(r.Context(), email)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Search implements UserHandler - search users by normalized full name
func (h *userHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		response.BadRequest(w, "name query parameter is required", nil)
		return
	}

	limit, offset := pagination(r)
	results, err := h.userService.SearchByName(r.Context(), name, limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListByOrganization implements UserHandler
func (h *userHandlerImpl) ListByOrganization(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "organizationID")

	results, err := h.userService.ListByOrganization(r.Context(), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Organizations implements UserHandler - ids of organizations the user belongs to
func (h *userHandlerImpl) Organizations(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	results, err := h.userService.Organizations(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
