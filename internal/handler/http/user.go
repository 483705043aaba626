package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByEmail(w http.ResponseWriter, r *http.Request)
	ListByCompany(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	requester, err := RequesterFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.Create(r.Context(), req, requester)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created successfully", created)
}

// GetByEmail implements UserHandler.
func (h *UserHandlerImpl) GetByEmail(w http.ResponseWriter, r *http.Request) {
	requester, err := RequesterFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	email := chi.URLParam(r, "email")
	found, err := h.userService.GetByEmail(r.Context(), email, requester)
	if err != nil {
		slog.Error("Get user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListByCompany implements UserHandler.
func (h *UserHandlerImpl) ListByCompany(w http.ResponseWriter, r *http.Request) {
	requester, err := RequesterFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	companyID := r.URL.Query().Get("company_id")
	if companyID == "" {
		companyID = requester.CompanyID
	}

	users, err := h.userService.ListByCompany(r.Context(), companyID, requester)
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	requester, err := RequesterFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	email := chi.URLParam(r, "email")
	if err := h.userService.Update(r.Context(), email, req, requester); err != nil {
		slog.Error("Update user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated successfully", nil)
}

// Deactivate implements UserHandler.
func (h *UserHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	requester, err := RequesterFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	email := chi.URLParam(r, "email")
	if err := h.userService.Deactivate(r.Context(), email, requester); err != nil {
		slog.Error("Deactivate user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deactivated", nil)
}
