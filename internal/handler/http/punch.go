package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/timewatch/timewatch-backend-go/internal/domain/punch"
	"github.com/timewatch/timewatch-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &PunchHandlerImpl{punchService: punchService}
}

// Create implements PunchHandler.
func (h *PunchHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	requester, err := RequesterFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req punch.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.UserEmail == "" {
		req.UserEmail = requester.Email
	}

	event, err := h.punchService.Create(r.Context(), req, requester)
	if err != nil {
		slog.Error("Create punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch event recorded", event)
}

// PunchOut implements PunchHandler.
func (h *PunchHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	requester, err := RequesterFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req punch.PunchOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PunchOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.UserEmail == "" {
		req.UserEmail = requester.Email
	}

	event, err := h.punchService.PunchOut(r.Context(), req, requester)
	if err != nil {
		slog.Error("PunchOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch event closed", event)
}

// Update implements PunchHandler.
func (h *PunchHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	requester, err := RequesterFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req punch.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	event, err := h.punchService.Update(r.Context(), chi.URLParam(r, "id"), req, requester)
	if err != nil {
		slog.Error("Update punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch event updated", event)
}

// Delete implements PunchHandler.
func (h *PunchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	requester, err := RequesterFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	if err := h.punchService.Delete(r.Context(), chi.URLParam(r, "id"), requester); err != nil {
		slog.Error("Delete punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch event deleted", nil)
}

// List implements PunchHandler.
func (h *PunchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requester, err := RequesterFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	q := r.URL.Query()
	req := punch.ListEventsRequest{
		UserEmail: q.Get("user_email"),
		Start:     q.Get("start"),
		End:       q.Get("end"),
	}
	if req.UserEmail == "" {
		req.UserEmail = requester.Email
	}

	events, err := h.punchService.List(r.Context(), req, requester)
	if err != nil {
		slog.Error("List punches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}
