package handler

import (
	"errors"
	"net/http"

	"github.com/bookmarkd/bookmarkd-go/internal/middleware"
	"github.com/bookmarkd/bookmarkd-go/internal/model"
	"github.com/bookmarkd/bookmarkd-go/internal/service"
)

// UserHandler handles HTTP requests for the caller's own profile.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleGetMe handles GET /users/me requests.
func (h *UserHandler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.GetSelf(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleEditUser handles PATCH /users requests.
func (h *UserHandler) HandleEditUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.EditUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.EditSelf(r.Context(), identity.UserID, req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
