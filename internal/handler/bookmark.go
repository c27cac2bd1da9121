package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bookmarkd/bookmarkd-go/internal/middleware"
	"github.com/bookmarkd/bookmarkd-go/internal/model"
	"github.com/bookmarkd/bookmarkd-go/internal/service"
)

// BookmarkHandler handles HTTP requests for bookmark operations.
type BookmarkHandler struct {
	service *service.BookmarkService
}

// NewBookmarkHandler creates a new BookmarkHandler.
func NewBookmarkHandler(svc *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: svc}
}

// HandleList handles GET /bookmarks requests.
func (h *BookmarkHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	bookmarks, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bookmarks)
}

// HandleCreate handles POST /bookmarks requests.
func (h *BookmarkHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateBookmarkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), identity.UserID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleGetByID handles GET /bookmarks/{id} requests.
func (h *BookmarkHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := bookmarkID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		if errors.Is(err, service.ErrBookmarkNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleEdit handles PATCH /bookmarks/{id} requests.
func (h *BookmarkHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := bookmarkID(w, r)
	if !ok {
		return
	}

	var req model.EditBookmarkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Edit(r.Context(), identity.UserID, id, req)
	if err != nil {
		if errors.Is(err, service.ErrBookmarkNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /bookmarks/{id} requests.
func (h *BookmarkHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := bookmarkID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), identity.UserID, id); err != nil {
		if errors.Is(err, service.ErrBookmarkNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// bookmarkID parses the {id} route parameter, writing a 404 for anything that
// is not a positive integer. A malformed id can never name an existing row.
func bookmarkID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusNotFound, errorResponse("bookmark not found"))
		return 0, false
	}
	return id, true
}
