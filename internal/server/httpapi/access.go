package httpapi

import (
	"net/http"

	"locshare/internal/server/models"
)

// AccessHandler serves grant creation and level changes.
type AccessHandler struct {
	Access AccessService
}

type shareRequest struct {
	LocationID int64  `json:"location_id"`
	UserID     int64  `json:"user_id"`
	Level      string `json:"level"`
}

type changeAccessRequest struct {
	LocationID int64 `json:"location_id"`
	UserID     int64 `json:"user_id"`
}

func (h *AccessHandler) Share(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	level := models.Level(req.Level)
	if !level.Valid() {
		jsonError(w, http.StatusBadRequest, "bad_request", "level must be ADMIN or READ")
		return
	}

	access, err := h.Access.Share(r.Context(), UserID(r.Context()), req.LocationID, req.UserID, level)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, toAccessResponse(access))
}

func (h *AccessHandler) Change(w http.ResponseWriter, r *http.Request) {
	var req changeAccessRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	access, err := h.Access.ChangeAccess(r.Context(), UserID(r.Context()), req.LocationID, req.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, toAccessResponse(access))
}
