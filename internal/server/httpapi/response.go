package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"locshare/internal/common"
)

// errorBody is the JSON shape of every failed response. Code is stable and
// meant for branching; Error is for humans.
type errorBody struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func jsonError(w http.ResponseWriter, status int, code, message string) {
	jsonResponse(w, status, errorBody{Code: code, Error: message})
}

func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// writeServiceError maps the error taxonomy onto HTTP statuses and stable
// codes. Policy violations keep their message; anything unrecognized is
// treated as an unavailable store and surfaces no internal detail.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrSelfShare):
		jsonError(w, http.StatusBadRequest, "self_share", err.Error())
	case errors.Is(err, common.ErrNotOwner):
		jsonError(w, http.StatusForbidden, "not_owner", err.Error())
	case errors.Is(err, common.ErrLocationNotEligible):
		jsonError(w, http.StatusForbidden, "location_not_eligible", err.Error())
	case errors.Is(err, common.ErrDuplicateGrant):
		jsonError(w, http.StatusConflict, "duplicate_grant", err.Error())
	case errors.Is(err, common.ErrAlreadyExists):
		jsonError(w, http.StatusConflict, "already_exists", err.Error())
	case errors.Is(err, common.ErrUserOwnsLocations):
		jsonError(w, http.StatusConflict, "user_owns_locations", err.Error())
	case errors.Is(err, common.ErrGrantNotFound):
		jsonError(w, http.StatusNotFound, "grant_not_found", err.Error())
	case errors.Is(err, common.ErrTargetUserNotFound):
		jsonError(w, http.StatusNotFound, "target_user_not_found", err.Error())
	case errors.Is(err, common.ErrLocationNotFound):
		jsonError(w, http.StatusNotFound, "location_not_found", err.Error())
	case errors.Is(err, common.ErrUserNotFound):
		jsonError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		jsonError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
	default:
		jsonError(w, http.StatusServiceUnavailable, "store_unavailable", "temporary failure, retry later")
	}
}
