package httpapi

import (
	"net/http"
	"strconv"
)

// LocationsHandler serves location listing, creation, membership and
// share-candidate endpoints.
type LocationsHandler struct {
	Locations LocationService
	Sharing   SharingService
}

type addLocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}

func (h *LocationsHandler) List(w http.ResponseWriter, r *http.Request) {
	visible, err := h.Locations.AllVisible(r.Context(), UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, visibleLocationsResponse{
		Owned: toLocationResponses(visible.Owned),
		Admin: toLocationResponses(visible.Admin),
		Read:  toLocationResponses(visible.Read),
	})
}

func (h *LocationsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "bad_request", "name is required")
		return
	}

	location, err := h.Locations.Add(r.Context(), UserID(r.Context()), req.Name, req.Address)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, toLocationResponse(location))
}

func (h *LocationsHandler) Members(w http.ResponseWriter, r *http.Request) {
	locationID, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "bad_request", "invalid location id")
		return
	}

	members, err := h.Locations.MembersOn(r.Context(), UserID(r.Context()), locationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, toUserResponses(members))
}

func (h *LocationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	locationID, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "bad_request", "invalid location id")
		return
	}

	if err := h.Locations.Delete(r.Context(), UserID(r.Context()), locationID); err != nil {
		writeServiceError(w, err)
		return
	}

	jsonResponse(w, http.StatusNoContent, nil)
}

func (h *LocationsHandler) ShareCandidates(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "bad_request", "invalid user id")
		return
	}

	candidates, err := h.Sharing.ShareCandidates(r.Context(), UserID(r.Context()), targetID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, toLocationResponses(candidates))
}
