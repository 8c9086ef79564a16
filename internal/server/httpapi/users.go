package httpapi

import "net/http"

// AuthHandler serves the unauthenticated account endpoints.
type AuthHandler struct {
	Users UserService
}

type registerRequest struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if req.Login == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "bad_request", "login and password are required")
		return
	}

	user, err := h.Users.Register(r.Context(), req.Name, req.Login, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, toUserResponse(user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	token, user, err := h.Users.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, loginResponse{Token: token, User: toUserResponse(user)})
}

// UsersHandler serves the authenticated account endpoints.
type UsersHandler struct {
	Users UserService
}

func (h *UsersHandler) DeleteSelf(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.Delete(r.Context(), UserID(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}
	jsonResponse(w, http.StatusNoContent, nil)
}
