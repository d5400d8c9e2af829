package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solwayhq/accounts/internal/accounts/service"
	"github.com/solwayhq/accounts/pkg/httpx"
	"github.com/solwayhq/accounts/pkg/slogx"
)

type UsersHandler struct {
	RegistrationService *service.RegistrationService
	UserService         *service.UserService
}

// HandleCreate registers a new user.
//
//	@Summary		Register a new user
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	domain.PublicUser
//	@Failure		400	{object}	map[string]string	"Duplicate email or invalid input"
//	@Router			/api/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "malformed request body")
		return
	}

	created, err := h.RegistrationService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteMessage(w, http.StatusBadRequest, "email already registered")
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
		default:
			log.Error("user registration failed", "err", err)
			httpx.WriteMessage(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.Header().Set("Location", "/api/users/"+created.ID)
	httpx.WriteJSON(w, http.StatusCreated, created)
}

// HandleList returns all registered users. Requires authentication.
//
//	@Summary		List registered users
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.PublicUser
//	@Failure		401	{object}	map[string]string	"Missing or invalid session token"
//	@Router			/api/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		log.Error("listing users failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, users)
}
