package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/solwayhq/accounts/internal/accounts/service"
	"github.com/solwayhq/accounts/pkg/httpx"
	"github.com/solwayhq/accounts/pkg/slogx"
)

type LoginHandler struct {
	LoginService *service.LoginService

	// CookieTTL matches the validity window of the issued token.
	CookieTTL time.Duration
}

// ServeHTTP handles the login endpoint.
//
//	@Summary		Authenticate with email and password
//	@Description	Issues a session token on success, both in the response body
//	@Description	and as an http-only cookie for browser clients.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	loginResponse
//	@Failure		401	{object}	map[string]string	"Invalid credentials"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "malformed request body")
		return
	}

	result, err := h.LoginService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteMessage(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		log.Error("login failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// The token travels both ways: in the body for clients that replay it
	// as a bearer header, and as a cookie for clients that don't.
	httpx.SetSessionCookie(w, result.Token, h.CookieTTL)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		User:    result.User,
		Token:   result.Token,
		Message: "login successful",
	})
}

type LogoutHandler struct{}

// ServeHTTP handles the logout endpoint.
//
//	@Summary		Clear the session cookie
//	@Description	Overwrites the session cookie with an expired value. Bearer
//	@Description	tokens held by the client stay valid until they expire.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/api/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.ClearSessionCookie(w)
	httpx.WriteMessage(w, http.StatusOK, "logout successful")
}
