package api

import (
	"errors"
	"net"
	"net/http"

	"github.com/go-chi/jwtauth"
	"github.com/tendant/campus-content/pkg/campus"
	"github.com/tendant/campus-content/pkg/campus/auth"
)

type loginRequest struct {
	Username *string `json:"username" validate:"required,notblank"`
	Password *string `json:"password" validate:"required"`
}

// LoginResponse is returned by a successful login. Token is empty when no
// token issuer is configured.
type LoginResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	User    *auth.User `json:"user"`
	Token   string     `json:"token,omitempty"`
}

type lockoutResponse struct {
	Message    string `json:"message"`
	RetryAfter int    `json:"retryAfter"`
}

type logoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	client := clientKey(r)
	if !h.limiter.Allow(client) {
		writeJSON(w, r, http.StatusTooManyRequests, lockoutResponse{
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: int(h.limiter.Window().Seconds()),
		})
		return
	}

	var req loginRequest
	if err := h.decodeCredentials(w, r, &req); err != nil {
		var verr *campus.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Message: "Username and password are required", Errors: verr.Fields})
			return
		}
		logError(r, "Authentication failed", err)
		writeMessage(w, r, http.StatusInternalServerError, "Authentication failed")
		return
	}

	if h.authn == nil {
		h.limiter.Record(client, false)
		writeMessage(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user, err := h.authn.Authenticate(r.Context(), *req.Username, *req.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			logError(r, "Authentication failed", err)
		}
		h.limiter.Record(client, false)
		writeMessage(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	h.limiter.Record(client, true)

	resp := LoginResponse{Success: true, Message: "Login successful", User: user}
	if h.tokens != nil {
		token, err := h.tokens.Issue(user)
		if err != nil {
			logError(r, "Failed to issue token", err)
			writeMessage(w, r, http.StatusInternalServerError, "Authentication failed")
			return
		}
		resp.Token = token
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// logout holds no server state; clients drop their token.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, logoutResponse{Success: true, Message: "Logout successful"})
}

// writeGuard returns the middleware applied to content writes.
func (h *Handler) writeGuard() func(http.Handler) http.Handler {
	if !h.requireAuth {
		return func(next http.Handler) http.Handler { return next }
	}
	if h.tokens == nil {
		return func(http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeMessage(w, r, http.StatusUnauthorized, "Authentication required")
			})
		}
	}
	verifier := jwtauth.Verifier(h.tokens.JWTAuth())
	return func(next http.Handler) http.Handler {
		return verifier(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				writeMessage(w, r, http.StatusUnauthorized, "Authentication required")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

// clientKey identifies the caller for login limiting. RemoteAddr has already
// been rewritten by middleware.RealIP when the server runs behind a proxy.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
