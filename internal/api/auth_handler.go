package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/middleware"
	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService auth.Service
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService auth.Service, log *slog.Logger) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		authService: authService,
		logger:      log.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !bindRequest(w, r, &req) {
		return
	}

	user, token, err := h.authService.Register(r.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		HandleAPIError(w, r, err, "register")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		Message: MsgRegistered,
		User:    userToResponse(user),
		Token:   token,
	})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !bindRequest(w, r, &req) {
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "login")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}

// Logout handles POST /api/logout. Only the token that authenticated the
// request is revoked; other sessions of the same user stay valid.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, middleware.MsgUnauthenticated)
		return
	}

	if err := h.authService.Logout(r.Context(), principal.TokenID); err != nil {
		HandleAPIError(w, r, err, "logout")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("user logged out",
		slog.Int64("user_id", principal.UserID),
		slog.String("token_id", principal.TokenID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: MsgLoggedOut})
}
