package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/api/http/response"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/apierror"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/logger"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (uuid.UUID, error)
	Login(ctx context.Context, email, password string) (model.AccessToken, error)
}

// Auth handles the /auth endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register creates an account. Responds 201 with the new user ID.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	data := &CredentialsRequest{}
	if err := render.Bind(r, data); err != nil {
		response.Error(w, r, h.logger, apierror.NewErrInvalidRequestBody(err))
		return
	}

	h.logger.DebugContext(r.Context(), "Auth handler: processing registration request",
		"email", data.Email)

	userID, err := h.authService.Register(r.Context(), data.Email, data.Password)
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	h.render(w, r, &RegisterResponse{ID: userID, Message: "user registered"})
}

// Login exchanges credentials for a bearer token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	data := &CredentialsRequest{}
	if err := render.Bind(r, data); err != nil {
		response.Error(w, r, h.logger, apierror.NewErrInvalidRequestBody(err))
		return
	}

	h.logger.DebugContext(r.Context(), "Auth handler: processing login request",
		"email", data.Email)

	token, err := h.authService.Login(r.Context(), data.Email, data.Password)
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	h.render(w, r, &LoginResponse{Token: token.Token, ExpiresAt: token.ExpiresAt})
}

func (h *Auth) render(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		h.logger.ErrorContext(r.Context(), "Auth handler: failed to render response",
			"error", err.Error())
	}
}
