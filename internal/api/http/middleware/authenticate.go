package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/api/http/response"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/apierror"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/logger"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
)

const bearerScheme = "bearer"

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects the viewer into context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Required rejects requests without a valid bearer token.
func (m *Authenticate) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			response.Error(w, r, m.logger, apierror.NewErrMissingAuthorizationToken())
			return
		}

		viewer, err := m.authenticate(r.Context(), header)
		if err != nil {
			response.Error(w, r, m.logger, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetViewerToContext(r.Context(), viewer)))
	})
}

// Optional lets requests without an Authorization header through as
// anonymous. A header that is present must still carry a valid token.
func (m *Authenticate) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r.WithContext(m.contextManager.SetViewerToContext(r.Context(), model.Viewer{})))
			return
		}

		viewer, err := m.authenticate(r.Context(), header)
		if err != nil {
			response.Error(w, r, m.logger, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetViewerToContext(r.Context(), viewer)))
	})
}

func (m *Authenticate) authenticate(ctx context.Context, header string) (model.Viewer, error) {
	token, ok := parseBearer(header)
	if !ok {
		m.logger.DebugContext(ctx, "Authenticate middleware: malformed authorization header")
		return model.Viewer{}, apierror.NewErrInvalidAuthorizationToken()
	}

	userID, err := m.tokenService.GetUserID(ctx, token)
	if err != nil {
		if _, isAPI := apierror.As(err); isAPI {
			return model.Viewer{}, err
		}
		return model.Viewer{}, apierror.NewErrInvalidAuthorizationToken()
	}
	if userID == uuid.Nil {
		return model.Viewer{}, apierror.NewErrInvalidAuthorizationToken()
	}

	return model.NewViewer(userID), nil
}

func parseBearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
