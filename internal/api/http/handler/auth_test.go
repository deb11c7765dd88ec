package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/apierror"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/mocks"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/testutil"
)

func newAuthRouter(svc AuthService) http.Handler {
	h := NewAuth(svc, testutil.MakeNoopLogger())
	return newTestRouter(func(r chi.Router) {
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)
	})
}

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		setup      func(s *mocks.AuthService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: `{"email":"a@b.c","password":"secret1"}`,
			setup: func(s *mocks.AuthService) {
				s.On("Register", mock.Anything, "a@b.c", "secret1").Return(userID, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apierror.CodeInvalidRequestBody,
		},
		{
			name:       "empty body",
			wantStatus: http.StatusBadRequest,
			wantCode:   apierror.CodeInvalidRequestBody,
		},
		{
			name: "duplicate email",
			body: `{"email":"a@b.c","password":"secret1"}`,
			setup: func(s *mocks.AuthService) {
				s.On("Register", mock.Anything, "a@b.c", "secret1").Return(uuid.Nil, apierror.NewErrEmailIsTaken("a@b.c")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apierror.CodeDuplicateEmail,
		},
		{
			name: "unexpected failure",
			body: `{"email":"a@b.c","password":"secret1"}`,
			setup: func(s *mocks.AuthService) {
				s.On("Register", mock.Anything, "a@b.c", "secret1").Return(uuid.Nil, assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apierror.CodeInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			w := do(t, newAuthRouter(svc), http.MethodPost, "/auth/register", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode[errorBody](t, w).Code)
				return
			}
			got := decode[RegisterResponse](t, w)
			assert.Equal(t, userID, got.ID)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		svc.On("Login", mock.Anything, "a@b.c", "secret1").
			Return(model.AccessToken{Token: "jwt", ExpiresAt: expiresAt}, nil).Once()

		w := do(t, newAuthRouter(svc), http.MethodPost, "/auth/login", `{"email":"a@b.c","password":"secret1"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		got := decode[LoginResponse](t, w)
		assert.Equal(t, "jwt", got.Token)
		assert.True(t, expiresAt.Equal(got.ExpiresAt))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		svc.On("Login", mock.Anything, "a@b.c", "nope").
			Return(model.AccessToken{}, apierror.NewErrInvalidCredentials()).Once()

		w := do(t, newAuthRouter(svc), http.MethodPost, "/auth/login", `{"email":"a@b.c","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		got := decode[errorBody](t, w)
		assert.Equal(t, apierror.CodeInvalidCredentials, got.Code)
		assert.Equal(t, "invalid email or password", got.Message)
	})
}
