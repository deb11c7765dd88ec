package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/apierror"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/mocks"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/password"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/repository/sqlite"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/testutil"
)

func newTestHasher(t *testing.T, cost int) *password.Bcrypt {
	t.Helper()
	hasher, err := password.NewBcrypt(cost)
	require.NoError(t, err)
	return hasher
}

func newTestAuth(t *testing.T, userStore model.UserStore, hasher model.PasswordHasher, manager model.TokenManager) *Auth {
	t.Helper()
	log := testutil.MakeNoopLogger()
	a, err := NewAuth(userStore, hasher, NewTokenService(manager, log), log)
	require.NoError(t, err)
	return a
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	apiErr, ok := apierror.As(err)
	require.True(t, ok, "expected APIError, got %v", err)
	assert.Equal(t, status, apiErr.HTTPStatus)
	assert.Equal(t, code, apiErr.Code)
}

func TestNewAuth_HashError(t *testing.T) {
	hasher := mocks.NewPasswordHasher(t)
	hasher.On("Hash", mock.Anything).Return("", assert.AnError).Once()

	_, err := NewAuth(mocks.NewUserStore(t), hasher, nil, testutil.MakeNoopLogger())
	require.ErrorIs(t, err, assert.AnError)
}

func TestAuth_Register_Success(t *testing.T) {
	ctx := context.Background()
	hasher := newTestHasher(t, bcrypt.MinCost)
	userStore := mocks.NewUserStore(t)

	var stored model.User
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(model.User{}, model.ErrNotFound).Once()
	userStore.On("Create", mock.Anything, mock.AnythingOfType("model.User")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(model.User) }).
		Return(func(_ context.Context, u model.User) model.User { return u }, nil).Once()

	a := newTestAuth(t, userStore, hasher, mocks.NewTokenManager(t))

	id, err := a.Register(ctx, " a@b.c ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, id)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, "a@b.c", stored.Email)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	require.NoError(t, hasher.Compare(stored.PasswordHash, "secret1"))
}

func TestAuth_Register_SetsTimestamps(t *testing.T) {
	userStore := mocks.NewUserStore(t)
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(model.User{}, model.ErrNotFound).Once()
	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.CreatedAt.Equal(fixedNow) && u.UpdatedAt.Equal(fixedNow)
	})).Return(func(_ context.Context, u model.User) model.User { return u }, nil).Once()

	a := newTestAuth(t, userStore, newTestHasher(t, bcrypt.MinCost), mocks.NewTokenManager(t))
	a.now = func() time.Time { return fixedNow }

	_, err := a.Register(context.Background(), "a@b.c", "secret1")
	require.NoError(t, err)
}

func TestAuth_Register_PersistsCreationTime(t *testing.T) {
	ctx := context.Background()
	log := testutil.MakeNoopLogger()

	conn, err := sqlite.NewConnection(ctx, ":memory:", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	users := sqlite.NewUserRepository(conn)

	a := newTestAuth(t, users, newTestHasher(t, bcrypt.MinCost), mocks.NewTokenManager(t))

	before := time.Now()
	id, err := a.Register(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	user, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.WithinDuration(t, before, user.CreatedAt, time.Minute)
	assert.WithinDuration(t, before, user.UpdatedAt, time.Minute)
}

func TestAuth_Register_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: "", password: "secret1"},
		{name: "malformed email", email: "not-an-email", password: "secret1"},
		{name: "display name form", email: "Bob <bob@example.com>", password: "secret1"},
		{name: "short password", email: "a@b.c", password: "12345"},
		{name: "long password", email: "a@b.c", password: strings.Repeat("x", password.MaxLength+1)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := newTestAuth(t, mocks.NewUserStore(t), newTestHasher(t, bcrypt.MinCost), mocks.NewTokenManager(t))

			_, err := a.Register(context.Background(), tt.email, tt.password)
			requireAPIError(t, err, http.StatusBadRequest, apierror.CodeValidation)
		})
	}
}

func TestAuth_Register_ExistingUser(t *testing.T) {
	userStore := mocks.NewUserStore(t)
	userStore.On("GetByEmail", mock.Anything, "existing@user.com").Return(model.User{ID: uuid.New()}, nil).Once()

	a := newTestAuth(t, userStore, newTestHasher(t, bcrypt.MinCost), mocks.NewTokenManager(t))

	_, err := a.Register(context.Background(), "existing@user.com", "secret1")
	requireAPIError(t, err, http.StatusBadRequest, apierror.CodeDuplicateEmail)
	assert.Contains(t, err.Error(), "already taken")
}

func TestAuth_Register_UniqueViolationRace(t *testing.T) {
	userStore := mocks.NewUserStore(t)
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(model.User{}, model.ErrNotFound).Once()
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrDuplicateEmail).Once()

	a := newTestAuth(t, userStore, newTestHasher(t, bcrypt.MinCost), mocks.NewTokenManager(t))

	_, err := a.Register(context.Background(), "a@b.c", "secret1")
	requireAPIError(t, err, http.StatusBadRequest, apierror.CodeDuplicateEmail)
}

func TestAuth_Register_StoreError(t *testing.T) {
	userStore := mocks.NewUserStore(t)
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(model.User{}, assert.AnError).Once()

	a := newTestAuth(t, userStore, newTestHasher(t, bcrypt.MinCost), mocks.NewTokenManager(t))

	_, err := a.Register(context.Background(), "a@b.c", "secret1")
	require.ErrorIs(t, err, assert.AnError)
	_, isAPI := apierror.As(err)
	assert.False(t, isAPI)
}

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	hasher := newTestHasher(t, bcrypt.MinCost)
	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	user := model.User{ID: uuid.New(), Email: "a@b.c", PasswordHash: hash}
	expiresAt := time.Now().Add(7 * 24 * time.Hour)

	userStore := mocks.NewUserStore(t)
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(user, nil).Once()
	manager := mocks.NewTokenManager(t)
	manager.On("Generate", user.ID).Return("jwt", expiresAt, nil).Once()

	a := newTestAuth(t, userStore, hasher, manager)

	token, err := a.Login(ctx, "a@b.c", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "jwt", token.Token)
	assert.Equal(t, expiresAt, token.ExpiresAt)
}

func TestAuth_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher(t, bcrypt.MinCost)
	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		user     model.User
		storeErr error
		password string
	}{
		{name: "unknown email", storeErr: model.ErrNotFound, password: "secret1"},
		{name: "wrong password", user: model.User{ID: uuid.New(), PasswordHash: hash}, password: "wrong-pass"},
	}

	var messages []string
	for _, tt := range tests {
		userStore := mocks.NewUserStore(t)
		userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(tt.user, tt.storeErr).Once()

		a := newTestAuth(t, userStore, hasher, mocks.NewTokenManager(t))

		_, err := a.Login(context.Background(), "a@b.c", tt.password)
		requireAPIError(t, err, http.StatusUnauthorized, apierror.CodeInvalidCredentials)
		messages = append(messages, err.Error())
	}

	assert.Equal(t, messages[0], messages[1])
}

func TestAuth_Login_UnknownEmailStillCompares(t *testing.T) {
	hasher := mocks.NewPasswordHasher(t)
	hasher.On("Hash", dummyPassword).Return("dummy-hash", nil).Once()
	hasher.On("Compare", "dummy-hash", "secret1").Return(model.ErrPasswordMismatch).Once()

	userStore := mocks.NewUserStore(t)
	userStore.On("GetByEmail", mock.Anything, "ghost@b.c").Return(model.User{}, model.ErrNotFound).Once()

	a := newTestAuth(t, userStore, hasher, mocks.NewTokenManager(t))

	_, err := a.Login(context.Background(), "ghost@b.c", "secret1")
	requireAPIError(t, err, http.StatusUnauthorized, apierror.CodeInvalidCredentials)
}

func TestAuth_Login_InvalidInput(t *testing.T) {
	a := newTestAuth(t, mocks.NewUserStore(t), newTestHasher(t, bcrypt.MinCost), mocks.NewTokenManager(t))

	_, err := a.Login(context.Background(), "", "secret1")
	requireAPIError(t, err, http.StatusBadRequest, apierror.CodeValidation)

	_, err = a.Login(context.Background(), "a@b.c", "")
	requireAPIError(t, err, http.StatusBadRequest, apierror.CodeValidation)

	_, err = a.Login(context.Background(), "not-an-email", "secret1")
	requireAPIError(t, err, http.StatusBadRequest, apierror.CodeValidation)
}

func TestAuth_Login_RehashesWeakHash(t *testing.T) {
	weak := newTestHasher(t, bcrypt.MinCost)
	hash, err := weak.Hash("secret1")
	require.NoError(t, err)

	strong := newTestHasher(t, bcrypt.MinCost+1)
	user := model.User{ID: uuid.New(), Email: "a@b.c", PasswordHash: hash}

	var rehashed string
	userStore := mocks.NewUserStore(t)
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(user, nil).Once()
	userStore.On("UpdatePasswordHash", mock.Anything, user.ID, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { rehashed = args.String(2) }).
		Return(nil).Once()
	manager := mocks.NewTokenManager(t)
	manager.On("Generate", user.ID).Return("jwt", time.Now(), nil).Once()

	a := newTestAuth(t, userStore, strong, manager)

	_, err = a.Login(context.Background(), "a@b.c", "secret1")
	require.NoError(t, err)
	assert.False(t, strong.NeedsRehash(rehashed))
	require.NoError(t, strong.Compare(rehashed, "secret1"))
}

func TestAuth_Login_RehashFailureDoesNotFailLogin(t *testing.T) {
	weak := newTestHasher(t, bcrypt.MinCost)
	hash, err := weak.Hash("secret1")
	require.NoError(t, err)

	user := model.User{ID: uuid.New(), Email: "a@b.c", PasswordHash: hash}

	userStore := mocks.NewUserStore(t)
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(user, nil).Once()
	userStore.On("UpdatePasswordHash", mock.Anything, user.ID, mock.Anything).Return(assert.AnError).Once()
	manager := mocks.NewTokenManager(t)
	manager.On("Generate", user.ID).Return("jwt", time.Now(), nil).Once()

	a := newTestAuth(t, userStore, newTestHasher(t, bcrypt.MinCost+1), manager)

	token, err := a.Login(context.Background(), "a@b.c", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "jwt", token.Token)
}

func TestAuth_Login_TokenError(t *testing.T) {
	hasher := newTestHasher(t, bcrypt.MinCost)
	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	user := model.User{ID: uuid.New(), PasswordHash: hash}

	userStore := mocks.NewUserStore(t)
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(user, nil).Once()
	manager := mocks.NewTokenManager(t)
	manager.On("Generate", user.ID).Return("", time.Time{}, assert.AnError).Once()

	a := newTestAuth(t, userStore, hasher, manager)

	_, err = a.Login(context.Background(), "a@b.c", "secret1")
	require.ErrorIs(t, err, assert.AnError)
}
