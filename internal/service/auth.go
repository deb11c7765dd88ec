package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/apierror"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/logger"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/password"
)

const (
	minPasswordLength = 6
	maxPasswordLength = password.MaxLength
)

// dummyPassword is hashed once at startup so that logins for unknown emails
// still pay for one bcrypt comparison.
const dummyPassword = "knowledge-base-dummy-password"

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
	dummyHash    string
	now          func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) (*Auth, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}

	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
		dummyHash:    dummyHash,
		now:          func() time.Time { return time.Now().UTC() },
	}, nil
}

// Register creates a user and returns its ID.
func (a *Auth) Register(ctx context.Context, email, pass string) (uuid.UUID, error) {
	email = strings.TrimSpace(email)

	a.logger.DebugContext(ctx, "Auth service: starting user registration",
		"email", email)

	if err := validateEmail(email); err != nil {
		return uuid.Nil, err
	}
	if err := validatePassword(pass); err != nil {
		return uuid.Nil, err
	}

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.InfoContext(ctx, "Auth service: user already exists",
			"email", email)
		return uuid.Nil, apierror.NewErrEmailIsTaken(email)
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.ErrorContext(ctx, "Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return uuid.Nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(pass)
	if err != nil {
		a.logger.ErrorContext(ctx, "Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now()
	created, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, model.ErrDuplicateEmail) {
		a.logger.InfoContext(ctx, "Auth service: concurrent registration lost the race",
			"email", email)
		return uuid.Nil, apierror.NewErrEmailIsTaken(email)
	}
	if err != nil {
		a.logger.ErrorContext(ctx, "Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.InfoContext(ctx, "Auth service: user registered",
		"email", email,
		"user_id", created.ID)

	return created.ID, nil
}

// VerifyCredentials returns the ID of the user owning email if pass matches.
// Unknown emails and wrong passwords produce the same error.
func (a *Auth) VerifyCredentials(ctx context.Context, email, pass string) (uuid.UUID, error) {
	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		_ = a.hasher.Compare(a.dummyHash, pass)
		a.logger.InfoContext(ctx, "Auth service: login for unknown email",
			"email", email)
		return uuid.Nil, apierror.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.ErrorContext(ctx, "Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return uuid.Nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	err = a.hasher.Compare(user.PasswordHash, pass)
	if errors.Is(err, model.ErrPasswordMismatch) {
		a.logger.InfoContext(ctx, "Auth service: wrong password",
			"user_id", user.ID)
		return uuid.Nil, apierror.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.ErrorContext(ctx, "Auth service: failed to compare password",
			"user_id", user.ID,
			"error", err.Error())
		return uuid.Nil, fmt.Errorf("failed to compare password: %w", err)
	}

	if a.hasher.NeedsRehash(user.PasswordHash) {
		a.rehash(ctx, user.ID, pass)
	}

	return user.ID, nil
}

// Login verifies credentials and issues an access token.
func (a *Auth) Login(ctx context.Context, email, pass string) (model.AccessToken, error) {
	email = strings.TrimSpace(email)

	a.logger.DebugContext(ctx, "Auth service: starting user login",
		"email", email)

	if err := validateEmail(email); err != nil {
		return model.AccessToken{}, err
	}
	if pass == "" {
		return model.AccessToken{}, apierror.NewErrValidation("password is required")
	}

	userID, err := a.VerifyCredentials(ctx, email, pass)
	if err != nil {
		return model.AccessToken{}, err
	}

	token, err := a.tokenService.Issue(ctx, userID)
	if err != nil {
		return model.AccessToken{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.InfoContext(ctx, "Auth service: user logged in",
		"user_id", userID)

	return token, nil
}

func (a *Auth) rehash(ctx context.Context, userID uuid.UUID, pass string) {
	hash, err := a.hasher.Hash(pass)
	if err == nil {
		err = a.userStore.UpdatePasswordHash(ctx, userID, hash)
	}
	if err != nil {
		a.logger.WarnContext(ctx, "Auth service: failed to rehash password",
			"user_id", userID,
			"error", err.Error())
		return
	}

	a.logger.InfoContext(ctx, "Auth service: password rehashed",
		"user_id", userID)
}

func validateEmail(email string) error {
	if email == "" {
		return apierror.NewErrValidation("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return apierror.NewErrValidation("email %q is not a valid address", email)
	}
	return nil
}

func validatePassword(pass string) error {
	if len(pass) < minPasswordLength || len(pass) > maxPasswordLength {
		return apierror.NewErrValidation("password must be between %d and %d bytes long",
			minPasswordLength, maxPasswordLength)
	}
	return nil
}
