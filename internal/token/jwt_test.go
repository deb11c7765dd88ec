package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret", 0)
	u := uuid.New()

	tok, expiresAt, err := j.Generate(u)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultTTL), expiresAt, time.Minute)

	got, err := j.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_Claims(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	u := uuid.New()

	tok, _, err := j.Generate(u)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)

	assert.Equal(t, u, claims.UserID)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWT_Parse_Errors(t *testing.T) {
	u := uuid.New()
	valid := NewJWT("secret", time.Hour)

	expired := NewJWT("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, _, err := expired.Generate(u)
	require.NoError(t, err)

	otherKeyToken, _, err := NewJWT("other", time.Hour).Generate(u)
	require.NoError(t, err)

	nilUserToken, _, err := valid.Generate(uuid.Nil)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           u,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiryToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: u}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expiredToken, wantErr: model.ErrTokenExpired},
		{name: "wrong key", token: otherKeyToken, wantErr: model.ErrTokenInvalid},
		{name: "garbage", token: "not-a-token", wantErr: model.ErrTokenInvalid},
		{name: "empty", token: "", wantErr: model.ErrTokenInvalid},
		{name: "nil user id", token: nilUserToken, wantErr: model.ErrTokenInvalid},
		{name: "none algorithm", token: noneToken, wantErr: model.ErrTokenInvalid},
		{name: "missing expiry", token: noExpiryToken, wantErr: model.ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := valid.Parse(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, uuid.Nil, got)
		})
	}
}
