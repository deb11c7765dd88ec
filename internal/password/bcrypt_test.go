package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
)

func TestNewBcrypt(t *testing.T) {
	t.Parallel()

	_, err := NewBcrypt(bcrypt.MinCost - 1)
	require.Error(t, err)

	_, err = NewBcrypt(bcrypt.MaxCost + 1)
	require.Error(t, err)

	h, err := NewBcrypt(10)
	require.NoError(t, err)
	assert.Equal(t, 10, h.cost)
}

func TestBcrypt_HashCompare(t *testing.T) {
	t.Parallel()

	h := &Bcrypt{cost: bcrypt.MinCost}

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	other, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "hashes must be salted")

	require.NoError(t, h.Compare(hash, "secret1"))
	assert.ErrorIs(t, h.Compare(hash, "secret2"), model.ErrPasswordMismatch)

	err = h.Compare("not-a-hash", "secret1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrPasswordMismatch)
}

func TestBcrypt_TooLong(t *testing.T) {
	t.Parallel()

	h := &Bcrypt{cost: bcrypt.MinCost}
	_, err := h.Hash(strings.Repeat("a", MaxLength+1))
	require.Error(t, err)
}

func TestBcrypt_NeedsRehash(t *testing.T) {
	t.Parallel()

	weak := &Bcrypt{cost: bcrypt.MinCost}
	hash, err := weak.Hash("secret1")
	require.NoError(t, err)

	assert.False(t, weak.NeedsRehash(hash))
	assert.True(t, (&Bcrypt{cost: bcrypt.MinCost + 1}).NeedsRehash(hash))
	assert.False(t, weak.NeedsRehash("garbage"))
}
