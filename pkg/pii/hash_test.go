package pii

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	t.Run("deterministic for same input", func(t *testing.T) {
		first, err := Hash("user@example.com")
		require.NoError(t, err)

		second, err := Hash("user@example.com")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, first, 64)
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		plain, err := Hash("user@example.com")
		require.NoError(t, err)

		messy, err := Hash("  User@Example.COM ")
		require.NoError(t, err)

		assert.Equal(t, plain, messy)
	})

	t.Run("different inputs produce different digests", func(t *testing.T) {
		first, err := Hash("user@example.com")
		require.NoError(t, err)

		second, err := Hash("other@example.com")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("known digest", func(t *testing.T) {
		// sha256("a@b.com")
		digest, err := Hash("a@b.com")
		require.NoError(t, err)
		assert.Equal(t, "fb98d44ad7501a959f3f4f4a3f004fe2d9e581ea6207e218c4b02c08a4d75adf", digest)
	})

	t.Run("empty value is an error", func(t *testing.T) {
		_, err := Hash("   ")
		require.Error(t, err)
	})
}

func TestHashOptional(t *testing.T) {
	t.Run("absent value is skipped", func(t *testing.T) {
		hashed, err := HashOptional("")
		require.NoError(t, err)
		assert.Nil(t, hashed)
	})

	t.Run("present value is hashed", func(t *testing.T) {
		hashed, err := HashOptional("+55 11 99999-0000")
		require.NoError(t, err)
		require.NotNil(t, hashed)
		assert.Len(t, *hashed, 64)
	})
}
