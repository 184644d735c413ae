package logic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword(t *testing.T) {
	t.Run("ExactLength", func(t *testing.T) {
		for _, length := range []int{1, 8, 12, 64} {
			password, err := GeneratePassword(length)
			require.NoError(t, err)
			assert.Len(t, []rune(password), length)
		}
	})
	t.Run("ZeroLength", func(t *testing.T) {
		password, err := GeneratePassword(0)
		require.NoError(t, err)
		assert.Empty(t, password)
	})
	t.Run("OnlyClassCharacters", func(t *testing.T) {
		allowed := strings.Join(passwordClasses, "")
		password, err := GeneratePassword(256)
		require.NoError(t, err)
		for _, r := range password {
			assert.True(t, strings.ContainsRune(allowed, r), "unexpected character %q", r)
		}
	})
	t.Run("NonDeterministic", func(t *testing.T) {
		first, err := GeneratePassword(32)
		require.NoError(t, err)
		second, err := GeneratePassword(32)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}
