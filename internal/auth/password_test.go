package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("senha-secreta", 4)
	require.NoError(t, err)
	require.NotEqual(t, "senha-secreta", hash)

	require.True(t, ComparePassword(hash, "senha-secreta"))
	require.False(t, ComparePassword(hash, "senha-errada"))
	require.False(t, ComparePassword("", "senha-secreta"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("senha-secreta", 4)
	require.NoError(t, err)
	second, err := HashPassword("senha-secreta", 4)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
