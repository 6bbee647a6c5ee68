package cart_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/client/cart"
)

func newTestFavorites(t *testing.T) (*cart.Favorites, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "favorites.json")
	f, err := cart.OpenFavorites(path)
	require.NoError(t, err)
	return f, path
}

func TestFavorites_AddEsIdempotente(t *testing.T) {
	f, _ := newTestFavorites(t)

	require.NoError(t, f.Add("p_1"))
	require.NoError(t, f.Add("p_1"))
	require.NoError(t, f.Add("p_2"))

	assert.Equal(t, []string{"p_1", "p_2"}, f.IDs(), "añadir un id ya presente no duplica")
	assert.True(t, f.IsFavorite("p_1"))
	assert.False(t, f.IsFavorite("p_3"))
}

func TestFavorites_Toggle(t *testing.T) {
	f, _ := newTestFavorites(t)

	require.NoError(t, f.Toggle("p_1"))
	assert.True(t, f.IsFavorite("p_1"))

	require.NoError(t, f.Toggle("p_1"))
	assert.False(t, f.IsFavorite("p_1"), "el segundo toggle quita la marca")
	assert.Empty(t, f.IDs())
}

func TestFavorites_RemoveYClear(t *testing.T) {
	f, _ := newTestFavorites(t)

	require.NoError(t, f.Add("p_1"))
	require.NoError(t, f.Add("p_2"))

	require.NoError(t, f.Remove("p_1"))
	assert.Equal(t, []string{"p_2"}, f.IDs())

	require.NoError(t, f.Remove("p_ausente"), "quitar un id no marcado es no-op")

	require.NoError(t, f.Clear())
	assert.Empty(t, f.IDs())
}

func TestFavorites_PersisteEntreAperturas(t *testing.T) {
	f, path := newTestFavorites(t)

	require.NoError(t, f.Add("p_1"))
	require.NoError(t, f.Add("p_2"))

	reopened, err := cart.OpenFavorites(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"p_1", "p_2"}, reopened.IDs(), "el conjunto sobrevive a la reapertura")
}
