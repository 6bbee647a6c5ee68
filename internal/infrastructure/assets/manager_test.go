package assets_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/infrastructure/assets"
)

func newTestManager(t *testing.T) (*assets.Manager, string) {
	t.Helper()
	root := t.TempDir()
	mgr, err := assets.NewManager(root)
	require.NoError(t, err)
	return mgr, root
}

func TestStore_EscribeYDevuelveReferenciaPublica(t *testing.T) {
	mgr, root := newTestManager(t)

	ref, err := mgr.Store([]byte("png-bytes"), "foto producto.png", "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, assets.PublicPrefix+"/"), "la referencia vive bajo /uploads/")
	assert.Contains(t, ref, "foto_producto.png", "el nombre original sobrevive saneado")

	name := strings.TrimPrefix(ref, assets.PublicPrefix+"/")
	data, err := os.ReadFile(filepath.Join(root, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.True(t, mgr.Exists(ref))
}

func TestStore_RechazaMimeNoImagenSinEscribir(t *testing.T) {
	mgr, root := newTestManager(t)

	_, err := mgr.Store([]byte("hola"), "nota.txt", "text/plain")
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)

	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "un mime rechazado no deja ningún archivo")
}

func TestStore_NombresUnicosBajoColision(t *testing.T) {
	mgr, _ := newTestManager(t)

	refs := make(map[string]bool)
	for i := 0; i < 10; i++ {
		ref, err := mgr.Store([]byte{byte(i)}, "misma.png", "image/png")
		require.NoError(t, err)
		assert.False(t, refs[ref], "cada Store genera un nombre distinto, incluso en el mismo milisegundo")
		refs[ref] = true
	}
}

func TestDelete_Idempotente(t *testing.T) {
	mgr, _ := newTestManager(t)

	ref, err := mgr.Store([]byte("x"), "a.jpg", "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, mgr.Delete(ref))
	assert.False(t, mgr.Exists(ref))

	assert.NoError(t, mgr.Delete(ref), "borrar una referencia ausente no es error")
	assert.NoError(t, mgr.Delete("/uploads/nunca-existio.png"))
}

func TestDelete_RechazaRutasQueEscapan(t *testing.T) {
	mgr, root := newTestManager(t)

	outside := filepath.Join(filepath.Dir(root), "fuera.txt")
	require.NoError(t, os.WriteFile(outside, []byte("no tocar"), 0o644))
	t.Cleanup(func() { os.Remove(outside) })

	require.NoError(t, mgr.Delete("/uploads/../fuera.txt"))
	_, err := os.Stat(outside)
	assert.NoError(t, err, "una referencia con traversal se ignora sin tocar el filesystem externo")
}

func TestSweep_BorraSoloHuerfanos(t *testing.T) {
	mgr, _ := newTestManager(t)

	kept, err := mgr.Store([]byte("k"), "kept.png", "image/png")
	require.NoError(t, err)
	orphan1, err := mgr.Store([]byte("o1"), "orphan1.png", "image/png")
	require.NoError(t, err)
	orphan2, err := mgr.Store([]byte("o2"), "orphan2.png", "image/png")
	require.NoError(t, err)

	removed, err := mgr.Sweep([]string{kept})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{orphan1, orphan2}, removed)
	assert.True(t, mgr.Exists(kept), "los referenciados sobreviven al sweep")
	assert.False(t, mgr.Exists(orphan1))
	assert.False(t, mgr.Exists(orphan2))
}

func TestSweep_DirectorioLimpio(t *testing.T) {
	mgr, _ := newTestManager(t)

	removed, err := mgr.Sweep(nil)
	require.NoError(t, err)
	assert.Empty(t, removed)
}
