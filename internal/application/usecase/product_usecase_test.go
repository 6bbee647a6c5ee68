package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/infrastructure/assets"
	"github.com/jhoicas/tienda-api/internal/infrastructure/filestore"
)

func newProductUseCase(t *testing.T) (*usecase.ProductUseCase, *assets.Manager) {
	t.Helper()
	store, err := filestore.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	mgr, err := assets.NewManager(t.TempDir())
	require.NoError(t, err)
	return usecase.NewProductUseCase(filestore.NewProductRepository(store), mgr), mgr
}

func pngUpload(name string) dto.ImageUpload {
	return dto.ImageUpload{Data: []byte("png:" + name), Name: name, MimeType: "image/png"}
}

func TestProductCreate_ConImagenes(t *testing.T) {
	uc, mgr := newProductUseCase(t)

	created, err := uc.Create(dto.CreateProductRequest{
		Name:       "Teclado",
		CategoryID: 2,
		Price:      49.9,
		Quantity:   10,
		Images:     []dto.ImageUpload{pngUpload("frente.png"), pngUpload("lado.png")},
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID)
	require.Len(t, created.Images, 2)
	for _, ref := range created.Images {
		assert.True(t, mgr.Exists(ref), "cada referencia del registro apunta a un archivo existente")
	}
	assert.False(t, created.CreatedAt.IsZero())
}

func TestProductCreate_CamposRequeridos(t *testing.T) {
	uc, _ := newProductUseCase(t)

	_, err := uc.Create(dto.CreateProductRequest{CategoryID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "name es obligatorio")

	_, err = uc.Create(dto.CreateProductRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "categoryId es obligatorio")
}

func TestProductCreate_MimeInvalidoNoDejaRastro(t *testing.T) {
	uc, mgr := newProductUseCase(t)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:       "Mouse",
		CategoryID: 1,
		Images: []dto.ImageUpload{
			pngUpload("ok.png"),
			{Data: []byte("texto"), Name: "malo.txt", MimeType: "text/plain"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)

	// Ni registro ni archivos: la imagen válida escrita antes del rechazo se limpia
	list, listErr := uc.List()
	require.NoError(t, listErr)
	assert.Empty(t, list)
	removed, sweepErr := mgr.Sweep(nil)
	require.NoError(t, sweepErr)
	assert.Empty(t, removed, "el directorio de uploads queda vacío tras el rechazo")
}

func TestProductUpdate_RetenidasMasNuevas(t *testing.T) {
	uc, mgr := newProductUseCase(t)

	created, err := uc.Create(dto.CreateProductRequest{
		Name:       "Monitor",
		CategoryID: 3,
		Images:     []dto.ImageUpload{pngUpload("a.png"), pngUpload("b.png")},
	})
	require.NoError(t, err)

	retained := created.Images[:1]
	dropped := created.Images[1]

	updated, err := uc.Update(created.ID, dto.UpdateProductRequest{
		RetainedImages: retained,
		NewImages:      []dto.ImageUpload{pngUpload("c.png")},
	})
	require.NoError(t, err)

	require.Len(t, updated.Images, 2, "images = retenidas ++ nuevas")
	assert.Equal(t, retained[0], updated.Images[0])
	assert.NotEqual(t, dropped, updated.Images[1])

	// La dereferenciada no se borra en línea; la recoge el sweep
	assert.True(t, mgr.Exists(dropped), "el archivo dereferenciado sigue en disco tras el update")

	removed, err := uc.SweepAssets()
	require.NoError(t, err)
	assert.Equal(t, []string{dropped}, removed)
	assert.False(t, mgr.Exists(dropped))
	assert.True(t, mgr.Exists(updated.Images[0]))
	assert.True(t, mgr.Exists(updated.Images[1]))
}

func TestProductUpdate_ParcialSinImagenes(t *testing.T) {
	uc, _ := newProductUseCase(t)

	created, err := uc.Create(dto.CreateProductRequest{
		Name:       "Silla",
		CategoryID: 4,
		Price:      100,
		Quantity:   5,
		Images:     []dto.ImageUpload{pngUpload("silla.png")},
	})
	require.NoError(t, err)

	newQty := 8
	updated, err := uc.Update(created.ID, dto.UpdateProductRequest{Quantity: &newQty})
	require.NoError(t, err)

	assert.Equal(t, 8, updated.Quantity)
	assert.Equal(t, "Silla", updated.Name, "los campos no enviados se conservan")
	assert.Equal(t, created.Images, updated.Images, "sin campos de imagen, el conjunto no cambia")
	assert.False(t, updated.UpdatedAt.IsZero(), "el update sella updatedAt")
}

func TestProductUpdate_NoEncontradoLimpiaNuevas(t *testing.T) {
	uc, mgr := newProductUseCase(t)

	_, err := uc.Update("p_inexistente", dto.UpdateProductRequest{
		NewImages: []dto.ImageUpload{pngUpload("perdida.png")},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	removed, sweepErr := mgr.Sweep(nil)
	require.NoError(t, sweepErr)
	assert.Empty(t, removed, "las imágenes escritas para un update fallido se limpian")
}

func TestProductDelete_BorraRegistroYArchivos(t *testing.T) {
	uc, mgr := newProductUseCase(t)

	created, err := uc.Create(dto.CreateProductRequest{
		Name:       "Lámpara",
		CategoryID: 5,
		Images:     []dto.ImageUpload{pngUpload("luz.png")},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, mgr.Exists(created.Images[0]), "las imágenes del producto borrado se eliminan")

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}

func TestProductCreate_QuantityNegativa(t *testing.T) {
	uc, _ := newProductUseCase(t)

	_, err := uc.Create(dto.CreateProductRequest{Name: "Mal", CategoryID: 1, Quantity: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_DiscountRecortado(t *testing.T) {
	uc, _ := newProductUseCase(t)

	created, err := uc.Create(dto.CreateProductRequest{Name: "Oferta", CategoryID: 1, Discount: 250})
	require.NoError(t, err)
	assert.Equal(t, float64(100), created.Discount, "el contrato de escritura recorta discount a [0,100]")
}
