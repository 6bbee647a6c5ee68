package usecase

import (
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// AssetStore puerto hacia el gestor de imágenes (escritura previa al
// registro, borrado best-effort, barrido de huérfanos).
type AssetStore interface {
	Store(data []byte, originalName, mimeType string) (string, error)
	Delete(ref string) error
	Sweep(referenced []string) ([]string, error)
}

// ProductUseCase casos de uso CRUD para productos, coordinando el asset
// manager: los archivos de imagen se escriben estrictamente antes de
// persistir el registro que los referencia, para no dejar referencias
// colgantes.
type ProductUseCase struct {
	repo   repository.ProductRepository
	assets AssetStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, assets AssetStore) *ProductUseCase {
	return &ProductUseCase{repo: repo, assets: assets}
}

// Create valida los campos requeridos, almacena las imágenes y persiste el
// producto. Si la persistencia falla, las imágenes recién escritas se
// limpian best-effort.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == 0 {
		return nil, domain.ErrInvalidInput
	}

	paths, err := uc.storeImages(in.Images)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:       in.Name,
		CategoryID: in.CategoryID,
		Price:      in.Price,
		Discount:   in.Discount,
		Quantity:   in.Quantity,
		Images:     paths,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := uc.repo.Create(product)
	if err != nil {
		for _, ref := range paths {
			_ = uc.assets.Delete(ref)
		}
		return nil, err
	}
	return toProductResponse(created), nil
}

// GetByID obtiene un producto por id; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista todos los productos en orden de inserción.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update actualiza parcialmente el producto. Cuando el caller suministra
// imágenes retenidas y/o nuevas, el campo images queda retained ++ nuevas;
// las imágenes previas omitidas del conjunto retenido quedan dereferenciadas
// pero sus archivos no se borran aquí (los recoge Sweep fuera de línea).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	newPaths, err := uc.storeImages(in.NewImages)
	if err != nil {
		return nil, err
	}

	partial := entity.Record{}
	if in.Name != nil {
		partial["name"] = *in.Name
	}
	if in.CategoryID != nil {
		partial["categoryId"] = *in.CategoryID
	}
	if in.Quantity != nil {
		partial["quantity"] = *in.Quantity
	}
	if in.Discount != nil {
		partial["discount"] = *in.Discount
	}
	if in.Price != nil {
		partial["price"] = *in.Price
	}
	if in.RetainedImages != nil || len(newPaths) > 0 {
		images := append(append([]string{}, in.RetainedImages...), newPaths...)
		partial["images"] = images
	}
	partial["updatedAt"] = time.Now().UTC().Format(time.RFC3339Nano)

	updated, err := uc.repo.Update(id, partial)
	if err != nil {
		for _, ref := range newPaths {
			_ = uc.assets.Delete(ref)
		}
		return nil, err
	}
	return toProductResponse(updated), nil
}

// Delete elimina el producto y pasa cada imagen referenciada al asset
// manager; el fallo al borrar un archivo individual no tumba el borrado del
// registro.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	for _, ref := range product.Images {
		_ = uc.assets.Delete(ref)
	}
	return nil
}

// SweepAssets recolecta los archivos de imagen no referenciados por ningún
// producto actual. Tarea de mantenimiento fuera del camino de escritura.
func (uc *ProductUseCase) SweepAssets() ([]string, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	var referenced []string
	for _, p := range list {
		referenced = append(referenced, p.Images...)
	}
	return uc.assets.Sweep(referenced)
}

// storeImages escribe cada archivo y devuelve sus referencias. Ante un
// rechazo o fallo, las ya escritas en esta tanda se limpian.
func (uc *ProductUseCase) storeImages(images []dto.ImageUpload) ([]string, error) {
	paths := make([]string, 0, len(images))
	for _, img := range images {
		ref, err := uc.assets.Store(img.Data, img.Name, img.MimeType)
		if err != nil {
			for _, prev := range paths {
				_ = uc.assets.Delete(prev)
			}
			return nil, err
		}
		paths = append(paths, ref)
	}
	return paths, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		Price:      p.Price,
		Discount:   p.Discount,
		Quantity:   p.Quantity,
		Images:     images,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
