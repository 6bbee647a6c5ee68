package filestore

import (
	"errors"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el contenedor.
type ProductRepo struct {
	store *Store
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

// Create inserta el producto; el store genera el id p_<timestamp> y aplica
// el contrato de escritura (quantity >= 0, discount en [0,100]).
func (r *ProductRepo) Create(product *entity.Product) (*entity.Product, error) {
	rec, err := toRecord(product)
	if err != nil {
		return nil, err
	}
	delete(rec, "id")
	inserted, err := r.store.Insert(CollectionProducts, rec)
	if err != nil {
		return nil, err
	}
	var p entity.Product
	if err := fromRecord(inserted, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID obtiene un producto por id; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	rec, err := r.store.FindByID(CollectionProducts, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var p entity.Product
	if err := fromRecord(rec, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List lista todos los productos en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	records, err := r.store.List(CollectionProducts, nil)
	if err != nil {
		return nil, err
	}
	products := make([]*entity.Product, 0, len(records))
	for _, rec := range records {
		var p entity.Product
		if err := fromRecord(rec, &p); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, nil
}

// Update hace merge superficial de partial sobre el producto; domain.ErrNotFound si no existe.
func (r *ProductRepo) Update(id string, partial entity.Record) (*entity.Product, error) {
	rec, err := r.store.Update(CollectionProducts, id, partial)
	if err != nil {
		return nil, err
	}
	var p entity.Product
	if err := fromRecord(rec, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete elimina el producto; domain.ErrNotFound si no existe. La limpieza
// de imágenes la coordina el caso de uso, no el repositorio.
func (r *ProductRepo) Delete(id string) error {
	return r.store.Delete(CollectionProducts, id)
}
