package filestore

import (
	"errors"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre el contenedor.
type CategoryRepo struct {
	store *Store
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(store *Store) *CategoryRepo {
	return &CategoryRepo{store: store}
}

// Create inserta una categoría; el store exige name no vacío.
func (r *CategoryRepo) Create(fields entity.Record) (*entity.Category, error) {
	rec := fields.Clone()
	delete(rec, "id")
	inserted, err := r.store.Insert(CollectionCategories, rec)
	if err != nil {
		return nil, err
	}
	var c entity.Category
	if err := fromRecord(inserted, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID obtiene una categoría por id; nil si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	rec, err := r.store.FindByID(CollectionCategories, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var c entity.Category
	if err := fromRecord(rec, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// List lista todas las categorías en orden de inserción.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	records, err := r.store.List(CollectionCategories, nil)
	if err != nil {
		return nil, err
	}
	categories := make([]*entity.Category, 0, len(records))
	for _, rec := range records {
		var c entity.Category
		if err := fromRecord(rec, &c); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, nil
}

// Update hace merge superficial de partial; domain.ErrNotFound si no existe.
func (r *CategoryRepo) Update(id string, partial entity.Record) (*entity.Category, error) {
	rec, err := r.store.Update(CollectionCategories, id, partial)
	if err != nil {
		return nil, err
	}
	var c entity.Category
	if err := fromRecord(rec, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete elimina la categoría; domain.ErrNotFound si no existe.
func (r *CategoryRepo) Delete(id string) error {
	return r.store.Delete(CollectionCategories, id)
}
