package usecase

import (
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create inserta una categoría; el store exige name no vacío.
func (uc *CategoryUseCase) Create(fields entity.Record) (*entity.Category, error) {
	return uc.repo.Create(fields)
}

// GetByID obtiene una categoría; domain.ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*entity.Category, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() ([]*entity.Category, error) {
	return uc.repo.List()
}

// Update hace merge superficial de partial; domain.ErrNotFound si no existe.
func (uc *CategoryUseCase) Update(id string, partial entity.Record) (*entity.Category, error) {
	return uc.repo.Update(id, partial)
}

// Delete elimina la categoría; domain.ErrNotFound si no existe. Los
// productos que la referencian conservan su categoryId (sin integridad
// referencial en el store).
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
