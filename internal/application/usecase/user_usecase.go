package usecase

import (
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios. El registro con emisión de
// token vive en el paquete auth; esto cubre la administración directa de la
// colección, incluida la ruta de lookup legada por userName/password.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create inserta un usuario con los campos dados (esquema abierto, como el
// resto del contenedor).
func (uc *UserUseCase) Create(fields entity.Record) (*entity.User, error) {
	return uc.repo.Create(fields)
}

// GetByID obtiene un usuario; domain.ErrNotFound si no existe.
func (uc *UserUseCase) GetByID(id string) (*entity.User, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// List lista usuarios con filtro opcional de match exacto.
func (uc *UserUseCase) List(filter repository.UserFilter) ([]*entity.User, error) {
	return uc.repo.List(filter)
}

// Update hace merge superficial de partial; domain.ErrNotFound si no existe.
func (uc *UserUseCase) Update(id string, partial entity.Record) (*entity.User, error) {
	return uc.repo.Update(id, partial)
}

// Delete elimina el usuario; domain.ErrNotFound si no existe.
func (uc *UserUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
