package usecase

import (
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// FavoriteUseCase casos de uso para favoritos del lado servidor: registros
// de asociación userId/productId. El agregado local del cliente (paquete
// client/cart) duplica este concepto de forma independiente.
type FavoriteUseCase struct {
	repo repository.RecordRepository
}

// NewFavoriteUseCase construye el caso de uso.
func NewFavoriteUseCase(repo repository.RecordRepository) *FavoriteUseCase {
	return &FavoriteUseCase{repo: repo}
}

// Create inserta una asociación de favorito.
func (uc *FavoriteUseCase) Create(fields entity.Record) (entity.Record, error) {
	return uc.repo.Create(fields)
}

// List lista favoritos; con userID no vacío filtra por usuario.
func (uc *FavoriteUseCase) List(userID string) ([]entity.Record, error) {
	if userID == "" {
		return uc.repo.List(nil)
	}
	return uc.repo.List(func(rec entity.Record) bool {
		return fieldAsString(rec["userId"]) == userID
	})
}

// Delete elimina la asociación; domain.ErrNotFound si no existe.
func (uc *FavoriteUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
