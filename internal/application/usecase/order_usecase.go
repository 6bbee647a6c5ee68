package usecase

import (
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// OrderUseCase casos de uso para pedidos. El payload (items, cliente, pago)
// es opaco para el store; no se valida su esquema.
type OrderUseCase struct {
	repo repository.RecordRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.RecordRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create inserta un pedido con el payload dado.
func (uc *OrderUseCase) Create(fields entity.Record) (entity.Record, error) {
	return uc.repo.Create(fields)
}

// GetByID devuelve el pedido o domain.ErrNotFound.
func (uc *OrderUseCase) GetByID(id string) (entity.Record, error) {
	return uc.repo.GetByID(id)
}

// List lista todos los pedidos en orden de inserción.
func (uc *OrderUseCase) List() ([]entity.Record, error) {
	return uc.repo.List(nil)
}

// Update hace merge superficial de partial (ej. cambio de estado);
// domain.ErrNotFound si no existe.
func (uc *OrderUseCase) Update(id string, partial entity.Record) (entity.Record, error) {
	return uc.repo.Update(id, partial)
}
