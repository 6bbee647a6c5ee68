package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// El id (p_ + timestamp) lo genera el store al crear.
type ProductRepository interface {
	Create(product *entity.Product) (*entity.Product, error)
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(id string, partial entity.Record) (*entity.Product, error)
	Delete(id string) error
}
