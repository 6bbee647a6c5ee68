package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(fields entity.Record) (*entity.Category, error)
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(id string, partial entity.Record) (*entity.Category, error)
	Delete(id string) error
}
