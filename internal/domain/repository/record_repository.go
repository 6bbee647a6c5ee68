package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// RecordRepository define el puerto de persistencia para colecciones de
// payload opaco (orders, reviews, favorites): el store no valida su esquema,
// solo genera el id y conserva los campos.
type RecordRepository interface {
	Create(fields entity.Record) (entity.Record, error)
	GetByID(id string) (entity.Record, error)
	List(predicate func(entity.Record) bool) ([]entity.Record, error)
	Update(id string, partial entity.Record) (entity.Record, error)
	Delete(id string) error
}
