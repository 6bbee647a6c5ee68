package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// UserFilter filtro de listado legado (match exacto por userName y/o password).
type UserFilter struct {
	UserName string
	Password string
}

// UserRepository define el puerto de persistencia para User (DIP).
// Create acepta campos arbitrarios además de los tipados (el contenedor
// conserva lo que el caller envíe); el id lo genera el store.
type UserRepository interface {
	Create(fields entity.Record) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	GetByUserName(userName string) (*entity.User, error)
	List(filter UserFilter) ([]*entity.User, error)
	Update(id string, partial entity.Record) (*entity.User, error)
	Delete(id string) error
}
