package filestore

import (
	"errors"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el contenedor.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// Create inserta un usuario; el id lo genera el store. Campos no tipados del
// caller se conservan tal cual en el contenedor.
func (r *UserRepo) Create(fields entity.Record) (*entity.User, error) {
	rec := fields.Clone()
	delete(rec, "id")
	inserted, err := r.store.Insert(CollectionUsers, rec)
	if err != nil {
		return nil, err
	}
	var u entity.User
	if err := fromRecord(inserted, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID obtiene un usuario por id; nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	rec, err := r.store.FindByID(CollectionUsers, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var u entity.User
	if err := fromRecord(rec, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByUserName busca por userName con match exacto sensible a mayúsculas;
// nil si no existe.
func (r *UserRepo) GetByUserName(userName string) (*entity.User, error) {
	records, err := r.store.List(CollectionUsers, func(rec entity.Record) bool {
		s, _ := rec["userName"].(string)
		return s == userName
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	var u entity.User
	if err := fromRecord(records[0], &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// List lista usuarios, opcionalmente filtrados por match exacto de userName
// y/o password (ruta de lookup legada).
func (r *UserRepo) List(filter repository.UserFilter) ([]*entity.User, error) {
	records, err := r.store.List(CollectionUsers, func(rec entity.Record) bool {
		if filter.UserName != "" {
			if s, _ := rec["userName"].(string); s != filter.UserName {
				return false
			}
		}
		if filter.Password != "" {
			if s, _ := rec["password"].(string); s != filter.Password {
				return false
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	users := make([]*entity.User, 0, len(records))
	for _, rec := range records {
		var u entity.User
		if err := fromRecord(rec, &u); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, nil
}

// Update hace merge superficial de partial sobre el usuario; domain.ErrNotFound si no existe.
func (r *UserRepo) Update(id string, partial entity.Record) (*entity.User, error) {
	rec, err := r.store.Update(CollectionUsers, id, partial)
	if err != nil {
		return nil, err
	}
	var u entity.User
	if err := fromRecord(rec, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete elimina el usuario; domain.ErrNotFound si no existe.
func (r *UserRepo) Delete(id string) error {
	return r.store.Delete(CollectionUsers, id)
}
