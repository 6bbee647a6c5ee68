package filestore

import (
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.RecordRepository = (*RecordRepo)(nil)

// RecordRepo adaptador genérico para colecciones de payload opaco
// (orders, reviews, favorites): el esquema no se valida, solo se persiste.
type RecordRepo struct {
	store      *Store
	collection string
}

// NewOrderRepository construye el adaptador para la colección orders.
func NewOrderRepository(store *Store) *RecordRepo {
	return &RecordRepo{store: store, collection: CollectionOrders}
}

// NewReviewRepository construye el adaptador para la colección reviews.
func NewReviewRepository(store *Store) *RecordRepo {
	return &RecordRepo{store: store, collection: CollectionReviews}
}

// NewFavoriteRepository construye el adaptador para la colección favorites.
func NewFavoriteRepository(store *Store) *RecordRepo {
	return &RecordRepo{store: store, collection: CollectionFavorites}
}

// Create inserta el payload tal cual; el store genera el id.
func (r *RecordRepo) Create(fields entity.Record) (entity.Record, error) {
	rec := fields.Clone()
	delete(rec, "id")
	return r.store.Insert(r.collection, rec)
}

// GetByID devuelve el registro o domain.ErrNotFound.
func (r *RecordRepo) GetByID(id string) (entity.Record, error) {
	return r.store.FindByID(r.collection, id)
}

// List devuelve los registros que cumplan el predicado (todos si es nil).
func (r *RecordRepo) List(predicate func(entity.Record) bool) ([]entity.Record, error) {
	return r.store.List(r.collection, predicate)
}

// Update hace merge superficial de partial; domain.ErrNotFound si no existe.
func (r *RecordRepo) Update(id string, partial entity.Record) (entity.Record, error) {
	return r.store.Update(r.collection, id, partial)
}

// Delete elimina el registro; domain.ErrNotFound si no existe.
func (r *RecordRepo) Delete(id string) error {
	return r.store.Delete(r.collection, id)
}
