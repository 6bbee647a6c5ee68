// Package filestore implementa el Document Store: un único contenedor JSON
// con las seis colecciones del sistema, cargado en memoria al abrir y
// reescrito de forma atómica en cada mutación.
//
// Contrato de concurrencia: las mutaciones se serializan con un lock a nivel
// de contenedor (todas hacen read-modify-write del contenedor completo); las
// lecturas pueden correr en paralelo y siempre observan el estado previo o
// posterior de una mutación en vuelo, nunca uno parcial.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// Colecciones del contenedor. Siempre están todas presentes, aun vacías.
const (
	CollectionUsers      = "users"
	CollectionProducts   = "products"
	CollectionCategories = "categories"
	CollectionOrders     = "orders"
	CollectionReviews    = "reviews"
	CollectionFavorites  = "favorites"
)

// Collections devuelve los nombres de las seis colecciones.
func Collections() []string {
	return []string{
		CollectionUsers, CollectionProducts, CollectionCategories,
		CollectionOrders, CollectionReviews, CollectionFavorites,
	}
}

// Snapshot es la representación en memoria del contenedor completo.
type Snapshot map[string][]entity.Record

// IDFunc genera un identificador para un insert en la colección dada.
type IDFunc func(collection string) string

// Store es el contenedor de colecciones respaldado por un archivo JSON.
// Instancia única por proceso, construida en el arranque e inyectada.
type Store struct {
	path string

	mu       sync.RWMutex
	data     Snapshot
	lastID   int64
	customID IDFunc
}

// Option configura el Store al abrirlo.
type Option func(*Store)

// WithIDFunc sustituye el generador de ids por defecto (prefijo + timestamp
// en milisegundos). Útil para callers que necesiten ids resistentes a
// colisiones (ej. uuid) o para tests deterministas.
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) { s.customID = fn }
}

// Open carga (o crea) el contenedor y devuelve el store listo para servir.
// Si el archivo falta, no se puede leer o su contenido está malformado, se
// reemplaza por un contenedor vacío bien formado y ese vacío se persiste:
// el contenido malformado nunca se reporta como error al caller.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: crear directorio del contenedor: %v", domain.ErrIO, err)
		}
	}

	snap, healed := readContainer(path)
	s.data = snap
	s.seedLastID()

	if healed {
		if err := s.persist(snap); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// readContainer lee el archivo y normaliza el snapshot. healed indica que el
// contenido fue reemplazado (faltante, ilegible o malformado) o completado
// con colecciones ausentes y debe re-persistirse.
func readContainer(path string) (Snapshot, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return emptySnapshot(), true
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil || snap == nil {
		return emptySnapshot(), true
	}
	healed := false
	for _, col := range Collections() {
		if snap[col] == nil {
			snap[col] = []entity.Record{}
			healed = true
		}
	}
	return snap, healed
}

func emptySnapshot() Snapshot {
	snap := make(Snapshot, len(Collections()))
	for _, col := range Collections() {
		snap[col] = []entity.Record{}
	}
	return snap
}

// seedLastID arranca el contador monótono por encima de cualquier id numérico
// ya presente, para no repetir ids tras reabrir el contenedor.
func (s *Store) seedLastID() {
	for _, col := range Collections() {
		for _, rec := range s.data[col] {
			if n, ok := trailingDigits(normalizeID(rec["id"])); ok && n > s.lastID {
				s.lastID = n
			}
		}
	}
}

// Load devuelve una copia del snapshot actual de todas las colecciones.
func (s *Store) Load() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSnapshot(s.data)
}

// Save reemplaza el contenedor completo por el snapshot dado, de forma
// atómica (archivo temporal + rename): ningún lector concurrente ve un
// archivo a medio escribir.
func (s *Store) Save(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := cloneSnapshot(snap)
	for _, col := range Collections() {
		if next[col] == nil {
			next[col] = []entity.Record{}
		}
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

// Insert genera un id fresco, valida el contrato de escritura de la
// colección, añade el registro al final (el orden de inserción es el orden
// de listado) y persiste. Devuelve el registro insertado.
func (s *Store) Insert(collection string, fields entity.Record) (entity.Record, error) {
	if !knownCollection(collection) {
		return nil, fmt.Errorf("%w: colección desconocida %q", domain.ErrInvalidInput, collection)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := fields.Clone()
	if rec == nil {
		rec = entity.Record{}
	}
	if err := validateWrite(collection, rec, true); err != nil {
		return nil, err
	}
	rec["id"] = s.nextID(collection)

	next := cloneSnapshot(s.data)
	next[collection] = append(next[collection], rec)
	if err := s.persist(next); err != nil {
		return nil, err
	}
	s.data = next
	return rec.Clone(), nil
}

// FindByID devuelve el registro o domain.ErrNotFound. La comparación de ids
// normaliza ambos lados a string: un id numérico y su forma string son
// iguales.
func (s *Store) FindByID(collection, id string) (entity.Record, error) {
	if !knownCollection(collection) {
		return nil, fmt.Errorf("%w: colección desconocida %q", domain.ErrInvalidInput, collection)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, rec := findRecord(s.data[collection], id); rec != nil {
		return rec.Clone(), nil
	}
	return nil, domain.ErrNotFound
}

// Update hace merge superficial de partial sobre el registro existente (los
// campos no presentes en partial se conservan), persiste y devuelve el
// registro resultante. El id nunca se sobreescribe.
func (s *Store) Update(collection, id string, partial entity.Record) (entity.Record, error) {
	if !knownCollection(collection) {
		return nil, fmt.Errorf("%w: colección desconocida %q", domain.ErrInvalidInput, collection)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, rec := findRecord(s.data[collection], id)
	if rec == nil {
		return nil, domain.ErrNotFound
	}

	merged := rec.Clone()
	for k, v := range partial.Clone() {
		if k == "id" {
			continue
		}
		merged[k] = v
	}
	if err := validateWrite(collection, merged, false); err != nil {
		return nil, err
	}

	next := cloneSnapshot(s.data)
	next[collection][idx] = merged
	if err := s.persist(next); err != nil {
		return nil, err
	}
	s.data = next
	return merged.Clone(), nil
}

// Delete elimina el registro y persiste; domain.ErrNotFound si no existe.
func (s *Store) Delete(collection, id string) error {
	if !knownCollection(collection) {
		return fmt.Errorf("%w: colección desconocida %q", domain.ErrInvalidInput, collection)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, rec := findRecord(s.data[collection], id)
	if rec == nil {
		return domain.ErrNotFound
	}

	next := cloneSnapshot(s.data)
	next[collection] = append(next[collection][:idx:idx], next[collection][idx+1:]...)
	if err := s.persist(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

// List devuelve todos los registros de la colección, o los que cumplan el
// predicado opcional, en orden de inserción.
func (s *Store) List(collection string, predicate func(entity.Record) bool) ([]entity.Record, error) {
	if !knownCollection(collection) {
		return nil, fmt.Errorf("%w: colección desconocida %q", domain.ErrInvalidInput, collection)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Record, 0, len(s.data[collection]))
	for _, rec := range s.data[collection] {
		if predicate == nil || predicate(rec) {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

// nextID genera el identificador: prefijo por colección + timestamp en
// milisegundos, con avance monótono bajo el lock del contenedor para que dos
// inserts en el mismo milisegundo no colisionen. Llamar con s.mu tomado.
func (s *Store) nextID(collection string) string {
	if s.customID != nil {
		return s.customID(collection)
	}
	millis := time.Now().UnixMilli()
	if millis <= s.lastID {
		millis = s.lastID + 1
	}
	s.lastID = millis
	return idPrefix(collection) + strconv.FormatInt(millis, 10)
}

func idPrefix(collection string) string {
	if collection == CollectionProducts {
		return "p_"
	}
	return ""
}

// persist escribe el snapshot completo en un archivo temporal del mismo
// directorio y lo renombra sobre el definitivo. Errores del medio se
// reportan como domain.ErrIO y no se reintentan.
func (s *Store) persist(snap Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: serializar contenedor: %v", domain.ErrIO, err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: crear archivo temporal: %v", domain.ErrIO, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: escribir contenedor: %v", domain.ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: cerrar archivo temporal: %v", domain.ErrIO, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: reemplazar contenedor: %v", domain.ErrIO, err)
	}
	return nil
}

// validateWrite aplica el contrato de escritura por colección: quantity
// nunca negativa y discount recortado a [0,100] en products; name no vacío
// en categories. insert distingue alta de merge.
func validateWrite(collection string, rec entity.Record, insert bool) error {
	switch collection {
	case CollectionProducts:
		if q, ok := numberField(rec, "quantity"); ok && q < 0 {
			return fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
		}
		if d, ok := numberField(rec, "discount"); ok {
			if d < 0 {
				rec["discount"] = float64(0)
			} else if d > 100 {
				rec["discount"] = float64(100)
			}
		}
	case CollectionCategories:
		name, present := rec["name"]
		if insert && !present {
			return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
		}
		if present {
			if s, ok := name.(string); !ok || s == "" {
				return fmt.Errorf("%w: name no puede ser vacío", domain.ErrInvalidInput)
			}
		}
	}
	return nil
}

func numberField(rec entity.Record, key string) (float64, bool) {
	switch v := rec[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func findRecord(records []entity.Record, id string) (int, entity.Record) {
	want := normalizeID(id)
	for i, rec := range records {
		if normalizeID(rec["id"]) == want {
			return i, rec
		}
	}
	return -1, nil
}

// normalizeID lleva cualquier forma de id (string, número JSON) a string
// para que "123" y 123 comparen iguales.
func normalizeID(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// trailingDigits extrae la corrida final de dígitos de un id ("p_17000") → 17000.
func trailingDigits(id string) (int64, bool) {
	end := len(id)
	start := end
	for start > 0 && id[start-1] >= '0' && id[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	n, err := strconv.ParseInt(id[start:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func knownCollection(name string) bool {
	for _, col := range Collections() {
		if col == name {
			return true
		}
	}
	return false
}

func cloneSnapshot(snap Snapshot) Snapshot {
	out := make(Snapshot, len(snap))
	for col, records := range snap {
		cp := make([]entity.Record, len(records))
		for i, rec := range records {
			cp[i] = rec.Clone()
		}
		out[col] = cp
	}
	return out
}
