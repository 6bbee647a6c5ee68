package cart

import "sync"

// Favorites conjunto local de ids de producto favoritos, persistido igual
// que el carrito pero bajo su propia clave (archivo independiente, sin
// versionado de esquema).
type Favorites struct {
	path string

	mu  sync.Mutex
	ids []string
}

// OpenFavorites carga los favoritos desde path; ausencia arranca vacío.
func OpenFavorites(path string) (*Favorites, error) {
	f := &Favorites{path: path}
	if err := loadLocal(path, &f.ids); err != nil {
		return nil, err
	}
	return f, nil
}

// Add añade el id si no está ya.
func (f *Favorites) Add(productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.contains(productID) {
		return nil
	}
	f.ids = append(f.ids, productID)
	return saveLocal(f.path, f.ids)
}

// Remove elimina el id si está.
func (f *Favorites) Remove(productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	filtered := f.ids[:0]
	for _, id := range f.ids {
		if id != productID {
			filtered = append(filtered, id)
		}
	}
	f.ids = filtered
	return saveLocal(f.path, f.ids)
}

// Toggle alterna la pertenencia del id.
func (f *Favorites) Toggle(productID string) error {
	f.mu.Lock()
	has := f.contains(productID)
	f.mu.Unlock()
	if has {
		return f.Remove(productID)
	}
	return f.Add(productID)
}

// IsFavorite indica si el id está marcado.
func (f *Favorites) IsFavorite(productID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contains(productID)
}

// IDs devuelve una copia de los ids marcados, en orden de alta.
func (f *Favorites) IDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.ids))
	copy(out, f.ids)
	return out
}

// Clear vacía el conjunto.
func (f *Favorites) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = nil
	return saveLocal(f.path, f.ids)
}

// contains requiere f.mu tomado.
func (f *Favorites) contains(productID string) bool {
	for _, id := range f.ids {
		if id == productID {
			return true
		}
	}
	return false
}
