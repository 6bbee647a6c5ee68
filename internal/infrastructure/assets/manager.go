// Package assets gestiona el ciclo de vida de las imágenes referenciadas por
// los productos: nombre único, escritura en el directorio de uploads,
// borrado idempotente y recolección de huérfanos fuera de línea.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/tienda-api/internal/domain"
)

// PublicPrefix es la raíz pública bajo la que se sirven las referencias.
const PublicPrefix = "/uploads"

// Manager escribe y borra archivos de imagen en un directorio plano.
// Los registros referencian los archivos por ruta relativa a la raíz
// pública (/uploads/<nombre-generado>).
type Manager struct {
	root string
}

// NewManager crea el directorio de assets si no existe y devuelve el manager.
func NewManager(root string) (*Manager, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("%w: crear directorio de uploads: %v", domain.ErrIO, err)
	}
	return &Manager{root: root}, nil
}

// Root devuelve el directorio físico de assets (para servirlo como estático).
func (m *Manager) Root() string {
	return m.root
}

// Store valida que mimeType sea de imagen, genera un nombre resistente a
// colisiones (timestamp + nombre original; uuid si el nombre ya existe) y
// escribe el archivo. Devuelve la referencia estable /uploads/<nombre>.
// Con mime no-imagen rechaza con domain.ErrUnsupportedMedia sin escribir nada.
func (m *Manager) Store(data []byte, originalName, mimeType string) (string, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedMedia, mimeType)
	}

	base := sanitizeName(originalName)
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
	if _, err := os.Stat(filepath.Join(m.root, name)); err == nil {
		name = fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString()[:8], base)
	}

	if err := os.WriteFile(filepath.Join(m.root, name), data, 0o644); err != nil {
		return "", fmt.Errorf("%w: escribir asset: %v", domain.ErrIO, err)
	}
	return PublicPrefix + "/" + name, nil
}

// Delete elimina el archivo referenciado. La ausencia no es error (borrado
// idempotente).
func (m *Manager) Delete(ref string) error {
	name := refName(ref)
	if name == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(m.root, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: borrar asset: %v", domain.ErrIO, err)
	}
	return nil
}

// Exists indica si la referencia apunta a un archivo presente.
func (m *Manager) Exists(ref string) bool {
	name := refName(ref)
	if name == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(m.root, name))
	return err == nil
}

// Sweep borra los archivos del directorio que no aparezcan en referenced.
// Pensado como tarea de mantenimiento fuera del camino caliente de escritura
// (los updates de producto no borran imágenes dereferenciadas en línea).
// Devuelve las referencias eliminadas.
func (m *Manager) Sweep(referenced []string) ([]string, error) {
	keep := make(map[string]struct{}, len(referenced))
	for _, ref := range referenced {
		if name := refName(ref); name != "" {
			keep[name] = struct{}{}
		}
	}

	entries, err := os.ReadDir(m.root)
	if err != nil {
		return nil, fmt.Errorf("%w: listar uploads: %v", domain.ErrIO, err)
	}

	var (
		g       errgroup.Group
		mu      sync.Mutex
		removed []string
	)
	g.SetLimit(8)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if _, ok := keep[name]; ok {
			continue
		}
		g.Go(func() error {
			if err := os.Remove(filepath.Join(m.root, name)); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("%w: borrar huérfano %s: %v", domain.ErrIO, name, err)
			}
			mu.Lock()
			removed = append(removed, PublicPrefix+"/"+name)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return removed, err
	}
	return removed, nil
}

// sanitizeName reduce el nombre original a su base y neutraliza separadores.
func sanitizeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "file"
	}
	return strings.ReplaceAll(base, " ", "_")
}

// refName extrae el nombre de archivo de una referencia /uploads/<nombre>,
// rechazando rutas que escapen del directorio.
func refName(ref string) string {
	name := strings.TrimPrefix(ref, PublicPrefix+"/")
	name = filepath.Base(name)
	if name == "." || name == "/" || name == "" || strings.Contains(name, "..") {
		return ""
	}
	return name
}
