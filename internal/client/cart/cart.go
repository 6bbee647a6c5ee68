// Package cart implementa los agregados locales del cliente (carrito y
// favoritos): listas mutables con totales derivados, persistidas de forma
// síncrona a almacenamiento local en cada mutación, independientes del
// store del servidor.
package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// LineItem línea del carrito: snapshot del producto al momento de añadirlo,
// no enlazado a ediciones posteriores del catálogo.
type LineItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Image      string          `json:"image"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
	CategoryID int             `json:"categoryId"`
}

// Cart carrito local persistido como lista serializada en un archivo.
type Cart struct {
	path string

	mu    sync.Mutex
	items []LineItem
}

// OpenCart carga el carrito desde path; archivo ausente o ilegible arranca
// vacío (misma semántica permisiva del almacenamiento local del cliente).
func OpenCart(path string) (*Cart, error) {
	c := &Cart{path: path}
	if err := loadLocal(path, &c.items); err != nil {
		return nil, err
	}
	return c, nil
}

// AddItem añade el producto al carrito. Si ya hay una línea con el mismo id,
// incrementa su cantidad; si no, añade una línea nueva con el snapshot de
// nombre/imagen/precio/categoría al momento del alta.
func (c *Cart) AddItem(p *entity.Product, quantity int) error {
	if p == nil || quantity <= 0 {
		return domain.ErrInvalidInput
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity += quantity
			return c.save()
		}
	}

	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	c.items = append(c.items, LineItem{
		ID:         p.ID,
		Name:       p.Name,
		Image:      image,
		UnitPrice:  unitPrice(p),
		Quantity:   quantity,
		CategoryID: p.CategoryID,
	})
	return c.save()
}

// UpdateQuantity fija la cantidad de la línea en max(1, quantity); no hace
// nada si el id no está en el carrito.
func (c *Cart) UpdateQuantity(id string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			if quantity < 1 {
				quantity = 1
			}
			c.items[i].Quantity = quantity
			return c.save()
		}
	}
	return nil
}

// RemoveItem elimina la línea con el id dado.
func (c *Cart) RemoveItem(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.items[:0]
	for _, item := range c.items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	c.items = filtered
	return c.save()
}

// Clear vacía el carrito.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	return c.save()
}

// Items devuelve una copia de las líneas actuales.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems suma las cantidades de todas las líneas.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice suma precio unitario snapshot × cantidad por línea.
func (c *Cart) TotalPrice() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// save persiste la lista completa de forma síncrona antes de devolver el
// control al caller. Llamar con c.mu tomado.
func (c *Cart) save() error {
	return saveLocal(c.path, c.items)
}

// unitPrice toma el precio real del producto. Los datos anteriores a la
// separación price/discount no traen price: ahí se conserva la lectura
// legada del campo discount como precio unitario.
func unitPrice(p *entity.Product) decimal.Decimal {
	if p.Price != 0 {
		return decimal.NewFromFloat(p.Price)
	}
	return decimal.NewFromFloat(p.Discount)
}

// loadLocal lee una lista serializada; ausencia o contenido inválido dejan
// la lista vacía.
func loadLocal(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	_ = json.Unmarshal(raw, out)
	return nil
}

// saveLocal escribe la lista completa en el archivo local.
func saveLocal(path string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: serializar estado local: %v", domain.ErrIO, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: crear directorio de estado local: %v", domain.ErrIO, err)
		}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("%w: escribir estado local: %v", domain.ErrIO, err)
	}
	return nil
}
