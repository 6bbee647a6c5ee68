package entity

import "time"

// Product representa un producto del catálogo.
// Discount es un porcentaje en [0,100]; Price es el precio unitario real
// (campo separado para no reutilizar el descuento como precio).
// CategoryID es una clave foránea numérica sin validación referencial.
type Product struct {
	ID         string    `json:"id"` // prefijo p_ + timestamp de creación
	Name       string    `json:"name"`
	CategoryID int       `json:"categoryId"`
	Price      float64   `json:"price,omitempty"`
	Discount   float64   `json:"discount"`
	Quantity   int       `json:"quantity"`
	Images     []string  `json:"images"` // rutas /uploads/<nombre> propiedad del asset manager
	CreatedAt  time.Time `json:"createdAt,omitzero"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
}
