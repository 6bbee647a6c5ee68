package entity

// Category representa una categoría del catálogo. Name no puede ser vacío.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
