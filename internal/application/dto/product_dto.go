package dto

import "time"

// ImageUpload archivo de imagen ya parseado por la capa de transporte.
type ImageUpload struct {
	Data     []byte
	Name     string
	MimeType string
}

// CreateProductRequest alta de producto. Las imágenes llegan como bytes ya
// extraídos del multipart; el caso de uso las escribe antes de persistir el
// registro que las referencia.
type CreateProductRequest struct {
	Name       string
	CategoryID int
	Quantity   int
	Discount   float64
	Price      float64
	Images     []ImageUpload
}

// UpdateProductRequest actualización parcial. Campos nil se conservan.
// RetainedImages es el conjunto de referencias previas que el caller decide
// mantener; el campo images del producto queda retained ++ nuevas cuando
// cualquiera de los dos se suministra.
type UpdateProductRequest struct {
	Name           *string
	CategoryID     *int
	Quantity       *int
	Discount       *float64
	Price          *float64
	RetainedImages []string
	NewImages      []ImageUpload
}

// ProductResponse representación de salida de un producto.
type ProductResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID int       `json:"categoryId"`
	Price      float64   `json:"price,omitempty"`
	Discount   float64   `json:"discount"`
	Quantity   int       `json:"quantity"`
	Images     []string  `json:"images"`
	CreatedAt  time.Time `json:"createdAt,omitzero"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
}
