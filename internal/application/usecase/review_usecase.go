package usecase

import (
	"strconv"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ReviewUseCase casos de uso para reseñas. productId es clave foránea sin
// validación referencial, igual que en el resto del contenedor.
type ReviewUseCase struct {
	repo repository.RecordRepository
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(repo repository.RecordRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo}
}

// Create inserta una reseña con el payload dado.
func (uc *ReviewUseCase) Create(fields entity.Record) (entity.Record, error) {
	return uc.repo.Create(fields)
}

// List lista reseñas; con productID no vacío filtra por esa clave (la
// comparación normaliza ambos lados a string).
func (uc *ReviewUseCase) List(productID string) ([]entity.Record, error) {
	if productID == "" {
		return uc.repo.List(nil)
	}
	return uc.repo.List(func(rec entity.Record) bool {
		return fieldAsString(rec["productId"]) == productID
	})
}

func fieldAsString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
