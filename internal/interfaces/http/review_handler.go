package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ReviewHandler maneja reseñas (payload opaco, filtro por productId).
type ReviewHandler struct {
	uc *usecase.ReviewUseCase
}

// NewReviewHandler construye el handler.
func NewReviewHandler(uc *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// List godoc
// @Summary      Listar reseñas (opcionalmente por producto)
// @Tags         reviews
// @Produce      json
// @Param        productId  query  string  false  "Filtrar por producto"
// @Success      200  {array}  entity.Record
// @Router       /reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	reviews, err := h.uc.List(c.Query("productId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(reviews)
}

// Create godoc
// @Summary      Crear reseña
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Success      201  {object}  entity.Record
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var fields entity.Record
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	review, err := h.uc.Create(fields)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
