package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// FavoriteHandler maneja favoritos del lado servidor (asociaciones
// userId/productId; el agregado del cliente es independiente).
type FavoriteHandler struct {
	uc *usecase.FavoriteUseCase
}

// NewFavoriteHandler construye el handler.
func NewFavoriteHandler(uc *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

// List godoc
// @Summary      Listar favoritos (opcionalmente por usuario)
// @Tags         favorites
// @Produce      json
// @Param        userId  query  string  false  "Filtrar por usuario"
// @Success      200  {array}  entity.Record
// @Router       /favorites [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	favorites, err := h.uc.List(c.Query("userId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(favorites)
}

// Create godoc
// @Summary      Crear favorito
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Success      201  {object}  entity.Record
// @Router       /favorites [post]
func (h *FavoriteHandler) Create(c *fiber.Ctx) error {
	var fields entity.Record
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	favorite, err := h.uc.Create(fields)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(favorite)
}

// Delete godoc
// @Summary      Eliminar favorito
// @Tags         favorites
// @Produce      json
// @Param        id  path  string  true  "ID del favorito"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /favorites/{id} [delete]
func (h *FavoriteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "favorito no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "favorito eliminado"})
}
