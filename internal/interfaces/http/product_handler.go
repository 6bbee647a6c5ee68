package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product. Create y Update
// reciben multipart/form-data con los archivos en images[].
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto (multipart, imágenes en images[])
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      415  {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	name := c.FormValue("name")
	categoryID, _ := strconv.Atoi(c.FormValue("categoryId"))
	if name == "" || categoryID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y categoryId son requeridos"})
	}
	quantity, _ := strconv.Atoi(c.FormValue("quantity"))
	discount, _ := strconv.ParseFloat(c.FormValue("discount"), 64)
	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)

	images, err := readUploads(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "multipart inválido"})
	}

	out, err := h.uc.Create(dto.CreateProductRequest{
		Name:       name,
		CategoryID: categoryID,
		Quantity:   quantity,
		Discount:   discount,
		Price:      price,
		Images:     images,
	})
	if err != nil {
		return productError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (multipart; existingImages = JSON con las referencias retenidas)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	in := dto.UpdateProductRequest{}
	if v, ok := formValue(c, "name"); ok {
		in.Name = &v
	}
	if v, ok := formValue(c, "categoryId"); ok {
		n, _ := strconv.Atoi(v)
		in.CategoryID = &n
	}
	if v, ok := formValue(c, "quantity"); ok {
		n, _ := strconv.Atoi(v)
		in.Quantity = &n
	}
	if v, ok := formValue(c, "discount"); ok {
		f, _ := strconv.ParseFloat(v, 64)
		in.Discount = &f
	}
	if v, ok := formValue(c, "price"); ok {
		f, _ := strconv.ParseFloat(v, 64)
		in.Price = &f
	}
	if v, ok := formValue(c, "existingImages"); ok {
		// JSON inválido degrada a conjunto retenido vacío, como el origen de datos legado
		retained := []string{}
		_ = json.Unmarshal([]byte(v), &retained)
		in.RetainedImages = retained
	}

	images, err := readUploads(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "multipart inválido"})
	}
	in.NewImages = images

	out, err := h.uc.Update(id, in)
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto (borra sus imágenes best-effort)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return productError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado"})
}

// Sweep godoc
// @Summary      Recolectar imágenes huérfanas (mantenimiento)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /products/maintenance/sweep [post]
func (h *ProductHandler) Sweep(c *fiber.Ctx) error {
	removed, err := h.uc.SweepAssets()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if removed == nil {
		removed = []string{}
	}
	return c.JSON(fiber.Map{"removed": removed})
}

func productError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnsupportedMedia):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_MEDIA", Message: "solo se aceptan archivos de imagen"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// readUploads extrae los archivos images[] del multipart. Sin multipart o
// sin archivos devuelve lista vacía.
func readUploads(c *fiber.Ctx) ([]dto.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}
	files := form.File["images[]"]
	uploads := make([]dto.ImageUpload, 0, len(files))
	for _, fh := range files {
		data, err := readFileHeader(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, dto.ImageUpload{
			Data:     data,
			Name:     fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
		})
	}
	return uploads, nil
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// formValue distingue campo ausente de campo vacío en el form.
func formValue(c *fiber.Ctx, key string) (string, bool) {
	form, err := c.MultipartForm()
	if err == nil && form != nil {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			return vals[0], true
		}
		return "", false
	}
	v := c.FormValue(key)
	return v, v != ""
}
