package handlers

import (
	"errors"
	"fmt"
	"log"

	"stoq/internal/models"
	"stoq/internal/repositories"
	"stoq/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
}

// failRepositoryError maps a repository error to its HTTP status: 404 for a
// missing row, 409 for a storage failure, 500 for anything else. This is the
// only place repository errors become status codes.
func failRepositoryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": "Product not found",
		})
	case errors.Is(err, repositories.ErrStorage):
		log.Printf("Storage error: %v", err)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"detail": "Database error",
		})
	default:
		log.Printf("Unhandled error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "Internal server error",
		})
	}
}

// failValidation renders a 422 with per-field messages.
func failValidation(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "Validation failed",
			"errors": errorMessages,
		})
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"detail": err.Error(),
	})
}

// HandleListProducts returns one page of products wrapped in the pagination
// envelope. page defaults to 1, size to 20, name filters case-insensitively.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	size := c.QueryInt("size", 20)
	filterName := c.Query("name")

	if page < 1 || size < 1 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "page and size must be positive integers",
		})
	}

	pagination, err := h.service.ListProducts(page, size, filterName)
	if err != nil {
		return failRepositoryError(c, err)
	}
	return c.JSON(pagination)
}

// HandleGetProduct retrieves a single product by id.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "Invalid product id",
		})
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		return failRepositoryError(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct validates the payload and creates a product. The
// response echoes the persisted entity with its assigned id.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input models.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "Invalid request body",
		})
	}

	if err := h.validate.Struct(&input); err != nil {
		return failValidation(c, err)
	}

	product, err := h.service.CreateProduct(&input)
	if err != nil {
		return failRepositoryError(c, err)
	}
	return c.JSON(product)
}

// HandleUpdateProduct applies a partial update. Only fields present in the
// body are validated and written; a body with no known fields is an ack'd
// no-op against an existing row.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "Invalid product id",
		})
	}

	var input models.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "Invalid request body",
		})
	}

	if err := input.Validate(h.validate); err != nil {
		return failValidation(c, err)
	}

	if err := h.service.UpdateProduct(id, &input); err != nil {
		return failRepositoryError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
