package services

import (
	"log"

	"stoq/internal/models"
	"stoq/internal/repositories"
)

// EventPublisher is what the product service needs from a message broker.
// A nil publisher disables event publishing entirely.
type EventPublisher interface {
	PublishProductEvent(event string, payload map[string]any) error
}

// ProductService orchestrates the product use-cases on top of the
// repository. Input validation happens at the handler boundary before any
// method here runs.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateProduct builds a transient entity from the validated input and
// persists it. The returned product carries the repository-assigned id and
// insertion timestamp.
func (s *ProductService) CreateProduct(input *models.CreateProductInput) (*models.Product, error) {
	product := input.ToProduct()
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.publish("product.created", product.ID)
	return product, nil
}

// GetProductByID retrieves a single product. A missing id surfaces as
// repositories.ErrProductNotFound, never as a nil product.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// ListProducts returns one page of products plus the total count for the
// same filter, combined into a pagination envelope.
func (s *ProductService) ListProducts(page, size int, filterName string) (*models.Pagination[models.Product], error) {
	products, err := s.repo.List(page, size, filterName)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(filterName)
	if err != nil {
		return nil, err
	}

	return &models.Pagination[models.Product]{
		Page:  page,
		Size:  size,
		Total: total,
		Items: products,
	}, nil
}

// UpdateProduct forwards exactly the fields the caller supplied to the
// repository. An input with no fields set is still routed through the
// repository so an unknown id reports not-found.
func (s *ProductService) UpdateProduct(id string, input *models.UpdateProductInput) error {
	if err := s.repo.Update(id, input.Fields()); err != nil {
		return err
	}

	s.publish("product.updated", id)
	return nil
}

// publish sends a lifecycle event when a broker is configured. Publishing
// is best-effort: a broker failure must not fail the request that already
// committed to the database.
func (s *ProductService) publish(event, productID string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishProductEvent(event, map[string]any{"product_id": productID}); err != nil {
		log.Printf("Failed to publish %s for product %s: %v", event, productID, err)
	}
}
