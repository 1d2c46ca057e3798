package repositories

import (
	"stoq/internal/models"
)

// ProductRepository defines the interface for product data access. The five
// operations are everything the services may ask of storage, so swapping the
// database behind them never touches business logic.
type ProductRepository interface {
	// GetByID returns the product or ErrProductNotFound.
	GetByID(id string) (*models.Product, error)
	// Count returns how many products match the name filter (all rows when
	// the filter is empty), ignoring pagination.
	Count(filterName string) (int64, error)
	// List returns one page of products matching the name filter, in a
	// stable order so consecutive pages never overlap.
	List(page, size int, filterName string) ([]models.Product, error)
	// Create assigns an id and insertion timestamp, persists the product
	// and leaves the stored values in the argument.
	Create(product *models.Product) error
	// Update applies exactly the given columns to an existing row, or
	// returns ErrProductNotFound. An empty map is a successful no-op.
	Update(id string, fields map[string]any) error
}
