package repositories

import (
	"errors"
	"fmt"
	"time"

	"stoq/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// withNameFilter narrows a query to rows whose name contains filterName,
// case-insensitively. LOWER+LIKE behaves the same on postgres and sqlite,
// unlike ILIKE which only postgres understands.
func withNameFilter(query *gorm.DB, filterName string) *gorm.DB {
	if filterName == "" {
		return query
	}
	return query.Where("LOWER(name) LIKE LOWER(?)", "%"+filterName+"%")
}

// GetByID retrieves a single product by its id.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("%w: get product %s: %v", ErrStorage, id, err)
	}
	return &product, nil
}

// Count returns the number of products matching the name filter.
func (r *GORMProductRepository) Count(filterName string) (int64, error) {
	var total int64
	query := withNameFilter(r.db.Model(&models.Product{}), filterName)
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("%w: count products: %v", ErrStorage, err)
	}
	return total, nil
}

// List returns the requested page of products matching the name filter.
// Ordering by insertion timestamp with the id as tiebreak keeps pagination
// deterministic across calls.
func (r *GORMProductRepository) List(page, size int, filterName string) ([]models.Product, error) {
	products := make([]models.Product, 0, size)
	offset := (page - 1) * size

	query := withNameFilter(r.db.Model(&models.Product{}), filterName).
		Order("inserted_at, id").
		Offset(offset).
		Limit(size)
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("%w: list products: %v", ErrStorage, err)
	}
	return products, nil
}

// Create persists a new product, assigning its id and insertion timestamp.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.InsertedAt.IsZero() {
		product.InsertedAt = time.Now().UTC()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("%w: create product: %v", ErrStorage, err)
	}
	return nil
}

// Update applies the given columns to an existing product. The row is
// fetched first so an unknown id surfaces as ErrProductNotFound instead of
// a silent zero-row write. An empty field map is a successful no-op.
func (r *GORMProductRepository) Update(id string, fields map[string]any) error {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("%w: fetch product %s for update: %v", ErrStorage, id, err)
	}

	if len(fields) == 0 {
		return nil
	}

	if err := r.db.Model(&product).Updates(fields).Error; err != nil {
		return fmt.Errorf("%w: update product %s: %v", ErrStorage, id, err)
	}
	return nil
}
