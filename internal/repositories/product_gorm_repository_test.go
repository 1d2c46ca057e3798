package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"stoq/internal/models"
	"stoq/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestRepo opens a fresh named in-memory SQLite database per test so
// tests never share state. cache=shared keeps GORM's pooled connections on
// the same database.
func newTestRepo(t *testing.T) *repositories.GORMProductRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	return repositories.NewGORMProductRepository(db)
}

func newProduct(name, ean string) *models.Product {
	return &models.Product{
		Name:         name,
		EAN:          ean,
		Price:        9.99,
		Description:  "test product",
		Active:       true,
		SellingPlace: models.SellingPlaceStore,
	}
}

func TestGORMProductRepository_CreateAssignsIDAndTimestamp(t *testing.T) {
	repo := newTestRepo(t)

	product := newProduct("Apple Juice", "1234567890123")
	require.NoError(t, repo.Create(product))

	assert.NotEmpty(t, product.ID)
	_, err := uuid.Parse(product.ID)
	assert.NoError(t, err)
	assert.False(t, product.InsertedAt.IsZero())

	stored, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, stored.Name)
	assert.Equal(t, product.EAN, stored.EAN)
	assert.Equal(t, product.Price, stored.Price)
	assert.Equal(t, product.SellingPlace, stored.SellingPlace)
}

func TestGORMProductRepository_GetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestGORMProductRepository_CountAndFilter(t *testing.T) {
	repo := newTestRepo(t)

	names := []string{"Apple Juice", "apple pie", "Banana Bread", "Pineapple Slices"}
	for i, name := range names {
		require.NoError(t, repo.Create(newProduct(name, fmt.Sprintf("%013d", i))))
	}

	total, err := repo.Count("")
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	// Case-insensitive substring, also matching mid-word.
	filtered, err := repo.Count("Apple")
	require.NoError(t, err)
	assert.Equal(t, int64(3), filtered)

	filtered, err = repo.Count("banana")
	require.NoError(t, err)
	assert.Equal(t, int64(1), filtered)

	filtered, err = repo.Count("nothing")
	require.NoError(t, err)
	assert.Equal(t, int64(0), filtered)
}

func TestGORMProductRepository_ListPagination(t *testing.T) {
	repo := newTestRepo(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(newProduct(fmt.Sprintf("Product %d", i), fmt.Sprintf("%013d", i))))
	}

	page1, err := repo.List(1, 2, "")
	require.NoError(t, err)
	require.Len(t, page1, 2)

	page2, err := repo.List(2, 2, "")
	require.NoError(t, err)
	require.Len(t, page2, 2)

	page3, err := repo.List(3, 2, "")
	require.NoError(t, err)
	require.Len(t, page3, 1)

	// Pages must not overlap.
	seen := map[string]bool{}
	for _, p := range append(append(page1, page2...), page3...) {
		assert.False(t, seen[p.ID], "product %s appeared on two pages", p.ID)
		seen[p.ID] = true
	}

	// Past the last page.
	empty, err := repo.List(4, 2, "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGORMProductRepository_ListFilterMatchesCount(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(newProduct("Apple Juice", "1111111111111")))
	require.NoError(t, repo.Create(newProduct("Banana Bread", "2222222222222")))
	require.NoError(t, repo.Create(newProduct("Apple Pie", "3333333333333")))

	items, err := repo.List(1, 20, "apple")
	require.NoError(t, err)
	assert.Len(t, items, 2)
	for _, item := range items {
		assert.Contains(t, item.Name, "Apple")
	}

	total, err := repo.Count("apple")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestGORMProductRepository_UpdatePartial(t *testing.T) {
	repo := newTestRepo(t)

	product := newProduct("Original Name", "1234567890123")
	require.NoError(t, repo.Create(product))

	err := repo.Update(product.ID, map[string]any{"description": "X"})
	require.NoError(t, err)

	stored, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "X", stored.Description)
	// Everything else untouched.
	assert.Equal(t, "Original Name", stored.Name)
	assert.Equal(t, "1234567890123", stored.EAN)
	assert.Equal(t, product.Price, stored.Price)
	assert.Equal(t, product.Active, stored.Active)
	assert.Equal(t, product.SellingPlace, stored.SellingPlace)
	assert.WithinDuration(t, product.InsertedAt, stored.InsertedAt, time.Second)
}

func TestGORMProductRepository_UpdateNotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Update("00000000-0000-0000-0000-000000000000", map[string]any{"name": "X"})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestGORMProductRepository_UpdateEmptyFieldsIsNoOp(t *testing.T) {
	repo := newTestRepo(t)

	product := newProduct("Unchanged", "1234567890123")
	require.NoError(t, repo.Create(product))

	require.NoError(t, repo.Update(product.ID, map[string]any{}))

	stored, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unchanged", stored.Name)

	// Missing row still reports not-found even with nothing to write.
	err = repo.Update(uuid.New().String(), map[string]any{})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}
