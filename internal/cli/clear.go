package cli

import (
	"fmt"

	"stoq/internal/models"

	"gorm.io/gorm"
)

// deleteAllProducts removes every product row. Deletion is deliberately a
// CLI-only operation; the HTTP surface never exposes it.
func deleteAllProducts(db *gorm.DB) (int64, error) {
	result := db.Where("1 = 1").Delete(&models.Product{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear products: %w", result.Error)
	}
	return result.RowsAffected, nil
}
