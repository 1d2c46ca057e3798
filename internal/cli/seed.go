package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stoq/internal/models"
	"stoq/internal/repositories"
)

var seedClearFirst bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample products",
	Long:  "Seed the database with a sample catalog. Seeding is skipped when products already exist unless --clear is given.",
	RunE:  runSeed,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all products from the database",
	RunE:  runClear,
}

func init() {
	seedCmd.Flags().BoolVar(&seedClearFirst, "clear", false, "Clear existing products before seeding")
}

func boolPtr(b bool) *bool { return &b }

// sampleProducts is the demo catalog the original deployment ships with.
func sampleProducts() []models.CreateProductInput {
	return []models.CreateProductInput{
		{Name: "Wireless Bluetooth Headphones", EAN: "1234567890123", Price: 79.99, Description: "High-quality wireless headphones with noise cancellation", Active: boolPtr(true), SellingPlace: models.SellingPlaceStore},
		{Name: "Laptop Stand Adjustable", EAN: "2345678901234", Price: 45.50, Description: "Ergonomic laptop stand with adjustable height", Active: boolPtr(true), SellingPlace: models.SellingPlaceStore},
		{Name: "USB-C Hub Multiport", EAN: "3456789012345", Price: 29.99, Description: "7-in-1 USB-C hub with HDMI, USB ports, and SD card reader", Active: boolPtr(true), SellingPlace: models.SellingPlaceEvent},
		{Name: "Mechanical Keyboard RGB", EAN: "4567890123456", Price: 129.99, Description: "Gaming mechanical keyboard with RGB backlighting", Active: boolPtr(true), SellingPlace: models.SellingPlaceStore},
		{Name: "Wireless Mouse Ergonomic", EAN: "5678901234567", Price: 39.99, Description: "Ergonomic wireless mouse with adjustable DPI", Active: boolPtr(true), SellingPlace: models.SellingPlaceEvent},
		{Name: "Webcam HD 1080p", EAN: "6789012345678", Price: 59.99, Description: "HD webcam with built-in microphone for video calls", Active: boolPtr(true), SellingPlace: models.SellingPlaceStore},
		{Name: "Phone Case Protective", EAN: "7890123456789", Price: 19.99, Description: "Protective phone case with shock absorption", Active: boolPtr(true), SellingPlace: models.SellingPlaceEvent},
		{Name: "Portable SSD 1TB", EAN: "8901234567890", Price: 149.99, Description: "Fast portable SSD with 1TB storage capacity", Active: boolPtr(true), SellingPlace: models.SellingPlaceStore},
		{Name: "Desk Lamp LED", EAN: "9012345678901", Price: 34.99, Description: "LED desk lamp with adjustable brightness and color temperature", Active: boolPtr(true), SellingPlace: models.SellingPlaceStore},
		{Name: "Monitor 27 inch 4K", EAN: "0123456789012", Price: 399.99, Description: "27-inch 4K UHD monitor with HDR support", Active: boolPtr(false), SellingPlace: models.SellingPlaceStore},
		{Name: "Graphics Tablet Drawing", EAN: "1112223334445", Price: 89.99, Description: "Professional graphics tablet for digital art", Active: boolPtr(true), SellingPlace: models.SellingPlaceEvent},
		{Name: "Smart Watch Fitness", EAN: "4445556667778", Price: 199.99, Description: "Smart watch with fitness tracking and heart rate monitor", Active: boolPtr(true), SellingPlace: models.SellingPlaceStore},
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	repo := repositories.NewGORMProductRepository(db)

	if seedClearFirst {
		cmd.Println("Clearing existing products...")
		count, err := deleteAllProducts(db)
		if err != nil {
			return err
		}
		cmd.Printf("Cleared %d products\n", count)
	}

	existing, err := repo.Count("")
	if err != nil {
		return err
	}
	if existing > 0 {
		cmd.Println("Products already exist. Use --clear to reset.")
		return nil
	}

	cmd.Println("Seeding products...")
	for _, input := range sampleProducts() {
		if err := repo.Create(input.ToProduct()); err != nil {
			return fmt.Errorf("seeding %q: %w", input.Name, err)
		}
	}
	cmd.Printf("Successfully seeded %d products\n", len(sampleProducts()))
	return nil
}

func runClear(cmd *cobra.Command, _ []string) error {
	fmt.Fprint(cmd.OutOrStdout(), "Are you sure you want to clear all products? [y/N] ")
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		cmd.Println("Cancelled")
		return nil
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	count, err := deleteAllProducts(db)
	if err != nil {
		return err
	}
	cmd.Printf("Cleared %d products\n", count)
	return nil
}
