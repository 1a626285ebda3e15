package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/catalog"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main writes the validated catalog to a JSON file that can be edited and
// served back via CATALOG_PATH.
// Usage: go run cmd/seed/main.go [output-path]
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("STYLEHUB - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	outputPath := "catalog.seed.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	// Load from CATALOG_PATH when set, otherwise the embedded seed.
	source := os.Getenv("CATALOG_PATH")
	cat, err := catalog.Load(source)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("✓ Catalog loaded and validated (%d products)", cat.Len())

	data, err := json.MarshalIndent(cat.Products(), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", outputPath, err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Catalog Seed Written Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("File:     %s\n", outputPath)
	fmt.Printf("Products: %d\n", cat.Len())
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Edit the file to customise the catalog")
	fmt.Printf("2. Start the server with CATALOG_PATH=%s\n", outputPath)
}
