package services

import (
	"fmt"
	"strings"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/tealeg/xlsx"
)

// BuildCatalogWorkbook renders the catalog as an Excel workbook with one
// row per product.
func BuildCatalogWorkbook(products []models.Product) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{
		"ID", "Name", "Description", "Price", "OriginalPrice", "Category",
		"Subcategory", "Sizes", "Colors", "InStock", "New", "Popular",
		"Rating", "Reviews", "Tags",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()

		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.Price.Format())
		if p.OriginalPrice != nil {
			row.AddCell().SetValue(p.OriginalPrice.Format())
		} else {
			row.AddCell().SetValue("")
		}
		row.AddCell().SetValue(string(p.Category))
		row.AddCell().SetValue(p.Subcategory)

		sizes := make([]string, len(p.Sizes))
		for i, s := range p.Sizes {
			sizes[i] = string(s)
		}
		row.AddCell().SetValue(strings.Join(sizes, ","))

		colors := make([]string, len(p.Colors))
		for i, c := range p.Colors {
			colors[i] = c.Name
		}
		row.AddCell().SetValue(strings.Join(colors, ","))

		row.AddCell().SetValue(p.InStock)
		row.AddCell().SetValue(p.IsNew)
		row.AddCell().SetValue(p.IsPopular)
		row.AddCell().SetValue(p.Rating)
		row.AddCell().SetValue(p.ReviewCount)
		row.AddCell().SetValue(strings.Join(p.Tags, ","))
	}

	return file, nil
}
