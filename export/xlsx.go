// Package export writes admin spreadsheets for the catalog and the order
// log.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tealeg/xlsx"

	"github.com/smanja344-droid/custom-tee-creator/models"
)

// Products writes an xlsx workbook with one row per catalog entry.
func Products(w io.Writer, products []models.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"ID", "Name", "Description", "Price", "Category", "Sizes", "Stock", "Image"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.Price)
		row.AddCell().SetValue(string(p.Category))
		row.AddCell().SetValue(strings.Join(p.Sizes, ","))
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetValue(p.Image)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Orders writes an xlsx workbook with one row per order. Line items are
// flattened into a "name x qty" summary column.
func Orders(w io.Writer, orders []models.Order) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"ID", "UserID", "Customer", "Email", "Phone", "Address", "Items", "Total", "Status", "CreatedAt"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(o.UserID)
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(o.CustomerEmail)
		row.AddCell().SetValue(o.CustomerPhone)
		row.AddCell().SetValue(o.ShippingAddress)
		row.AddCell().SetValue(itemSummary(o.Items))
		row.AddCell().SetValue(o.Total)
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func itemSummary(items []models.CartItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s (%s) x%d", it.ProductName, it.Size, it.Quantity))
	}
	return strings.Join(parts, "; ")
}
