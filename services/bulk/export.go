package bulk

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"massagefinder/models"

	"github.com/xuri/excelize/v2"
)

// ExportShops serializes the full listing to xlsx bytes. The output uses the
// exact column contract the import path accepts, so exporting and re-importing
// reproduces every field except the store-assigned ID.
func (s *DefaultBulkService) ExportShops(ctx context.Context) ([]byte, error) {
	shops, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shops for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i := range shops {
		row, err := exportRow(&shops[i])
		if err != nil {
			return nil, err
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

func exportRow(shop *models.Shop) ([]interface{}, error) {
	services := shop.DetailedServices
	if services == nil {
		services = []models.Service{}
	}
	detailed, err := json.Marshal(services)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize detailedServices for shop %s: %w", shop.ID, err)
	}
	recommended := "FALSE"
	if shop.IsRecommended {
		recommended = "TRUE"
	}
	return []interface{}{
		shop.Name,
		shop.Description,
		shop.Address,
		shop.ImageURL,
		shop.Rating,
		shop.ReviewCount,
		shop.ViewCount,
		strings.Join(shop.ServicesPreview, ","),
		shop.PhoneNumber,
		shop.OperatingHours,
		string(detailed),
		recommended,
	}, nil
}
