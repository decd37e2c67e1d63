package bulk

import (
	"context"
	"fmt"

	"massagefinder/models"
	"massagefinder/utils"

	"go.uber.org/zap"

	shopRepo "massagefinder/database/repository/shop"
)

// ImportShops runs the bulk import. Rows failing validation are skipped with
// a warning and never abort the rest; writes are flushed in batches bounded
// by the store's per-commit write limit, so a large import spans several
// commits and earlier batches stay committed if a later one fails.
func (s *DefaultBulkService) ImportShops(ctx context.Context, filename string, data []byte) (*ImportResult, error) {
	rows, err := ReadRows(filename, data)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{TotalRows: len(rows), Warnings: []string{}}
	pending := []*models.Shop{}

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		if err := s.Repo.BatchCreate(ctx, pending); err != nil {
			return fmt.Errorf("batch commit failed after %d imported shops: %w", result.Succeeded, err)
		}
		result.Succeeded += len(pending)
		pending = []*models.Shop{}
		return nil
	}

	for i, row := range rows {
		// Row 1 is the header, so data row i reports as spreadsheet row i+2.
		shop, warnings := parseShopRow(row, i+2)
		result.Warnings = append(result.Warnings, warnings...)
		if shop == nil {
			continue
		}
		pending = append(pending, shop)
		if len(pending) >= shopRepo.ImportBatchSize {
			if err := flush(); err != nil {
				return result, err
			}
		}
	}
	if err := flush(); err != nil {
		return result, err
	}

	utils.GetLogger().Info("bulk import finished",
		zap.Int("totalRows", result.TotalRows),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("warnings", len(result.Warnings)),
	)
	return result, nil
}
