package bulk

import (
	"context"

	shopRepo "massagefinder/database/repository/shop"
)

// ImportResult reports the outcome of a bulk import. An import with skipped
// rows is a partial success, not a failure: every warning carries the 1-based
// spreadsheet row number it refers to (row 1 being the header).
type ImportResult struct {
	TotalRows int      `json:"totalRows"`
	Succeeded int      `json:"succeeded"`
	Warnings  []string `json:"warnings"`
}

// BulkService defines spreadsheet import and export of shop records.
type BulkService interface {
	// ImportShops parses the uploaded spreadsheet and writes the valid rows
	// in bounded batch commits. The import is not atomic: a bad row is
	// skipped with a warning, and rows already committed stay committed
	// even if a later batch fails.
	ImportShops(ctx context.Context, filename string, data []byte) (*ImportResult, error)
	// ExportShops serializes the full shop listing to spreadsheet bytes in
	// the exact column shape ImportShops accepts.
	ExportShops(ctx context.Context) ([]byte, error)
}

// DefaultBulkService is the production implementation of BulkService.
type DefaultBulkService struct {
	Repo shopRepo.ShopRepository
}
