package bulk

import (
	"bytes"
	"context"
	"testing"

	"massagefinder/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportShopsHeader(t *testing.T) {
	svc, repo := newTestBulkService()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Shop{Name: "Lotus Spa", Description: "calm", Address: "Seoul"}))

	data, err := svc.ExportShops(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, exportColumns, rows[0])
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, repo := newTestBulkService()
	ctx := context.Background()

	original := &models.Shop{
		Name:            "Lotus Spa",
		Description:     "calm rooms",
		Address:         "12 Teheran-ro, Seoul",
		ImageURL:        "https://example.com/lotus.jpg",
		Rating:          4.5,
		ReviewCount:     12,
		ViewCount:       340,
		ServicesPreview: []string{"aroma", "foot"},
		PhoneNumber:     "010-1111-2222",
		OperatingHours:  "10:00-22:00",
		DetailedServices: []models.Service{
			{Name: "Foot", Price: "30000"},
			{Name: "Aroma 60min", Price: "70000"},
		},
		IsRecommended: true,
	}
	require.NoError(t, repo.Create(ctx, original))

	data, err := svc.ExportShops(ctx)
	require.NoError(t, err)

	// Re-import the exported file into a fresh store.
	dest, destRepo := newTestBulkService()
	result, err := dest.ImportShops(ctx, "export.xlsx", data)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)
	assert.Empty(t, result.Warnings)

	shops, err := destRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, shops, 1)

	got := shops[0]
	assert.Equal(t, original.Name, got.Name)
	assert.Equal(t, original.Description, got.Description)
	assert.Equal(t, original.Address, got.Address)
	assert.Equal(t, original.ImageURL, got.ImageURL)
	assert.InDelta(t, original.Rating, got.Rating, 1e-9)
	assert.Equal(t, original.ReviewCount, got.ReviewCount)
	assert.Equal(t, original.ViewCount, got.ViewCount)
	assert.Equal(t, original.ServicesPreview, got.ServicesPreview)
	assert.Equal(t, original.PhoneNumber, got.PhoneNumber)
	assert.Equal(t, original.OperatingHours, got.OperatingHours)
	assert.Equal(t, original.DetailedServices, got.DetailedServices)
	assert.True(t, got.IsRecommended)
}

func TestExportEmptyListing(t *testing.T) {
	svc, _ := newTestBulkService()

	data, err := svc.ExportShops(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, exportColumns, rows[0])
}

func TestExportRowSerialization(t *testing.T) {
	row, err := exportRow(&models.Shop{
		Name:            "Lotus Spa",
		ServicesPreview: []string{"aroma", "foot"},
		DetailedServices: []models.Service{
			{Name: "Foot", Price: "30000"},
		},
		IsRecommended: false,
	})
	require.NoError(t, err)
	require.Len(t, row, len(exportColumns))
	assert.Equal(t, "aroma,foot", row[7])
	assert.JSONEq(t, `[{"name":"Foot","price":"30000"}]`, row[10].(string))
	assert.Equal(t, "FALSE", row[11])
}
