package bulk

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// exportColumns is the spreadsheet column contract, shared by import and
// export. The first row of any imported file must be this header (order is
// irrelevant on import, fixed on export).
var exportColumns = []string{
	"name", "description", "address", "imageUrl",
	"rating", "reviewCount", "viewCount", "servicesPreview",
	"phoneNumber", "operatingHours", "detailedServices", "isRecommended",
}

// ReadRows parses the uploaded spreadsheet into header-keyed rows. The format
// is picked from the file extension: .csv is read as UTF-8 CSV, everything
// else is handed to the xlsx reader.
func ReadRows(filename string, data []byte) ([]map[string]string, error) {
	var rows [][]string
	var err error
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		rows, err = readCSV(data)
	} else {
		rows, err = readXLSX(data)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("spreadsheet has no data rows (a header row plus at least one data row is required)")
	}
	return keyRowsByHeader(rows), nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV file: %w", err)
	}
	return rows, nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// keyRowsByHeader maps each data row by the trimmed header cells. Cells
// missing from short rows come back as "".
func keyRowsByHeader(rows [][]string) []map[string]string {
	header := rows[0]
	keyed := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		m := make(map[string]string, len(header))
		for i, key := range header {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			if i < len(row) {
				m[key] = row[i]
			} else {
				m[key] = ""
			}
		}
		keyed = append(keyed, m)
	}
	return keyed
}
