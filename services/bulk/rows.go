package bulk

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"massagefinder/models"
	"massagefinder/utils"
)

// parseShopRow turns one spreadsheet row into a shop record. A nil shop means
// the row was skipped; warnings are returned either way. rowNum is the
// spreadsheet row the warnings refer to.
func parseShopRow(row map[string]string, rowNum int) (*models.Shop, []string) {
	var warnings []string

	name := strings.TrimSpace(row["name"])
	description := strings.TrimSpace(row["description"])
	address := strings.TrimSpace(row["address"])
	if name == "" || description == "" || address == "" {
		warnings = append(warnings, fmt.Sprintf(
			"행 %d: 필수 필드(name, description, address) 중 하나 이상이 누락되었습니다. 이 행은 건너뜁니다.", rowNum))
		return nil, warnings
	}

	// Blank numeric cells default silently; unparseable ones default with a
	// warning. That distinction is deliberate: an empty cell is normal, a
	// garbled one is worth telling the operator about.
	rating := 0.0
	if raw := strings.TrimSpace(row["rating"]); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf(
				"행 %d: 'rating' 값 (%q)이 유효한 숫자가 아닙니다. 0으로 설정됩니다.", rowNum, raw))
		} else {
			rating = clampFloat(parsed, 0, 5)
		}
	}

	reviewCount := 0
	if raw := strings.TrimSpace(row["reviewCount"]); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf(
				"행 %d: 'reviewCount' 값 (%q)이 유효한 숫자가 아닙니다. 0으로 설정됩니다.", rowNum, raw))
		} else if parsed > 0 {
			reviewCount = parsed
		}
	}

	var viewCount int64
	if raw := strings.TrimSpace(row["viewCount"]); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf(
				"행 %d: 'viewCount' 값 (%q)이 유효한 숫자가 아닙니다. 0으로 설정됩니다.", rowNum, raw))
		} else if parsed > 0 {
			viewCount = parsed
		}
	}

	shop := &models.Shop{
		Name:             name,
		Description:      description,
		Address:          address,
		ImageURL:         defaultIfBlank(row["imageUrl"], utils.PlaceholderImageURL),
		Rating:           rating,
		ReviewCount:      reviewCount,
		ViewCount:        viewCount,
		ServicesPreview:  splitServicesPreview(row["servicesPreview"]),
		PhoneNumber:      defaultIfBlank(row["phoneNumber"], utils.PlaceholderPhoneNumber),
		OperatingHours:   defaultIfBlank(row["operatingHours"], utils.PlaceholderOperatingHours),
		DetailedServices: parseDetailedServices(row["detailedServices"]),
		IsRecommended:    strings.EqualFold(strings.TrimSpace(row["isRecommended"]), "TRUE"),
	}
	return shop, warnings
}

func defaultIfBlank(raw, fallback string) string {
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		return trimmed
	}
	return fallback
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func splitServicesPreview(raw string) []string {
	preview := []string{}
	for _, token := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			preview = append(preview, trimmed)
		}
	}
	return preview
}

// parseDetailedServices decodes the embedded JSON array cell. Spreadsheets
// edited by hand frequently arrive with single quotes, so a failed parse is
// retried with quotes substituted before giving up. Both failures default to
// an empty list without a warning, an intentional leniency.
func parseDetailedServices(raw string) []models.Service {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []models.Service{}
	}
	if services, ok := decodeServices(raw); ok {
		return services
	}
	corrected := strings.ReplaceAll(raw, "'", `"`)
	if services, ok := decodeServices(corrected); ok {
		return services
	}
	return []models.Service{}
}

func decodeServices(raw string) ([]models.Service, bool) {
	var entries []map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false
	}
	services := []models.Service{}
	for _, entry := range entries {
		name := strings.TrimSpace(cellString(entry["name"]))
		price := strings.TrimSpace(cellString(entry["price"]))
		if name == "" {
			name = "N/A"
		}
		if price == "" {
			price = "N/A"
		}
		if name == "N/A" && price == "N/A" {
			continue
		}
		services = append(services, models.Service{Name: name, Price: price})
	}
	return services, true
}

func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
