package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ep-server/config"
)

// capacityRangePattern matches a lone non-negative integer or a "low-high"
// range of two non-negative integers.
var capacityRangePattern = regexp.MustCompile(`^\d+(-\d+)?$`)

// budgetSanitizer strips the currency symbol and thousands separators from
// raw budget cells, e.g. "₹12,000" -> "12000". Interior spaces are not
// stripped; "1 2 3" stays unparseable.
var budgetSanitizer = strings.NewReplacer(config.CURRENCY_SYMBOL, "", ",", "")

// parseCapacity coerces a raw capacity cell into an integer. Ranges like
// "100-500" resolve to the upper bound; plain integers parse directly.
// Anything else is unparseable and the owning row gets dropped.
func parseCapacity(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if capacityRangePattern.MatchString(value) {
		parts := strings.Split(value, "-")
		value = parts[len(parts)-1]
	}

	capacity, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("unparseable capacity %q", raw)
	}
	if capacity < 0 {
		return 0, fmt.Errorf("negative capacity %q", raw)
	}
	return capacity, nil
}

// parseBudget coerces a raw budget cell into an integer after stripping
// currency formatting.
func parseBudget(raw string) (int, error) {
	value := strings.TrimSpace(budgetSanitizer.Replace(raw))

	budget, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("unparseable budget %q", raw)
	}
	if budget < 0 {
		return 0, fmt.Errorf("negative budget %q", raw)
	}
	return budget, nil
}

// parseAmenities splits a raw equipments cell into clean amenity tags.
func parseAmenities(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
