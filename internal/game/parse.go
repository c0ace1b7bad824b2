package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRatioString parses the compact palette form "red:100, blue:50".
// A token with an unparsable ratio keeps its color at weight zero and
// produces a warning instead of failing the whole configuration. Tokens
// with no color at all are skipped. An empty or all-invalid input falls
// back to the default equal-weight palette.
func ParseRatioString(s string) (colors []string, ratios []float64, warnings []string) {
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.SplitN(item, ":", 2)
		color := strings.TrimSpace(parts[0])
		if color == "" {
			warnings = append(warnings, fmt.Sprintf("skipped entry %q: no color", item))
			continue
		}
		ratio := 0.0
		if len(parts) == 2 {
			v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("color %q: bad ratio %q, weight set to 0", color, strings.TrimSpace(parts[1])))
			} else {
				ratio = v
			}
		} else {
			warnings = append(warnings, fmt.Sprintf("color %q: missing ratio, weight set to 0", color))
		}
		colors = append(colors, color)
		ratios = append(ratios, ratio)
	}

	if len(colors) == 0 {
		colors = append([]string(nil), DefaultColors...)
		ratios = make([]float64, len(colors))
		for i := range ratios {
			ratios[i] = 1.0
		}
	}
	return colors, ratios, warnings
}
