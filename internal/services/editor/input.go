package editor

import (
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/styles"
	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
)

// ParseNumber reads text typed into a numeric field. Malformed text yields
// previous and a validation error.
func ParseNumber(text string, previous float64) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return previous, overlayerr.Validation("value is required")
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return previous, overlayerr.Validationf("%q is not a number", text).
			WithMeta("input", text)
	}
	return v, nil
}

// CommitThreshold parses text into cond's threshold. The condition is left
// untouched when text is malformed.
func CommitThreshold[S styles.Cloner[S]](cond *styles.Condition[S], text string) error {
	v, err := ParseNumber(text, cond.Threshold)
	if err != nil {
		return overlayerr.Wrap(err, "threshold").WithMeta("condition_id", cond.ID)
	}
	cond.Threshold = v
	return nil
}
