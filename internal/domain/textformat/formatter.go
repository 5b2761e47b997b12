package textformat

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/datasource"
)

// MaxDecimals caps the decimal places a numeric tag may request
const MaxDecimals = 10

// tagPattern matches [name], [name:x], [name.N] and [name:x.N]
var tagPattern = regexp.MustCompile(`\[(\w+)(?::([A-Za-z]))?(?:\.(\d+))?\]`)

const (
	selectorKilo = "k"
	selectorTime = "t"
)

// Formatter renders text templates against a DataSource
type Formatter struct {
	Rounding RoundingMode
}

// New creates a formatter using the given rounding mode
func New(rounding RoundingMode) *Formatter {
	return &Formatter{Rounding: rounding}
}

// Render substitutes every known tag in template with the matching field of ds.
// Tags that cannot be resolved are left as literal text.
func (f *Formatter) Render(template string, ds datasource.DataSource) string {
	if !strings.Contains(template, "[") {
		return template
	}

	return tagPattern.ReplaceAllStringFunc(template, func(raw string) string {
		m := tagPattern.FindStringSubmatch(raw)
		if m == nil {
			return raw
		}
		out, ok := f.renderTag(ds, m[1], strings.ToLower(m[2]), m[3])
		if !ok {
			return raw
		}
		return out
	})
}

func (f *Formatter) renderTag(ds datasource.DataSource, name, selector, count string) (string, bool) {
	tag, ok := datasource.Lookup(ds, name)
	if !ok {
		return "", false
	}

	n := -1
	if count != "" {
		parsed, err := strconv.Atoi(count)
		if err != nil {
			return "", false
		}
		n = parsed
	}

	switch tag.Kind {
	case datasource.TagString:
		if selector != "" {
			return "", false
		}
		return truncateRunes(tag.Text, n), true
	case datasource.TagNumber:
		decimals := max(n, 0)
		switch selector {
		case "":
			return f.Fixed(tag.Number, decimals), true
		case selectorKilo:
			return f.Kilo(tag.Number, decimals), true
		case selectorTime:
			return f.Time(tag.Number), true
		}
	}
	return "", false
}

// Fixed formats value at the given decimals with the configured rounding
func (f *Formatter) Fixed(value float64, decimals int) string {
	decimals = min(max(decimals, 0), MaxDecimals)
	rounded := f.Rounding.apply(value, decimals)
	if rounded == 0 {
		// avoid "-0"
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', decimals, 64)
}

// Kilo formats value with an M or K suffix above a million or a thousand
func (f *Formatter) Kilo(value float64, decimals int) string {
	abs := math.Abs(value)
	switch {
	case abs >= 1_000_000:
		return f.Fixed(value/1_000_000, decimals) + "M"
	case abs >= 1_000:
		return f.Fixed(value/1_000, decimals) + "K"
	default:
		return f.Fixed(value, decimals)
	}
}

// Time formats seconds as H:MM:SS above an hour, M:SS above a minute,
// and whole seconds otherwise
func (f *Formatter) Time(seconds float64) string {
	if seconds <= 60 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return f.Fixed(seconds, 0)
	}

	// stay on float64 so values past the int64 range still split cleanly
	total := f.Rounding.apply(seconds, 0)
	minutes := math.Floor(total / 60)
	secs := math.Mod(total, 60)

	if seconds > 3600 {
		return fmt.Sprintf("%.0f:%02.0f:%02.0f", math.Floor(total/3600), math.Mod(minutes, 60), secs)
	}
	return fmt.Sprintf("%.0f:%02.0f", minutes, secs)
}

func truncateRunes(s string, n int) string {
	if n < 0 {
		return s
	}
	runes := []rune(s)
	if n >= len(runes) {
		return s
	}
	return string(runes[:n])
}
