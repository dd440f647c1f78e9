package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// English keeps "." as the decimal separator, matching the catalog data.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatPopularity renders a popularity score with one decimal place.
// Example: FormatPopularity(9.8) returns "9.8".
func FormatPopularity(p float64) string {
	return printer.Sprintf("%.1f", p)
}

// FormatCount formats an integer with thousand separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
