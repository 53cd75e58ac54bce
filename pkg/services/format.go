package services

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCurrency renders v rounded to an integer with comma thousands separators (1,234).
// English grouping keeps the digits ASCII inside Arabic answers.
func FormatCurrency(v float64) string {
	return message.NewPrinter(language.English).Sprintf("%.0f", v)
}

// FormatYears renders v with a single decimal place.
func FormatYears(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
