package settings

import (
	"strconv"
	"strings"
	"time"

	"kasirpos/internal/models"
)

// FormatIDR renders an amount in the Indonesian rupiah convention:
// "Rp " prefix, '.' thousands separator, ',' decimal separator.
// Deterministic for identical (amount, settings) inputs.
func FormatIDR(amount float64, s models.AppSettings) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	fixed := strconv.FormatFloat(amount, 'f', s.DecimalPlaces, 64)
	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("Rp ")
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

func layoutFor(format string) string {
	switch format {
	case models.DateFormatMDY:
		return "01/02/2006"
	case models.DateFormatYMD:
		return "2006-01-02"
	default:
		return "02/01/2006"
	}
}

// FormatDate renders the date part according to the configured format.
func FormatDate(t time.Time, s models.AppSettings) string {
	return t.Format(layoutFor(s.DateFormat))
}

// FormatDateTime renders date plus 24h clock.
func FormatDateTime(t time.Time, s models.AppSettings) string {
	return t.Format(layoutFor(s.DateFormat) + " 15:04")
}
