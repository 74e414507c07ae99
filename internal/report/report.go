// Package report defines the tabular report model shared between the report
// use case and the export encoders.
package report

import (
	"strconv"
	"strings"
	"time"

	"floradesk/internal/errors"
)

// Kind selects which report to build.
type Kind string

const (
	KindUsers    Kind = "users"
	KindOrders   Kind = "orders"
	KindServices Kind = "services"
	KindRevenue  Kind = "revenue"
)

// ParseKind validates a raw report kind string.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindUsers, KindOrders, KindServices, KindRevenue:
		return Kind(raw), nil
	default:
		return "", errors.Errorf("unknown report kind: %q", raw)
	}
}

// Report is a rendered tabular report, ready for export.
type Report struct {
	Kind        Kind
	Title       string
	GeneratedAt time.Time
	Headers     []string
	Rows        [][]string
}

// FileName returns the suggested attachment name for an export, e.g.
// "orders_report_2026-08-29.csv".
func (r *Report) FileName(ext string) string {
	return string(r.Kind) + "_report_" + r.GeneratedAt.Format("2006-01-02") + "." + ext
}

const descriptionLimit = 50

// Truncate shortens long free-text cells to keep report rows readable.
// Strings over the limit are cut and suffixed with an ellipsis.
func Truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= descriptionLimit {
		return s
	}

	return string(runes[:descriptionLimit]) + "..."
}

// FormatPeso renders an amount as a peso string with thousands separators,
// e.g. "₱1,234.50".
func FormatPeso(amount float64) string {
	return "₱" + formatThousands(amount)
}

func formatThousands(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	b.WriteString(sign)
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)

	return b.String()
}

// OrNA substitutes "N/A" for empty cells.
func OrNA(s string) string {
	if s == "" {
		return "N/A"
	}

	return s
}
