package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPeso(t *testing.T) {
	assert.Equal(t, "₱0.00", FormatPeso(0))
	assert.Equal(t, "₱150.00", FormatPeso(150))
	assert.Equal(t, "₱1,234.50", FormatPeso(1234.5))
	assert.Equal(t, "₱1,000,000.00", FormatPeso(1000000))
	assert.Equal(t, "-₱2,500.75", "-"+FormatPeso(2500.75))
}

func TestTruncate(t *testing.T) {
	short := "Fresh roses"
	assert.Equal(t, short, Truncate(short))

	long := strings.Repeat("a", 60)
	got := Truncate(long)
	assert.Equal(t, strings.Repeat("a", 50)+"...", got)

	exact := strings.Repeat("b", 50)
	assert.Equal(t, exact, Truncate(exact))
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", OrNA(""))
	assert.Equal(t, "0917", OrNA("0917"))
}

func TestParseKind(t *testing.T) {
	for _, raw := range []string{"users", "orders", "services", "revenue"} {
		kind, err := ParseKind(raw)
		require.NoError(t, err)
		assert.Equal(t, Kind(raw), kind)
	}

	_, err := ParseKind("inventory")
	assert.Error(t, err)
}

func TestReport_FileName(t *testing.T) {
	r := &Report{
		Kind:        KindOrders,
		GeneratedAt: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "orders_report_2026-08-29.csv", r.FileName("csv"))
}
