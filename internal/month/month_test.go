package month

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := Parse("2026-02")
	require.NoError(t, err)
	assert.Equal(t, 2026, m.Year)
	assert.Equal(t, time.February, m.Month)
	assert.Equal(t, "2026-02", m.String())
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "2026", "2026-13", "2026-00", "26-01", "2026/01", "2026-1"} {
		_, err := Parse(s)
		assert.Error(t, err, "expected %q to be rejected", s)
	}
}

func TestPrevAcrossYearBoundary(t *testing.T) {
	m, err := Parse("2026-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-12", m.Prev().String())
}

func TestPrevWithinYear(t *testing.T) {
	m, err := Parse("2026-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-01", m.Prev().String())
}

func TestNextAcrossYearBoundary(t *testing.T) {
	m, err := Parse("2025-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-01", m.Next().String())
}

func TestBefore(t *testing.T) {
	nov, _ := Parse("2025-11")
	dec, _ := Parse("2025-12")
	jan, _ := Parse("2026-01")

	assert.True(t, nov.Before(dec))
	assert.True(t, dec.Before(jan))
	assert.False(t, jan.Before(dec))
	assert.False(t, dec.Before(dec))
}

func TestStringOrderMatchesChronology(t *testing.T) {
	// Zero-padded YYYY-MM sorts chronologically as a plain string; the
	// ledger relies on this for ORDER BY month_year.
	prev := Parse
	a, _ := prev("2025-09")
	b, _ := prev("2025-10")
	c, _ := prev("2026-01")
	assert.Less(t, a.String(), b.String())
	assert.Less(t, b.String(), c.String())
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-12", FromTime(ts).String())
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("2025-07"))
	assert.False(t, Valid("2025-7"))
}
