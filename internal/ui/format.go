package ui

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Number formats large values with SI suffixes past a million and thousands
// separators below.
func Number(v float64) string {
	if math.Abs(v) >= 1e6 {
		value, prefix := humanize.ComputeSI(v)
		return humanize.FtoaWithDigits(value, 2) + prefix
	}
	if v == math.Trunc(v) {
		return humanize.Comma(int64(v))
	}
	return humanize.CommafWithDigits(v, 2)
}

// Percent formats a percentage-point value.
func Percent(v float64) string {
	return fmt.Sprintf("%s%%", humanize.FtoaWithDigits(v, 1))
}

// Ratio formats a fraction as a percentage.
func Ratio(v float64) string {
	return Percent(v * 100)
}
