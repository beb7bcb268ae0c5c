package describe

import (
	"fmt"
	"strconv"
)

// Synthetic keys tag each aggregation request so its scalar can be
// retrieved from the wide result without relying on column order.
// Percentile keys additionally carry the fraction and its position in
// the request list, so equal fractions stay distinct.

func statKey(stat, column string) string {
	return stat + ":" + column
}

func percentileKey(fraction float64, index int, column string) string {
	return fmt.Sprintf("%s:%d:%s", strconv.FormatFloat(fraction, 'g', -1, 64), index, column)
}

// percentLabel formats a fraction as its row label, truncating the
// percentage to an integer: 0.25 -> "25%".
func percentLabel(fraction float64) string {
	return strconv.Itoa(int(fraction*100)) + "%"
}
