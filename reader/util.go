package reader

import (
	"sort"
	"strconv"
)

func sortStrings(xs []string) {
	sort.Strings(xs)
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
