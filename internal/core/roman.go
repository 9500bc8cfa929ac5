package core

import "strconv"

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman returns n as a roman numeral. Supports 0-3999 inclusive; zero is the
// empty string and anything outside the range falls back to decimal.
func Roman(n int) string {
	if n < 0 || n > 3999 {
		return strconv.Itoa(n)
	}
	out := make([]byte, 0, 16)
	for _, e := range romanTable {
		for n >= e.value {
			out = append(out, e.symbol...)
			n -= e.value
		}
	}
	return string(out)
}
