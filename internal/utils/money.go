package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatRupee renders an amount as "₹1,23,456" using Indian digit grouping.
// Fractional paise are kept with two decimals when present.
func FormatRupee(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(amount)
	if frac := amount - math.Trunc(amount); frac > 0 {
		return fmt.Sprintf("%s₹%s.%02d", sign, groupIndian(whole), int64(math.Round(frac*100)))
	}
	return fmt.Sprintf("%s₹%s", sign, groupIndian(whole))
}

// groupIndian inserts separators after the last three digits, then every two:
// 1234567 -> 12,34,567.
func groupIndian(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}
	head := str[:len(str)-3]
	out := str[len(str)-3:]
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return head + "," + out
}
