package utils

import "fmt"

// FormatCents renders a cent amount as a plain decimal string,
// e.g. 30000 -> "300.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
