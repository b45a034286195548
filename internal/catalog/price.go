package catalog

import "fmt"

// FormatPrice renders a price with two decimals and a euro suffix:
// 29.99 → "29.99€", 19.5 → "19.50€".
func FormatPrice(p float64) string {
	return fmt.Sprintf("%.2f€", p)
}
