package utils

import "time"

// GenSaleNumber derives the human-readable sale number from the sale
// timestamp, second granularity. Two sales committed in the same
// second produce the same number; the unique index on sales rejects
// the later insert and the caller may resubmit.
func GenSaleNumber(t time.Time) string {
	return "SALE-" + t.Format("20060102150405")
}
