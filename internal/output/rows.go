// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"kmerscan-core/kmer"
)

// FormatNextChars renders a successor histogram as "A:3,C:1".
// Entries arrive pre-sorted from kmer.Table.Rows.
func FormatNextChars(next []kmer.NextCount) string {
	if len(next) == 0 {
		return ""
	}
	var b strings.Builder
	for i, nc := range next {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(nc.Char)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(nc.Count))
	}
	return b.String()
}

// FormatRowTSV returns the three report columns (no trailing newline).
func FormatRowTSV(r kmer.Row) string {
	return r.Kmer + "\t" + strconv.Itoa(r.Count) + "\t" + FormatNextChars(r.Next)
}
