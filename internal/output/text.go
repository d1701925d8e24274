// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"kmerscan-core/kmer"
)

// WriteText prints the report: optional header, then one line per row.
func WriteText(w io.Writer, rows []kmer.Row, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
