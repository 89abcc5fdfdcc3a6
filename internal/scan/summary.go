package scan

import (
	"fmt"
	"io"

	"github.com/XiFenM/encoding-fixer/internal/contentfix"
	"github.com/XiFenM/encoding-fixer/internal/namefix"
)

// Summary is the result of one scan run: counters plus the ordered audit
// logs collected by the engines.
type Summary struct {
	Root           string
	ItemsProcessed int
	NameRepairs    []namefix.RepairRecord
	ContentRepairs []contentfix.Record
}

// Changed reports whether the run repaired anything.
func (s *Summary) Changed() bool {
	return len(s.NameRepairs) > 0 || len(s.ContentRepairs) > 0
}

// WriteReport renders the human-readable end-of-run report.
func (s *Summary) WriteReport(w io.Writer) {
	fmt.Fprintln(w, "Scan completed!")
	fmt.Fprintf(w, "Items processed: %d\n", s.ItemsProcessed)

	if len(s.NameRepairs) > 0 {
		fmt.Fprintf(w, "\nFixed %d filename encoding issues:\n", len(s.NameRepairs))
		for _, r := range s.NameRepairs {
			fmt.Fprintf(w, "  %s -> %s\n", r.OldPath, r.NewPath)
		}
	}

	if len(s.ContentRepairs) > 0 {
		fmt.Fprintf(w, "\nFixed %d content encoding issues:\n", len(s.ContentRepairs))
		for _, r := range s.ContentRepairs {
			fmt.Fprintf(w, "  %s: %s -> %s\n", r.Path, r.From, r.To)
		}
	}

	if !s.Changed() {
		fmt.Fprintln(w, "No encoding issues found!")
	}
}
