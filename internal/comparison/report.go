package comparison

import (
	"fmt"
	"io"
)

// Report aggregates one comparison run for rendering.
type Report struct {
	RefDir      string
	CandDir     string
	Algorithm   string
	Results     []*Result
	SizeResults []*SizeResult
}

// Counts returns the totals used by the summary section: all compared
// files, identical files, files missing from the candidate directory, and
// files present but different.
func (r *Report) Counts() (total, identical, missing, different int) {
	total = len(r.Results)
	for _, res := range r.Results {
		switch {
		case !res.ExistsInNew:
			missing++
		case res.Identical():
			identical++
		default:
			different++
		}
	}
	return total, identical, missing, different
}

// Clean reports whether every compared file matched.
func (r *Report) Clean() bool {
	_, identical, missing, different := r.Counts()
	if missing > 0 || different > 0 {
		return false
	}
	for _, res := range r.SizeResults {
		if !res.SizeMatch {
			return false
		}
	}
	return identical == len(r.Results)
}

// Write renders the human-readable comparison report.
func (r *Report) Write(w io.Writer) {
	fmt.Fprintln(w, "Directory comparison report")
	fmt.Fprintf(w, "Reference: %s\n", r.RefDir)
	fmt.Fprintf(w, "Candidate: %s\n", r.CandDir)
	fmt.Fprintf(w, "Algorithm: %s\n", r.Algorithm)

	total, identical, missing, different := r.Counts()
	fmt.Fprintf(w, "\nFiles compared: %d\n", total)
	fmt.Fprintf(w, "Identical: %d\n", identical)
	fmt.Fprintf(w, "Missing in candidate: %d\n", missing)
	fmt.Fprintf(w, "Different: %d\n", different)

	if missing > 0 {
		fmt.Fprintln(w, "\nMissing files:")
		for _, res := range r.Results {
			if !res.ExistsInNew {
				fmt.Fprintf(w, "  - %s\n", res.FileName)
			}
		}
	}

	if different > 0 {
		fmt.Fprintln(w, "\nDiffering files:")
		for _, res := range r.Results {
			if !res.ExistsInNew || res.Identical() {
				continue
			}
			if !res.SizeMatch {
				fmt.Fprintf(w, "  - %s: size %d vs %d bytes\n",
					res.FileName, res.RefSize, res.CandSize)
			} else {
				fmt.Fprintf(w, "  - %s: content differs\n", res.FileName)
			}
		}
	}

	for _, res := range r.SizeResults {
		if res.SizeMatch {
			fmt.Fprintf(w, "\nSize check: %s matches (%d bytes)\n",
				res.RefPath, res.RefSize)
		} else {
			fmt.Fprintf(w, "\nSize check: %s differs by %d bytes (%d vs %d)\n",
				res.RefPath, res.Difference(), res.RefSize, res.CandSize)
		}
	}
}
