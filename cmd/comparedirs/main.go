// Package main provides the comparedirs command. It compares the files of a
// reference directory against a candidate directory by size and content
// fingerprint, reporting missing and differing files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/XiFenM/encoding-fixer/internal/cmdcommon"
	"github.com/XiFenM/encoding-fixer/internal/comparison"
	"github.com/XiFenM/encoding-fixer/internal/logging"
)

var (
	errTwoDirsRequired  = errors.New("exactly two directory arguments are required: <reference> <candidate>")
	errUnknownAlgorithm = errors.New("unknown hash algorithm")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	options := struct {
		ext       string
		filter    string
		filterExt string
		algo      string
		logLevel  string
	}{}

	fs := flag.NewFlagSet("comparedirs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&options.ext, "ext", ".txt", "Extension of files compared by fingerprint")
	fs.StringVar(&options.filter, "filter", "", "Name substring selecting files compared by size only")
	fs.StringVar(&options.filterExt, "filter-ext", ".pdf", "Extension of the size-only comparison set")
	fs.StringVar(&options.algo, "algo", "md5", "Fingerprint algorithm (md5, sha256)")
	fs.StringVar(&options.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if fs.NArg() != 2 {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", errTwoDirsRequired)
		fs.Usage()
		return 1
	}

	if err := logging.Setup(logging.SetupOptions{
		Level: options.logLevel,
		RunID: logging.GenerateRunID(),
	}); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error setting up logging: %v\n", err)
		return 1
	}

	algo, ok := comparison.AlgorithmByName(options.algo)
	if !ok {
		_, _ = fmt.Fprintf(stderr, "Error: %v: %q\n", errUnknownAlgorithm, options.algo)
		return 1
	}

	refDir, candDir := fs.Arg(0), fs.Arg(1)
	for _, dir := range []string{refDir, candDir} {
		if err := cmdcommon.CheckDirectory(dir); err != nil {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	comparator := comparison.NewComparator(refDir, candDir, algo, comparison.Options{
		Extension:     options.ext,
		FilterPattern: options.filter,
		FilterExt:     options.filterExt,
	})

	report, err := comparator.Run()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error comparing directories: %v\n", err)
		return 1
	}

	report.Write(stdout)
	if !report.Clean() {
		return 2
	}
	return 0
}
