// Package main provides the fixnames command. It repairs only entry names:
// #U-escape sequences and mojibake. File contents are never touched.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/XiFenM/encoding-fixer/internal/cmdcommon"
	"github.com/XiFenM/encoding-fixer/internal/common"
	"github.com/XiFenM/encoding-fixer/internal/logging"
	"github.com/XiFenM/encoding-fixer/internal/namefix"
	"github.com/XiFenM/encoding-fixer/internal/scan"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	options := struct {
		logLevel  string
		noFolders bool
	}{}

	fs := flag.NewFlagSet("fixnames", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&options.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.BoolVar(&options.noFolders, "no-folders", false, "Only fix filenames, skip folder names")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if err := logging.Setup(logging.SetupOptions{
		Level: options.logLevel,
		RunID: logging.GenerateRunID(),
	}); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error setting up logging: %v\n", err)
		return 1
	}

	_, _ = fmt.Fprintln(stdout, "Unicode Filename and Folder Fixer Tool")
	_, _ = fmt.Fprintln(stdout)

	target, err := cmdcommon.ResolveTargetDirectory(fs.Arg(0), stdin, stdout)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	filesystem := common.NewDefaultFileSystem()
	scanner := scan.NewScanner(filesystem, namefix.NewEngine(filesystem), nil, scan.Options{
		FixFolders: !options.noFolders,
	})

	summary, err := scanner.Scan(target)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error scanning directory: %v\n", err)
		return 1
	}

	summary.WriteReport(stdout)
	return 0
}
