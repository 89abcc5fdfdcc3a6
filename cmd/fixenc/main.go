// Package main provides the fixenc command. It scans a directory tree and
// repairs both entry names (mojibake and #U-escape sequences) and the
// content encoding of recognized text files, rewriting everything to UTF-8.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/XiFenM/encoding-fixer/internal/charset"
	"github.com/XiFenM/encoding-fixer/internal/cmdcommon"
	"github.com/XiFenM/encoding-fixer/internal/common"
	"github.com/XiFenM/encoding-fixer/internal/config"
	"github.com/XiFenM/encoding-fixer/internal/contentfix"
	"github.com/XiFenM/encoding-fixer/internal/logging"
	"github.com/XiFenM/encoding-fixer/internal/namefix"
	"github.com/XiFenM/encoding-fixer/internal/scan"
)

var errEnvFileLoad = errors.New("error loading environment file")

type fixencConfig struct {
	target string
	cfg    *config.Config
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	options := struct {
		configPath string
		envFile    string
		logLevel   string
		noFolders  bool
	}{}

	fs := flag.NewFlagSet("fixenc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&options.configPath, "config", "", "Path to TOML configuration file")
	fs.StringVar(&options.envFile, "env-file", "", "Path to environment file loaded before the scan")
	fs.StringVar(&options.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.BoolVar(&options.noFolders, "no-folders", false, "Only fix filenames, skip folder names")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if options.envFile != "" {
		if err := godotenv.Load(options.envFile); err != nil {
			_, _ = fmt.Fprintf(stderr, "Error: %v: %v\n", errEnvFileLoad, err)
			return 1
		}
	}

	if err := logging.Setup(logging.SetupOptions{
		Level: options.logLevel,
		RunID: logging.GenerateRunID(),
	}); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error setting up logging: %v\n", err)
		return 1
	}

	cfg := config.Default()
	if options.configPath != "" {
		loaded, err := config.NewLoader().Load(options.configPath)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if options.noFolders {
		cfg.FixFolders = false
	}

	_, _ = fmt.Fprintln(stdout, "Encoding Fixer Tool")
	_, _ = fmt.Fprintln(stdout, "This tool scans for and fixes filename and content encoding issues.")
	_, _ = fmt.Fprintln(stdout)

	target, err := cmdcommon.ResolveTargetDirectory(fs.Arg(0), stdin, stdout)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	_, _ = fmt.Fprintf(stdout, "Starting scan in: %s\n\n", target)

	return runScan(&fixencConfig{target: target, cfg: cfg}, stdout, stderr)
}

func runScan(rc *fixencConfig, stdout, stderr io.Writer) int {
	filesystem := common.NewDefaultFileSystem()
	names := namefix.NewEngine(filesystem,
		namefix.WithTable(rc.cfg.MojibakeTable()),
		namefix.WithCandidateEncodings(rc.cfg.CandidateEncodings),
	)
	contents := contentfix.NewEngine(charset.NewProber())

	scanner := scan.NewScanner(filesystem, names, contents, scan.Options{
		FixFolders:     rc.cfg.FixFolders,
		TextExtensions: rc.cfg.TextExtensions,
	})

	summary, err := scanner.Scan(rc.target)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error scanning directory: %v\n", err)
		return 1
	}

	summary.WriteReport(stdout)
	return 0
}
