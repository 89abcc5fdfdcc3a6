package terminal

import (
	"os"
	"strings"
)

// Options contains all terminal-related configuration options
type Options struct {
	// DetectorOptions for interactive detection
	DetectorOptions DetectorOptions
	// ForceColor forces color output regardless of environment
	ForceColor bool
	// DisableColor disables color output regardless of environment
	DisableColor bool
}

// Capabilities provides a unified interface for terminal capability detection
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
}

// DefaultCapabilities implements the Capabilities interface
type DefaultCapabilities struct {
	detector InteractiveDetector
	options  Options
}

// NewCapabilities creates a new Capabilities instance with the given options
func NewCapabilities(options Options) Capabilities {
	return &DefaultCapabilities{
		detector: NewInteractiveDetector(options.DetectorOptions),
		options:  options,
	}
}

// IsInteractive returns true if the current environment should be treated as interactive
func (c *DefaultCapabilities) IsInteractive() bool {
	return c.detector.IsInteractive()
}

// SupportsColor returns true if color output should be enabled:
// 1. Command line arguments (highest priority)
// 2. CLICOLOR_FORCE environment variable
// 3. NO_COLOR environment variable
// 4. TERM-based auto-detection, only in interactive mode
func (c *DefaultCapabilities) SupportsColor() bool {
	if c.options.ForceColor {
		return true
	}
	if c.options.DisableColor {
		return false
	}
	if v := os.Getenv("CLICOLOR_FORCE"); v != "" && isTruthy(v) {
		return true
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if !c.IsInteractive() {
		return false
	}
	return termSupportsColor(os.Getenv("TERM"))
}

// colorTerminals lists TERM values (or prefixes) that are known to support
// basic terminal colors.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"ansi",
	"linux",
	"cygwin",
	"putty",
}

// termSupportsColor reports whether a TERM value names a color-capable terminal
func termSupportsColor(termValue string) bool {
	termValue = strings.ToLower(strings.TrimSpace(termValue))
	if termValue == "" || termValue == "dumb" {
		return false
	}
	for _, known := range colorTerminals {
		if termValue == known || strings.HasPrefix(termValue, known+"-") {
			return true
		}
	}
	return strings.Contains(termValue, "color")
}
