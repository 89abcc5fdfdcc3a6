package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/XiFenM/encoding-fixer/internal/terminal"
)

// SetupOptions configures the logger stack installed by Setup.
type SetupOptions struct {
	// Level is the minimum log level ("debug", "info", "warn", "error")
	Level string

	// Capabilities provides terminal feature detection. If nil, defaults
	// are detected from the environment.
	Capabilities terminal.Capabilities

	// RunID identifies the current scan run and is attached to every record
	RunID string
}

// Setup installs the default slog logger: an interactive handler for
// human-readable progress plus a conditional text handler for
// non-interactive output, combined through a MultiHandler.
func Setup(opts SetupOptions) error {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}

	capabilities := opts.Capabilities
	if capabilities == nil {
		capabilities = terminal.NewCapabilities(terminal.Options{})
	}

	interactive, err := NewInteractiveHandler(InteractiveHandlerOptions{
		Level:        level,
		Writer:       os.Stderr,
		Capabilities: capabilities,
	})
	if err != nil {
		return err
	}

	text, err := NewConditionalTextHandler(ConditionalTextHandlerOptions{
		Capabilities:       capabilities,
		TextHandlerOptions: &slog.HandlerOptions{Level: level},
		Writer:             os.Stderr,
	})
	if err != nil {
		return err
	}

	handler := slog.Handler(NewMultiHandler(interactive, text))
	if opts.RunID != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("run_id", opts.RunID)})
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %q", name)
	}
}

// GenerateRunID generates a new UUID v4 for run identification
func GenerateRunID() string {
	return uuid.New().String()
}
