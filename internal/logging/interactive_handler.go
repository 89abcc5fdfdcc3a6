package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/XiFenM/encoding-fixer/internal/color"
	"github.com/XiFenM/encoding-fixer/internal/terminal"
)

// Static errors for InteractiveHandler validation
var (
	ErrInteractiveHandlerWriterRequired       = errors.New("InteractiveHandler: Writer is required")
	ErrInteractiveHandlerCapabilitiesRequired = errors.New("InteractiveHandler: Capabilities is required")
)

// InteractiveHandler is a slog handler that provides human-readable progress
// output for interactive terminals. It only operates when the terminal is
// detected as interactive, leaving non-interactive output to the
// ConditionalTextHandler.
type InteractiveHandler struct {
	capabilities terminal.Capabilities
	writer       io.Writer
	level        slog.Level
	attrs        []slog.Attr
	groups       []string
}

// InteractiveHandlerOptions configures the InteractiveHandler.
type InteractiveHandlerOptions struct {
	// Level is the minimum log level to handle
	Level slog.Level

	// Writer is the output destination (typically os.Stderr)
	Writer io.Writer

	// Capabilities provides terminal feature detection
	Capabilities terminal.Capabilities
}

// NewInteractiveHandler creates a new InteractiveHandler with the given options.
// Returns an error if any required options are missing.
func NewInteractiveHandler(opts InteractiveHandlerOptions) (*InteractiveHandler, error) {
	if opts.Writer == nil {
		return nil, ErrInteractiveHandlerWriterRequired
	}
	if opts.Capabilities == nil {
		return nil, ErrInteractiveHandlerCapabilitiesRequired
	}
	return &InteractiveHandler{
		capabilities: opts.Capabilities,
		writer:       opts.Writer,
		level:        opts.Level,
	}, nil
}

// Enabled reports whether the handler handles records at the given level.
func (h *InteractiveHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.capabilities.IsInteractive() && level >= h.level
}

// Handle formats the record as a single human-readable line.
func (h *InteractiveHandler) Handle(_ context.Context, r slog.Record) error {
	if !h.capabilities.IsInteractive() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(h.formatLevel(r.Level))
	sb.WriteString(r.Message)

	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	if len(attrs) > 0 {
		sb.WriteString(" (")
		for i, a := range attrs {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(h.attrKey(a.Key))
			sb.WriteString("=")
			sb.WriteString(a.Value.String())
		}
		sb.WriteString(")")
	}
	sb.WriteString("\n")

	_, err := io.WriteString(h.writer, sb.String())
	return err
}

// formatLevel returns a level prefix for warn and error records. Info-level
// progress lines carry no prefix to keep interactive output close to plain
// status messages.
func (h *InteractiveHandler) formatLevel(level slog.Level) string {
	useColor := h.capabilities.SupportsColor()
	switch {
	case level >= slog.LevelError:
		if useColor {
			return color.Red("ERROR:") + " "
		}
		return "ERROR: "
	case level >= slog.LevelWarn:
		if useColor {
			return color.Yellow("WARNING:") + " "
		}
		return "WARNING: "
	default:
		return ""
	}
}

// attrKey applies the accumulated group prefix to an attribute key
func (h *InteractiveHandler) attrKey(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	return strings.Join(h.groups, ".") + "." + key
}

// WithAttrs returns a new handler whose records carry the given attributes.
func (h *InteractiveHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup returns a new handler with the given group name appended.
func (h *InteractiveHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

// compile-time check
var _ slog.Handler = (*InteractiveHandler)(nil)
