package interpreter

import (
	"log/slog"
	"time"

	"github.com/aledsdavies/lindenmaker/runtime/turtle"
)

// Defaults are the values substituted when a command omits its arguments
type Defaults struct {
	Length   float64 // F, f
	Width    float64 // initial line width
	Growth   float64 // factor for _ and !
	Angle    float64 // + - & ^ \ /
	Material int     // initial material index
}

// DefaultDefaults returns length 2, width 1, growth 1.05, angle 45, material 0
func DefaultDefaults() Defaults {
	return Defaults{
		Length:   2.0,
		Width:    1.0,
		Growth:   1.05,
		Angle:    45.0,
		Material: 0,
	}
}

// Option represents an interpreter configuration option
type Option func(*Config)

// TelemetryMode controls telemetry collection (production-safe)
type TelemetryMode int

const (
	TelemetryOff   TelemetryMode = iota // Zero overhead (default)
	TelemetryBasic                      // Dispatched command counts per symbol
)

// DebugLevel controls debug tracing (development only)
type DebugLevel int

const (
	DebugOff   DebugLevel = iota // No debug info (default)
	DebugPaths                   // One event per command
)

// Config holds interpreter configuration
type Config struct {
	defaults        Defaults
	dryRun          bool
	drawNodes       bool
	legacyQueryAxis bool
	frame           turtle.Frame
	logger          *slog.Logger
	telemetry       TelemetryMode
	debug           DebugLevel
}

func defaultConfig() Config {
	return Config{
		defaults: DefaultDefaults(),
		frame:    turtle.IdentityFrame(),
		logger:   slog.New(slog.DiscardHandler),
	}
}

// WithDefaults sets the values used for omitted arguments
func WithDefaults(d Defaults) Option {
	return func(c *Config) {
		c.defaults = d
	}
}

// WithDryRun moves the turtle without calling the renderer
func WithDryRun() Option {
	return func(c *Config) {
		c.dryRun = true
	}
}

// WithNodes draws a node, scaled by the line width, at every branch start
func WithNodes() Option {
	return func(c *Config) {
		c.drawNodes = true
	}
}

// WithLegacyQueryAxis answers queries with an unknown axis tag using the
// heading instead of failing
func WithLegacyQueryAxis() Option {
	return func(c *Config) {
		c.legacyQueryAxis = true
	}
}

// WithInitialFrame sets the frame the turtle starts from. The frame must be
// orthonormal with Heading × Left = Up.
func WithInitialFrame(f turtle.Frame) Option {
	return func(c *Config) {
		c.frame = f
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTelemetryBasic enables per-symbol command counts
func WithTelemetryBasic() Option {
	return func(c *Config) {
		c.telemetry = TelemetryBasic
	}
}

// WithDebugPaths enables one debug event per command
func WithDebugPaths() Option {
	return func(c *Config) {
		c.debug = DebugPaths
	}
}

// DebugEvent holds debug tracing information (development only)
type DebugEvent struct {
	Timestamp time.Time
	Event     string // "dispatch", "skip", "query"
	Offset    int
	Context   string
}
