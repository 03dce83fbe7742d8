package glyphmerge

import "log"

// Config carries the numeric tunables spec.md §5 describes as
// "process-wide", plus an injectable warning hook. A nil *Config
// anywhere in this package's API means "use DefaultConfig".
//
// This mirrors the teacher's Options struct (passed explicitly into
// TextOutlines rather than stored as package state) more than it
// mirrors a set of mutable globals: prefer constructing your own Config
// and passing it through Parse/Generate/Merge over relying on the
// package-level Set* helpers below, which exist for callers that want
// the legacy global-tunable style.
type Config struct {
	// FloatPrecision is the tolerance for Point equality (default 0.001).
	FloatPrecision float64

	// MaxLsegsPerBezier is the number of line segments the boolean
	// engine uses when flattening a curved x-monotone boundary piece
	// (see SPEC_FULL.md §12.3 — linear approximation is this engine's
	// only backend). MinLsegLength is stored and settable but is not
	// read by the engine: segment length does not affect flattening.
	MinLsegLength     float64
	MaxLsegsPerBezier int

	// Warnf receives non-fatal diagnostics, such as the noncontiguity
	// recovery in toPathList (spec.md §4.4.2/§7). The zero value is a
	// no-op; call UseStdLogger to wire it to the standard logger.
	Warnf func(format string, args ...any)
}

// DefaultConfig holds the package-wide tunables used whenever a nil
// *Config is supplied. It is safe to read concurrently; mutate it only
// via the Set* helpers below, and never while a merge is in flight
// (spec.md §5).
var DefaultConfig = &Config{
	FloatPrecision:    0.001,
	MinLsegLength:     0.1,
	MaxLsegsPerBezier: 16,
	Warnf:             func(string, ...any) {},
}

func (c *Config) orDefault() *Config {
	if c == nil {
		return DefaultConfig
	}
	return c
}

func (c *Config) warnf(format string, args ...any) {
	cfg := c.orDefault()
	if cfg.Warnf != nil {
		cfg.Warnf(format, args...)
	}
}

// UseStdLogger wires Warnf to the standard library logger, matching the
// teacher's use of plain `log` in its cmd/ tool rather than a
// structured-logging dependency.
func (c *Config) UseStdLogger() {
	c.Warnf = func(format string, args ...any) {
		log.Printf(format, args...)
	}
}

// SetFloatPrecision sets DefaultConfig.FloatPrecision (spec.md §5
// compatibility helper).
func SetFloatPrecision(v float64) {
	DefaultConfig.FloatPrecision = v
}

// FloatPrecision returns DefaultConfig.FloatPrecision.
func FloatPrecision() float64 {
	return DefaultConfig.FloatPrecision
}

// SetApproxBezierParams sets DefaultConfig.MinLsegLength and
// DefaultConfig.MaxLsegsPerBezier, the knobs spec.md §9 associates with
// the optional linear-approximation backend.
func SetApproxBezierParams(minLsegLength float64, maxLsegsPerBezier int) {
	DefaultConfig.MinLsegLength = minLsegLength
	DefaultConfig.MaxLsegsPerBezier = maxLsegsPerBezier
}

var initialised bool

// Initialise installs the geometry kernel's error/warning hooks
// (spec.md §5/§6). It is idempotent; calling it more than once has no
// additional effect. Equivalent to the original csmerge::initialise().
func Initialise() {
	if initialised {
		return
	}
	if DefaultConfig.Warnf == nil {
		DefaultConfig.Warnf = func(string, ...any) {}
	}
	initialised = true
}
