package solve

import (
	"errors"

	"github.com/rs/zerolog"
)

var errInvalidMethod = errors.New("solve: unrecognized method")

// Options holds the solver's configuration, built by functional Options —
// no environment variables or config files are read; every knob is passed
// explicitly by the caller.
type Options struct {
	msMatrix  int
	tolerance float64
	seed      int64
	divideVar int
	logger    zerolog.Logger
	verbose   bool
}

// Option configures a Solve call.
type Option func(*Options)

const (
	// DefaultTolerance is the absolute pivot zero-threshold τ used by the
	// linear-algebra layer unless overridden.
	DefaultTolerance = 1e-10
	// DefaultMSMatrix corresponds to method "mult": multiply by x_1.
	DefaultMSMatrix = 1
)

func defaultOptions() *Options {
	return &Options{
		msMatrix:  DefaultMSMatrix,
		tolerance: DefaultTolerance,
		seed:      1,
		divideVar: 1,
		logger:    zerolog.Nop(),
	}
}

// WithMethod selects the action-matrix selector by the original method
// name: "mult" (x_1), "multR" (x_2), "multrand" (pseudorandom linear
// form), or "div" (division by x_1, or by WithDivideVariable's choice).
func WithMethod(method string) Option {
	return func(o *Options) {
		switch method {
		case "mult":
			o.msMatrix = 1
		case "multR":
			o.msMatrix = 2
		case "multrand":
			o.msMatrix = 0
		case "div":
			o.msMatrix = -o.divideVar
		default:
			o.msMatrix = invalidMethodSentinel
		}
	}
}

// invalidMethodSentinel is an out-of-band MSmatrix value WithMethod sets on
// an unrecognized name; Solve checks for it and returns ErrInvalidMethod.
const invalidMethodSentinel = 1 << 30

// WithMSMatrix selects the action-matrix selector directly, per §4.6:
// k>0 multiplies by x_k, 0 multiplies by a pseudorandom linear form, -k
// divides by x_k.
func WithMSMatrix(selector int) Option {
	return func(o *Options) { o.msMatrix = selector }
}

// WithDivideVariable sets which variable "div" (via WithMethod) divides by;
// defaults to x_1.
func WithDivideVariable(k int) Option {
	return func(o *Options) {
		o.divideVar = k
		if o.msMatrix < 0 {
			o.msMatrix = -k
		}
	}
}

// WithTolerance overrides the absolute pivot zero-threshold τ.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tolerance = tol }
}

// WithSeed fixes the pseudorandom-generator seed used by the "multrand"
// method's linear form, for reproducible results.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithLogger attaches a zerolog.Logger the solver emits Debug-level
// progress events to, one per pipeline stage, when verbose logging is
// enabled via WithVerbose.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) { o.logger = logger }
}

// WithVerbose toggles per-stage Debug logging.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.verbose = v }
}
