package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Default cell symbols.
const (
	SymbolOpen  = '.'
	SymbolStart = 'S'
	SymbolEnd   = 'E'
)

// MarkerPolicy decides what happens when a start or end marker repeats.
type MarkerPolicy int

const (
	// MarkerReject fails with a *MarkerError on the second occurrence.
	MarkerReject MarkerPolicy = iota
	// MarkerKeepFirst keeps the first occurrence in row-major order.
	MarkerKeepFirst
	// MarkerKeepLast keeps the last occurrence in row-major order.
	MarkerKeepLast
)

// String returns the policy name used by the command-line flags.
func (p MarkerPolicy) String() string {
	switch p {
	case MarkerReject:
		return "reject"
	case MarkerKeepFirst:
		return "first"
	case MarkerKeepLast:
		return "last"
	default:
		return fmt.Sprintf("MarkerPolicy(%d)", int(p))
	}
}

// ParsePolicy maps "reject", "first" or "last" to a MarkerPolicy.
func ParsePolicy(s string) (MarkerPolicy, error) {
	switch s {
	case "reject", "":
		return MarkerReject, nil
	case "first":
		return MarkerKeepFirst, nil
	case "last":
		return MarkerKeepLast, nil
	default:
		return MarkerReject, fmt.Errorf("%w: unknown marker policy %q", ErrOptionViolation, s)
	}
}

// Options holds parsing parameters.
type Options struct {
	// Open, Start and End are the traversable, start and end symbols.
	Open, Start, End rune
	// ExtraOpen lists additional traversable symbols.
	ExtraOpen []rune
	// Policy resolves repeated markers.
	Policy MarkerPolicy
	// TrimCR strips one trailing '\r' from each row.
	TrimCR bool
	// StartAsEnd uses the start cell as the end when no end marker exists.
	StartAsEnd bool

	// internal error recorded during option parsing
	err error
}

// Option configures parsing via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Parse.
type Option func(*Options)

// DefaultOptions returns the defaults: '.', 'S', 'E', MarkerReject,
// TrimCR on, StartAsEnd off.
func DefaultOptions() Options {
	return Options{
		Open:   SymbolOpen,
		Start:  SymbolStart,
		End:    SymbolEnd,
		Policy: MarkerReject,
		TrimCR: true,
	}
}

// WithSymbols overrides the open, start and end symbols.
// open must differ from both markers; start and end may coincide.
func WithSymbols(open, start, end rune) Option {
	return func(o *Options) {
		if open == start || open == end {
			o.err = fmt.Errorf("%w: open symbol %q collides with a marker", ErrOptionViolation, open)
			return
		}
		o.Open, o.Start, o.End = open, start, end
	}
}

// WithOpenSymbols registers additional traversable symbols.
func WithOpenSymbols(symbols ...rune) Option {
	return func(o *Options) {
		o.ExtraOpen = append(o.ExtraOpen, symbols...)
	}
}

// WithMarkerPolicy selects how repeated markers are resolved.
func WithMarkerPolicy(p MarkerPolicy) Option {
	return func(o *Options) {
		if p < MarkerReject || p > MarkerKeepLast {
			o.err = fmt.Errorf("%w: unknown marker policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Policy = p
	}
}

// WithTrimCR toggles stripping of a trailing '\r' per row.
func WithTrimCR(on bool) Option {
	return func(o *Options) {
		o.TrimCR = on
	}
}

// WithStartAsEnd lets a grid without an end marker use its start cell as
// the end.
func WithStartAsEnd() Option {
	return func(o *Options) {
		o.StartAsEnd = true
	}
}

// Layout is the classified content of a parsed grid.
// Every coordinate inside Bounds is in exactly one of Traversable or Walls.
type Layout struct {
	Traversable map[grid.Coordinate]struct{}
	Walls       map[grid.Coordinate]struct{}
	Start, End  grid.Coordinate
	Bounds      grid.Bounds
}

// IsTraversable reports whether c was classified traversable.
func (l *Layout) IsTraversable(c grid.Coordinate) bool {
	_, ok := l.Traversable[c]
	return ok
}
