// Package group defines the table, generator and result types, options and
// sentinel errors of the group derivation.
package group

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/kdgroup/algebra"
	"github.com/katalvlaran/kdgroup/permgraph"
)

// Sentinel errors for group derivation.
var (
	// ErrNotUnit is returned when an element's coordinates are not a single ±1.
	ErrNotUnit = errors.New("group: not a unit direction")

	// ErrUnsupportedOrder is returned when a loop component does not have
	// exactly LoopSize vertices.
	ErrUnsupportedOrder = errors.New("group: unsupported order")

	// ErrNotPermutation is returned when a table row or column repeats an index.
	ErrNotPermutation = errors.New("group: table row or column is not a permutation")

	// ErrDisconnected is returned when no generator prefix connects the group.
	ErrDisconnected = errors.New("group: generators do not connect the group")

	// ErrColumnOutOfRange is returned for a generator column outside the table.
	ErrColumnOutOfRange = errors.New("group: column out of range")

	// ErrEmptyTable is returned when an operation needs at least one row.
	ErrEmptyTable = errors.New("group: table is empty")

	// ErrOrderTooLarge is returned when Derive is asked for an order above MaxOrder.
	ErrOrderTooLarge = errors.New("group: order exceeds limit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("group: invalid option supplied")
)

// LoopSize is the number of indices in every layout loop.
const LoopSize = 4

// DefaultMaxOrder bounds Derive; order 6 already yields a 128×128 table.
const DefaultMaxOrder = 6

// Table is the group multiplication table over group indices.
type Table [][]int

// Size returns the number of group elements.
func (t Table) Size() int { return len(t) }

// Validate checks that t is square and every row and column is a
// permutation of 0..Size()-1.
func (t Table) Validate() error {
	n := len(t)
	if n == 0 {
		return ErrEmptyTable
	}
	for i, row := range t {
		if len(row) != n {
			return fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), n, ErrNotPermutation)
		}
	}
	for i := 0; i < n; i++ {
		rowSeen := make([]bool, n)
		colSeen := make([]bool, n)
		for j := 0; j < n; j++ {
			r, c := t[i][j], t[j][i]
			if r < 0 || r >= n || rowSeen[r] {
				return fmt.Errorf("row %d: %w", i, ErrNotPermutation)
			}
			if c < 0 || c >= n || colSeen[c] {
				return fmt.Errorf("column %d: %w", i, ErrNotPermutation)
			}
			rowSeen[r], colSeen[c] = true, true
		}
	}

	return nil
}

// Generator is one chosen generator: its column (group index) and the
// right-multiplication permutation matrix of that column.
type Generator struct {
	Column int
	Edges  permgraph.Matrix
}

// Result is the outcome of Derive.
type Result struct {
	Order      int               // doubling order
	Basis      []algebra.Element // standard basis, length 2^Order
	Members    []algebra.Element // basis ++ −basis, indexed by group index
	Table      Table             // Table[i][j] = Index(Members[i]·Members[j])
	Generators []Generator       // greedy generator prefix
	Loops      [][]int           // nil when loop extraction was disabled
	Cache      algebra.CacheStats
}

// GeneratorColumns returns the group indices of the chosen generators.
func (r *Result) GeneratorColumns() []int {
	cols := make([]int, len(r.Generators))
	for k, g := range r.Generators {
		cols[k] = g.Column
	}

	return cols
}

// Label returns the display name of member idx, falling back to "e<idx>".
func (r *Result) Label(idx int) string {
	if idx < 0 || idx >= len(r.Members) {
		return fmt.Sprintf("e%d", idx)
	}

	return Label(r.Members[idx], idx)
}

// Option configures table building and derivation via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of BuildTable and Derive.
type Options struct {
	// Ctx allows cancellation between table rows.
	Ctx context.Context

	// Workers is the number of goroutines computing table rows; 1 is serial.
	Workers int

	// Memoize enables the product cache of the run's Multiplier.
	Memoize bool

	// Loops enables loop extraction in Derive. Order 0 has a 2-element
	// group and needs Loops disabled.
	Loops bool

	// MaxOrder is the largest order Derive accepts.
	MaxOrder int

	err error
}

// DefaultOptions returns Options with a background context, serial table
// building, memoization on, loop extraction on and MaxOrder = DefaultMaxOrder.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Workers:  1,
		Memoize:  true,
		Loops:    true,
		MaxOrder: DefaultMaxOrder,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of row workers.
//
//	n > 0: use n goroutines
//	n <= 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMemoization toggles the product cache.
func WithMemoization(enabled bool) Option {
	return func(o *Options) { o.Memoize = enabled }
}

// WithLoops toggles loop extraction in Derive.
func WithLoops(enabled bool) Option {
	return func(o *Options) { o.Loops = enabled }
}

// WithMaxOrder raises or lowers the order limit of Derive.
func WithMaxOrder(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxOrder cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxOrder = n
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
