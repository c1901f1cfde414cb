package group

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/kdgroup/algebra"
)

var log = logging.Logger("group")

// Derive runs the whole pipeline for one doubling order: basis, members,
// table, generators and (unless disabled) loops. Every call owns a fresh
// algebra.Multiplier, so the product cache does not outlive the call.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - algebra.ErrNegativeOrder, ErrOrderTooLarge for orders out of range.
//   - ErrNotPermutation if the table is not a Latin square.
//   - ErrUnsupportedOrder from loop extraction (always at order 0).
//   - The context error on cancellation.
func Derive(order int, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if order > o.MaxOrder {
		return nil, fmt.Errorf("order %d > %d: %w", order, o.MaxOrder, ErrOrderTooLarge)
	}

	basis, err := algebra.Basis(order)
	if err != nil {
		return nil, err
	}
	members := Members(basis)
	log.Debugw("deriving group", "order", order, "members", len(members), "memoize", o.Memoize, "workers", o.Workers)

	m := algebra.NewMultiplier(algebra.WithMemoization(o.Memoize))
	table, err := BuildTable(m, members, opts...)
	if err != nil {
		return nil, fmt.Errorf("group: order %d: %w", order, err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("group: order %d: %w", order, err)
	}
	stats := m.Stats()
	log.Debugw("table built", "order", order, "cacheHits", stats.Hits, "cacheMisses", stats.Misses, "cacheEntries", stats.Entries)

	gens, err := FindGenerators(table)
	if err != nil {
		return nil, fmt.Errorf("group: order %d: %w", order, err)
	}
	res := &Result{
		Order:      order,
		Basis:      basis,
		Members:    members,
		Table:      table,
		Generators: gens,
		Cache:      stats,
	}
	log.Infof("%d generators found for the group of order %d", len(gens), order)

	if o.Loops {
		if len(gens) == 0 {
			return nil, fmt.Errorf("group: order %d has no generator to take loops from: %w", order, ErrUnsupportedOrder)
		}
		loops, err := FindLoops(gens[0].Edges)
		if err != nil {
			return nil, fmt.Errorf("group: order %d: %w", order, err)
		}
		res.Loops = loops
	}

	return res, nil
}
