// SPDX-License-Identifier: MIT

// Package algebra - the doubling product and its memo cache.
//
// Purpose:
//   - Implement (a,b)·(c,d) = (a·c − conj(d)·b, d·a + b·conj(c)).
//   - Cache products per exact operand pair, inner products included.
//
// AI-Hints:
//   - Create one Multiplier per derivation run; drop it to release the cache.
//   - WithMemoization(false) gives the plain recursive product, useful to
//     check that caching never changes a result.

package algebra

import (
	"sync"
	"sync/atomic"
)

// MultiplierOption configures a Multiplier.
type MultiplierOption func(*Multiplier)

// WithMemoization enables (default) or disables the product cache.
func WithMemoization(enabled bool) MultiplierOption {
	return func(m *Multiplier) { m.memoize = enabled }
}

// CacheStats is a snapshot of Multiplier cache activity.
type CacheStats struct {
	Hits    uint64 // products served from the cache
	Misses  uint64 // products computed and inserted
	Entries int    // distinct operand pairs currently cached
}

// productKey identifies an ordered operand pair by value.
type productKey struct {
	x, y string
}

// Multiplier computes Cayley–Dickson products with an optional memo cache.
// The cache is insert-if-absent and guarded by mu, so one Multiplier may be
// shared between goroutines.
type Multiplier struct {
	memoize bool

	mu    sync.RWMutex // guards cache
	cache map[productKey]Element

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMultiplier returns a Multiplier with memoization enabled unless
// overridden by opts.
func NewMultiplier(opts ...MultiplierOption) *Multiplier {
	m := &Multiplier{
		memoize: true,
		cache:   make(map[productKey]Element),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Memoized reports whether products are cached.
func (m *Multiplier) Memoized() bool { return m.memoize }

// Stats returns a snapshot of cache counters.
func (m *Multiplier) Stats() CacheStats {
	m.mu.RLock()
	n := len(m.cache)
	m.mu.RUnlock()

	return CacheStats{Hits: m.hits.Load(), Misses: m.misses.Load(), Entries: n}
}

// Reset drops every cached product and zeroes the counters.
func (m *Multiplier) Reset() {
	m.mu.Lock()
	m.cache = make(map[productKey]Element)
	m.mu.Unlock()
	m.hits.Store(0)
	m.misses.Store(0)
}

// Mul returns x·y.
// Returns ErrShapeMismatch if x and y have different orders.
// The product is neither commutative (order ≥ 2) nor associative (order ≥ 3).
func (m *Multiplier) Mul(x, y Element) (Element, error) {
	if x.Order() != y.Order() {
		return Element{}, ErrShapeMismatch
	}

	return m.mul(x, y), nil
}

// mul assumes matching shapes; every recursive product goes through the cache.
func (m *Multiplier) mul(x, y Element) Element {
	if x.node == nil {
		return Scalar(x.real * y.real)
	}
	if !m.memoize {
		return m.expand(x, y)
	}

	key := productKey{x: x.Key(), y: y.Key()}
	m.mu.RLock()
	z, ok := m.cache[key]
	m.mu.RUnlock()
	if ok {
		m.hits.Add(1)
		return z
	}

	z = m.expand(x, y)
	m.mu.Lock()
	if cached, ok := m.cache[key]; ok {
		z = cached // another goroutine won the race; keep the first value
	} else {
		m.cache[key] = z
	}
	m.mu.Unlock()
	m.misses.Add(1)

	return z
}

// expand applies the doubling formula one level down.
func (m *Multiplier) expand(x, y Element) Element {
	a, b := x.node.a, x.node.b
	c, d := y.node.a, y.node.b

	first := m.mul(a, c).combine(m.mul(d.Conj(), b), sub)
	second := m.mul(d, a).combine(m.mul(b, c.Conj()), add)

	return pairOf(first, second)
}

func add(p, q float64) float64 { return p + q }
func sub(p, q float64) float64 { return p - q }

// Mul returns x·y without caching.
// Returns ErrShapeMismatch if x and y have different orders.
func Mul(x, y Element) (Element, error) {
	return NewMultiplier(WithMemoization(false)).Mul(x, y)
}
