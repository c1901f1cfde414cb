// SPDX-License-Identifier: MIT

// Package algebra - Element type, constructors and sentinel errors.

package algebra

import "errors"

// Sentinel errors for algebra operations.
var (
	// ErrShapeMismatch indicates operands of different doubling order.
	ErrShapeMismatch = errors.New("algebra: shape mismatch")

	// ErrEmptyBasis indicates that a basis with no elements was supplied.
	ErrEmptyBasis = errors.New("algebra: basis is empty")

	// ErrNegativeOrder indicates a negative doubling order.
	ErrNegativeOrder = errors.New("algebra: order must be >= 0")
)

// Element is a Cayley–Dickson number.
//
// A leaf holds a single real coefficient; a node holds the pair (a, b) of
// two elements of the previous algebra. Both halves of a node always share
// the same order. Elements are never mutated after construction.
type Element struct {
	real float64 // coefficient of a leaf; unused for nodes
	node *pair   // nil for leaves
}

// pair is the payload of a non-leaf Element.
type pair struct {
	a, b  Element
	order int // a.Order() + 1
}

// Scalar returns the order-0 element holding the real x.
func Scalar(x float64) Element {
	return Element{real: x}
}

// NewPair returns the element (a, b) of order a.Order()+1.
// Returns ErrShapeMismatch if a and b do not share the same order.
func NewPair(a, b Element) (Element, error) {
	if a.Order() != b.Order() {
		return Element{}, ErrShapeMismatch
	}

	return pairOf(a, b), nil
}

// pairOf builds a node without checking shapes; callers guarantee a and b match.
func pairOf(a, b Element) Element {
	return Element{node: &pair{a: a, b: b, order: a.Order() + 1}}
}

// IsScalar reports whether x is a leaf.
func (x Element) IsScalar() bool { return x.node == nil }

// Real returns the coefficient of a leaf, or the real part (first
// flattened coefficient) of a node.
func (x Element) Real() float64 {
	for x.node != nil {
		x = x.node.a
	}

	return x.real
}

// Halves returns the pair (a, b) of a node. For a leaf ok is false.
func (x Element) Halves() (a, b Element, ok bool) {
	if x.node == nil {
		return Element{}, Element{}, false
	}

	return x.node.a, x.node.b, true
}

// Order returns the doubling depth of x: 0 for reals, 1 for complex, …
func (x Element) Order() int {
	if x.node == nil {
		return 0
	}

	return x.node.order
}

// Terms returns the number of real coefficients of x, 2^Order().
func (x Element) Terms() int {
	return 1 << x.Order()
}
