package group

import (
	"fmt"

	"github.com/katalvlaran/kdgroup/algebra"
)

// Members returns basis ++ [−x for x in basis]; position is the group index.
func Members(basis []algebra.Element) []algebra.Element {
	members := make([]algebra.Element, 0, 2*len(basis))
	members = append(members, basis...)
	for _, x := range basis {
		members = append(members, x.Neg())
	}

	return members
}

// Index returns the group index of the signed unit x.
//
// The coordinates of x must hold exactly one non-zero entry, equal to +1
// or −1, at position p. The index is p for +1 and x.Terms()+p for −1.
// Any other element yields ErrNotUnit.
func Index(x algebra.Element) (int, error) {
	coeffs := x.Flatten()
	pos := -1
	for p, v := range coeffs {
		if v == 0 {
			continue
		}
		if pos >= 0 {
			return 0, fmt.Errorf("%v: %w", x, ErrNotUnit)
		}
		pos = p
	}
	if pos < 0 {
		return 0, fmt.Errorf("%v: %w", x, ErrNotUnit)
	}

	switch coeffs[pos] {
	case 1:
		return pos, nil
	case -1:
		return len(coeffs) + pos, nil
	default:
		return 0, fmt.Errorf("%v: %w", x, ErrNotUnit)
	}
}
