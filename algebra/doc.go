// Package algebra implements Cayley–Dickson numbers as fixed-depth binary
// trees of real coefficients, together with the basis doubling step that
// produces the next algebra in the tower.
//
// 🚀 What is the Cayley–Dickson construction?
//
//	Starting from the reals, every step pairs two numbers of the previous
//	algebra into one number of an algebra twice the dimension:
//	  • order 0: reals        (1 term)
//	  • order 1: complex      (2 terms)
//	  • order 2: quaternions  (4 terms, not commutative)
//	  • order 3: octonions    (8 terms, not associative)
//	  • order 4: sedenions    (16 terms)
//
// The product of x = (a,b) and y = (c,d) is
//
//	(a·c − conj(d)·b, d·a + b·conj(c))
//
// and conj((a,b)) = (conj(a), −b), with reals self-conjugate.
//
// ✨ Key features:
//   - Element is an immutable value; the zero value is the scalar 0.
//   - NewPair enforces the depth invariant, so mixed shapes cannot be built.
//   - Multiplier memoizes products per operand pair; the cache lives exactly
//     as long as the Multiplier and is safe for concurrent use.
//   - ExpandBasis preserves the canonical 1, i, j, k, … ordering.
//
// ⚙️ Usage:
//
//	basis, err := algebra.Basis(2) // 1, i, j, k
//	m := algebra.NewMultiplier()
//	k, err := m.Mul(basis[1], basis[2])
//	fmt.Println(k) // (0, 0, 0, 1)
//
// Performance:
//
//   - Mul: O(4^order) without memoization, amortized O(2^order) per cached pair.
//   - Flatten, Key, Equal: O(2^order).
package algebra
