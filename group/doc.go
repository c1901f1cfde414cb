// Package group derives the finite signed-unit group of a Cayley–Dickson
// algebra: its member list, integer multiplication table, a greedy minimal
// generator set and the 4-element loops used to lay the Cayley graph out.
//
// What
//
//   - Members: basis ++ −basis. A member's position is its group index, so
//     1 ↦ 0 and −x ↦ Index(x) + M with M = len(basis).
//   - Table: G[i][j] = Index(members[i]·members[j]); every row and column is
//     a permutation of 0..2M-1.
//   - Generators: columns 1, 2, … are added in order until the union of
//     their right-multiplication graphs connects every index.
//   - Loops: connected components of the first generator's graph; each holds
//     exactly 4 indices (x, x·g, x·g², x·g³ with g² = −1).
//
// Why
//
//   - The table is the input for drawing Cayley graphs and heatmaps; names
//     and labels let a renderer print "i", "-k" or "e11" instead of tuples.
//
// Determinism
//
//	Columns are scanned in increasing order and components are sorted by
//	their smallest index, so two runs over the same order always agree.
//
// Example:
//
//	res, err := group.Derive(2)
//	// res.Table[1][2] == 3   (i·j = k)
//	// res.GeneratorColumns() == [1 2]
//	// res.Loops == [[0 1 4 5] [2 3 6 7]]
package group
