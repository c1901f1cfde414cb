// Package kdgroup builds the Cayley–Dickson tower of algebras and derives
// the finite group formed by their signed basis units, ready to be drawn as
// a Cayley graph or a multiplication-table heatmap.
//
// 🚀 What is kdgroup?
//
//	A small, deterministic library plus CLI that brings together:
//		• Algebra: Cayley–Dickson numbers as binary trees, memoized products
//		• Group:   member list, integer multiplication table, group index
//		• Graphs:  right-multiplication permutation graphs, connectivity
//		• Layout:  greedy generators and 4-element loops for drawing
//
// Under the hood, everything is organized under these subpackages:
//
//	algebra/       Element, Multiplier (memo cache), ExpandBasis, Basis
//	group/         Members, Index, BuildTable, FindGenerators, FindLoops, Derive
//	permgraph/     Union, Components, Connected over 0/1 matrices
//	cmd/kdgroup/   CLI: summary, table, export (text/yaml), dot
//
// Quick ASCII example, the complex units under right-multiplication by i:
//
//	 1 ──► i
//	 ▲     │
//	 │     ▼
//	-i ◄── -1
//
//	go install github.com/katalvlaran/kdgroup/cmd/kdgroup@latest
package kdgroup
