// Package path defines Path, the immutable vertex/edge-weight sequence that
// k-shortest-path searches produce, splice and compare.
//
// A closed Path holds n ≥ 1 vertices and n−1 edge weights; its cost is the sum
// of the weights. DropLast produces an "open" path that keeps the weight of the
// edge into the removed vertex, so that Concat can splice a path starting at
// that vertex without losing cost:
//
//	root  = A ─1─ B ─2─ C          (closed, cost 3)
//	open  = A ─1─ B ─2─ ·          (DropLast, cost 3)
//	spur  =             C ─4─ D    (closed, cost 4)
//	open.Concat(spur)
//	      = A ─1─ B ─2─ C ─4─ D    (closed, cost 7)
//
// Every method returns a new Path; receivers are never mutated, and no two
// Paths share backing arrays.
package path
