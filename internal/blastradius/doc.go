// Package blastradius answers "what breaks if this runs out". It walks the
// menu composition graph upward from an ingredient, sub-recipe or menu item
// and reports every node that transitively depends on it together with the
// hourly revenue of the affected menu items.
//
// An Engine is immutable once built by New, so Compute may be called from any
// number of goroutines without locking.
//
// Edges are reported as they are discovered during the walk. An edge into a
// node that was already reached through another path is still reported, and a
// requirement declared twice yields the same edge twice. Consumers that render
// the graph rely on that multiplicity, so edges are never deduplicated.
package blastradius
