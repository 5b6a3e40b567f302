// Package assemble turns flat, joined query results into nested graphs
// grouped by parent key. It operates purely on rows already loaded; it never
// queries the store.
package assemble

// Grouped pairs a parent row with the child rows that reference it.
type Grouped[P, C any] struct {
	Parent   P   `json:"parent"`
	Children []C `json:"children"`
}

// Group nests child rows under their parents.
//
// The output holds one entry per distinct parent key, in the parent list's
// relative order. A parent with no matching children gets an empty, non-nil
// children slice. Children keep the relative order they had in the child
// list; no ordering is invented. Children whose key matches no parent are
// dropped — a cross-read consistency gap, not an error.
//
// Runs in O(len(parents) + len(children)): empty buckets are seeded from the
// parent list, the child list is scanned once, then the parent list is walked
// in its original order.
func Group[P, C any, K comparable](
	parents []P,
	children []C,
	parentKey func(P) K,
	childKey func(C) K,
) []Grouped[P, C] {
	buckets := make(map[K][]C, len(parents))
	for _, p := range parents {
		k := parentKey(p)
		if _, ok := buckets[k]; !ok {
			buckets[k] = []C{}
		}
	}

	for _, c := range children {
		k := childKey(c)
		if bucket, ok := buckets[k]; ok {
			buckets[k] = append(bucket, c)
		}
	}

	out := make([]Grouped[P, C], 0, len(parents))
	seen := make(map[K]struct{}, len(parents))
	for _, p := range parents {
		k := parentKey(p)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, Grouped[P, C]{Parent: p, Children: buckets[k]})
	}
	return out
}
