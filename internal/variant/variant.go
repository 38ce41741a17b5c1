// Package variant models the playable encodings listed in a channel's
// master playlist and their best-first ordering.
package variant

import (
	"fmt"
	"sort"
)

// Rank is the quality key of a variant. Source marks the platform's
// "source" rendition, which outranks every numeric quality label.
type Rank struct {
	Source bool
	Value  int
}

// Label returns the display label: "best" for the source rendition,
// "<value>p" otherwise.
func (r Rank) Label() string {
	if r.Source {
		return "best"
	}
	return fmt.Sprintf("%dp", r.Value)
}

// Above reports whether r sorts before other in best-first order.
func (r Rank) Above(other Rank) bool {
	if r.Source != other.Source {
		return r.Source
	}
	return r.Value > other.Value
}

// Variant is one playable encoding of a stream. Resolution and Bandwidth
// carry the playlist's attribute values verbatim.
type Variant struct {
	Resolution string
	Bandwidth  string
	Link       string
	Rank       Rank
}

// Label returns the variant's display label.
func (v Variant) Label() string { return v.Rank.Label() }

// Order flattens a rank-keyed collection into a best-first slice: the
// source rendition leads when present, numeric ranks follow in
// descending order.
func Order(byRank map[Rank]Variant) []Variant {
	out := make([]Variant, 0, len(byRank))
	for _, v := range byRank {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Rank.Above(out[j].Rank)
	})
	return out
}
