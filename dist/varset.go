package dist

import (
	"fmt"
	"sort"
	"strings"
)

// VarSet is an immutable set of integer variable identifiers, stored sorted
// ascending without duplicates. The zero value is the empty set. VarSet is a
// value type: set operations return new sets and never alias the receiver's
// storage outward.
type VarSet struct {
	ids []int // sorted ascending, unique; never handed out directly
}

// NewVarSet builds a VarSet from the given identifiers, deduplicating and
// sorting them. Complexity: O(n log n).
func NewVarSet(ids ...int) VarSet {
	if len(ids) == 0 {
		return VarSet{}
	}
	s := make([]int, len(ids))
	copy(s, ids)
	sort.Ints(s)

	// Compact duplicates in place.
	out := s[:1]
	for _, id := range s[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}

	return VarSet{ids: out}
}

// Len returns the number of variables in the set.
func (s VarSet) Len() int { return len(s.ids) }

// IsEmpty reports whether the set has no variables.
func (s VarSet) IsEmpty() bool { return len(s.ids) == 0 }

// IDs returns the variables in ascending order, as a copy.
func (s VarSet) IDs() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)

	return out
}

// Contains reports whether id is a member. Complexity: O(log n).
func (s VarSet) Contains(id int) bool {
	i := sort.SearchInts(s.ids, id)

	return i < len(s.ids) && s.ids[i] == id
}

// Union returns s ∪ o.
func (s VarSet) Union(o VarSet) VarSet {
	merged := make([]int, 0, len(s.ids)+len(o.ids))
	i, j := 0, 0
	for i < len(s.ids) && j < len(o.ids) {
		switch {
		case s.ids[i] < o.ids[j]:
			merged = append(merged, s.ids[i])
			i++
		case s.ids[i] > o.ids[j]:
			merged = append(merged, o.ids[j])
			j++
		default:
			merged = append(merged, s.ids[i])
			i++
			j++
		}
	}
	merged = append(merged, s.ids[i:]...)
	merged = append(merged, o.ids[j:]...)

	return VarSet{ids: merged}
}

// Diff returns s \ o.
func (s VarSet) Diff(o VarSet) VarSet {
	out := make([]int, 0, len(s.ids))
	for _, id := range s.ids {
		if !o.Contains(id) {
			out = append(out, id)
		}
	}

	return VarSet{ids: out}
}

// SubsetOf reports whether every member of s belongs to o.
func (s VarSet) SubsetOf(o VarSet) bool {
	for _, id := range s.ids {
		if !o.Contains(id) {
			return false
		}
	}

	return true
}

// DisjointFrom reports whether s and o share no variable.
func (s VarSet) DisjointFrom(o VarSet) bool {
	for _, id := range s.ids {
		if o.Contains(id) {
			return false
		}
	}

	return true
}

// Equal reports whether s and o contain exactly the same variables.
func (s VarSet) Equal(o VarSet) bool {
	if len(s.ids) != len(o.ids) {
		return false
	}
	for i, id := range s.ids {
		if o.ids[i] != id {
			return false
		}
	}

	return true
}

// String renders the set as {a, b, c} in ascending order.
func (s VarSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, id := range s.ids {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", id)
	}
	b.WriteString("}")

	return b.String()
}
