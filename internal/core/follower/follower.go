package follower

import "slices"

// Set is the ordered list of user ids a viewer follows. Values are treated as
// immutable; Toggle returns a fresh slice.
type Set []int64

func (s Set) Has(userID int64) bool {
	return slices.Contains(s, userID)
}

// Toggle flips membership of userID and reports whether it is now followed.
func (s Set) Toggle(userID int64) (Set, bool) {
	if i := slices.Index(s, userID); i >= 0 {
		out := make(Set, 0, len(s)-1)
		out = append(out, s[:i]...)
		return append(out, s[i+1:]...), false
	}
	out := make(Set, 0, len(s)+1)
	out = append(out, s...)
	return append(out, userID), true
}

// Graph maps a follower id to the set of users it follows.
type Graph map[int64]Set

// With returns a copy of g where followerID follows exactly set.
func (g Graph) With(followerID int64, set Set) Graph {
	out := make(Graph, len(g)+1)
	for k, v := range g {
		out[k] = v
	}
	if len(set) == 0 {
		delete(out, followerID)
		return out
	}
	out[followerID] = set
	return out
}
