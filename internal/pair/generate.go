package pair

import "github.com/haijima/pairchain/internal/util"

// Generate returns every new pair formed by crossing the names of two distinct base pairs.
//
// For each ordered combination (outer, inner) of base positions the candidates are
// (inner.First, outer.First), (inner.First, outer.Second), (inner.Second, outer.First)
// and (inner.Second, outer.Second), in that order. A candidate is kept only when neither
// it nor its reverse is in base or was generated before. Candidates pairing a name with
// itself are skipped, so [(A,B), (B,C)] yields only (C,A) and [(A,B), (B,A)] yields nothing.
func Generate(base []Pair) []Pair {
	generated := make([]Pair, 0)
	used := NewRegistry(base...)
	util.PermutateFunc(base, func(outer, inner Pair) {
		candidates := [4]Pair{
			New(inner.First, outer.First),
			New(inner.First, outer.Second),
			New(inner.Second, outer.First),
			New(inner.Second, outer.Second),
		}
		for _, c := range candidates {
			if c.SelfLoop() {
				continue
			}
			if used.Add(c) {
				generated = append(generated, c)
			}
		}
	})
	return generated
}

// Combine concatenates lists dropping pairs equal to an earlier one. The first orientation wins.
func Combine(lists ...[]Pair) []Pair {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	combined := make([]Pair, 0, n)
	seen := NewRegistry()
	for _, l := range lists {
		for _, p := range l {
			if seen.Add(p) {
				combined = append(combined, p)
			}
		}
	}
	return combined
}
