package pair

import (
	"log/slog"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/haijima/pairchain/internal/util"
)

var ErrDuplicatePair = errors.New("duplicate pair")

// Sort orders pairs into a chain where each pair's Second is the next pair's First.
//
// Pairs are picked greedily in input order and may be reversed. When nothing continues
// the tail, the first unused pair is either appended reversed (if it shares the tail's
// First) or prepended, reversed when its First matches the front pair's First or its
// Second matches the front pair's Second. The result can therefore contain breaks when
// the pairs do not form a single trail; see Segments.
func Sort(pairs []Pair) ([]Pair, error) {
	if len(pairs) < 2 {
		return slices.Clone(pairs), nil
	}
	if err := checkUnique(pairs); err != nil {
		return nil, err
	}

	sorted := make([]Pair, 0, len(pairs))
	used := NewRegistry()
	for len(sorted) < len(pairs) {
		last, ok := util.Last(sorted)
		if !ok {
			last = pairs[0]
		}

		if next, ok := findUnused(pairs, used, func(p Pair) bool { return p.First == last.Second }); ok {
			sorted = append(sorted, next)
			used.Add(next)
			continue
		}
		if next, ok := findUnused(pairs, used, func(p Pair) bool { return p.Second == last.Second }); ok {
			sorted = append(sorted, next.Reverse())
			used.Add(next)
			continue
		}

		next, ok := findUnused(pairs, used, func(Pair) bool { return true })
		if !ok {
			return nil, errors.AssertionFailedf("no unused pair left with %d of %d pairs placed", len(sorted), len(pairs))
		}
		// next.Second == last.Second cannot hold here: the search above would have taken it.
		if next.First == last.First || next.Second == last.Second {
			slog.Debug("chain broken at tail", "last", last, "next", next.Reverse())
			sorted = append(sorted, next.Reverse())
		} else {
			if front, ok := util.First(sorted); ok && (next.First == front.First || next.Second == front.Second) {
				next = next.Reverse()
			}
			slog.Debug("chain extended at front", "last", last, "next", next)
			sorted = slices.Insert(sorted, 0, next)
		}
		used.Add(next)
	}
	return sorted, nil
}

func findUnused(pairs []Pair, used *Registry, match func(Pair) bool) (Pair, bool) {
	i := slices.IndexFunc(pairs, func(p Pair) bool { return match(p) && !used.Contains(p) })
	if i < 0 {
		return Pair{}, false
	}
	return pairs[i], true
}

func checkUnique(pairs []Pair) error {
	seen := NewRegistry()
	for _, p := range pairs {
		if !seen.Add(p) {
			return errors.Wrapf(ErrDuplicatePair, "%q", p.String())
		}
	}
	return nil
}

// Segments splits chain at every position where a pair does not continue the previous one.
func Segments(chain []Pair) [][]Pair {
	segments := make([][]Pair, 0)
	start := 0
	for i := 1; i <= len(chain); i++ {
		if i == len(chain) || chain[i-1].Second != chain[i].First {
			segments = append(segments, chain[start:i])
			start = i
		}
	}
	return segments
}
