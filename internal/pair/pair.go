package pair

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// Pair is a relationship between two names.
// Orientation matters only for rendering; equality ignores it.
type Pair struct {
	First  string
	Second string
}

func New(first, second string) Pair {
	return Pair{First: first, Second: second}
}

// Equal reports whether p and o hold the same two names in either order.
func (p Pair) Equal(o Pair) bool {
	return p == o || p == o.Reverse()
}

func (p Pair) Reverse() Pair {
	return Pair{First: p.Second, Second: p.First}
}

func (p Pair) Has(name string) bool {
	return p.First == name || p.Second == name
}

// SelfLoop reports whether both components are the same name.
func (p Pair) SelfLoop() bool {
	return p.First == p.Second
}

// Key returns the canonical form of p. Two pairs have the same Key iff they are Equal.
func (p Pair) Key() Key {
	if p.Second < p.First {
		return Key{lo: p.Second, hi: p.First}
	}
	return Key{lo: p.First, hi: p.Second}
}

func (p Pair) String() string {
	return fmt.Sprintf("%s - %s", p.First, p.Second)
}

type Key struct{ lo, hi string }

// Parse reads a pair written as "first - second" or "first,second".
func Parse(s string) (Pair, error) {
	sep := " - "
	if strings.Contains(s, ",") {
		sep = ","
	}
	first, second, ok := strings.Cut(s, sep)
	if !ok {
		return Pair{}, errors.Newf("invalid pair %q: expected \"first - second\" or \"first,second\"", s)
	}
	first, second = strings.TrimSpace(first), strings.TrimSpace(second)
	if first == "" || second == "" {
		return Pair{}, errors.Newf("invalid pair %q: empty name", s)
	}
	return New(first, second), nil
}

// Read parses one pair per line. Blank lines and lines starting with '#' are skipped.
func Read(r io.Reader) ([]Pair, error) {
	pairs := make([]Pair, 0)
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := Parse(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		pairs = append(pairs, p)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read pairs")
	}
	return pairs, nil
}
