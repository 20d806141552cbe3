package pair

import mapset "github.com/deckarep/golang-set/v2"

// Registry is a set of pairs compared without regard to orientation.
type Registry struct {
	keys mapset.Set[Key]
}

func NewRegistry(pairs ...Pair) *Registry {
	r := &Registry{keys: mapset.NewThreadUnsafeSet[Key]()}
	for _, p := range pairs {
		r.Add(p)
	}
	return r
}

// Add registers p and reports whether it was not registered yet.
func (r *Registry) Add(p Pair) bool {
	return r.keys.Add(p.Key())
}

func (r *Registry) Contains(p Pair) bool {
	return r.keys.Contains(p.Key())
}

func (r *Registry) Len() int {
	return r.keys.Cardinality()
}
