package util

import mapset "github.com/deckarep/golang-set/v2"

type SetMap[K, V comparable] map[K]mapset.Set[V]

func NewSetMap[K, V comparable](keys ...K) SetMap[K, V] {
	m := make(SetMap[K, V])
	for _, key := range keys {
		m[key] = mapset.NewThreadUnsafeSet[V]()
	}
	return m
}

func (m SetMap[K, V]) Add(key K, value V) {
	if _, ok := m[key]; !ok {
		m[key] = mapset.NewThreadUnsafeSet[V]()
	}
	m[key].Add(value)
}

// Get returns the set stored for key, or an empty set.
func (m SetMap[K, V]) Get(key K) mapset.Set[V] {
	if s, ok := m[key]; ok {
		return s
	}
	return mapset.NewThreadUnsafeSet[V]()
}
