/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package container

import (
	"iter"

	"github.com/tridentrdf/core/graphkey"
	"github.com/tridentrdf/core/term"
)

// Set is a duplicate-rejecting triple container backed by a Go map keyed by
// Triple.CacheKey rather than by Go's native struct equality, so that two
// triples built from differing Holder representations of the same content
// (e.g. split vs whole IRI) are recognized as the same entry.
type Set[H term.Holder] struct {
	byKey map[string]Triple[H]
}

// NewSet returns an empty Set.
func NewSet[H term.Holder]() *Set[H] {
	return &Set[H]{byKey: make(map[string]Triple[H])}
}

// IsSet marks Set as a set-flagged container: repeated Insert of equal
// content is always rejected, never producing a duplicate entry.
func (s *Set[H]) IsSet() bool { return true }

// Triples yields every stored triple in the map's iteration order (a set
// has no required order), never failing.
func (s *Set[H]) Triples() iter.Seq2[Triple[H], error] {
	return func(yield func(Triple[H], error) bool) {
		for _, t := range s.byKey {
			if !yield(t, nil) {
				return
			}
		}
	}
}

// Insert reports false, without modifying the set, if (s, p, o) is already
// present; otherwise it is added and Insert reports true.
func (st *Set[H]) Insert(s, p, o term.Term[H]) (bool, error) {
	t := Triple[H]{S: s, P: p, O: o}
	key := t.CacheKey()
	if _, exists := st.byKey[key]; exists {
		return false, nil
	}
	st.byKey[key] = t
	return true, nil
}

// Remove deletes the triple equal to (s, p, o), reporting true, or reports
// false if no such triple is stored.
func (st *Set[H]) Remove(s, p, o term.Term[H]) (bool, error) {
	key := (Triple[H]{S: s, P: p, O: o}).CacheKey()
	if _, exists := st.byKey[key]; !exists {
		return false, nil
	}
	delete(st.byKey, key)
	return true, nil
}

// Len reports the number of distinct triples stored.
func (st *Set[H]) Len() int { return len(st.byKey) }

// QuadSet is the quad-store analogue of Set, keyed by Quad.CacheKey.
type QuadSet[H term.Holder] struct {
	byKey map[string]Quad[H]
}

// NewQuadSet returns an empty QuadSet.
func NewQuadSet[H term.Holder]() *QuadSet[H] {
	return &QuadSet[H]{byKey: make(map[string]Quad[H])}
}

// IsSet marks QuadSet as a set-flagged container.
func (s *QuadSet[H]) IsSet() bool { return true }

// Quads yields every stored quad in the map's iteration order, never failing.
func (s *QuadSet[H]) Quads() iter.Seq2[Quad[H], error] {
	return func(yield func(Quad[H], error) bool) {
		for _, q := range s.byKey {
			if !yield(q, nil) {
				return
			}
		}
	}
}

// Insert reports false, without modifying the set, if (s, p, o, g) is
// already present; otherwise it is added and Insert reports true.
func (qs *QuadSet[H]) Insert(s, p, o term.Term[H], g graphkey.GraphKey[H]) (bool, error) {
	q := Quad[H]{Triple: Triple[H]{S: s, P: p, O: o}, G: g}
	key := q.CacheKey()
	if _, exists := qs.byKey[key]; exists {
		return false, nil
	}
	qs.byKey[key] = q
	return true, nil
}

// Remove deletes the quad equal to (s, p, o, g), reporting true, or reports
// false if no such quad is stored.
func (qs *QuadSet[H]) Remove(s, p, o term.Term[H], g graphkey.GraphKey[H]) (bool, error) {
	key := (Quad[H]{Triple: Triple[H]{S: s, P: p, O: o}, G: g}).CacheKey()
	if _, exists := qs.byKey[key]; !exists {
		return false, nil
	}
	delete(qs.byKey, key)
	return true, nil
}

// Len reports the number of distinct quads stored.
func (qs *QuadSet[H]) Len() int { return len(qs.byKey) }
