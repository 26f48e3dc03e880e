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

// Package container provides read-only and mutable collections of triples
// and quads, built over the generic term.Term type: a lazy iteration
// contract (TripleSource/QuadSource), filtered views by subject, predicate,
// object and graph, and concrete ordered and set-flavored implementations.
package container

import (
	"iter"

	"github.com/tridentrdf/core/term"
)

// Triple is an ordered (subject, predicate, object) tuple of terms. By
// convention S is an IRI or blank node and P is an IRI, but Triple itself
// does not enforce this, and neither do the containers in this package.
type Triple[H term.Holder] struct {
	S, P, O term.Term[H]
}

// CacheKey renders a canonical string identifying t's content, suitable as a
// map key for set-like containers.
func (t Triple[H]) CacheKey() string {
	return t.S.CacheKey() + "\x00" + t.P.CacheKey() + "\x00" + t.O.CacheKey()
}

// Equal reports whether a and b hold the same subject, predicate and
// object, by content rather than by holder identity.
func Equal[H1, H2 term.Holder](a Triple[H1], b Triple[H2]) bool {
	return term.Equal(a.S, b.S) && term.Equal(a.P, b.P) && term.Equal(a.O, b.O)
}

// TripleSource is the read-only iteration capability a triple container
// must provide: a finite, single-pass, lazy sequence of (triple, error)
// pairs. The container must not be mutated while a sequence obtained from
// it is being consumed.
type TripleSource[H term.Holder] interface {
	Triples() iter.Seq2[Triple[H], error]
}

// TripleSlice is a plain slice of triples. It satisfies TripleSource
// directly, giving a read-only in-memory array the full filtered-view API
// below for free.
type TripleSlice[H term.Holder] []Triple[H]

// Triples yields every triple in s, in slice order, never failing.
func (s TripleSlice[H]) Triples() iter.Seq2[Triple[H], error] {
	return func(yield func(Triple[H], error) bool) {
		for _, t := range s {
			if !yield(t, nil) {
				return
			}
		}
	}
}

// TriplesWithS filters src to the triples whose subject equals s.
func TriplesWithS[H term.Holder, HS term.Holder](src TripleSource[H], s term.Term[HS]) iter.Seq2[Triple[H], error] {
	return filterTriples(src, func(t Triple[H]) bool { return term.Equal(t.S, s) })
}

// TriplesWithP filters src to the triples whose predicate equals p.
func TriplesWithP[H term.Holder, HP term.Holder](src TripleSource[H], p term.Term[HP]) iter.Seq2[Triple[H], error] {
	return filterTriples(src, func(t Triple[H]) bool { return term.Equal(t.P, p) })
}

// TriplesWithO filters src to the triples whose object equals o.
func TriplesWithO[H term.Holder, HO term.Holder](src TripleSource[H], o term.Term[HO]) iter.Seq2[Triple[H], error] {
	return filterTriples(src, func(t Triple[H]) bool { return term.Equal(t.O, o) })
}

// TriplesWithSP filters src to the triples matching both s and p.
func TriplesWithSP[H, HS, HP term.Holder](src TripleSource[H], s term.Term[HS], p term.Term[HP]) iter.Seq2[Triple[H], error] {
	return filterTriples(src, func(t Triple[H]) bool { return term.Equal(t.S, s) && term.Equal(t.P, p) })
}

// TriplesWithSO filters src to the triples matching both s and o.
func TriplesWithSO[H, HS, HO term.Holder](src TripleSource[H], s term.Term[HS], o term.Term[HO]) iter.Seq2[Triple[H], error] {
	return filterTriples(src, func(t Triple[H]) bool { return term.Equal(t.S, s) && term.Equal(t.O, o) })
}

// TriplesWithPO filters src to the triples matching both p and o.
func TriplesWithPO[H, HP, HO term.Holder](src TripleSource[H], p term.Term[HP], o term.Term[HO]) iter.Seq2[Triple[H], error] {
	return filterTriples(src, func(t Triple[H]) bool { return term.Equal(t.P, p) && term.Equal(t.O, o) })
}

// TriplesWithSPO filters src to the triples matching s, p and o.
func TriplesWithSPO[H, HS, HP, HO term.Holder](src TripleSource[H], s term.Term[HS], p term.Term[HP], o term.Term[HO]) iter.Seq2[Triple[H], error] {
	return filterTriples(src, func(t Triple[H]) bool {
		return term.Equal(t.S, s) && term.Equal(t.P, p) && term.Equal(t.O, o)
	})
}

func filterTriples[H term.Holder](src TripleSource[H], keep func(Triple[H]) bool) iter.Seq2[Triple[H], error] {
	return func(yield func(Triple[H], error) bool) {
		for t, err := range src.Triples() {
			if err != nil {
				if !yield(Triple[H]{}, err) {
					return
				}
				continue
			}
			if keep(t) && !yield(t, nil) {
				return
			}
		}
	}
}

// Contains reports whether src yields a triple equal to (s, p, o), or an
// error if iteration fails before a match is found.
func Contains[H, HS, HP, HO term.Holder](src TripleSource[H], s term.Term[HS], p term.Term[HP], o term.Term[HO]) (bool, error) {
	for t, err := range src.Triples() {
		if err != nil {
			return false, err
		}
		if term.Equal(t.S, s) && term.Equal(t.P, p) && term.Equal(t.O, o) {
			return true, nil
		}
	}
	return false, nil
}

// MutableTripleSink is the mutation capability a container exposes: Insert
// reports whether the container changed (false from a set-container when
// the triple was already present); Remove reports whether a matching
// element was found and removed.
type MutableTripleSink[H term.Holder] interface {
	Insert(s, p, o term.Term[H]) (bool, error)
	Remove(s, p, o term.Term[H]) (bool, error)
}
