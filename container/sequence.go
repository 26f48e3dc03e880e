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

// Sequence is an ordered, duplicate-preserving triple container backed by a
// Go slice. Insert always appends; Remove finds the first matching element
// and swap-removes it.
type Sequence[H term.Holder] struct {
	triples []Triple[H]
}

// NewSequence returns an empty Sequence.
func NewSequence[H term.Holder]() *Sequence[H] {
	return &Sequence[H]{}
}

// Triples yields every stored triple in insertion order, never failing.
func (s *Sequence[H]) Triples() iter.Seq2[Triple[H], error] {
	return func(yield func(Triple[H], error) bool) {
		for _, t := range s.triples {
			if !yield(t, nil) {
				return
			}
		}
	}
}

// Insert appends (s, p, o) and always reports true: a sequence-container
// never rejects an insert as a duplicate.
func (sq *Sequence[H]) Insert(s, p, o term.Term[H]) (bool, error) {
	sq.triples = append(sq.triples, Triple[H]{S: s, P: p, O: o})
	return true, nil
}

// Remove finds the first triple equal to (s, p, o) and swap-removes it,
// reporting true, or reports false if no such triple is stored.
func (sq *Sequence[H]) Remove(s, p, o term.Term[H]) (bool, error) {
	for i, t := range sq.triples {
		if term.Equal(t.S, s) && term.Equal(t.P, p) && term.Equal(t.O, o) {
			sq.swapRemove(i)
			return true, nil
		}
	}
	return false, nil
}

func (sq *Sequence[H]) swapRemove(i int) {
	last := len(sq.triples) - 1
	sq.triples[i] = sq.triples[last]
	sq.triples = sq.triples[:last]
}

// Len reports the number of stored triples, counting duplicates.
func (sq *Sequence[H]) Len() int { return len(sq.triples) }

// QuadSequence is the quad-store analogue of Sequence.
type QuadSequence[H term.Holder] struct {
	quads []Quad[H]
}

// NewQuadSequence returns an empty QuadSequence.
func NewQuadSequence[H term.Holder]() *QuadSequence[H] {
	return &QuadSequence[H]{}
}

// Quads yields every stored quad in insertion order, never failing.
func (s *QuadSequence[H]) Quads() iter.Seq2[Quad[H], error] {
	return func(yield func(Quad[H], error) bool) {
		for _, q := range s.quads {
			if !yield(q, nil) {
				return
			}
		}
	}
}

// Insert appends (s, p, o, g) and always reports true.
func (sq *QuadSequence[H]) Insert(s, p, o term.Term[H], g graphkey.GraphKey[H]) (bool, error) {
	sq.quads = append(sq.quads, Quad[H]{Triple: Triple[H]{S: s, P: p, O: o}, G: g})
	return true, nil
}

// Remove finds the first quad equal to (s, p, o, g) and swap-removes it.
func (sq *QuadSequence[H]) Remove(s, p, o term.Term[H], g graphkey.GraphKey[H]) (bool, error) {
	for i, q := range sq.quads {
		if term.Equal(q.S, s) && term.Equal(q.P, p) && term.Equal(q.O, o) && graphkey.Equal(q.G, g) {
			sq.swapRemove(i)
			return true, nil
		}
	}
	return false, nil
}

func (sq *QuadSequence[H]) swapRemove(i int) {
	last := len(sq.quads) - 1
	sq.quads[i] = sq.quads[last]
	sq.quads = sq.quads[:last]
}

// Len reports the number of stored quads, counting duplicates.
func (sq *QuadSequence[H]) Len() int { return len(sq.quads) }
