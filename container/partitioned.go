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

// partition holds the quads sharing one graph key, plus the key itself so a
// partition can still be rendered back into full Quad values.
type partition[H term.Holder] struct {
	graph graphkey.GraphKey[H]
	byKey map[string]Triple[H]
}

// PartitionedQuadSet is a duplicate-rejecting quad container additionally
// indexed by GraphKey, so that its QuadsInGraph method scans only the
// matching partition instead of the whole store. The generic QuadsWithG
// free function does not use this index and scans every quad.
type PartitionedQuadSet[H term.Holder] struct {
	partitions map[string]*partition[H]
}

// NewPartitionedQuadSet returns an empty PartitionedQuadSet.
func NewPartitionedQuadSet[H term.Holder]() *PartitionedQuadSet[H] {
	return &PartitionedQuadSet[H]{partitions: make(map[string]*partition[H])}
}

// IsSet marks PartitionedQuadSet as a set-flagged container.
func (s *PartitionedQuadSet[H]) IsSet() bool { return true }

// Quads yields every stored quad across all partitions, never failing.
func (s *PartitionedQuadSet[H]) Quads() iter.Seq2[Quad[H], error] {
	return func(yield func(Quad[H], error) bool) {
		for _, part := range s.partitions {
			for _, t := range part.byKey {
				if !yield(Quad[H]{Triple: t, G: part.graph}, nil) {
					return
				}
			}
		}
	}
}

// QuadsInGraph yields only the quads whose graph equals g, scanning solely
// g's partition rather than the whole store.
func (s *PartitionedQuadSet[H]) QuadsInGraph(g graphkey.GraphKey[H]) iter.Seq2[Quad[H], error] {
	return func(yield func(Quad[H], error) bool) {
		part, ok := s.partitions[g.CacheKey()]
		if !ok {
			return
		}
		for _, t := range part.byKey {
			if !yield(Quad[H]{Triple: t, G: part.graph}, nil) {
				return
			}
		}
	}
}

// Insert reports false, without modifying the set, if (s, p, o, g) is
// already present; otherwise it is added to g's partition and Insert
// reports true.
func (s *PartitionedQuadSet[H]) Insert(subj, pred, obj term.Term[H], g graphkey.GraphKey[H]) (bool, error) {
	gkey := g.CacheKey()
	part, ok := s.partitions[gkey]
	if !ok {
		part = &partition[H]{graph: g, byKey: make(map[string]Triple[H])}
		s.partitions[gkey] = part
	}
	t := Triple[H]{S: subj, P: pred, O: obj}
	tkey := t.CacheKey()
	if _, exists := part.byKey[tkey]; exists {
		return false, nil
	}
	part.byKey[tkey] = t
	return true, nil
}

// Remove deletes the quad equal to (s, p, o, g), reporting true, or reports
// false if no such quad is stored. An emptied partition is dropped.
func (s *PartitionedQuadSet[H]) Remove(subj, pred, obj term.Term[H], g graphkey.GraphKey[H]) (bool, error) {
	gkey := g.CacheKey()
	part, ok := s.partitions[gkey]
	if !ok {
		return false, nil
	}
	tkey := (Triple[H]{S: subj, P: pred, O: obj}).CacheKey()
	if _, exists := part.byKey[tkey]; !exists {
		return false, nil
	}
	delete(part.byKey, tkey)
	if len(part.byKey) == 0 {
		delete(s.partitions, gkey)
	}
	return true, nil
}

// Len reports the number of distinct quads stored across all partitions.
func (s *PartitionedQuadSet[H]) Len() int {
	n := 0
	for _, part := range s.partitions {
		n += len(part.byKey)
	}
	return n
}
