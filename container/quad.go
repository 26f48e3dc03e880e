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

// Quad is a Triple plus the GraphKey naming the graph it belongs to.
type Quad[H term.Holder] struct {
	Triple[H]
	G graphkey.GraphKey[H]
}

// CacheKey renders a canonical string identifying q's content.
func (q Quad[H]) CacheKey() string {
	return q.Triple.CacheKey() + "\x00" + q.G.CacheKey()
}

// QuadEqual reports whether a and b hold the same subject, predicate,
// object and graph, by content rather than holder identity.
func QuadEqual[H1, H2 term.Holder](a Quad[H1], b Quad[H2]) bool {
	return Equal(a.Triple, b.Triple) && graphkey.Equal(a.G, b.G)
}

// QuadSource is the read-only iteration capability a quad container must
// provide: a finite, single-pass, lazy sequence of (quad, error) pairs.
type QuadSource[H term.Holder] interface {
	Quads() iter.Seq2[Quad[H], error]
}

// QuadSlice is a plain slice of quads. It satisfies QuadSource directly.
type QuadSlice[H term.Holder] []Quad[H]

// Quads yields every quad in s, in slice order, never failing.
func (s QuadSlice[H]) Quads() iter.Seq2[Quad[H], error] {
	return func(yield func(Quad[H], error) bool) {
		for _, q := range s {
			if !yield(q, nil) {
				return
			}
		}
	}
}

// QuadsWithS filters src to the quads whose subject equals s.
func QuadsWithS[H, HS term.Holder](src QuadSource[H], s term.Term[HS]) iter.Seq2[Quad[H], error] {
	return filterQuads(src, func(q Quad[H]) bool { return term.Equal(q.S, s) })
}

// QuadsWithP filters src to the quads whose predicate equals p.
func QuadsWithP[H, HP term.Holder](src QuadSource[H], p term.Term[HP]) iter.Seq2[Quad[H], error] {
	return filterQuads(src, func(q Quad[H]) bool { return term.Equal(q.P, p) })
}

// QuadsWithO filters src to the quads whose object equals o.
func QuadsWithO[H, HO term.Holder](src QuadSource[H], o term.Term[HO]) iter.Seq2[Quad[H], error] {
	return filterQuads(src, func(q Quad[H]) bool { return term.Equal(q.O, o) })
}

// QuadsWithG filters src to the quads whose graph equals g.
func QuadsWithG[H, HG term.Holder](src QuadSource[H], g graphkey.GraphKey[HG]) iter.Seq2[Quad[H], error] {
	return filterQuads(src, func(q Quad[H]) bool { return graphkey.Equal(q.G, g) })
}

// QuadsWithSP filters src to the quads matching both s and p.
func QuadsWithSP[H, HS, HP term.Holder](src QuadSource[H], s term.Term[HS], p term.Term[HP]) iter.Seq2[Quad[H], error] {
	return filterQuads(src, func(q Quad[H]) bool { return term.Equal(q.S, s) && term.Equal(q.P, p) })
}

// QuadsWithSO filters src to the quads matching both s and o.
func QuadsWithSO[H, HS, HO term.Holder](src QuadSource[H], s term.Term[HS], o term.Term[HO]) iter.Seq2[Quad[H], error] {
	return filterQuads(src, func(q Quad[H]) bool { return term.Equal(q.S, s) && term.Equal(q.O, o) })
}

// QuadsWithPO filters src to the quads matching both p and o.
func QuadsWithPO[H, HP, HO term.Holder](src QuadSource[H], p term.Term[HP], o term.Term[HO]) iter.Seq2[Quad[H], error] {
	return filterQuads(src, func(q Quad[H]) bool { return term.Equal(q.P, p) && term.Equal(q.O, o) })
}

// QuadsWithSG filters src to the quads matching both s and g.
func QuadsWithSG[H, HS, HG term.Holder](src QuadSource[H], s term.Term[HS], g graphkey.GraphKey[HG]) iter.Seq2[Quad[H], error] {
	return filterQuads(src, func(q Quad[H]) bool { return term.Equal(q.S, s) && graphkey.Equal(q.G, g) })
}

// QuadsWithPG filters src to the quads matching both p and g.
func QuadsWithPG[H, HP, HG term.Holder](src QuadSource[H], p term.Term[HP], g graphkey.GraphKey[HG]) iter.Seq2[Quad[H], error] {
	return filterQuads(src, func(q Quad[H]) bool { return term.Equal(q.P, p) && graphkey.Equal(q.G, g) })
}

// QuadsWithOG filters src to the quads matching both o and g.
func QuadsWithOG[H, HO, HG term.Holder](src QuadSource[H], o term.Term[HO], g graphkey.GraphKey[HG]) iter.Seq2[Quad[H], error] {
	return filterQuads(src, func(q Quad[H]) bool { return term.Equal(q.O, o) && graphkey.Equal(q.G, g) })
}

// QuadsWithSPO filters src to the quads matching s, p and o, regardless of graph.
func QuadsWithSPO[H, HS, HP, HO term.Holder](src QuadSource[H], s term.Term[HS], p term.Term[HP], o term.Term[HO]) iter.Seq2[Quad[H], error] {
	return filterQuads(src, func(q Quad[H]) bool {
		return term.Equal(q.S, s) && term.Equal(q.P, p) && term.Equal(q.O, o)
	})
}

// QuadsWithSPOG filters src to the quads matching all four coordinates.
func QuadsWithSPOG[H, HS, HP, HO, HG term.Holder](src QuadSource[H], s term.Term[HS], p term.Term[HP], o term.Term[HO], g graphkey.GraphKey[HG]) iter.Seq2[Quad[H], error] {
	return filterQuads(src, func(q Quad[H]) bool {
		return term.Equal(q.S, s) && term.Equal(q.P, p) && term.Equal(q.O, o) && graphkey.Equal(q.G, g)
	})
}

func filterQuads[H term.Holder](src QuadSource[H], keep func(Quad[H]) bool) iter.Seq2[Quad[H], error] {
	return func(yield func(Quad[H], error) bool) {
		for q, err := range src.Quads() {
			if err != nil {
				if !yield(Quad[H]{}, err) {
					return
				}
				continue
			}
			if keep(q) && !yield(q, nil) {
				return
			}
		}
	}
}

// QuadContains reports whether src yields a quad equal to (s, p, o, g), or
// an error if iteration fails before a match is found.
func QuadContains[H, HS, HP, HO, HG term.Holder](src QuadSource[H], s term.Term[HS], p term.Term[HP], o term.Term[HO], g graphkey.GraphKey[HG]) (bool, error) {
	for q, err := range src.Quads() {
		if err != nil {
			return false, err
		}
		if term.Equal(q.S, s) && term.Equal(q.P, p) && term.Equal(q.O, o) && graphkey.Equal(q.G, g) {
			return true, nil
		}
	}
	return false, nil
}

// MutableQuadSink is the quad-store analogue of MutableTripleSink.
type MutableQuadSink[H term.Holder] interface {
	Insert(s, p, o term.Term[H], g graphkey.GraphKey[H]) (bool, error)
	Remove(s, p, o term.Term[H], g graphkey.GraphKey[H]) (bool, error)
}
