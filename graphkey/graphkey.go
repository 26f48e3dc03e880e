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

// Package graphkey identifies which named graph a quad belongs to: either
// the dataset's single unnamed default graph, or one of its named graphs,
// addressed by an IRI or blank node term.
package graphkey

import (
	"fmt"

	"github.com/tridentrdf/core/term"
)

// Kind distinguishes the default graph from a named one.
type Kind uint8

const (
	// Default identifies the dataset's single unnamed graph.
	Default Kind = iota
	// Named identifies a graph addressed by an IRI or blank node term.
	Named
)

// GraphKey identifies a quad's graph: either Default, or Named carrying the
// IRI or blank node term that addresses the graph.
type GraphKey[H term.Holder] struct {
	kind Kind
	name term.Term[H]
}

// DefaultGraph returns the key for the dataset's unnamed default graph.
func DefaultGraph[H term.Holder]() GraphKey[H] {
	return GraphKey[H]{kind: Default}
}

// NewNamed returns the key for the named graph addressed by name, which
// must be an IRI or blank node term.
func NewNamed[H term.Holder](name term.Term[H]) (GraphKey[H], error) {
	switch name.Kind() {
	case term.KindIRI, term.KindBlankNode:
		return GraphKey[H]{kind: Named, name: name}, nil
	default:
		return GraphKey[H]{}, fmt.Errorf("graph name must be an IRI or blank node term, got %s", name.Kind())
	}
}

// Kind reports whether k is the default graph or a named one.
func (k GraphKey[H]) Kind() Kind { return k.kind }

// IsDefault reports whether k is the default graph.
func (k GraphKey[H]) IsDefault() bool { return k.kind == Default }

// Name returns the graph's addressing term and true when k is Named, or the
// zero Term and false when k is Default.
func (k GraphKey[H]) Name() (term.Term[H], bool) {
	if k.kind != Named {
		return term.Term[H]{}, false
	}
	return k.name, true
}

// CacheKey renders a canonical string identifying k, suitable as (part of) a
// composite map key for quad containers indexed by graph.
func (k GraphKey[H]) CacheKey() string {
	if k.kind == Default {
		return "-"
	}
	return k.name.CacheKey()
}

// Equal reports whether a and b identify the same graph: both the default
// graph, or both named with Equal terms.
func Equal[H1, H2 term.Holder](a GraphKey[H1], b GraphKey[H2]) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == Default {
		return true
	}
	return term.Equal(a.name, b.name)
}
