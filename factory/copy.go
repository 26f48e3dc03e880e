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

package factory

import (
	"strings"

	"github.com/tridentrdf/core/term"
)

// NormalizationMode selects how CopyNormalized rewrites an IRI's text before
// interning it. It mirrors sophia's Normalization enum, referenced from
// term/factory.rs, restricted to the single mode the rest of the system
// needs: every IRI, whether stored whole or as a namespace/suffix pair, is
// re-split so the split always falls after the IRI's last generic delimiter
// (':', '/', '?', '#', '[', ']', '@'), which is the split a parser naturally
// produces.
type NormalizationMode int

const (
	// NoNormalization leaves the term's text exactly as it is.
	NoNormalization NormalizationMode = iota
	// LastGenDelimiter moves the namespace/suffix split of an IRI term to
	// fall immediately after its last generic delimiter character.
	LastGenDelimiter
)

const genDelims = ":/?#[]@"

// copyWith rebuilds other, passing every string payload it owns through get
// to produce the new Holder values, applying mode to IRI terms. It is the
// shared implementation behind Copy (mode = NoNormalization) and
// CopyNormalized for both factory flavors.
func copyWith[H term.Holder](other term.Term[H], get func(string) H, mode NormalizationMode) term.Term[H] {
	switch other.Kind() {
	case term.KindIRI:
		return copyIRI(other, get, mode)
	case term.KindBlankNode:
		t, _ := term.NewBlankNode(get(other.Lexical()))
		return t
	case term.KindLiteralLanguage:
		lang, _ := other.Lang()
		t, _ := term.NewLiteralLang(get(other.Lexical()), get(lang))
		return t
	case term.KindLiteralDatatype:
		dt, _ := other.Datatype()
		t, _ := term.NewLiteralDatatype(get(other.Lexical()), copyWith(dt, get, mode))
		return t
	case term.KindVariable:
		t, _ := term.NewVariable(get(other.Lexical()))
		return t
	default:
		return term.Term[H]{}
	}
}

func copyIRI[H term.Holder](other term.Term[H], get func(string) H, mode NormalizationMode) term.Term[H] {
	var ns, suffix string
	if other.HasSuffix() {
		ns, suffix = other.Namespace(), other.Suffix()
	} else {
		ns = other.Namespace()
	}
	if mode == LastGenDelimiter {
		ns, suffix = splitAtLastGenDelimiter(ns + suffix)
	}
	if suffix == "" {
		t, _ := term.NewIRI(get(ns))
		return t
	}
	t, _ := term.NewIRI2(get(ns), get(suffix))
	return t
}

// splitAtLastGenDelimiter re-splits a whole IRI string into a
// (namespace, suffix) pair at the position immediately after the last
// generic delimiter character, per RFC 3987's gen-delims production.
func splitAtLastGenDelimiter(whole string) (ns, suffix string) {
	idx := strings.LastIndexAny(whole, genDelims)
	if idx < 0 {
		return whole, ""
	}
	return whole[:idx+1], whole[idx+1:]
}
