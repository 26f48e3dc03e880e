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

// Package term provides the typed representation of RDF nodes: IRIs, blank
// nodes, language- and datatype-tagged literals, and query variables.
//
// A Term is parameterized over a Holder, an opaque handle to a shared,
// immutable character sequence. Any type satisfying Holder is interchangeable
// as backing storage; the factory package supplies the two interning
// flavors, and BoxHandle in this package supplies a plain, non-interned
// holder suitable for a container's own storage.
package term

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/tridentrdf/core/iri"
	"github.com/tridentrdf/core/langtag"
)

// langtagParser is a single, lazily-constructed, reusable BCP 47 parser
// shared by every NewLiteralLang call, per langtag.Parser's own "create once
// and reuse" contract.
var langtagParser = sync.OnceValues(func() (*langtag.Parser, error) {
	return langtag.NewParser()
})

// Holder is the capability a term's backing string storage must provide:
// cheap comparison and a content accessor. Concrete holders additionally
// support cheap cloning by virtue of being small, copyable Go values.
type Holder interface {
	comparable
	fmt.Stringer
}

// BoxHandle is a plain, non-interned string holder: every BoxHandle owns its
// own copy of the text. It is the holder a container typically converts
// inserted terms to, with no sharing across a session — the Go analogue of
// sophia's BoxTerm.
type BoxHandle string

// String returns the underlying text.
func (h BoxHandle) String() string { return string(h) }

// NewBoxHandle copies s into a fresh BoxHandle.
func NewBoxHandle(s string) BoxHandle { return BoxHandle(strings.Clone(s)) }

// Kind identifies which of the five RDF term cases a Term represents.
type Kind uint8

const (
	// KindIRI is an absolute or relative IRI term.
	KindIRI Kind = iota
	// KindBlankNode is a blank node term, identified by a local label.
	KindBlankNode
	// KindLiteralLanguage is a language-tagged string literal.
	KindLiteralLanguage
	// KindLiteralDatatype is a datatype-tagged literal.
	KindLiteralDatatype
	// KindVariable is a query placeholder.
	KindVariable
)

// String renders the Kind's name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindIRI:
		return "IRI"
	case KindBlankNode:
		return "BlankNode"
	case KindLiteralLanguage:
		return "Literal-Language"
	case KindLiteralDatatype:
		return "Literal-Datatype"
	case KindVariable:
		return "Variable"
	default:
		return "Invalid"
	}
}

// Error is the error kind the term package's constructors raise when a
// payload violates the production for its Kind.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s term: %s", e.Kind, e.Reason)
}

// Term is a tagged union over the five RDF term cases, generic over the
// Holder type backing its string payloads.
//
// IRI terms may be stored either as a single whole string (iriSplit=false,
// ns holds the full text) or as a (namespace, suffix) pair whose
// concatenation is the full IRI (iriSplit=true). Both forms must compare and
// hash equal when their concatenations are equal; Equal and CacheKey
// implement this directly rather than relying on the Go struct comparison
// of the two holder fields.
type Term[H Holder] struct {
	kind Kind

	// ns holds: the whole IRI or its namespace prefix (KindIRI); the blank
	// node id (KindBlankNode); the lexical form (KindLiteralLanguage,
	// KindLiteralDatatype); the variable name (KindVariable).
	ns H
	// suffix holds: the IRI suffix when iriSplit is true (KindIRI); the
	// language tag (KindLiteralLanguage). Unused otherwise.
	suffix H

	iriSplit bool

	// datatype holds the datatype IRI term for KindLiteralDatatype. It is
	// itself a Term.
	datatype *Term[H]
}

// Kind reports which RDF term case t represents.
func (t Term[H]) Kind() Kind { return t.kind }

// NewIRI constructs an IRI term from a whole lexical string. The string must
// satisfy the IRI / irelative-ref grammar; it may be absolute or relative.
func NewIRI[H Holder](s H) (Term[H], error) {
	if iri.Validate(s.String()) == iri.Invalid {
		return Term[H]{}, &Error{Kind: KindIRI, Reason: fmt.Sprintf("%q is not a valid IRI or IRI reference", s.String())}
	}
	return Term[H]{kind: KindIRI, ns: s}, nil
}

// NewIRI2 constructs an IRI term from a (namespace, suffix) pair whose
// concatenation must satisfy the IRI grammar. The two pieces are retained
// separately to allow efficient prefix sharing across many terms with a
// common namespace.
func NewIRI2[H Holder](ns, suffix H) (Term[H], error) {
	full := ns.String() + suffix.String()
	if iri.Validate(full) == iri.Invalid {
		return Term[H]{}, &Error{Kind: KindIRI, Reason: fmt.Sprintf("%q is not a valid IRI or IRI reference", full)}
	}
	return Term[H]{kind: KindIRI, ns: ns, suffix: suffix, iriSplit: true}, nil
}

// IsAbsolute reports whether an IRI term's lexical form is an absolute IRI
// (i.e. it has a scheme), as opposed to a relative reference.
func (t Term[H]) IsAbsolute() bool {
	if t.kind != KindIRI {
		return false
	}
	return iri.Validate(t.iriText()) == iri.Absolute
}

func (t Term[H]) iriText() string {
	if t.iriSplit {
		return t.ns.String() + t.suffix.String()
	}
	return t.ns.String()
}

// NewBlankNode constructs a blank node term. id must be non-empty and match
// the blank-node identifier production: a sequence of ASCII letters,
// digits, '_', '-', or Unicode letters.
func NewBlankNode[H Holder](id H) (Term[H], error) {
	s := id.String()
	if s == "" {
		return Term[H]{}, &Error{Kind: KindBlankNode, Reason: "blank node identifier must not be empty"}
	}
	if !isValidBlankNodeID(s) {
		return Term[H]{}, &Error{Kind: KindBlankNode, Reason: fmt.Sprintf("%q is not a valid blank node identifier", s)}
	}
	return Term[H]{kind: KindBlankNode, ns: id}, nil
}

// NewLiteralLang constructs a language-tagged literal. tag must match the
// BCP 47 primary shape (validated lexically via the langtag package).
func NewLiteralLang[H Holder](lexical, tag H) (Term[H], error) {
	tagStr := tag.String()
	if tagStr == "" {
		return Term[H]{}, &Error{Kind: KindLiteralLanguage, Reason: "language tag must not be empty"}
	}
	parser, err := langtagParser()
	if err != nil {
		return Term[H]{}, &Error{Kind: KindLiteralLanguage, Reason: fmt.Sprintf("language tag parser unavailable: %v", err)}
	}
	if _, err := parser.Parse(tagStr); err != nil {
		return Term[H]{}, &Error{Kind: KindLiteralLanguage, Reason: fmt.Sprintf("%q is not a well-formed BCP 47 language tag: %v", tagStr, err)}
	}
	return Term[H]{kind: KindLiteralLanguage, ns: lexical, suffix: tag}, nil
}

func isASCIILetter(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isASCIIDigit(r rune) bool  { return r >= '0' && r <= '9' }

// NewLiteralDatatype constructs a datatype-tagged literal. dt must be an IRI
// term.
func NewLiteralDatatype[H Holder](lexical H, dt Term[H]) (Term[H], error) {
	if dt.kind != KindIRI {
		return Term[H]{}, &Error{Kind: KindLiteralDatatype, Reason: "datatype must be an IRI term"}
	}
	dtCopy := dt
	return Term[H]{kind: KindLiteralDatatype, ns: lexical, datatype: &dtCopy}, nil
}

// NewVariable constructs a query-variable term. name must match the
// variable-identifier production: a non-empty sequence of identifier
// characters (ASCII letters, digits, '_', or Unicode letters), not starting
// with a digit.
func NewVariable[H Holder](name H) (Term[H], error) {
	s := name.String()
	if s == "" {
		return Term[H]{}, &Error{Kind: KindVariable, Reason: "variable name must not be empty"}
	}
	if !isValidVariableName(s) {
		return Term[H]{}, &Error{Kind: KindVariable, Reason: fmt.Sprintf("%q is not a valid variable name", s)}
	}
	return Term[H]{kind: KindVariable, ns: name}, nil
}

func isValidVariableName(s string) bool {
	for i, r := range s {
		switch {
		case r == '_':
		case isASCIILetter(r) || isUnicodeLetter(r):
		case i > 0 && isASCIIDigit(r):
		default:
			return false
		}
	}
	return true
}

// Lexical returns the term's primary lexical payload: the IRI text (whole or
// namespace-only, see Namespace/Suffix), the blank node id, the literal
// lexical form, or the variable name.
func (t Term[H]) Lexical() string {
	if t.kind == KindIRI {
		return t.iriText()
	}
	return t.ns.String()
}

// Namespace and Suffix expose the two-part IRI representation. HasSuffix
// reports whether the term was constructed via NewIRI2; if false, Namespace
// returns the whole IRI and Suffix returns "".
func (t Term[H]) Namespace() string { return t.ns.String() }

// Suffix returns the IRI suffix when the term was constructed via NewIRI2.
func (t Term[H]) Suffix() string {
	if t.iriSplit {
		return t.suffix.String()
	}
	return ""
}

// HasSuffix reports whether the IRI term keeps a separate (namespace,
// suffix) split rather than a single whole string.
func (t Term[H]) HasSuffix() bool { return t.iriSplit }

// Lang returns the language tag of a Literal-Language term and true, or ""
// and false otherwise.
func (t Term[H]) Lang() (string, bool) {
	if t.kind != KindLiteralLanguage {
		return "", false
	}
	return t.suffix.String(), true
}

// Datatype returns the datatype IRI term of a Literal-Datatype term and
// true, or the zero Term and false otherwise.
func (t Term[H]) Datatype() (Term[H], bool) {
	if t.kind != KindLiteralDatatype || t.datatype == nil {
		return Term[H]{}, false
	}
	return *t.datatype, true
}

// CacheKey renders a canonical string uniquely identifying the term's
// semantic content (tag plus lexical content), suitable as a map key for
// set-like containers. Two terms with Equal(a, b) == true always render the
// same CacheKey, regardless of which concrete representation (e.g. split vs
// whole IRI) backs them.
func (t Term[H]) CacheKey() string {
	var b strings.Builder
	switch t.kind {
	case KindIRI:
		b.WriteString("I")
		b.WriteString(t.iriText())
	case KindBlankNode:
		b.WriteString("B")
		b.WriteString(t.ns.String())
	case KindLiteralLanguage:
		b.WriteString("L")
		b.WriteString(t.ns.String())
		b.WriteString("@")
		b.WriteString(strings.ToLower(t.suffix.String()))
	case KindLiteralDatatype:
		b.WriteString("D")
		b.WriteString(t.ns.String())
		b.WriteString("^^")
		if t.datatype != nil {
			b.WriteString(t.datatype.CacheKey())
		}
	case KindVariable:
		b.WriteString("V")
		b.WriteString(t.ns.String())
	}
	return b.String()
}

// Equal reports whether a and b are the structurally equal RDF term: same
// Kind, same lexical content. Equality is computed over content, never over
// holder identity, so it holds across differing concrete Holder types and
// across the split/whole IRI representations.
func Equal[H1, H2 Holder](a Term[H1], b Term[H2]) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindIRI:
		return a.iriText() == b.iriText()
	case KindBlankNode:
		return a.ns.String() == b.ns.String()
	case KindLiteralLanguage:
		return a.ns.String() == b.ns.String() && strings.EqualFold(a.suffix.String(), b.suffix.String())
	case KindLiteralDatatype:
		if a.ns.String() != b.ns.String() {
			return false
		}
		ad, aok := a.Datatype()
		bd, bok := b.Datatype()
		if aok != bok {
			return false
		}
		if !aok {
			return true
		}
		return Equal(ad, bd)
	case KindVariable:
		return a.ns.String() == b.ns.String()
	default:
		return false
	}
}

// Hash returns an FNV-1a hash of the term's CacheKey, consistent with Equal:
// Equal(a, b) implies Hash(a) == Hash(b).
func Hash[H Holder](t Term[H]) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	key := t.CacheKey()
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= prime64
	}
	return h
}

// isValidBlankNodeID reports whether s matches the blank-node identifier
// production: PN_CHARS_U-like characters (ASCII letters, digits, '_', '-',
// or Unicode letters) throughout.
func isValidBlankNodeID(s string) bool {
	for _, r := range s {
		if r == '_' || r == '-' || isASCIIDigit(r) || isASCIILetter(r) || isUnicodeLetter(r) {
			continue
		}
		return false
	}
	return true
}

func isUnicodeLetter(r rune) bool {
	return r > 0x7F && unicode.IsLetter(r)
}
