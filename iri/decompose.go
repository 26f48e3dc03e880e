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

package iri

import (
	"strings"

	internalparser "github.com/tridentrdf/core/internal/parser"
)

// Validation is the three-way outcome of validating a string against the
// IRI / irelative-ref grammars: it is either an absolute IRI, a relative
// reference, or neither.
type Validation int

const (
	// Invalid means the string matches neither grammar.
	Invalid Validation = iota
	// Absolute means the string is a valid absolute IRI (it has a scheme).
	Absolute
	// Relative means the string is a valid IRI reference without a scheme.
	Relative
)

// String renders the Validation outcome for diagnostics.
func (v Validation) String() string {
	switch v {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	default:
		return "invalid"
	}
}

// Validate tests a string against the IRI / irelative-ref grammars and
// reports which of the two mutually exclusive shapes, if any, it matches.
func Validate(s string) Validation {
	// ParseRef leniently percent-encodes these characters; the grammars
	// themselves do not allow them.
	for _, c := range s {
		if isLaxASCII(c) {
			return Invalid
		}
	}
	ref, err := ParseRef(s)
	if err != nil {
		return Invalid
	}
	if ref.IsAbsolute() {
		return Absolute
	}
	return Relative
}

// Parsed is the decomposition of an IRI reference into its grammar
// components, per RFC 3987/3986: an optional scheme, an optional authority,
// a sequence of path segments, an optional query, and an optional fragment.
type Parsed struct {
	Scheme    string
	HasScheme bool

	Authority    string
	HasAuthority bool

	// Segments follows these conventions: an empty slice means an empty
	// path; a leading "" element means the path begins with "/"; a trailing
	// "" element means the path ends with "/".
	Segments []string

	Query    string
	HasQuery bool

	Fragment    string
	HasFragment bool
}

// Parse validates text against the IRI reference grammar and, on success,
// decomposes it into its components. It is backed by the internal/parser
// engine rather than iri.Ref's own engine, giving the package two
// independently exercised parsing entry points: Ref's for the rich
// Resolve/Normalize API, and this one for direct decomposition.
func Parse(text string) (Parsed, error) {
	buf := internalparser.StringOutputBuffer{Builder: &strings.Builder{}}
	pos, err := internalparser.Run(text, nil, false, &buf)
	if err != nil {
		return Parsed{}, newParseError(err)
	}
	out := buf.String()
	return decompose(out, pos), nil
}

func decompose(out string, pos internalparser.Positions) Parsed {
	var p Parsed

	if pos.SchemeEnd > 0 {
		p.Scheme = out[:pos.SchemeEnd-1]
		p.HasScheme = true
	}
	if pos.AuthorityEnd > pos.SchemeEnd {
		p.Authority = strings.TrimPrefix(out[pos.SchemeEnd:pos.AuthorityEnd], "//")
		p.HasAuthority = true
	}
	p.Segments = Segments(out[pos.AuthorityEnd:pos.PathEnd])
	if pos.PathEnd < pos.QueryEnd {
		p.Query = out[pos.PathEnd+1 : pos.QueryEnd]
		p.HasQuery = true
	}
	if pos.QueryEnd < len(out) {
		p.Fragment = out[pos.QueryEnd+1:]
		p.HasFragment = true
	}
	return p
}

// Render reconstructs the original text from a Parsed decomposition. Render
// composed with Parse must round-trip bit-for-bit for every Parse-accepted
// input.
func Render(p Parsed) string {
	var b strings.Builder
	if p.HasScheme {
		b.WriteString(p.Scheme)
		b.WriteByte(':')
	}
	if p.HasAuthority {
		b.WriteString("//")
		b.WriteString(p.Authority)
	}
	b.WriteString(strings.Join(p.Segments, "/"))
	if p.HasQuery {
		b.WriteByte('?')
		b.WriteString(p.Query)
	}
	if p.HasFragment {
		b.WriteByte('#')
		b.WriteString(p.Fragment)
	}
	return b.String()
}

// Segments splits a path into its segments: an empty path yields an empty
// slice; a leading "/" yields a leading "" element; a trailing "/" yields a
// trailing "" element.
func Segments(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// Segments decomposes the Ref's path into its segments. See the package-level
// Segments function for the conventions followed.
func (r *Ref) Segments() []string {
	return Segments(r.Path())
}

// Join implements RFC 3986 §5.3 reference resolution of reference against
// base, rendering the resolved, absolute IRI text. It is a thin, text-in
// text-out wrapper over Ref.Resolve for callers working with the Parse/
// Render decomposition rather than *Ref values directly.
func Join(base, reference string) (string, error) {
	b, err := ParseRef(base)
	if err != nil {
		return "", err
	}
	resolved, err := b.Resolve(reference)
	if err != nil {
		return "", err
	}
	return resolved.String(), nil
}
