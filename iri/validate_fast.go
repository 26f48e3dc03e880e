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

import "regexp"

// The character classes below mirror the grammar productions implemented by
// the hand-written recursive-descent recognizer in char_predicates.go,
// iri_parser.go, autority.go, resolve.go and path.go, re-expressed as RE2
// character classes. This gives the package a second, independent
// recognizer, so that TestValidatorAgreement can assert the two agree on
// accept/reject decisions for the existing fixture corpus.
//
// Bidirectional-formatting-character exclusion (bidi.go) is not expressible
// as a fixed character class without context (it depends on the direction of
// surrounding characters per RFC 3987 §4.1) and is intentionally not
// enforced by this fast path; it is covered by the grammar-driven parser.
const (
	ucschar = `\x{00A0}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFEF}` +
		`\x{10000}-\x{1FFFD}\x{20000}-\x{2FFFD}\x{30000}-\x{3FFFD}` +
		`\x{40000}-\x{4FFFD}\x{50000}-\x{5FFFD}\x{60000}-\x{6FFFD}` +
		`\x{70000}-\x{7FFFD}\x{80000}-\x{8FFFD}\x{90000}-\x{9FFFD}` +
		`\x{A0000}-\x{AFFFD}\x{B0000}-\x{BFFFD}\x{C0000}-\x{CFFFD}` +
		`\x{D0000}-\x{DFFFD}\x{E1000}-\x{EFFFD}`
	iprivate = `\x{E000}-\x{F8FF}\x{F0000}-\x{FFFFD}\x{100000}-\x{10FFFD}`

	unreserved  = `A-Za-z0-9\-._~`
	subDelims   = `!$&'()*+,;=`
	iunreserved = unreserved + ucschar
	pctEncoded  = `%[0-9A-Fa-f]{2}`

	ipchar = `(?:[` + iunreserved + subDelims + `:@]|` + pctEncoded + `)`

	iregName  = `(?:[` + iunreserved + subDelims + `]|` + pctEncoded + `)*`
	iuserinfo = `(?:[` + iunreserved + subDelims + `:]|` + pctEncoded + `)*`

	decOctet = `(?:25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])`
	ipv4     = decOctet + `\.` + decOctet + `\.` + decOctet + `\.` + decOctet
	h16      = `[0-9A-Fa-f]{1,4}`
	ls32     = `(?:` + h16 + `:` + h16 + `|` + ipv4 + `)`
	ipv6 = `(?:` +
		`(?:` + h16 + `:){6}` + ls32 + `|` +
		`::(?:` + h16 + `:){5}` + ls32 + `|` +
		`(?:` + h16 + `)?::(?:` + h16 + `:){4}` + ls32 + `|` +
		`(?:(?:` + h16 + `:){0,1}` + h16 + `)?::(?:` + h16 + `:){3}` + ls32 + `|` +
		`(?:(?:` + h16 + `:){0,2}` + h16 + `)?::(?:` + h16 + `:){2}` + ls32 + `|` +
		`(?:(?:` + h16 + `:){0,3}` + h16 + `)?::` + h16 + `:` + ls32 + `|` +
		`(?:(?:` + h16 + `:){0,4}` + h16 + `)?::` + ls32 + `|` +
		`(?:(?:` + h16 + `:){0,5}` + h16 + `)?::` + h16 + `|` +
		`(?:(?:` + h16 + `:){0,6}` + h16 + `)?::` +
		`)`
	ipvFuture = `v[0-9A-Fa-f]+\.[` + unreserved + subDelims + `:]+`
	ipLiteral = `\[(?:` + ipv6 + `|` + ipvFuture + `)\]`

	ihost     = `(?:` + ipLiteral + `|` + ipv4 + `|` + iregName + `)`
	port      = `[0-9]*`
	iauthority = `(?:` + iuserinfo + `@)?` + ihost + `(?::` + port + `)?`

	isegment    = ipchar + `*`
	isegmentNZ  = ipchar + `+`
	ipathAbempty  = `(?:/` + isegment + `)*`
	ipathAbsolute = `/(?:` + isegmentNZ + `(?:/` + isegment + `)*)?`
	ipathRootless = isegmentNZ + `(?:/` + isegment + `)*`
	ipathNoScheme = `(?:[` + iunreserved + subDelims + `@]|` + pctEncoded + `)+(?:/` + isegment + `)*`

	ihierPart = `(?://` + iauthority + ipathAbempty + `|` + ipathAbsolute + `|` + ipathRootless + `|)`
	irelativePart = `(?://` + iauthority + ipathAbempty + `|` + ipathAbsolute + `|` + ipathNoScheme + `|)`

	iquery    = `(?:` + ipchar + `|[` + iprivate + `/?])*`
	ifragment = `(?:` + ipchar + `|[/?])*`

	scheme = `[A-Za-z][A-Za-z0-9+\-.]*`
)

var (
	absoluteIRIPattern = `^` + scheme + `:` + ihierPart + `(?:\?` + iquery + `)?(?:#` + ifragment + `)?$`
	relativeRefPattern = `^` + irelativePart + `(?:\?` + iquery + `)?(?:#` + ifragment + `)?$`

	absoluteIRIRegexp = regexp.MustCompile(absoluteIRIPattern)
	relativeRefRegexp = regexp.MustCompile(relativeRefPattern)
)

// ValidateFast reports whether s matches the IRI or irelative-ref grammar
// using a single regular expression, independent of the grammar-driven
// recursive-descent recognizer used by Validate/ParseRef. The two
// recognizers are expected to agree on every fixture.
func ValidateFast(s string) bool {
	return absoluteIRIRegexp.MatchString(s) || relativeRefRegexp.MatchString(s)
}
