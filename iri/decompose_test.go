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

//nolint:testpackage // white-box test file, needs access to unexported decompose().
package iri

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestParseDecomposesComponents checks that Parse splits a full IRI into
// its scheme, authority, path segments, query and fragment.
func TestParseDecomposesComponents(t *testing.T) {
	t.Parallel()
	got, err := Parse("http://example.org/foo/bar/")
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	want := Parsed{
		Scheme:       "http",
		HasScheme:    true,
		Authority:    "example.org",
		HasAuthority: true,
		Segments:     []string{"", "foo", "bar", ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse(%q) mismatch (-want +got):\n%s", "http://example.org/foo/bar/", diff)
	}
}

// TestParseRenderRoundTrip checks that for every accepted IRI t,
// Render(Parse(t)) == t.
func TestParseRenderRoundTrip(t *testing.T) {
	t.Parallel()
	examples := []string{
		"http://example.org/foo/bar/",
		"http://example.com/foo/bar?q=1&r=2#toto",
		"urn:isbn:0451450523",
		"mailto:John.Doe@example.com",
		"../foo/bar",
		"#fragment",
	}
	for _, e := range examples {
		parsed, err := Parse(e)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", e, err)
			continue
		}
		if got := Render(parsed); got != e {
			t.Errorf("Render(Parse(%q)) = %q, want %q", e, got, e)
		}
	}
}

// TestJoinResolvesDotSegments checks RFC 3986 §5.3 dot-segment resolution
// against the worked examples from that section.
func TestJoinResolvesDotSegments(t *testing.T) {
	t.Parallel()
	const base = "http://a/b/c/d;p?q"
	cases := []struct {
		reference string
		want      string
	}{
		{"../../../g", "http://a/g"},
		{".", "http://a/b/c/"},
		{"", "http://a/b/c/d;p?q"},
	}
	for _, c := range cases {
		got, err := Join(base, c.reference)
		if err != nil {
			t.Fatalf("Join(base, %q): unexpected error: %v", c.reference, err)
		}
		if got != c.want {
			t.Errorf("Join(base, %q) = %q, want %q", c.reference, got, c.want)
		}
	}
}

func TestValidateThreeWayOutcome(t *testing.T) {
	t.Parallel()
	if got := Validate("http://example.com/"); got != Absolute {
		t.Errorf("Validate(absolute) = %v, want %v", got, Absolute)
	}
	if got := Validate("../foo"); got != Relative {
		t.Errorf("Validate(relative) = %v, want %v", got, Relative)
	}
	if got := Validate("not a valid iri at all \x7f"); got != Invalid {
		t.Errorf("Validate(malformed) = %v, want %v", got, Invalid)
	}
}
