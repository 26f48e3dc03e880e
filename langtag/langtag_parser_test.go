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

//nolint:testpackage // white-box test file, needs access to the unexported canonicalParseRun machinery.
package langtag

import (
	"errors"
	"testing"
)

func TestValidateSubtag(t *testing.T) {
	t.Parallel()
	if err := validateSubtag("en"); err != nil {
		t.Errorf("validateSubtag(en) = %v, want nil", err)
	}
	if err := validateSubtag(""); !errors.Is(err, ErrEmptySubtag) {
		t.Errorf("validateSubtag(\"\") = %v, want ErrEmptySubtag", err)
	}
	if err := validateSubtag("toolongsubtag"); !errors.Is(err, ErrSubtagTooLong) {
		t.Errorf("validateSubtag(toolongsubtag) = %v, want ErrSubtagTooLong", err)
	}
}

func TestParserParseNormalizesCaseWithoutRegistryCheck(t *testing.T) {
	t.Parallel()
	lt, err := p.Parse("EN-us")
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if got, want := lt.String(), "en-US"; got != want {
		t.Errorf("Parse(EN-us).String() = %q, want %q", got, want)
	}
	if got := lt.PrimaryLanguage(); got != "en" {
		t.Errorf("PrimaryLanguage() = %q, want en", got)
	}
	if region, ok := lt.Region(); !ok || region != "US" {
		t.Errorf("Region() = (%q, %v), want (US, true)", region, ok)
	}
}

func TestParserParseAcceptsUnregisteredLanguageAndVariantFormat(t *testing.T) {
	t.Parallel()
	// Parse is format-only: "ca" is not in the embedded registry, and
	// "valencia" is only checked against the registry by ParseAndNormalize.
	lt, err := p.Parse("ca-valencia")
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if variant, ok := lt.Variant(); !ok || variant != "valencia" {
		t.Errorf("Variant() = (%q, %v), want (valencia, true)", variant, ok)
	}
}

func TestParserParseRejectsForbiddenChar(t *testing.T) {
	t.Parallel()
	if _, err := p.Parse("en_US"); !errors.Is(err, ErrForbiddenChar) {
		t.Errorf("Parse(en_US) = %v, want ErrForbiddenChar", err)
	}
}

func TestParserParseAndNormalizeRejectsUnregisteredLanguage(t *testing.T) {
	t.Parallel()
	if _, err := p.ParseAndNormalize("xx-US"); !errors.Is(err, ErrInvalidLanguage) {
		t.Errorf("ParseAndNormalize(xx-US) = %v, want ErrInvalidLanguage", err)
	}
}

func TestParserParseAndNormalizeCanonicalizesExtlangToPrimary(t *testing.T) {
	t.Parallel()
	lt, err := p.ParseAndNormalize("zh-yue")
	if err != nil {
		t.Fatalf("ParseAndNormalize: unexpected error: %v", err)
	}
	if got, want := lt.String(), "yue"; got != want {
		t.Errorf("ParseAndNormalize(zh-yue).String() = %q, want %q", got, want)
	}
}

func TestParserParseAndNormalizeSuppressesRedundantScript(t *testing.T) {
	t.Parallel()
	// en's registry record declares Latn as its suppressed script.
	lt, err := p.ParseAndNormalize("en-Latn-US")
	if err != nil {
		t.Fatalf("ParseAndNormalize: unexpected error: %v", err)
	}
	if got, want := lt.String(), "en-US"; got != want {
		t.Errorf("ParseAndNormalize(en-Latn-US).String() = %q, want %q", got, want)
	}
	if _, ok := lt.Script(); ok {
		t.Error("Script() present after suppression, want absent")
	}
}

func TestParserParseAndNormalizeRejectsDuplicateVariant(t *testing.T) {
	t.Parallel()
	if _, err := p.ParseAndNormalize("es-valencia-valencia"); !errors.Is(err, ErrDuplicateVariant) {
		t.Errorf("ParseAndNormalize(es-valencia-valencia) = %v, want ErrDuplicateVariant", err)
	}
}

func TestParserParseRejectsTooManyExtlangs(t *testing.T) {
	t.Parallel()
	if _, err := p.Parse("zh-yue-abd"); !errors.Is(err, ErrTooManyExtlangs) {
		t.Errorf("Parse(zh-yue-abd) = %v, want ErrTooManyExtlangs", err)
	}
}

func TestParserToExtlangForm(t *testing.T) {
	t.Parallel()
	canonical, err := p.ParseAndNormalize("yue")
	if err != nil {
		t.Fatalf("ParseAndNormalize: unexpected error: %v", err)
	}
	extlangForm, err := p.ToExtlangForm(canonical)
	if err != nil {
		t.Fatalf("ToExtlangForm: unexpected error: %v", err)
	}
	if got, want := extlangForm.String(), "zh-yue"; got != want {
		t.Errorf("ToExtlangForm(yue).String() = %q, want %q", got, want)
	}
}

func TestParserParseAndNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()
	once, err := p.ParseAndNormalize("EN-latn-us")
	if err != nil {
		t.Fatalf("ParseAndNormalize: unexpected error: %v", err)
	}
	twice, err := p.ParseAndNormalize(once.String())
	if err != nil {
		t.Fatalf("ParseAndNormalize (second pass): unexpected error: %v", err)
	}
	if once.String() != twice.String() {
		t.Errorf("ParseAndNormalize is not idempotent: %q then %q", once.String(), twice.String())
	}
}
