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

// Package factory builds term.Term values over interned, weakly-held string
// storage: repeated construction of terms sharing the same IRI namespace,
// language tag or datatype text reuses a single backing string rather than
// allocating a fresh copy each time, and the entry is reclaimed once no term
// still references it.
//
// RcHandle is the single-owner flavor, intended for a factory used from one
// goroutine. ArcHandle guards its table with a mutex and is safe to share
// across goroutines for concurrent Get/build calls, mirroring the
// Rc-vs-Arc split of the system this package is modeled on.
package factory

import (
	"runtime"
	"sync"
	"weak"

	"github.com/tridentrdf/core/term"
)

// RcHandle is a pointer-indirection string holder produced by an RcFactory.
// Two RcHandles produced by the same factory for equal text point at the
// same backing string for as long as any handle keeps it alive.
type RcHandle struct {
	p *string
}

// String returns the underlying text.
func (h RcHandle) String() string {
	if h.p == nil {
		return ""
	}
	return *h.p
}

// ArcHandle is the concurrency-safe counterpart of RcHandle, produced by an
// ArcFactory whose table may be queried from multiple goroutines.
type ArcHandle struct {
	p *string
}

// String returns the underlying text.
func (h ArcHandle) String() string {
	if h.p == nil {
		return ""
	}
	return *h.p
}

// RcFactory interns strings behind RcHandle values. Its public contract
// assumes a single owning goroutine drives GetHolder/Copy/ShrinkToFit calls;
// the table is nonetheless guarded by a mutex because runtime.AddCleanup
// callbacks run on a runtime-managed goroutine distinct from the owner, and
// forget must not race that owner's access to the same map.
type RcFactory struct {
	mu    sync.Mutex
	table map[string]weak.Pointer[string]
}

// NewRcFactory returns an empty RcFactory.
func NewRcFactory() *RcFactory {
	return &RcFactory{table: make(map[string]weak.Pointer[string])}
}

// GetHolder returns the RcHandle interning txt, reusing a previously
// constructed holder with equal text if one is still alive.
func (f *RcFactory) GetHolder(txt string) RcHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w, ok := f.table[txt]; ok {
		if p := w.Value(); p != nil {
			return RcHandle{p: p}
		}
	}
	p := new(string)
	*p = txt
	f.table[txt] = weak.Make(p)
	runtime.AddCleanup(p, f.forget, txt)
	return RcHandle{p: p}
}

func (f *RcFactory) forget(txt string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w, ok := f.table[txt]; ok && w.Value() == nil {
		delete(f.table, txt)
	}
}

// ShrinkToFit drops table entries whose backing string has already been
// reclaimed, releasing the now-dead weak.Pointer values. Cleanups registered
// via runtime.AddCleanup normally do this already; ShrinkToFit is for a
// caller that wants the guarantee synchronously, e.g. before measuring the
// factory's memory footprint.
func (f *RcFactory) ShrinkToFit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for txt, w := range f.table {
		if w.Value() == nil {
			delete(f.table, txt)
		}
	}
}

// LiveCount returns the number of entries currently held in the interning
// table, including any not-yet-collected entry whose backing string has
// already been dropped by every term. Call ShrinkToFit first for an exact
// count of reachable entries.
func (f *RcFactory) LiveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.table)
}

// Iri builds an IRI term over this factory's interned storage.
func (f *RcFactory) Iri(s string) (term.Term[RcHandle], error) {
	return term.NewIRI(f.GetHolder(s))
}

// Iri2 builds a (namespace, suffix) IRI term over this factory's interned
// storage, interning each piece independently so that many IRIs sharing a
// namespace share its backing string.
func (f *RcFactory) Iri2(ns, suffix string) (term.Term[RcHandle], error) {
	return term.NewIRI2(f.GetHolder(ns), f.GetHolder(suffix))
}

// BlankNode builds a blank node term over this factory's interned storage.
func (f *RcFactory) BlankNode(id string) (term.Term[RcHandle], error) {
	return term.NewBlankNode(f.GetHolder(id))
}

// LiteralLang builds a language-tagged literal over this factory's interned
// storage.
func (f *RcFactory) LiteralLang(lexical, lang string) (term.Term[RcHandle], error) {
	return term.NewLiteralLang(f.GetHolder(lexical), f.GetHolder(lang))
}

// LiteralDatatype builds a datatype-tagged literal over this factory's
// interned storage, copying dt into the factory first via Copy.
func (f *RcFactory) LiteralDatatype(lexical string, dt term.Term[RcHandle]) (term.Term[RcHandle], error) {
	return term.NewLiteralDatatype(f.GetHolder(lexical), f.Copy(dt))
}

// Variable builds a variable term over this factory's interned storage.
func (f *RcFactory) Variable(name string) (term.Term[RcHandle], error) {
	return term.NewVariable(f.GetHolder(name))
}

// Copy rebuilds other over this factory's interned storage, preserving its
// Kind and the split/whole IRI representation it was constructed with.
func (f *RcFactory) Copy(other term.Term[RcHandle]) term.Term[RcHandle] {
	return copyWith(other, f.GetHolder, NoNormalization)
}

// CopyNormalized rebuilds other like Copy, additionally applying mode to its
// text before interning.
func (f *RcFactory) CopyNormalized(other term.Term[RcHandle], mode NormalizationMode) term.Term[RcHandle] {
	return copyWith(other, f.GetHolder, mode)
}

// ArcFactory is the concurrency-safe counterpart of RcFactory: its table is
// guarded by a mutex so GetHolder and the convenience builders may be called
// from multiple goroutines.
type ArcFactory struct {
	mu    sync.Mutex
	table map[string]weak.Pointer[string]
}

// NewArcFactory returns an empty ArcFactory.
func NewArcFactory() *ArcFactory {
	return &ArcFactory{table: make(map[string]weak.Pointer[string])}
}

// GetHolder returns the ArcHandle interning txt, reusing a previously
// constructed holder with equal text if one is still alive.
func (f *ArcFactory) GetHolder(txt string) ArcHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w, ok := f.table[txt]; ok {
		if p := w.Value(); p != nil {
			return ArcHandle{p: p}
		}
	}
	p := new(string)
	*p = txt
	f.table[txt] = weak.Make(p)
	runtime.AddCleanup(p, f.forget, txt)
	return ArcHandle{p: p}
}

func (f *ArcFactory) forget(txt string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w, ok := f.table[txt]; ok && w.Value() == nil {
		delete(f.table, txt)
	}
}

// ShrinkToFit drops table entries whose backing string has already been
// reclaimed. See RcFactory.ShrinkToFit.
func (f *ArcFactory) ShrinkToFit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for txt, w := range f.table {
		if w.Value() == nil {
			delete(f.table, txt)
		}
	}
}

// LiveCount returns the number of entries currently held in the interning
// table. See RcFactory.LiveCount.
func (f *ArcFactory) LiveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.table)
}

// Iri builds an IRI term over this factory's interned storage.
func (f *ArcFactory) Iri(s string) (term.Term[ArcHandle], error) {
	return term.NewIRI(f.GetHolder(s))
}

// Iri2 builds a (namespace, suffix) IRI term over this factory's interned
// storage.
func (f *ArcFactory) Iri2(ns, suffix string) (term.Term[ArcHandle], error) {
	return term.NewIRI2(f.GetHolder(ns), f.GetHolder(suffix))
}

// BlankNode builds a blank node term over this factory's interned storage.
func (f *ArcFactory) BlankNode(id string) (term.Term[ArcHandle], error) {
	return term.NewBlankNode(f.GetHolder(id))
}

// LiteralLang builds a language-tagged literal over this factory's interned
// storage.
func (f *ArcFactory) LiteralLang(lexical, lang string) (term.Term[ArcHandle], error) {
	return term.NewLiteralLang(f.GetHolder(lexical), f.GetHolder(lang))
}

// LiteralDatatype builds a datatype-tagged literal over this factory's
// interned storage, copying dt into the factory first via Copy.
func (f *ArcFactory) LiteralDatatype(lexical string, dt term.Term[ArcHandle]) (term.Term[ArcHandle], error) {
	return term.NewLiteralDatatype(f.GetHolder(lexical), f.Copy(dt))
}

// Variable builds a variable term over this factory's interned storage.
func (f *ArcFactory) Variable(name string) (term.Term[ArcHandle], error) {
	return term.NewVariable(f.GetHolder(name))
}

// Copy rebuilds other over this factory's interned storage.
func (f *ArcFactory) Copy(other term.Term[ArcHandle]) term.Term[ArcHandle] {
	return copyWith(other, f.GetHolder, NoNormalization)
}

// CopyNormalized rebuilds other like Copy, applying mode to its text first.
func (f *ArcFactory) CopyNormalized(other term.Term[ArcHandle], mode NormalizationMode) term.Term[ArcHandle] {
	return copyWith(other, f.GetHolder, mode)
}
