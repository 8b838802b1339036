/*
   Copyright 2025 The DIRPX Authors

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

package registry

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/ebridge"
	"dirpx.dev/ebridge/apis"
	"dirpx.dev/ebridge/domain"
	"dirpx.dev/ebridge/registry/internal/prefixtrie"
)

var (
	// ErrNilDomain is returned when WithDomain receives a nil prober.
	ErrNilDomain = errors.New("registry: nil domain")

	// ErrDuplicateDomain is returned when two probers declare the same ID.
	ErrDuplicateDomain = errors.New("registry: duplicate domain")

	// ErrUnknownTarget is returned when an alias routes to a domain that
	// was never registered.
	ErrUnknownTarget = errors.New("registry: alias target is not registered")

	// ErrDuplicateAlias is returned when an alias or alias prefix is
	// registered twice, or when an alias equals a registered domain ID.
	ErrDuplicateAlias = errors.New("registry: duplicate alias")

	// ErrInvalidPrefix is returned for malformed alias prefixes.
	ErrInvalidPrefix = prefixtrie.ErrInvalidPrefix
)

// Route sources, as reported by Describe and Explain.
const (
	SourceExact  = "exact"
	SourceAlias  = "alias"
	SourcePrefix = "prefix"
	SourceNone   = "none"
)

// Registry is an immutable set of candidate domains plus the alias rules
// that route foreign domain strings to them. It implements apis.Resolver
// and is safe for concurrent use once constructed.
type Registry struct {
	// probers holds the candidate domains in registration order.
	probers []apis.Prober
	// byID maps a domain ID to its index in probers.
	byID map[string]int
	// aliases maps exact foreign domain strings to an index in probers.
	aliases map[string]int
	// prefixes resolves alias prefixes to an index in probers; nil when no
	// prefix was registered.
	prefixes *prefixtrie.Trie[int]
}

var _ apis.Resolver = (*Registry)(nil)

// New constructs an immutable Registry snapshot.
//
// Build process overview:
//
//  1. Apply user-provided options to an empty builder.
//  2. Validate probers: non-nil, valid and unique IDs.
//  3. Validate exact aliases: known target, no duplicates, no shadowing of
//     a registered ID.
//  4. Compile alias prefixes into a segment trie.
//
// The returned Registry shares no state with the options or the builder.
func New(opts ...Option) (*Registry, error) {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}

	r := &Registry{
		probers: make([]apis.Prober, 0, len(b.probers)),
		byID:    make(map[string]int, len(b.probers)),
		aliases: make(map[string]int, len(b.aliases)),
	}

	for _, p := range b.probers {
		if p == nil {
			return nil, ErrNilDomain
		}
		id := p.ID()
		if err := domain.Validate(id); err != nil {
			return nil, fmt.Errorf("registry: domain %q: %w", id, err)
		}
		if _, dup := r.byID[string(id)]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDomain, id)
		}
		r.byID[string(id)] = len(r.probers)
		r.probers = append(r.probers, p)
	}

	for _, a := range b.aliases {
		idx, ok := r.byID[a.to]
		if !ok {
			return nil, fmt.Errorf("%w: %q -> %q", ErrUnknownTarget, a.from, a.to)
		}
		if _, shadow := r.byID[a.from]; shadow {
			return nil, fmt.Errorf("%w: %q is a registered domain", ErrDuplicateAlias, a.from)
		}
		if _, dup := r.aliases[a.from]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAlias, a.from)
		}
		r.aliases[a.from] = idx
	}

	if len(b.prefixes) > 0 {
		t := prefixtrie.New[int]()
		seen := make(map[string]struct{}, len(b.prefixes))
		for _, a := range b.prefixes {
			idx, ok := r.byID[a.to]
			if !ok {
				return nil, fmt.Errorf("%w: %q -> %q", ErrUnknownTarget, a.from, a.to)
			}
			if _, dup := seen[a.from]; dup {
				return nil, fmt.Errorf("%w: prefix %q", ErrDuplicateAlias, a.from)
			}
			seen[a.from] = struct{}{}
			if err := t.Insert(a.from, idx); err != nil {
				return nil, fmt.Errorf("registry: alias prefix %q: %w", a.from, err)
			}
		}
		r.prefixes = t
	}

	return r, nil
}

// MustNew is like New but panics on error. It is meant for package-level
// registries built from static options.
func MustNew(opts ...Option) *Registry {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

type candidate struct {
	source  string
	pattern string
	prober  apis.Prober
}

// candidates lists the probers a foreign domain string routes to, in the
// order they are tried. An exact ID match excludes every alias.
func (r *Registry) candidates(raw string) []candidate {
	if i, ok := r.byID[raw]; ok {
		return []candidate{{source: SourceExact, prober: r.probers[i]}}
	}
	var out []candidate
	if i, ok := r.aliases[raw]; ok {
		out = append(out, candidate{source: SourceAlias, prober: r.probers[i]})
	}
	if r.prefixes != nil {
		if i, pat, ok := r.prefixes.Match(raw); ok {
			p := r.probers[i]
			if len(out) == 0 || out[0].prober.ID() != p.ID() {
				out = append(out, candidate{source: SourcePrefix, pattern: pat, prober: p})
			}
		}
	}
	return out
}

// Resolve probes the candidate domains for (raw, code) in order and
// returns the first typed value produced. A domain mismatch or a rejected
// code is reported as false, never as an error.
func (r *Registry) Resolve(raw string, code int) (apis.DomainError, bool) {
	for _, c := range r.candidates(raw) {
		if e, ok := c.prober.Probe(code); ok {
			return e, true
		}
	}
	return nil, false
}

// ResolveForeign is Resolve for a foreign record.
func (r *Registry) ResolveForeign(f ebridge.Foreign) (apis.DomainError, bool) {
	return r.Resolve(f.Domain, f.Code)
}

// Find walks err's tree and resolves the first domain error, typed or
// foreign, that some registered domain accepts.
func (r *Registry) Find(err error) (apis.DomainError, bool) {
	var out apis.DomainError
	ebridge.Walk(err, func(de apis.DomainError) bool {
		e, ok := r.Resolve(de.ErrorDomain(), de.ErrorCode())
		if ok {
			out = e
		}
		return ok
	})
	return out, out != nil
}

// Describe returns what the registry knows about (raw, code). Domain and
// Code echo the input; Target and Route tell where it was routed.
func (r *Registry) Describe(raw string, code int) apis.Description {
	cands := r.candidates(raw)
	if len(cands) == 0 {
		return apis.Description{Domain: raw, Code: code, Route: SourceNone}
	}
	pick := cands[0]
	for _, c := range cands {
		if _, ok := c.prober.Probe(code); ok {
			pick = c
			break
		}
	}
	d := pick.prober.Describe(code)
	d.Target = d.Domain
	d.Domain = raw
	d.Code = code
	d.Route = pick.source
	return d
}

// Explain produces a textual trace of how the registry routed and probed
// a (domain, code) pair.
//
// Example output:
//
//	domain="legacy.net.http" code=-1001
//	route: source=prefix pattern="legacy.net" -> network
//	probe: declared="TimedOut" class="transport" -> match "network: TimedOut (-1001)"
//	result: match
//
// Notes:
//   - source ∈ {exact | alias | prefix | none}
//   - one route/probe pair is printed per candidate until one matches
func (r *Registry) Explain(raw string, code int) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "domain=%q code=%d\n", raw, code)

	cands := r.candidates(raw)
	if len(cands) == 0 {
		_, _ = fmt.Fprintln(&b, "route: source=none")
	}
	matched := false
	for _, c := range cands {
		if c.pattern != "" {
			_, _ = fmt.Fprintf(&b, "route: source=%s pattern=%q -> %s\n", c.source, c.pattern, c.prober.ID())
		} else {
			_, _ = fmt.Fprintf(&b, "route: source=%s -> %s\n", c.source, c.prober.ID())
		}
		d := c.prober.Describe(code)
		e, ok := c.prober.Probe(code)
		if ok {
			_, _ = fmt.Fprintf(&b, "probe: declared=%s class=%s -> match %q\n", quoteOrDash(d.Name), quoteOrDash(d.Class), e.Error())
			matched = true
			break
		}
		_, _ = fmt.Fprintf(&b, "probe: declared=%s class=%s -> no match\n", quoteOrDash(d.Name), quoteOrDash(d.Class))
	}
	if matched {
		_, _ = fmt.Fprintln(&b, "result: match")
	} else {
		_, _ = fmt.Fprintln(&b, "result: no match")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func quoteOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return fmt.Sprintf("%q", s)
}

// Domains returns the registered domain IDs in registration order.
func (r *Registry) Domains() []domain.ID {
	out := make([]domain.ID, len(r.probers))
	for i, p := range r.probers {
		out[i] = p.ID()
	}
	return out
}

// Lookup returns the prober registered under id.
func (r *Registry) Lookup(id string) (apis.Prober, bool) {
	i, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return r.probers[i], true
}

// Len reports the number of registered domains.
func (r *Registry) Len() int { return len(r.probers) }
