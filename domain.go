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

package ebridge

import (
	"errors"
	"fmt"
	"strconv"

	"dirpx.dev/ebridge/apis"
	"dirpx.dev/ebridge/class"
	"dirpx.dev/ebridge/code"
	"dirpx.dev/ebridge/domain"
)

// Integer is the set of underlying types a domain code may use.
type Integer = code.Integer

// Policy decides what TryBridge does with a code that is reported under a
// matching domain but is not declared in the domain's table.
type Policy uint8

const (
	// Strict rejects undeclared codes: TryBridge reports no match.
	Strict Policy = iota + 1

	// Collapse maps undeclared codes to the domain's unknown variant. The
	// original code is not preserved, so ToForeign(TryBridge(f)) == f only
	// holds for declared codes.
	Collapse

	// Preserve keeps the raw code as long as it is representable in the
	// domain's integer type. Known reports false for such values.
	Preserve
)

// String returns the lowercase policy name.
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Collapse:
		return "collapse"
	case Preserve:
		return "preserve"
	default:
		return "policy(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParsePolicy parses the lowercase policy name.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "strict":
		return Strict, nil
	case "collapse":
		return Collapse, nil
	case "preserve":
		return Preserve, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

var (
	// ErrInvalidPolicy is returned for unknown policy names or values.
	ErrInvalidPolicy = errors.New("ebridge: invalid policy")
	// ErrUnknownNotDeclared is returned when the unknown variant is not in
	// the domain's table, or when Collapse is requested without one.
	ErrUnknownNotDeclared = errors.New("ebridge: unknown variant not declared")
)

// DomainOption configures a Domain at construction time.
type DomainOption func(*domainConfig)

type domainConfig struct {
	ranges     []class.Range
	policy     Policy
	unknown    int
	hasUnknown bool
}

// WithRanges declares the domain's code families, evaluated in order.
func WithRanges(ranges ...class.Range) DomainOption {
	return func(c *domainConfig) { c.ranges = append(c.ranges, ranges...) }
}

// WithUnknown declares the variant undeclared codes collapse into. Unless a
// policy is set explicitly, it also switches the domain to Collapse.
func WithUnknown[T Integer](v T) DomainOption {
	return func(c *domainConfig) {
		c.unknown = int(v)
		c.hasUnknown = true
	}
}

// WithPolicy sets the policy explicitly.
func WithPolicy(p Policy) DomainOption {
	return func(c *domainConfig) { c.policy = p }
}

// Domain is an immutable description of one error domain: its identifier,
// its table of declared codes and its code families.
//
// A Domain is safe for concurrent use. It implements apis.Prober.
type Domain[T Integer] struct {
	id      domain.ID
	table   *code.Table[T]
	classes *class.Classifier
	policy  Policy
	unknown T
	// hasUnknown is true when unknown is a declared variant.
	hasUnknown bool
}

var _ apis.Prober = (*Domain[int])(nil)

// NewDomain validates and builds a Domain.
//
// Construction fails when the identifier is invalid, when two entries share
// a code or a name, when a range is malformed, or when the policy and the
// unknown variant disagree.
func NewDomain[T Integer](id string, entries []code.Entry[T], opts ...DomainOption) (*Domain[T], error) {
	did, err := domain.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("domain %q: %w", id, err)
	}
	if string(did) != id {
		return nil, fmt.Errorf("domain %q: %w: not canonical, want %q", id, domain.ErrInvalidFormat, did)
	}

	var cfg domainConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	tbl, err := code.New(entries...)
	if err != nil {
		return nil, fmt.Errorf("domain %q: %w", id, err)
	}
	cls, err := class.New(cfg.ranges...)
	if err != nil {
		return nil, fmt.Errorf("domain %q: %w", id, err)
	}

	d := &Domain[T]{id: did, table: tbl, classes: cls, policy: cfg.policy}

	if cfg.hasUnknown {
		u, ok := tbl.FromInt(cfg.unknown)
		if !ok {
			return nil, fmt.Errorf("domain %q: %w: %d", id, ErrUnknownNotDeclared, cfg.unknown)
		}
		d.unknown, d.hasUnknown = u, true
	}

	switch d.policy {
	case 0:
		d.policy = Strict
		if d.hasUnknown {
			d.policy = Collapse
		}
	case Strict, Preserve:
	case Collapse:
		if !d.hasUnknown {
			return nil, fmt.Errorf("domain %q: %w: collapse policy needs WithUnknown", id, ErrUnknownNotDeclared)
		}
	default:
		return nil, fmt.Errorf("domain %q: %w: %d", id, ErrInvalidPolicy, d.policy)
	}
	return d, nil
}

// MustDomain is the panic-on-error variant of NewDomain, for package-level
// declarations.
func MustDomain[T Integer](id string, entries []code.Entry[T], opts ...DomainOption) *Domain[T] {
	d, err := NewDomain(id, entries, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// ID returns the domain identifier.
func (d *Domain[T]) ID() domain.ID { return d.id }

// Policy returns the effective policy.
func (d *Domain[T]) Policy() Policy { return d.policy }

// Table returns the table of declared codes.
func (d *Domain[T]) Table() *code.Table[T] { return d.table }

// Classifier returns the domain's code families.
func (d *Domain[T]) Classifier() *class.Classifier { return d.classes }

// Unknown returns the declared unknown variant, if any.
func (d *Domain[T]) Unknown() (T, bool) { return d.unknown, d.hasUnknown }

// TryBridge converts a foreign record into a typed value.
//
// It succeeds only when f.Domain equals the domain identifier exactly and
// the policy accepts f.Code. Otherwise it returns (zero, false).
func (d *Domain[T]) TryBridge(f Foreign) (T, bool) {
	if !d.id.Matches(f.Domain) {
		var zero T
		return zero, false
	}
	return d.FromCode(f.Code)
}

// FromCode is the validated constructor behind TryBridge: it applies the
// policy to a raw code without looking at any domain string.
func (d *Domain[T]) FromCode(raw int) (T, bool) {
	if v, ok := d.table.FromInt(raw); ok {
		return v, true
	}
	switch d.policy {
	case Collapse:
		return d.unknown, true
	case Preserve:
		return code.Convert[T](raw)
	default:
		var zero T
		return zero, false
	}
}

// ToForeign converts a typed value into its untyped record. It is total.
func (d *Domain[T]) ToForeign(v T) Foreign {
	return Foreign{Domain: string(d.id), Code: int(v)}
}

// Declared lists the declared codes as int entries, sorted by value.
func (d *Domain[T]) Declared() []code.Entry[int] {
	es := d.table.Entries()
	out := make([]code.Entry[int], len(es))
	for i, e := range es {
		out[i] = code.E(e.Name, int(e.Value))
	}
	return out
}

// Known reports whether v is declared in the table.
func (d *Domain[T]) Known(v T) bool { return d.table.Contains(v) }

// Name returns the declared name of v, or "" when v is not declared.
func (d *Domain[T]) Name(v T) string {
	n, _ := d.table.Name(v)
	return n
}

// Classify returns the label of the first range containing v.
func (d *Domain[T]) Classify(v T) (class.Label, bool) {
	return d.classes.Classify(int(v))
}

// Is reports whether v belongs to the code family label.
func (d *Domain[T]) Is(v T, label class.Label) bool {
	return d.classes.Is(int(v), label)
}

// Equal reports whether a and b carry the same code.
func (d *Domain[T]) Equal(a, b T) bool { return a == b }

// Hash derives a hash from the code alone.
func (d *Domain[T]) Hash(v T) uint64 { return uint64(int64(v)) }

// Format renders v for Error methods of concrete domain types:
//
//	<domain>: <name> (<code>)
//
// or, for undeclared codes:
//
//	<domain>: code <code>
func (d *Domain[T]) Format(v T) string {
	if n, ok := d.table.Name(v); ok {
		return fmt.Sprintf("%s: %s (%d)", d.id, n, int64(v))
	}
	return fmt.Sprintf("%s: code %d", d.id, int64(v))
}

// Probe implements apis.Prober. Typed values that implement
// apis.DomainError are returned as-is; other types are wrapped in Coded.
func (d *Domain[T]) Probe(raw int) (apis.DomainError, bool) {
	v, ok := d.FromCode(raw)
	if !ok {
		return nil, false
	}
	if de, ok := any(v).(apis.DomainError); ok {
		return de, true
	}
	return Coded{Domain: string(d.id), Code: int(v), Name: d.Name(v)}, true
}

// Describe implements apis.Prober.
func (d *Domain[T]) Describe(raw int) apis.Description {
	desc := apis.Description{Domain: string(d.id), Code: raw, Registered: true}
	if v, ok := d.table.FromInt(raw); ok {
		desc.Name = d.Name(v)
		desc.Known = true
	}
	if l, ok := d.classes.Classify(raw); ok {
		desc.Class = string(l)
	}
	return desc
}
