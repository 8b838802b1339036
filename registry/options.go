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

import "dirpx.dev/ebridge/apis"

// Option configures the Registry at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Registry.
type Option func(*builder)

// WithDomain registers a candidate domain. Domains are probed in the order
// they are registered.
func WithDomain(p apis.Prober) Option {
	return func(b *builder) { b.probers = append(b.probers, p) }
}

// WithDomains registers several candidate domains at once.
func WithDomains(ps ...apis.Prober) Option {
	return func(b *builder) { b.probers = append(b.probers, ps...) }
}

// WithAlias routes the foreign domain string raw to the registered domain
// target. The comparison is exact; raw is not normalized.
func WithAlias(raw, target string) Option {
	return func(b *builder) { b.aliases = append(b.aliases, aliasRule{raw, target}) }
}

// WithAliasPrefix routes every foreign domain string that starts with the
// dot-separated prefix to target. A more specific prefix wins. Use "*" to
// match a single segment.
func WithAliasPrefix(prefix, target string) Option {
	return func(b *builder) { b.prefixes = append(b.prefixes, aliasRule{prefix, target}) }
}
